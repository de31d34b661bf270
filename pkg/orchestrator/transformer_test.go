package orchestrator_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-richparams/pkg/orchestrator"
	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
)

func TestJSONPresetTransformer(t *testing.T) {
	preset := []byte(`{
		"title": "Workspace parameters",
		"order": ["gpu", "region"],
		"omit": ["internal"],
		"parameters": {
			"region": {"description": "Where it runs", "default_value": "us", "required": true},
			"token": {"sensitive": true}
		}
	}`)
	transformer, err := orchestrator.NewJSONPresetTransformerFromFS(fstest.MapFS{
		"preset.json": &fstest.MapFile{Data: preset},
	}, "preset.json")
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}

	form := render.Form{Parameters: []parameter.Schema{
		{Name: "region", DefaultValue: "eu"},
		{Name: "token"},
		{Name: "internal"},
		{Name: "gpu", Type: parameter.TypeBool},
	}}
	if err := transformer.Transform(context.Background(), &form); err != nil {
		t.Fatalf("transform: %v", err)
	}

	want := render.Form{
		Title: "Workspace parameters",
		Parameters: []parameter.Schema{
			{Name: "gpu", Type: parameter.TypeBool},
			{Name: "region", Description: "Where it runs", DefaultValue: "us", Required: true},
			{Name: "token", Sensitive: true},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("  ")); err == nil {
		t.Fatal("expected error for empty document")
	}
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("{")); err == nil {
		t.Fatal("expected error for malformed document")
	}

	transformer, err := orchestrator.NewJSONPresetTransformer([]byte(`{"parameters":{"missing":{"icon":"/x.svg"}}}`))
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}
	form := render.Form{Parameters: []parameter.Schema{{Name: "region"}}}
	if err := transformer.Transform(context.Background(), &form); err == nil {
		t.Fatal("expected error for unknown parameter")
	}
}
