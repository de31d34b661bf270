package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-richparams/pkg/orchestrator"
	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
	"github.com/goliatone/go-richparams/pkg/schema"
	"github.com/goliatone/go-richparams/pkg/testsupport"
)

type stubRenderer struct {
	name    string
	last    render.Form
	options render.RenderOptions
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(_ context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	s.last = form
	s.options = opts
	return []byte(strings.Join(form.Names(), ",")), nil
}

func TestOrchestrator_DefaultPipelineRendersHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	doc := "- name: gpu\n  type: bool\n- name: cpus\n  type: number\n  default_value: \"2\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Source: schema.SourceFromFile(path),
		Form:   render.Form{Title: "Workspace"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(out)
	for _, fragment := range []string{`name="gpu" value="true"`, `name="cpus" value="2"`, `<h2>Workspace</h2>`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestOrchestrator_RendererSelection(t *testing.T) {
	first := &stubRenderer{name: "first"}
	second := &stubRenderer{name: "second"}
	registry := render.NewRegistry()
	registry.MustRegister(first)
	registry.MustRegister(second)

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("second"),
	)
	req := orchestrator.Request{Parameters: testsupport.WorkspaceParameters()}

	out, err := orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got, want := string(out), "region,gpu,cpus,token"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if second.last.Parameters == nil || first.last.Parameters != nil {
		t.Fatal("expected default renderer to be used")
	}

	req.Renderer = "missing"
	if _, err := orch.Generate(testsupport.Context(), req); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_FallsBackWhenDefaultMissing(t *testing.T) {
	only := &stubRenderer{name: "only"}
	registry := render.NewRegistry()
	registry.MustRegister(only)

	orch := orchestrator.New(orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("vanilla"))
	if _, err := orch.Generate(testsupport.Context(), orchestrator.Request{Parameters: []parameter.Schema{}}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if only.last.Parameters == nil {
		t.Fatal("expected registry default to render")
	}
}

func TestOrchestrator_AppliesTransformersAndPassesOptions(t *testing.T) {
	renderer := &stubRenderer{name: "stub"}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	called := false
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("stub"),
		orchestrator.WithTransformers(orchestrator.TransformerFunc(func(_ context.Context, form *render.Form) error {
			called = true
			form.Title = "patched"
			return nil
		})),
	)

	opts := render.RenderOptions{ReadOnly: true, ShowOptions: true}
	if _, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Parameters:    testsupport.WorkspaceParameters(),
		RenderOptions: opts,
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !called || renderer.last.Title != "patched" {
		t.Fatalf("transformer not applied: %+v", renderer.last)
	}
	if diff := cmp.Diff(opts, renderer.options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_TransformerError(t *testing.T) {
	boom := errors.New("boom")
	orch := orchestrator.New(orchestrator.WithTransformers(orchestrator.TransformerFunc(func(context.Context, *render.Form) error {
		return boom
	})))
	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{Parameters: []parameter.Schema{}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transformer error, got %v", err)
	}
}

func TestOrchestrator_RequiresInput(t *testing.T) {
	if _, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{}); err == nil {
		t.Fatal("expected error without source or parameters")
	}
}

func TestOrchestrator_LoaderFromFS(t *testing.T) {
	files := fstest.MapFS{"vars.json": &fstest.MapFile{Data: []byte(`[{"name":"a"},{"name":"b"}]`)}}
	renderer := &stubRenderer{name: "stub"}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := orchestrator.New(
		orchestrator.WithLoader(schema.NewLoader(schema.WithFileSystem(files))),
		orchestrator.WithRegistry(registry),
	)
	form, r, err := orch.Prepare(testsupport.Context(), orchestrator.Request{Source: schema.SourceFromFS("vars.json")})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if r.Name() != "stub" {
		t.Fatalf("renderer = %q", r.Name())
	}
	if diff := cmp.Diff([]string{"a", "b"}, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
