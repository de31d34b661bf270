package schema_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/schema"
)

const regionYAML = `
parameters:
  - name: region
    description: Where the workspace runs
    type: string
    default_value: eu
    options:
      - name: Europe
        value: eu
      - name: United States
        value: us
  - name: gpu
    type: bool
    value: "false"
`

func expectedRegion() []parameter.Schema {
	return []parameter.Schema{
		{
			Name:         "region",
			Description:  "Where the workspace runs",
			Type:         parameter.TypeString,
			DefaultValue: "eu",
			Options: []parameter.Option{
				{Name: "Europe", Value: "eu"},
				{Name: "United States", Value: "us"},
			},
		},
		{Name: "gpu", Type: parameter.TypeBool, Value: "false"},
	}
}

func TestLoader_FromFS(t *testing.T) {
	files := fstest.MapFS{
		"params.yaml": &fstest.MapFile{Data: []byte(regionYAML)},
	}
	loader := schema.NewLoader(schema.WithFileSystem(files))

	got, err := loader.Load(context.Background(), schema.SourceFromFS("params.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(expectedRegion(), got); diff != "" {
		t.Fatalf("schemas mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.json")
	doc := `[{"name":"token","type":"string","sensitive":true,"value":"s3cret"},{"name":"size","type":"number","default_value":"3","required":true}]`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := schema.NewLoader().Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []parameter.Schema{
		{Name: "token", Type: parameter.TypeString, Sensitive: true, Value: "s3cret"},
		{Name: "size", Type: parameter.TypeNumber, DefaultValue: "3", Required: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schemas mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_FromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(regionYAML))
	}))
	defer server.Close()

	src, err := schema.SourceFromURL(server.URL + "/params.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	loader := schema.NewLoader(schema.WithHTTPClient(server.Client()))

	got, err := loader.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(expectedRegion(), got); diff != "" {
		t.Fatalf("schemas mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_URLWithoutClient(t *testing.T) {
	src, err := schema.SourceFromURL("https://example.com/params.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	_, err = schema.NewLoader().Load(context.Background(), src)
	if !errors.Is(err, schema.ErrHTTPDisabled) {
		t.Fatalf("expected ErrHTTPDisabled, got %v", err)
	}
}

func TestLoader_URLStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	src, _ := schema.SourceFromURL(server.URL)
	_, err := schema.NewLoader(schema.WithHTTPClient(server.Client())).Load(context.Background(), src)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestLoader_URLTooLarge(t *testing.T) {
	body := []byte(regionYAML)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer server.Close()

	src, _ := schema.SourceFromURL(server.URL)
	client := schema.WithHTTPClient(server.Client())

	_, err := schema.NewLoader(client, schema.WithMaxDocumentBytes(int64(len(body)-1))).Load(context.Background(), src)
	if !errors.Is(err, schema.ErrDocumentTooLarge) {
		t.Fatalf("expected ErrDocumentTooLarge, got %v", err)
	}

	if _, err := schema.NewLoader(client, schema.WithMaxDocumentBytes(int64(len(body)))).Load(context.Background(), src); err != nil {
		t.Fatalf("document at the limit: %v", err)
	}
}

func TestLoader_NilSource(t *testing.T) {
	if _, err := schema.NewLoader().Load(context.Background(), nil); !errors.Is(err, schema.ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}

func TestParseSource(t *testing.T) {
	src, err := schema.ParseSource("https://example.com/vars.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if src.Kind() != schema.SourceKindURL {
		t.Fatalf("kind = %q, want url", src.Kind())
	}

	src, err = schema.ParseSource("./vars.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if src.Kind() != schema.SourceKindFile || src.Location() != "vars.yaml" {
		t.Fatalf("unexpected source %q (%s)", src.Location(), src.Kind())
	}

	if _, err := schema.ParseSource("  "); err == nil {
		t.Fatal("expected error for blank source")
	}
	if _, err := schema.SourceFromURL("ftp://example.com/x"); err == nil {
		t.Fatal("expected error for ftp scheme")
	}
}
