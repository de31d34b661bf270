package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-richparams/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, render.Form, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("vanilla"))
	if err := registry.Register(namedRenderer("tui")); err != nil {
		t.Fatalf("register tui: %v", err)
	}

	if err := registry.Register(namedRenderer("tui")); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(namedRenderer(" ")); err == nil {
		t.Fatal("expected error for blank name")
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	def, err := registry.Get("")
	if err != nil || def.Name() != "vanilla" {
		t.Fatalf("default renderer = %v, %v; want vanilla", def, err)
	}
	if err := registry.SetDefault("tui"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if def, _ := registry.Get(""); def.Name() != "tui" {
		t.Fatalf("default renderer = %q, want tui", def.Name())
	}

	if _, err := registry.Get("preact"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if err := registry.SetDefault("preact"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if !registry.Has("tui") || registry.Has("preact") {
		t.Fatal("Has reported unexpected membership")
	}
}
