package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("source: params.yaml\nread_only: true\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Default()
	want.Source = "params.yaml"
	want.ReadOnly = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("source: [unterminated")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestResolveOverlaysChangedFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "richparams.yaml")
	doc := "source: from-file.yaml\naddr: \":9000\"\nrenderer: tui\nshow_options: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	args := []string{"--config", path, "--source", "from-flag.yaml", "--read-only", "--allowed-origins", "https://a.example,https://b.example"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Resolve(fs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := Config{
		Source:      "from-flag.yaml",
		Addr:        ":9000",
		Renderer:    "tui",
		ReadOnly:    true,
		ShowOptions: true,
		Output:      DefaultOutput,
		LogLevel:    DefaultLogLevel,

		AllowedOrigins: []string{"https://a.example", "https://b.example"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWithoutConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := Resolve(fs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(cfg.RequireSource(), ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource")
	}
}

func TestResolveMissingConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := Resolve(fs); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParsedTemplateID(t *testing.T) {
	id := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	got, err := Config{TemplateID: " " + id.String() + " "}.ParsedTemplateID()
	if err != nil || got != id {
		t.Fatalf("ParsedTemplateID = %s, %v", got, err)
	}

	got, err = Config{}.ParsedTemplateID()
	if err != nil || got != uuid.Nil {
		t.Fatalf("blank id = %s, %v", got, err)
	}

	if _, err := (Config{TemplateID: "nope"}).ParsedTemplateID(); err == nil {
		t.Fatalf("expected parse error")
	}
}
