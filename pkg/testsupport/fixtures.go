// Package testsupport carries helpers shared by the package tests: parameter
// fixtures, golden files and template output capture.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/schema"
)

// MustLoadParameters reads a schema fixture from disk.
func MustLoadParameters(t *testing.T, path string) []parameter.Schema {
	t.Helper()

	schemas, err := schema.NewLoader().Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load parameters: %v", err)
	}
	return schemas
}

// WorkspaceParameters is the mixed fixture used across renderer tests: one
// parameter of every input variant plus a sensitive one.
func WorkspaceParameters() []parameter.Schema {
	return []parameter.Schema{
		{
			Name:         "region",
			Description:  "Where the workspace runs",
			Type:         parameter.TypeString,
			DefaultValue: "eu",
			Options: []parameter.Option{
				{Name: "Europe", Value: "eu", Icon: "/icon/eu.svg"},
				{Name: "United States", Value: "us"},
			},
		},
		{Name: "gpu", Type: parameter.TypeBool, Value: "false"},
		{Name: "cpus", Type: parameter.TypeNumber, DefaultValue: "2"},
		{Name: "token", Type: parameter.TypeString, Sensitive: true, Value: "s3cret", DefaultValue: "changeme"},
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
