package submission

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

func TestLoadValuesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	content := "region: eu-west\nreplicas: 3\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write values: %v", err)
	}

	got, err := LoadValuesFile(path)
	if err != nil {
		t.Fatalf("load values: %v", err)
	}
	want := []parameter.Value{
		{Name: "debug", Value: "true"},
		{Name: "region", Value: "eu-west"},
		{Name: "replicas", Value: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadValuesFileErrors(t *testing.T) {
	if _, err := LoadValuesFile(""); !errors.Is(err, ErrNoValuesFile) {
		t.Fatalf("expected ErrNoValuesFile, got %v", err)
	}
	if _, err := LoadValuesFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := ParseValues([]byte("- not\n- a map\n")); err == nil {
		t.Fatalf("expected decode error for list payload")
	}
}
