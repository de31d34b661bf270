package submission

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

// ErrNoValuesFile is returned when no variable values file is configured.
var ErrNoValuesFile = errors.New("submission: variable values file is not specified")

// LoadValuesFile reads a YAML map of variable name to value. The result is
// sorted by name so repeated loads produce the same order.
func LoadValuesFile(path string) ([]parameter.Value, error) {
	if path == "" {
		return nil, ErrNoValuesFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("submission: read values file: %w", err)
	}
	return ParseValues(data)
}

// ParseValues decodes a YAML name/value map.
func ParseValues(data []byte) ([]parameter.Value, error) {
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("submission: decode values: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]parameter.Value, 0, len(names))
	for _, name := range names {
		out = append(out, parameter.Value{Name: name, Value: values[name]})
	}
	return out, nil
}
