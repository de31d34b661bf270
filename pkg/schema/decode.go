package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

var (
	// ErrEmptyDocument is returned for documents without content.
	ErrEmptyDocument = errors.New("schema: empty document")
	// ErrMissingName is returned when a schema entry has no name.
	ErrMissingName = errors.New("schema: parameter name is required")
)

type envelope struct {
	Parameters     []parameter.Schema `yaml:"parameters"`
	RichParameters []parameter.Schema `yaml:"rich_parameters"`
	Variables      []parameter.Schema `yaml:"variables"`
}

// Decode parses a JSON or YAML schema document. Order is preserved. Duplicate
// names are left for the caller to handle.
func Decode(data []byte) ([]parameter.Schema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, err
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	var schemas []parameter.Schema
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&schemas); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var env envelope
		if err := root.Decode(&env); err != nil {
			return nil, err
		}
		switch {
		case len(env.Parameters) > 0:
			schemas = env.Parameters
		case len(env.RichParameters) > 0:
			schemas = env.RichParameters
		default:
			schemas = env.Variables
		}
	default:
		return nil, fmt.Errorf("schema: expected a list or an object, got %s", kindName(root.Kind))
	}

	for i, s := range schemas {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrMissingName, i)
		}
	}
	return schemas, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", kind)
	}
}
