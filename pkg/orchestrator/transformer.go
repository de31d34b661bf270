package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
)

// Transformer mutates a form after loading and before rendering.
type Transformer interface {
	Transform(ctx context.Context, form *render.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *render.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *render.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// JSONPresetTransformer applies declarative overrides loaded from JSON:
//
//	{
//	  "title": "Workspace parameters",
//	  "order": ["region", "gpu"],
//	  "omit": ["internal_flag"],
//	  "parameters": {
//	    "region": {"description": "Where the workspace runs", "default_value": "eu"}
//	  }
//	}
//
// Parameters missing from "order" keep their relative position after the
// ordered ones.
type JSONPresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Order       []string                  `json:"order"`
	Omit        []string                  `json:"omit"`
	Parameters  map[string]parameterPatch `json:"parameters"`
}

type parameterPatch struct {
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DefaultValue *string `json:"default_value"`
	Required     *bool   `json:"required"`
	Sensitive    *bool   `json:"sensitive"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a preset document from fsys.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the preset onto form. Patches naming an unknown
// parameter are an error.
func (t *JSONPresetTransformer) Transform(ctx context.Context, form *render.Form) error {
	if form == nil {
		return errors.New("json preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		form.Title = t.document.Title
	}
	if t.document.Description != "" {
		form.Description = t.document.Description
	}

	for name, patch := range t.document.Parameters {
		found := false
		for i := range form.Parameters {
			if form.Parameters[i].Name != name {
				continue
			}
			found = true
			p := &form.Parameters[i]
			if patch.Description != nil {
				p.Description = *patch.Description
			}
			if patch.Icon != nil {
				p.Icon = *patch.Icon
			}
			if patch.DefaultValue != nil {
				p.DefaultValue = *patch.DefaultValue
			}
			if patch.Required != nil {
				p.Required = *patch.Required
			}
			if patch.Sensitive != nil {
				p.Sensitive = *patch.Sensitive
			}
		}
		if !found {
			return fmt.Errorf("json preset transformer: parameter %q not found", name)
		}
	}

	if len(t.document.Omit) > 0 {
		omit := make(map[string]struct{}, len(t.document.Omit))
		for _, name := range t.document.Omit {
			omit[name] = struct{}{}
		}
		kept := make([]parameter.Schema, 0, len(form.Parameters))
		for _, p := range form.Parameters {
			if _, drop := omit[p.Name]; !drop {
				kept = append(kept, p)
			}
		}
		form.Parameters = kept
	}

	if len(t.document.Order) > 0 {
		rank := make(map[string]int, len(t.document.Order))
		for i, name := range t.document.Order {
			if _, seen := rank[name]; !seen {
				rank[name] = i
			}
		}
		ordered := make([]int, 0, len(form.Parameters))
		rest := make([]int, 0, len(form.Parameters))
		for i, p := range form.Parameters {
			if _, ok := rank[p.Name]; ok {
				ordered = append(ordered, i)
			} else {
				rest = append(rest, i)
			}
		}
		params := form.Parameters
		sort.SliceStable(ordered, func(a, b int) bool {
			return rank[params[ordered[a]].Name] < rank[params[ordered[b]].Name]
		})
		out := make([]parameter.Schema, 0, len(params))
		for _, i := range append(ordered, rest...) {
			out = append(out, params[i])
		}
		form.Parameters = out
	}
	return nil
}
