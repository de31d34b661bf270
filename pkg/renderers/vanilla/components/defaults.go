package components

import (
	"bytes"
	"fmt"
)

const templatePrefix = "templates/components/"

// NewDefaultRegistry returns a registry with one component per input variant.
// Both choice variants share the radio group template.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(NameBoolean, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "choice.tmpl"),
	})
	registry.MustRegister(NameRadio, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "choice.tmpl"),
	})
	registry.MustRegister(NameInput, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "input.tmpl"),
	})
	return registry
}

func templateComponentRenderer(templateName string) Renderer {
	return func(buf *bytes.Buffer, field FieldView, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}
		rendered, err := data.Template.RenderTemplate(templateName, map[string]any{
			"field": field,
		})
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", templateName, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}
