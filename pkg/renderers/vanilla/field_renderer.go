package vanilla

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-richparams/pkg/input"
	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render/template"
	"github.com/goliatone/go-richparams/pkg/renderers/vanilla/components"
)

type fieldState struct {
	errors    []string
	showReset bool
}

type fieldRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry

	used []string
}

func newFieldRenderer(templates template.TemplateRenderer, registry *components.Registry) *fieldRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &fieldRenderer{templates: templates, registry: registry}
}

func (r *fieldRenderer) render(field *input.Field, state fieldState) (string, error) {
	name := components.NameForVariant(field.Variant())
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("component %q not registered for parameter %q", name, field.Name())
	}

	view := buildView(field, len(state.errors) > 0)

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, view, components.ComponentData{Template: r.templates}); err != nil {
		return "", fmt.Errorf("render component %q for parameter %q: %w", name, field.Name(), err)
	}
	r.markUsed(name)

	return buildFieldMarkup(field, view, control.String(), state), nil
}

func (r *fieldRenderer) markUsed(name string) {
	for _, existing := range r.used {
		if existing == name {
			return
		}
	}
	r.used = append(r.used, name)
}

func (r *fieldRenderer) stylesheets() []string {
	return r.registry.Stylesheets(r.used)
}

func buildView(field *input.Field, invalid bool) components.FieldView {
	schema := field.Schema()
	view := components.FieldView{
		ID:        controlID(schema.Name),
		LabelID:   labelID(schema.Name),
		Name:      schema.Name,
		Variant:   string(field.Variant()),
		Value:     field.Value(),
		Required:  schema.Required,
		Sensitive: schema.Sensitive,
		Disabled:  field.Disabled(),
		Invalid:   invalid,
	}

	if field.Variant().IsChoice() {
		_, selected, _ := field.Selected()
		for i, choice := range field.Choices() {
			view.Choices = append(view.Choices, components.ChoiceView{
				ID:       choiceID(schema.Name, i),
				Label:    choice.Label,
				Value:    choice.Value,
				IconHTML: parameter.IconMarkup(choice.Icon, "", "richparams-option-icon"),
				Checked:  i == selected,
			})
		}
		return view
	}

	view.Placeholder = field.Placeholder()
	view.InputType = field.Mode().HTMLType()
	if field.Mode() == input.ModeNumeric {
		view.InputMode = "decimal"
	}
	if schema.Sensitive {
		view.InputType = "password"
	}
	return view
}

func buildFieldMarkup(field *input.Field, view components.FieldView, control string, state fieldState) string {
	var b strings.Builder
	b.Grow(len(control) + 256)

	b.WriteString(`<div class="`)
	b.WriteString(string(ClassField))
	b.WriteString(`" data-parameter="`)
	b.WriteString(html.EscapeString(view.Name))
	b.WriteString(`" data-variant="`)
	b.WriteString(html.EscapeString(view.Variant))
	b.WriteString(`">`)
	b.WriteByte('\n')

	writeLabel(&b, field, view)
	b.WriteString(strings.TrimSpace(control))
	b.WriteByte('\n')

	if state.showReset {
		b.WriteString(`<button type="button" class="richparams-reset" data-reset-target="`)
		b.WriteString(html.EscapeString(view.Name))
		b.WriteString(`" data-reset-value="`)
		b.WriteString(html.EscapeString(field.Schema().DefaultValue))
		b.WriteString(`"`)
		if view.Disabled {
			b.WriteString(` disabled`)
		}
		b.WriteString(`>Reset to default</button>`)
		b.WriteByte('\n')
	}

	if len(state.errors) > 0 {
		b.WriteString(`<ul class="richparams-field-errors" role="alert">`)
		for _, message := range state.errors {
			b.WriteString(`<li>`)
			b.WriteString(html.EscapeString(message))
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		b.WriteByte('\n')
	}

	b.WriteString(`</div>`)
	return b.String()
}

// writeLabel renders the parameter header. Free-text labels point at the
// control; choice labels name the radio group. Descriptions are Markdown.
func writeLabel(b *strings.Builder, field *input.Field, view components.FieldView) {
	label := parameter.LabelFor(field.Schema())

	b.WriteString(`<label id="`)
	b.WriteString(view.LabelID)
	b.WriteString(`" class="richparams-label"`)
	if !field.Variant().IsChoice() {
		b.WriteString(` for="`)
		b.WriteString(view.ID)
		b.WriteString(`"`)
	}
	b.WriteString(`>`)

	if label.Detailed {
		if icon := parameter.IconMarkup(label.Icon, "", "richparams-icon"); icon != "" {
			b.WriteString(icon)
		}
		b.WriteString(`<span class="richparams-label-name">`)
		b.WriteString(html.EscapeString(label.Name))
		b.WriteString(`</span>`)
	}
	b.WriteString(`<span class="richparams-label-title">`)
	if label.Detailed {
		b.WriteString(parameter.DescriptionMarkup(label.Title))
	} else {
		b.WriteString(html.EscapeString(label.Title))
	}
	b.WriteString(`</span>`)
	if view.Required {
		b.WriteString(`<span class="richparams-required" aria-hidden="true">*</span>`)
	}
	b.WriteString("</label>\n")
}
