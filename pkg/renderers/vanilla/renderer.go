package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-richparams/pkg/input"
	"github.com/goliatone/go-richparams/pkg/render"
	rendertemplate "github.com/goliatone/go-richparams/pkg/render/template"
	"github.com/goliatone/go-richparams/pkg/render/template/gotemplate"
	"github.com/goliatone/go-richparams/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-richparams/pkg/resolve"
)

// Name is the registry key of the HTML renderer.
const Name = "vanilla"

const defaultSubmitLabel = "Submit"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	submitLabel      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates found
// there shadow the bundle; missing ones fall back to it.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the per-variant component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry.Clone()
		}
	}
}

// WithSubmitLabel sets the submit button text.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cfg.submitLabel = trimmed
		}
	}
}

// Renderer renders parameter forms as plain HTML: radio groups for choice
// variants and a single input for free text.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), submitLabel: defaultSubmitLabel}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	globals := map[string]any{
		"submit_label": cfg.submitLabel,
		"classes":      chromeClasses(),
	}
	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	} else if err := templates.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("vanilla renderer: template globals: %w", err)
	}

	return &Renderer{
		templates:  templates,
		components: cfg.components,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds one input field per parameter, seeded with the resolved initial
// value or the caller's override, and renders the form around them.
// Overrides are ignored for sensitive parameters so secrets are never echoed.
func (r *Renderer) Render(ctx context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	mapping := render.MapErrorPayload(form, options.Errors)
	initial := resolve.InitialValues(form.Parameters)
	fields := newFieldRenderer(r.templates, r.components)

	markup := make([]string, 0, len(form.Parameters))
	for i, schema := range form.Parameters {
		value := initial[i].Value
		if override, ok := options.Values[schema.Name]; ok && !schema.Sensitive {
			value = override
		}

		field := input.New(schema, value, options.ReadOnly, nil)
		out, err := fields.render(field, fieldState{
			errors:    mapping.Fields[schema.Name],
			showReset: options.ShowOptions && schema.DefaultValue != "" && !schema.Sensitive,
		})
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		markup = append(markup, out)
	}

	hidden := make([]map[string]string, 0, len(options.HiddenFields))
	for _, field := range render.SortedHiddenFields(options.HiddenFields) {
		hidden = append(hidden, map[string]string{"name": field.Name, "value": field.Value})
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form": map[string]any{
			"id":          form.ID,
			"title":       form.Title,
			"description": form.Description,
			"action":      form.Action,
			"method":      normalizeMethod(form.Method),
		},
		"fields":        markup,
		"hidden_fields": hidden,
		"form_errors":   mapping.Form,
		"read_only":     options.ReadOnly,
		"stylesheets":   fields.stylesheets(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
