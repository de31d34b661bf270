// Package richparams is the top-level entry point of the module. It re-exports
// the pieces most callers need: the render pipeline, the schema loader and the
// submission session.
package richparams

import (
	"context"
	"io/fs"

	"github.com/google/uuid"

	"github.com/goliatone/go-richparams/pkg/orchestrator"
	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
	"github.com/goliatone/go-richparams/pkg/renderers/vanilla"
	"github.com/goliatone/go-richparams/pkg/resolve"
	"github.com/goliatone/go-richparams/pkg/schema"
	"github.com/goliatone/go-richparams/pkg/submission"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// Schema aliases parameter.Schema.
type Schema = parameter.Schema

// Value aliases parameter.Value.
type Value = parameter.Value

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a schema loader.
func NewLoader(options ...schema.Option) *schema.Loader {
	return schema.NewLoader(options...)
}

// GenerateHTML loads the schemas behind source and renders them using the
// named renderer. It is the simplest entry point for callers that just want
// HTML output.
func GenerateHTML(ctx context.Context, source schema.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromParameters renders already loaded schemas, bypassing the
// loader stage.
func GenerateHTMLFromParameters(ctx context.Context, params []Schema, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	if params == nil {
		params = []Schema{}
	}
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Parameters:    params,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// InitialValues resolves the value each field starts with.
func InitialValues(params []Schema) []Value {
	return resolve.InitialValues(params)
}

// NewSession starts a template-variables session for templateID.
func NewSession(templateID uuid.UUID, variables []Schema, opts ...submission.SessionOption) (*submission.Session, error) {
	return submission.NewSession(templateID, variables, opts...)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
