package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
	"github.com/goliatone/go-richparams/pkg/renderers/vanilla"
	"github.com/goliatone/go-richparams/pkg/schema"
)

const defaultRendererName = vanilla.Name

// Loader fetches the ordered parameter schemas behind a source.
type Loader interface {
	Load(ctx context.Context, src schema.Source) ([]parameter.Schema, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom schema loader.
func WithLoader(loader Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request names none.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformers registers transformers applied in order after loading.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		for _, t := range transformers {
			if t != nil {
				o.transformers = append(o.transformers, t)
			}
		}
	}
}

// Orchestrator runs load → transform → render.
type Orchestrator struct {
	loader          Loader
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	initialiseErr   error
}

// New constructs an Orchestrator. Missing dependencies get the built-in
// implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}

	if o.loader == nil {
		o.loader = schema.NewLoader()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	return o
}

// Request describes one render.
type Request struct {
	// Source identifies the schema document. Optional when Parameters is set.
	Source schema.Source
	// Parameters bypasses the loader.
	Parameters []parameter.Schema
	// Form carries the chrome (id, title, action, method). Its Parameters are
	// replaced by the loaded schemas.
	Form render.Form
	// Renderer names the renderer; empty selects the default.
	Renderer string
	// RenderOptions is handed to the renderer untouched.
	RenderOptions render.RenderOptions
}

// Generate loads the schemas, applies the transformers and renders the form.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, renderer, err := o.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Prepare runs the pipeline up to rendering and returns the form together with
// the renderer that would draw it.
func (o *Orchestrator) Prepare(ctx context.Context, req Request) (render.Form, render.Renderer, error) {
	if ctx == nil {
		return render.Form{}, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.Form{}, nil, err
	}
	if o.initialiseErr != nil {
		return render.Form{}, nil, o.initialiseErr
	}

	params, err := o.resolveParameters(ctx, req)
	if err != nil {
		return render.Form{}, nil, err
	}

	form := req.Form
	form.Parameters = params
	for _, t := range o.transformers {
		if err := t.Transform(ctx, &form); err != nil {
			return render.Form{}, nil, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return render.Form{}, nil, err
	}
	return form, renderer, nil
}

func (o *Orchestrator) resolveParameters(ctx context.Context, req Request) ([]parameter.Schema, error) {
	if req.Parameters != nil {
		params := make([]parameter.Schema, len(req.Parameters))
		copy(params, req.Parameters)
		return params, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or parameters are required")
	}
	params, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load parameters: %w", err)
	}
	return params, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err == nil {
		return renderer, nil
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}

	// The configured default is missing; fall back to the registry's own.
	renderer, err = o.registry.Get("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: no usable renderer: %w", err)
	}
	return renderer, nil
}
