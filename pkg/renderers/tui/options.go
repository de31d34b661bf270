package tui

import (
	"github.com/goliatone/go-richparams/pkg/parameter"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the values as a JSON array of {name, value}.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded pairs.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits name=value lines with sensitive values masked.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme holds optional message prefixes.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// SubmitTransformer rewrites the collected values before serialization.
type SubmitTransformer func([]parameter.Value) ([]parameter.Value, error)

// Observer receives every applied edit, tagged with the parameter name.
type Observer func(name, value string)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the survey-backed prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer installs a transformer applied before serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithObserver streams applied edits as they happen.
func WithObserver(fn Observer) Option {
	return func(r *Renderer) {
		r.observer = fn
	}
}

// WithMaxAttempts bounds the re-prompts of a single parameter. Zero or less
// means unbounded.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		r.maxAttempts = n
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
