package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-richparams/pkg/input"
	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
	"github.com/goliatone/go-richparams/pkg/resolve"
)

// Name is the registry key of the terminal renderer.
const Name = "tui"

const maskedValue = "********"

// Renderer walks a parameter form through terminal prompts. Each parameter
// becomes an input field; answers are applied as edits and the final values
// are serialized in form order.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	observer          Observer
	maxAttempts       int
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		theme:        Theme{ErrorPrefix: "! "},
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every parameter unless options.ReadOnly is set, in which
// case the resolved values are emitted untouched.
func (r *Renderer) Render(ctx context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	mapping := render.MapErrorPayload(form, options.Errors)
	state := NewState(mapping.Fields)
	for _, message := range mapping.Form {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return nil, err
		}
	}

	initial := resolve.InitialValues(form.Parameters)
	for i, schema := range form.Parameters {
		value := initial[i].Value
		if override, ok := options.Values[schema.Name]; ok && !schema.Sensitive {
			value = override
		}
		field := input.New(schema, value, options.ReadOnly, state.Recorder(schema.Name, r.observer))
		state.Track(field)

		if options.ReadOnly {
			continue
		}
		if err := r.promptField(ctx, field, state); err != nil {
			return nil, fmt.Errorf("tui: parameter %q: %w", schema.Name, err)
		}
	}

	values := state.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(form, values)
}

func (r *Renderer) promptField(ctx context.Context, field *input.Field, state *State) error {
	for _, message := range state.ErrorsFor(field.Name()) {
		if err := r.info(ctx, field, message); err != nil {
			return err
		}
	}

	for attempt := 1; ; attempt++ {
		if r.maxAttempts > 0 && attempt > r.maxAttempts {
			return ErrTooManyAttempts
		}

		var (
			problem string
			err     error
		)
		if field.Variant().IsChoice() {
			problem, err = r.promptChoice(ctx, field)
		} else {
			problem, err = r.promptText(ctx, field)
		}
		if err != nil {
			return err
		}
		if problem == "" && field.Schema().Required && strings.TrimSpace(field.Value()) == "" {
			problem = "a value is required"
		}
		if problem == "" {
			return nil
		}
		if err := r.info(ctx, field, problem); err != nil {
			return err
		}
	}
}

// promptChoice offers the variant's choices by label; the selected index is
// applied so the emitted value is the choice value.
func (r *Renderer) promptChoice(ctx context.Context, field *input.Field) (string, error) {
	choices := field.Choices()
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	_, selected, _ := field.Selected()

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      message(field),
		Options:      labels,
		DefaultIndex: selected,
		Help:         field.Schema().Description,
	})
	if err != nil {
		return "", err
	}
	if !field.SelectIndex(idx) {
		return "not one of the offered choices", nil
	}
	return "", nil
}

// promptText asks for free text. The current value is offered as the default
// answer; the placeholder only appears in the help text.
func (r *Renderer) promptText(ctx context.Context, field *input.Field) (string, error) {
	schema := field.Schema()
	cfg := InputConfig{
		Message: message(field),
		Help:    help(field),
	}

	var (
		answer string
		err    error
	)
	if schema.Sensitive {
		answer, err = r.driver.Password(ctx, cfg)
	} else {
		cfg.Default = field.Value()
		cfg.Validator = func(s string) error {
			if !field.Mode().Accepts(s) {
				return errors.New("only numeric input is accepted")
			}
			return nil
		}
		answer, err = r.driver.Input(ctx, cfg)
	}
	if err != nil {
		return "", err
	}

	if !field.Input(answer) {
		return "only numeric input is accepted", nil
	}
	return "", nil
}

func (r *Renderer) info(ctx context.Context, field *input.Field, msg string) error {
	return r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.Name(), msg))
}

func (r *Renderer) serialize(form render.Form, values []parameter.Value) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(form, values)), nil
	default:
		return json.Marshal(values)
	}
}

func message(field *input.Field) string {
	label := parameter.LabelFor(field.Schema())
	if label.Detailed {
		return fmt.Sprintf("%s (%s)", label.Title, label.Name)
	}
	return label.Title
}

func help(field *input.Field) string {
	parts := make([]string, 0, 2)
	if desc := strings.TrimSpace(field.Schema().Description); desc != "" {
		parts = append(parts, desc)
	}
	if placeholder := field.Placeholder(); placeholder != "" && !field.Schema().Sensitive {
		parts = append(parts, "default: "+placeholder)
	}
	return strings.Join(parts, " | ")
}

func encodeForm(values []parameter.Value) string {
	out := url.Values{}
	for _, v := range values {
		out.Add(v.Name, v.Value)
	}
	return out.Encode()
}

func prettyPrint(form render.Form, values []parameter.Value) string {
	sensitive := make(map[string]bool, len(form.Parameters))
	for _, p := range form.Parameters {
		if p.Sensitive {
			sensitive[p.Name] = true
		}
	}

	var b strings.Builder
	for _, v := range values {
		value := v.Value
		if sensitive[v.Name] && value != "" {
			value = maskedValue
		}
		fmt.Fprintf(&b, "%s=%s\n", v.Name, value)
	}
	return b.String()
}
