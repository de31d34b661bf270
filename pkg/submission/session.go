package submission

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-richparams/pkg/input"
	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/resolve"
)

// Observer is notified after every applied edit with the variable name and the
// new value.
type Observer func(name, value string)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithObserver registers a callback for applied edits.
func WithObserver(fn Observer) SessionOption {
	return func(s *Session) {
		s.observer = fn
	}
}

// WithReadOnly disables every field of the session.
func WithReadOnly(readOnly bool) SessionOption {
	return func(s *Session) {
		s.readOnly = readOnly
	}
}

// Session is a template-variables form in progress.
type Session struct {
	templateID uuid.UUID
	schemas    []parameter.Schema
	fields     []*input.Field
	index      map[string]int
	observer   Observer
	readOnly   bool
}

// NewSession creates a session for templateID. Variables are resolved once,
// here, to seed each field.
func NewSession(templateID uuid.UUID, variables []parameter.Schema, opts ...SessionOption) (*Session, error) {
	s := &Session{
		templateID: templateID,
		schemas:    append([]parameter.Schema(nil), variables...),
		index:      make(map[string]int, len(variables)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	initial := resolve.InitialValues(s.schemas)
	s.fields = make([]*input.Field, len(s.schemas))
	for i, schema := range s.schemas {
		name := schema.Name
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrMissingName, i)
		}
		if _, exists := s.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		s.index[name] = i
		s.fields[i] = input.New(schema, initial[i].Value, s.readOnly, s.notify(name))
	}
	return s, nil
}

func (s *Session) notify(name string) input.ChangeFunc {
	return func(value string) {
		if s.observer != nil {
			s.observer(name, value)
		}
	}
}

// TemplateID returns the template the session submits for.
func (s *Session) TemplateID() uuid.UUID { return s.templateID }

// Schemas returns the variable schemas in session order.
func (s *Session) Schemas() []parameter.Schema {
	return append([]parameter.Schema(nil), s.schemas...)
}

// Fields returns the session fields in schema order.
func (s *Session) Fields() []*input.Field {
	return append([]*input.Field(nil), s.fields...)
}

// Field returns the field for name.
func (s *Session) Field(name string) (*input.Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[idx], true
}

// Set applies a user edit to the named variable through its input variant:
// choice variants select the choice carrying value, free text replaces the
// text.
func (s *Session) Set(name, value string) error {
	field, ok := s.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	var applied bool
	if field.Variant().IsChoice() {
		applied = field.Choose(value)
	} else {
		applied = field.Input(value)
	}
	if !applied {
		return fmt.Errorf("%w: %q", ErrRejectedEdit, name)
	}
	return nil
}

// Apply pre-fills fields from host-supplied values without treating them as
// user edits. Names the session does not know are returned in input order.
func (s *Session) Apply(values []parameter.Value) []string {
	var unknown []string
	for _, v := range values {
		field, ok := s.Field(v.Name)
		if !ok {
			unknown = append(unknown, v.Name)
			continue
		}
		field.Reset(v.Value)
	}
	return unknown
}

// Values projects the current edit state in schema order.
func (s *Session) Values() []parameter.Value {
	out := make([]parameter.Value, len(s.fields))
	for i, field := range s.fields {
		out[i] = field.Resolved()
	}
	return out
}

// Validate runs the presence check on required variables.
func (s *Session) Validate() error {
	var missing []string
	for _, field := range s.fields {
		if field.Schema().Required && strings.TrimSpace(field.Value()) == "" {
			missing = append(missing, field.Name())
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Request builds the submission payload from the current edit state.
func (s *Session) Request() CreateTemplateVersionRequest {
	return NewRequest(s.templateID, s.Values())
}
