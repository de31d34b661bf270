package tui

import (
	"github.com/goliatone/go-richparams/pkg/input"
	"github.com/goliatone/go-richparams/pkg/parameter"
)

// State tracks the fields of one prompt run, the edits they received and the
// server-provided errors keyed by parameter name.
type State struct {
	fields []*input.Field
	edits  map[string]int
	errors map[string][]string
}

// NewState builds an empty state carrying errs.
func NewState(errs map[string][]string) *State {
	return &State{
		edits:  make(map[string]int),
		errors: cloneErrors(errs),
	}
}

// Track registers a field so its value is part of Values.
func (s *State) Track(field *input.Field) {
	s.fields = append(s.fields, field)
}

// Recorder returns the change func for the named parameter. observer may be
// nil.
func (s *State) Recorder(name string, observer Observer) input.ChangeFunc {
	return func(value string) {
		s.edits[name]++
		if observer != nil {
			observer(name, value)
		}
	}
}

// Edits reports how many edits the named parameter received.
func (s *State) Edits(name string) int {
	return s.edits[name]
}

// ErrorsFor returns the errors attached to a parameter.
func (s *State) ErrorsFor(name string) []string {
	return s.errors[name]
}

// Values returns the current value of every tracked field in order.
func (s *State) Values() []parameter.Value {
	out := make([]parameter.Value, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.Resolved())
	}
	return out
}

func cloneErrors(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for k, v := range src {
		out[k] = append([]string(nil), v...)
	}
	return out
}
