package submission

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateVariable is returned when a session is created from a
	// variable list that repeats a name.
	ErrDuplicateVariable = errors.New("submission: duplicate variable name")
	// ErrUnknownVariable is returned when an edit targets a name the session
	// does not know.
	ErrUnknownVariable = errors.New("submission: unknown variable")
	// ErrRejectedEdit is returned when the target field refuses the edit
	// (disabled field, value not offered, filtered keystroke).
	ErrRejectedEdit = errors.New("submission: edit rejected")
	// ErrMissingName is returned for variables without a name.
	ErrMissingName = errors.New("submission: variable name is required")
)

// ValidationError lists required variables left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission: missing required variables: %s", strings.Join(e.Missing, ", "))
}

// Fields maps each missing variable to a field-level message, in the shape
// renderers accept through RenderOptions.Errors.
func (e *ValidationError) Fields() map[string][]string {
	if e == nil || len(e.Missing) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e.Missing))
	for _, name := range e.Missing {
		out[name] = []string{"required"}
	}
	return out
}
