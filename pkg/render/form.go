package render

import (
	"github.com/goliatone/go-richparams/pkg/parameter"
)

// Form is the renderer input: an ordered list of parameter schemas plus the
// surrounding submission chrome.
type Form struct {
	ID          string
	Title       string
	Description string
	Action      string
	Method      string
	Parameters  []parameter.Schema
}

// Names returns the parameter names in declaration order.
func (f Form) Names() []string {
	return parameter.Names(f.Parameters)
}

// Lookup returns the first parameter with the given name.
func (f Form) Lookup(name string) (parameter.Schema, bool) {
	for _, p := range f.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return parameter.Schema{}, false
}
