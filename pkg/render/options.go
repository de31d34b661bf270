package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form.
type RenderOptions struct {
	// Values overrides the resolved initial value of a parameter by name. The
	// console uses it to echo a rejected submission back to the user.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by parameter name.
	Errors map[string][]string
	// ReadOnly disables every field.
	ReadOnly bool
	// ShowOptions renders the "reset to default" action next to fields that
	// carry a non-sensitive default value.
	ShowOptions bool
	// HiddenFields are emitted as hidden inputs (CSRF tokens and the like).
	HiddenFields map[string]string
}
