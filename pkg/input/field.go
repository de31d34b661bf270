package input

import "github.com/goliatone/go-richparams/pkg/parameter"

// ChangeFunc receives every applied edit of a field. It is called
// synchronously, once per edit, with the field's new value.
type ChangeFunc func(value string)

// Field is a rendered parameter input and its edit state.
type Field struct {
	schema   parameter.Schema
	variant  Variant
	choices  []Choice
	mode     Mode
	disabled bool
	onChange ChangeFunc
	value    string
}

// New creates a field for schema seeded with initialValue. The initial value is
// stored verbatim; choice variants do not coerce it.
func New(schema parameter.Schema, initialValue string, disabled bool, onChange ChangeFunc) *Field {
	variant := Dispatch(schema)
	return &Field{
		schema:   schema,
		variant:  variant,
		choices:  choicesFor(variant, schema),
		mode:     ModeFor(schema),
		disabled: disabled,
		onChange: onChange,
		value:    initialValue,
	}
}

// Schema returns the schema the field was built from.
func (f *Field) Schema() parameter.Schema { return f.schema }

// Name returns the schema name.
func (f *Field) Name() string { return f.schema.Name }

// Variant returns the dispatched presentation variant.
func (f *Field) Variant() Variant { return f.variant }

// Disabled reports whether user edits are ignored.
func (f *Field) Disabled() bool { return f.disabled }

// Value returns the current edit state.
func (f *Field) Value() string { return f.value }

// Mode returns the free-text input mode. Choice variants report ModeText.
func (f *Field) Mode() Mode {
	if f.variant != VariantFreeText {
		return ModeText
	}
	return f.mode
}

// Placeholder is the advisory text shown while a free-text field is empty. It
// is never committed as a value.
func (f *Field) Placeholder() string {
	if f.variant != VariantFreeText {
		return ""
	}
	return f.schema.DefaultValue
}

// ShowPlaceholder reports whether the placeholder is currently visible.
func (f *Field) ShowPlaceholder() bool {
	return f.variant == VariantFreeText && f.value == "" && f.schema.DefaultValue != ""
}

// Choices returns the selectable entries in declared order. Free-text fields
// have none.
func (f *Field) Choices() []Choice {
	if len(f.choices) == 0 {
		return nil
	}
	out := make([]Choice, len(f.choices))
	copy(out, f.choices)
	return out
}

// Selected returns the choice matching the current value. No choice is
// selected when the value is not one of the offered choice values, which is
// how a bool field seeded with a non-boolean value starts out.
func (f *Field) Selected() (Choice, int, bool) {
	for i, c := range f.choices {
		if c.Value == f.value {
			return c, i, true
		}
	}
	return Choice{}, -1, false
}

// Choose selects the choice carrying value. It returns false, leaving state
// untouched and without notifying, when the field is disabled, is free text,
// or value is not offered.
func (f *Field) Choose(value string) bool {
	if f.disabled || !f.variant.IsChoice() {
		return false
	}
	for _, c := range f.choices {
		if c.Value == value {
			f.apply(c.Value)
			return true
		}
	}
	return false
}

// SelectIndex selects the choice at position i. The emitted value is the
// choice value, not its label.
func (f *Field) SelectIndex(i int) bool {
	if f.disabled || !f.variant.IsChoice() {
		return false
	}
	if i < 0 || i >= len(f.choices) {
		return false
	}
	f.apply(f.choices[i].Value)
	return true
}

// Input replaces the text of a free-text field. Keystrokes rejected by the
// input mode are dropped and reported with false.
func (f *Field) Input(text string) bool {
	if f.disabled || f.variant != VariantFreeText {
		return false
	}
	if !f.mode.Accepts(text) {
		return false
	}
	f.apply(text)
	return true
}

// Reset replaces the edit state without notifying the change func. Hosts use
// it to restore a value they already know about.
func (f *Field) Reset(value string) {
	f.value = value
}

// Resolved projects the field into a name/value pair.
func (f *Field) Resolved() parameter.Value {
	return parameter.Value{Name: f.schema.Name, Value: f.value}
}

func (f *Field) apply(value string) {
	f.value = value
	if f.onChange != nil {
		f.onChange(value)
	}
}
