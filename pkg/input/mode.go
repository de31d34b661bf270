package input

import (
	"strings"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

// Mode is the input-method constraint of a free-text field.
type Mode string

const (
	ModeText    Mode = "text"
	ModeNumeric Mode = "numeric"
)

const numericRunes = "0123456789.-+eE"

// ModeFor derives the input mode from the schema type.
func ModeFor(s parameter.Schema) Mode {
	if s.Type == parameter.TypeNumber {
		return ModeNumeric
	}
	return ModeText
}

// Accepts reports whether text can be typed into a field using this mode. The
// numeric mode filters keystrokes only; it does not parse the number.
func (m Mode) Accepts(text string) bool {
	if m != ModeNumeric {
		return true
	}
	for _, r := range text {
		if !strings.ContainsRune(numericRunes, r) {
			return false
		}
	}
	return true
}

// HTMLType maps the mode to an HTML input type attribute.
func (m Mode) HTMLType() string {
	if m == ModeNumeric {
		return "number"
	}
	return "text"
}
