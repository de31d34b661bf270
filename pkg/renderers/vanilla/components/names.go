package components

import "github.com/goliatone/go-richparams/pkg/input"

// Canonical component names used by the vanilla renderer and default registry.
const (
	NameBoolean = "boolean"
	NameRadio   = "radio"
	NameInput   = "input"
)

// NameForVariant maps an input variant onto the component that renders it.
func NameForVariant(v input.Variant) string {
	switch v {
	case input.VariantBinaryChoice:
		return NameBoolean
	case input.VariantEnumeratedChoice:
		return NameRadio
	default:
		return NameInput
	}
}
