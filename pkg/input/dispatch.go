package input

import "github.com/goliatone/go-richparams/pkg/parameter"

// Variant identifies one of the three mutually exclusive input presentations.
type Variant string

const (
	VariantBinaryChoice     Variant = "binary-choice"
	VariantEnumeratedChoice Variant = "enumerated-choice"
	VariantFreeText         Variant = "free-text"
)

// Boolean choice values emitted by the binary-choice variant.
const (
	ValueTrue  = "true"
	ValueFalse = "false"
)

// Dispatch picks the variant for a schema. Order matters: the bool check runs
// before the options check so a bool parameter that also declares options still
// renders as a binary choice.
func Dispatch(s parameter.Schema) Variant {
	switch {
	case s.Type == parameter.TypeBool:
		return VariantBinaryChoice
	case s.HasOptions():
		return VariantEnumeratedChoice
	default:
		return VariantFreeText
	}
}

// IsChoice reports whether the variant offers a fixed set of choices.
func (v Variant) IsChoice() bool {
	return v == VariantBinaryChoice || v == VariantEnumeratedChoice
}

// Choice is one selectable entry of a choice variant.
type Choice struct {
	Label string
	Value string
	Icon  string
}

func choicesFor(variant Variant, s parameter.Schema) []Choice {
	switch variant {
	case VariantBinaryChoice:
		return []Choice{
			{Label: "True", Value: ValueTrue},
			{Label: "False", Value: ValueFalse},
		}
	case VariantEnumeratedChoice:
		out := make([]Choice, len(s.Options))
		for i, opt := range s.Options {
			out[i] = Choice{
				Label: opt.Name,
				Value: opt.Value,
				Icon:  opt.Icon,
			}
		}
		return out
	default:
		return nil
	}
}
