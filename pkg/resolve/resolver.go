// Package resolve computes the initial value of every parameter in a form
// session. The rules are pure and total: any schema list maps to exactly one
// value per schema, in the same order.
package resolve

import "github.com/goliatone/go-richparams/pkg/parameter"

// InitialValue applies the precedence rules to a single schema. The first
// matching rule wins:
//
//  1. sensitive schemas always start empty, whatever the default or the
//     persisted value say;
//  2. an empty persisted value falls back to a non-empty default;
//  3. otherwise the persisted value is used verbatim.
func InitialValue(s parameter.Schema) string {
	switch {
	case s.Sensitive:
		return ""
	case s.Value == "" && s.DefaultValue != "":
		return s.DefaultValue
	default:
		return s.Value
	}
}

// InitialValues resolves a batch of schemas. The result has the same length
// and order as the input; names are copied as-is and never deduplicated.
func InitialValues(schemas []parameter.Schema) []parameter.Value {
	out := make([]parameter.Value, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, parameter.Value{
			Name:  s.Name,
			Value: InitialValue(s),
		})
	}
	return out
}

// Lookup indexes resolved values by name. When names repeat, the first
// occurrence wins.
func Lookup(values []parameter.Value) map[string]string {
	out := make(map[string]string, len(values))
	for _, v := range values {
		if _, exists := out[v.Name]; exists {
			continue
		}
		out[v.Name] = v.Value
	}
	return out
}
