package render

import (
	"strings"
)

// ErrorMapping splits an error payload into messages attached to a parameter
// and messages that belong to the form as a whole.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload attaches payload messages to parameters by name. Keys that
// name no parameter of the form (including the conventional form-level keys)
// become form errors so nothing is lost.
func MapErrorPayload(form Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(form.Parameters))
	for _, p := range form.Parameters {
		known[p.Name] = struct{}{}
	}

	fields := make(map[string][]string)
	for rawKey, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		key := fieldKey(rawKey)
		if _, ok := known[key]; ok && !isFormLevelKey(rawKey) {
			fields[key] = append(fields[key], normalized...)
			continue
		}
		mapping.Form = append(mapping.Form, normalized...)
	}

	if len(fields) > 0 {
		mapping.Fields = fields
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// fieldKey accepts bare names as well as pointer style keys pointing into the
// request body ("/user_variable_values/region", "rich_parameter_values.region").
func fieldKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = strings.TrimPrefix(key, "#")
	key = strings.Trim(key, "/.")
	for _, prefix := range []string{"user_variable_values", "rich_parameter_values", "body"} {
		for _, sep := range []string{"/", "."} {
			key = strings.TrimPrefix(key, prefix+sep)
		}
	}
	return key
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
