package vanilla

import (
	"strconv"
	"strings"
	"unicode"
)

// controlID derives an element id from a parameter name. Characters outside
// letters, digits, '-' and '_' become '-'.
func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("rp-")
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('-')
	}
	return b.String()
}

func labelID(name string) string {
	id := controlID(name)
	if id == "" {
		return ""
	}
	return id + "-label"
}

func choiceID(name string, index int) string {
	return controlID(name) + "-" + strconv.Itoa(index)
}

func normalizeMethod(method string) string {
	if strings.EqualFold(strings.TrimSpace(method), "get") {
		return "get"
	}
	return "post"
}
