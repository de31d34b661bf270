package parameter

import (
	"bytes"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// DescriptionMarkup renders a parameter description written in Markdown to
// sanitised HTML. A description that is a single paragraph loses its <p>
// wrapper so it can sit inside a label. Conversion failures fall back to the
// escaped text.
func DescriptionMarkup(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(desc), &buf); err != nil {
		return html.EscapeString(desc)
	}

	out := strings.TrimSpace(descriptionSanitizer().Sanitize(buf.String()))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		descriptionPolicy = policy
	})
	return descriptionPolicy
}
