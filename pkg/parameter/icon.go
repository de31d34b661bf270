package parameter

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// IconMarkup returns a sanitised <img> element for a parameter or option icon.
// Icons are server-supplied URIs (absolute http(s) or site-relative paths);
// anything else is stripped by the policy. Empty sources yield "".
func IconMarkup(src, alt, class string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(html.EscapeString(src))
	b.WriteString(`" alt="`)
	b.WriteString(html.EscapeString(alt))
	b.WriteString(`"`)
	if class = strings.TrimSpace(class); class != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(class))
		b.WriteString(`"`)
	}
	b.WriteString(`>`)

	cleaned := strings.TrimSpace(iconSanitizer().Sanitize(b.String()))
	if !strings.Contains(cleaned, "src=") {
		return ""
	}
	return cleaned
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("img")
		policy.AllowAttrs("src").OnElements("img")
		policy.AllowAttrs("alt", "class").OnElements("img")
		policy.AllowURLSchemes("http", "https")
		policy.AllowRelativeURLs(true)
		policy.RequireParseableURLs(true)
		iconPolicy = policy
	})
	return iconPolicy
}
