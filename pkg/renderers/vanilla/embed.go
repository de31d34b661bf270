package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/components/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle. Callers overriding a
// template through WithTemplatesFS must keep the same paths.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
