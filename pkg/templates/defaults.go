package templates

import (
	"embed"

	"github.com/arthur-debert/schemer/pkg/types"
)

//go:embed embedded/*.tmpl
var embeddedTemplates embed.FS

// DefaultTemplate returns the built-in template text for kind
func DefaultTemplate(kind types.ScriptKind) string {
	data, err := embeddedTemplates.ReadFile("embedded/" + kind.TemplateFile())
	if err != nil {
		return ""
	}
	return string(data)
}
