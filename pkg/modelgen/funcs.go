package modelgen

import (
	"strings"
	"text/template"

	"genetics/pkg/naming"
	"genetics/pkg/schemas"
)

// TemplateFuncs are the helpers available to every template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"camel":      naming.BigCamel,
		"lowerCamel": naming.LowerCamel,
		"snake":      naming.Snake,
		"classify":   naming.Classify,
		"singular":   naming.Singularize,
		"plural":     naming.Pluralize,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		// kindOf and optional classify raw tokens, e.g. an array's .Element.
		"kindOf":   schemas.Classify,
		"optional": schemas.IsOptional,
		"element": func(token string) string {
			elem, _ := schemas.ElementToken(token)
			return elem
		},
	}
}
