package modelgen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"genetics/pkg/naming"
	"genetics/pkg/schemas"
)

// GenerateObject describes the Go struct for a model: one field per attribute,
// in declaration order.
func GenerateObject(m *schemas.Model) *Object {
	obj := &Object{
		Name: identifier(m.OutputName(), "Model"),
	}
	obj.Comment = fmt.Sprintf("%s is generated from the %q model.", obj.Name, m.ID())

	for _, na := range m.Attributes() {
		field := Field{
			Name: identifier(naming.BigCamel(na.Name), "Field"),
			Type: getTokenType(na.Attribute.String()),
			Tags: make(map[string]string),
		}
		if isFallback(na.Attribute) {
			field.Comment = "unrecognized type " + strconv.Quote(na.Attribute.String())
		}
		setFieldJsonTag(&field, na.Name, na.Attribute.Optional())

		obj.Fields = append(obj.Fields, field)
	}
	return obj
}

// getTokenType maps a type token to a Go type. Optional scalars become
// pointers; slices are already nil-able and stay plain.
func getTokenType(token string) (ret Type) {
	switch schemas.Classify(token) {
	case schemas.KindInt:
		ret = Type{Name: "int"}
	case schemas.KindDate:
		ret = Type{Name: "Time", Domain: "time"}
	case schemas.KindArray:
		elem, _ := schemas.ElementToken(token)
		elemType := getTokenType(elem)
		ret = Type{Elem: &elemType}
	default:
		ret = Type{Name: "string"}
	}

	if ret.Elem == nil && schemas.IsOptional(token) {
		ret.NilAble = true
	}
	return
}

func setFieldJsonTag(field *Field, name string, optional bool) {
	field.Tags["json"] = name
	if optional {
		field.Tags["json"] += ",omitempty"
	}
}

// isFallback reports tokens that only classify as string by default.
func isFallback(a schemas.Attribute) bool {
	return a.Kind() == schemas.KindString && !strings.HasPrefix(a.String(), "string")
}

// identifier prefixes names that cannot start a Go identifier.
func identifier(name, prefix string) string {
	c, _ := utf8.DecodeRuneInString(name)
	if name == "" || !unicode.IsLetter(c) {
		return prefix + name
	}
	return name
}
