package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"genetics/pkg/naming"
)

// Model is one named entry of the schema's "models" object.
type Model struct {
	id         string
	attributes *orderedmap.OrderedMap[string, Attribute]
}

// NamedAttribute pairs an attribute with the key it was declared under.
type NamedAttribute struct {
	Name      string
	Attribute Attribute
}

// NewModel wraps every value of content in an Attribute, keeping content's order.
// Values that are not strings are kept as their compact JSON text, so 5 becomes
// the token "5" and null becomes "null".
func NewModel(id string, content *orderedmap.OrderedMap[string, any]) *Model {
	m := &Model{
		id:         id,
		attributes: orderedmap.New[string, Attribute](),
	}
	if content == nil {
		return m
	}

	for pair := content.Oldest(); pair != nil; pair = pair.Next() {
		m.attributes.Set(pair.Key, NewAttribute(tokenOf(pair.Value)))
	}
	return m
}

func tokenOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// ID is the model's key in the schema.
func (m *Model) ID() string {
	return m.id
}

// OutputName is the singular, capitalized form of ID: "blog_posts" -> "BlogPost".
// It names the generated file and, by convention, the generated type.
func (m *Model) OutputName() string {
	return naming.Classify(m.id)
}

func (m *Model) Len() int {
	return m.attributes.Len()
}

func (m *Model) Attribute(name string) (Attribute, bool) {
	return m.attributes.Get(name)
}

// Attributes returns the model's attributes in declaration order.
func (m *Model) Attributes() []NamedAttribute {
	out := make([]NamedAttribute, 0, m.attributes.Len())
	for pair := m.attributes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, NamedAttribute{Name: pair.Key, Attribute: pair.Value})
	}
	return out
}

// Context is the data a template sees for one model. It is a detached copy:
// templates can read it but cannot reach the model or anything else.
type Context struct {
	OutputName string
	Attributes []ContextAttribute
}

type ContextAttribute struct {
	Name     string
	Token    string
	Kind     Kind
	Optional bool
	Element  string // raw element token, arrays only
}

func (m *Model) Context() Context {
	ctx := Context{
		OutputName: m.OutputName(),
		Attributes: make([]ContextAttribute, 0, m.attributes.Len()),
	}
	for _, na := range m.Attributes() {
		ctx.Attributes = append(ctx.Attributes, ContextAttribute{
			Name:     na.Name,
			Token:    na.Attribute.String(),
			Kind:     na.Attribute.Kind(),
			Optional: na.Attribute.Optional(),
			Element:  na.Attribute.Element(),
		})
	}
	return ctx
}

func (m *Model) String() string {
	var b strings.Builder
	b.WriteString(m.id)
	b.WriteString(":")
	for _, na := range m.Attributes() {
		fmt.Fprintf(&b, "\n\t %s: %s", na.Name, na.Attribute)
	}
	return b.String()
}
