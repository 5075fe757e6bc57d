package schemas

// Attribute is one declared field of a model, kept as its raw type token.
// Kind, optionality and element type are all derived from the token on demand.
type Attribute struct {
	token string
}

func NewAttribute(token string) Attribute {
	return Attribute{token: token}
}

func (a Attribute) Optional() bool {
	return IsOptional(a.token)
}

func (a Attribute) Kind() Kind {
	return Classify(a.token)
}

// Element is the raw element token of an array attribute ("[string]" -> "string").
// It is empty for every other kind and is not classified itself.
func (a Attribute) Element() string {
	if a.Kind() != KindArray {
		return ""
	}
	elem, _ := ElementToken(a.token)
	return elem
}

// String returns the token exactly as it appeared in the schema.
func (a Attribute) String() string {
	return a.token
}
