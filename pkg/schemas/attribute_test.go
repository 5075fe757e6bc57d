package schemas

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttribute(t *testing.T) {
	cases := []struct {
		token    string
		kind     Kind
		optional bool
		element  string
	}{
		{"string", KindString, false, ""},
		{"int?", KindInt, true, ""},
		{"date", KindDate, false, ""},
		{"[string]", KindArray, false, "string"},
		{"[date?]", KindArray, false, "date?"},
		{"?", KindString, true, ""},
		{"uuid", KindString, false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			a := NewAttribute(tc.token)
			assert.Equal(t, tc.kind, a.Kind())
			assert.Equal(t, tc.optional, a.Optional())
			assert.Equal(t, tc.element, a.Element())
		})
	}
}

func TestAttribute_RoundTrip(t *testing.T) {
	for _, token := range []string{"", "int?", "[string]", "  spaced ", "weird\ttoken?", "ünïcode"} {
		a := NewAttribute(token)
		assert.Equal(t, token, a.String())
		assert.Equal(t, token, fmt.Sprint(a))
	}
}
