package schemas

import (
	"regexp"
	"strings"
)

// Kind is the type inferred from an attribute's type token.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindDate
	KindArray
)

var kindNames = [...]string{
	KindString: "string",
	KindInt:    "int",
	KindDate:   "date",
	KindArray:  "array",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "string"
	}
	return kindNames[k]
}

func (k Kind) IsString() bool { return k == KindString }
func (k Kind) IsInt() bool    { return k == KindInt }
func (k Kind) IsDate() bool   { return k == KindDate }
func (k Kind) IsArray() bool  { return k == KindArray }

// arrayToken matches "[<element>]" with nothing before or after.
var arrayToken = regexp.MustCompile(`^\[(.+)\]$`)

// Classify returns the Kind of a type token. Checks run in a fixed order and
// the first match wins, so "intDate" is an int. Unknown tokens are strings.
func Classify(token string) Kind {
	switch {
	case strings.HasPrefix(token, "int"):
		return KindInt
	case strings.HasPrefix(token, "string"):
		return KindString
	case strings.HasPrefix(token, "date"):
		return KindDate
	case arrayToken.MatchString(token):
		return KindArray
	default:
		return KindString
	}
}

// IsOptional reports whether a type token is marked optional with a trailing '?'.
func IsOptional(token string) bool {
	return strings.HasSuffix(token, "?")
}

// ElementToken returns the raw token between the brackets of an array token.
func ElementToken(token string) (string, bool) {
	m := arrayToken.FindStringSubmatch(token)
	if m == nil {
		return "", false
	}
	return m[1], true
}
