// Package naming holds the string transforms used to turn schema keys into
// type, field and file names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

type NameStyle interface {
	Format(name string) string
}

type NameStyleFunc func(name string) string

func (f NameStyleFunc) Format(name string) string {
	return f(name)
}

// BigCamelStyle joins capitalized words: "int_views" -> "IntViews".
var BigCamelStyle NameStyleFunc = func(name string) string {
	words := Words(name)
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, "")
}

// LowerCamelStyle is BigCamelStyle with the first word lower-cased: "HTTPServer" -> "httpServer".
var LowerCamelStyle NameStyleFunc = func(name string) string {
	words := Words(name)
	for i, word := range words {
		if i == 0 {
			words[i] = strings.ToLower(word)
			continue
		}
		words[i] = upperFirst(word)
	}
	return strings.Join(words, "")
}

var SnakeStyle NameStyleFunc = func(name string) string {
	words := Words(name)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// ClassifyStyle turns a plural, table-like name into a type name.
// Any qualifier up to the last '.' is dropped, the last word is singularized
// and every word is capitalized: "blog_posts" -> "BlogPost".
var ClassifyStyle NameStyleFunc = func(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	words := Words(name)
	if len(words) == 0 {
		return ""
	}
	last := len(words) - 1
	words[last] = Singularize(words[last])
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, "")
}

// Classify is ClassifyStyle as a plain function.
func Classify(name string) string {
	return ClassifyStyle(name)
}

func BigCamel(name string) string {
	return BigCamelStyle(name)
}

func LowerCamel(name string) string {
	return LowerCamelStyle(name)
}

func Snake(name string) string {
	return SnakeStyle(name)
}

var rules = newRuleset()

func newRuleset() *inflect.Ruleset {
	rs := inflect.NewDefaultRuleset()
	// the default "us" rule would turn these into "statu" and "alia"
	rs.AddSingular("status", "status")
	rs.AddSingular("alias", "alias")
	return rs
}

// Singularize matches rules case-insensitively and keeps the word's casing
// when it is all lower, all upper or capitalized: "POSTS" -> "POST".
func Singularize(word string) string {
	return inflectCased(word, rules.Singularize)
}

func Pluralize(word string) string {
	return inflectCased(word, rules.Pluralize)
}

func inflectCased(word string, fn func(string) string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	switch word {
	case lower:
		return fn(lower)
	case strings.ToUpper(word):
		return strings.ToUpper(fn(lower))
	case upperFirst(lower):
		return upperFirst(fn(lower))
	}
	return fn(word)
}

// Words splits name into its word segments. Any rune that is neither a letter
// nor a digit separates words, and so do case changes ("blogPost", "HTTPServer").
func Words(name string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	runes := []rune(name)
	for i, c := range runes {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(c) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, c)
	}
	flush()

	return words
}

func upperFirst(word string) string {
	c, size := utf8.DecodeRuneInString(word)
	if c == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(c)) + word[size:]
}
