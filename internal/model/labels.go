package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler converts a field name into a human-friendly label:
// "firstName" becomes "First Name", "contact_email" becomes "Contact Email".
func DefaultLabeler(name string) string {
	words := strings.FieldsFunc(splitCamel(name), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for idx, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[idx] = string(runes)
	}
	return strings.Join(words, " ")
}

func splitCamel(input string) string {
	runes := []rune(input)
	var out strings.Builder
	for idx, r := range runes {
		if idx > 0 && isBoundary(runes[idx-1], r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	default:
		return false
	}
}
