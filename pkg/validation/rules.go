package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// emailPattern accepts local@domain.tld addresses: a dot-separated local part
// without whitespace or delimiter characters, at least one domain label and a
// top-level label of two or more characters.
var emailPattern = regexp.MustCompile(`^[^\s@<>()\[\]\\.,;:"]+(\.[^\s@<>()\[\]\\.,;:"]+)*@([^\s@<>()\[\]\\.,;:"]+\.)+[^\s@<>()\[\]\\.,;:"0-9]{2,}$`)

// Kind names the predicate a Rule applies.
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minLength"
	KindEmail     Kind = "email"
)

// Rule pairs a pure predicate over a string value with the message surfaced
// when the predicate fails.
type Rule struct {
	Kind    Kind
	Message string
	check   func(string) bool
}

// Passes reports whether value satisfies the rule. The zero Rule always passes.
func (r Rule) Passes(value string) bool {
	if r.check == nil {
		return true
	}
	return r.check(value)
}

// Required fails for empty values.
func Required(message string) Rule {
	return Rule{
		Kind:    KindRequired,
		Message: message,
		check: func(value string) bool {
			return value != ""
		},
	}
}

// MinLength fails when value holds fewer than n runes. Empty values fail too,
// so a single MinLength rule also covers required-ness.
func MinLength(n int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("must have at least %d characters.", n)
	}
	return Rule{
		Kind:    KindMinLength,
		Message: message,
		check: func(value string) bool {
			return value != "" && utf8.RuneCountInString(value) >= n
		},
	}
}

// Email fails for values that do not look like local@domain.tld. Empty values
// are left to a Required rule ordered before it.
func Email(message string) Rule {
	return Rule{
		Kind:    KindEmail,
		Message: message,
		check: func(value string) bool {
			return value == "" || IsEmail(value)
		},
	}
}

// IsEmail reports whether value matches the local@domain.tld pattern.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// Evaluate runs rules in order and returns the first failing one. Only one
// message per value is ever reported.
func Evaluate(value string, rules ...Rule) (Rule, bool) {
	for _, rule := range rules {
		if !rule.Passes(value) {
			return rule, false
		}
	}
	return Rule{}, true
}
