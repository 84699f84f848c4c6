package contact

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

type strictSanitizer struct{}

// StrictSanitizer strips every HTML element from a value and returns plain
// text. Entities produced by the policy are decoded again so renderers can
// apply their own escaping exactly once.
func StrictSanitizer() Sanitizer {
	return strictSanitizer{}
}

func (strictSanitizer) Sanitize(value string) string {
	if value == "" || !strings.ContainsAny(value, "<>&") {
		return value
	}
	cleaned := textPolicy().Sanitize(value)
	return html.UnescapeString(cleaned)
}

func textPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
