package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers use to reflect the
// controller state without mutating the form model pipeline.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by field name.
	Values map[string]string
	// Errors carries the message shown next to each failing field. The
	// controller reports at most one message per field; mapped server payloads
	// may carry more.
	Errors map[string][]string
	// FormErrors are messages not bound to any field.
	FormErrors []string
	// Submission is the last accepted snapshot. Nil hides the display region.
	Submission *Submission
	// Theme carries resolved tokens, CSS variables and asset resolution.
	Theme *theme.RendererConfig
}

// ErrorCount returns the number of field messages plus form level messages.
func (o RenderOptions) ErrorCount() int {
	count := len(o.FormErrors)
	for _, messages := range o.Errors {
		count += len(messages)
	}
	return count
}
