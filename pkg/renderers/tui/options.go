package tui

import (
	"github.com/goliatone/go-contactform/pkg/contact"
)

// Theme captures optional message prefixes. Kept minimal to avoid coupling
// session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is applied when no theme is configured.
var DefaultTheme = Theme{
	InfoPrefix:  "",
	ErrorPrefix: "! ",
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects how the accepted snapshot is serialised.
func WithOutputFormat(format contact.Format) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMaxAttempts bounds the number of rejected submits before the session
// gives up. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

// WithControllerOptions forwards options to the contact.Controller each
// session creates.
func WithControllerOptions(opts ...contact.Option) Option {
	return func(r *Renderer) {
		r.controllerOpts = append(r.controllerOpts, opts...)
	}
}

// WithRepeat asks after each accepted submit whether to fill the form again.
// Render returns the last accepted snapshot.
func WithRepeat(enabled bool) Option {
	return func(r *Renderer) {
		r.repeat = enabled
	}
}

// WithInlineValidation makes single line prompts reject an answer that fails
// its field rules before moving on, so the prompt itself shows the error.
func WithInlineValidation(enabled bool) Option {
	return func(r *Renderer) {
		r.inlineValidation = enabled
	}
}
