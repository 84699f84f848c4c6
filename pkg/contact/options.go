package contact

// Option configures a Controller.
type Option func(*Controller)

// Logger receives debug-level notes about rejected submits and ignored
// changes. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Sanitizer rewrites values captured into a snapshot. *bluemonday.Policy
// satisfies it, though StrictSanitizer is usually the better fit for plain
// text displays.
type Sanitizer interface {
	Sanitize(string) string
}

// WithLogger routes controller notes to logger.
func WithLogger(logger Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSanitizer applies s to every value captured by a successful submit.
// Validation always runs against the raw input.
func WithSanitizer(s Sanitizer) Option {
	return func(c *Controller) {
		c.sanitizer = s
	}
}

// WithInitialValues pre-populates the live fields. Prefilled values are not
// validated until they change or the form is submitted.
func WithInitialValues(values Values) Option {
	return func(c *Controller) {
		c.values = values
	}
}
