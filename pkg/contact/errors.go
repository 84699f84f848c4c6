package contact

import "errors"

// ErrUnknownField is returned when a field name or value outside the closed
// field set is supplied.
var ErrUnknownField = errors.New("contact: unknown field")

// FieldError pairs a failing field with the message shown next to it.
type FieldError struct {
	Field   Field
	Message string
}

// Errors holds at most one validation message per field. The zero value has
// no failures.
type Errors struct {
	messages [fieldCount]string
}

// For returns the message attached to f, if any.
func (e Errors) For(f Field) (string, bool) {
	if !f.Valid() || e.messages[f] == "" {
		return "", false
	}
	return e.messages[f], true
}

// Len returns the number of failing fields.
func (e Errors) Len() int {
	count := 0
	for _, msg := range e.messages {
		if msg != "" {
			count++
		}
	}
	return count
}

// Empty reports whether no field is failing.
func (e Errors) Empty() bool {
	return e.Len() == 0
}

// List returns failures in field order.
func (e Errors) List() []FieldError {
	var out []FieldError
	for _, f := range Fields() {
		if msg, ok := e.For(f); ok {
			out = append(out, FieldError{Field: f, Message: msg})
		}
	}
	return out
}

// Map returns failures keyed by canonical field name, in the shape renderers
// accept for inline errors. Nil when empty.
func (e Errors) Map() map[string][]string {
	list := e.List()
	if len(list) == 0 {
		return nil
	}
	out := make(map[string][]string, len(list))
	for _, item := range list {
		out[item.Field.String()] = []string{item.Message}
	}
	return out
}

func (e *Errors) set(f Field, message string) {
	if f.Valid() {
		e.messages[f] = message
	}
}
