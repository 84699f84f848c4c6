package contact

import (
	"fmt"
	"strings"
)

// Field enumerates the inputs of the contact form. The set is closed; use
// ParseField to convert wire names.
type Field int

const (
	FirstName Field = iota
	LastName
	Email
	Message

	fieldCount
)

var fieldNames = [fieldCount]string{
	FirstName: "firstName",
	LastName:  "lastName",
	Email:     "email",
	Message:   "message",
}

// Fields returns every field in display order.
func Fields() []Field {
	return []Field{FirstName, LastName, Email, Message}
}

// String returns the canonical camelCase name ("firstName", "email", ...).
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Valid reports whether f is one of the four known fields.
func (f Field) Valid() bool {
	return f >= FirstName && f < fieldCount
}

// ParseField resolves a canonical field name. Matching ignores surrounding
// whitespace but not case.
func ParseField(name string) (Field, error) {
	trimmed := strings.TrimSpace(name)
	for idx, candidate := range fieldNames {
		if candidate == trimmed {
			return Field(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
