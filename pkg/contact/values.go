package contact

// Values holds the live content of the four inputs. The zero value is the
// empty form.
type Values struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Get returns the value stored for f, or "" for unknown fields.
func (v Values) Get(f Field) string {
	switch f {
	case FirstName:
		return v.FirstName
	case LastName:
		return v.LastName
	case Email:
		return v.Email
	case Message:
		return v.Message
	default:
		return ""
	}
}

// With returns a copy of v with f set to value. Unknown fields leave the copy
// untouched.
func (v Values) With(f Field, value string) Values {
	switch f {
	case FirstName:
		v.FirstName = value
	case LastName:
		v.LastName = value
	case Email:
		v.Email = value
	case Message:
		v.Message = value
	}
	return v
}

// Map returns the values keyed by canonical field name.
func (v Values) Map() map[string]string {
	out := make(map[string]string, fieldCount)
	for _, f := range Fields() {
		out[f.String()] = v.Get(f)
	}
	return out
}

// IsZero reports whether every field is empty.
func (v Values) IsZero() bool {
	return v == Values{}
}

// Snapshot is the immutable copy of Values captured by a successful submit.
type Snapshot struct {
	values Values
}

// Values returns a copy of the captured values.
func (s Snapshot) Values() Values {
	return s.values
}

// Get returns the captured value for f.
func (s Snapshot) Get(f Field) string {
	return s.values.Get(f)
}

// HasMessage reports whether a non-empty message was submitted. Displays omit
// the message region entirely when this is false.
func (s Snapshot) HasMessage() bool {
	return s.values.Message != ""
}
