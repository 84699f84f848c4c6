package contact

import "github.com/goliatone/go-contactform/pkg/validation"

// Error texts surfaced next to failing inputs.
const (
	MsgFirstNameLength = "firstName must have at least 5 characters."
	MsgLastNameMissing = "lastName is a required field."
	MsgEmailMissing    = "email is required."
	MsgEmailInvalid    = "email must be a valid email address."
)

// FirstNameMinLength is the shortest accepted first name, in characters.
const FirstNameMinLength = 5

// rules is ordered per field: required checks come before format checks so
// only the first failure is reported.
var rules = [fieldCount][]validation.Rule{
	FirstName: {validation.MinLength(FirstNameMinLength, MsgFirstNameLength)},
	LastName:  {validation.Required(MsgLastNameMissing)},
	Email: {
		validation.Required(MsgEmailMissing),
		validation.Email(MsgEmailInvalid),
	},
	Message: nil,
}

// Rules returns the ordered rules applied to f.
func Rules(f Field) []validation.Rule {
	if !f.Valid() {
		return nil
	}
	return append([]validation.Rule(nil), rules[f]...)
}

// Validate evaluates the rules for a single field and returns the failing
// message, if any.
func Validate(f Field, value string) (string, bool) {
	if !f.Valid() {
		return "", true
	}
	rule, ok := validation.Evaluate(value, rules[f]...)
	if ok {
		return "", true
	}
	return rule.Message, false
}

// ValidateAll evaluates every field of v.
func ValidateAll(v Values) Errors {
	var errs Errors
	for _, f := range Fields() {
		if msg, ok := Validate(f, v.Get(f)); !ok {
			errs.set(f, msg)
		}
	}
	return errs
}
