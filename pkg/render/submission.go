package render

import (
	"strings"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// SubmittedField is one row of the submission display region.
type SubmittedField struct {
	Name  string
	Value string
	// TestID is the stable hook exposed to UI tests, e.g. "firstnameDisplay".
	TestID string
}

// Submission lists the captured snapshot in display order. The message row is
// only present when the captured message is non-empty.
type Submission struct {
	Fields []SubmittedField
}

// SubmissionFromSnapshot converts an accepted snapshot into display rows.
func SubmissionFromSnapshot(snapshot contact.Snapshot) *Submission {
	fields := []contact.Field{contact.FirstName, contact.LastName, contact.Email}
	if snapshot.HasMessage() {
		fields = append(fields, contact.Message)
	}

	out := &Submission{Fields: make([]SubmittedField, 0, len(fields))}
	for _, field := range fields {
		out.Fields = append(out.Fields, SubmittedField{
			Name:   field.String(),
			Value:  snapshot.Get(field),
			TestID: DisplayTestID(field.String()),
		})
	}
	return out
}

// DisplayTestID derives the display hook for a field name.
func DisplayTestID(name string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "Display"
}

// Value returns the captured value for name.
func (s *Submission) Value(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, field := range s.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}
