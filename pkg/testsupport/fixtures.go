package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/internal/openapi/parser"
	"github.com/goliatone/go-contactform/pkg/contact"
	pkgmodel "github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
)

// ContactForm parses the bundled contact document and builds its form model.
func ContactForm(t *testing.T) pkgmodel.FormModel {
	t.Helper()

	ops, err := parser.New(pkgopenapi.NewParserOptions()).Operations(Context(), pkgopenapi.ContactDocument())
	if err != nil {
		t.Fatalf("parse contact document: %v", err)
	}
	op, ok := ops[pkgopenapi.ContactOperationID]
	if !ok {
		t.Fatalf("operation %q not found", pkgopenapi.ContactOperationID)
	}
	form, err := pkgmodel.NewBuilder().Build(op)
	if err != nil {
		t.Fatalf("build contact form: %v", err)
	}
	return form
}

// ValidValues returns a submission that passes every rule.
func ValidValues() contact.Values {
	return contact.Values{
		FirstName: "Tamara",
		LastName:  "Leonard",
		Email:     "tamaraleonard46@gmail.com",
	}
}

// Controller returns a controller with each value applied through SetField,
// so per-field validation runs as it would for a user typing.
func Controller(t *testing.T, values contact.Values) *contact.Controller {
	t.Helper()

	form := contact.New()
	for _, field := range contact.Fields() {
		value := values.Get(field)
		if value == "" {
			continue
		}
		if err := form.SetField(field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
	return form
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden at path, rewriting it first
// when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("golden mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
