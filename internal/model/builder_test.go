package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
)

func intPtr(v int) *int { return &v }

func contactOperation() pkgopenapi.Operation {
	return pkgopenapi.MustNewOperation("submitContact", "post", "/contact", pkgopenapi.Schema{
		Type:     "object",
		Required: []string{"firstName", "lastName", "email"},
		Extensions: map[string]any{
			"x-formgen-order": []any{"firstName", "lastName", "email", "message"},
		},
		Properties: map[string]pkgopenapi.Schema{
			"firstName": {Type: "string", MinLength: intPtr(5)},
			"lastName":  {Type: "string"},
			"email":     {Type: "string", Format: "email", Extensions: map[string]any{"x-formgen-label": "Email"}},
			"message":   {Type: "string", Extensions: map[string]any{"x-formgen-widget": "textarea"}},
		},
	})
}

func TestBuilder_Build(t *testing.T) {
	form, err := New(Options{}).Build(contactOperation())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if form.Method != "POST" {
		t.Fatalf("expected upper-cased method, got %q", form.Method)
	}

	want := []Field{
		{
			Name: "firstName", Type: FieldTypeString, Required: true, Label: "First Name", Widget: WidgetInput,
			Validations: []ValidationRule{
				{Kind: ValidationRuleRequired},
				{Kind: ValidationRuleMinLength, Params: map[string]string{"value": "5"}},
			},
		},
		{
			Name: "lastName", Type: FieldTypeString, Required: true, Label: "Last Name", Widget: WidgetInput,
			Validations: []ValidationRule{{Kind: ValidationRuleRequired}},
		},
		{
			Name: "email", Type: FieldTypeString, Format: "email", Required: true, Label: "Email", Widget: WidgetInput,
			Validations: []ValidationRule{{Kind: ValidationRuleRequired}, {Kind: ValidationRuleEmail}},
		},
		{
			Name: "message", Type: FieldTypeString, Label: "Message", Widget: WidgetTextarea,
		},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_OrderFallsBackToNames(t *testing.T) {
	op := contactOperation()
	op.RequestBody.Extensions = nil

	form, err := New(Options{}).Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var names []string
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	if diff := cmp.Diff([]string{"email", "firstName", "lastName", "message"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CustomLabeler(t *testing.T) {
	form, err := New(Options{Labeler: strings.ToUpper}).Build(contactOperation())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := form.Fields[0].Label; got != "FIRSTNAME" {
		t.Fatalf("expected custom label, got %q", got)
	}
	if got := form.Fields[2].Label; got != "Email" {
		t.Fatalf("extension label should win over labeler, got %q", got)
	}
}

func TestBuilder_WidgetOverride(t *testing.T) {
	form, err := New(Options{Widgets: map[string]string{
		"message":  WidgetInput,
		"lastName": WidgetTextarea,
	}}).Build(contactOperation())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := map[string]string{}
	for _, field := range form.Fields {
		got[field.Name] = field.Widget
	}
	want := map[string]string{
		"firstName": WidgetInput,
		"lastName":  WidgetTextarea,
		"email":     WidgetInput,
		"message":   WidgetInput,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_RejectsInvalidOperations(t *testing.T) {
	cases := map[string]pkgopenapi.Operation{
		"missing id":      {Method: "POST", Path: "/contact", RequestBody: contactOperation().RequestBody},
		"non object body": {ID: "x", Method: "POST", Path: "/contact", RequestBody: pkgopenapi.Schema{Type: "string"}},
		"undeclared required": {ID: "x", Method: "POST", Path: "/contact", RequestBody: pkgopenapi.Schema{
			Type:       "object",
			Required:   []string{"phone"},
			Properties: map[string]pkgopenapi.Schema{"email": {Type: "string"}},
		}},
		"non string property": {ID: "x", Method: "POST", Path: "/contact", RequestBody: pkgopenapi.Schema{
			Type:       "object",
			Properties: map[string]pkgopenapi.Schema{"age": {Type: "integer"}},
		}},
	}

	for name, op := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := New(Options{}).Build(op); err == nil {
				t.Fatalf("expected build error")
			}
		})
	}
}

func TestDefaultLabeler(t *testing.T) {
	for input, want := range map[string]string{
		"firstName":     "First Name",
		"lastName":      "Last Name",
		"email":         "Email",
		"contact_email": "Contact Email",
		"address2":      "Address 2",
		"":              "",
	} {
		if got := DefaultLabeler(input); got != want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}
