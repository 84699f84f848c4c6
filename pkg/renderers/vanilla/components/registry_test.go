package components

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/model"
)

func noopRenderer(*bytes.Buffer, model.Field, ComponentData) error { return nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := New()
	if err := registry.Register(" Input ", Descriptor{Renderer: noopRenderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("", Descriptor{Renderer: noopRenderer}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := registry.Register("textarea", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	descriptor, ok := registry.Descriptor("INPUT")
	if !ok || descriptor.Name != "input" {
		t.Fatalf("expected normalised lookup, got %+v (ok=%v)", descriptor, ok)
	}
}

func TestRegistry_CloneIsolation(t *testing.T) {
	base := NewDefaultRegistry()
	clone := base.Clone()
	clone.MustRegister("rating", Descriptor{Renderer: noopRenderer})

	if diff := cmp.Diff([]string{NameInput, NameTextarea}, base.Names()); diff != "" {
		t.Fatalf("base registry mutated (-want +got):\n%s", diff)
	}
	if len(clone.Names()) != 3 {
		t.Fatalf("expected clone to carry 3 components, got %v", clone.Names())
	}
}

func TestRegistry_Stylesheets(t *testing.T) {
	registry := New()
	registry.MustRegister("a", Descriptor{Renderer: noopRenderer, Stylesheets: []string{"/shared.css", "/a.css"}})
	registry.MustRegister("b", Descriptor{Renderer: noopRenderer, Stylesheets: []string{"/shared.css", ""}})

	got := registry.Stylesheets([]string{"a", "b", "missing"})
	if diff := cmp.Diff([]string{"/shared.css", "/a.css"}, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestControlPayload(t *testing.T) {
	field := model.Field{
		Name:     "email",
		Required: true,
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleRequired},
			{Kind: model.ValidationRuleEmail},
		},
	}
	payload := controlPayload(field, ComponentData{Value: "123", Invalid: true})
	control := payload["control"].(map[string]any)

	if control["type"] != "email" || control["id"] != "fg-email" || control["value"] != "123" {
		t.Fatalf("unexpected control payload %+v", control)
	}
	if _, ok := control["minlength"]; ok {
		t.Fatalf("email has no length rule")
	}
}
