package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
)

const (
	templatePrefix = "templates/components/"
)

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// components used by the vanilla renderer.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameInput, Descriptor{
		Renderer: templateComponentRenderer("forms.input", templatePrefix+"input.tmpl"),
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer: templateComponentRenderer("forms.textarea", templatePrefix+"textarea.tmpl"),
	})

	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, field model.Field, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.ThemePartials != nil {
			if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		rendered, err := data.Template.RenderTemplate(resolvedTemplate, controlPayload(field, data))
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func controlPayload(field model.Field, data ComponentData) map[string]any {
	control := map[string]any{
		"id":          field.InputID(),
		"name":        field.Name,
		"type":        inputType(field),
		"placeholder": field.Placeholder,
		"required":    field.Required,
		"value":       data.Value,
		"invalid":     data.Invalid,
	}
	if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
		control["minlength"] = rule.Params["value"]
	}
	if rule, ok := field.Rule(model.ValidationRuleMaxLength); ok {
		control["maxlength"] = rule.Params["value"]
	}
	return map[string]any{"control": control}
}

func inputType(field model.Field) string {
	if field.HasRule(model.ValidationRuleEmail) {
		return "email"
	}
	return "text"
}
