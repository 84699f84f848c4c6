package vanilla

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/render/template"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla/components"
)

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	partials  map[string]string

	usedComponents []string
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, partials map[string]string) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &componentRenderer{
		templates: templates,
		registry:  registry,
		partials:  copyStringMap(partials),
	}
}

// render produces the wrapper, label, control and inline error for one field.
// Only the first message per field is shown.
func (r *componentRenderer) render(field model.Field, opts render.RenderOptions) (string, error) {
	componentName := strings.TrimSpace(field.Widget)
	if componentName == "" {
		componentName = components.NameInput
	}

	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", componentName, field.Name)
	}

	errorMessage := firstMessage(opts.Errors[field.Name])
	data := components.ComponentData{
		Template:      r.templates,
		Value:         opts.Values[field.Name],
		Invalid:       errorMessage != "",
		ThemePartials: r.partials,
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, field, data); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", componentName, field.Name, err)
	}

	r.markUsed(descriptor.Name)
	return buildFieldMarkup(field, descriptor.Name, control.String(), errorMessage), nil
}

func (r *componentRenderer) markUsed(name string) {
	for _, existing := range r.usedComponents {
		if existing == name {
			return
		}
	}
	r.usedComponents = append(r.usedComponents, name)
}

func (r *componentRenderer) stylesheets() []string {
	return r.registry.Stylesheets(r.usedComponents)
}

func buildFieldMarkup(field model.Field, componentName, control, errorMessage string) string {
	controlID := field.InputID()

	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`    <div class="`)
	builder.WriteString(string(ClassField))
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" data-component="`)
	builder.WriteString(html.EscapeString(componentName))
	builder.WriteString("\">\n")

	if label := strings.TrimSpace(field.Label); label != "" {
		builder.WriteString(`      <label for="`)
		builder.WriteString(html.EscapeString(controlID))
		builder.WriteString(`" id="`)
		builder.WriteString(html.EscapeString(componentLabelID(controlID)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(label))
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("      ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if desc := strings.TrimSpace(field.Description); desc != "" {
		builder.WriteString(`      <small>`)
		builder.WriteString(html.EscapeString(desc))
		builder.WriteString("</small>\n")
	}

	if errorMessage != "" {
		builder.WriteString(`      <p class="`)
		builder.WriteString(string(ClassError))
		builder.WriteString(`" id="`)
		builder.WriteString(html.EscapeString(componentErrorID(controlID)))
		builder.WriteString(`" data-testid="error" role="alert">`)
		builder.WriteString(html.EscapeString(errorMessage))
		builder.WriteString("</p>\n")
	}

	builder.WriteString("    </div>\n")
	return builder.String()
}

func firstMessage(messages []string) string {
	for _, message := range messages {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
