package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
)

const (
	extLabel       = "x-formgen-label"
	extPlaceholder = "x-formgen-placeholder"
	extWidget      = "x-formgen-widget"
	extOrder       = "x-formgen-order"
)

// Options configures the Builder. The public adapter in pkg/model builds it
// from functional options.
type Options struct {
	// Labeler derives a label for properties without x-formgen-label.
	Labeler func(string) string
	// Widgets forces the widget of named fields, winning over
	// x-formgen-widget.
	Widgets map[string]string
}

// Builder converts OpenAPI operations into form models.
type Builder struct {
	labeler func(string) string
	widgets map[string]string
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	b := &Builder{labeler: DefaultLabeler, widgets: options.Widgets}
	if options.Labeler != nil {
		b.labeler = options.Labeler
	}
	return b
}

// Build transforms an operation's request body into a flat FormModel. Fields
// follow the x-formgen-order extension; undeclared properties are appended in
// name order.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if err := validateOperation(op); err != nil {
		return FormModel{}, err
	}

	body := op.RequestBody
	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Title:       op.Summary,
		Description: op.Description,
	}
	if form.Title == "" {
		form.Title = body.Title
	}

	for _, name := range fieldOrder(body) {
		form.Fields = append(form.Fields, b.fieldFromProperty(name, body.Properties[name], body.IsRequired(name)))
	}
	return form, nil
}

func (b *Builder) fieldFromProperty(name string, schema pkgopenapi.Schema, required bool) Field {
	field := Field{
		Name:        name,
		Type:        FieldTypeString,
		Format:      schema.Format,
		Required:    required,
		Label:       stringExtension(schema.Extensions, extLabel),
		Placeholder: stringExtension(schema.Extensions, extPlaceholder),
		Description: schema.Description,
		Widget:      stringExtension(schema.Extensions, extWidget),
	}
	if field.Label == "" {
		field.Label = b.labeler(name)
	}
	if widget, ok := b.widgets[name]; ok && widget != "" {
		field.Widget = widget
	}
	if field.Widget == "" {
		field.Widget = WidgetInput
	}

	if required {
		field.Validations = append(field.Validations, ValidationRule{Kind: ValidationRuleRequired})
	}
	if schema.MinLength != nil {
		field.Validations = append(field.Validations, lengthRule(ValidationRuleMinLength, *schema.MinLength))
	}
	if schema.MaxLength != nil {
		field.Validations = append(field.Validations, lengthRule(ValidationRuleMaxLength, *schema.MaxLength))
	}
	if schema.Pattern != "" {
		field.Validations = append(field.Validations, ValidationRule{
			Kind:   ValidationRulePattern,
			Params: map[string]string{"pattern": schema.Pattern},
		})
	}
	if strings.EqualFold(schema.Format, "email") {
		field.Validations = append(field.Validations, ValidationRule{Kind: ValidationRuleEmail})
	}
	return field
}

func lengthRule(kind string, value int) ValidationRule {
	return ValidationRule{
		Kind:   kind,
		Params: map[string]string{"value": strconv.Itoa(value)},
	}
}

func fieldOrder(body pkgopenapi.Schema) []string {
	seen := make(map[string]struct{}, len(body.Properties))
	var order []string

	if declared, ok := body.Extensions[extOrder].([]any); ok {
		for _, entry := range declared {
			name := strings.TrimSpace(fmt.Sprint(entry))
			if _, exists := body.Properties[name]; !exists {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			order = append(order, name)
		}
	}

	var rest []string
	for name := range body.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func stringExtension(ext map[string]any, key string) string {
	value, ok := ext[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}
