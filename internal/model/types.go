package model

// FieldType is the simplified enum for form-friendly field kinds. The contact
// form only carries strings today.
type FieldType string

const (
	FieldTypeString FieldType = "string"
)

const (
	ValidationRuleRequired  = "required"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
	ValidationRuleEmail     = "email"
)

// Widget names understood by the renderers.
const (
	WidgetInput    = "input"
	WidgetTextarea = "textarea"
)

// ValidationRule represents a single constraint applied to a field. Length
// limits encode their threshold in Params["value"]; pattern rules keep the
// expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside the form.
type Field struct {
	Name        string           `json:"name"`
	Type        FieldType        `json:"type"`
	Format      string           `json:"format,omitempty"`
	Required    bool             `json:"required"`
	Label       string           `json:"label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Description string           `json:"description,omitempty"`
	Widget      string           `json:"widget,omitempty"`
	Validations []ValidationRule `json:"validations,omitempty"`
}

// HasRule reports whether the field carries a validation of the given kind.
func (f Field) HasRule(kind string) bool {
	_, ok := f.Rule(kind)
	return ok
}

// Rule returns the first validation of the given kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// InputID is the DOM id renderers assign to the field's control so labels
// can reference it.
func (f Field) InputID() string {
	return "fg-" + f.Name
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string  `json:"operationId"`
	Endpoint    string  `json:"endpoint"`
	Method      string  `json:"method"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field returns the named field.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
