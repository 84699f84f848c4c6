package model

import internalmodel "github.com/goliatone/go-contactform/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const FieldTypeString = internalmodel.FieldTypeString

const (
	ValidationRuleRequired  = internalmodel.ValidationRuleRequired
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern   = internalmodel.ValidationRulePattern
	ValidationRuleEmail     = internalmodel.ValidationRuleEmail
)

const (
	WidgetInput    = internalmodel.WidgetInput
	WidgetTextarea = internalmodel.WidgetTextarea
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel

// DefaultLabeler turns camelCase or snake_case names into title case labels.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
