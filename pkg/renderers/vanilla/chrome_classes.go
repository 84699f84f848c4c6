package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassSection    ChromeClass = "contactform-section"
	ClassHeader     ChromeClass = "contactform-header"
	ClassForm       ChromeClass = "contactform-form"
	ClassField      ChromeClass = "contactform-field"
	ClassError      ChromeClass = "contactform-error"
	ClassErrors     ChromeClass = "contactform-errors"
	ClassActions    ChromeClass = "contactform-actions"
	ClassSubmission ChromeClass = "contactform-submission"
)

// ChromeClasses overrides the class attribute of the form chrome. Empty
// entries keep the defaults.
type ChromeClasses struct {
	Section    string
	Header     string
	Form       string
	Errors     string
	Actions    string
	Submission string
}

func (c ChromeClasses) templateData() map[string]string {
	return map[string]string{
		"section":    classOr(c.Section, ClassSection),
		"header":     classOr(c.Header, ClassHeader),
		"form":       classOr(c.Form, ClassForm),
		"errors":     classOr(c.Errors, ClassErrors),
		"actions":    classOr(c.Actions, ClassActions),
		"submission": classOr(c.Submission, ClassSubmission),
	}
}

func classOr(value string, fallback ChromeClass) string {
	if cleaned := sanitizeClassList(value); cleaned != "" {
		return cleaned
	}
	return string(fallback)
}
