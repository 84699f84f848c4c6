package components

// Canonical component names used by the vanilla renderer and default registry.
// They match the widget names carried by model.Field.
const (
	NameInput    = "input"
	NameTextarea = "textarea"
)
