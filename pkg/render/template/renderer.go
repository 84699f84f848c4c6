package template

import "io"

// TemplateRenderer executes named templates. Output is returned and, when
// writers are given, also written to them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
