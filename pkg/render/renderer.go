package render

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/model"
)

// Renderer converts a FormModel plus the live form state into a byte
// representation (HTML, terminal text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
