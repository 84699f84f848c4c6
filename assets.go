package contactform

import (
	"io/fs"

	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the vanilla stylesheet so Go applications can serve it
// without a build step.
//
// Typical mount:
//
//	mux.Handle("/contactform/",
//	  http.StripPrefix("/contactform/",
//	    http.FileServerFS(contactform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
