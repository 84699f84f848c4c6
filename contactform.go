// Package contactform is the top-level entry point: it exposes the contact
// controller, the orchestrator and the bundled renderers without requiring
// callers to import each package.
package contactform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-contactform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-contactform/internal/openapi/parser"
	"github.com/goliatone/go-contactform/pkg/contact"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
)

// RenderOptions describes what a renderer shows: values, errors and the last
// accepted submission.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewController returns a contact form controller in its initial state.
func NewController(options ...contact.Option) *contact.Controller {
	return contact.New(options...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderHTML renders state with the vanilla renderer. It is the simplest entry
// point for callers that just want HTML output.
func RenderHTML(ctx context.Context, state contact.State, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Render(ctx, orchestrator.Request{State: state})
}

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers in-memory theme manifests with the
// orchestrator.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(defaultTheme, defaultVariant, manifests...)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
