package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	internalLoader "github.com/goliatone/go-contactform/internal/openapi/loader"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/testsupport"
)

type captureRenderer struct {
	name    string
	calls   int
	form    model.FormModel
	options render.RenderOptions
}

func (c *captureRenderer) Name() string        { return c.name }
func (c *captureRenderer) ContentType() string { return "text/plain" }

func (c *captureRenderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	c.calls++
	c.form = form
	c.options = options
	return []byte("ok:" + c.name), nil
}

type countingParser struct {
	inner pkgopenapi.Parser
	calls int
}

func (p *countingParser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	p.calls++
	return p.inner.Operations(ctx, doc)
}

func newCaptureOrchestrator(t *testing.T, options ...Option) (*Orchestrator, *captureRenderer) {
	t.Helper()
	capture := &captureRenderer{name: "capture"}
	registry := render.NewRegistry()
	registry.MustRegister(capture)
	base := []Option{WithRegistry(registry), WithDefaultRenderer("capture")}
	return New(append(base, options...)...), capture
}

func TestOrchestrator_FormBuildsContactModelOnce(t *testing.T) {
	parser := &countingParser{inner: New().parser}
	orch, _ := newCaptureOrchestrator(t, WithParser(parser))

	first, err := orch.Form(testsupport.Context())
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	second, err := orch.Form(testsupport.Context())
	if err != nil {
		t.Fatalf("form (cached): %v", err)
	}

	if parser.calls != 1 {
		t.Fatalf("expected parser to run once, got %d", parser.calls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached form mismatch (-first +second):\n%s", diff)
	}

	var names []string
	for _, field := range first.Fields {
		names = append(names, field.Name)
	}
	want := []string{"firstName", "lastName", "email", "message"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_RenderProjectsControllerState(t *testing.T) {
	orch, capture := newCaptureOrchestrator(t)

	controller := contact.New()
	if err := controller.SetField(contact.FirstName, "Ed"); err != nil {
		t.Fatalf("set first name: %v", err)
	}

	output, err := orch.Render(testsupport.Context(), Request{State: controller.State()})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(output) != "ok:capture" {
		t.Fatalf("unexpected output %q", output)
	}
	if capture.options.Values["firstName"] != "Ed" {
		t.Fatalf("expected value to reach the renderer, got %#v", capture.options.Values)
	}
	if got := len(capture.options.Errors["firstName"]); got != 1 {
		t.Fatalf("expected one first name error, got %#v", capture.options.Errors)
	}
	if capture.options.Submission != nil {
		t.Fatalf("expected no submission before submit")
	}
	if capture.options.Theme != nil {
		t.Fatalf("expected no theme without a selector")
	}
}

func TestOrchestrator_RenderMergesServerErrors(t *testing.T) {
	orch, capture := newCaptureOrchestrator(t)

	_, err := orch.Render(testsupport.Context(), Request{
		State: testsupport.Controller(t, testsupport.ValidValues()).State(),
		ServerErrors: map[string][]string{
			"/body/email": {"address already registered"},
			"_form":       {"try again later"},
			"unknown.key": {"something odd"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{"address already registered"}, capture.options.Errors["email"]); diff != "" {
		t.Fatalf("email errors mismatch (-want +got):\n%s", diff)
	}
	if len(capture.options.FormErrors) != 2 {
		t.Fatalf("expected two form errors, got %#v", capture.options.FormErrors)
	}
}

func TestOrchestrator_RenderUnknownRenderer(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	_, err := orch.Render(testsupport.Context(), Request{Renderer: "missing"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_DefaultsToVanilla(t *testing.T) {
	orch := New()

	output, err := orch.Render(testsupport.Context(), Request{State: contact.New().State()})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)
	for _, fragment := range []string{"<form", `id="fg-firstName"`, "Contact Form"} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestOrchestrator_UnknownOperation(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t, WithOperationID("missingOperation"))

	if _, err := orch.Form(testsupport.Context()); err == nil || !strings.Contains(err.Error(), "missingOperation") {
		t.Fatalf("expected missing operation error, got %v", err)
	}
}

func TestOrchestrator_LoadsDocumentFromSource(t *testing.T) {
	files := fstest.MapFS{"forms/contact.yaml": {Data: pkgopenapi.ContactDocument().Raw()}}
	loader := internalLoader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	orch, _ := newCaptureOrchestrator(t,
		WithLoader(loader),
		WithSource(pkgopenapi.SourceFromFS("forms/contact.yaml")),
	)
	form, err := orch.Form(testsupport.Context())
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if form.OperationID != pkgopenapi.ContactOperationID {
		t.Fatalf("unexpected operation %q", form.OperationID)
	}
}

func TestOrchestrator_TransformerRunsOnce(t *testing.T) {
	calls := 0
	orch, capture := newCaptureOrchestrator(t, WithSchemaTransformer(TransformerFunc(func(_ context.Context, form *model.FormModel) error {
		calls++
		form.Title = "Say hello"
		return nil
	})))

	for i := 0; i < 2; i++ {
		if _, err := orch.Render(testsupport.Context(), Request{}); err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected transformer to run once, got %d", calls)
	}
	if capture.form.Title != "Say hello" {
		t.Fatalf("expected transformed title, got %q", capture.form.Title)
	}
}

func TestOrchestrator_TransformerError(t *testing.T) {
	boom := errors.New("boom")
	orch, _ := newCaptureOrchestrator(t, WithSchemaTransformer(TransformerFunc(func(context.Context, *model.FormModel) error {
		return boom
	})))

	if _, err := orch.Form(testsupport.Context()); !errors.Is(err, boom) {
		t.Fatalf("expected transformer error, got %v", err)
	}
}

func TestOrchestrator_ResolvesThemeFromManifests(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"primary": "#111", "radius": "4px"},
		Templates: map[string]string{
			"forms.input": "themes/acme/input.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/static/acme",
			Files:  map[string]string{"contactform-vanilla.css": "acme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens:    map[string]string{"primary": "#eee"},
				Templates: map[string]string{"forms.textarea": "themes/acme/dark-textarea.tmpl"},
				Assets: theme.Assets{
					Files: map[string]string{"contactform-vanilla.css": "acme-dark.css"},
				},
			},
		},
	}

	orch, capture := newCaptureOrchestrator(t, WithThemeManifests("acme", "dark", manifest))
	if _, err := orch.Render(testsupport.Context(), Request{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	cfg := capture.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}

	wantPartials := map[string]string{
		"forms.input":    "themes/acme/input.tmpl",
		"forms.textarea": "themes/acme/dark-textarea.tmpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	wantVars := map[string]string{"--primary": "#eee", "--radius": "4px"}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL("contactform-vanilla.css"); got != "/static/acme/acme-dark.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("logo.svg"); got != "/static/acme/logo.svg" {
		t.Fatalf("unexpected fallback url %q", got)
	}
}

func TestOrchestrator_ThemeErrors(t *testing.T) {
	manifest := &theme.Manifest{Name: "acme", Variants: map[string]theme.Variant{"light": {}}}
	orch, _ := newCaptureOrchestrator(t, WithThemeManifests("", "", manifest))

	if _, err := orch.Render(testsupport.Context(), Request{ThemeName: "other"}); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := orch.Render(testsupport.Context(), Request{ThemeVariant: "dark"}); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}

	broken, _ := newCaptureOrchestrator(t, WithThemeManifests("missing", "", manifest))
	if _, err := broken.Form(testsupport.Context()); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected manifest setup error, got %v", err)
	}
}

func TestManifestSelector_Defaults(t *testing.T) {
	selector, err := NewManifestSelector("", "light",
		&theme.Manifest{Name: "zeta"},
		&theme.Manifest{Name: "alpha", Variants: map[string]theme.Variant{"light": {}}},
	)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "alpha" || selection.Variant != "light" {
		t.Fatalf("unexpected default selection %s/%s", selection.Theme, selection.Variant)
	}

	selection, err = selector.Select("zeta", "")
	if err != nil {
		t.Fatalf("select zeta: %v", err)
	}
	if selection.Variant != "" {
		t.Fatalf("expected no variant for zeta, got %q", selection.Variant)
	}

	if _, err := NewManifestSelector("", "", &theme.Manifest{Name: "a"}, &theme.Manifest{Name: "a"}); err == nil {
		t.Fatalf("expected duplicate manifest error")
	}
	if _, err := NewManifestSelector("", ""); err == nil {
		t.Fatalf("expected error without manifests")
	}
}
