package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	rendertemplate "github.com/goliatone/go-contactform/pkg/render/template"
	gotemplate "github.com/goliatone/go-contactform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla/components"
)

// Name identifies the renderer in a render.Registry.
const Name = "vanilla"

const defaultSubmitLabel = "Submit"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	stylesheets      []string
	inlineStyles     bool
	submitLabel      string
	chrome           ChromeClasses
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Files found there
// take precedence; anything missing falls back to the template bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default input/textarea components.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithStylesheet links an external stylesheet ahead of the form.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href = strings.TrimSpace(href); href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithDefaultStyles inlines the embedded stylesheet.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithSubmitLabel overrides the submit button text.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if label = strings.TrimSpace(label); label != "" {
			cfg.submitLabel = label
		}
	}
}

// WithChromeClasses overrides the CSS classes of the form chrome.
func WithChromeClasses(classes ChromeClasses) Option {
	return func(cfg *config) {
		cfg.chrome = classes
	}
}

// Renderer produces server-rendered HTML for the contact form.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	components   *components.Registry
	stylesheets  []string
	inlineStyles string
	submitLabel  string
	chrome       ChromeClasses
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), submitLabel: defaultSubmitLabel}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	out := &Renderer{
		templates:   renderer,
		components:  cfg.components,
		stylesheets: cfg.stylesheets,
		submitLabel: cfg.submitLabel,
		chrome:      cfg.chrome,
	}
	if out.components == nil {
		out.components = components.NewDefaultRegistry()
	}
	if cfg.inlineStyles {
		out.inlineStyles = defaultStylesheet()
	}
	return out, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form with the supplied values, one inline error per
// failing field, and the submission display when opts.Submission is set.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	themeCtx := buildThemeContext(opts.Theme)
	fields := newComponentRenderer(r.templates, r.components, themeCtx.Partials)

	rendered := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		markup, err := fields.render(field, opts)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		rendered = append(rendered, markup)
	}

	stylesheets := append([]string(nil), r.stylesheets...)
	if href := themeStylesheet(opts.Theme); href != "" {
		stylesheets = append(stylesheets, href)
	}
	stylesheets = append(stylesheets, fields.stylesheets()...)

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form": map[string]any{
			"title":        form.Title,
			"description":  form.Description,
			"endpoint":     form.Endpoint,
			"method":       strings.ToLower(form.Method),
			"operation_id": form.OperationID,
		},
		"fields":        rendered,
		"form_errors":   opts.FormErrors,
		"submission":    submissionRows(form, opts.Submission),
		"stylesheets":   stylesheets,
		"inline_styles": r.inlineStyles,
		"submit_label":  r.submitLabel,
		"classes":       r.chrome.templateData(),
		"theme": map[string]any{
			"name":     themeCtx.Name,
			"variant":  themeCtx.Variant,
			"css_vars": themeCtx.CSSVars,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// submissionRows labels each captured value with the form's field label.
func submissionRows(form model.FormModel, submission *render.Submission) []map[string]string {
	if submission == nil {
		return nil
	}
	rows := make([]map[string]string, 0, len(submission.Fields))
	for _, item := range submission.Fields {
		label := item.Name
		if field, ok := form.Field(item.Name); ok && field.Label != "" {
			label = field.Label
		}
		rows = append(rows, map[string]string{
			"label":   label,
			"value":   item.Value,
			"test_id": item.TestID,
		})
	}
	return rows
}

type rendererTheme struct {
	Name     string
	Variant  string
	Partials map[string]string
	CSSVars  map[string]string
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	return rendererTheme{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: copyStringMap(cfg.Partials),
		CSSVars:  copyStringMap(cfg.CSSVars),
	}
}

func themeStylesheet(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return cfg.AssetURL(StylesheetName)
}
