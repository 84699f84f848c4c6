package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-contactform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-contactform/internal/openapi/parser"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

const defaultRendererName = vanilla.Name

// Logger is the minimal logging contract used by the orchestrator.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSource reads the form description from src instead of the embedded
// contact document.
func WithSource(src pkgopenapi.Source) Option {
	return func(o *Orchestrator) {
		o.source = src
	}
}

// WithOperationID selects the operation describing the form.
func WithOperationID(id string) Option {
	return func(o *Orchestrator) {
		if id != "" {
			o.operationID = id
		}
	}
}

// WithSchemaTransformer registers a Transformer that mutates the form model
// once, right after it is built.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithThemeSelector resolves theme names through selector before rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeManifests builds a selector over the given manifests. Requests
// without a theme fall back to defaultTheme/defaultVariant.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		selector, err := NewManifestSelector(defaultTheme, defaultVariant, manifests...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: theme manifests: %w", err)
			return
		}
		o.themeSelector = selector
	}
}

// WithThemeFallbacks overrides the partials used when a theme does not
// provide its own templates.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = copyStringMap(fallbacks)
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to rendered
// output. Missing dependencies get the built-in implementations (embedded
// contact document, kin-openapi parser, vanilla renderer).
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	source          pkgopenapi.Source
	operationID     string
	transformer     Transformer
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	logger          Logger
	initialiseErr   error

	formMu sync.Mutex
	form   *model.FormModel
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		operationID:     pkgopenapi.ContactOperationID,
		themeFallbacks:  defaultThemeFallbacks(),
		logger:          nopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render of the contact form.
type Request struct {
	// Renderer names the renderer to use. Empty selects the default renderer.
	Renderer string

	// State is the controller state to project onto the form.
	State contact.State

	// ServerErrors carries an external error payload (for example from the
	// endpoint the form posts to). Keys may be JSON pointers or dotted paths;
	// unknown keys become form-level errors.
	ServerErrors map[string][]string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string
}

// Form returns the form model, building it on first use.
func (o *Orchestrator) Form(ctx context.Context) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}

	o.formMu.Lock()
	defer o.formMu.Unlock()

	if o.form != nil {
		return *o.form, nil
	}

	form, err := o.buildForm(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	o.form = &form
	o.logger.Printf("orchestrator: built form %q with %d fields", form.OperationID, len(form.Fields))
	return form, nil
}

// Render projects req onto the selected renderer and returns its output.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := o.Form(ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := render.OptionsFromState(req.State)
	if len(req.ServerErrors) > 0 {
		mapped := render.MapErrorPayload(form, req.ServerErrors)
		opts.Errors = render.MergeFieldErrors(opts.Errors, mapped.Fields)
		opts.FormErrors = render.MergeFormErrors(opts.FormErrors, mapped.Form...)
	}

	if o.themeSelector != nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) buildForm(ctx context.Context) (model.FormModel, error) {
	doc, err := o.resolveDocument(ctx)
	if err != nil {
		return model.FormModel{}, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}

	op, ok := operations[o.operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: operation %q not found", o.operationID)
	}

	form, err := o.builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	return form, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context) (pkgopenapi.Document, error) {
	if o.source == nil {
		return pkgopenapi.ContactDocument(), nil
	}
	doc, err := o.loader.Load(ctx, o.source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
