package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

// Name identifies the renderer in a render.Registry.
const Name = "tui"

// Renderer implements render.Renderer for terminal-driven sessions. Render
// runs an interactive Session and returns the accepted snapshot encoded in the
// configured format.
type Renderer struct {
	driver         PromptDriver
	outputFormat   contact.Format
	theme          Theme
	maxAttempts    int
	repeat         bool
	controllerOpts []contact.Option

	inlineValidation bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: contact.FormatJSON,
		theme:        DefaultTheme,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	if _, err := contact.ParseFormat(string(r.outputFormat)); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.outputFormat.ContentType()
}

// Render prompts for every field, prefilled from opts.Values, until a submit is
// accepted. Errors in opts.Errors are printed before the first prompt.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	initial, err := valuesFromMap(opts.Values)
	if err != nil {
		return nil, err
	}

	controllerOpts := append([]contact.Option{contact.WithInitialValues(initial)}, r.controllerOpts...)
	session, err := r.NewSession(form, contact.New(controllerOpts...))
	if err != nil {
		return nil, err
	}

	for _, name := range sortedErrorNames(form, opts.Errors) {
		for _, message := range opts.Errors[name] {
			if err := session.error(ctx, message); err != nil {
				return nil, err
			}
		}
	}

	snapshot, err := session.Run(ctx)
	if err != nil {
		return nil, err
	}
	for r.repeat {
		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit another message?"})
		if err != nil {
			return nil, err
		}
		if !again {
			break
		}
		if snapshot, err = session.Run(ctx); err != nil {
			return nil, err
		}
	}

	payload, err := snapshot.Encode(r.outputFormat)
	if err != nil {
		return nil, fmt.Errorf("tui: encode snapshot: %w", err)
	}
	return payload, nil
}

// NewSession binds a controller to the form description using the renderer's
// driver and theme.
func (r *Renderer) NewSession(form model.FormModel, controller *contact.Controller) (*Session, error) {
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}

	fields := make([]sessionField, 0, len(form.Fields))
	for _, field := range form.Fields {
		id, err := contact.ParseField(field.Name)
		if err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		fields = append(fields, sessionField{id: id, model: field})
	}

	return &Session{
		driver:      r.driver,
		controller:  controller,
		fields:      fields,
		theme:       r.theme,
		maxAttempts: r.maxAttempts,
		validate:    r.inlineValidation,
	}, nil
}

func valuesFromMap(values map[string]string) (contact.Values, error) {
	var out contact.Values
	for name, value := range values {
		field, err := contact.ParseField(name)
		if err != nil {
			return contact.Values{}, fmt.Errorf("tui: prefill: %w", err)
		}
		out = out.With(field, value)
	}
	return out, nil
}

// sortedErrorNames lists error keys in form order so output is deterministic.
func sortedErrorNames(form model.FormModel, errs map[string][]string) []string {
	if len(errs) == 0 {
		return nil
	}
	names := make([]string, 0, len(errs))
	for _, field := range form.Fields {
		if _, ok := errs[field.Name]; ok {
			names = append(names, field.Name)
		}
	}
	return names
}
