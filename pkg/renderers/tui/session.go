package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

type sessionField struct {
	id    contact.Field
	model model.Field
}

// Session drives a contact.Controller from terminal prompts. Each answer goes
// through SetField so the inline error shown matches what the controller
// reports; rejected submits re-prompt only the failing fields.
type Session struct {
	driver      PromptDriver
	controller  *contact.Controller
	fields      []sessionField
	theme       Theme
	maxAttempts int
	validate    bool
}

// Controller exposes the controller the session mutates.
func (s *Session) Controller() *contact.Controller {
	return s.controller
}

// Run prompts until a submit is accepted, then prints the submission display.
func (s *Session) Run(ctx context.Context) (contact.Snapshot, error) {
	pending := s.fields
	attempts := 0

	for {
		for _, field := range pending {
			if err := s.prompt(ctx, field); err != nil {
				return contact.Snapshot{}, err
			}
		}

		result := s.controller.Submit()
		if result.Accepted {
			if err := s.display(ctx, result.Snapshot); err != nil {
				return contact.Snapshot{}, err
			}
			return result.Snapshot, nil
		}

		attempts++
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			return contact.Snapshot{}, fmt.Errorf("%w (%d)", ErrTooManyAttempts, attempts)
		}

		pending = nil
		for _, failure := range result.Errors.List() {
			if err := s.error(ctx, failure.Message); err != nil {
				return contact.Snapshot{}, err
			}
			if field, ok := s.lookup(failure.Field); ok {
				pending = append(pending, field)
			}
		}
		if len(pending) == 0 {
			return contact.Snapshot{}, fmt.Errorf("tui: rejected fields are not part of the form")
		}
	}
}

func (s *Session) prompt(ctx context.Context, field sessionField) error {
	label := field.model.Label
	if label == "" {
		label = field.model.Name
	}
	current := s.controller.Values().Get(field.id)

	var (
		answer string
		err    error
	)
	if field.model.Widget == model.WidgetTextarea {
		answer, err = s.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: current,
			Help:    field.model.Placeholder,
		})
	} else {
		cfg := InputConfig{
			Message: label,
			Default: current,
			Help:    field.model.Placeholder,
		}
		if s.validate {
			cfg.Validator = fieldValidator(field.id)
		}
		answer, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if err := s.controller.SetField(field.id, answer); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if msg, failed := s.controller.Errors().For(field.id); failed {
		return s.error(ctx, msg)
	}
	return nil
}

// fieldValidator reports the controller's message for values that fail the
// field's rules.
func fieldValidator(field contact.Field) func(string) error {
	return func(value string) error {
		if msg, ok := contact.Validate(field, value); !ok {
			return errors.New(msg)
		}
		return nil
	}
}

func (s *Session) display(ctx context.Context, snapshot contact.Snapshot) error {
	if err := s.info(ctx, "Submitted:"); err != nil {
		return err
	}
	for _, row := range render.SubmissionFromSnapshot(snapshot).Fields {
		label := row.Name
		if field, ok := s.lookupName(row.Name); ok && field.model.Label != "" {
			label = field.model.Label
		}
		if err := s.info(ctx, fmt.Sprintf("  %s: %s", label, row.Value)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) error(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}

func (s *Session) lookup(id contact.Field) (sessionField, bool) {
	for _, field := range s.fields {
		if field.id == id {
			return field, true
		}
	}
	return sessionField{}, false
}

func (s *Session) lookupName(name string) (sessionField, bool) {
	for _, field := range s.fields {
		if field.model.Name == name {
			return field, true
		}
	}
	return sessionField{}, false
}
