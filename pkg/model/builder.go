package model

import (
	"github.com/goliatone/go-contactform/internal/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption configures the builder.
type BuilderOption func(*model.Options)

// WithLabeler overrides the label derived for properties that carry no
// x-formgen-label extension.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *model.Options) {
		opts.Labeler = labeler
	}
}

// WithWidget forces the widget of the named field (WidgetInput or
// WidgetTextarea), overriding the document.
func WithWidget(field, widget string) BuilderOption {
	return func(opts *model.Options) {
		if opts.Widgets == nil {
			opts.Widgets = make(map[string]string)
		}
		opts.Widgets[field] = widget
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	var cfg model.Options
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return model.New(cfg)
}
