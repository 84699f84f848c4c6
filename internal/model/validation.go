package model

import (
	"errors"
	"fmt"

	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
)

var (
	errOperationIDMissing     = errors.New("model builder: operation id is required")
	errOperationPathMissing   = errors.New("model builder: operation path is required")
	errOperationMethodMissing = errors.New("model builder: operation method is required")
)

func validateOperation(op pkgopenapi.Operation) error {
	if op.ID == "" {
		return errOperationIDMissing
	}
	if op.Path == "" {
		return errOperationPathMissing
	}
	if op.Method == "" {
		return errOperationMethodMissing
	}
	if err := validateBody(op.RequestBody); err != nil {
		return fmt.Errorf("model builder: invalid request body: %w", err)
	}
	return nil
}

func validateBody(body pkgopenapi.Schema) error {
	if body.Type != "object" {
		return fmt.Errorf("expected object schema, got %q", body.Type)
	}
	if len(body.Properties) == 0 {
		return errors.New("object schema declares no properties")
	}
	for name, prop := range body.Properties {
		if prop.Type != "string" {
			return fmt.Errorf("property %q: unsupported type %q", name, prop.Type)
		}
	}
	for _, name := range body.Required {
		if _, ok := body.Properties[name]; !ok {
			return fmt.Errorf("required property %q is not declared", name)
		}
	}
	return nil
}
