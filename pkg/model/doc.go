// Package model defines the typed form model consumed by renderers. Builders
// reside in internal/model but return the types defined here.
//
// Fields keep the request body order declared through the x-formgen-order
// extension. Validation rules use canonical identifiers (required, minLength,
// maxLength, pattern, email) with string parameters so renderers can map them
// onto HTML attributes without parsing the OpenAPI document again. Labels,
// placeholders and widgets come from the x-formgen-label,
// x-formgen-placeholder and x-formgen-widget extensions.
package model
