// Package openapi exposes the OpenAPI wrappers the contact form is described
// with. The bundled document (ContactDocument) declares the submitContact
// operation whose request body lists the four inputs, their labels and the
// constraints the controller enforces. Parsing happens in internal/openapi
// through kin-openapi; callers only see the Document, Operation and Schema
// types defined here.
package openapi
