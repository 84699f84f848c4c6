// Package orchestrator wires the contact form pipeline: the embedded OpenAPI
// document is parsed and built into a form model once, and each Render call
// projects the controller state, a resolved theme and any server-side errors
// onto the selected renderer.
package orchestrator
