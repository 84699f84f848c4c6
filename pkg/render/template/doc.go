// Package template defines the template seam renderers rely on. The pongo2
// backed implementation lives in the gotemplate subpackage.
package template
