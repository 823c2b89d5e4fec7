// Package template defines the template renderer contract used for preview
// documents and provider setup guides. The gotemplate subpackage implements
// it on pongo2.
package template
