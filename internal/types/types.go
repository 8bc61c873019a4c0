// Package types contains common types used across the dsum package.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Prec is the precedence of the enclosing rendering context.
	// Renderings that would misparse at or above precedence 10 are parenthesized.
	Prec int `json:"prec,omitempty"`
}
