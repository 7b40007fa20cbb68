// Package ui renders command results as styled terminal output, plain text
// or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/ui/display"
	"github.com/arthur-debert/schemer/pkg/ui/json"
	"github.com/arthur-debert/schemer/pkg/ui/terminal"
	"github.com/arthur-debert/schemer/pkg/ui/text"
)

// Renderer is implemented by the term, text and json renderers
type Renderer interface {
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format, resolving auto against w
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = Detect(w)
	}
	switch format {
	case FormatTerminal:
		return terminal.New(w)
	case FormatText:
		return text.New(w)
	case FormatJSON:
		return json.New(w)
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
}

// Render writes result to w. Results without a display report are written
// as JSON whatever the format.
func Render(format Format, w io.Writer, result interface{}) error {
	if format == FormatAuto {
		format = Detect(w)
	}
	if _, ok := display.Build(result); !ok {
		format = FormatJSON
	}
	r, err := NewRenderer(format, w)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}
