// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/schemer/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	rep, ok := display.Build(result)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	if rep.Body != "" {
		_, err := io.WriteString(r.output, rep.Body)
		return err
	}
	if rep.Title != "" {
		if _, err := fmt.Fprintln(r.output, rep.Title); err != nil {
			return err
		}
	}
	for _, line := range rep.Lines {
		text := fmt.Sprintf("  %-9s %-7s %s", line.Status, line.Label, line.Path)
		if line.Detail != "" {
			text += " (" + line.Detail + ")"
		}
		if _, err := fmt.Fprintln(r.output, text); err != nil {
			return err
		}
	}
	if rep.Footer != "" {
		if _, err := fmt.Fprintln(r.output, rep.Footer); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
