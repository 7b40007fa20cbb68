// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/schemer/pkg/ui/display"
	"github.com/arthur-debert/schemer/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// statusStyle maps report statuses to semantic style names
var statusStyle = map[string]string{
	display.StatusCreated:  "Success",
	display.StatusPlanned:  "Success",
	display.StatusEnabled:  "Success",
	display.StatusSkipped:  "Warning",
	display.StatusDisabled: "Muted",
	display.StatusMissing:  "Error",
	display.StatusFailed:   "Error",
}

// RenderResult renders any result type with rich terminal formatting
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

	var blocks []string
	if rep.Title != "" {
		blocks = append(blocks, styles.GetStyle("Header").Render(rep.Title))
	}
	for _, line := range rep.Lines {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			"  ",
			styles.MergeStyles("Status", statusStyle[line.Status]).Render(line.Status),
			styles.GetStyle("Label").Render(line.Label),
			styles.GetStyle("FilePath").Render(line.Path),
		)
		if line.Detail != "" {
			row += " " + styles.GetStyle("Muted").Render(line.Detail)
		}
		blocks = append(blocks, row)
	}
	if rep.Footer != "" {
		blocks = append(blocks, styles.GetStyle("Footer").Render(rep.Footer))
	}

	_, err := fmt.Fprintln(r.output, strings.Join(blocks, "\n"))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
