package topics

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DefaultWidth is the wrap width for markdown topics
const DefaultWidth = 80

// Renderer writes a topic to w
type Renderer interface {
	Render(w io.Writer, topic *Topic) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(w io.Writer, topic *Topic) error

// Render calls f
func (f RendererFunc) Render(w io.Writer, topic *Topic) error {
	return f(w, topic)
}

// Plain writes topics exactly as stored
var Plain Renderer = RendererFunc(func(w io.Writer, topic *Topic) error {
	_, err := io.WriteString(w, topic.Content)
	return err
})

// Markdown renders .md topics with glamour and writes other topics as stored.
// Without an explicit Style the style follows w: "notty" for pipes, files
// and NO_COLOR, otherwise "dark" or "light" from the terminal background.
type Markdown struct {
	// Style is a glamour style name or a style file path
	Style string
	// Width wraps rendered text; zero means DefaultWidth
	Width int
}

// Render writes topic to w, falling back to the raw text when glamour fails
func (m Markdown) Render(w io.Writer, topic *Topic) error {
	if path.Ext(topic.FilePath) != ".md" {
		return Plain.Render(w, topic)
	}

	width := m.Width
	if width <= 0 {
		width = DefaultWidth
	}
	style := m.Style
	if style == "" {
		style = styleFor(w)
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	}
	if style == "notty" {
		opts = append(opts, glamour.WithColorProfile(termenv.Ascii))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return Plain.Render(w, topic)
	}
	out, err := renderer.Render(topic.Content)
	if err != nil {
		return Plain.Render(w, topic)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func styleFor(w io.Writer) string {
	if os.Getenv("NO_COLOR") != "" {
		return "notty"
	}
	f, ok := w.(*os.File)
	if !ok || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return "notty"
	}
	if termenv.NewOutput(f).HasDarkBackground() {
		return "dark"
	}
	return "light"
}
