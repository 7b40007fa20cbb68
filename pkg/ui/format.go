package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is a value of the --output flag
type Format string

const (
	// FormatAuto picks term or text from the output writer
	FormatAuto Format = "auto"
	// FormatTerminal renders the add report with lipgloss styles
	FormatTerminal Format = "term"
	// FormatText renders the add report as aligned plain lines
	FormatText Format = "text"
	// FormatJSON marshals results as indented JSON
	FormatJSON Format = "json"
)

func (f Format) String() string { return string(f) }

// Formats lists the accepted --output values
func Formats() []string {
	return []string{FormatAuto.String(), FormatTerminal.String(), FormatText.String(), FormatJSON.String()}
}

// ParseFormat accepts the --output values plus the terminal and plain aliases
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatAuto, nil
	case "terminal":
		return FormatTerminal, nil
	case "plain":
		return FormatText, nil
	case FormatAuto, FormatTerminal, FormatText, FormatJSON:
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s (want %s)", s, strings.Join(Formats(), ", "))
}

// Detect resolves auto for w. Only a color-capable terminal gets term;
// buffers, pipes, files and NO_COLOR get text.
func Detect(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	f, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(f).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
