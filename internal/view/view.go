// Package view decides how a Markdown report reaches the user: raw text for
// pipes and files, or a glamour-rendered version for terminals.
package view

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Supported output formats.
const (
	FormatAuto     = "auto"
	FormatMarkdown = "markdown"
	FormatTerm     = "term"
)

// Options defines the configurable parameters for rendering a report.
type Options struct {
	Format string // auto, markdown, or term
	Wrap   int    // word-wrap column for terminal rendering, 0 = detect
	Out    io.Writer
}

// Render writes the markdown report according to the options.
func Render(opts Options, markdown string) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatAuto
	}

	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(opts.Out, markdown)
		return err
	case FormatTerm:
		return renderTerminal(opts, markdown)
	case FormatAuto:
		if shouldRenderTerminal(opts.Out) {
			return renderTerminal(opts, markdown)
		}
		_, err := io.WriteString(opts.Out, markdown)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func renderTerminal(opts Options, markdown string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(determineWidth(opts.Out, opts.Wrap)),
	)
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = io.WriteString(opts.Out, rendered)
	return err
}

func shouldRenderTerminal(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func determineWidth(out io.Writer, wrap int) int {
	if wrap > 0 {
		return wrap
	}
	if file, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if colsStr := os.Getenv("COLUMNS"); colsStr != "" {
		if v, err := strconv.Atoi(colsStr); err == nil && v > 0 {
			return v
		}
	}
	return 80
}
