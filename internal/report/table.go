// Package report builds benchmark reports as plain data and renders them as
// Markdown. Construction is kept separate from rendering so report contents
// can be inspected without capturing printed text.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table is a format-agnostic grid: column titles plus rows of
// already-formatted cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// WriteMarkdown renders the table as a pipe-delimited Markdown table. The
// separator row repeats dashes to the width of each column title.
func (t *Table) WriteMarkdown(w io.Writer) error {
	if err := writeRow(w, t.Columns); err != nil {
		return err
	}

	dashes := make([]string, len(t.Columns))
	for i, title := range t.Columns {
		dashes[i] = strings.Repeat("-", utf8.RuneCountInString(title))
	}
	if err := writeRow(w, dashes); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	return err
}
