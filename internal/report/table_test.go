package report

import (
	"bytes"
	"testing"
)

func TestWriteMarkdown(t *testing.T) {
	table := &Table{
		Columns: []string{"Language", "Cases"},
		Rows: [][]string{
			{"`go`", "3"},
			{"**Total**", "5"},
		},
	}

	var buf bytes.Buffer
	if err := table.WriteMarkdown(&buf); err != nil {
		t.Fatalf("WriteMarkdown returned error: %v", err)
	}

	expected := "| Language | Cases |\n" +
		"| -------- | ----- |\n" +
		"| `go` | 3 |\n" +
		"| **Total** | 5 |\n"
	if got := buf.String(); got != expected {
		t.Fatalf("markdown mismatch:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestWriteMarkdownDashWidthCountsRunes(t *testing.T) {
	table := &Table{Columns: []string{`↓ Before \ After →`}}

	var buf bytes.Buffer
	if err := table.WriteMarkdown(&buf); err != nil {
		t.Fatalf("WriteMarkdown returned error: %v", err)
	}

	expected := "| ↓ Before \\ After → |\n" +
		"| ------------------ |\n"
	if got := buf.String(); got != expected {
		t.Fatalf("markdown mismatch:\nexpected: %q\nactual:   %q", expected, got)
	}
}
