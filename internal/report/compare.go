package report

import (
	"fmt"
	"io"
	"sort"

	"runlog/internal/bench"
)

// Transition is a set of cases that moved from one status to another
// between two runs.
type Transition struct {
	From  bench.Status
	To    bench.Status
	Cases []string
}

// Compared holds the full comparison between two benchmark runs: the diff
// table, the status confusion matrix, the suspicious transitions, and any
// non-fatal warnings raised while pairing cases.
type Compared struct {
	Diff       *Table
	Matrix     *Table
	Suspicious []Transition
	Warnings   []error
}

// Compare builds the comparison between two runs. The before log is expected
// to already be restricted to the after log's cases. Cases present only in
// the after log yield a warning and are excluded from the confusion matrix.
func Compare(before, after *bench.Log) *Compared {
	compared := &Compared{
		Diff: &Table{Columns: statusColumns()},
	}

	for _, language := range languagesByCaseCount(after) {
		beforeLine := before.PerLanguage[language]
		if beforeLine == nil {
			beforeLine = bench.NewStatsLine()
		}
		cells := diffCells(beforeLine, after.PerLanguage[language])
		compared.Diff.Rows = append(compared.Diff.Rows, append([]string{fmt.Sprintf("`%s`", language)}, cells...))
	}
	if len(after.PerLanguage) > 1 {
		cells := diffCells(before.Global, after.Global)
		compared.Diff.Rows = append(compared.Diff.Rows, append([]string{"**Total**"}, cells...))
	}

	transitions := make(map[[2]bench.Status][]string)
	for _, name := range sortedCaseNames(after) {
		status := after.CaseStatus[name]
		previous, ok := before.CaseStatus[name]
		if !ok {
			compared.Warnings = append(compared.Warnings, fmt.Errorf("case not found in previous benchmark: %s", name))
			continue
		}
		key := [2]bench.Status{previous, status}
		transitions[key] = append(transitions[key], name)
	}

	compared.Matrix = confusionMatrix(transitions)
	compared.Suspicious = suspiciousTransitions(transitions)

	return compared
}

// WriteMarkdown renders the diff table, the confusion matrix, and the
// suspicious status changes.
func (c *Compared) WriteMarkdown(w io.Writer) error {
	if err := c.Diff.WriteMarkdown(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := c.Matrix.WriteMarkdown(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n## Suspicious status changes\n\n"); err != nil {
		return err
	}
	for _, transition := range c.Suspicious {
		if _, err := fmt.Fprintf(w, "### %s → %s\n", transition.From, transition.To); err != nil {
			return err
		}
		for _, name := range transition.Cases {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func sortedCaseNames(log *bench.Log) []string {
	names := make([]string, 0, len(log.CaseStatus))
	for name := range log.CaseStatus {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// confusionMatrix builds the before/after grid in the fixed status order.
// Zero cells stay blank; off-diagonal non-zero cells are emphasized.
func confusionMatrix(transitions map[[2]bench.Status][]string) *Table {
	columns := []string{`↓ Before \ After →`}
	for _, status := range bench.StatusOrder {
		columns = append(columns, string(status))
	}
	table := &Table{Columns: columns}

	for _, from := range bench.StatusOrder {
		row := []string{string(from)}
		for _, to := range bench.StatusOrder {
			cell := ""
			if count := len(transitions[[2]bench.Status{from, to}]); count > 0 {
				cell = formatCount(count)
				if from != to {
					cell = fmt.Sprintf("**%s**", cell)
				}
			}
			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// suspiciousTransitions collects the upper triangle of the matrix: pairs
// where the before status precedes the after status in the fixed order,
// meaning cases regressed.
func suspiciousTransitions(transitions map[[2]bench.Status][]string) []Transition {
	var suspicious []Transition
	for i, from := range bench.StatusOrder {
		for _, to := range bench.StatusOrder[i+1:] {
			cases := transitions[[2]bench.Status{from, to}]
			if len(cases) == 0 {
				continue
			}
			sorted := append([]string(nil), cases...)
			sort.Strings(sorted)
			suspicious = append(suspicious, Transition{From: from, To: to, Cases: sorted})
		}
	}
	return suspicious
}
