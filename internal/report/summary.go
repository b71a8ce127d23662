package report

import (
	"fmt"
	"sort"

	"runlog/internal/bench"
)

// statusColumns builds the shared table header: Language, Cases, one column
// per status in the fixed order, and the average time.
func statusColumns() []string {
	columns := []string{"Language", "Cases"}
	for _, status := range bench.StatusOrder {
		columns = append(columns, string(status))
	}
	return append(columns, "Time (s)")
}

// languagesByCaseCount returns the log's languages sorted by descending case
// count, ties broken by name.
func languagesByCaseCount(log *bench.Log) []string {
	languages := make([]string, 0, len(log.PerLanguage))
	for language := range log.PerLanguage {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		a := log.PerLanguage[languages[i]].Timing.Count
		b := log.PerLanguage[languages[j]].Timing.Count
		if a != b {
			return a > b
		}
		return languages[i] < languages[j]
	})
	return languages
}

// Summary builds the single-run table: one row per language plus a Total row
// when more than one language is present.
func Summary(log *bench.Log) *Table {
	table := &Table{Columns: statusColumns()}

	for _, language := range languagesByCaseCount(log) {
		row := append([]string{fmt.Sprintf("`%s`", language)}, statsCells(log.PerLanguage[language])...)
		table.Rows = append(table.Rows, row)
	}

	if len(log.PerLanguage) > 1 {
		table.Rows = append(table.Rows, append([]string{"**Total**"}, statsCells(log.Global)...))
	}

	return table
}
