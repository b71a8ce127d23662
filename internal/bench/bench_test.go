package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixturePath(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.tsv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestTimingStatsAverage(t *testing.T) {
	var stats TimingStats
	for _, timing := range []float64{1.0, 2.0, 3.0} {
		stats.Add(timing)
	}

	if got := stats.Average(); got != 2.0 {
		t.Fatalf("unexpected average: %v", got)
	}
}

func TestTimingStatsAverageEmpty(t *testing.T) {
	var stats TimingStats
	if got := stats.Average(); got != 0 {
		t.Fatalf("empty average should be 0, got %v", got)
	}
}

func TestStatsLineAdd(t *testing.T) {
	line := NewStatsLine()
	line.Add(Case{Name: "a", Language: "Go", Status: StatusExact, Timing: 1})
	line.Add(Case{Name: "b", Language: "Go", Status: StatusExact, Timing: 2})
	line.Add(Case{Name: "c", Language: "Go", Status: StatusPanic, Timing: 3})

	if line.Timing.Count != 3 {
		t.Fatalf("unexpected case count: %d", line.Timing.Count)
	}
	if line.States[StatusExact] != 2 || line.States[StatusPanic] != 1 {
		t.Fatalf("unexpected status counts: %v", line.States)
	}
}

func TestReadLog(t *testing.T) {
	log, err := ReadLog(fixturePath("bench-after.tsv"), nil)
	if err != nil {
		t.Fatalf("ReadLog returned error: %v", err)
	}

	if log.Global.Timing.Count != 5 {
		t.Fatalf("expected 5 cases, got %d", log.Global.Timing.Count)
	}
	if got := log.PerLanguage["Go"].Timing.Count; got != 3 {
		t.Fatalf("expected 3 Go cases, got %d", got)
	}
	if got := log.PerLanguage["Java"].Timing.Count; got != 2 {
		t.Fatalf("expected 2 Java cases, got %d", got)
	}
	if got := log.CaseStatus["go/crash"]; got != StatusPanic {
		t.Fatalf("unexpected status for go/crash: %s", got)
	}

	// Per-language status counts sum to the language total, and language
	// totals sum to the global total.
	globalTotal := 0
	for language, line := range log.PerLanguage {
		statusTotal := 0
		for _, count := range line.States {
			statusTotal += count
		}
		if statusTotal != line.Timing.Count {
			t.Fatalf("%s: status counts sum to %d, want %d", language, statusTotal, line.Timing.Count)
		}
		globalTotal += line.Timing.Count
	}
	if globalTotal != log.Global.Timing.Count {
		t.Fatalf("language totals sum to %d, want %d", globalTotal, log.Global.Timing.Count)
	}
}

func TestReadLogRestrict(t *testing.T) {
	after, err := ReadLog(fixturePath("bench-after.tsv"), nil)
	if err != nil {
		t.Fatalf("ReadLog after returned error: %v", err)
	}
	before, err := ReadLog(fixturePath("bench-before.tsv"), after)
	if err != nil {
		t.Fatalf("ReadLog before returned error: %v", err)
	}

	if before.Has("java/removed") {
		t.Fatal("restricted log should not contain cases absent from the after log")
	}
	if before.Global.Timing.Count != 4 {
		t.Fatalf("expected 4 cases after restriction, got %d", before.Global.Timing.Count)
	}
	for name := range before.CaseStatus {
		if !after.Has(name) {
			t.Fatalf("case %q not covered by the restriction log", name)
		}
	}
	if len(before.CaseStatus) > len(after.CaseStatus) {
		t.Fatal("restricted log has more cases than the restriction log")
	}
}

func TestReadLogDuplicateCase(t *testing.T) {
	path := writeLog(t,
		"case\tlanguage\tstatus\ttiming",
		"dup\tGo\tExact\t1.0",
		"dup\tGo\tPanic\t2.0",
	)

	log, err := ReadLog(path, nil)
	if err != nil {
		t.Fatalf("ReadLog returned error: %v", err)
	}
	if got := log.CaseStatus["dup"]; got != StatusPanic {
		t.Fatalf("last-seen status should win, got %s", got)
	}
}

func TestReadLogMissingColumn(t *testing.T) {
	path := writeLog(t,
		"case\tlanguage\tstatus",
		"a\tGo\tExact",
	)

	_, err := ReadLog(path, nil)
	if err == nil || !strings.Contains(err.Error(), `missing column "timing"`) {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestReadLogBadTiming(t *testing.T) {
	path := writeLog(t,
		"case\tlanguage\tstatus\ttiming",
		"a\tGo\tExact\tfast",
	)

	_, err := ReadLog(path, nil)
	if err == nil || !strings.Contains(err.Error(), "parse timing") {
		t.Fatalf("expected timing parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error should name the row: %v", err)
	}
}

func TestReadLogMissingFile(t *testing.T) {
	_, err := ReadLog(filepath.Join(t.TempDir(), "absent.tsv"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
