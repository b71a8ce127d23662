package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Case is one row of a benchmark log.
type Case struct {
	Name     string
	Language string
	Status   Status
	Timing   float64
}

// Log holds the aggregated view of one benchmark run: global statistics,
// per-language statistics, and the status of every case for cross-run
// comparison.
type Log struct {
	Global      *StatsLine
	PerLanguage map[string]*StatsLine
	CaseStatus  map[string]Status
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{
		Global:      NewStatsLine(),
		PerLanguage: make(map[string]*StatsLine),
		CaseStatus:  make(map[string]Status),
	}
}

// Add folds one case into the log. A duplicate case name overwrites the
// previously recorded status.
func (l *Log) Add(c Case) {
	l.Global.Add(c)

	line, ok := l.PerLanguage[c.Language]
	if !ok {
		line = NewStatsLine()
		l.PerLanguage[c.Language] = line
	}
	line.Add(c)

	l.CaseStatus[c.Name] = c.Status
}

// Has reports whether the log recorded a case with the given name.
func (l *Log) Has(name string) bool {
	_, ok := l.CaseStatus[name]
	return ok
}

// ReadLog parses the benchmark TSV at path. The first row is a header and
// must name the case, language, status, and timing columns. When restrictTo
// is non-nil, only cases also covered by that log are accumulated; this
// makes a historical log comparable to a newer, possibly narrower one.
func ReadLog(path string, restrictTo *Log) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open benchmark log: %w", err)
	}
	defer file.Close()

	log, err := readLog(file, restrictTo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return log, nil
}

func readLog(r io.Reader, restrictTo *Log) (*Log, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"case", "language", "status", "timing"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	log := NewLog()
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		c, err := parseCase(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		if restrictTo != nil && !restrictTo.Has(c.Name) {
			continue
		}
		log.Add(c)
	}

	return log, nil
}

func parseCase(record []string, columns map[string]int) (Case, error) {
	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(record) {
			return "", fmt.Errorf("missing value for column %q", name)
		}
		return record[idx], nil
	}

	name, err := field("case")
	if err != nil {
		return Case{}, err
	}
	language, err := field("language")
	if err != nil {
		return Case{}, err
	}
	status, err := field("status")
	if err != nil {
		return Case{}, err
	}
	timingText, err := field("timing")
	if err != nil {
		return Case{}, err
	}

	timing, err := strconv.ParseFloat(timingText, 64)
	if err != nil {
		return Case{}, fmt.Errorf("parse timing %q: %w", timingText, err)
	}

	return Case{
		Name:     name,
		Language: language,
		Status:   Status(status),
		Timing:   timing,
	}, nil
}
