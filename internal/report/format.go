package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"runlog/internal/bench"
)

// printer inserts thousands separators into counts.
var printer = message.NewPrinter(language.English)

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func formatSignedCount(n int) string {
	return printer.Sprintf("%+d", n)
}

// statsCells formats one summary row: total cases, one cell per status in
// the fixed order, and the average time. Non-zero status counts carry a
// percentage of the line's total cases.
func statsCells(line *bench.StatsLine) []string {
	cases := line.Timing.Count
	cells := []string{formatCount(cases)}

	for _, status := range bench.StatusOrder {
		count := line.States[status]
		if count > 0 {
			pct := 100 * float64(count) / float64(cases)
			cells = append(cells, fmt.Sprintf("%s (%.0f%%)", formatCount(count), pct))
		} else {
			cells = append(cells, "0")
		}
	}

	cells = append(cells, fmt.Sprintf("%.3f", line.Timing.Average()))
	return cells
}

// diffCells formats one comparison row: the after-run case count, signed
// per-status deltas, and the timing change. A status delta is annotated
// with its percentage change relative to the before count of that status
// when both are non-zero. The timing cell shows the delta with a percentage
// annotation when it is meaningful, and the plain after-average otherwise.
func diffCells(before, after *bench.StatsLine) []string {
	cells := []string{formatCount(after.Timing.Count)}

	for _, status := range bench.StatusOrder {
		first := before.States[status]
		second := after.States[status]
		delta := second - first
		if delta != 0 && first != 0 {
			pct := 100 * float64(delta) / float64(first)
			cells = append(cells, fmt.Sprintf("%s **(%+.1f%%)**", formatSignedCount(delta), pct))
		} else {
			cells = append(cells, formatSignedCount(delta))
		}
	}

	beforeAvg := before.Timing.Average()
	afterAvg := after.Timing.Average()
	timingDiff := afterAvg - beforeAvg
	if math.Abs(timingDiff) > 0.001 && afterAvg > 0 && beforeAvg > 0 {
		pct := 100 * timingDiff / beforeAvg
		cells = append(cells, fmt.Sprintf("%+.3f (%+.1f%%)", timingDiff, pct))
	} else {
		cells = append(cells, fmt.Sprintf("%.3f", afterAvg))
	}

	return cells
}
