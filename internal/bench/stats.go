package bench

// TimingStats accumulates data points to compute an average.
type TimingStats struct {
	Count int
	Sum   float64
}

// Add records one data point.
func (t *TimingStats) Add(seconds float64) {
	t.Count++
	t.Sum += seconds
}

// Average returns the mean of the recorded data points, or 0 when none were
// recorded.
func (t *TimingStats) Average() float64 {
	if t.Count == 0 {
		return 0
	}
	return t.Sum / float64(t.Count)
}

// StatsLine aggregates how many cases landed in each status category and how
// long they took.
type StatsLine struct {
	Timing TimingStats
	States map[Status]int
}

// NewStatsLine returns an empty aggregate.
func NewStatsLine() *StatsLine {
	return &StatsLine{States: make(map[Status]int)}
}

// Add folds one case into the aggregate.
func (s *StatsLine) Add(c Case) {
	s.Timing.Add(c.Timing)
	s.States[c.Status]++
}
