package framework

import "time"

// Metrics holds the counters collected during a run. All three values are
// overwritten after every generation, not accumulated.
type Metrics struct {
	populationSize int
	iterations     int
	elapsed        time.Duration
}

// Update overwrites all counters.
func (m *Metrics) Update(populationSize, iterations int, elapsed time.Duration) {
	m.populationSize = populationSize
	m.iterations = iterations
	m.elapsed = elapsed
}

// Reset sets all counters back to zero.
func (m *Metrics) Reset() {
	m.Update(0, 0, 0)
}

func (m *Metrics) PopulationSize() int {
	return m.populationSize
}

func (m *Metrics) Iterations() int {
	return m.iterations
}

func (m *Metrics) Elapsed() time.Duration {
	return m.elapsed
}

// ElapsedMilliseconds returns the elapsed wall-clock time in milliseconds.
func (m *Metrics) ElapsedMilliseconds() int64 {
	return m.elapsed.Milliseconds()
}
