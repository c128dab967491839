package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetric summarises one dice experiment run.
type RunMetric struct {
	DiceType   string
	Goroutines int
	Seed       uint64
	Rolls      int
	StartTime  time.Time
	Duration   time.Duration
	Counts     []int // Number of rolls per value, indexed by value
}

// Collector counts the rolls made by the workers of a run. AddRoll is safe
// for concurrent use.
type Collector interface {
	Start(diceType string, goroutines int, seed uint64)
	AddRoll(value int)
	Complete() RunMetric
}

type collector struct {
	diceType   string
	goroutines int
	seed       uint64
	startTime  time.Time
	counts     []atomic.Int64
	rolls      atomic.Int64
}

// NewCollector creates a collector for dice rolling values in [0, maxRollValue].
func NewCollector(maxRollValue int) Collector {
	return &collector{counts: make([]atomic.Int64, maxRollValue+1)}
}

func (m *collector) Start(diceType string, goroutines int, seed uint64) {
	m.startTime = time.Now()
	m.diceType = diceType
	m.goroutines = goroutines
	m.seed = seed
}

func (m *collector) AddRoll(value int) {
	m.counts[value].Add(1)
	m.rolls.Add(1)
}

func (m *collector) Complete() RunMetric {
	counts := make([]int, len(m.counts))
	for i := range m.counts {
		counts[i] = int(m.counts[i].Load())
	}
	return RunMetric{
		DiceType:   m.diceType,
		Goroutines: m.goroutines,
		Seed:       m.seed,
		Rolls:      int(m.rolls.Load()),
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Counts:     counts,
	}
}

// DistributionRecord compares the observed frequency of a value with its
// expected probability.
type DistributionRecord struct {
	Value     int
	Count     int
	Observed  float64
	Expected  float64
	Deviation float64 // Observed - Expected
}

// NewDistribution pairs the counts of a run with the probabilities of the dice.
func NewDistribution(counts []int, probabilities []float64) []DistributionRecord {
	total := 0
	for _, c := range counts {
		total += c
	}
	n := max(len(counts), len(probabilities))
	records := make([]DistributionRecord, n)
	for value := 0; value < n; value++ {
		r := DistributionRecord{Value: value}
		if value < len(counts) {
			r.Count = counts[value]
		}
		if value < len(probabilities) {
			r.Expected = probabilities[value]
		}
		if total > 0 {
			r.Observed = float64(r.Count) / float64(total)
		}
		r.Deviation = r.Observed - r.Expected
		records[value] = r
	}
	return records
}
