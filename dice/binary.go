package dice

import (
	"fmt"

	"royalur/rules"
)

// BinaryDice rolls a number of binary die and counts the results.
type BinaryDice struct {
	Stateless
	name          string
	numDie        int
	probabilities []float64
	source        Source
}

// NewBinaryDice creates dice that roll numDie fair binary die.
func NewBinaryDice(name string, numDie int, options ...Option) (*BinaryDice, error) {
	if numDie < 0 {
		return nil, fmt.Errorf("%w: number of binary die must not be negative: %d", rules.ErrInvalidArgument, numDie)
	}
	cfg := newConfig(options)
	return &BinaryDice{
		name:          name,
		numDie:        numDie,
		probabilities: binomialProbabilities(numDie),
		source:        cfg.source,
	}, nil
}

// binomialProbabilities computes P(k) = C(n,k) * 0.5^n for k in [0, n].
// The coefficient is updated incrementally so no factorials are formed.
func binomialProbabilities(n int) []float64 {
	probabilities := make([]float64, n+1)
	base := 1.0
	for i := 0; i < n; i++ {
		base *= 0.5
	}
	coef := 1.0
	for k := 0; k <= n; k++ {
		probabilities[k] = base * coef
		coef = coef * float64(n-k) / float64(k+1)
	}
	return probabilities
}

func (d *BinaryDice) Name() string {
	return d.name
}

// NumDie returns the number of binary die that are rolled.
func (d *BinaryDice) NumDie() int {
	return d.numDie
}

func (d *BinaryDice) MaxRollValue() int {
	return d.numDie
}

func (d *BinaryDice) RollProbabilities() []float64 {
	out := make([]float64, len(d.probabilities))
	copy(out, d.probabilities)
	return out
}

func (d *BinaryDice) RollValue() int {
	value := 0
	for i := 0; i < d.numDie; i++ {
		// Simulate a single D2
		if d.source.Float64() >= 0.5 {
			value++
		}
	}
	return value
}

func (d *BinaryDice) GenerateRoll(value int) (Roll, error) {
	if value < 0 || value > d.numDie {
		return Roll{}, invalidRoll(d.name, value)
	}
	return NewRoll(value), nil
}

func (d *BinaryDice) Roll() (Roll, error) {
	return roll(d)
}
