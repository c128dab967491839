package dice

// BinaryDice0AsMax is a set of binary dice where rolling zero represents the
// highest roll possible rather than the lowest. It is used by the Aseb rules.
type BinaryDice0AsMax struct {
	*BinaryDice
	maxRollValue  int
	probabilities []float64
}

// NewBinaryDice0AsMax creates numDie binary dice that score numDie+1 when no
// die lands on its marked side.
func NewBinaryDice0AsMax(name string, numDie int, options ...Option) (*BinaryDice0AsMax, error) {
	inner, err := NewBinaryDice(name, numDie, options...)
	if err != nil {
		return nil, err
	}

	// The mass of a zero roll moves to the new maximum, zero cannot be rolled.
	binomial := inner.probabilities
	probabilities := make([]float64, numDie+2)
	copy(probabilities[1:], binomial[1:])
	probabilities[numDie+1] = binomial[0]

	return &BinaryDice0AsMax{
		BinaryDice:    inner,
		maxRollValue:  numDie + 1,
		probabilities: probabilities,
	}, nil
}

func (d *BinaryDice0AsMax) MaxRollValue() int {
	return d.maxRollValue
}

func (d *BinaryDice0AsMax) RollProbabilities() []float64 {
	out := make([]float64, len(d.probabilities))
	copy(out, d.probabilities)
	return out
}

func (d *BinaryDice0AsMax) RollValue() int {
	value := d.BinaryDice.RollValue()
	if value == 0 {
		return d.maxRollValue
	}
	return value
}

func (d *BinaryDice0AsMax) GenerateRoll(value int) (Roll, error) {
	if value <= 0 || value > d.maxRollValue {
		return Roll{}, invalidRoll(d.name, value)
	}
	return NewRoll(value), nil
}

func (d *BinaryDice0AsMax) Roll() (Roll, error) {
	return roll(d)
}
