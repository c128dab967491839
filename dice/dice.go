// Package dice implements the dice used by the Royal Game of Ur family.
//
// A Dice produces Rolls and reports the exact probability of every value it can
// roll. The shipped dice are built from fair binary die whose results are summed,
// which gives a binomial distribution.
//
// # State
//
// Dice may hold state that changes their odds over time, e.g. dice that react to
// previous rolls. HasState, RecordRoll and CopyFrom are the extension points for
// that. Types without state embed Stateless to get no-op versions. A stateful
// implementation must document whether RollValue and RecordRoll may be called
// concurrently on the same value; the stateless dice in this package never
// mutate themselves when rolling.
package dice

import (
	"fmt"

	"royalur/rules"
)

// ErrInvalidRoll indicates a value that the dice cannot produce.
var ErrInvalidRoll = fmt.Errorf("%w: roll out of range", rules.ErrInvalidArgument)

// ErrIncompatibleDice indicates CopyFrom was called with a different kind of dice.
var ErrIncompatibleDice = fmt.Errorf("%w: incompatible dice", rules.ErrState)

// Dice is a generator of dice rolls.
type Dice interface {
	// Name returns the configuration name of the dice.
	Name() string

	// MaxRollValue returns the highest value that could be rolled.
	MaxRollValue() int

	// RollProbabilities returns the probability of rolling each value, indexed
	// by the value of the roll. The returned slice is a copy.
	RollProbabilities() []float64

	// RollValue generates a random roll and returns just its value.
	// Stateful dice record the roll before returning.
	RollValue() int

	// GenerateRoll wraps value in a Roll if the dice could have produced it.
	GenerateRoll(value int) (Roll, error)

	// Roll generates a random roll.
	Roll() (Roll, error)

	// HasState reports whether the dice holds state that affects its rolls.
	// Implementations returning true must also implement CopyFrom.
	HasState() bool

	// RecordRoll updates the state of the dice after value was rolled.
	RecordRoll(value int)

	// CopyFrom copies the state of other into the dice.
	CopyFrom(other Dice) error
}

// Stateless provides the state extension points for dice without state.
type Stateless struct{}

func (Stateless) HasState() bool { return false }

func (Stateless) RecordRoll(int) {}

// CopyFrom is a no-op, there is no state to copy. A stateful other is
// rejected since its state would be silently dropped.
func (Stateless) CopyFrom(other Dice) error {
	if other != nil && other.HasState() {
		return fmt.Errorf("%w: cannot copy %s into stateless dice", ErrIncompatibleDice, other.Name())
	}
	return nil
}

// roll is the shared implementation of Dice.Roll.
func roll(d Dice) (Roll, error) {
	return d.GenerateRoll(d.RollValue())
}

func invalidRoll(name string, value int) error {
	return fmt.Errorf("%w: %s cannot roll %d", ErrInvalidRoll, name, value)
}
