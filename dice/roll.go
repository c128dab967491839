package dice

import "strconv"

// Roll is the value produced by a single roll of a set of dice.
type Roll struct {
	value int
}

// NewRoll wraps value without validating it. Use Dice.GenerateRoll to get a
// roll that is checked against a dice configuration.
func NewRoll(value int) Roll {
	return Roll{value: value}
}

func (r Roll) Value() int {
	return r.value
}

func (r Roll) String() string {
	return strconv.Itoa(r.value)
}
