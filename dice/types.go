package dice

import (
	"fmt"

	"royalur/rules"
)

// DiceType identifies one of the dice configurations used by the supported rule sets.
type DiceType int

const (
	// FourBinary is the standard set of four binary die.
	FourBinary DiceType = iota + 1
	// ThreeBinary0Max is the Aseb set of three binary die where zero scores the maximum.
	ThreeBinary0Max
)

// ErrUnknownDiceType indicates a dice type id or name that is not registered.
var ErrUnknownDiceType = fmt.Errorf("%w: unknown dice type", rules.ErrInvalidArgument)

type diceTypeEntry struct {
	name  string
	build func(name string, options ...Option) (Dice, error)
}

var diceTypes = map[DiceType]diceTypeEntry{
	FourBinary:      {name: "FourBinary", build: buildFourBinary},
	ThreeBinary0Max: {name: "ThreeBinary0Max", build: buildThreeBinary0Max},
}

func buildFourBinary(name string, options ...Option) (Dice, error) {
	d, err := NewBinaryDice(name, 4, options...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func buildThreeBinary0Max(name string, options ...Option) (Dice, error) {
	d, err := NewBinaryDice0AsMax(name, 3, options...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DiceTypes returns every registered dice type in id order.
func DiceTypes() []DiceType {
	return []DiceType{FourBinary, ThreeBinary0Max}
}

// ParseDiceType resolves a display name such as "FourBinary".
func ParseDiceType(name string) (DiceType, error) {
	for _, dt := range DiceTypes() {
		if diceTypes[dt].name == name {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDiceType, name)
}

// ID returns the stable numeric id of the dice type.
func (dt DiceType) ID() int {
	return int(dt)
}

// Name returns the stable display name, which doubles as a configuration key.
func (dt DiceType) Name() string {
	if entry, ok := diceTypes[dt]; ok {
		return entry.name
	}
	return fmt.Sprintf("DiceType(%d)", int(dt))
}

func (dt DiceType) String() string {
	return dt.Name()
}

// Valid reports whether dt is a registered dice type.
func (dt DiceType) Valid() bool {
	_, ok := diceTypes[dt]
	return ok
}

// CreateDice creates a new set of these dice. Every call returns an
// independent instance.
func (dt DiceType) CreateDice(options ...Option) (Dice, error) {
	entry, ok := diceTypes[dt]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDiceType, int(dt))
	}
	return entry.build(entry.name, options...)
}

func (dt DiceType) MarshalText() ([]byte, error) {
	entry, ok := diceTypes[dt]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDiceType, int(dt))
	}
	return []byte(entry.name), nil
}

func (dt *DiceType) UnmarshalText(text []byte) error {
	parsed, err := ParseDiceType(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
