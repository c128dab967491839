package game

import (
	"fmt"

	"royalur/rules"
)

// PlayerType represents one of the two players of a game.
type PlayerType int

const (
	Light PlayerType = iota + 1
	Dark
)

// NoPlayerChar is the character used when there is no player, e.g. for an empty tile.
const NoPlayerChar = '.'

// ErrUnknownPlayer indicates a player id or name that is neither light nor dark.
var ErrUnknownPlayer = fmt.Errorf("%w: unknown player", rules.ErrInvalidArgument)

// OtherPlayer returns the opponent of p. It panics if p is neither Light
// nor Dark, since no such player can take part in a game.
func (p PlayerType) OtherPlayer() PlayerType {
	switch p {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		panic(fmt.Sprintf("unknown player type %d", int(p)))
	}
}

// Char returns the single character used to render the player's pieces.
func (p PlayerType) Char() rune {
	switch p {
	case Light:
		return 'L'
	case Dark:
		return 'D'
	default:
		return '?'
	}
}

func (p PlayerType) String() string {
	switch p {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return fmt.Sprintf("PlayerType(%d)", int(p))
	}
}

// PlayerChar renders an optional player, using NoPlayerChar for nil.
func PlayerChar(p *PlayerType) rune {
	if p == nil {
		return NoPlayerChar
	}
	return p.Char()
}

func (p PlayerType) MarshalText() ([]byte, error) {
	if p != Light && p != Dark {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, int(p))
	}
	return []byte(p.String()), nil
}

func (p *PlayerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Light":
		*p = Light
	case "Dark":
		*p = Dark
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}
	return nil
}
