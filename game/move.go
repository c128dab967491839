package game

import (
	"fmt"
	"strings"

	"royalur/rules"
)

var (
	// ErrNoSource is returned when reading the source of a move that introduces a piece.
	ErrNoSource = fmt.Errorf("%w: move has no source, as it is introducing a piece", rules.ErrState)
	// ErrNoDest is returned when reading the destination of a move that scores a piece.
	ErrNoDest = fmt.Errorf("%w: move has no destination, as it is scoring a piece", rules.ErrState)
	// ErrNoCapture is returned when reading the captured piece of a move that captures nothing.
	ErrNoCapture = fmt.Errorf("%w: move does not capture a piece", rules.ErrState)
)

// Move is a move that can be made on a board. A move without a source
// introduces a new piece, and a move without a destination scores a piece.
//
// Two moves are equal when they move the same pieces between the same tiles,
// regardless of the player that makes them.
type Move struct {
	player PlayerType
	key    MoveKey
}

// MoveKey is the comparable identity of a move, usable as a map key.
type MoveKey struct {
	Source        Tile
	HasSource     bool
	SourcePiece   Piece
	Dest          Tile
	HasDest       bool
	DestPiece     Piece
	CapturedPiece Piece
	HasCapture    bool
}

// NewMove creates a move made by player. source and sourcePiece must both be
// set or both be nil, as must dest and destPiece. A captured piece requires a
// destination.
func NewMove(player PlayerType, source *Tile, sourcePiece *Piece, dest *Tile, destPiece *Piece, captured *Piece) (Move, error) {
	if (source == nil) != (sourcePiece == nil) {
		return Move{}, fmt.Errorf("%w: source and source piece must either be both nil, or both non-nil", rules.ErrInvalidArgument)
	}
	if (dest == nil) != (destPiece == nil) {
		return Move{}, fmt.Errorf("%w: dest and dest piece must either be both nil, or both non-nil", rules.ErrInvalidArgument)
	}
	if dest == nil && captured != nil {
		return Move{}, fmt.Errorf("%w: moves without a destination cannot capture a piece", rules.ErrInvalidArgument)
	}

	m := Move{player: player}
	if source != nil {
		m.key.Source, m.key.SourcePiece, m.key.HasSource = *source, *sourcePiece, true
	}
	if dest != nil {
		m.key.Dest, m.key.DestPiece, m.key.HasDest = *dest, *destPiece, true
	}
	if captured != nil {
		m.key.CapturedPiece, m.key.HasCapture = *captured, true
	}
	return m, nil
}

// Player returns the player making the move.
func (m Move) Player() PlayerType {
	return m.player
}

// HasSource reports whether the move moves a piece that is on the board.
func (m Move) HasSource() bool {
	return m.key.HasSource
}

// IsIntroducingPiece reports whether the move puts a new piece on the board.
func (m Move) IsIntroducingPiece() bool {
	return !m.key.HasSource
}

// HasDest reports whether the move ends on a tile of the board.
func (m Move) HasDest() bool {
	return m.key.HasDest
}

// IsScoringPiece reports whether the move takes a piece off the board.
func (m Move) IsScoringPiece() bool {
	return !m.key.HasDest
}

// IsCapture reports whether the move captures a piece of the opponent.
func (m Move) IsCapture() bool {
	return m.key.HasCapture
}

// IsDestRosette reports whether the move lands on a rosette of shape. Under
// common rule sets this gives the player another turn.
func (m Move) IsDestRosette(shape BoardShape) bool {
	return m.key.HasDest && shape.IsRosette(m.key.Dest)
}

func (m Move) Source() (Tile, error) {
	if !m.key.HasSource {
		return Tile{}, ErrNoSource
	}
	return m.key.Source, nil
}

func (m Move) SourcePiece() (Piece, error) {
	if !m.key.HasSource {
		return Piece{}, ErrNoSource
	}
	return m.key.SourcePiece, nil
}

func (m Move) Dest() (Tile, error) {
	if !m.key.HasDest {
		return Tile{}, ErrNoDest
	}
	return m.key.Dest, nil
}

func (m Move) DestPiece() (Piece, error) {
	if !m.key.HasDest {
		return Piece{}, ErrNoDest
	}
	return m.key.DestPiece, nil
}

func (m Move) CapturedPiece() (Piece, error) {
	if !m.key.HasCapture {
		return Piece{}, ErrNoCapture
	}
	return m.key.CapturedPiece, nil
}

// Apply commits the move to a board.
// TODO: implement once a board state type exists to apply moves to.
func (m Move) Apply() error {
	return fmt.Errorf("%w: applying moves requires a board", rules.ErrNotImplemented)
}

// Key returns the identity of the move.
func (m Move) Key() MoveKey {
	return m.key
}

// Equal reports whether both moves move the same pieces between the same tiles.
func (m Move) Equal(other Move) bool {
	return m.key == other.key
}

// Describe generates an English description of the move.
func (m Move) Describe() string {
	scoring := m.IsScoringPiece()
	introducing := m.IsIntroducingPiece()

	if scoring && introducing {
		return "Introduce and score a piece."
	}
	if scoring {
		return "Score a piece from " + m.key.Source.String() + "."
	}

	var b strings.Builder
	if introducing {
		b.WriteString("Introduce a piece to ")
	} else {
		b.WriteString("Move ")
		b.WriteString(m.key.Source.String())
		b.WriteString(" to ")
	}
	if m.IsCapture() {
		b.WriteString("capture ")
	}
	b.WriteString(m.key.Dest.String())
	b.WriteString(".")
	return b.String()
}

func (m Move) String() string {
	return m.Describe()
}
