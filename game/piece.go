package game

import (
	"fmt"

	"royalur/rules"
)

// Piece is a piece on the board, identified by its owner and its index along
// the owner's path. The tile a piece sits on is resolved through that path.
type Piece struct {
	owner     PlayerType
	pathIndex int
}

// NewPiece creates the piece of owner at pathIndex.
func NewPiece(owner PlayerType, pathIndex int) (Piece, error) {
	if owner != Light && owner != Dark {
		return Piece{}, fmt.Errorf("%w: %d", ErrUnknownPlayer, int(owner))
	}
	if pathIndex < 0 {
		return Piece{}, fmt.Errorf("%w: the path index cannot be negative: %d", rules.ErrInvalidArgument, pathIndex)
	}
	return Piece{owner: owner, pathIndex: pathIndex}, nil
}

// Owner returns the player that owns the piece.
func (p Piece) Owner() PlayerType { return p.owner }

// PathIndex returns the index of the piece on its owner's path.
func (p Piece) PathIndex() int { return p.pathIndex }

func (p Piece) String() string {
	return fmt.Sprintf("%c%d", p.owner.Char(), p.pathIndex)
}

// PieceChar renders the owner of an optional piece, using NoPlayerChar for nil.
func PieceChar(p *Piece) rune {
	if p == nil {
		return NoPlayerChar
	}
	return p.owner.Char()
}
