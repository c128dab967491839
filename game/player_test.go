package game

import (
	"testing"

	"royalur/rules"

	"github.com/stretchr/testify/require"
)

func TestPlayerType(t *testing.T) {
	require.Equal(t, Dark, Light.OtherPlayer())
	require.Equal(t, Light, Dark.OtherPlayer())
	require.Equal(t, 'L', Light.Char())
	require.Equal(t, 'D', Dark.Char())
	require.Equal(t, "Light", Light.String())
	require.Equal(t, "Dark", Dark.String())

	require.Panics(t, func() {
		PlayerType(0).OtherPlayer()
	}, "Should panic for an unknown player")
}

func TestPlayerChar(t *testing.T) {
	dark := Dark
	require.Equal(t, 'D', PlayerChar(&dark))
	require.Equal(t, NoPlayerChar, PlayerChar(nil))

	piece := mustPiece(t, Light, 0)
	require.Equal(t, 'L', PieceChar(&piece))
	require.Equal(t, NoPlayerChar, PieceChar(nil))
}

func TestPlayerTypeText(t *testing.T) {
	text, err := Dark.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Dark", string(text))

	var p PlayerType
	require.NoError(t, p.UnmarshalText([]byte("Light")))
	require.Equal(t, Light, p)
	require.ErrorIs(t, p.UnmarshalText([]byte("Grey")), ErrUnknownPlayer)

	_, err = PlayerType(3).MarshalText()
	require.ErrorIs(t, err, rules.ErrInvalidArgument)
}

func TestNewPiece(t *testing.T) {
	piece := mustPiece(t, Dark, 4)
	require.Equal(t, Dark, piece.Owner())
	require.Equal(t, 4, piece.PathIndex())
	require.Equal(t, "D4", piece.String())
	require.Equal(t, mustPiece(t, Dark, 4), piece, "Pieces should compare by value")

	_, err := NewPiece(Light, -1)
	require.ErrorIs(t, err, rules.ErrInvalidArgument)

	_, err = NewPiece(PlayerType(0), 1)
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestShape(t *testing.T) {
	tiles, err := NewTiles(Coord{2, 1}, Coord{1, 1}, Coord{1, 2})
	require.NoError(t, err)

	shape, err := NewShape("small", tiles, []Tile{mustTile(t, 1, 1)})
	require.NoError(t, err)

	require.Equal(t, "small", shape.Name())
	require.True(t, shape.Contains(mustTile(t, 2, 1)))
	require.False(t, shape.Contains(mustTile(t, 2, 2)))
	require.True(t, shape.IsRosette(mustTile(t, 1, 1)))
	require.False(t, shape.IsRosette(mustTile(t, 1, 2)))
	require.Equal(t, []Tile{mustTile(t, 1, 1), mustTile(t, 1, 2), mustTile(t, 2, 1)}, shape.Tiles())
	require.Equal(t, []Tile{mustTile(t, 1, 1)}, shape.Rosettes())

	_, err = NewShape("bad", tiles, []Tile{mustTile(t, 5, 5)})
	require.ErrorIs(t, err, rules.ErrInvalidArgument, "Rosettes must be on the board")

	_, err = NewShape("empty", nil, nil)
	require.ErrorIs(t, err, rules.ErrInvalidArgument)
}
