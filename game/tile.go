package game

import (
	"fmt"
	"strconv"

	"royalur/rules"
)

// MaxX is the highest x-coordinate that can be encoded as a letter.
const MaxX = 26

// ErrInvalidFormat indicates tile text that is not a letter followed by a number.
var ErrInvalidFormat = fmt.Errorf("%w: invalid tile format", rules.ErrInvalidArgument)

// Tile is a position on or off the board. Coordinates are 1-based, the
// x-coordinate is rendered as a letter (A=1) and y as a number, e.g. "A4".
type Tile struct {
	x int
	y int
}

// NewTile creates the tile at (x, y), 1-based.
func NewTile(x, y int) (Tile, error) {
	if x < 1 || x > MaxX {
		return Tile{}, fmt.Errorf("%w: x must fall within the range [1, %d]: %d", rules.ErrInvalidArgument, MaxX, x)
	}
	if y < 0 {
		return Tile{}, fmt.Errorf("%w: y must not be negative: %d", rules.ErrInvalidArgument, y)
	}
	return Tile{x: x, y: y}, nil
}

// TileFromIndices creates the tile at the 0-based indices (ix, iy).
func TileFromIndices(ix, iy int) (Tile, error) {
	return NewTile(ix+1, iy+1)
}

// X returns the 1-based x-coordinate.
func (t Tile) X() int { return t.x }

// Y returns the 1-based y-coordinate.
func (t Tile) Y() int { return t.y }

// IX returns the 0-based x-index.
func (t Tile) IX() int { return t.x - 1 }

// IY returns the 0-based y-index.
func (t Tile) IY() int { return t.y - 1 }

// StepTowards takes a unit length step towards other. When other is adjacent
// or equal it is returned as is. Otherwise the step is taken along the axis
// with the larger distance, and along x when both distances are equal.
func (t Tile) StepTowards(other Tile) Tile {
	dx := other.x - t.x
	dy := other.y - t.y

	if abs(dx)+abs(dy) <= 1 {
		return other
	}
	if abs(dx) < abs(dy) {
		return Tile{x: t.x, y: t.y + sign(dy)}
	}
	return Tile{x: t.x + sign(dx), y: t.y}
}

func (t Tile) String() string {
	return string(rune('A'+t.x-1)) + strconv.Itoa(t.y)
}

// ParseTile decodes a tile from its text encoding, e.g. "A4".
func ParseTile(encoded string) (Tile, error) {
	if len(encoded) < 2 {
		return Tile{}, fmt.Errorf("%w: expected at least two characters: %q", ErrInvalidFormat, encoded)
	}
	x := int(encoded[0]) - ('A' - 1)
	y, err := strconv.Atoi(encoded[1:])
	if err != nil {
		return Tile{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, encoded, err)
	}
	return NewTile(x, y)
}

func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tile) UnmarshalText(text []byte) error {
	parsed, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Coord is a 1-based (x, y) pair used to describe tiles and waypoints.
type Coord struct {
	X, Y int
}

// NewTiles constructs a tile for each coordinate.
func NewTiles(coords ...Coord) ([]Tile, error) {
	tiles := make([]Tile, 0, len(coords))
	for _, c := range coords {
		tile, err := NewTile(c.X, c.Y)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

// NewPath constructs a path through the given waypoints. Consecutive
// waypoints are joined with unit steps, so every tile of the path is adjacent
// to the previous one.
func NewPath(waypoints ...Coord) ([]Tile, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("%w: no coordinates provided", rules.ErrInvalidArgument)
	}
	tiles, err := NewTiles(waypoints...)
	if err != nil {
		return nil, err
	}

	path := []Tile{tiles[0]}
	for i := 1; i < len(tiles); i++ {
		current, next := tiles[i-1], tiles[i]
		for current != next {
			current = current.StepTowards(next)
			path = append(path, current)
		}
	}
	return path, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
