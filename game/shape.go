package game

import (
	"fmt"
	"sort"

	"royalur/rules"
)

// BoardShape describes which tiles of a board are rosettes.
type BoardShape interface {
	IsRosette(tile Tile) bool
}

// Shape is a board made of a fixed set of tiles, some of which are rosettes.
type Shape struct {
	name     string
	tiles    map[Tile]struct{}
	rosettes map[Tile]struct{}
}

// NewShape creates a board shape. Every rosette must be one of the tiles.
func NewShape(name string, tiles, rosettes []Tile) (*Shape, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: shape %s has no tiles", rules.ErrInvalidArgument, name)
	}
	s := &Shape{
		name:     name,
		tiles:    make(map[Tile]struct{}, len(tiles)),
		rosettes: make(map[Tile]struct{}, len(rosettes)),
	}
	for _, t := range tiles {
		s.tiles[t] = struct{}{}
	}
	for _, r := range rosettes {
		if _, ok := s.tiles[r]; !ok {
			return nil, fmt.Errorf("%w: rosette %s is not on shape %s", rules.ErrInvalidArgument, r, name)
		}
		s.rosettes[r] = struct{}{}
	}
	return s, nil
}

func (s *Shape) Name() string {
	return s.name
}

// Contains reports whether tile is part of the board.
func (s *Shape) Contains(tile Tile) bool {
	_, ok := s.tiles[tile]
	return ok
}

func (s *Shape) IsRosette(tile Tile) bool {
	_, ok := s.rosettes[tile]
	return ok
}

// Tiles returns the tiles of the board ordered by x, then y.
func (s *Shape) Tiles() []Tile {
	return sortedTiles(s.tiles)
}

// Rosettes returns the rosette tiles ordered by x, then y.
func (s *Shape) Rosettes() []Tile {
	return sortedTiles(s.rosettes)
}

func sortedTiles(set map[Tile]struct{}) []Tile {
	out := make([]Tile, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].x != out[j].x {
			return out[i].x < out[j].x
		}
		return out[i].y < out[j].y
	})
	return out
}
