package world

import (
	"errors"
	"strings"
)

type Cell struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

var ErrUnalignedPosition = errors.New("position is not aligned to the tile grid")

func ParseDirection(raw string) (Direction, bool) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(raw))); d {
	case DirUp, DirDown, DirLeft, DirRight:
		return d, true
	default:
		return "", false
	}
}

// Offset returns the row/col delta of one step in d.
func (d Direction) Offset() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Offset()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// PixelPosition converts c to the top-left pixel of its tile.
func (c Cell) PixelPosition(tileSize int) (x, y int) {
	return c.Col * tileSize, c.Row * tileSize
}

// CellFromPixels maps pixel coordinates back onto the grid. Coordinates that
// fall between tiles are rejected.
func CellFromPixels(x, y, tileSize int) (Cell, error) {
	if tileSize <= 0 || x%tileSize != 0 || y%tileSize != 0 {
		return Cell{}, ErrUnalignedPosition
	}
	return Cell{Row: y / tileSize, Col: x / tileSize}, nil
}
