package world

import "fmt"

// Grid holds the tile layer and the object layer of the farm. Both layers
// are row-major and keep the dimensions given at construction.
type Grid struct {
	rows    int
	cols    int
	tiles   []TileKind
	objects []Object
}

func NewGrid(rows, cols int, fill TileKind) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{
		rows:    rows,
		cols:    cols,
		tiles:   make([]TileKind, rows*cols),
		objects: make([]Object, rows*cols),
	}
	for i := range g.tiles {
		g.tiles[i] = fill
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid) index(c Cell) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("world: cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.rows, g.cols))
	}
	return c.Row*g.cols + c.Col
}

func (g *Grid) Tile(c Cell) TileKind {
	return g.tiles[g.index(c)]
}

func (g *Grid) SetTile(c Cell, k TileKind) {
	g.tiles[g.index(c)] = k
}

func (g *Grid) Object(c Cell) Object {
	return g.objects[g.index(c)]
}

func (g *Grid) SetObject(c Cell, o Object) {
	g.objects[g.index(c)] = o
}

func (g *Grid) ClearObject(c Cell) {
	g.objects[g.index(c)] = nil
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(c Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Cell{Row: row, Col: col})
		}
	}
}

// Place writes o over a rectangular footprint anchored at top-left.
func (g *Grid) Place(top Cell, height, width int, o Object) {
	for row := top.Row; row < top.Row+height; row++ {
		for col := top.Col; col < top.Col+width; col++ {
			g.SetObject(Cell{Row: row, Col: col}, o)
		}
	}
}

// Count returns how many cells hold an object matching keep.
func (g *Grid) Count(keep func(Object) bool) int {
	n := 0
	for _, o := range g.objects {
		if o != nil && keep(o) {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	out := &Grid{
		rows:    g.rows,
		cols:    g.cols,
		tiles:   make([]TileKind, len(g.tiles)),
		objects: make([]Object, len(g.objects)),
	}
	copy(out.tiles, g.tiles)
	copy(out.objects, g.objects)
	return out
}
