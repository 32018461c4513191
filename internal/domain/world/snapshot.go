package world

type ObjectView struct {
	Cell     Cell   `json:"cell"`
	Layer    Layer  `json:"layer"`
	Name     string `json:"name"`
	DayCount int    `json:"day_count,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Quality  *int   `json:"quality,omitempty"`
}

// Snapshot is the read-only view handed to the presentation for redraws.
type Snapshot struct {
	Rows    int          `json:"rows"`
	Cols    int          `json:"cols"`
	Tiles   [][]TileKind `json:"tiles"`
	Objects []ObjectView `json:"objects"`
}

func (g *Grid) Snapshot() Snapshot {
	out := Snapshot{
		Rows:    g.rows,
		Cols:    g.cols,
		Tiles:   make([][]TileKind, g.rows),
		Objects: []ObjectView{},
	}
	for row := 0; row < g.rows; row++ {
		out.Tiles[row] = make([]TileKind, g.cols)
		copy(out.Tiles[row], g.tiles[row*g.cols:(row+1)*g.cols])
	}
	g.Each(func(c Cell) {
		if o := g.Object(c); o != nil {
			out.Objects = append(out.Objects, ViewObject(c, o))
		}
	})
	return out
}

func ViewObject(c Cell, o Object) ObjectView {
	v := ObjectView{Cell: c, Layer: o.Layer(), Name: o.Name()}
	switch obj := o.(type) {
	case Crop:
		v.DayCount, v.Duration = obj.DayCount, obj.Duration
	case Fruit:
		q := obj.Quality
		v.DayCount, v.Duration, v.Quality = obj.DayCount, obj.Duration, &q
	}
	return v
}
