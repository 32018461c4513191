package world

import "furrow/internal/domain/dice"

type Footprint struct {
	Kind   BuildingKind `yaml:"kind" json:"kind"`
	Top    Cell         `yaml:"top" json:"top"`
	Height int          `yaml:"height" json:"height"`
	Width  int          `yaml:"width" json:"width"`
}

func (f Footprint) Contains(c Cell) bool {
	return c.Row >= f.Top.Row && c.Row < f.Top.Row+f.Height &&
		c.Col >= f.Top.Col && c.Col < f.Top.Col+f.Width
}

// GenConfig shapes a freshly generated farm. The top StoneRows rows are
// fixed stone ground that hosts the buildings; the rest is soil seeded with
// trees and stones plus one pond near the right edge.
type GenConfig struct {
	Rows        int         `yaml:"rows" json:"rows"`
	Cols        int         `yaml:"cols" json:"cols"`
	StoneRows   int         `yaml:"stone_rows" json:"stone_rows"`
	TreeChance  int         `yaml:"tree_chance" json:"tree_chance"`
	StoneChance int         `yaml:"stone_chance" json:"stone_chance"`
	PondMin     int         `yaml:"pond_min" json:"pond_min"`
	PondMax     int         `yaml:"pond_max" json:"pond_max"`
	Buildings   []Footprint `yaml:"buildings" json:"buildings"`
}

func DefaultGenConfig() GenConfig {
	return GenConfig{
		Rows:        19,
		Cols:        25,
		StoneRows:   5,
		TreeChance:  25,
		StoneChance: 20,
		PondMin:     2,
		PondMax:     4,
		Buildings: []Footprint{
			{Kind: BuildingHouse, Top: Cell{Row: 1, Col: 7}, Height: 2, Width: 5},
			{Kind: BuildingMarket, Top: Cell{Row: 1, Col: 14}, Height: 2, Width: 3},
			{Kind: BuildingBlacksmith, Top: Cell{Row: 1, Col: 19}, Height: 2, Width: 3},
		},
	}
}

// Generate builds a new grid. It is used at session start and again on every
// season change, so crops and fruit never survive it.
func Generate(cfg GenConfig, rng dice.Source) *Grid {
	g := NewGrid(cfg.Rows, cfg.Cols, TileSoil)
	for row := 0; row < cfg.StoneRows && row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			g.SetTile(Cell{Row: row, Col: col}, TileStone)
		}
	}
	for row := cfg.StoneRows; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			c := Cell{Row: row, Col: col}
			switch {
			case dice.Chance(rng, cfg.TreeChance):
				g.SetObject(c, Resource{Kind: ResourceTree})
			case dice.Chance(rng, cfg.StoneChance):
				g.SetObject(c, Resource{Kind: ResourceStone})
			}
		}
	}
	digPond(g, cfg, rng)
	for _, fp := range cfg.Buildings {
		g.Place(fp.Top, fp.Height, fp.Width, Building{Kind: fp.Kind})
	}
	return g
}

func digPond(g *Grid, cfg GenConfig, rng dice.Source) {
	if cfg.PondMax <= 0 || cfg.StoneRows+1 >= cfg.Rows {
		return
	}
	width := dice.Between(rng, cfg.PondMin, cfg.PondMax)
	height := dice.Between(rng, cfg.PondMin, cfg.PondMax)
	startCol := cfg.Cols - width - 1
	startRow := cfg.StoneRows + 1
	for row := startRow; row < startRow+height && row < cfg.Rows; row++ {
		for col := startCol; col < startCol+width; col++ {
			c := Cell{Row: row, Col: col}
			if !g.InBounds(c) {
				continue
			}
			g.SetTile(c, TileWater)
			g.ClearObject(c)
		}
	}
}
