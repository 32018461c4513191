package world

import "furrow/internal/domain/dice"

// CropConfig carries the growth timings and the ripening rolls.
type CropConfig struct {
	SeedDays        int   `yaml:"seed_days" json:"seed_days"`
	SproutDays      int   `yaml:"sprout_days" json:"sprout_days"`
	FruitDays       int   `yaml:"fruit_days" json:"fruit_days"`
	RareFruitChance int   `yaml:"rare_fruit_chance" json:"rare_fruit_chance"`
	QualityWeights  []int `yaml:"quality_weights" json:"quality_weights"`
}

func DefaultCropConfig() CropConfig {
	return CropConfig{
		SeedDays:        2,
		SproutDays:      3,
		FruitDays:       3,
		RareFruitChance: 30,
		QualityWeights:  []int{60, 30, 10},
	}
}

type GrowthResult string

const (
	GrowthWithered GrowthResult = "withered"
	GrowthAged     GrowthResult = "aged"
	GrowthPromoted GrowthResult = "promoted"
)

// Grow advances one crop by a day. tile is the tile beneath it before any
// decay of the same rollover. A nil Object means the crop withered.
func Grow(c Crop, tile TileKind, rng dice.Source, cfg CropConfig) (Object, GrowthResult) {
	if tile != TileWatered {
		return nil, GrowthWithered
	}
	c.DayCount++
	if c.DayCount < c.Duration {
		return c, GrowthAged
	}
	switch c.Stage {
	case StageSeed:
		return Crop{Stage: StageSprout, Season: c.Season, Duration: cfg.SproutDays}, GrowthPromoted
	default:
		return ripen(c.Season, rng, cfg), GrowthPromoted
	}
}

func ripen(season Season, rng dice.Source, cfg CropConfig) Fruit {
	rare, common := season.Fruits()
	kind := common
	if dice.Chance(rng, cfg.RareFruitChance) {
		kind = rare
	}
	return Fruit{
		Kind:     kind,
		Season:   season,
		Duration: cfg.FruitDays,
		Quality:  dice.Weighted(rng, cfg.QualityWeights),
	}
}

type CellChange struct {
	Cell   Cell         `json:"cell"`
	Result GrowthResult `json:"result,omitempty"`
	From   string       `json:"from"`
	To     string       `json:"to"`
}

type DayChanges struct {
	Objects []CellChange `json:"objects"`
	Tiles   []CellChange `json:"tiles"`
}

// SimulateNextDay runs the growth pass over every lower-layer object and
// then the decay pass over every tile. Growth reads the tile as it was
// during the day, so it must finish before any tile decays.
func SimulateNextDay(g *Grid, rng dice.Source, cfg CropConfig) DayChanges {
	var out DayChanges
	g.Each(func(c Cell) {
		crop, ok := g.Object(c).(Crop)
		if !ok {
			return
		}
		next, result := Grow(crop, g.Tile(c), rng, cfg)
		if next == nil {
			g.ClearObject(c)
			out.Objects = append(out.Objects, CellChange{Cell: c, Result: result, From: crop.Name()})
			return
		}
		g.SetObject(c, next)
		if result == GrowthPromoted {
			out.Objects = append(out.Objects, CellChange{Cell: c, Result: result, From: crop.Name(), To: next.Name()})
		}
	})
	g.Each(func(c Cell) {
		before := g.Tile(c)
		after := Decay(before)
		if after == before {
			return
		}
		g.SetTile(c, after)
		out.Tiles = append(out.Tiles, CellChange{Cell: c, From: string(before), To: string(after)})
	})
	return out
}
