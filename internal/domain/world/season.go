package world

import "strings"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var seasonOrder = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

func Seasons() []Season {
	out := make([]Season, len(seasonOrder))
	copy(out, seasonOrder)
	return out
}

func ParseSeason(raw string) (Season, bool) {
	s := Season(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range seasonOrder {
		if s == known {
			return s, true
		}
	}
	return "", false
}

func (s Season) Next() Season {
	for i, known := range seasonOrder {
		if known == s {
			return seasonOrder[(i+1)%len(seasonOrder)]
		}
	}
	return SeasonSpring
}

// SeedItem is the inventory key of the season's seed.
func (s Season) SeedItem() string {
	return string(s) + "_seed"
}

// Fruits returns the season's rare and common fruit, in that order.
func (s Season) Fruits() (rare, common FruitKind) {
	switch s {
	case SeasonSummer:
		return FruitWatermelon, FruitTomato
	case SeasonAutumn:
		return FruitPumpkin, FruitGrape
	case SeasonWinter:
		return FruitCabbage, FruitTurnip
	default:
		return FruitStrawberry, FruitCherry
	}
}
