package world

type TileKind string

const (
	TileStone   TileKind = "stone"
	TileSoil    TileKind = "soil"
	TileTilled  TileKind = "tilled"
	TileWatered TileKind = "watered"
	TileWater   TileKind = "water"
)

func (k TileKind) Valid() bool {
	switch k {
	case TileStone, TileSoil, TileTilled, TileWatered, TileWater:
		return true
	default:
		return false
	}
}

// Immutable reports terrain that no action or rollover may change.
func (k TileKind) Immutable() bool {
	return k == TileStone || k == TileWater
}

// Cultivated reports tiles that accept seeds.
func (k TileKind) Cultivated() bool {
	return k == TileTilled || k == TileWatered
}

// Till moves soil to tilled. Any other tile is refused.
func Till(k TileKind) (TileKind, bool) {
	if k != TileSoil {
		return k, false
	}
	return TileTilled, true
}

// Irrigate moves tilled to watered. Any other tile is refused.
func Irrigate(k TileKind) (TileKind, bool) {
	if k != TileTilled {
		return k, false
	}
	return TileWatered, true
}

// Decay regresses a cultivated tile by exactly one stage.
func Decay(k TileKind) TileKind {
	switch k {
	case TileWatered:
		return TileTilled
	case TileTilled:
		return TileSoil
	default:
		return k
	}
}
