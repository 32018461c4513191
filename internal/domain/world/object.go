package world

type Layer string

const (
	LayerUpper Layer = "upper"
	LayerLower Layer = "lower"
)

// Object is the closed set of things that can occupy a cell: Resource,
// Building, Crop and Fruit.
type Object interface {
	Layer() Layer
	Name() string
	isObject()
}

type ResourceKind string

const (
	ResourceTree  ResourceKind = "tree"
	ResourceStone ResourceKind = "stone"
)

// Item is the inventory key granted when the resource is harvested.
func (k ResourceKind) Item() string {
	if k == ResourceTree {
		return "wood"
	}
	return "stone"
}

type BuildingKind string

const (
	BuildingHouse      BuildingKind = "house"
	BuildingMarket     BuildingKind = "market"
	BuildingBlacksmith BuildingKind = "blacksmith"
)

type CropStage string

const (
	StageSeed   CropStage = "seed"
	StageSprout CropStage = "sprout"
)

type FruitKind string

const (
	FruitStrawberry FruitKind = "strawberry"
	FruitCherry     FruitKind = "cherry"
	FruitWatermelon FruitKind = "watermelon"
	FruitTomato     FruitKind = "tomato"
	FruitPumpkin    FruitKind = "pumpkin"
	FruitGrape      FruitKind = "grape"
	FruitCabbage    FruitKind = "cabbage"
	FruitTurnip     FruitKind = "turnip"
)

type Resource struct {
	Kind ResourceKind `json:"kind"`
}

type Building struct {
	Kind BuildingKind `json:"kind"`
}

// Crop is a planted seed or a sprout. It lives under the player sprite.
type Crop struct {
	Stage    CropStage `json:"stage"`
	Season   Season    `json:"season"`
	DayCount int       `json:"day_count"`
	Duration int       `json:"duration"`
}

type Fruit struct {
	Kind     FruitKind `json:"kind"`
	Season   Season    `json:"season"`
	DayCount int       `json:"day_count"`
	Duration int       `json:"duration"`
	Quality  int       `json:"quality"`
}

func (Resource) Layer() Layer { return LayerUpper }
func (Building) Layer() Layer { return LayerUpper }
func (Crop) Layer() Layer     { return LayerLower }
func (Fruit) Layer() Layer    { return LayerUpper }

func (o Resource) Name() string { return string(o.Kind) }
func (o Building) Name() string { return string(o.Kind) }
func (o Crop) Name() string     { return string(o.Season) + "_" + string(o.Stage) }
func (o Fruit) Name() string    { return string(o.Kind) }

func (Resource) isObject() {}
func (Building) isObject() {}
func (Crop) isObject()     {}
func (Fruit) isObject()    {}

// Blocks reports whether o stops the player from walking onto its cell.
func Blocks(o Object) bool {
	return o != nil && o.Layer() == LayerUpper
}
