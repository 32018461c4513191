package farmer

import "furrow/internal/domain/world"

type ActionKind string

const (
	ActionChop      ActionKind = "chop"
	ActionMine      ActionKind = "mine"
	ActionHarvest   ActionKind = "harvest"
	ActionEnter     ActionKind = "enter"
	ActionDrawWater ActionKind = "draw_water"
	ActionTill      ActionKind = "till"
	ActionWater     ActionKind = "water"
	ActionPlant     ActionKind = "plant"
	ActionMove      ActionKind = "move"
	ActionNone      ActionKind = "none"
)

type Failure string

const (
	FailOutOfBounds         Failure = "out_of_bounds"
	FailExhausted           Failure = "exhausted"
	FailInsufficientStamina Failure = "insufficient_stamina"
	FailInsufficientWater   Failure = "insufficient_water"
	FailWaterFull           Failure = "water_full"
	FailNothingToDo         Failure = "nothing_to_do"
	FailNoSeed              Failure = "no_seed"
	FailSlotOccupied        Failure = "slot_occupied"
	FailNotCultivated       Failure = "not_cultivated"
	FailBlocked             Failure = "blocked"
)

type SignalKind string

const (
	SignalLevelUp              SignalKind = "level_up"
	SignalObjectChanged        SignalKind = "object_changed"
	SignalTileChanged          SignalKind = "tile_changed"
	SignalInsufficientResource SignalKind = "insufficient_resource"
	SignalEnterBuilding        SignalKind = "enter_building"
)

// Signal is a discrete notification for the presentation. Cell is set for
// object/tile changes, Detail names the track, resource or building.
type Signal struct {
	Kind   SignalKind  `json:"kind"`
	Cell   *world.Cell `json:"cell,omitempty"`
	Detail string      `json:"detail,omitempty"`
}

func objectChanged(c world.Cell) Signal { return Signal{Kind: SignalObjectChanged, Cell: &c} }
func tileChanged(c world.Cell) Signal   { return Signal{Kind: SignalTileChanged, Cell: &c} }
func insufficient(resource string) Signal {
	return Signal{Kind: SignalInsufficientResource, Detail: resource}
}

// Outcome describes one resolved intent. A failed outcome never carries a
// mutation: StaminaCost is zero and Inventory is empty.
type Outcome struct {
	Action      ActionKind         `json:"action"`
	Target      world.Cell         `json:"target"`
	OK          bool               `json:"ok"`
	Failure     Failure            `json:"failure,omitempty"`
	StaminaCost int                `json:"stamina_cost"`
	Refunded    bool               `json:"refunded,omitempty"`
	Bonus       bool               `json:"bonus,omitempty"`
	Kept        bool               `json:"kept,omitempty"`
	Gold        int                `json:"gold,omitempty"`
	Quality     *int               `json:"quality,omitempty"`
	Inventory   map[string]int     `json:"inventory,omitempty"`
	Building    world.BuildingKind `json:"building,omitempty"`
	Signals     []Signal           `json:"signals,omitempty"`
	Sound       string             `json:"sound,omitempty"`
	Toast       string             `json:"toast,omitempty"`
}

func (o *Outcome) fail(f Failure, toast string, signals ...Signal) Outcome {
	o.OK = false
	o.Failure = f
	o.Sound = "error"
	o.Toast = toast
	o.Signals = append(o.Signals, signals...)
	return *o
}

func (o *Outcome) gain(item string, n int) {
	if o.Inventory == nil {
		o.Inventory = map[string]int{}
	}
	o.Inventory[item] += n
}
