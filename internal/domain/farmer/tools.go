package farmer

import (
	"fmt"
	"strings"
)

type ToolKind string

const (
	ToolHoe         ToolKind = "hoe"
	ToolAxe         ToolKind = "axe"
	ToolPickaxe     ToolKind = "pickaxe"
	ToolWateringCan ToolKind = "watering_can"
)

func ParseToolKind(raw string) (ToolKind, bool) {
	k := ToolKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_"))
	switch k {
	case ToolHoe, ToolAxe, ToolPickaxe, ToolWateringCan:
		return k, true
	case "wateringcan":
		return ToolWateringCan, true
	default:
		return "", false
	}
}

type Effect string

const (
	EffectTillStaminaReduction  Effect = "till_stamina_reduction"
	EffectTillNoCostChance      Effect = "till_no_cost_chance"
	EffectTillGoldChance        Effect = "till_gold_chance"
	EffectWoodBonusChance       Effect = "wood_bonus_chance"
	EffectChopNoCostChance      Effect = "chop_no_cost_chance"
	EffectTreeKeepChance        Effect = "tree_keep_chance"
	EffectStoneBonusChance      Effect = "stone_bonus_chance"
	EffectMineNoCostChance      Effect = "mine_no_cost_chance"
	EffectStoneKeepChance       Effect = "stone_keep_chance"
	EffectWaterStaminaReduction Effect = "water_stamina_reduction"
	EffectWaterNoCostChance     Effect = "water_no_cost_chance"
	EffectDrawStaminaReduction  Effect = "draw_stamina_reduction"
	EffectDrawBonusChance       Effect = "draw_bonus_chance"
)

// Option is one entry of a tool's perk table; magnitudes are drawn from the
// inclusive range [Min, Max].
type Option struct {
	Effect Effect `json:"effect"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

var toolOptions = map[ToolKind][]Option{
	ToolHoe: {
		{Effect: EffectTillStaminaReduction, Min: 1, Max: 1},
		{Effect: EffectTillNoCostChance, Min: 5, Max: 10},
		{Effect: EffectTillGoldChance, Min: 5, Max: 10},
	},
	ToolAxe: {
		{Effect: EffectWoodBonusChance, Min: 0, Max: 5},
		{Effect: EffectChopNoCostChance, Min: 5, Max: 10},
		{Effect: EffectTreeKeepChance, Min: 10, Max: 20},
	},
	ToolPickaxe: {
		{Effect: EffectStoneBonusChance, Min: 0, Max: 5},
		{Effect: EffectMineNoCostChance, Min: 5, Max: 10},
		{Effect: EffectStoneKeepChance, Min: 10, Max: 20},
	},
	ToolWateringCan: {
		{Effect: EffectWaterStaminaReduction, Min: 1, Max: 1},
		{Effect: EffectWaterNoCostChance, Min: 5, Max: 10},
		{Effect: EffectDrawStaminaReduction, Min: 1, Max: 1},
		{Effect: EffectDrawBonusChance, Min: 10, Max: 20},
	},
}

func Options(kind ToolKind) []Option {
	src := toolOptions[kind]
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

type PerkSlot struct {
	Effect    Effect `json:"effect"`
	Magnitude int    `json:"magnitude"`
}

// Tool has exactly Level slots. A nil slot is waiting for a perk selection.
type Tool struct {
	Level int         `json:"level"`
	Slots []*PerkSlot `json:"slots"`
}

func (t Tool) mustBeConsistent(kind ToolKind) {
	if len(t.Slots) != t.Level {
		panic(fmt.Sprintf("farmer: %s has %d slots at level %d", kind, len(t.Slots), t.Level))
	}
}

type Tools struct {
	Hoe         Tool `json:"hoe"`
	Axe         Tool `json:"axe"`
	Pickaxe     Tool `json:"pickaxe"`
	WateringCan Tool `json:"watering_can"`
}

func (t *Tools) Get(kind ToolKind) *Tool {
	switch kind {
	case ToolHoe:
		return &t.Hoe
	case ToolAxe:
		return &t.Axe
	case ToolPickaxe:
		return &t.Pickaxe
	case ToolWateringCan:
		return &t.WateringCan
	default:
		return nil
	}
}

// EffectStats is the per-effect sum of every filled perk slot. It is derived
// from Tools and only ever rebuilt by ComputeEffectStats.
type EffectStats struct {
	TillStaminaReduction  int `json:"till_stamina_reduction"`
	TillNoCostChance      int `json:"till_no_cost_chance"`
	TillGoldChance        int `json:"till_gold_chance"`
	WoodBonusChance       int `json:"wood_bonus_chance"`
	ChopNoCostChance      int `json:"chop_no_cost_chance"`
	TreeKeepChance        int `json:"tree_keep_chance"`
	StoneBonusChance      int `json:"stone_bonus_chance"`
	MineNoCostChance      int `json:"mine_no_cost_chance"`
	StoneKeepChance       int `json:"stone_keep_chance"`
	WaterStaminaReduction int `json:"water_stamina_reduction"`
	WaterNoCostChance     int `json:"water_no_cost_chance"`
	DrawStaminaReduction  int `json:"draw_stamina_reduction"`
	DrawBonusChance       int `json:"draw_bonus_chance"`
}

func (s *EffectStats) field(e Effect) *int {
	switch e {
	case EffectTillStaminaReduction:
		return &s.TillStaminaReduction
	case EffectTillNoCostChance:
		return &s.TillNoCostChance
	case EffectTillGoldChance:
		return &s.TillGoldChance
	case EffectWoodBonusChance:
		return &s.WoodBonusChance
	case EffectChopNoCostChance:
		return &s.ChopNoCostChance
	case EffectTreeKeepChance:
		return &s.TreeKeepChance
	case EffectStoneBonusChance:
		return &s.StoneBonusChance
	case EffectMineNoCostChance:
		return &s.MineNoCostChance
	case EffectStoneKeepChance:
		return &s.StoneKeepChance
	case EffectWaterStaminaReduction:
		return &s.WaterStaminaReduction
	case EffectWaterNoCostChance:
		return &s.WaterNoCostChance
	case EffectDrawStaminaReduction:
		return &s.DrawStaminaReduction
	case EffectDrawBonusChance:
		return &s.DrawBonusChance
	default:
		return nil
	}
}

func ComputeEffectStats(tools Tools) EffectStats {
	var out EffectStats
	for _, tool := range []Tool{tools.Hoe, tools.Axe, tools.Pickaxe, tools.WateringCan} {
		for _, slot := range tool.Slots {
			if slot == nil {
				continue
			}
			if f := out.field(slot.Effect); f != nil {
				*f += slot.Magnitude
			}
		}
	}
	return out
}

type Cost struct {
	Wood  int `json:"wood"`
	Stone int `json:"stone"`
	Gold  int `json:"gold"`
}

// UpgradeCost grows linearly with the level being left.
func UpgradeCost(level int, t UpgradeTuning) Cost {
	n := level + 1
	return Cost{Wood: t.WoodPerLevel * n, Stone: t.StonePerLevel * n, Gold: t.GoldPerLevel * n}
}

func (t Tools) clone() Tools {
	return Tools{
		Hoe:         t.Hoe.clone(),
		Axe:         t.Axe.clone(),
		Pickaxe:     t.Pickaxe.clone(),
		WateringCan: t.WateringCan.clone(),
	}
}

func (t Tool) clone() Tool {
	out := Tool{Level: t.Level, Slots: make([]*PerkSlot, len(t.Slots))}
	for i, slot := range t.Slots {
		if slot != nil {
			s := *slot
			out.Slots[i] = &s
		}
	}
	return out
}
