package farmer

import (
	"furrow/internal/domain/dice"
	"furrow/internal/domain/world"
)

// Resolver turns one player intent into grid and player mutations. Every
// random roll goes through Rand so outcomes can be pinned.
type Resolver struct {
	Tuning Tuning
	Rand   dice.Source
}

// Resolve acts on the cell the player faces. The first matching rule wins:
// upper object, water, soil, tilled ground.
func (r Resolver) Resolve(s *Session) Outcome {
	p := &s.Player
	out := Outcome{Action: ActionNone, Target: p.Target()}
	if p.Exhausted() {
		return out.fail(FailExhausted, "Too tired to do anything.")
	}
	if !s.Grid.InBounds(out.Target) {
		return out.fail(FailOutOfBounds, "")
	}

	switch obj := s.Grid.Object(out.Target).(type) {
	case world.Resource:
		return r.gather(s, obj, out)
	case world.Building:
		return r.enter(s, obj, out)
	case world.Fruit:
		return r.harvest(s, obj, out)
	}

	switch s.Grid.Tile(out.Target) {
	case world.TileWater:
		return r.drawWater(p, out)
	case world.TileSoil:
		return r.till(s, out)
	case world.TileTilled:
		return r.water(s, out)
	}
	out.Failure = FailNothingToDo
	return out
}

func (r Resolver) gather(s *Session, res world.Resource, out Outcome) Outcome {
	p := &s.Player
	track, base, exp := TrackWood, r.Tuning.Stamina.Wood, r.Tuning.Exp.Wood
	noCost, bonus, keep := p.Effects.ChopNoCostChance, p.Effects.WoodBonusChance, p.Effects.TreeKeepChance
	out.Action, out.Sound = ActionChop, "chop"
	if res.Kind == world.ResourceStone {
		track, base, exp = TrackStone, r.Tuning.Stamina.Stone, r.Tuning.Exp.Stone
		noCost, bonus, keep = p.Effects.MineNoCostChance, p.Effects.StoneBonusChance, p.Effects.StoneKeepChance
		out.Action, out.Sound = ActionMine, "mine"
	}

	cost := p.Skills.Get(track).ReducedCost(base)
	if p.Stamina < cost {
		return out.fail(FailInsufficientStamina, "Not enough stamina.", insufficient("stamina"))
	}
	item := res.Kind.Item()
	p.Stamina -= cost
	out.StaminaCost = cost
	p.Skills.GainExp(track, exp, r.Tuning.Exp.Common)
	p.AddItem(item, 1)
	out.gain(item, 1)

	if dice.Chance(r.Rand, noCost) {
		p.Stamina += cost
		out.StaminaCost = 0
		out.Refunded = true
	}
	if dice.Chance(r.Rand, bonus) {
		p.AddItem(item, 1)
		out.gain(item, 1)
		p.Skills.GainExp(track, exp, r.Tuning.Exp.Common)
		out.Bonus = true
	}
	if dice.Chance(r.Rand, keep) {
		out.Kept = true
	} else {
		s.Grid.ClearObject(out.Target)
		out.Signals = append(out.Signals, objectChanged(out.Target))
	}
	out.OK = true
	return out
}

func (r Resolver) enter(s *Session, b world.Building, out Outcome) Outcome {
	out.Action = ActionEnter
	out.Building = b.Kind
	out.Signals = append(out.Signals, Signal{Kind: SignalEnterBuilding, Detail: string(b.Kind)})
	switch b.Kind {
	case world.BuildingMarket:
		s.OpenPanel = PanelMarket
	case world.BuildingBlacksmith:
		s.OpenPanel = PanelBlacksmith
	}
	out.OK = true
	return out
}

func (r Resolver) harvest(s *Session, f world.Fruit, out Outcome) Outcome {
	out.Action, out.Sound = ActionHarvest, "success"
	item := string(f.Kind)
	s.Player.AddItem(item, 1)
	out.gain(item, 1)
	q := f.Quality
	out.Quality = &q
	s.Grid.ClearObject(out.Target)
	out.Signals = append(out.Signals, objectChanged(out.Target))
	out.OK = true
	return out
}

func (r Resolver) drawWater(p *Player, out Outcome) Outcome {
	out.Action, out.Sound = ActionDrawWater, "water"
	if p.Water >= p.MaxWater {
		return out.fail(FailWaterFull, "The watering can is full.")
	}
	cost := max(1, r.Tuning.Stamina.Water-p.Effects.DrawStaminaReduction)
	if p.Stamina < cost {
		return out.fail(FailInsufficientStamina, "Not enough stamina.", insufficient("stamina"))
	}
	p.Stamina -= cost
	out.StaminaCost = cost
	p.Water++
	out.gain("water", 1)
	if dice.Chance(r.Rand, p.Effects.DrawBonusChance) && p.Water < p.MaxWater {
		p.Water++
		out.gain("water", 1)
		out.Bonus = true
	}
	out.OK = true
	return out
}

func (r Resolver) till(s *Session, out Outcome) Outcome {
	p := &s.Player
	out.Action, out.Sound = ActionTill, "dig"
	cost := max(1, r.Tuning.Stamina.Digging-p.Skills.Farm.FarmReduction()-p.Effects.TillStaminaReduction)
	if p.Stamina < cost {
		return out.fail(FailInsufficientStamina, "Not enough stamina.", insufficient("stamina"))
	}
	next, ok := world.Till(s.Grid.Tile(out.Target))
	if !ok {
		panic("farmer: till on " + string(s.Grid.Tile(out.Target)))
	}
	p.Stamina -= cost
	out.StaminaCost = cost
	s.Grid.SetTile(out.Target, next)
	out.Signals = append(out.Signals, tileChanged(out.Target))
	p.Skills.GainExp(TrackFarm, r.Tuning.Exp.Digging, r.Tuning.Exp.Common)

	if dice.Chance(r.Rand, p.Effects.TillNoCostChance) {
		p.Stamina += cost
		out.StaminaCost = 0
		out.Refunded = true
	}
	if dice.Chance(r.Rand, p.Effects.TillGoldChance) {
		p.Gold += r.Tuning.TillGoldBonus
		out.Gold = r.Tuning.TillGoldBonus
		out.Bonus = true
	}
	out.OK = true
	return out
}

func (r Resolver) water(s *Session, out Outcome) Outcome {
	p := &s.Player
	out.Action, out.Sound = ActionWater, "water"
	if p.Water <= 0 {
		return out.fail(FailInsufficientWater, "The watering can is empty.", insufficient("water"))
	}
	cost := max(1, r.Tuning.Stamina.Watering-p.Skills.Farm.FarmReduction()-p.Effects.WaterStaminaReduction)
	if p.Stamina < cost {
		return out.fail(FailInsufficientStamina, "Not enough stamina.", insufficient("stamina"))
	}
	next, ok := world.Irrigate(s.Grid.Tile(out.Target))
	if !ok {
		panic("farmer: water on " + string(s.Grid.Tile(out.Target)))
	}
	p.Stamina -= cost
	out.StaminaCost = cost
	p.Water--
	out.gain("water", -1)
	s.Grid.SetTile(out.Target, next)
	out.Signals = append(out.Signals, tileChanged(out.Target))
	p.Skills.GainExp(TrackFarm, r.Tuning.Exp.Watering, r.Tuning.Exp.Common)

	if dice.Chance(r.Rand, p.Effects.WaterNoCostChance) {
		p.Stamina += cost
		out.StaminaCost = 0
		out.Refunded = true
	}
	out.OK = true
	return out
}

// PlantSeed sows one seed of the current season on the faced cell.
func (r Resolver) PlantSeed(s *Session) Outcome {
	p := &s.Player
	out := Outcome{Action: ActionPlant, Target: p.Target()}
	if p.Exhausted() {
		return out.fail(FailExhausted, "Too tired to do anything.")
	}
	seed := s.Calendar.Season.SeedItem()
	if p.Count(seed) <= 0 {
		return out.fail(FailNoSeed, "No seeds for this season.", insufficient(seed))
	}
	if !s.Grid.InBounds(out.Target) {
		return out.fail(FailOutOfBounds, "")
	}
	if s.Grid.Object(out.Target) != nil {
		return out.fail(FailSlotOccupied, "Something is already there.")
	}
	if !s.Grid.Tile(out.Target).Cultivated() {
		return out.fail(FailNotCultivated, "Till the ground first.")
	}
	p.ConsumeItem(seed, 1)
	out.gain(seed, -1)
	s.Grid.SetObject(out.Target, world.Crop{
		Stage:    world.StageSeed,
		Season:   s.Calendar.Season,
		Duration: r.Tuning.Crops.SeedDays,
	})
	out.Signals = append(out.Signals, objectChanged(out.Target))
	out.Sound = "seed"
	out.OK = true
	return out
}

// Move turns the player and steps one cell when the way is clear. Facing
// changes even when the step is refused.
func (r Resolver) Move(s *Session, dir world.Direction) Outcome {
	p := &s.Player
	out := Outcome{Action: ActionMove, Target: p.Cell.Step(dir)}
	if p.Exhausted() {
		return out.fail(FailExhausted, "Too tired to do anything.")
	}
	p.Facing = dir
	if !s.Grid.InBounds(out.Target) {
		out.Failure = FailOutOfBounds
		return out
	}
	if s.Grid.Tile(out.Target) == world.TileWater || world.Blocks(s.Grid.Object(out.Target)) {
		out.Failure = FailBlocked
		return out
	}
	p.Cell = out.Target
	out.OK = true
	return out
}
