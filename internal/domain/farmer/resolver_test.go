package farmer

import (
	"testing"

	"furrow/internal/domain/world"
)

func TestChopWithoutEnoughStaminaFails(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetObject(target, world.Resource{Kind: world.ResourceTree})
	s.Player.Stamina = 5

	out := newTestResolver().Resolve(s)

	if out.OK || out.Failure != FailInsufficientStamina {
		t.Fatalf("expected insufficient stamina, got ok=%v failure=%s", out.OK, out.Failure)
	}
	if got, want := s.Player.Stamina, 5; got != want {
		t.Fatalf("stamina changed: got=%d want=%d", got, want)
	}
	if got := s.Player.Count("wood"); got != 0 {
		t.Fatalf("wood changed: got=%d want=0", got)
	}
	if s.Grid.Object(target) == nil {
		t.Fatalf("tree must stay on failure")
	}
	if !hasSignal(out, SignalInsufficientResource, "stamina") {
		t.Fatalf("expected insufficient stamina signal, got %+v", out.Signals)
	}
}

func TestWateringTilledTileSpendsLastCharge(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetTile(target, world.TileTilled)
	s.Player.Water = 1

	out := newTestResolver().Resolve(s)

	if !out.OK || out.Action != ActionWater {
		t.Fatalf("expected watering success, got %+v", out)
	}
	if got := s.Grid.Tile(target); got != world.TileWatered {
		t.Fatalf("tile: got=%s want=%s", got, world.TileWatered)
	}
	if got := s.Player.Water; got != 0 {
		t.Fatalf("water: got=%d want=0", got)
	}
	if got, want := s.Player.Skills.Farm.Exp, ExpWatering; got != want {
		t.Fatalf("farm exp: got=%d want=%d", got, want)
	}
	if got, want := s.Player.Skills.Common.Exp, ExpCommon; got != want {
		t.Fatalf("common exp: got=%d want=%d", got, want)
	}
	if got, want := s.Player.Stamina, StartStamina-StaminaWatering; got != want {
		t.Fatalf("stamina: got=%d want=%d", got, want)
	}
}

func TestWateringWithoutChargeFails(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetTile(target, world.TileTilled)

	out := newTestResolver().Resolve(s)

	if out.Failure != FailInsufficientWater || !hasSignal(out, SignalInsufficientResource, "water") {
		t.Fatalf("expected insufficient water, got %+v", out)
	}
	if s.Grid.Tile(target) != world.TileTilled || s.Player.Stamina != StartStamina {
		t.Fatalf("failed watering must not mutate")
	}
}

func TestChopAppliesRollsInOrder(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetObject(target, world.Resource{Kind: world.ResourceTree})
	s.Player.Effects = EffectStats{ChopNoCostChance: 10, WoodBonusChance: 5, TreeKeepChance: 20}

	// no-cost 0<10, bonus 0<5, keep 50>=20
	out := newTestResolver(0, 0, 50).Resolve(s)

	if !out.OK || !out.Refunded || !out.Bonus || out.Kept {
		t.Fatalf("unexpected rolls: %+v", out)
	}
	if got := s.Player.Stamina; got != StartStamina {
		t.Fatalf("refunded stamina: got=%d want=%d", got, StartStamina)
	}
	if got := s.Player.Count("wood"); got != 2 {
		t.Fatalf("wood: got=%d want=2", got)
	}
	if got, want := s.Player.Skills.Wood.Exp, 2*ExpWood; got != want {
		t.Fatalf("wood exp: got=%d want=%d", got, want)
	}
	if s.Grid.Object(target) != nil {
		t.Fatalf("expected tree removed")
	}
}

func TestMineKeepsStoneOnKeepRoll(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetObject(target, world.Resource{Kind: world.ResourceStone})
	s.Player.Effects = EffectStats{StoneKeepChance: 20}

	out := newTestResolver(19).Resolve(s)

	if !out.OK || !out.Kept {
		t.Fatalf("expected stone kept, got %+v", out)
	}
	if s.Grid.Object(target) == nil {
		t.Fatalf("stone must stay on the grid")
	}
	if got := s.Player.Count("stone"); got != 1 {
		t.Fatalf("stone: got=%d want=1", got)
	}
	if got, want := s.Player.Stamina, StartStamina-StaminaStone; got != want {
		t.Fatalf("stamina: got=%d want=%d", got, want)
	}
}

func TestStaminaCostNeverBelowOne(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetObject(target, world.Resource{Kind: world.ResourceTree})
	s.Player.Skills.Wood.Level = 40

	out := newTestResolver().Resolve(s)

	if got := out.StaminaCost; got != 1 {
		t.Fatalf("cost: got=%d want=1", got)
	}
}

func TestTillUsesFarmLevelAndHoePerks(t *testing.T) {
	s := newTestSession(t)
	s.Player.Skills.Farm.Level = 3
	s.Player.Effects = EffectStats{TillStaminaReduction: 1, TillGoldChance: 10}

	// gold roll 3<10
	out := newTestResolver(3).Resolve(s)

	if !out.OK || s.Grid.Tile(target) != world.TileTilled {
		t.Fatalf("expected tilled tile, got %+v", out)
	}
	if got, want := out.StaminaCost, StaminaDigging-2; got != want {
		t.Fatalf("cost: got=%d want=%d", got, want)
	}
	if got, want := s.Player.Gold, StartGold+TillGoldBonus; got != want {
		t.Fatalf("gold: got=%d want=%d", got, want)
	}
	if got, want := s.Player.Skills.Farm.Exp, ExpDigging; got != want {
		t.Fatalf("farm exp: got=%d want=%d", got, want)
	}
}

func TestDrawWaterCapsAtMax(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetTile(target, world.TileWater)
	s.Player.Water = s.Player.MaxWater - 1
	s.Player.Effects = EffectStats{DrawBonusChance: 20, DrawStaminaReduction: 1}

	out := newTestResolver(0).Resolve(s)

	if !out.OK || out.Bonus {
		t.Fatalf("expected draw without bonus at cap, got %+v", out)
	}
	if got := s.Player.Water; got != s.Player.MaxWater {
		t.Fatalf("water: got=%d want=%d", got, s.Player.MaxWater)
	}
	if got, want := out.StaminaCost, StaminaWater-1; got != want {
		t.Fatalf("cost: got=%d want=%d", got, want)
	}

	out = newTestResolver().Resolve(s)
	if out.Failure != FailWaterFull {
		t.Fatalf("expected water_full, got %+v", out)
	}
}

func TestImmutableTerrainIgnoresActions(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetTile(target, world.TileStone)

	out := newTestResolver().Resolve(s)

	if out.OK || out.Failure != FailNothingToDo {
		t.Fatalf("expected no-op on stone, got %+v", out)
	}
	if s.Grid.Tile(target) != world.TileStone || s.Player.Stamina != StartStamina {
		t.Fatalf("stone action must not mutate")
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	s := newTestSession(t)
	s.Player.Cell = world.Cell{Row: 0, Col: 2}

	out := newTestResolver().Resolve(s)

	if out.Failure != FailOutOfBounds {
		t.Fatalf("expected out_of_bounds, got %+v", out)
	}
}

func TestExhaustedPlayerIsRefused(t *testing.T) {
	s := newTestSession(t)
	s.Player.Stamina = 0

	if out := newTestResolver().Resolve(s); out.Failure != FailExhausted {
		t.Fatalf("act: got failure=%s want=%s", out.Failure, FailExhausted)
	}
	if out := newTestResolver().Move(s, world.DirUp); out.Failure != FailExhausted {
		t.Fatalf("move: got failure=%s want=%s", out.Failure, FailExhausted)
	}
	if s.Grid.Tile(target) != world.TileSoil {
		t.Fatalf("exhausted player must not till")
	}
}

func TestHarvestFruitIsFree(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetObject(target, world.Fruit{Kind: world.FruitCherry, Season: world.SeasonSpring, Quality: 2})

	out := newTestResolver().Resolve(s)

	if !out.OK || out.Action != ActionHarvest || out.Quality == nil || *out.Quality != 2 {
		t.Fatalf("unexpected harvest outcome %+v", out)
	}
	if got := s.Player.Count("cherry"); got != 1 {
		t.Fatalf("cherry: got=%d want=1", got)
	}
	if s.Player.Stamina != StartStamina || s.Grid.Object(target) != nil {
		t.Fatalf("harvest must be free and clear the cell")
	}
}

func TestEnterMarketOpensPanel(t *testing.T) {
	s := newTestSession(t)
	s.Grid.SetObject(target, world.Building{Kind: world.BuildingMarket})

	out := newTestResolver().Resolve(s)

	if !hasSignal(out, SignalEnterBuilding, "market") {
		t.Fatalf("expected enter_building signal, got %+v", out.Signals)
	}
	if s.OpenPanel != PanelMarket || s.AcceptsInput() {
		t.Fatalf("expected market panel to block input")
	}
}

func TestPlantSeed(t *testing.T) {
	s := newTestSession(t)
	r := newTestResolver()

	if out := r.PlantSeed(s); out.Failure != FailNoSeed {
		t.Fatalf("no seed: got %+v", out)
	}
	s.Player.AddItem("spring_seed", 2)
	if out := r.PlantSeed(s); out.Failure != FailNotCultivated {
		t.Fatalf("soil: got %+v", out)
	}
	s.Grid.SetTile(target, world.TileTilled)
	out := r.PlantSeed(s)
	if !out.OK {
		t.Fatalf("expected planting success, got %+v", out)
	}
	crop, ok := s.Grid.Object(target).(world.Crop)
	if !ok || crop.Stage != world.StageSeed || crop.DayCount != 0 || crop.Season != world.SeasonSpring {
		t.Fatalf("unexpected crop %+v", s.Grid.Object(target))
	}
	if out := r.PlantSeed(s); out.Failure != FailSlotOccupied {
		t.Fatalf("occupied: got %+v", out)
	}
	if got := s.Player.Count("spring_seed"); got != 1 {
		t.Fatalf("seeds: got=%d want=1", got)
	}
}

func TestMoveRespectsLayers(t *testing.T) {
	s := newTestSession(t)
	r := newTestResolver()
	s.Grid.SetObject(target, world.Resource{Kind: world.ResourceTree})

	out := r.Move(s, world.DirRight)
	if out.OK || out.Failure != FailBlocked || s.Player.Cell != (world.Cell{Row: 1, Col: 1}) {
		t.Fatalf("tree must block, got %+v", out)
	}

	s.Grid.SetObject(target, world.Crop{Stage: world.StageSeed})
	if out := r.Move(s, world.DirRight); !out.OK || s.Player.Cell != target {
		t.Fatalf("crop must not block, got %+v", out)
	}

	s.Grid.SetTile(world.Cell{Row: 0, Col: 2}, world.TileWater)
	if out := r.Move(s, world.DirUp); out.Failure != FailBlocked {
		t.Fatalf("water must block, got %+v", out)
	}
	if s.Player.Facing != world.DirUp {
		t.Fatalf("facing must follow the intent, got %s", s.Player.Facing)
	}
	if out := r.Move(s, world.DirRight); out.Failure != FailOutOfBounds {
		t.Fatalf("edge: got %+v", out)
	}
}

func TestTillAndWaterPanicOnWrongTile(t *testing.T) {
	cases := map[string]func(r Resolver, s *Session, out Outcome) Outcome{
		"till":  Resolver.till,
		"water": Resolver.water,
	}
	for name, step := range cases {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t)
			s.Player.Water = 1
			s.Grid.SetTile(target, world.TileStone)
			defer func() {
				if recover() == nil {
					t.Fatalf("expected %s on stone to panic", name)
				}
			}()
			step(newTestResolver(), s, Outcome{Target: target})
		})
	}
}
