package farmer

import "furrow/internal/domain/dice"

// PendingPerk is an upgrade that opened a slot but has not committed a perk
// into it yet.
type PendingPerk struct {
	Tool       ToolKind   `json:"tool"`
	Slot       int        `json:"slot"`
	Candidates []PerkSlot `json:"candidates"`
}

// Chooser picks a candidate index. A nil Chooser leaves the choice to the
// player.
type Chooser func(PendingPerk) int

func ChooseFirst(PendingPerk) int { return 0 }

// ChooseStrongest picks the candidate closest to its option's maximum, the
// earliest one on ties.
func ChooseStrongest(p PendingPerk) int {
	best, bestScore := 0, -1.0
	for i, c := range p.Candidates {
		score := 1.0
		for _, opt := range toolOptions[p.Tool] {
			if opt.Effect == c.Effect && opt.Max > opt.Min {
				score = float64(c.Magnitude-opt.Min) / float64(opt.Max-opt.Min)
				break
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// AttemptUpgrade charges the upgrade cost, raises the tool one level and
// opens an empty slot with freshly drawn candidates. Nothing changes on error.
func AttemptUpgrade(p *Player, kind ToolKind, rng dice.Source, t UpgradeTuning) (PendingPerk, Cost, error) {
	tool := p.Tools.Get(kind)
	if tool == nil {
		return PendingPerk{}, Cost{}, ErrUnknownTool
	}
	tool.mustBeConsistent(kind)
	if tool.Level >= t.MaxLevel {
		return PendingPerk{}, Cost{}, ErrToolMaxLevel
	}
	cost := UpgradeCost(tool.Level, t)
	for _, need := range []struct {
		resource string
		need     int
		have     int
	}{
		{"wood", cost.Wood, p.Count("wood")},
		{"stone", cost.Stone, p.Count("stone")},
		{"gold", cost.Gold, p.Gold},
	} {
		if need.have < need.need {
			return PendingPerk{}, cost, &InsufficientResourceError{Resource: need.resource, Need: need.need, Have: need.have}
		}
	}

	p.ConsumeItem("wood", cost.Wood)
	p.ConsumeItem("stone", cost.Stone)
	p.Gold -= cost.Gold
	tool.Level++
	tool.Slots = append(tool.Slots, nil)
	if kind == ToolWateringCan {
		p.MaxWater += t.WateringCanBonus
	}
	return PendingPerk{Tool: kind, Slot: tool.Level - 1, Candidates: drawCandidates(kind, rng, t.Candidates)}, cost, nil
}

func drawCandidates(kind ToolKind, rng dice.Source, n int) []PerkSlot {
	opts := toolOptions[kind]
	if n <= 0 {
		n = PerkCandidates
	}
	out := make([]PerkSlot, 0, n)
	for i := 0; i < n; i++ {
		opt := opts[rng.IntN(len(opts))]
		out = append(out, PerkSlot{Effect: opt.Effect, Magnitude: dice.Between(rng, opt.Min, opt.Max)})
	}
	return out
}

// CommitPerk writes one candidate into the pending slot and rebuilds the
// player's effect stats.
func CommitPerk(p *Player, pending PendingPerk, choice int) (PerkSlot, error) {
	if choice < 0 || choice >= len(pending.Candidates) {
		return PerkSlot{}, ErrInvalidChoice
	}
	tool := p.Tools.Get(pending.Tool)
	if tool == nil {
		return PerkSlot{}, ErrUnknownTool
	}
	tool.mustBeConsistent(pending.Tool)
	if pending.Slot < 0 || pending.Slot >= len(tool.Slots) || tool.Slots[pending.Slot] != nil {
		return PerkSlot{}, ErrSlotFilled
	}
	perk := pending.Candidates[choice]
	tool.Slots[pending.Slot] = &perk
	p.Effects = ComputeEffectStats(p.Tools)
	return perk, nil
}
