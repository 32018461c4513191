package farmer

import "furrow/internal/domain/world"

type Player struct {
	Cell       world.Cell      `json:"cell"`
	Facing     world.Direction `json:"facing"`
	HP         int             `json:"hp"`
	MaxHP      int             `json:"max_hp"`
	Stamina    int             `json:"stamina"`
	MaxStamina int             `json:"max_stamina"`
	Water      int             `json:"water"`
	MaxWater   int             `json:"max_water"`
	Gold       int             `json:"gold"`
	Inventory  map[string]int  `json:"inventory"`
	Skills     Skills          `json:"skills"`
	Tools      Tools           `json:"tools"`
	Effects    EffectStats     `json:"effects"`
}

func NewPlayer(t Tuning) Player {
	p := Player{
		Cell:       t.Player.Spawn,
		Facing:     t.Player.Facing,
		HP:         t.Player.HP,
		MaxHP:      t.Player.HP,
		Stamina:    t.Player.Stamina,
		MaxStamina: t.Player.Stamina,
		MaxWater:   t.Player.MaxWater,
		Gold:       t.Player.Gold,
		Inventory:  map[string]int{},
		Skills:     NewSkills(t.Skills),
	}
	for item, n := range t.Player.Inventory {
		p.AddItem(item, n)
	}
	return p
}

func (p *Player) AddItem(item string, amount int) {
	if amount <= 0 || item == "" {
		return
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	p.Inventory[item] += amount
}

func (p *Player) ConsumeItem(item string, amount int) bool {
	if amount <= 0 || item == "" || p.Inventory == nil {
		return false
	}
	current := p.Inventory[item]
	if current < amount {
		return false
	}
	p.Inventory[item] = current - amount
	return true
}

func (p Player) Count(item string) int {
	return p.Inventory[item]
}

// Exhausted players accept no input until they sleep.
func (p Player) Exhausted() bool {
	return p.HP <= 0 || p.Stamina <= 0
}

// Target is the cell the player is facing.
func (p Player) Target() world.Cell {
	return p.Cell.Step(p.Facing)
}

func (p *Player) Rest(spawn world.Cell, facing world.Direction) {
	p.HP = p.MaxHP
	p.Stamina = p.MaxStamina
	p.Cell = spawn
	p.Facing = facing
}

func (p Player) clone() Player {
	out := p
	out.Inventory = make(map[string]int, len(p.Inventory))
	for k, v := range p.Inventory {
		out.Inventory[k] = v
	}
	out.Tools = p.Tools.clone()
	return out
}
