package farmer

type Track string

const (
	TrackCommon Track = "common"
	TrackWood   Track = "wood"
	TrackStone  Track = "stone"
	TrackFarm   Track = "farm"
)

var trackOrder = []Track{TrackCommon, TrackWood, TrackStone, TrackFarm}

type Skill struct {
	Level                 int `json:"level"`
	Exp                   int `json:"exp"`
	ExpToLevelUp          int `json:"exp_to_level_up"`
	MaxHPBonus            int `json:"max_hp_bonus,omitempty"`
	MaxStaminaBonus       int `json:"max_stamina_bonus,omitempty"`
	StaminaReducePerLevel int `json:"stamina_reduce_per_level,omitempty"`
}

type Skills struct {
	Common Skill `json:"common"`
	Wood   Skill `json:"wood"`
	Stone  Skill `json:"stone"`
	Farm   Skill `json:"farm"`
}

func NewSkills(t SkillTuning) Skills {
	specialized := Skill{Level: 1, ExpToLevelUp: t.ExpToLevelUp, StaminaReducePerLevel: t.StaminaReducePerLevel}
	return Skills{
		Common: Skill{
			Level:           1,
			ExpToLevelUp:    t.ExpToLevelUp,
			MaxHPBonus:      t.MaxHPBonus,
			MaxStaminaBonus: t.MaxStaminaBonus,
		},
		Wood:  specialized,
		Stone: specialized,
		Farm:  specialized,
	}
}

func (s *Skills) Get(track Track) *Skill {
	switch track {
	case TrackCommon:
		return &s.Common
	case TrackWood:
		return &s.Wood
	case TrackStone:
		return &s.Stone
	case TrackFarm:
		return &s.Farm
	default:
		return nil
	}
}

// GainExp credits a specialized track and always adds commonBonus to the
// common track.
func (s *Skills) GainExp(track Track, amount, commonBonus int) {
	if skill := s.Get(track); skill != nil && track != TrackCommon {
		skill.Exp += amount
	}
	s.Common.Exp += commonBonus
}

type LevelUp struct {
	Track Track `json:"track"`
	Level int   `json:"level"`
}

// ResolveLevelUps drains surplus exp on every track, one level at a time, and
// applies the common track's vital bonuses for each common level gained.
func (p *Player) ResolveLevelUps(increment int) []LevelUp {
	var out []LevelUp
	for _, track := range trackOrder {
		skill := p.Skills.Get(track)
		for skill.ExpToLevelUp > 0 && skill.Exp >= skill.ExpToLevelUp {
			skill.Exp -= skill.ExpToLevelUp
			skill.Level++
			skill.ExpToLevelUp += increment
			if track == TrackCommon {
				p.MaxHP += skill.MaxHPBonus
				p.MaxStamina += skill.MaxStaminaBonus
			}
			out = append(out, LevelUp{Track: track, Level: skill.Level})
		}
	}
	return out
}

// ReducedCost applies the per-level stamina reduction of a specialized skill.
func (s Skill) ReducedCost(base int) int {
	return max(1, base-(s.Level-1)*s.StaminaReducePerLevel)
}

// FarmReduction is the farm track's slower discount: one step per two levels.
func (s Skill) FarmReduction() int {
	return (s.Level - 1) / 2 * s.StaminaReducePerLevel
}
