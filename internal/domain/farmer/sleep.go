package farmer

import (
	"strings"

	"furrow/internal/domain/dice"
	"furrow/internal/domain/world"
)

type DayReport struct {
	Day           int              `json:"day"`
	Season        world.Season     `json:"season"`
	PrevSeason    world.Season     `json:"prev_season"`
	SeasonChanged bool             `json:"season_changed"`
	LevelUps      []LevelUp        `json:"level_ups"`
	Changes       world.DayChanges `json:"changes"`
}

// Sleep runs the day rollover as one step: level-ups, growth then decay,
// vitals and position reset, calendar advance. A new season replaces the
// whole farm. Input stays blocked until it returns.
func Sleep(s *Session, rng dice.Source, t Tuning) DayReport {
	s.InputBlocked = true
	defer func() { s.InputBlocked = false }()

	report := DayReport{PrevSeason: s.Calendar.Season}
	report.LevelUps = s.Player.ResolveLevelUps(t.Skills.Increment)
	for _, lu := range report.LevelUps {
		s.PushToast(levelUpToast(lu.Track))
	}
	report.Changes = world.SimulateNextDay(s.Grid, rng, t.Crops)
	s.Player.Rest(t.Player.Spawn, t.Player.Facing)
	s.OpenPanel = PanelNone

	if s.Calendar.Advance() {
		report.SeasonChanged = true
		s.Grid = world.Generate(t.World, rng)
		s.PushToast(capitalize(string(s.Calendar.Season)) + " has come.")
	}
	report.Day = s.Calendar.Day
	report.Season = s.Calendar.Season
	return report
}

func levelUpToast(track Track) string {
	return capitalize(string(track)) + " Level Up!"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
