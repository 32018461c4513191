package world

// Calendar counts days inside the current season.
type Calendar struct {
	Day           int    `json:"day"`
	Season        Season `json:"season"`
	DaysPerSeason int    `json:"days_per_season"`
}

func NewCalendar(daysPerSeason int) Calendar {
	if daysPerSeason <= 0 {
		daysPerSeason = 28
	}
	return Calendar{Day: 1, Season: SeasonSpring, DaysPerSeason: daysPerSeason}
}

// Advance moves to the next day and reports whether the season rolled over.
func (c *Calendar) Advance() bool {
	c.Day++
	if c.Day <= c.DaysPerSeason {
		return false
	}
	c.Day = 1
	c.Season = c.Season.Next()
	return true
}
