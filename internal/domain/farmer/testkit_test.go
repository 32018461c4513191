package farmer

import (
	"testing"

	"furrow/internal/domain/dice"
	"furrow/internal/domain/world"
)

// newTestSession builds a 3x3 soil farm with the player in the middle,
// facing right at cell (1,2).
func newTestSession(t *testing.T) *Session {
	t.Helper()
	tuning := DefaultTuning()
	s := &Session{
		ID:       "session-test",
		Player:   NewPlayer(tuning),
		Grid:     world.NewGrid(3, 3, world.TileSoil),
		Calendar: world.NewCalendar(tuning.DaysPerSeason),
		Rand:     dice.NewSequence(),
	}
	s.Player.Cell = world.Cell{Row: 1, Col: 1}
	s.Player.Facing = world.DirRight
	return s
}

func newTestResolver(rolls ...int) Resolver {
	return Resolver{Tuning: DefaultTuning(), Rand: dice.NewSequence(rolls...)}
}

var target = world.Cell{Row: 1, Col: 2}

func hasSignal(out Outcome, kind SignalKind, detail string) bool {
	for _, sig := range out.Signals {
		if sig.Kind == kind && sig.Detail == detail {
			return true
		}
	}
	return false
}
