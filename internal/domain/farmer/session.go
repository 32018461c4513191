package farmer

import (
	"time"

	"furrow/internal/domain/dice"
	"furrow/internal/domain/world"
)

type Panel string

const (
	PanelNone       Panel = ""
	PanelMarket     Panel = "market"
	PanelBlacksmith Panel = "blacksmith"
)

// Session owns everything one game needs: the player, the farm, the calendar
// and the presentation-facing queues. It is mutated in place by the resolver
// and by Sleep.
type Session struct {
	ID           string         `json:"id"`
	Seed         int64          `json:"seed"`
	Player       Player         `json:"player"`
	Grid         *world.Grid    `json:"-"`
	Calendar     world.Calendar `json:"calendar"`
	Toasts       []string       `json:"toasts"`
	OpenPanel    Panel          `json:"open_panel,omitempty"`
	InputBlocked bool           `json:"input_blocked"`
	PendingPerk  *PendingPerk   `json:"pending_perk,omitempty"`
	Version      int64          `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Rand         dice.Source    `json:"-"`
}

func NewSession(id string, seed int64, rng dice.Source, t Tuning, now time.Time) *Session {
	return &Session{
		ID:        id,
		Seed:      seed,
		Player:    NewPlayer(t),
		Grid:      world.Generate(t.World, rng),
		Calendar:  world.NewCalendar(t.DaysPerSeason),
		Toasts:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
		Rand:      rng,
	}
}

// AcceptsInput reports whether move/act/plant may run.
func (s *Session) AcceptsInput() bool {
	return !s.InputBlocked && s.OpenPanel == PanelNone
}

func (s *Session) PushToast(msg string) {
	if msg == "" {
		return
	}
	s.Toasts = append(s.Toasts, msg)
}

// NextToast pops the oldest toast.
func (s *Session) NextToast() (string, bool) {
	if len(s.Toasts) == 0 {
		return "", false
	}
	msg := s.Toasts[0]
	s.Toasts = s.Toasts[1:]
	return msg, true
}

func (s *Session) Touch(now time.Time) {
	s.Version++
	s.UpdatedAt = now
}

// Clone returns a deep copy. The random source is shared, not copied.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Player = s.Player.clone()
	out.Toasts = append([]string(nil), s.Toasts...)
	if s.Grid != nil {
		out.Grid = s.Grid.Clone()
	}
	if s.PendingPerk != nil {
		pending := *s.PendingPerk
		pending.Candidates = append([]PerkSlot(nil), s.PendingPerk.Candidates...)
		out.PendingPerk = &pending
	}
	return &out
}

// State is the read-only view of a session handed to clients.
type State struct {
	SessionID     string         `json:"session_id"`
	Player        Player         `json:"player"`
	Calendar      world.Calendar `json:"calendar"`
	OpenPanel     Panel          `json:"open_panel,omitempty"`
	InputBlocked  bool           `json:"input_blocked"`
	PendingPerk   *PendingPerk   `json:"pending_perk,omitempty"`
	PendingToasts int            `json:"pending_toasts"`
	Version       int64          `json:"version"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (s *Session) State() State {
	c := s.Clone()
	return State{
		SessionID:     c.ID,
		Player:        c.Player,
		Calendar:      c.Calendar,
		OpenPanel:     c.OpenPanel,
		InputBlocked:  c.InputBlocked,
		PendingPerk:   c.PendingPerk,
		PendingToasts: len(c.Toasts),
		Version:       c.Version,
		UpdatedAt:     c.UpdatedAt,
	}
}
