package action

import (
	"context"
	"testing"
	"time"

	"furrow/internal/app/ports"
	"furrow/internal/domain/dice"
	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubSessionRepo struct {
	byID map[string]*farmer.Session
}

func (r *stubSessionRepo) Get(_ context.Context, sessionID string) (*farmer.Session, error) {
	s, ok := r.byID[sessionID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *stubSessionRepo) SaveWithVersion(_ context.Context, s *farmer.Session, expectedVersion int64) error {
	current, ok := r.byID[s.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byID[s.ID] = s.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[s.ID] = s.Clone()
	return nil
}

type conflictOnSaveSessionRepo struct {
	stubSessionRepo
}

func (r *conflictOnSaveSessionRepo) SaveWithVersion(context.Context, *farmer.Session, int64) error {
	return ports.ErrConflict
}

type stubEventRepo struct {
	events []farmer.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []farmer.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListBySessionID(_ context.Context, _ string, limit int) ([]farmer.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]farmer.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

type stubPublisher struct {
	published map[string][]farmer.DomainEvent
}

func (p *stubPublisher) Publish(sessionID string, events []farmer.DomainEvent) {
	if p.published == nil {
		p.published = map[string][]farmer.DomainEvent{}
	}
	p.published[sessionID] = append(p.published[sessionID], events...)
}

type stubArchive struct {
	days []farmer.DayReport
}

func (a *stubArchive) RecordDay(_ context.Context, _ string, report farmer.DayReport) error {
	a.days = append(a.days, report)
	return nil
}

type stubActionMetrics struct {
	successCalls  int
	conflictCalls int
	failureCalls  int
	lastAction    string
	lastResult    farmer.ResultCode
}

func (m *stubActionMetrics) RecordSuccess(action string, resultCode farmer.ResultCode) {
	m.successCalls++
	m.lastAction = action
	m.lastResult = resultCode
}

func (m *stubActionMetrics) RecordConflict() {
	m.conflictCalls++
}

func (m *stubActionMetrics) RecordFailure() {
	m.failureCalls++
}

type testHarness struct {
	uc       UseCase
	sessions *stubSessionRepo
	events   *stubEventRepo
	pub      *stubPublisher
	archive  *stubArchive
	metrics  *stubActionMetrics
}

// newHarness stores a 3x3 soil farm under "s1" with the player at (1,1)
// facing right. A tree stands at (1,2) and the market at (0,1).
func newHarness(t *testing.T) *testHarness {
	t.Helper()
	tuning := farmer.DefaultTuning()
	s := &farmer.Session{
		ID:       "s1",
		Player:   farmer.NewPlayer(tuning),
		Grid:     world.NewGrid(3, 3, world.TileSoil),
		Calendar: world.NewCalendar(tuning.DaysPerSeason),
		Toasts:   []string{},
		Rand:     dice.NewSequence(),
	}
	s.Player.Cell = world.Cell{Row: 1, Col: 1}
	s.Player.Facing = world.DirRight
	s.Grid.SetObject(world.Cell{Row: 1, Col: 2}, world.Resource{Kind: world.ResourceTree})
	s.Grid.SetObject(world.Cell{Row: 0, Col: 1}, world.Building{Kind: world.BuildingMarket})

	h := &testHarness{
		sessions: &stubSessionRepo{byID: map[string]*farmer.Session{"s1": s}},
		events:   &stubEventRepo{},
		pub:      &stubPublisher{},
		archive:  &stubArchive{},
		metrics:  &stubActionMetrics{},
	}
	h.uc = UseCase{
		TxManager: stubTxManager{},
		Sessions:  h.sessions,
		EventRepo: h.events,
		Publisher: h.pub,
		Archive:   h.archive,
		Metrics:   h.metrics,
		Tuning:    tuning,
		Now:       func() time.Time { return time.Unix(1700000000, 0).UTC() },
	}
	return h
}

// edit mutates the stored session directly, outside the pipeline.
func (h *testHarness) edit(fn func(s *farmer.Session)) {
	fn(h.sessions.byID["s1"])
}

func (h *testHarness) stored() *farmer.Session {
	return h.sessions.byID["s1"]
}

func hasEvent(events []farmer.DomainEvent, eventType string) bool {
	for _, evt := range events {
		if evt.Type == eventType {
			return true
		}
	}
	return false
}

type failingEventRepo struct {
	stubEventRepo
	err error
}

func (r *failingEventRepo) Append(context.Context, string, []farmer.DomainEvent) error {
	return r.err
}

type failingArchive struct {
	err error
}

func (a failingArchive) RecordDay(context.Context, string, farmer.DayReport) error {
	return a.err
}
