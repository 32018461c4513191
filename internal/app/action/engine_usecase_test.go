package action

import (
	"context"
	"errors"
	"testing"

	"furrow/internal/app/ports"
	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

func TestUseCase_ActChopsTreeAndPersists(t *testing.T) {
	h := newHarness(t)

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionAct})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.ResultCode != farmer.ResultOK {
		t.Fatalf("result code got=%s want=%s", resp.ResultCode, farmer.ResultOK)
	}
	if resp.Outcome == nil || resp.Outcome.Action != farmer.ActionChop {
		t.Fatalf("expected chop outcome, got %+v", resp.Outcome)
	}
	if got, want := resp.State.Player.Stamina, 90; got != want {
		t.Fatalf("stamina got=%d want=%d", got, want)
	}
	stored := h.stored()
	if got, want := stored.Player.Count("wood"), 1; got != want {
		t.Fatalf("wood got=%d want=%d", got, want)
	}
	if stored.Grid.Object(world.Cell{Row: 1, Col: 2}) != nil {
		t.Fatalf("expected tree to be cleared")
	}
	if got, want := stored.Version, int64(1); got != want {
		t.Fatalf("version got=%d want=%d", got, want)
	}
	if !hasEvent(h.events.events, farmer.EventActionResolved) || !hasEvent(h.events.events, farmer.EventObjectChanged) {
		t.Fatalf("expected action_resolved and object_changed, got %+v", h.events.events)
	}
	if got := h.events.events[0].Payload["session_id"]; got != "s1" {
		t.Fatalf("event session_id got=%v want=s1", got)
	}
	if got, want := len(h.pub.published["s1"]), len(resp.Events); got != want {
		t.Fatalf("published events got=%d want=%d", got, want)
	}
	if h.metrics.successCalls != 1 || h.metrics.lastAction != "act" {
		t.Fatalf("expected one act success, got %+v", h.metrics)
	}
}

func TestUseCase_ActFacesRequestedDirection(t *testing.T) {
	h := newHarness(t)

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionAct, Direction: "up"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Outcome.Action != farmer.ActionEnter {
		t.Fatalf("action got=%s want=%s", resp.Outcome.Action, farmer.ActionEnter)
	}
	if got := h.stored().OpenPanel; got != farmer.PanelMarket {
		t.Fatalf("panel got=%q want=%q", got, farmer.PanelMarket)
	}
	if !hasEvent(resp.Events, farmer.EventEnterBuilding) {
		t.Fatalf("expected enter_building event")
	}
}

func TestUseCase_OpenPanelBlocksMovement(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) { s.OpenPanel = farmer.PanelMarket })

	_, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionMove, Direction: "left"})
	if !errors.Is(err, ErrInputBlocked) {
		t.Fatalf("expected ErrInputBlocked, got %v", err)
	}
	if got := h.stored().Player.Cell; got != (world.Cell{Row: 1, Col: 1}) {
		t.Fatalf("player moved to %+v", got)
	}
	if h.metrics.failureCalls != 1 {
		t.Fatalf("expected failure metric, got %+v", h.metrics)
	}
}

func TestUseCase_MarketRequiresOpenPanel(t *testing.T) {
	h := newHarness(t)

	_, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionBuy, Item: "seed"})
	if !errors.Is(err, ErrPanelClosed) {
		t.Fatalf("expected ErrPanelClosed, got %v", err)
	}
	var panelErr *PanelClosedError
	if !errors.As(err, &panelErr) || panelErr.Want != farmer.PanelMarket {
		t.Fatalf("expected PanelClosedError for market, got %v", err)
	}
}

func TestUseCase_BuySeasonSeed(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) { s.OpenPanel = farmer.PanelMarket })

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionBuy, Item: "Seeds"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Trade == nil || resp.Trade.Item != "spring_seed" {
		t.Fatalf("expected spring_seed trade, got %+v", resp.Trade)
	}
	stored := h.stored()
	if got, want := stored.Player.Gold, 990; got != want {
		t.Fatalf("gold got=%d want=%d", got, want)
	}
	if got, want := stored.Player.Count("spring_seed"), 1; got != want {
		t.Fatalf("seeds got=%d want=%d", got, want)
	}
	if !hasEvent(resp.Events, farmer.EventItemBought) {
		t.Fatalf("expected item_bought event")
	}
}

func TestUseCase_BuyWithoutGoldIsRefusedButPersisted(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) {
		s.OpenPanel = farmer.PanelMarket
		s.Player.Gold = 5
	})

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionBuy, Item: "spring_seed"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.ResultCode != farmer.ResultFailed {
		t.Fatalf("result code got=%s want=%s", resp.ResultCode, farmer.ResultFailed)
	}
	if !hasEvent(resp.Events, farmer.EventInsufficientResource) {
		t.Fatalf("expected insufficient_resource event, got %+v", resp.Events)
	}
	stored := h.stored()
	if stored.Player.Gold != 5 || stored.Player.Count("spring_seed") != 0 {
		t.Fatalf("refused purchase changed the player: gold=%d seeds=%d", stored.Player.Gold, stored.Player.Count("spring_seed"))
	}
	if len(stored.Toasts) != 1 {
		t.Fatalf("expected a refusal toast, got %v", stored.Toasts)
	}
	if h.metrics.lastResult != farmer.ResultFailed {
		t.Fatalf("metrics result got=%s want=%s", h.metrics.lastResult, farmer.ResultFailed)
	}
}

func TestUseCase_SellUnknownItemIsInvalidParams(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) { s.OpenPanel = farmer.PanelMarket })

	_, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSell, Item: "diamond"})
	if !errors.Is(err, ErrInvalidActionParams) {
		t.Fatalf("expected ErrInvalidActionParams, got %v", err)
	}
	if !errors.Is(err, farmer.ErrUnknownItem) {
		t.Fatalf("expected wrapped ErrUnknownItem, got %v", err)
	}
	if got := h.stored().Version; got != 0 {
		t.Fatalf("rejected intent must not persist, version=%d", got)
	}
}

func TestUseCase_UpgradeLeavesPerkPendingUntilSelected(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) {
		s.OpenPanel = farmer.PanelBlacksmith
		s.Player.AddItem("wood", 10)
		s.Player.AddItem("stone", 10)
	})

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionUpgrade, Tool: "hoe"})
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if resp.Pending == nil || len(resp.Pending.Candidates) != farmer.PerkCandidates {
		t.Fatalf("expected pending perk with candidates, got %+v", resp.Pending)
	}
	stored := h.stored()
	if got, want := stored.Player.Tools.Hoe.Level, 2; got != want {
		t.Fatalf("hoe level got=%d want=%d", got, want)
	}
	if got, want := stored.Player.Gold, 980; got != want {
		t.Fatalf("gold got=%d want=%d", got, want)
	}

	_, err = h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionUpgrade, Tool: "axe"})
	if !errors.Is(err, ErrPerkPending) {
		t.Fatalf("second upgrade: expected ErrPerkPending, got %v", err)
	}
	_, err = h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionClosePanel})
	if !errors.Is(err, ErrPerkPending) {
		t.Fatalf("close panel: expected ErrPerkPending, got %v", err)
	}

	resp, err = h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSelectPerk, Choice: 1})
	if err != nil {
		t.Fatalf("select perk: %v", err)
	}
	if resp.Perk == nil {
		t.Fatalf("expected committed perk in response")
	}
	stored = h.stored()
	if stored.PendingPerk != nil {
		t.Fatalf("expected pending perk to clear")
	}
	if slot := stored.Player.Tools.Hoe.Slots[1]; slot == nil || *slot != *resp.Perk {
		t.Fatalf("slot 1 got=%v want=%v", slot, resp.Perk)
	}
	if !hasEvent(resp.Events, farmer.EventPerkCommitted) {
		t.Fatalf("expected perk_committed event")
	}

	_, err = h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSelectPerk})
	if !errors.Is(err, ErrNoPendingPerk) {
		t.Fatalf("expected ErrNoPendingPerk, got %v", err)
	}
}

func TestUseCase_UpgradeWithChooserCommitsImmediately(t *testing.T) {
	h := newHarness(t)
	h.uc.Chooser = farmer.ChooseFirst
	h.edit(func(s *farmer.Session) {
		s.OpenPanel = farmer.PanelBlacksmith
		s.Player.AddItem("wood", 10)
		s.Player.AddItem("stone", 10)
	})

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionUpgrade, Tool: "axe"})
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if resp.Pending != nil || h.stored().PendingPerk != nil {
		t.Fatalf("expected no pending perk with a chooser")
	}
	if h.stored().Player.Tools.Axe.Slots[1] == nil {
		t.Fatalf("expected axe slot 1 filled")
	}
	if !hasEvent(resp.Events, farmer.EventToolUpgraded) || !hasEvent(resp.Events, farmer.EventPerkCommitted) {
		t.Fatalf("expected tool_upgraded and perk_committed, got %+v", resp.Events)
	}
}

func TestUseCase_UpgradeWithoutMaterialsIsRefused(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) { s.OpenPanel = farmer.PanelBlacksmith })

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionUpgrade, Tool: "pickaxe"})
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if resp.ResultCode != farmer.ResultFailed {
		t.Fatalf("result code got=%s want=%s", resp.ResultCode, farmer.ResultFailed)
	}
	if got := h.stored().Player.Tools.Pickaxe.Level; got != 1 {
		t.Fatalf("pickaxe level got=%d want=1", got)
	}
	found := false
	for _, evt := range resp.Events {
		if evt.Type == farmer.EventInsufficientResource && evt.Payload["kind"] == "wood" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected insufficient wood event, got %+v", resp.Events)
	}
}

func TestUseCase_SleepAdvancesDayAndArchives(t *testing.T) {
	h := newHarness(t)
	h.edit(func(s *farmer.Session) {
		s.Player.Stamina = 3
		s.Player.Cell = world.Cell{Row: 2, Col: 2}
	})

	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSleep})
	if err != nil {
		t.Fatalf("sleep: %v", err)
	}
	if resp.Day == nil || resp.Day.Day != 2 {
		t.Fatalf("expected day 2 report, got %+v", resp.Day)
	}
	stored := h.stored()
	if stored.InputBlocked {
		t.Fatalf("input must be unblocked after sleep")
	}
	if got, want := stored.Player.Stamina, stored.Player.MaxStamina; got != want {
		t.Fatalf("stamina got=%d want=%d", got, want)
	}
	if got, want := stored.Player.Cell, h.uc.Tuning.Player.Spawn; got != want {
		t.Fatalf("cell got=%+v want=%+v", got, want)
	}
	if len(h.archive.days) != 1 {
		t.Fatalf("expected one archived day, got %d", len(h.archive.days))
	}
	if !hasEvent(resp.Events, farmer.EventDayStarted) {
		t.Fatalf("expected day_started event")
	}
}

func TestUseCase_JournalFailureLeavesSessionUntouched(t *testing.T) {
	h := newHarness(t)
	journalErr := errors.New("journal down")
	h.uc.EventRepo = &failingEventRepo{err: journalErr}

	_, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSleep})
	if !errors.Is(err, journalErr) {
		t.Fatalf("expected journal error, got %v", err)
	}
	stored := h.stored()
	if got, want := stored.Calendar.Day, 1; got != want {
		t.Fatalf("day got=%d want=%d", got, want)
	}
	if got, want := stored.Version, int64(0); got != want {
		t.Fatalf("version got=%d want=%d", got, want)
	}
	if len(h.archive.days) != 0 {
		t.Fatalf("archive must not be written when the journal fails")
	}
	if h.metrics.failureCalls != 1 {
		t.Fatalf("expected one recorded failure, got %d", h.metrics.failureCalls)
	}

	h.uc.EventRepo = h.events
	resp, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSleep})
	if err != nil {
		t.Fatalf("retry sleep: %v", err)
	}
	if resp.Day == nil || resp.Day.Day != 2 {
		t.Fatalf("retry must advance exactly one day, got %+v", resp.Day)
	}
}

func TestUseCase_ArchiveFailureLeavesSessionUntouched(t *testing.T) {
	h := newHarness(t)
	archiveErr := errors.New("disk full")
	h.uc.Archive = failingArchive{err: archiveErr}

	_, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionSleep})
	if !errors.Is(err, archiveErr) {
		t.Fatalf("expected archive error, got %v", err)
	}
	if got, want := h.stored().Calendar.Day, 1; got != want {
		t.Fatalf("day got=%d want=%d", got, want)
	}
}

func TestUseCase_VersionConflict(t *testing.T) {
	h := newHarness(t)
	repo := &conflictOnSaveSessionRepo{stubSessionRepo: *h.sessions}
	h.uc.Sessions = repo

	_, err := h.uc.Execute(context.Background(), Request{SessionID: "s1", Type: ActionAct})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if h.metrics.conflictCalls != 1 {
		t.Fatalf("expected conflict metric, got %+v", h.metrics)
	}
	if len(h.pub.published) != 0 {
		t.Fatalf("nothing may be published on conflict")
	}
}

func TestUseCase_RejectsMalformedRequests(t *testing.T) {
	h := newHarness(t)
	cases := []struct {
		req  Request
		want error
	}{
		{Request{Type: ActionAct}, ErrInvalidRequest},
		{Request{SessionID: "s1", Type: "dance"}, ErrInvalidRequest},
		{Request{SessionID: "s1", Type: ActionMove}, ErrInvalidActionParams},
		{Request{SessionID: "missing", Type: ActionAct}, ports.ErrNotFound},
	}
	for _, tc := range cases {
		if _, err := h.uc.Execute(context.Background(), tc.req); !errors.Is(err, tc.want) {
			t.Fatalf("%+v: got=%v want=%v", tc.req, err, tc.want)
		}
	}
}
