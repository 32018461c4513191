package action

import (
	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

func cellPayload(c world.Cell) map[string]any {
	return map[string]any{"row": c.Row, "col": c.Col}
}

// recordOutcome turns a resolver outcome into events, the toast and the
// result code.
func recordOutcome(ac *ActionContext, out farmer.Outcome) {
	for _, sig := range out.Signals {
		switch sig.Kind {
		case farmer.SignalObjectChanged:
			ac.emit(farmer.EventObjectChanged, cellPayload(*sig.Cell))
		case farmer.SignalTileChanged:
			ac.emit(farmer.EventTileChanged, cellPayload(*sig.Cell))
		case farmer.SignalInsufficientResource:
			ac.emit(farmer.EventInsufficientResource, map[string]any{"kind": sig.Detail})
		case farmer.SignalEnterBuilding:
			ac.emit(farmer.EventEnterBuilding, map[string]any{"kind": sig.Detail})
		case farmer.SignalLevelUp:
			ac.emit(farmer.EventLevelUp, map[string]any{"track": sig.Detail})
		}
	}
	if out.OK {
		payload := map[string]any{
			"kind":         string(out.Action),
			"target":       cellPayload(out.Target),
			"stamina_cost": out.StaminaCost,
			"refunded":     out.Refunded,
			"bonus":        out.Bonus,
			"kept":         out.Kept,
		}
		if out.Gold != 0 {
			payload["gold"] = out.Gold
		}
		if len(out.Inventory) > 0 {
			payload["inventory_delta"] = out.Inventory
		}
		if out.Quality != nil {
			payload["quality"] = *out.Quality
		}
		ac.emit(farmer.EventActionResolved, payload)
	} else if out.Failure != farmer.FailNothingToDo {
		ac.emit(farmer.EventActionFailed, map[string]any{
			"kind":   string(out.Action),
			"reason": string(out.Failure),
			"target": cellPayload(out.Target),
		})
	}
	ac.View.Session.PushToast(out.Toast)
	if !out.OK {
		ac.Plan.ResultCode = farmer.ResultFailed
	}
	ac.Tmp.Outcome = &out
}

// recordRefusal is a gameplay refusal that is not a resolver outcome, such as
// an unaffordable purchase.
func recordRefusal(ac *ActionContext, reason, toast, missing string) {
	if missing != "" {
		ac.emit(farmer.EventInsufficientResource, map[string]any{"kind": missing})
	}
	ac.emit(farmer.EventActionFailed, map[string]any{"kind": string(ac.In.Req.Type), "reason": reason})
	ac.View.Session.PushToast(toast)
	ac.Plan.ResultCode = farmer.ResultFailed
}

func recordDay(ac *ActionContext, report farmer.DayReport) {
	for _, lu := range report.LevelUps {
		ac.emit(farmer.EventLevelUp, map[string]any{"track": string(lu.Track), "level": lu.Level})
	}
	if !report.SeasonChanged {
		for _, ch := range report.Changes.Objects {
			payload := cellPayload(ch.Cell)
			payload["result"] = string(ch.Result)
			payload["from"] = ch.From
			payload["to"] = ch.To
			ac.emit(farmer.EventObjectChanged, payload)
		}
		for _, ch := range report.Changes.Tiles {
			payload := cellPayload(ch.Cell)
			payload["from"] = ch.From
			payload["to"] = ch.To
			ac.emit(farmer.EventTileChanged, payload)
		}
	} else {
		ac.emit(farmer.EventSeasonChanged, map[string]any{
			"from": string(report.PrevSeason),
			"to":   string(report.Season),
		})
	}
	ac.emit(farmer.EventDayStarted, map[string]any{"day": report.Day, "season": string(report.Season)})
	ac.Plan.DayToArchive = &report
	ac.Tmp.Day = &report
}
