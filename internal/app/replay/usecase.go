package replay

import (
	"context"
	"errors"
	"strings"

	"furrow/internal/app/ports"
	"furrow/internal/domain/farmer"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	TxManager ports.TxManager
	Events    ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	var events []farmer.DomainEvent
	list := func(ctx context.Context) error {
		var err error
		events, err = u.Events.ListBySessionID(ctx, req.SessionID, req.Limit)
		return err
	}
	var err error
	if u.TxManager != nil {
		err = u.TxManager.RunInTx(ctx, list)
	} else {
		err = list(ctx)
	}
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	latest := summarize(events)
	latest.SessionID = req.SessionID
	return Response{Events: events, Latest: latest}, nil
}

func filterByTimeWindow(events []farmer.DomainEvent, from, to int64) []farmer.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]farmer.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func summarize(events []farmer.DomainEvent) Summary {
	sum := Summary{Day: 1, Season: "spring", Levels: map[string]int{}}
	for _, evt := range events {
		switch evt.Type {
		case farmer.EventDayStarted:
			sum.Day = int(num(evt.Payload["day"]))
			if season, ok := evt.Payload["season"].(string); ok {
				sum.Season = season
			}
		case farmer.EventActionResolved:
			sum.Actions++
			sum.GoldDelta += int(num(evt.Payload["gold"]))
		case farmer.EventActionFailed:
			sum.Failures++
		case farmer.EventItemBought, farmer.EventItemSold, farmer.EventToolUpgraded:
			gold := int(num(evt.Payload["gold"]))
			if evt.Type == farmer.EventToolUpgraded {
				gold = -gold
			}
			sum.GoldDelta += gold
		case farmer.EventLevelUp:
			if track, ok := evt.Payload["track"].(string); ok {
				sum.Levels[track] = int(num(evt.Payload["level"]))
			}
		}
	}
	return sum
}

// num reads a number out of a payload that may have been through JSON.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
