package action

import (
	"context"
	"errors"
	"time"

	"furrow/internal/app/ports"
	"furrow/internal/domain/farmer"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
	ErrInputBlocked        = errors.New("input blocked")
	ErrPanelClosed         = errors.New("panel not open")
	ErrPerkPending         = errors.New("perk selection pending")
	ErrNoPendingPerk       = errors.New("no perk selection pending")
)

type PanelClosedError struct {
	Want farmer.Panel
	Open farmer.Panel
}

func (e *PanelClosedError) Error() string {
	return ErrPanelClosed.Error() + ": " + string(e.Want)
}

func (e *PanelClosedError) Unwrap() error {
	return ErrPanelClosed
}

// UseCase runs every session-mutating intent through one pipeline inside a
// transaction. Publisher, Archive and Metrics are optional.
type UseCase struct {
	TxManager ports.TxManager
	Sessions  ports.SessionRepository
	EventRepo ports.EventRepository
	Publisher ports.EventPublisher
	Archive   ports.DayArchive
	Metrics   ports.ActionMetrics
	Tuning    farmer.Tuning
	// Chooser commits perks right after an upgrade. Nil keeps the selection
	// pending until select_perk.
	Chooser farmer.Chooser
	Now     func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	ac, err := u.ValidateRequest(req)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	ac.In.NowAt = nowFn()

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.LoadSession(txCtx, &ac); err != nil {
			return err
		}
		if err := u.ResolveSpec(&ac); err != nil {
			return err
		}
		if err := u.RunPrechecks(txCtx, &ac); err != nil {
			return err
		}
		if err := u.ExecuteAction(txCtx, &ac); err != nil {
			return err
		}
		if err := u.PersistAndRespond(txCtx, &ac); err != nil {
			return err
		}
		out = u.BuildResponse(&ac)
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Publisher != nil && len(out.Events) > 0 {
		u.Publisher.Publish(ac.In.SessionID, out.Events)
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(ac.In.Req.Type), out.ResultCode)
	}
	return out, nil
}
