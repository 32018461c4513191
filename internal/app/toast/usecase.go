package toast

import (
	"context"
	"errors"
	"strings"
	"time"

	"furrow/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid toast request")

type Request struct {
	SessionID string
}

type Response struct {
	Message   string `json:"message,omitempty"`
	Empty     bool   `json:"empty"`
	Remaining int    `json:"remaining"`
}

// UseCase pops the oldest pending toast. Popping is a write, so it runs in a
// transaction like any action.
type UseCase struct {
	TxManager ports.TxManager
	Sessions  ports.SessionRepository
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		s, err := u.Sessions.Get(txCtx, sessionID)
		if err != nil {
			return err
		}
		msg, ok := s.NextToast()
		if !ok {
			out = Response{Empty: true}
			return nil
		}
		expected := s.Version
		s.Touch(nowFn())
		if err := u.Sessions.SaveWithVersion(txCtx, s, expected); err != nil {
			return err
		}
		out = Response{Message: msg, Remaining: len(s.Toasts)}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
