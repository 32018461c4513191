package session

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"time"

	"github.com/google/uuid"

	"furrow/internal/app/ports"
	"furrow/internal/domain/dice"
	"furrow/internal/domain/farmer"
)

var ErrInvalidRequest = errors.New("invalid session request")

type Request struct {
	// Seed pins world generation and every later roll. Nil falls back to the
	// configured seed, then to crypto/rand.
	Seed *int64
}

type Response struct {
	SessionID string       `json:"session_id"`
	Seed      int64        `json:"seed"`
	State     farmer.State `json:"state"`
}

type UseCase struct {
	TxManager ports.TxManager
	Sessions  ports.SessionRepository
	EventRepo ports.EventRepository
	Publisher ports.EventPublisher
	Tuning    farmer.Tuning
	// DefaultSeed is used when the request carries none. Zero means random.
	DefaultSeed int64
	NewID       func() string
	Now         func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.TxManager == nil || u.Sessions == nil {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	seed, err := u.pickSeed(req)
	if err != nil {
		return Response{}, err
	}
	now := nowFn().UTC()

	for i := 0; i < 3; i++ {
		s := farmer.NewSession(newID(), seed, dice.New(seed), u.Tuning, now)
		events := []farmer.DomainEvent{{
			Type:       farmer.EventSessionStarted,
			OccurredAt: now,
			Payload: map[string]any{
				"session_id": s.ID,
				"seed":       seed,
				"day":        s.Calendar.Day,
				"season":     string(s.Calendar.Season),
			},
		}}
		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			s.Touch(now)
			if _, err := u.Sessions.Get(txCtx, s.ID); err == nil {
				return ports.ErrConflict
			} else if !errors.Is(err, ports.ErrNotFound) {
				return err
			}
			if u.EventRepo != nil {
				if err := u.EventRepo.Append(txCtx, s.ID, events); err != nil {
					return err
				}
			}
			return u.Sessions.SaveWithVersion(txCtx, s, 0)
		})
		if errors.Is(err, ports.ErrConflict) {
			continue
		}
		if err != nil {
			return Response{}, err
		}
		if u.Publisher != nil {
			u.Publisher.Publish(s.ID, events)
		}
		return Response{SessionID: s.ID, Seed: seed, State: s.State()}, nil
	}
	return Response{}, ports.ErrConflict
}

func (u UseCase) pickSeed(req Request) (int64, error) {
	if req.Seed != nil {
		return *req.Seed, nil
	}
	if u.DefaultSeed != 0 {
		return u.DefaultSeed, nil
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}
