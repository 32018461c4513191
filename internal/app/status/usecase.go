package status

import (
	"context"
	"errors"
	"strings"

	"furrow/internal/app/ports"
	"furrow/internal/domain/farmer"
)

var ErrInvalidRequest = errors.New("invalid status request")

// UseCase is read-only. TxManager is optional; with it the read holds the
// store lock like a write does.
type UseCase struct {
	TxManager ports.TxManager
	Sessions  ports.SessionRepository
	TileSize  int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	s, err := u.load(ctx, req)
	if err != nil {
		return Response{}, err
	}
	tileSize := u.TileSize
	if tileSize <= 0 {
		tileSize = farmer.DefaultTileSizePx
	}
	x, y := s.Player.Cell.PixelPosition(tileSize)
	return Response{State: s.State(), PlayerPixel: Pixel{X: x, Y: y}}, nil
}

// Grid returns the full tile and object snapshot for a redraw.
func (u UseCase) Grid(ctx context.Context, req Request) (GridResponse, error) {
	s, err := u.load(ctx, req)
	if err != nil {
		return GridResponse{}, err
	}
	return GridResponse{SessionID: s.ID, Version: s.Version, Grid: s.Grid.Snapshot()}, nil
}

func (u UseCase) load(ctx context.Context, req Request) (*farmer.Session, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidRequest
	}
	if u.TxManager == nil {
		return u.Sessions.Get(ctx, sessionID)
	}
	var s *farmer.Session
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		s, err = u.Sessions.Get(txCtx, sessionID)
		return err
	})
	return s, err
}
