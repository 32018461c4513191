package action

import (
	"context"

	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

type moveActionHandler struct{ BaseHandler }

func validateMoveActionParams(req Request) bool {
	_, ok := world.ParseDirection(req.Direction)
	return ok
}

func validateOptionalDirection(req Request) bool {
	if req.Direction == "" {
		return true
	}
	_, ok := world.ParseDirection(req.Direction)
	return ok
}

func (moveActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	s := ac.View.Session
	out := uc.resolver(s).Move(s, ac.In.Direction)
	recordOutcome(ac, out)
	return nil
}

func (u UseCase) resolver(s *farmer.Session) farmer.Resolver {
	return farmer.Resolver{Tuning: u.Tuning, Rand: s.Rand}
}

// face turns the player before act/plant. Exhausted players keep facing.
func face(ac *ActionContext) {
	p := &ac.View.Session.Player
	if ac.In.Direction != "" && !p.Exhausted() {
		p.Facing = ac.In.Direction
	}
}
