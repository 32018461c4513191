package action

import "context"

type actActionHandler struct{ BaseHandler }

func (actActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	face(ac)
	s := ac.View.Session
	recordOutcome(ac, uc.resolver(s).Resolve(s))
	return nil
}

type plantActionHandler struct{ BaseHandler }

func (plantActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	face(ac)
	s := ac.View.Session
	recordOutcome(ac, uc.resolver(s).PlantSeed(s))
	return nil
}
