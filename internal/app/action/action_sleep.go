package action

import (
	"context"

	"furrow/internal/domain/farmer"
)

type sleepActionHandler struct{ BaseHandler }

func (sleepActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	s := ac.View.Session
	report := farmer.Sleep(s, s.Rand, uc.Tuning)
	recordDay(ac, report)
	return nil
}

type closePanelActionHandler struct{}

// Precheck keeps the blacksmith open until the pending perk is chosen.
func (closePanelActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	if ac.View.Session.PendingPerk != nil {
		return ErrPerkPending
	}
	return nil
}

func (closePanelActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	ac.View.Session.OpenPanel = farmer.PanelNone
	return nil
}
