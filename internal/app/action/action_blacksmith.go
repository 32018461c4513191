package action

import (
	"context"
	"errors"
	"fmt"

	"furrow/internal/domain/farmer"
)

func validateUpgradeActionParams(req Request) bool {
	_, ok := farmer.ParseToolKind(req.Tool)
	return ok
}

func validateSelectPerkActionParams(req Request) bool {
	return req.Choice >= 0
}

type upgradeActionHandler struct{}

func (upgradeActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	if ac.View.Session.PendingPerk != nil {
		return ErrPerkPending
	}
	return nil
}

func (upgradeActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	s := ac.View.Session
	kind, _ := farmer.ParseToolKind(ac.In.Req.Tool)
	pending, cost, err := farmer.AttemptUpgrade(&s.Player, kind, s.Rand, uc.Tuning.Upgrade)
	var insufficient *farmer.InsufficientResourceError
	switch {
	case errors.As(err, &insufficient):
		recordRefusal(ac, "insufficient_resource", "Not enough "+insufficient.Resource+".", insufficient.Resource)
		return nil
	case errors.Is(err, farmer.ErrToolMaxLevel):
		recordRefusal(ac, "max_level", "This tool cannot be upgraded further.", "")
		return nil
	case err != nil:
		return err
	}

	tool := s.Player.Tools.Get(kind)
	ac.emit(farmer.EventToolUpgraded, map[string]any{
		"tool":  string(kind),
		"level": tool.Level,
		"wood":  cost.Wood,
		"stone": cost.Stone,
		"gold":  cost.Gold,
	})
	s.PushToast(fmt.Sprintf("%s upgraded to level %d.", kind, tool.Level))
	if uc.Chooser == nil {
		s.PendingPerk = &pending
		ac.Tmp.Pending = &pending
		return nil
	}
	return commitPerk(ac, pending, uc.Chooser(pending))
}

type selectPerkActionHandler struct{}

func (selectPerkActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	if ac.View.Session.PendingPerk == nil {
		return ErrNoPendingPerk
	}
	return nil
}

func (selectPerkActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	s := ac.View.Session
	pending := *s.PendingPerk
	if err := commitPerk(ac, pending, ac.In.Req.Choice); err != nil {
		return err
	}
	s.PendingPerk = nil
	return nil
}

func commitPerk(ac *ActionContext, pending farmer.PendingPerk, choice int) error {
	perk, err := farmer.CommitPerk(&ac.View.Session.Player, pending, choice)
	if errors.Is(err, farmer.ErrInvalidChoice) {
		return fmt.Errorf("%w: %w", ErrInvalidActionParams, err)
	}
	if err != nil {
		return err
	}
	ac.emit(farmer.EventPerkCommitted, map[string]any{
		"tool":      string(pending.Tool),
		"slot":      pending.Slot,
		"effect":    string(perk.Effect),
		"magnitude": perk.Magnitude,
	})
	ac.Tmp.Perk = &perk
	return nil
}
