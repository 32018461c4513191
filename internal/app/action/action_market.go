package action

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"furrow/internal/domain/farmer"
)

func validateMarketActionParams(req Request) bool {
	return strings.TrimSpace(req.Item) != ""
}

func resolveMarketItem(uc UseCase, ac *ActionContext) (farmer.Market, string, error) {
	m := farmer.Market{Tuning: uc.Tuning.Market}
	item, err := m.ResolveItem(ac.In.Req.Item, ac.View.Session.Calendar.Season)
	if err != nil {
		return m, "", fmt.Errorf("%w: %w", ErrInvalidActionParams, err)
	}
	return m, item, nil
}

type buyActionHandler struct{ BaseHandler }

func (buyActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	m, item, err := resolveMarketItem(uc, ac)
	if err != nil {
		return err
	}
	s := ac.View.Session
	trade, err := m.Buy(&s.Player, item, s.Calendar.Season)
	if err != nil {
		return tradeRefusal(ac, item, err)
	}
	ac.emit(farmer.EventItemBought, map[string]any{"item": trade.Item, "count": trade.Count, "gold": trade.Gold})
	ac.Tmp.Trade = &trade
	return nil
}

type sellActionHandler struct{ BaseHandler }

func (sellActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	m, item, err := resolveMarketItem(uc, ac)
	if err != nil {
		return err
	}
	trade, err := m.Sell(&ac.View.Session.Player, item)
	if err != nil {
		return tradeRefusal(ac, item, err)
	}
	ac.emit(farmer.EventItemSold, map[string]any{"item": trade.Item, "count": trade.Count, "gold": trade.Gold})
	ac.Tmp.Trade = &trade
	return nil
}

func tradeRefusal(ac *ActionContext, item string, err error) error {
	var insufficient *farmer.InsufficientResourceError
	switch {
	case errors.As(err, &insufficient):
		recordRefusal(ac, "insufficient_resource", "Not enough "+insufficient.Resource+".", insufficient.Resource)
		return nil
	case errors.Is(err, farmer.ErrNotForSale):
		return fmt.Errorf("%w: %s is not traded this season", ErrInvalidActionParams, item)
	default:
		return err
	}
}
