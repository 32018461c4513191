package action

import (
	"context"
	"time"

	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

type ActionSpec struct {
	Type ActionType
	// NeedsInput refuses the intent while a panel is open or a day transition
	// is running.
	NeedsInput bool
	// Panel, when set, must be the open panel.
	Panel   farmer.Panel
	Handler ActionHandler
}

type ActionHandler interface {
	Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error
	Execute(ctx context.Context, uc UseCase, ac *ActionContext) error
}

type BaseHandler struct{}

func (BaseHandler) Precheck(context.Context, UseCase, *ActionContext) error { return nil }

type ActionInput struct {
	Req       Request
	NowAt     time.Time
	SessionID string
	Direction world.Direction
}

type ActionView struct {
	Spec    ActionSpec
	Session *farmer.Session
	Version int64
}

type ActionWritePlan struct {
	EventsToAppend []farmer.DomainEvent
	DayToArchive   *farmer.DayReport
	ResultCode     farmer.ResultCode
}

type ActionContext struct {
	In   ActionInput
	View ActionView
	Plan ActionWritePlan
	Tmp  Response
}

func (ac *ActionContext) emit(eventType string, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	ac.Plan.EventsToAppend = append(ac.Plan.EventsToAppend, farmer.DomainEvent{Type: eventType, Payload: payload})
}

func actionRegistry() map[ActionType]ActionSpec {
	return map[ActionType]ActionSpec{
		ActionMove:       {Type: ActionMove, NeedsInput: true, Handler: moveActionHandler{}},
		ActionAct:        {Type: ActionAct, NeedsInput: true, Handler: actActionHandler{}},
		ActionPlant:      {Type: ActionPlant, NeedsInput: true, Handler: plantActionHandler{}},
		ActionSleep:      {Type: ActionSleep, NeedsInput: true, Handler: sleepActionHandler{}},
		ActionClosePanel: {Type: ActionClosePanel, Handler: closePanelActionHandler{}},
		ActionBuy:        {Type: ActionBuy, Panel: farmer.PanelMarket, Handler: buyActionHandler{}},
		ActionSell:       {Type: ActionSell, Panel: farmer.PanelMarket, Handler: sellActionHandler{}},
		ActionUpgrade:    {Type: ActionUpgrade, Panel: farmer.PanelBlacksmith, Handler: upgradeActionHandler{}},
		ActionSelectPerk: {Type: ActionSelectPerk, Panel: farmer.PanelBlacksmith, Handler: selectPerkActionHandler{}},
	}
}

func supportedActionTypes() []ActionType {
	return []ActionType{
		ActionMove,
		ActionAct,
		ActionPlant,
		ActionSleep,
		ActionClosePanel,
		ActionBuy,
		ActionSell,
		ActionUpgrade,
		ActionSelectPerk,
	}
}

func isSupportedActionType(t ActionType) bool {
	for _, actionType := range supportedActionTypes() {
		if t == actionType {
			return true
		}
	}
	return false
}

func actionParamValidators() map[ActionType]func(Request) bool {
	return map[ActionType]func(Request) bool{
		ActionMove:       validateMoveActionParams,
		ActionAct:        validateOptionalDirection,
		ActionPlant:      validateOptionalDirection,
		ActionSleep:      validateNoParams,
		ActionClosePanel: validateNoParams,
		ActionBuy:        validateMarketActionParams,
		ActionSell:       validateMarketActionParams,
		ActionUpgrade:    validateUpgradeActionParams,
		ActionSelectPerk: validateSelectPerkActionParams,
	}
}

func validateNoParams(Request) bool { return true }
