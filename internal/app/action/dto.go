package action

import "furrow/internal/domain/farmer"

type ActionType string

const (
	ActionMove       ActionType = "move"
	ActionAct        ActionType = "act"
	ActionPlant      ActionType = "plant"
	ActionSleep      ActionType = "sleep"
	ActionClosePanel ActionType = "close_panel"
	ActionBuy        ActionType = "buy"
	ActionSell       ActionType = "sell"
	ActionUpgrade    ActionType = "upgrade"
	ActionSelectPerk ActionType = "select_perk"
)

type Request struct {
	SessionID string
	Type      ActionType
	Direction string
	Item      string
	Tool      string
	Choice    int
}

type Response struct {
	State      farmer.State         `json:"state"`
	Outcome    *farmer.Outcome      `json:"outcome,omitempty"`
	Trade      *farmer.Trade        `json:"trade,omitempty"`
	Pending    *farmer.PendingPerk  `json:"pending_perk,omitempty"`
	Perk       *farmer.PerkSlot     `json:"perk,omitempty"`
	Day        *farmer.DayReport    `json:"day,omitempty"`
	Events     []farmer.DomainEvent `json:"events"`
	ResultCode farmer.ResultCode    `json:"result_code"`
}
