package farmer

import "time"

type ResultCode string

const (
	ResultOK     ResultCode = "OK"
	ResultFailed ResultCode = "FAILED"
)

const (
	EventLevelUp              = "level_up"
	EventObjectChanged        = "object_changed"
	EventTileChanged          = "tile_changed"
	EventInsufficientResource = "insufficient_resource"
	EventEnterBuilding        = "enter_building"
	EventActionFailed         = "action_failed"
	EventActionResolved       = "action_resolved"
	EventDayStarted           = "day_started"
	EventSeasonChanged        = "season_changed"
	EventToolUpgraded         = "tool_upgraded"
	EventPerkCommitted        = "perk_committed"
	EventItemBought           = "item_bought"
	EventItemSold             = "item_sold"
	EventSessionStarted       = "session_started"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
