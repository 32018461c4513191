package replay

import "furrow/internal/domain/farmer"

type Request struct {
	SessionID    string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// Summary is what can be rebuilt from the journal alone. The journal is not a
// save file; the grid and inventory cannot be restored from it.
type Summary struct {
	SessionID string         `json:"session_id"`
	Day       int            `json:"day"`
	Season    string         `json:"season"`
	Actions   int            `json:"actions"`
	Failures  int            `json:"failures"`
	GoldDelta int            `json:"gold_delta"`
	Levels    map[string]int `json:"levels"`
}

type Response struct {
	Events []farmer.DomainEvent `json:"events"`
	Latest Summary              `json:"latest"`
}
