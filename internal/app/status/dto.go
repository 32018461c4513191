package status

import (
	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

type Request struct {
	SessionID string
}

type Pixel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Response struct {
	State farmer.State `json:"state"`
	// PlayerPixel is the sprite position of the player's cell.
	PlayerPixel Pixel `json:"player_pixel"`
}

type GridResponse struct {
	SessionID string         `json:"session_id"`
	Version   int64          `json:"version"`
	Grid      world.Snapshot `json:"grid"`
}
