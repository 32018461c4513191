package model

import "time"

const TableNameFarmEvent = "farm_events"

// FarmEvent mapped from table <farm_events>
type FarmEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	SessionID  string    `gorm:"column:session_id;not null" json:"session_id"`
	Type       string    `gorm:"column:type;not null" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload;type:jsonb;not null" json:"payload"`
}

// TableName FarmEvent's table name
func (*FarmEvent) TableName() string {
	return TableNameFarmEvent
}
