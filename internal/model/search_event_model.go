package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SearchEvent struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionId      string         `gorm:"type:varchar(64);index" json:"session_id"`
	Query          string         `gorm:"type:text" json:"query"`
	CorrectedQuery *string        `gorm:"type:text" json:"corrected_query"`
	Category       string         `gorm:"type:varchar(32);index" json:"category"`
	Confidence     float64        `json:"confidence"`
	Filters        datatypes.JSON `gorm:"type:jsonb" json:"filters,omitempty"`
	LatencyMs      int64          `json:"latency_ms"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (SearchEvent) TableName() string {
	return "search_events"
}
