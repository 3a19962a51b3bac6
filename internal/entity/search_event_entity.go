package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchEvent records one analyzed query. Fed into popular-topic
// aggregation; never mutated after creation.
type SearchEvent struct {
	Id             uuid.UUID
	SessionId      string
	Query          string
	CorrectedQuery *string
	Category       string
	Confidence     float64
	Filters        map[string]interface{}
	LatencyMs      int64
	CreatedAt      time.Time
}
