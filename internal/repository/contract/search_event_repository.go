package contract

import (
	"context"

	"invoxa-search-be/internal/entity"
)

type SearchEventRepository interface {
	Create(ctx context.Context, event *entity.SearchEvent) error

	// TopQueries returns the most frequently analyzed queries, used as
	// popular topics when the caller supplies no context.
	TopQueries(ctx context.Context, limit int) ([]string, error)

	// RecentBySession returns a session's latest events, newest first.
	RecentBySession(ctx context.Context, sessionId string, limit int) ([]*entity.SearchEvent, error)
}
