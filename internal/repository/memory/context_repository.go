package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// maxRecentQueries caps each session's remembered query history
const maxRecentQueries = 10

// SessionContextRepository keeps each session's recent queries in
// process memory, most-recent-first. Entries expire with the session.
type SessionContextRepository struct {
	cache *cache.Cache
}

func NewSessionContextRepository() *SessionContextRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionContextRepository{
		cache: c,
	}
}

// Remember prepends a query to the session's history
func (r *SessionContextRepository) Remember(sessionId, query string) {
	if query == "" {
		return
	}
	recent := r.Recent(sessionId)

	// Drop an existing occurrence so repeats float to the front
	filtered := make([]string, 0, len(recent)+1)
	filtered = append(filtered, query)
	for _, q := range recent {
		if q != query {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) > maxRecentQueries {
		filtered = filtered[:maxRecentQueries]
	}
	r.cache.Set(sessionId, filtered, cache.DefaultExpiration)
}

// Recent returns the session's history, most-recent-first
func (r *SessionContextRepository) Recent(sessionId string) []string {
	if x, found := r.cache.Get(sessionId); found {
		if recent, ok := x.([]string); ok {
			return recent
		}
	}
	return nil
}
