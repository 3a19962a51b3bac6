package usage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxRecords caps the per-session usage log. Oldest entries are evicted
// first once the cap is exceeded (FIFO, not LRU).
const MaxRecords = 100

// Record pairs a shown suggestion with whether the user accepted it.
// Append-only; analytics only, never read back on the control path.
type Record struct {
	Id             uuid.UUID `json:"id"`
	SuggestionType string    `json:"suggestion_type"`
	Title          string    `json:"title"`
	Query          string    `json:"query"`
	WasUsed        bool      `json:"was_used"`
	Timestamp      time.Time `json:"timestamp"`
}

// Store is a bounded, best-effort usage log keyed by session
type Store interface {
	Append(ctx context.Context, sessionId string, rec Record) error
	List(ctx context.Context, sessionId string) ([]Record, error)
}

// MemoryStore keeps capped per-session logs in process memory. Used when
// redis is unavailable; the cap is enforced by the structure itself.
type MemoryStore struct {
	mu   sync.Mutex
	logs map[string][]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		logs: make(map[string][]Record),
	}
}

func (s *MemoryStore) Append(ctx context.Context, sessionId string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := append(s.logs[sessionId], rec)
	if len(log) > MaxRecords {
		log = log[len(log)-MaxRecords:]
	}
	s.logs[sessionId] = log
	return nil
}

func (s *MemoryStore) List(ctx context.Context, sessionId string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logs[sessionId]
	out := make([]Record, len(log))
	copy(out, log)
	return out, nil
}
