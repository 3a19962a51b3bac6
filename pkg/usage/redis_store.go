package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// usageKeyPrefix namespaces the per-session usage lists
const usageKeyPrefix = "search:usage:"

// usageTTL lets abandoned session logs age out
const usageTTL = 7 * 24 * time.Hour

// RedisStore keeps each session's usage log in a redis list, trimmed to
// the newest MaxRecords entries on every append. The FIFO cap lives in
// the data structure, not at the write sites.
type RedisStore struct {
	client *redis.Client
}

var _ Store = &RedisStore{}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Append(ctx context.Context, sessionId string, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal usage record: %w", err)
	}

	// Plain pipeline: each session has a single writer, so the
	// push/trim/expire triple needs batching, not MULTI/EXEC.
	key := usageKeyPrefix + sessionId
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -MaxRecords, -1)
	pipe.Expire(ctx, key, usageTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append usage record: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, sessionId string) ([]Record, error) {
	key := usageKeyPrefix + sessionId
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read usage log: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			// Skip undecodable entries rather than failing the whole read
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
