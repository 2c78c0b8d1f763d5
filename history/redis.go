package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/tailored-agentic-units/chatbot/core/chat"
)

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Store backed by Redis lists. Each session maps to
// one list at <prefix><session_id> holding JSON-encoded exchanges, so RPUSH
// preserves the append contract and LRANGE the insertion order. A Redis
// backend swaps in for the in-memory store without changing the Store
// contract; it is not a durability guarantee.
func NewRedisStore(client *redis.Client, prefix string) Store {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *redisStore) Append(ctx context.Context, sessionID string, exchange chat.Exchange) error {
	data, err := json.Marshal(exchange)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAppendFailed, sessionID, err)
	}
	if err := s.client.RPush(ctx, s.key(sessionID), data).Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAppendFailed, sessionID, err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, sessionID string) ([]chat.Exchange, error) {
	items, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, sessionID, err)
	}
	// An existing session list is never empty, so an empty LRANGE result
	// means the session was never appended to.
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	exchanges := make([]chat.Exchange, 0, len(items))
	for _, item := range items {
		var exchange chat.Exchange
		if err := json.Unmarshal([]byte(item), &exchange); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, sessionID, err)
		}
		exchanges = append(exchanges, exchange)
	}
	return exchanges, nil
}

func (s *redisStore) Sessions(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, s.prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Strings(ids)
	return ids, nil
}
