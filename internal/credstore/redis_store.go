package credstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares one credential slot between gateway processes, the
// way browser tabs share origin-scoped storage. Writes are
// last-writer-wins; a logout in one process is only observed elsewhere
// on the next Load (or by the session watcher). That window is an
// accepted inconsistency, not something this store protects against.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "careerconnect"
	}
	return &RedisStore{client: client, key: namespace + ":credentials"}
}

func (s *RedisStore) Save(ctx context.Context, creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	// No TTL: the store tracks no expiry.
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*Credentials, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(val), &creds); err != nil {
		return nil, nil
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
