// Package redis is implementation of storage interface over redis strings.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/socialspark/spark/internal/storage"
)

type rds struct {
	client *redis.Client
	prefix string
}

// New creates new instance of redis storage. Every key is stored as prefix+key without expiration.
func New(client *redis.Client, prefix string) storage.Storage {
	return rds{
		client: client,
		prefix: prefix,
	}
}

func (s rds) key(k string) string {
	return s.prefix + k
}

func (s rds) Load(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("failed to get: %w", err)
	}

	return v, nil
}

func (s rds) Save(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set: %w", err)
	}

	return nil
}

func (s rds) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to del: %w", err)
	}

	return nil
}

func (s rds) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	return nil
}
