// Package cache — тонкая обёртка над Redis для кэширования ленты.
// При пустом адресе Redis кэш отключён и все операции становятся no-op.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"unigig_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss возвращается, когда ключа нет или кэш отключён.
var ErrCacheMiss = errors.New("cache miss")

const (
	feedKeyPrefix = "feed:"
	FeedTTL       = 30 * time.Second
)

type Cache struct {
	client *redis.Client
}

// New создаёт клиент Redis. addr == "" означает отключённый кэш.
func New(addr, password string, db int) *Cache {
	if addr == "" {
		return &Cache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unavailable, feed cache disabled", "addr", addr, "error", err)
		return &Cache{}
	}
	logger.Info("redis connected", "addr", addr)
	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON читает ключ и раскладывает JSON в dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if !c.Enabled() {
		return ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON сериализует value в JSON и кладёт с TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// FeedKey — ключ кэша ленты для конкретного зрителя.
func FeedKey(viewerID string) string {
	return fmt.Sprintf("%s%s", feedKeyPrefix, viewerID)
}
