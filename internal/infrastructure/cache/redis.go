package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"jobboard/internal/config"

	"github.com/redis/go-redis/v9"
)

// Redis is a JSON cache that degrades to a no-op when Redis is disabled or
// unreachable. Callers treat every error as a cache miss.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *Redis {
	r := &Redis{logger: logger, ttl: cfg.TTL}
	if r.ttl <= 0 {
		r.ttl = 10 * time.Minute
	}
	if !cfg.Enabled {
		r.logf(ctx, "cache disabled")
		return r
	}

	client := redis.NewClient(&redis.Options{
		Addr:     strings.TrimSpace(cfg.Addr),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		r.logf(ctx, "redis unavailable, bypassing cache", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return r
	}

	r.client = client
	return r
}

// Disabled returns a cache that never stores anything.
func Disabled() *Redis {
	return &Redis{ttl: 10 * time.Minute}
}

func (r *Redis) logf(ctx context.Context, msg string, args ...any) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.WarnContext(ctx, msg, args...)
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(ctx context.Context, err error) {
	if r == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logf(ctx, "redis unavailable, bypassing cache", "error", err)
	}
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) TTL() time.Duration {
	if r == nil {
		return 0
	}
	return r.ttl
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(ctx, err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(ctx, err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(ctx, err)
		return err
	}
	return nil
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := r.client.Del(ctx, k).Err(); err != nil && r.logger != nil {
			r.logger.WarnContext(ctx, "cache delete failed", "key", k, "pattern", pattern, "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		r.warnUnavailableOnce(ctx, err)
		return err
	}
	return nil
}
