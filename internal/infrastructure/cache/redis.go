package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"career-coach/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultTTL = 600 * time.Second

// Redis is a JSON cache that turns into a no-op when the server is unreachable.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		logger.Info("match cache disabled", zap.String("reason", "REDIS_HOST not set"))
		return &Redis{ttl: ttl, logger: logger}
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", zap.Error(err))
		_ = client.Close()
		return &Redis{ttl: ttl, logger: logger}
	}

	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, bypassing cache", zap.Error(err))
	}
}

func (r *Redis) Enabled() bool {
	return !r.isUnavailable()
}

func (r *Redis) TTL() time.Duration {
	if r == nil || r.ttl <= 0 {
		return defaultTTL
	}
	return r.ttl
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
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
		r.warnUnavailableOnce(err)
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
		ttl = r.TTL()
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
