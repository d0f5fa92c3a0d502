package ratelimit

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurelia-jewels/aurelia/internal/config"
	redis "github.com/redis/go-redis/v9"
)

const keyAdminWrite = "admin:write:%s"

// AdminWriteLimiter throttles rate and charge mutations per client so a
// misbehaving integration cannot thrash the price tables. It is
// disabled when no Redis address is configured, which is the expected
// mode in development.
type AdminWriteLimiter struct {
	enabled bool

	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewAdminWriteLimiter(cfg config.Config) *AdminWriteLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})

	return &AdminWriteLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    cfg.AdminWriteRate,
		burst:   cfg.AdminWriteBurst,
	}
}

func (l *AdminWriteLimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *AdminWriteLimiter) Allow(ctx context.Context, clientKey string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}
	key := fmt.Sprintf(keyAdminWrite, strings.TrimSpace(clientKey))
	return l.bucket.Allow(ctx, key, l.rate, l.burst)
}
