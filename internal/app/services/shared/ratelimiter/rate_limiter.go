package ratelimiter

import (
	"context"
	"fmt"
	"medassist-service/internal/app/contracts"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter provides a simple fixed-window limiter reusable across resources.
// Algorithm: fixed window counter stored in Redis with TTL equal to the window duration.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

// ApplyResourceLimiterInput configures limiter evaluation.
type ApplyResourceLimiterInput struct {
	// ResourceName is the entity to be limited (e.g., a patient id).
	ResourceName string
	// LimiterGroupName namespaces the limiter key (e.g., analyze).
	LimiterGroupName string
	// WindowDurationSec defines the fixed window length in seconds.
	WindowDurationSec int
	// MaxQuota is the max number of requests allowed within the window.
	MaxQuota int
}

// ApplyResourceLimiterOutput reports allowance and retry-after seconds.
type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

// ApplyResourceLimiter enforces a fixed-window limit keyed by group + resource.
// It returns Allowed=false with RetryAfterSecs until the window key expires
// when quota is exceeded. MaxQuota <= 0 disables the limiter.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	key := fmt.Sprintf("limiter:%s:%s", group, resource)
	count, err := l.redis.IncrementWithExpiry(ctx, key, time.Duration(windowSec)*time.Second)
	if err != nil {
		return nil, err
	}

	if count <= int64(in.MaxQuota) {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	retryAfter := windowSec
	if ttl, err := l.redis.TTL(ctx, key); err == nil && ttl > 0 {
		retryAfter = int(ttl / time.Second)
		if retryAfter == 0 {
			retryAfter = 1
		}
	}
	l.log.Warn("resource limiter quota exceeded",
		zap.String("group", group),
		zap.String("resource", resource),
		zap.Int64("count", count),
		zap.Int("max_quota", in.MaxQuota),
	)
	return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
}
