package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	counters map[string]int64
	ttls     map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		counters: make(map[string]int64),
		ttls:     make(map[string]time.Duration),
	}
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error { return nil }

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (r *fakeRedisRepository) IncrementWithExpiry(ctx context.Context, key string, exp time.Duration) (int64, error) {
	r.counters[key]++
	if r.counters[key] == 1 {
		r.ttls[key] = exp
	}
	return r.counters[key], nil
}

func (r *fakeRedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.ttls[key], nil
}

func TestApplyResourceLimiter(t *testing.T) {
	limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
	ctx := context.Background()

	input := &ApplyResourceLimiterInput{
		ResourceName:      "patient-1",
		LimiterGroupName:  "analyze",
		WindowDurationSec: 60,
		MaxQuota:          2,
	}

	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, input)
		require.NoError(t, err)
		assert.True(t, out.Allowed, "request %d should be within quota", i+1)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, input)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Greater(t, out.RetryAfterSecs, 0)
}

func TestApplyResourceLimiter_SeparateResources(t *testing.T) {
	limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
	ctx := context.Background()

	first := &ApplyResourceLimiterInput{ResourceName: "patient-1", LimiterGroupName: "analyze", WindowDurationSec: 60, MaxQuota: 1}
	second := &ApplyResourceLimiterInput{ResourceName: "patient-2", LimiterGroupName: "analyze", WindowDurationSec: 60, MaxQuota: 1}

	out, err := limiter.ApplyResourceLimiter(ctx, first)
	require.NoError(t, err)
	assert.True(t, out.Allowed)

	out, err = limiter.ApplyResourceLimiter(ctx, second)
	require.NoError(t, err)
	assert.True(t, out.Allowed, "quota is tracked per resource")
}

func TestApplyResourceLimiter_DisabledQuota(t *testing.T) {
	limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())

	out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:     "patient-1",
		LimiterGroupName: "analyze",
		MaxQuota:         0,
	})
	require.NoError(t, err)
	assert.True(t, out.Allowed, "zero quota disables the limiter")
}
