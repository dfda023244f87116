package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlog/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestLoginThrottleBlocked(t *testing.T) {
	c := &cache.FakeCache{}
	th := NewLoginThrottle(c)

	// no counter yet
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		require.Equal(t, "login:fail:a@b.c", key)
		return redis.NewStringResult("", redis.Nil)
	}
	blocked, err := th.Blocked(context.Background(), "A@B.C")
	require.NoError(t, err)
	require.False(t, blocked)

	// below limit
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		return redis.NewStringResult("4", nil)
	}
	blocked, err = th.Blocked(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.False(t, blocked)

	// at limit
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		return redis.NewStringResult("5", nil)
	}
	blocked, err = th.Blocked(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.True(t, blocked)

	// redis error
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("down"))
	}
	_, err = th.Blocked(context.Background(), "a@b.c")
	require.Error(t, err)

	// garbage counter
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		return redis.NewStringResult("x", nil)
	}
	_, err = th.Blocked(context.Background(), "a@b.c")
	require.Error(t, err)
}

func TestLoginThrottleRecordFailure(t *testing.T) {
	c := &cache.FakeCache{}
	th := NewLoginThrottle(c)

	expireCalled := false
	c.IncrFn = func(ctx context.Context, key string) *redis.IntCmd {
		return redis.NewIntResult(1, nil)
	}
	c.ExpireFn = func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
		expireCalled = true
		require.Equal(t, loginFailureWindow, ttl)
		return redis.NewBoolResult(true, nil)
	}
	require.NoError(t, th.RecordFailure(context.Background(), "a@b.c"))
	require.True(t, expireCalled)

	// later failures leave the TTL alone
	expireCalled = false
	c.IncrFn = func(ctx context.Context, key string) *redis.IntCmd {
		return redis.NewIntResult(2, nil)
	}
	require.NoError(t, th.RecordFailure(context.Background(), "a@b.c"))
	require.False(t, expireCalled)

	c.IncrFn = func(ctx context.Context, key string) *redis.IntCmd {
		return redis.NewIntResult(0, errors.New("down"))
	}
	require.Error(t, th.RecordFailure(context.Background(), "a@b.c"))
}

func TestLoginThrottleReset(t *testing.T) {
	c := &cache.FakeCache{}
	th := NewLoginThrottle(c)
	c.DelFn = func(ctx context.Context, keys ...string) *redis.IntCmd {
		require.Equal(t, []string{"login:fail:a@b.c"}, keys)
		return redis.NewIntResult(1, nil)
	}
	require.NoError(t, th.Reset(context.Background(), "a@b.c"))
}
