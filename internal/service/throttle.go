// File: internal/service/throttle.go
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"fitlog/internal/cache"

	"github.com/redis/go-redis/v9"
)

const (
	loginFailureLimit  = 5
	loginFailureWindow = 15 * time.Minute
)

// LoginThrottle 以 redis 計數器限制同一 Email 的連續登入失敗次數。
type LoginThrottle struct {
	cache  cache.Cache
	limit  int64
	window time.Duration
}

func NewLoginThrottle(c cache.Cache) *LoginThrottle {
	return &LoginThrottle{cache: c, limit: loginFailureLimit, window: loginFailureWindow}
}

func (t *LoginThrottle) key(email string) string {
	return "login:fail:" + strings.ToLower(email)
}

// Blocked 回報該 Email 是否已達失敗上限。
func (t *LoginThrottle) Blocked(ctx context.Context, email string) (bool, error) {
	val, err := t.cache.Get(ctx, t.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, err
	}
	return n >= t.limit, nil
}

// RecordFailure 記一次失敗，首次失敗時設定計數器過期時間。
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	n, err := t.cache.Incr(ctx, t.key(email)).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return t.cache.Expire(ctx, t.key(email), t.window).Err()
	}
	return nil
}

// Reset 登入成功後清除計數。
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.cache.Del(ctx, t.key(email)).Err()
}
