package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisClient 在 Cache 之外多要求 Ping，連線建立時先確認 redis 可用。
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 供測試替換成假 client。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 建立登入節流計數器使用的 redis 連線。
// *redis.Client 本身即滿足 Cache；Ping 失敗視為啟動錯誤。
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
