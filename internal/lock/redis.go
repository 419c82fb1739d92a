package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisLock struct {
	client *redis.Client
}

func NewRedisLock(addr string) (*RedisLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("lock: redis ping: %w", err)
	}

	return &RedisLock{client: client}, nil
}

func (r *RedisLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, "lock:"+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock: acquire %s: %w", key, err)
	}
	return ok, nil
}

func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("lock: release %s: %w", key, err)
	}
	return nil
}

func (r *RedisLock) Close() error {
	return r.client.Close()
}
