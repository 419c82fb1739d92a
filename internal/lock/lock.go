package lock

import (
	"context"
	"time"
)

// SlotLocker serializes concurrent booking attempts for the same slot
// ahead of the authoritative database transaction.
type SlotLocker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Noop always acquires. Used when no Redis is configured; the database
// transaction remains the authoritative guard.
type Noop struct{}

func (Noop) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (Noop) Unlock(ctx context.Context, key string) error {
	return nil
}
