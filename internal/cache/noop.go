package cache

import (
	"context"
	"time"
)

// NoopBackend is the backend used when no cache store is reachable at
// startup: every read misses and writes vanish, so all lookups go
// straight to the gateway.
type NoopBackend struct{}

// NewNoopBackend creates a new NoopBackend instance
func NewNoopBackend() *NoopBackend { return &NoopBackend{} }

func (*NoopBackend) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (*NoopBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
