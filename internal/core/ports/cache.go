package ports

import (
	"context"
	"time"
)

// Cache is a get/set/delete key-value cache with TTL, used cache-aside by
// the post service. A miss is (found=false, nil error); errors are real
// backend failures and callers treat them as misses.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (found bool, err error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
