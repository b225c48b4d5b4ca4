package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache used by repositories for data that is
// read-only on the hot path, e.g. tariff bands at billing time.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Get(ctx context.Context, key string) (interface{}, bool)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string)
}

// UnmarshalValue attempts to convert a cached value to the requested type.
func UnmarshalValue[T any](value interface{}) (*T, bool) {
	if value == nil {
		return nil, false
	}
	if typed, ok := value.(*T); ok {
		return typed, true
	}
	return nil, false
}
