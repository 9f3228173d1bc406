package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// StorefrontClient defines the interface for resolving product records
// from the commerce platform's public JSON endpoints
type StorefrontClient interface {
	GetProduct(ctx context.Context, handle string) (*Product, error)
}
