package domain

import "errors"

var (
	// ErrProductNotFound is returned when the storefront has no product for a handle
	ErrProductNotFound = errors.New("product not found on storefront")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrStorefrontAPIFailure is returned when a storefront API request fails
	ErrStorefrontAPIFailure = errors.New("storefront API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
