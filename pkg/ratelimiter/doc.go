// Package ratelimiter provides token bucket rate limiting with in-memory and
// Redis storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is denied without consuming anything.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(limiter, clientip.GetIP)).Post("/", submit)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset, plus Retry-After on denial. Requests with an empty key
// are not limited.
//
// MemoryStore suits a single instance. RedisStore shares buckets between
// instances; its refill and consume step runs as one Lua script, so it is
// atomic per key.
package ratelimiter
