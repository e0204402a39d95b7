package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Connect when REDIS_URL is unset.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrFailedToParseRedisConnString wraps URL parsing failures.
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection URL")
	// ErrRedisNotReady is returned once every connection attempt has failed.
	ErrRedisNotReady = errors.New("redis: server not ready after retries")
	ErrNilClient     = errors.New("redis: nil client")

	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
