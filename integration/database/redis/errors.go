package redis

import "errors"

var (
	ErrEmptyConnectionURL   = errors.New("redis: REDIS_URL is empty")
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")
	ErrNotReady             = errors.New("redis: server not ready after retries")
	ErrHealthcheckFailed    = errors.New("redis: healthcheck failed")
)
