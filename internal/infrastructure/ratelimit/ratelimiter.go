package ratelimit

import "time"

type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter throttles admin API clients by an opaque key, usually the
// client IP.
type RateLimiter interface {
	Allow(key string, limits Limits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// NoopRateLimiter allows everything. Used when Redis is not configured.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (NoopRateLimiter) Allow(string, Limits) (bool, error) {
	return true, nil
}

func (NoopRateLimiter) GetRemaining(string, time.Duration) (int64, error) {
	return 0, nil
}

func (NoopRateLimiter) Reset(string) error {
	return nil
}
