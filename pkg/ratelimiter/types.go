package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum tokens (bucket capacity)
	Remaining int       // Tokens remaining; negative when the request was denied
	ResetAt   time.Time // Time when tokens will be refilled
}

// Allowed returns whether the request is allowed based on remaining tokens.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines the token bucket configuration.
// The defaults allow a burst of 5 and one extra attempt every 12 seconds.
type Config struct {
	// Capacity is the maximum tokens the bucket can hold (burst limit).
	Capacity int `env:"CAPACITY" envDefault:"5"`
	// RefillRate is the number of tokens added per refill interval.
	RefillRate int `env:"REFILL_RATE" envDefault:"1"`
	// RefillInterval is how often tokens are added.
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"12s"`
}

// idleTTL is how long an untouched bucket needs to refill completely.
func (c Config) idleTTL() time.Duration {
	intervals := (c.Capacity + c.RefillRate - 1) / c.RefillRate
	return time.Duration(intervals+1) * c.RefillInterval
}
