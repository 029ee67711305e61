package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimitError is returned by callers that reject a rate-limited action
type LimitError string

func (e LimitError) Error() string {
	return string(e)
}

// ErrRateLimited means the key has no token left
const ErrRateLimited LimitError = "rate limit exceeded"

// Config for the keyed limiter
type Config struct {
	// Every is the interval between refills of one token
	Every time.Duration

	// Burst is the bucket size per key
	Burst int
}

// Keyed hands out one token bucket per key (usually a user id)
type Keyed struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// New creates a keyed limiter. A zero Every disables limiting.
func New(cfg *Config) *Keyed {
	limit := rate.Inf
	burst := 1
	if cfg != nil {
		if cfg.Every > 0 {
			limit = rate.Every(cfg.Every)
		}
		if cfg.Burst > 0 {
			burst = cfg.Burst
		}
	}

	return &Keyed{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether key may act now, consuming a token if so
func (k *Keyed) Allow(key string) bool {
	return k.limiter(key).Allow()
}

// Delay returns how long key has to wait for its next token without consuming it
func (k *Keyed) Delay(key string) time.Duration {
	r := k.limiter(key).Reserve()
	defer r.Cancel()
	return r.Delay()
}

func (k *Keyed) limiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.limiters[key]
	if !ok {
		l = rate.NewLimiter(k.limit, k.burst)
		k.limiters[key] = l
	}
	return l
}
