package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/sora/internal/common/random Picker

// Picker chooses a uniformly random index
type Picker interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source is a goroutine-safe Picker backed by math/rand
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new picker
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random index in [0, n); n below 1 yields 0
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}
