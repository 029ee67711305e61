package sequencer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Job is a unit of work run on a key's lane
type Job func()

const (
	jobPending int32 = iota
	jobStarted
	jobAbandoned
)

// Sequencer runs jobs one at a time per key, in submission order.
// Jobs for different keys run concurrently. A lane's goroutine exits
// once its queue drains and is restarted by the next submission.
type Sequencer struct {
	mu     sync.Mutex
	lanes  map[string]*lane
	logger *zap.Logger
}

type lane struct {
	mu      sync.Mutex
	jobs    []Job
	running bool
}

// Config for the sequencer
type Config struct {
	Logger *zap.Logger
}

// New creates a new sequencer
func New(cfg *Config) *Sequencer {
	logger := zap.NewNop()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &Sequencer{
		lanes:  make(map[string]*lane),
		logger: logger,
	}
}

// Submit queues job on key's lane and returns a channel closed once it has run.
// It never blocks, so it is safe to call from inside another job.
func (s *Sequencer) Submit(key string, job Job) <-chan struct{} {
	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("job panicked",
					zap.String("key", key),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
			}
		}()
		job()
	}

	l := s.lane(key)
	l.mu.Lock()
	l.jobs = append(l.jobs, wrapped)
	if !l.running {
		l.running = true
		go l.drain()
	}
	l.mu.Unlock()

	return done
}

// Do queues job and waits for it to finish. If ctx ends before the job
// starts, the job is dropped and ctx.Err() is returned. Once started it is
// waited for regardless of ctx. Calling Do from a job on the same key
// deadlocks; use Submit there.
func (s *Sequencer) Do(ctx context.Context, key string, job Job) error {
	var state atomic.Int32
	done := s.Submit(key, func() {
		if !state.CompareAndSwap(jobPending, jobStarted) {
			return
		}
		job()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		if state.CompareAndSwap(jobPending, jobAbandoned) {
			return ctx.Err()
		}
		<-done
		return nil
	}
}

func (s *Sequencer) lane(key string) *lane {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lanes[key]
	if !ok {
		l = &lane{}
		s.lanes[key] = l
	}
	return l
}

func (l *lane) drain() {
	for {
		l.mu.Lock()
		if len(l.jobs) == 0 {
			l.running = false
			l.mu.Unlock()
			return
		}
		job := l.jobs[0]
		l.jobs[0] = nil
		l.jobs = l.jobs[1:]
		l.mu.Unlock()

		job()
	}
}
