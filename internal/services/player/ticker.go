package player

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ticker is the disposable handle of a session's progress ticker
type ticker struct {
	stop    chan struct{}
	once    sync.Once
	onStop  func()
	elapsed time.Duration
}

func (t *ticker) Stop() {
	t.once.Do(func() {
		close(t.stop)
		if t.onStop != nil {
			t.onStop()
		}
	})
}

// startTicker replaces the session's ticker. Ticks are posted to the
// guild's lane and carry their handle so stale ticks are dropped.
func (s *service) startTicker(sess *Session) {
	s.stopTicker(sess)

	t := &ticker{
		stop:   make(chan struct{}),
		onStop: func() { s.liveTickers.Add(-1) },
	}
	s.liveTickers.Add(1)
	sess.ticker = t

	guildID := sess.GuildID
	go func() {
		tk := time.NewTicker(s.tickInterval)
		defer tk.Stop()

		for {
			select {
			case <-t.stop:
				return
			case <-tk.C:
				s.seq.Submit(guildID, func() {
					ctx, cancel := context.WithTimeout(context.Background(), s.eventTimeout)
					defer cancel()
					s.tick(ctx, guildID, t)
				})
			}
		}
	}()
}

func (s *service) stopTicker(sess *Session) {
	if sess.ticker != nil {
		sess.ticker.Stop()
		sess.ticker = nil
	}
}

// tick advances the progress counter and periodically redraws the embed
func (s *service) tick(ctx context.Context, guildID string, t *ticker) {
	sess, ok := s.registry.Get(guildID)
	if !ok || sess.ticker != t {
		return
	}

	if sess.Paused || sess.Controls == nil {
		return
	}

	sess.CurrentTimeSeconds += int64(s.tickInterval / time.Second)
	if sess.CorrectedDurationSeconds != nil && sess.CurrentTimeSeconds > *sess.CorrectedDurationSeconds {
		sess.CurrentTimeSeconds = *sess.CorrectedDurationSeconds
	}

	t.elapsed += s.tickInterval
	if t.elapsed < s.refreshInterval {
		return
	}
	t.elapsed = 0

	if err := s.editControls(ctx, sess, s.nowPlayingEmbed(sess), sess.Controls.Components); err != nil {
		s.logger.Debug("progress refresh failed", zap.String("guild_id", guildID), zap.Error(err))
	}
}
