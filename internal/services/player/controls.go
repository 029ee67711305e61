package player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/ui"
	"go.uber.org/zap"
)

// TogglePause pauses or resumes, flipping the session flag only once the
// engine confirmed
func (s *service) TogglePause(ctx context.Context, input *GuildInput) (*TogglePauseOutput, error) {
	var output *TogglePauseOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		if sess.Paused {
			err = engine.Resume(ctx, p)
		} else {
			err = engine.Pause(ctx, p)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPauseFailed, err)
		}

		sess.Paused = !sess.Paused
		s.refreshSurface(ctx, sess)

		output = &TogglePauseOutput{Paused: sess.Paused}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Skip moves to the next queued track. With an empty queue it tries one
// autoplay pick, and stops when that is not possible either.
func (s *service) Skip(ctx context.Context, input *GuildInput) (*SkipOutput, error) {
	var output *SkipOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		s.stopTicker(sess)

		// Queue has a next track
		if queue := p.Queue(); len(queue) > 0 {
			sess.Paused = false
			if err := p.Skip(ctx); err != nil {
				return fmt.Errorf("%w: %v", ErrSkipFailed, err)
			}
			output = &SkipOutput{Next: queue[0]}
			return nil
		}

		// Try autoplay
		if sess.AutoPlayEnabled() {
			base := p.Current()
			if base == nil {
				base = sess.CurrentTrack
			}
			wasPlaying := p.Current() != nil

			if s.autoAddSimilar(ctx, sess, p, base) {
				sess.Paused = false
				if wasPlaying {
					if err := p.Skip(ctx); err != nil {
						return fmt.Errorf("%w: %v", ErrSkipFailed, err)
					}
				}
				output = &SkipOutput{AutoPlayed: true}
				return nil
			}
		}

		// Nothing can follow
		if err := p.Stop(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrStopFailed, err)
		}
		s.voiceStatus.Clear(ctx, s.voiceChannel(sess))
		s.renderIdle(ctx, sess)

		output = &SkipOutput{Stopped: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Previous replays the last finished track
func (s *service) Previous(ctx context.Context, input *GuildInput) error {
	return s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		if len(p.History()) == 0 {
			return ErrNoHistory
		}

		s.stopTicker(sess)
		sess.Paused = false

		if err := p.Previous(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrSkipFailed, err)
		}
		return nil
	})
}

// CycleRepeat advances OFF -> TRACK -> QUEUE -> OFF
func (s *service) CycleRepeat(ctx context.Context, input *GuildInput) (*CycleRepeatOutput, error) {
	var output *CycleRepeatOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		sess.RepeatMode = sess.RepeatMode.Next()
		p.SetRepeatMode(sess.RepeatMode)
		s.refreshSurface(ctx, sess)

		output = &CycleRepeatOutput{Mode: sess.RepeatMode}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ToggleAutoPlay flips autoplay
func (s *service) ToggleAutoPlay(ctx context.Context, input *GuildInput) (*ToggleAutoPlayOutput, error) {
	var output *ToggleAutoPlayOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, _, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		sess.SetAutoPlay(!sess.AutoPlayEnabled())
		s.refreshSurface(ctx, sess)

		output = &ToggleAutoPlayOutput{Enabled: sess.AutoPlayEnabled()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// AdjustVolume applies delta to the engine volume, clamped to [0, 100]
func (s *service) AdjustVolume(ctx context.Context, input *AdjustVolumeInput) (*AdjustVolumeOutput, error) {
	var output *AdjustVolumeOutput
	err := s.run(ctx, input.GuildID, func() error {
		_, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		volume := clampVolume(p.Volume() + input.Delta)
		if err := p.SetVolume(ctx, volume); err != nil {
			return fmt.Errorf("%w: %v", ErrVolumeFailed, err)
		}

		output = &AdjustVolumeOutput{Volume: volume}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Stop halts playback and shows the idle display, keeping the session
func (s *service) Stop(ctx context.Context, input *GuildInput) error {
	return s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		s.stopTicker(sess)

		if err := p.Stop(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrStopFailed, err)
		}

		s.voiceStatus.Clear(ctx, s.voiceChannel(sess))
		s.renderIdle(ctx, sess)
		return nil
	})
}

// Leave stops playback, disconnects and removes the session
func (s *service) Leave(ctx context.Context, input *GuildInput) error {
	return s.run(ctx, input.GuildID, func() error {
		sess, hasSession := s.registry.Get(input.GuildID)
		p := s.engine.Player(input.GuildID)
		if !hasSession && p == nil {
			return ErrNoSession
		}

		if hasSession {
			s.stopTicker(sess)
			s.voiceStatus.Clear(ctx, s.voiceChannel(sess))
			s.renderIdle(ctx, sess)
			s.registry.Delete(input.GuildID)
		}

		if p != nil {
			if err := p.Stop(ctx); err != nil {
				s.logger.Debug("stop before leave failed", zap.String("guild_id", input.GuildID), zap.Error(err))
			}
			if err := p.Destroy(ctx); err != nil {
				return fmt.Errorf("%w: %v", ErrStopFailed, err)
			}
		}

		s.logger.Info("session closed", zap.String("guild_id", input.GuildID))
		return nil
	})
}

// GetQueue lists up to Limit upcoming tracks
func (s *service) GetQueue(ctx context.Context, input *GetQueueInput) (*GetQueueOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = QueueLimitButton
	}

	var output *GetQueueOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		queue := p.Queue()
		upcoming := queue
		if len(upcoming) > limit {
			upcoming = upcoming[:limit]
		}

		output = &GetQueueOutput{
			Current:      p.Current(),
			Upcoming:     upcoming,
			Remaining:    len(queue) - len(upcoming),
			AutoPlayHint: len(queue) == 0 && sess.AutoPlayEnabled(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// SelectSuggestion handles a choice from the suggestion menu. Indices are
// resolved against the cached suggestions and rejected when out of range.
func (s *service) SelectSuggestion(ctx context.Context, input *SelectSuggestionInput) (*SelectSuggestionOutput, error) {
	var output *SelectSuggestionOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		switch input.Value {
		case ui.OptionRandomNext:
			sess.SetAutoPlay(true)
			s.refreshSurface(ctx, sess)
			output = &SelectSuggestionOutput{Action: SelectActionAutoPlay}
			return nil

		case ui.OptionNoSuggestions:
			output = &SelectSuggestionOutput{Action: SelectActionNoSuggestions}
			return nil
		}

		index, ok := ui.ParseSuggestionValue(input.Value)
		if !ok {
			return ErrUnknownSelection
		}

		if index < 0 || index >= len(sess.CurrentSuggestions) {
			return ErrStaleSelection
		}

		pick := sess.CurrentSuggestions[index]
		track, err := s.addNext(ctx, p, pick.URL, input.UserID)
		if err != nil {
			return err
		}

		s.refreshNowPlaying(ctx, sess)

		output = &SelectSuggestionOutput{Action: SelectActionAdded, Track: track}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// AddNext queues the URL submitted through the add-next form
func (s *service) AddNext(ctx context.Context, input *AddNextInput) (*AddNextOutput, error) {
	url := strings.TrimSpace(input.URL)

	var output *AddNextOutput
	err := s.run(ctx, input.GuildID, func() error {
		sess, p, err := s.lookup(input.GuildID)
		if err != nil {
			return err
		}

		if url == "" {
			return ErrEmptyURL
		}

		track, err := s.addNext(ctx, p, url, input.UserID)
		if err != nil {
			return err
		}

		s.refreshNowPlaying(ctx, sess)
		s.transient(ctx, sess.ChannelID,
			ui.TrackAdded(track, len(p.Queue()), s.clock.Now()),
			addedNoticeTTL)

		output = &AddNextOutput{Track: track}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// IsUserError reports whether err is caused by the request rather than a failure
func IsUserError(err error) bool {
	for _, target := range []PlayerError{
		ErrNoSession, ErrNotInVoice, ErrEmptyQuery, ErrEmptyURL,
		ErrNoHistory, ErrStaleSelection, ErrUnknownSelection,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

