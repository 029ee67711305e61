package player

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/KirkDiggler/sora/internal/ui"
	"go.uber.org/zap"
)

// HandleEvent queues the event on its guild's lane. It never blocks, so
// the engine may call it from inside an operation on the same guild.
func (s *service) HandleEvent(evt engine.Event) {
	if evt.GuildID == "" {
		return
	}

	s.seq.Submit(evt.GuildID, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.eventTimeout)
		defer cancel()
		s.dispatch(ctx, evt)
	})
}

func (s *service) dispatch(ctx context.Context, evt engine.Event) {
	sess, ok := s.registry.Get(evt.GuildID)
	if !ok {
		s.logger.Debug("event without session",
			zap.String("guild_id", evt.GuildID),
			zap.String("event", string(evt.Type)))
		return
	}

	switch evt.Type {
	case engine.EventTrackStart:
		s.onTrackStart(ctx, sess, evt.Track)
	case engine.EventTrackAdd:
		s.onTrackAdd(ctx, sess, evt)
	case engine.EventTrackEnd:
		s.onTrackEnd(ctx, sess, evt)
	case engine.EventQueueEnd:
		s.onQueueEnd(ctx, sess)
	case engine.EventEmpty:
		s.onEmpty(ctx, sess)
	case engine.EventError:
		s.onError(ctx, sess, evt.Err)
	case engine.EventPlayerDestroy:
		s.onPlayerDestroy(ctx, sess)
	}
}

func (s *service) onTrackStart(ctx context.Context, sess *Session, track *models.Track) {
	if track == nil {
		return
	}

	// Reset per-track state
	sess.Paused = false
	sess.CurrentTimeSeconds = 0
	if sess.AutoPlay == nil {
		sess.SetAutoPlay(true)
	}
	sess.CurrentTrack = track
	sess.reconnectAttempted = false
	sess.autoplayFailed = false

	sess.CorrectedDurationSeconds = nil
	if seconds, ok := ui.TrackSeconds(track); ok {
		sess.CorrectedDurationSeconds = &seconds
	}

	s.voiceStatus.Set(ctx, s.voiceChannel(sess), ui.VoiceStatusLabel(track))

	// Suggestions are computed once so the menu indices match the cache
	sess.CurrentSuggestions = s.suggestions.Similar(ctx, track)

	if err := s.sendControls(ctx, sess, s.nowPlayingEmbed(sess), s.surface(sess)); err != nil {
		s.logger.Warn("failed to render now playing", zap.String("guild_id", sess.GuildID), zap.Error(err))
	}

	if sess.DurationKnown() {
		s.startTicker(sess)
	} else {
		s.stopTicker(sess)
	}
}

func (s *service) onTrackAdd(ctx context.Context, sess *Session, evt engine.Event) {
	if evt.Track == nil {
		return
	}
	s.transient(ctx, sess.ChannelID, ui.TrackAdded(evt.Track, evt.Remaining, s.clock.Now()), addedNoticeTTL)
}

func (s *service) onTrackEnd(ctx context.Context, sess *Session, evt engine.Event) {
	s.stopTicker(sess)
	sess.CurrentTimeSeconds = 0

	p := s.engine.Player(sess.GuildID)
	if p == nil {
		return
	}

	switch {
	case sess.LoopCurrentTrack() && evt.Track != nil && evt.Track.URL != "":
		if _, err := p.Play(ctx, evt.Track.URL, evt.Track.RequesterID); err != nil {
			s.logger.Warn("failed to replay track", zap.String("guild_id", sess.GuildID), zap.Error(err))
			s.afterFailedReplay(ctx, sess, p, evt)
		}

	case sess.LoopQueue() && evt.Remaining == 0:
		// the engine re-inserts finished tracks itself

	case evt.Remaining == 0 && sess.AutoPlayEnabled():
		if !s.autoAddSimilar(ctx, sess, p, evt.Track) {
			sess.autoplayFailed = true
		}
	}
}

// afterFailedReplay moves on when a repeat-track replay could not be queued
func (s *service) afterFailedReplay(ctx context.Context, sess *Session, p engine.Player, evt engine.Event) {
	if evt.Remaining > 0 {
		if err := p.Skip(ctx); err != nil {
			s.logger.Warn("failed to advance after replay failure", zap.String("guild_id", sess.GuildID), zap.Error(err))
		}
		return
	}

	s.voiceStatus.Clear(ctx, s.voiceChannel(sess))
	if sess.AutoPlayEnabled() && s.autoAddSimilar(ctx, sess, p, evt.Track) {
		return
	}
	s.renderIdle(ctx, sess)
}

func (s *service) onQueueEnd(ctx context.Context, sess *Session) {
	p := s.engine.Player(sess.GuildID)
	if p != nil && p.Current() != nil {
		// something was queued in the meantime
		return
	}

	s.stopTicker(sess)
	s.voiceStatus.Clear(ctx, s.voiceChannel(sess))

	if p != nil && sess.AutoPlayEnabled() && !sess.autoplayFailed {
		if s.autoAddSimilar(ctx, sess, p, sess.CurrentTrack) {
			return
		}
	}

	s.renderIdle(ctx, sess)
}

func (s *service) onEmpty(ctx context.Context, sess *Session) {
	s.stopTicker(sess)
	s.voiceStatus.Clear(ctx, s.voiceChannel(sess))
	s.renderIdle(ctx, sess)
}

func (s *service) onPlayerDestroy(ctx context.Context, sess *Session) {
	s.stopTicker(sess)
	s.voiceStatus.Clear(ctx, sess.VoiceChannelID)
	s.renderIdle(ctx, sess)
	s.registry.Delete(sess.GuildID)
}

func (s *service) onError(ctx context.Context, sess *Session, err error) {
	log := s.logger.With(zap.String("guild_id", sess.GuildID))
	log.Error("player error", zap.Error(err))

	s.transient(ctx, sess.ChannelID,
		ui.Notice("❌ Playback error", errorText(err), ui.ColorError, s.clock.Now()),
		errorNoticeTTL)

	p := s.engine.Player(sess.GuildID)
	if p == nil || p.Connected() {
		return
	}

	channelID, ok := s.locator.BotVoiceChannel(sess.GuildID)
	if !ok {
		return
	}

	if sess.reconnectAttempted {
		log.Warn("connection lost again, ending session")
		s.terminate(ctx, sess, p)
		return
	}
	sess.reconnectAttempted = true

	// One reconnect and replay
	if err := p.Connect(ctx, channelID); err != nil {
		log.Warn("reconnect failed", zap.Error(err))
		s.terminate(ctx, sess, p)
		return
	}

	// The engine still holds the interrupted track unless it went idle
	var replayErr error
	if p.Current() != nil {
		replayErr = p.Restart(ctx)
	} else if track := sess.CurrentTrack; track != nil && track.URL != "" {
		_, replayErr = p.Play(ctx, track.URL, track.RequesterID)
	}
	if replayErr != nil {
		log.Warn("replay after reconnect failed", zap.Error(replayErr))
		s.terminate(ctx, sess, p)
		return
	}

	log.Info("reconnected", zap.String("channel_id", channelID))
}

// terminate ends the session after an unrecoverable failure
func (s *service) terminate(ctx context.Context, sess *Session, p engine.Player) {
	s.stopTicker(sess)
	s.renderIdle(ctx, sess)
	s.voiceStatus.Clear(ctx, sess.VoiceChannelID)

	if err := p.Stop(ctx); err != nil {
		s.logger.Debug("stop during termination failed", zap.String("guild_id", sess.GuildID), zap.Error(err))
	}
	s.destroyQuietly(ctx, p)
	s.registry.Delete(sess.GuildID)
}

// autoAddSimilar queues one random suggestion for base and reports whether
// it was added
func (s *service) autoAddSimilar(ctx context.Context, sess *Session, p engine.Player, base *models.Track) bool {
	if base == nil {
		return false
	}

	candidates := s.suggestions.Similar(ctx, base)
	if len(candidates) == 0 {
		return false
	}

	pick := candidates[s.picker.Intn(len(candidates))]
	added, err := s.addNext(ctx, p, pick.URL, models.AutoplayRequester)
	if err != nil {
		s.logger.Info("autoplay could not add a track", zap.String("guild_id", sess.GuildID), zap.Error(err))
		return false
	}

	s.transient(ctx, sess.ChannelID, ui.AutoAdded(added, s.clock.Now()), autoplayNoticeTTL)
	return true
}

// addNext is the shared path for modal, menu and autoplay insertions
func (s *service) addNext(ctx context.Context, p engine.Player, url, requesterID string) (*models.Track, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	track, err := p.Play(ctx, url, requesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAddFailed, err)
	}
	return track, nil
}
