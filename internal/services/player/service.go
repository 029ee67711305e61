package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/sora/internal/common/clock"
	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/KirkDiggler/sora/internal/common/random"
	"github.com/KirkDiggler/sora/internal/common/sequencer"
	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/services/suggestion"
	"github.com/KirkDiggler/sora/internal/services/voicestatus"
	"github.com/KirkDiggler/sora/internal/ui"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	engine      engine.Engine
	registry    *Registry
	messenger   Messenger
	voiceStatus voicestatus.Service
	locator     VoiceLocator
	suggestions suggestion.Provider
	picker      random.Picker
	clock       clock.Clock
	seq         *sequencer.Sequencer
	logger      *zap.Logger
	afterFunc   AfterFunc
	reportURL   string

	tickInterval    time.Duration
	refreshInterval time.Duration
	eventTimeout    time.Duration

	liveTickers atomic.Int64
}

// New creates a new session controller
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.VoiceStatus == nil {
		return nil, ErrNilVoiceStatus
	}

	if cfg.VoiceLocator == nil {
		return nil, ErrNilVoiceLocator
	}

	if cfg.Suggestions == nil {
		return nil, ErrNilSuggestions
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Sequencer == nil {
		return nil, ErrNilSequencer
	}

	svc := &service{
		engine:          cfg.Engine,
		registry:        cfg.Registry,
		messenger:       cfg.Messenger,
		voiceStatus:     cfg.VoiceStatus,
		locator:         cfg.VoiceLocator,
		suggestions:     cfg.Suggestions,
		picker:          cfg.Picker,
		clock:           cfg.Clock,
		seq:             cfg.Sequencer,
		logger:          logger.OrNop(cfg.Logger),
		afterFunc:       cfg.AfterFunc,
		reportURL:       cfg.ReportURL,
		tickInterval:    cfg.TickInterval,
		refreshInterval: cfg.RefreshInterval,
		eventTimeout:    cfg.EventTimeout,
	}

	if svc.afterFunc == nil {
		svc.afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if svc.tickInterval <= 0 {
		svc.tickInterval = DefaultTickInterval
	}
	if svc.refreshInterval <= 0 {
		svc.refreshInterval = DefaultRefreshInterval
	}
	if svc.eventTimeout <= 0 {
		svc.eventTimeout = DefaultEventTimeout
	}

	return svc, nil
}

// Play resolves the query on the guild's player, creating the session
// and connecting to voice first when needed
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return nil, ErrEmptyQuery
	}

	if input.VoiceChannelID == "" {
		return nil, ErrNotInVoice
	}

	var output *PlayOutput
	err := s.run(ctx, input.GuildID, func() error {
		out, err := s.play(ctx, input)
		output = out
		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (s *service) play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	log := s.logger.With(zap.String("guild_id", input.GuildID))

	sess, exists := s.registry.Get(input.GuildID)

	// Get or create the player
	p := s.engine.Player(input.GuildID)
	createdPlayer := false
	if p == nil {
		created, err := s.engine.Create(ctx, input.GuildID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnectFailed, err)
		}
		p = created
		createdPlayer = true
	}

	// Connect if needed
	if !p.Connected() {
		if err := p.Connect(ctx, input.VoiceChannelID); err != nil {
			if createdPlayer {
				s.destroyQuietly(ctx, p)
			}
			return nil, fmt.Errorf("%w: %v", ErrConnectFailed, err)
		}
	}

	if !exists {
		sess = NewSession(input.GuildID, input.TextChannelID, input.VoiceChannelID, input.RequesterID)
		p.SetRepeatMode(sess.RepeatMode)
	}

	// Resolve and queue
	wasPlaying := p.Current() != nil
	track, err := p.Play(ctx, strings.TrimSpace(input.Query), input.RequesterID)
	if err != nil {
		log.Info("play request failed", zap.String("query", input.Query), zap.Error(err))
		if !exists && createdPlayer {
			s.destroyQuietly(ctx, p)
		}
		return nil, fmt.Errorf("%w: %v", ErrNoResults, err)
	}

	if exists {
		sess.RequesterID = input.RequesterID
	} else {
		s.registry.Put(sess)
		log.Info("session created", zap.String("channel_id", input.TextChannelID))
	}

	return &PlayOutput{
		Track:   track,
		Queued:  wasPlaying,
		Created: !exists,
	}, nil
}

// HasSession reports whether the guild has a live session
func (s *service) HasSession(guildID string) bool {
	_, ok := s.registry.Get(guildID)
	return ok
}

// Close stops every progress ticker
func (s *service) Close() {
	for _, sess := range s.registry.All() {
		done := s.seq.Submit(sess.GuildID, func() {
			s.stopTicker(sess)
		})
		<-done
	}
}

// run executes fn on the guild's lane and waits for it
func (s *service) run(ctx context.Context, guildID string, fn func() error) error {
	var (
		err      error
		finished bool
	)

	doErr := s.seq.Do(ctx, guildID, func() {
		err = fn()
		finished = true
	})
	if doErr != nil {
		return doErr
	}

	if !finished {
		return ErrInternal
	}

	return err
}

// lookup returns the session and its player for an interaction
func (s *service) lookup(guildID string) (*Session, engine.Player, error) {
	sess, ok := s.registry.Get(guildID)
	if !ok {
		return nil, nil, ErrNoSession
	}

	p := s.engine.Player(guildID)
	if p == nil {
		return nil, nil, ErrNoSession
	}

	return sess, p, nil
}

func (s *service) destroyQuietly(ctx context.Context, p engine.Player) {
	if err := p.Destroy(ctx); err != nil {
		s.logger.Warn("failed to destroy player", zap.String("guild_id", p.GuildID()), zap.Error(err))
	}
}

// voiceChannel is the channel whose status label we maintain
func (s *service) voiceChannel(sess *Session) string {
	if p := s.engine.Player(sess.GuildID); p != nil && p.ChannelID() != "" {
		return p.ChannelID()
	}
	return sess.VoiceChannelID
}

// Rendering

func (s *service) nowPlayingEmbed(sess *Session) *discordgo.MessageEmbed {
	queueLength := 0
	if p := s.engine.Player(sess.GuildID); p != nil {
		queueLength = len(p.Queue())
	}

	requester := sess.RequesterID
	if sess.CurrentTrack != nil && sess.CurrentTrack.RequesterID != "" {
		requester = sess.CurrentTrack.RequesterID
	}

	view := ui.NowPlayingView{
		Track:          sess.CurrentTrack,
		RequesterID:    requester,
		CurrentSeconds: sess.CurrentTimeSeconds,
		QueueLength:    queueLength,
		Timestamp:      s.clock.Now(),
	}
	if sess.CorrectedDurationSeconds != nil {
		view.DurationSeconds = *sess.CorrectedDurationSeconds
		view.DurationKnown = true
	}

	return ui.NowPlaying(view)
}

func (s *service) surface(sess *Session) []discordgo.MessageComponent {
	return ui.Surface(sess.Paused, sess.RepeatMode, sess.AutoPlayEnabled(), sess.CurrentSuggestions)
}

// sendControls posts a new controls message and disables the one it replaces
func (s *service) sendControls(ctx context.Context, sess *Session, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	msg, err := s.messenger.Send(ctx, sess.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("failed to send controls: %w", err)
	}

	previous := sess.Controls
	sess.LastControls = previous
	sess.Controls = &MessageRef{
		ChannelID:  sess.ChannelID,
		MessageID:  msg.ID,
		Components: components,
	}

	if previous != nil && previous.MessageID != msg.ID {
		s.disableControls(ctx, previous)
	}

	return nil
}

// editControls updates the controls message in place, sending a new one
// when there is none or the edit is rejected. A nil embed keeps the
// current one.
func (s *service) editControls(ctx context.Context, sess *Session, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	if sess.Controls == nil {
		if embed == nil {
			return nil
		}
		return s.sendControls(ctx, sess, embed, components)
	}

	edit := &discordgo.MessageEdit{
		Channel:    sess.Controls.ChannelID,
		ID:         sess.Controls.MessageID,
		Components: &components,
	}
	if embed != nil {
		edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	}

	if _, err := s.messenger.Edit(ctx, edit); err != nil {
		s.logger.Debug("controls edit failed, sending a new message",
			zap.String("guild_id", sess.GuildID), zap.Error(err))
		if embed == nil {
			embed = s.nowPlayingEmbed(sess)
		}
		return s.sendControls(ctx, sess, embed, components)
	}

	sess.Controls.Components = components
	return nil
}

// disableControls greys out a superseded controls message
func (s *service) disableControls(ctx context.Context, ref *MessageRef) {
	disabled := ui.DisableComponents(ref.Components)
	_, err := s.messenger.Edit(ctx, &discordgo.MessageEdit{
		Channel:    ref.ChannelID,
		ID:         ref.MessageID,
		Components: &disabled,
	})
	if err != nil {
		s.logger.Debug("failed to disable old controls", zap.String("message_id", ref.MessageID), zap.Error(err))
	}
}

// refreshSurface redraws only the controls
func (s *service) refreshSurface(ctx context.Context, sess *Session) {
	if sess.Controls == nil {
		return
	}
	if err := s.editControls(ctx, sess, nil, s.surface(sess)); err != nil {
		s.logger.Warn("failed to refresh controls", zap.String("guild_id", sess.GuildID), zap.Error(err))
	}
}

// refreshNowPlaying redraws the embed and controls
func (s *service) refreshNowPlaying(ctx context.Context, sess *Session) {
	if sess.CurrentTrack == nil {
		return
	}
	if err := s.editControls(ctx, sess, s.nowPlayingEmbed(sess), s.surface(sess)); err != nil {
		s.logger.Warn("failed to refresh now playing", zap.String("guild_id", sess.GuildID), zap.Error(err))
	}
}

// renderIdle swaps the controls message for the leave display
func (s *service) renderIdle(ctx context.Context, sess *Session) {
	if err := s.editControls(ctx, sess, ui.Leave(s.clock.Now()), ui.LeaveControls(s.reportURL)); err != nil {
		s.logger.Warn("failed to render idle display", zap.String("guild_id", sess.GuildID), zap.Error(err))
	}
}

// transient posts a notice and deletes it after ttl
func (s *service) transient(ctx context.Context, channelID string, embed *discordgo.MessageEmbed, ttl time.Duration) {
	msg, err := s.messenger.Send(ctx, channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		s.logger.Debug("failed to send notice", zap.String("channel_id", channelID), zap.Error(err))
		return
	}

	messageID := msg.ID
	s.afterFunc(ttl, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.eventTimeout)
		defer cancel()
		if err := s.messenger.Delete(ctx, channelID, messageID); err != nil {
			s.logger.Debug("failed to delete notice", zap.String("message_id", messageID), zap.Error(err))
		}
	})
}

func errorText(err error) string {
	var playerErr PlayerError
	if errors.As(err, &playerErr) {
		return playerErr.Error()
	}
	if err == nil {
		return "Something went wrong."
	}
	return err.Error()
}
