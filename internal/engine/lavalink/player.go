package lavalink

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"go.uber.org/zap"
)

type entry struct {
	track lavalink.Track
	model *models.Track
}

// player keeps the queue and history for one guild. The Lavalink node only
// knows the track that is playing right now.
type player struct {
	engine  *Engine
	guildID string
	remote  remotePlayer

	mu        sync.Mutex
	channelID string
	connected bool
	current   *entry
	queue     []*entry
	history   []*entry
	volume    int
	repeat    models.RepeatMode
	audience  bool
}

var (
	_ engine.Player         = (*player)(nil)
	_ engine.PausablePlayer = (*player)(nil)
)

func (p *player) GuildID() string {
	return p.guildID
}

func (p *player) Connect(ctx context.Context, channelID string) error {
	if err := p.engine.voice.ChannelVoiceJoinManual(p.guildID, channelID, false, true); err != nil {
		return fmt.Errorf("failed to join voice channel: %w", err)
	}

	p.mu.Lock()
	p.channelID = channelID
	p.connected = true
	p.audience = true
	p.mu.Unlock()
	return nil
}

func (p *player) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

func (p *player) ChannelID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channelID
}

// Play resolves query and queues the result. An idle player starts the
// first resolved track right away, ahead of anything already waiting.
func (p *player) Play(ctx context.Context, query, requesterID string) (*models.Track, error) {
	tracks, err := p.engine.load(ctx, identifierFor(query, p.engine.searchPrefix), true)
	if err != nil {
		return nil, err
	}

	entries := make([]*entry, 0, len(tracks))
	for _, t := range tracks {
		entries = append(entries, &entry{track: t, model: toModel(t, requesterID)})
	}

	p.mu.Lock()
	var start *entry
	added := entries
	if p.current == nil {
		start = entries[0]
		p.current = start
		p.queue = append(append([]*entry{}, entries[1:]...), p.queue...)
		added = nil
	} else {
		p.queue = append(p.queue, entries...)
	}
	remaining := len(p.queue)
	p.mu.Unlock()

	if start != nil {
		if err := p.remote.Update(ctx, lavalink.WithTrack(start.track)); err != nil {
			p.mu.Lock()
			if p.current == start {
				p.current = nil
			}
			p.mu.Unlock()
			return nil, fmt.Errorf("failed to start track: %w", err)
		}
	}

	for _, e := range added {
		p.engine.emit(engine.Event{
			Type:      engine.EventTrackAdd,
			GuildID:   p.guildID,
			Track:     e.model,
			Remaining: remaining,
		})
	}

	return entries[0].model, nil
}

func (p *player) Current() *models.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	return p.current.model
}

func (p *player) Queue() []*models.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return modelsOf(p.queue)
}

func (p *player) History() []*models.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return modelsOf(p.history)
}

// Skip replaces the current track with the head of the queue
func (p *player) Skip(ctx context.Context) error {
	p.mu.Lock()
	if len(p.queue) == 0 {
		p.mu.Unlock()
		return ErrQueueEmpty
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	if p.current != nil {
		p.history = append(p.history, p.current)
		if p.repeat.LoopsQueue() {
			p.queue = append(p.queue, p.current)
		}
	}
	p.current = next
	p.mu.Unlock()

	return p.start(ctx, next)
}

// Restart re-sends the current track to the node, e.g. after the voice
// connection was re-established
func (p *player) Restart(ctx context.Context) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return ErrIdle
	}
	return p.start(ctx, current)
}

// Previous replays the last finished track, pushing the current one back
// to the front of the queue.
func (p *player) Previous(ctx context.Context) error {
	p.mu.Lock()
	if len(p.history) == 0 {
		p.mu.Unlock()
		return ErrNoHistory
	}
	prev := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	if p.current != nil {
		p.queue = append([]*entry{p.current}, p.queue...)
	}
	p.current = prev
	p.mu.Unlock()

	return p.start(ctx, prev)
}

// Stop clears the queue and halts playback while staying connected
func (p *player) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.current != nil {
		p.history = append(p.history, p.current)
	}
	p.current = nil
	p.queue = nil
	p.mu.Unlock()

	if err := p.remote.Update(ctx, lavalink.WithNullTrack()); err != nil {
		return fmt.Errorf("failed to stop player: %w", err)
	}
	return nil
}

// Destroy tears down the node player and leaves the voice channel
func (p *player) Destroy(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.queue = nil
	p.history = nil
	p.connected = false
	p.mu.Unlock()

	p.engine.removePlayer(p.guildID)

	var firstErr error
	if err := p.remote.Destroy(ctx); err != nil {
		firstErr = fmt.Errorf("failed to destroy player: %w", err)
	}
	if err := p.engine.voice.ChannelVoiceJoinManual(p.guildID, "", false, true); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to leave voice channel: %w", err)
	}

	p.engine.emit(engine.Event{Type: engine.EventPlayerDestroy, GuildID: p.guildID})
	return firstErr
}

func (p *player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *player) SetVolume(ctx context.Context, volume int) error {
	if volume < 0 || volume > 100 {
		return ErrInvalidVolume
	}
	if err := p.remote.Update(ctx, lavalink.WithVolume(volume)); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	p.mu.Lock()
	p.volume = volume
	p.mu.Unlock()
	return nil
}

func (p *player) SetRepeatMode(mode models.RepeatMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.repeat = mode
}

func (p *player) Pause(ctx context.Context) error {
	return p.remote.Update(ctx, lavalink.WithPaused(true))
}

func (p *player) Resume(ctx context.Context) error {
	return p.remote.Update(ctx, lavalink.WithPaused(false))
}

func (p *player) start(ctx context.Context, e *entry) error {
	if err := p.remote.Update(ctx, lavalink.WithTrack(e.track)); err != nil {
		return fmt.Errorf("failed to play track: %w", err)
	}
	return nil
}

func (p *player) setConnected(connected bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.connected = connected
}

func (p *player) setChannel(channelID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channelID = channelID
	p.connected = true
}

func (p *player) handleTrackStart(track lavalink.Track) {
	p.mu.Lock()
	var model *models.Track
	if p.current != nil && p.current.track.Encoded == track.Encoded {
		model = p.current.model
	} else {
		model = toModel(track, "")
	}
	remaining := len(p.queue)
	p.mu.Unlock()

	p.engine.emit(engine.Event{
		Type:      engine.EventTrackStart,
		GuildID:   p.guildID,
		Track:     model,
		Remaining: remaining,
	})
}

// handleTrackEnd runs after a track finished on its own. Repeat-track mode
// leaves the player idle so the listener can replay the finished track.
func (p *player) handleTrackEnd(ctx context.Context) {
	p.mu.Lock()
	finished := p.current
	p.current = nil
	if finished != nil {
		p.history = append(p.history, finished)
		if p.repeat.LoopsQueue() {
			p.queue = append(p.queue, finished)
		}
	}
	remaining := len(p.queue)
	holdForRepeat := p.repeat.LoopsTrack()
	p.mu.Unlock()

	var model *models.Track
	if finished != nil {
		model = finished.model
	}

	p.engine.emit(engine.Event{
		Type:      engine.EventTrackEnd,
		GuildID:   p.guildID,
		Track:     model,
		Remaining: remaining,
	})

	if holdForRepeat {
		return
	}

	p.mu.Lock()
	if len(p.queue) == 0 || p.current != nil {
		idle := p.current == nil
		p.mu.Unlock()
		if idle {
			p.engine.emit(engine.Event{Type: engine.EventQueueEnd, GuildID: p.guildID, Track: model})
		}
		return
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	p.current = next
	p.mu.Unlock()

	if err := p.start(ctx, next); err != nil {
		p.engine.logger.Warn("failed to advance queue", zap.String("guild_id", p.guildID), zap.Error(err))
		p.handleFailure(err)
	}
}

func (p *player) handleFailure(err error) {
	p.engine.emit(engine.Event{Type: engine.EventError, GuildID: p.guildID, Err: err})
}

// handleDropped runs when Discord reports the bot left voice without Destroy
func (p *player) handleDropped() {
	p.mu.Lock()
	wasConnected := p.connected
	p.connected = false
	p.mu.Unlock()

	if wasConnected {
		p.engine.emit(engine.Event{Type: engine.EventEmpty, GuildID: p.guildID})
	}
}

// checkAudience emits an empty event once when the last listener leaves
func (p *player) checkAudience(listeners int) {
	p.mu.Lock()
	hadAudience := p.audience
	p.audience = listeners > 0
	connected := p.connected
	p.mu.Unlock()

	if hadAudience && listeners == 0 && connected {
		p.engine.emit(engine.Event{Type: engine.EventEmpty, GuildID: p.guildID})
	}
}

func modelsOf(entries []*entry) []*models.Track {
	out := make([]*models.Track, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.model)
	}
	return out
}
