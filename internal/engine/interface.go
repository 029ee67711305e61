package engine

import (
	"context"

	"github.com/KirkDiggler/sora/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_engine.go github.com/KirkDiggler/sora/internal/engine Engine,Player,PausablePlayer

// Engine is the playback engine: it owns one Player per guild and reports
// lifecycle events to subscribers
type Engine interface {
	// Player returns the guild's player, or nil when none exists
	Player(guildID string) Player

	// Create returns the guild's player, creating it if needed
	Create(ctx context.Context, guildID string) (Player, error)

	// Search resolves a query without queuing anything
	Search(ctx context.Context, query string) ([]*models.Track, error)

	// Subscribe registers a listener for lifecycle events of every guild
	Subscribe(listener Listener)
}

// Player controls playback in one guild
type Player interface {
	GuildID() string

	// Connect joins (or moves to) a voice channel
	Connect(ctx context.Context, channelID string) error

	// Connected reports whether the voice connection is up
	Connected() bool

	// ChannelID is the voice channel the player is bound to
	ChannelID() string

	// Play resolves query and queues the result, starting playback when
	// idle. It returns the first resolved track.
	Play(ctx context.Context, query string, requesterID string) (*models.Track, error)

	// Current is the playing track, nil when idle
	Current() *models.Track

	// Queue lists upcoming tracks
	Queue() []*models.Track

	// History lists played tracks, most recent last
	History() []*models.Track

	Skip(ctx context.Context) error

	// Restart plays the current track again from the start without touching
	// the queue. It fails when nothing is current.
	Restart(ctx context.Context) error

	Previous(ctx context.Context) error
	Stop(ctx context.Context) error
	Destroy(ctx context.Context) error

	// Volume is the current volume in [0, 100]
	Volume() int
	SetVolume(ctx context.Context, volume int) error

	// SetRepeatMode lets the engine re-insert finished tracks for queue looping
	SetRepeatMode(mode models.RepeatMode)
}

// Pauser is the preferred pause capability
type Pauser interface {
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
}

// PausedSetter is the fallback pause capability
type PausedSetter interface {
	SetPaused(ctx context.Context, paused bool) error
}

// PausablePlayer is a Player exposing the preferred pause capability
type PausablePlayer interface {
	Player
	Pauser
}
