package player

import (
	"time"

	"github.com/KirkDiggler/sora/internal/common/clock"
	"github.com/KirkDiggler/sora/internal/common/random"
	"github.com/KirkDiggler/sora/internal/common/sequencer"
	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/KirkDiggler/sora/internal/services/suggestion"
	"github.com/KirkDiggler/sora/internal/services/voicestatus"
	"go.uber.org/zap"
)

const (
	// DefaultTickInterval is how often the progress counter advances
	DefaultTickInterval = 3 * time.Second

	// DefaultRefreshInterval is how often the now-playing embed is redrawn
	DefaultRefreshInterval = 15 * time.Second

	// DefaultEventTimeout bounds the work done for one engine event
	DefaultEventTimeout = 30 * time.Second

	// VolumeStep is the change applied by the volume buttons
	VolumeStep = 10

	// QueueLimitButton and QueueLimitCommand cap the queue listing
	QueueLimitButton  = 5
	QueueLimitCommand = 10

	addedNoticeTTL    = 3 * time.Second
	autoplayNoticeTTL = 5 * time.Second
	errorNoticeTTL    = 5 * time.Second
)

// AfterFunc schedules f to run once after d
type AfterFunc func(d time.Duration, f func())

// Config holds configuration for the session controller
type Config struct {
	Engine       engine.Engine
	Registry     *Registry
	Messenger    Messenger
	VoiceStatus  voicestatus.Service
	VoiceLocator VoiceLocator
	Suggestions  suggestion.Provider
	Picker       random.Picker
	Clock        clock.Clock
	Sequencer    *sequencer.Sequencer
	Logger       *zap.Logger

	// ReportURL is linked from the leave display
	ReportURL string

	// Timing, zero means default
	TickInterval    time.Duration
	RefreshInterval time.Duration
	EventTimeout    time.Duration

	// AfterFunc schedules transient message deletion; defaults to time.AfterFunc
	AfterFunc AfterFunc
}

// PlayInput contains parameters for a play request
type PlayInput struct {
	GuildID        string
	TextChannelID  string
	VoiceChannelID string
	RequesterID    string
	Query          string
}

// PlayOutput contains the result of a play request
type PlayOutput struct {
	Track *models.Track

	// Queued is true when the track waits behind the current one
	Queued bool

	// Created is true when this request opened the session
	Created bool
}

// GuildInput identifies the guild and user behind a control
type GuildInput struct {
	GuildID string
	UserID  string
}

// TogglePauseOutput contains the new pause state
type TogglePauseOutput struct {
	Paused bool
}

// SkipOutput describes how a skip was resolved
type SkipOutput struct {
	// Next is the track skipped to, when known
	Next *models.Track

	// AutoPlayed is true when autoplay supplied the next track
	AutoPlayed bool

	// Stopped is true when nothing could follow and playback stopped
	Stopped bool
}

// CycleRepeatOutput contains the new repeat mode
type CycleRepeatOutput struct {
	Mode models.RepeatMode
}

// ToggleAutoPlayOutput contains the new autoplay setting
type ToggleAutoPlayOutput struct {
	Enabled bool
}

// AdjustVolumeInput contains parameters for a volume change
type AdjustVolumeInput struct {
	GuildID string
	Delta   int
}

// AdjustVolumeOutput contains the applied volume
type AdjustVolumeOutput struct {
	Volume int
}

// GetQueueInput contains parameters for listing the queue
type GetQueueInput struct {
	GuildID string
	Limit   int
}

// GetQueueOutput contains the queue listing
type GetQueueOutput struct {
	Current  *models.Track
	Upcoming []*models.Track

	// Remaining counts tracks beyond Upcoming
	Remaining int

	AutoPlayHint bool
}

// SelectAction says what a suggestion menu choice did
type SelectAction string

const (
	SelectActionAutoPlay      SelectAction = "autoplay"
	SelectActionNoSuggestions SelectAction = "no_suggestions"
	SelectActionAdded         SelectAction = "added"
)

// SelectSuggestionInput contains the chosen menu value
type SelectSuggestionInput struct {
	GuildID string
	UserID  string
	Value   string
}

// SelectSuggestionOutput contains the result of a menu choice
type SelectSuggestionOutput struct {
	Action SelectAction
	Track  *models.Track
}

// AddNextInput contains the URL submitted through the add-next form
type AddNextInput struct {
	GuildID string
	UserID  string
	URL     string
}

// AddNextOutput contains the queued track
type AddNextOutput struct {
	Track *models.Track
}
