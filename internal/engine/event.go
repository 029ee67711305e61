package engine

import "github.com/KirkDiggler/sora/internal/models"

// EventType identifies a player lifecycle event
type EventType string

const (
	EventTrackStart    EventType = "trackStart"
	EventTrackAdd      EventType = "trackAdd"
	EventTrackEnd      EventType = "trackEnd"
	EventQueueEnd      EventType = "queueEnd"
	EventEmpty         EventType = "empty"
	EventError         EventType = "error"
	EventPlayerDestroy EventType = "playerDestroy"
)

// Event is emitted by the engine for one guild
type Event struct {
	Type    EventType
	GuildID string

	// Track is the subject track, when the event has one
	Track *models.Track

	// Remaining is the queue length at the moment the event was emitted
	Remaining int

	// Err is set for EventError
	Err error
}

// Listener receives events. Implementations must not block for long;
// they are called from the engine's own goroutines.
type Listener func(Event)
