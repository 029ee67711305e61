package lavalink

// EngineError is a custom error type for playback engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotOpen       EngineError = "lavalink client is not open"
	ErrNoNode        EngineError = "no lavalink node available"
	ErrNoMatches     EngineError = "no matches found"
	ErrLoadFailed    EngineError = "failed to load track"
	ErrQueueEmpty    EngineError = "queue is empty"
	ErrNoHistory     EngineError = "no previous track"
	ErrIdle          EngineError = "nothing is playing"
	ErrDisconnected  EngineError = "voice connection closed"
	ErrTrackStuck    EngineError = "track got stuck"
	ErrTrackFailed   EngineError = "track playback failed"
	ErrInvalidVolume EngineError = "volume must be between 0 and 100"
)
