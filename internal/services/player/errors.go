package player

// PlayerError is a custom error type for session-related errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoSession          PlayerError = "no active session in this server"
	ErrNotInVoice         PlayerError = "user is not in a voice channel"
	ErrEmptyQuery         PlayerError = "query cannot be empty"
	ErrEmptyURL           PlayerError = "url cannot be empty"
	ErrNoResults          PlayerError = "query could not be resolved"
	ErrConnectFailed      PlayerError = "failed to connect to voice channel"
	ErrNoHistory          PlayerError = "no previous track"
	ErrPauseFailed        PlayerError = "failed to change pause state"
	ErrSkipFailed         PlayerError = "failed to skip"
	ErrVolumeFailed       PlayerError = "failed to change volume"
	ErrStopFailed         PlayerError = "failed to stop playback"
	ErrAddFailed          PlayerError = "failed to add track"
	ErrStaleSelection     PlayerError = "suggestion is no longer available"
	ErrUnknownSelection   PlayerError = "unknown suggestion option"
	ErrInternal           PlayerError = "session operation failed unexpectedly"
	ErrNilConfig          PlayerError = "config cannot be nil"
	ErrNilEngine          PlayerError = "engine cannot be nil"
	ErrNilRegistry        PlayerError = "registry cannot be nil"
	ErrNilMessenger       PlayerError = "messenger cannot be nil"
	ErrNilVoiceStatus     PlayerError = "voice status service cannot be nil"
	ErrNilVoiceLocator    PlayerError = "voice locator cannot be nil"
	ErrNilSuggestions     PlayerError = "suggestion provider cannot be nil"
	ErrNilPicker          PlayerError = "picker cannot be nil"
	ErrNilClock           PlayerError = "clock cannot be nil"
	ErrNilSequencer       PlayerError = "sequencer cannot be nil"
	ErrNilSession         PlayerError = "discord session cannot be nil"
)
