package messaging

import (
	"github.com/KirkDiggler/sora/internal/common/random"
	"github.com/KirkDiggler/sora/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a lighter tone
	ToneFunny MessageTone = "funny"
)

// ErrorType groups errors that share the same user copy
type ErrorType string

const (
	ErrorTypeNoSession      ErrorType = "no_session"
	ErrorTypeNotInVoice     ErrorType = "not_in_voice"
	ErrorTypeEmptyQuery     ErrorType = "empty_query"
	ErrorTypeNoResults      ErrorType = "no_results"
	ErrorTypeConnect        ErrorType = "connect"
	ErrorTypeNoHistory      ErrorType = "no_history"
	ErrorTypeStaleSelection ErrorType = "stale_selection"
	ErrorTypeAddFailed      ErrorType = "add_failed"
	ErrorTypeRateLimited    ErrorType = "rate_limited"
	ErrorTypeInvalidURL     ErrorType = "invalid_url"
	ErrorTypeLinkExpired    ErrorType = "link_expired"
	ErrorTypeFileTooLarge   ErrorType = "file_too_large"
	ErrorTypeConversion     ErrorType = "conversion"
	ErrorTypeUnknown        ErrorType = "unknown"
)

// ActionType identifies a control whose outcome is acknowledged
type ActionType string

const (
	ActionPaused          ActionType = "paused"
	ActionResumed         ActionType = "resumed"
	ActionSkipped         ActionType = "skipped"
	ActionSkippedAutoPlay ActionType = "skipped_autoplay"
	ActionStopped         ActionType = "stopped"
	ActionStop            ActionType = "stop"
	ActionPrevious        ActionType = "previous"
	ActionRepeat          ActionType = "repeat"
	ActionAutoPlay        ActionType = "autoplay"
	ActionVolume          ActionType = "volume"
	ActionLeft            ActionType = "left"
	ActionQueued          ActionType = "queued"
	ActionPlaying         ActionType = "playing"
	ActionNoSuggestions   ActionType = "no_suggestions"
)

// Config contains configuration for the messaging service
type Config struct {
	// Picker chooses between message variants; defaults to a time-seeded source
	Picker random.Picker
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Type    ErrorType
	Title   string
	Message string
	Tone    MessageTone
}

// GetActionMessageInput contains parameters for an acknowledgement
type GetActionMessageInput struct {
	Action ActionType

	// Track is the subject track for skip, queue and play acknowledgements
	Track *models.Track

	// Mode is set for ActionRepeat
	Mode models.RepeatMode

	// Enabled is set for ActionAutoPlay
	Enabled bool

	// Volume is set for ActionVolume
	Volume int
}

// GetActionMessageOutput contains the acknowledgement text
type GetActionMessageOutput struct {
	Message string
}
