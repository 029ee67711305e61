package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sora/internal/common/random"
	"github.com/KirkDiggler/sora/internal/common/ratelimit"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/KirkDiggler/sora/internal/services/download"
	"github.com/KirkDiggler/sora/internal/services/player"
)

// service implements the Service interface
type service struct {
	// Chooses between message variants
	picker random.Picker
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	var picker random.Picker
	if cfg != nil && cfg.Picker != nil {
		picker = cfg.Picker
	} else {
		picker = random.New(nil)
	}

	return &service{
		picker: picker,
	}, nil
}

type errorCopy struct {
	title    string
	neutral  []string
	funny    []string
	matchers []error
}

// errorCatalog is checked in order; the first matching entry wins
var errorCatalog = []struct {
	errorType ErrorType
	copy      errorCopy
}{
	{ErrorTypeRateLimited, errorCopy{
		title:    "⏳ Slow down",
		neutral:  []string{"You're sending requests too quickly. Try again in a moment."},
		funny:    []string{"Easy there, DJ! Give the turntables a second to cool down.", "One banger at a time, please. Try again shortly."},
		matchers: []error{ratelimit.ErrRateLimited},
	}},
	{ErrorTypeNotInVoice, errorCopy{
		title:    "❌ Join a voice channel",
		neutral:  []string{"You need to be in a voice channel to play music."},
		funny:    []string{"I can't sing to an empty room. Hop into a voice channel first!", "Join a voice channel and I'll bring the music."},
		matchers: []error{player.ErrNotInVoice},
	}},
	{ErrorTypeNoSession, errorCopy{
		title:    "❌ Nothing playing",
		neutral:  []string{"There is no active music session in this server."},
		funny:    []string{"The stage is empty. Start something with /play!", "Silence is golden, but try /play anyway."},
		matchers: []error{player.ErrNoSession},
	}},
	{ErrorTypeEmptyQuery, errorCopy{
		title:    "❌ Missing song",
		neutral:  []string{"Tell me what to play: a link or a few search words."},
		funny:    []string{"Play... what exactly? Give me a song name or a link."},
		matchers: []error{player.ErrEmptyQuery},
	}},
	{ErrorTypeNoResults, errorCopy{
		title:    "❌ No results",
		neutral:  []string{"I couldn't find anything for that query."},
		funny:    []string{"I searched everywhere and came back empty-handed. Try different words?", "Nothing. Nada. Maybe check the spelling?"},
		matchers: []error{player.ErrNoResults},
	}},
	{ErrorTypeConnect, errorCopy{
		title:    "❌ Can't join voice",
		neutral:  []string{"I couldn't connect to your voice channel. Check my permissions."},
		funny:    []string{"The door to your voice channel is locked. Do I have permission to connect and speak?"},
		matchers: []error{player.ErrConnectFailed},
	}},
	{ErrorTypeNoHistory, errorCopy{
		title:    "⏮️ Nothing before this",
		neutral:  []string{"There is no previous track."},
		funny:    []string{"This is where the story begins. No previous track yet!"},
		matchers: []error{player.ErrNoHistory},
	}},
	{ErrorTypeStaleSelection, errorCopy{
		title:    "❌ Suggestion expired",
		neutral:  []string{"That suggestion is no longer available. Pick from the latest menu."},
		funny:    []string{"That suggestion left with the last song. Try the new menu!"},
		matchers: []error{player.ErrStaleSelection, player.ErrUnknownSelection},
	}},
	{ErrorTypeAddFailed, errorCopy{
		title:    "❌ Couldn't add song",
		neutral:  []string{"The song could not be added. Check the link and try again."},
		funny:    []string{"That link didn't want to join the party. Double-check it?"},
		matchers: []error{player.ErrAddFailed, player.ErrEmptyURL},
	}},
	{ErrorTypeInvalidURL, errorCopy{
		title:    "❌ Invalid link",
		neutral:  []string{"Please provide a valid http or https video link."},
		funny:    []string{"That doesn't look like a link I can download. Try a full http(s) URL."},
		matchers: []error{download.ErrEmptyURL, download.ErrInvalidURL, download.ErrUnsupportedFormat},
	}},
	{ErrorTypeLinkExpired, errorCopy{
		title:    "⌛ Link expired",
		neutral:  []string{"This download link has expired. Run /download again."},
		funny:    []string{"Too slow! That download button has expired. Ask again with /download."},
		matchers: []error{download.ErrLinkExpired},
	}},
	{ErrorTypeFileTooLarge, errorCopy{
		title:    "❌ File too large",
		neutral:  []string{"The converted file is larger than 8MB and can't be uploaded."},
		funny:    []string{"That file is too chunky for Discord (over 8MB). Try the MP3 version?"},
		matchers: []error{download.ErrFileTooLarge},
	}},
	{ErrorTypeConversion, errorCopy{
		title:    "❌ Conversion failed",
		neutral:  []string{"The file could not be converted. Try again later."},
		funny:    []string{"The converter choked on that one. Try again later."},
		matchers: []error{download.ErrConversionFailed, download.ErrFFmpegMissing},
	}},
}

var unknownError = errorCopy{
	title:   "❌ Error",
	neutral: []string{"Something went wrong. Please try again."},
	funny:   []string{"Something went wrong behind the speakers. Please try again.", "The record scratched. Give it another go."},
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	errorType, entry := classify(input.Err)

	messages := entry.funny
	if tone == ToneNeutral || len(messages) == 0 {
		messages = entry.neutral
	}

	return &GetErrorMessageOutput{
		Type:    errorType,
		Title:   entry.title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func classify(err error) (ErrorType, errorCopy) {
	for _, candidate := range errorCatalog {
		for _, target := range candidate.copy.matchers {
			if errors.Is(err, target) {
				return candidate.errorType, candidate.copy
			}
		}
	}
	return ErrorTypeUnknown, unknownError
}

// GetActionMessage returns the acknowledgement for a completed control
func (s *service) GetActionMessage(ctx context.Context, input *GetActionMessageInput) (*GetActionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string

	switch input.Action {
	case ActionPaused:
		message = s.pick([]string{"⏸️ Paused.", "⏸️ Taking a breather."})
	case ActionResumed:
		message = s.pick([]string{"▶️ Resumed.", "▶️ And we're back!"})
	case ActionSkipped:
		if input.Track != nil {
			message = fmt.Sprintf("⏭️ Skipped. Up next: **%s**", input.Track.DisplayTitle())
		} else {
			message = "⏭️ Skipped."
		}
	case ActionSkippedAutoPlay:
		message = "⏭️ Skipped. Autoplay picked something similar."
	case ActionStopped:
		message = "⏹️ Nothing left to play, playback stopped."
	case ActionStop:
		message = "⏹️ Playback stopped."
	case ActionPrevious:
		message = "⏮️ Playing the previous track."
	case ActionRepeat:
		message = repeatMessage(input.Mode)
	case ActionAutoPlay:
		if input.Enabled {
			message = "♾️ Autoplay is **on**."
		} else {
			message = "♾️ Autoplay is **off**."
		}
	case ActionVolume:
		message = fmt.Sprintf("🔊 Volume: **%d%%**", input.Volume)
	case ActionLeft:
		message = s.pick([]string{"👋 Left the voice channel.", "👋 Bye for now!"})
	case ActionQueued:
		message = fmt.Sprintf("✅ Added to queue: **%s**", input.Track.DisplayTitle())
	case ActionPlaying:
		message = fmt.Sprintf("🎶 Playing: **%s**", input.Track.DisplayTitle())
	case ActionNoSuggestions:
		message = "No suggestions right now. Add a song yourself or turn on random pick."
	default:
		return nil, fmt.Errorf("unknown action: %s", input.Action)
	}

	return &GetActionMessageOutput{Message: message}, nil
}

func repeatMessage(mode models.RepeatMode) string {
	switch mode {
	case models.RepeatModeTrack:
		return "🔂 Repeating the current track."
	case models.RepeatModeQueue:
		return "🔁 Repeating the queue."
	default:
		return "➡️ Repeat is off."
	}
}

func (s *service) pick(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	return messages[s.picker.Intn(len(messages))]
}
