package ui

import (
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonAddNext        = "add_next"
	ButtonPrevious       = "previous"
	ButtonPause          = "pause"
	ButtonResume         = "resume"
	ButtonSkip           = "skip"
	ButtonLoop           = "loop"
	ButtonToggleAutoplay = "toggle_autoplay"
	ButtonDecreaseVolume = "decrease_volume"
	ButtonStop           = "stop"
	ButtonIncreaseVolume = "increase_volume"
	ButtonQueue          = "queue"

	// Select menu custom IDs
	SelectSuggestion = "suggestion_select"

	// Modal custom IDs
	ModalAddNext = "add_next_modal"
	InputSongURL = "song_url"
)

// Controls builds the two button rows of the controls message
func Controls(paused bool, mode models.RepeatMode, autoPlay bool) []discordgo.MessageComponent {
	pauseID, pauseEmoji := ButtonPause, "⏸️"
	if paused {
		pauseID, pauseEmoji = ButtonResume, "▶️"
	}

	loopEmoji, loopStyle := "🔁", discordgo.SecondaryButton
	switch mode {
	case models.RepeatModeTrack:
		loopEmoji, loopStyle = "🔂", discordgo.PrimaryButton
	case models.RepeatModeQueue:
		loopEmoji, loopStyle = "🔁", discordgo.PrimaryButton
	}

	autoplay := discordgo.Button{
		CustomID: ButtonToggleAutoplay,
		Label:    "Auto",
		Style:    discordgo.SuccessButton,
		Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
	}
	if !autoPlay {
		autoplay.Label = "Manual"
		autoplay.Style = discordgo.SecondaryButton
		autoplay.Emoji = &discordgo.ComponentEmoji{Name: "⏹️"}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				emojiButton(ButtonAddNext, "➕", discordgo.SecondaryButton),
				emojiButton(ButtonPrevious, "⏮️", discordgo.SecondaryButton),
				emojiButton(pauseID, pauseEmoji, discordgo.SecondaryButton),
				emojiButton(ButtonSkip, "⏭️", discordgo.SecondaryButton),
				emojiButton(ButtonLoop, loopEmoji, loopStyle),
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				autoplay,
				emojiButton(ButtonDecreaseVolume, "🔉", discordgo.SecondaryButton),
				emojiButton(ButtonStop, "⏹️", discordgo.DangerButton),
				emojiButton(ButtonIncreaseVolume, "🔊", discordgo.SecondaryButton),
				emojiButton(ButtonQueue, "📋", discordgo.PrimaryButton),
			},
		},
	}
}

// Surface is the full component set of a controls message: buttons plus the suggestion menu
func Surface(paused bool, mode models.RepeatMode, autoPlay bool, suggestions []*models.Track) []discordgo.MessageComponent {
	components := Controls(paused, mode, autoPlay)
	return append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{SuggestionMenu(suggestions)},
	})
}

// LeaveControls is the single link-button row shown on idle/leave displays
func LeaveControls(reportURL string) []discordgo.MessageComponent {
	if reportURL == "" {
		return []discordgo.MessageComponent{}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: "Report a problem",
					Style: discordgo.LinkButton,
					URL:   reportURL,
					Emoji: &discordgo.ComponentEmoji{Name: "🛎️"},
				},
			},
		},
	}
}

// DisableComponents returns a copy of components with every interactive
// element disabled. Link buttons stay usable.
func DisableComponents(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	disabled := make([]discordgo.MessageComponent, 0, len(components))
	for _, c := range components {
		disabled = append(disabled, disableComponent(c))
	}
	return disabled
}

func disableComponent(c discordgo.MessageComponent) discordgo.MessageComponent {
	switch v := c.(type) {
	case discordgo.ActionsRow:
		return discordgo.ActionsRow{Components: DisableComponents(v.Components)}
	case *discordgo.ActionsRow:
		return discordgo.ActionsRow{Components: DisableComponents(v.Components)}
	case discordgo.Button:
		if v.Style != discordgo.LinkButton {
			v.Disabled = true
		}
		return v
	case *discordgo.Button:
		b := *v
		if b.Style != discordgo.LinkButton {
			b.Disabled = true
		}
		return b
	case discordgo.SelectMenu:
		v.Disabled = true
		return v
	case *discordgo.SelectMenu:
		m := *v
		m.Disabled = true
		return m
	default:
		return c
	}
}

func emojiButton(customID, emoji string, style discordgo.ButtonStyle) discordgo.Button {
	return discordgo.Button{
		CustomID: customID,
		Style:    style,
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	}
}
