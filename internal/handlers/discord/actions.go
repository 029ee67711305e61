package discord

import (
	"context"
	"os"
	"strings"

	"github.com/KirkDiggler/sora/internal/common/ratelimit"
	"github.com/KirkDiggler/sora/internal/services/download"
	"github.com/KirkDiggler/sora/internal/services/messaging"
	"github.com/KirkDiggler/sora/internal/services/player"
	"github.com/KirkDiggler/sora/internal/ui"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	queueLimitCommand = player.QueueLimitCommand
	queueLimitButton  = player.QueueLimitButton
)

// HandlerError is a custom error type for interaction routing errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrUnknownComponent HandlerError = "unknown component"
	ErrBadDownloadID    HandlerError = "malformed download button"
)

// play queues a query in the caller's voice channel
func (b *Bot) play(ctx context.Context, req *Request, query string) (*Reply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, player.ErrEmptyQuery
	}

	voiceChannelID, ok := b.voiceOf(req.GuildID, req.UserID)
	if !ok {
		return nil, player.ErrNotInVoice
	}

	if b.playLimiter != nil && !b.playLimiter.Allow(req.UserID) {
		return nil, ratelimit.ErrRateLimited
	}

	output, err := b.playerService.Play(ctx, &player.PlayInput{
		GuildID:        req.GuildID,
		TextChannelID:  req.ChannelID,
		VoiceChannelID: voiceChannelID,
		RequesterID:    req.UserID,
		Query:          query,
	})
	if err != nil {
		return nil, err
	}

	action := messaging.ActionPlaying
	if output.Queued {
		action = messaging.ActionQueued
	}

	return b.ack(ctx, &messaging.GetActionMessageInput{Action: action, Track: output.Track})
}

func (b *Bot) leave(ctx context.Context, req *Request) (*Reply, error) {
	if err := b.playerService.Leave(ctx, &player.GuildInput{GuildID: req.GuildID, UserID: req.UserID}); err != nil {
		return nil, err
	}

	return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionLeft})
}

func (b *Bot) queue(ctx context.Context, req *Request, limit int) (*Reply, error) {
	output, err := b.playerService.GetQueue(ctx, &player.GetQueueInput{GuildID: req.GuildID, Limit: limit})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Embeds:    []*discordgo.MessageEmbed{ui.Queue(renderQueue(output), b.now())},
		Ephemeral: true,
	}, nil
}

func (b *Bot) help(req *Request) *Reply {
	return &Reply{
		Embeds:     []*discordgo.MessageEmbed{ui.Help(req.UserID, b.config.Prefix, b.now())},
		Components: ui.LeaveControls(b.config.ReportURL),
	}
}

func (b *Bot) tag(req *Request) *Reply {
	return &Reply{
		Embeds: []*discordgo.MessageEmbed{ui.Tag(req.UserID, b.config.Prefix, b.now())},
	}
}

// downloadPrompt registers a link and offers the format buttons
func (b *Bot) downloadPrompt(ctx context.Context, req *Request, url string) (*Reply, error) {
	output, err := b.downloadService.CreateLink(ctx, &download.CreateLinkInput{
		URL:         strings.TrimSpace(url),
		RequesterID: req.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Embeds:     []*discordgo.MessageEmbed{ui.DownloadPrompt(output.ExpiresAt, b.now())},
		Components: ui.DownloadButtons(output.Token),
	}, nil
}

// convertDownload redeems a format button. The returned cleanup closes and
// removes the converted file and is never nil.
func (b *Bot) convertDownload(ctx context.Context, customID string) (*Reply, func(), error) {
	noop := func() {}

	format, token, ok := ui.ParseDownloadID(customID)
	if !ok {
		return nil, noop, ErrBadDownloadID
	}

	output, err := b.downloadService.Convert(ctx, &download.ConvertInput{Token: token, Format: format})
	if err != nil {
		return nil, noop, err
	}

	remove := func() {
		if err := os.Remove(output.FilePath); err != nil && !os.IsNotExist(err) {
			b.logger.Warn("failed to remove converted file", zap.String("path", output.FilePath), zap.Error(err))
		}
	}

	f, err := os.Open(output.FilePath)
	if err != nil {
		remove()
		return nil, noop, err
	}

	cleanup := func() {
		f.Close()
		remove()
	}

	title := output.Title
	if title == "" {
		title = "Unknown Title"
	}

	return &Reply{
		Embeds: []*discordgo.MessageEmbed{ui.DownloadReady(title, output.Format, b.now())},
		Files: []*discordgo.File{{
			Name:   output.FileName,
			Reader: f,
		}},
	}, cleanup, nil
}

// control runs a button or menu of the controls message
func (b *Bot) control(ctx context.Context, req *Request, customID string, values []string) (*Reply, error) {
	guild := &player.GuildInput{GuildID: req.GuildID, UserID: req.UserID}

	switch customID {
	case ui.ButtonPause, ui.ButtonResume:
		output, err := b.playerService.TogglePause(ctx, guild)
		if err != nil {
			return nil, err
		}
		action := messaging.ActionResumed
		if output.Paused {
			action = messaging.ActionPaused
		}
		return b.ack(ctx, &messaging.GetActionMessageInput{Action: action})

	case ui.ButtonSkip:
		output, err := b.playerService.Skip(ctx, guild)
		if err != nil {
			return nil, err
		}
		input := &messaging.GetActionMessageInput{Action: messaging.ActionSkipped, Track: output.Next}
		switch {
		case output.Stopped:
			input.Action = messaging.ActionStopped
		case output.AutoPlayed:
			input.Action = messaging.ActionSkippedAutoPlay
		}
		return b.ack(ctx, input)

	case ui.ButtonPrevious:
		if err := b.playerService.Previous(ctx, guild); err != nil {
			return nil, err
		}
		return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionPrevious})

	case ui.ButtonLoop:
		output, err := b.playerService.CycleRepeat(ctx, guild)
		if err != nil {
			return nil, err
		}
		return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionRepeat, Mode: output.Mode})

	case ui.ButtonToggleAutoplay:
		output, err := b.playerService.ToggleAutoPlay(ctx, guild)
		if err != nil {
			return nil, err
		}
		return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionAutoPlay, Enabled: output.Enabled})

	case ui.ButtonDecreaseVolume, ui.ButtonIncreaseVolume:
		delta := player.VolumeStep
		if customID == ui.ButtonDecreaseVolume {
			delta = -delta
		}
		output, err := b.playerService.AdjustVolume(ctx, &player.AdjustVolumeInput{GuildID: req.GuildID, Delta: delta})
		if err != nil {
			return nil, err
		}
		return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionVolume, Volume: output.Volume})

	case ui.ButtonStop:
		if err := b.playerService.Stop(ctx, guild); err != nil {
			return nil, err
		}
		return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionStop})

	case ui.ButtonQueue:
		return b.queue(ctx, req, queueLimitButton)

	case ui.SelectSuggestion:
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		return b.selectSuggestion(ctx, req, value)
	}

	return nil, ErrUnknownComponent
}

func (b *Bot) selectSuggestion(ctx context.Context, req *Request, value string) (*Reply, error) {
	output, err := b.playerService.SelectSuggestion(ctx, &player.SelectSuggestionInput{
		GuildID: req.GuildID,
		UserID:  req.UserID,
		Value:   value,
	})
	if err != nil {
		return nil, err
	}

	input := &messaging.GetActionMessageInput{Action: messaging.ActionQueued, Track: output.Track}
	switch output.Action {
	case player.SelectActionAutoPlay:
		input = &messaging.GetActionMessageInput{Action: messaging.ActionAutoPlay, Enabled: true}
	case player.SelectActionNoSuggestions:
		input = &messaging.GetActionMessageInput{Action: messaging.ActionNoSuggestions}
	}

	return b.ack(ctx, input)
}

// addNext queues the URL submitted through the add-next form
func (b *Bot) addNext(ctx context.Context, req *Request, url string) (*Reply, error) {
	output, err := b.playerService.AddNext(ctx, &player.AddNextInput{
		GuildID: req.GuildID,
		UserID:  req.UserID,
		URL:     url,
	})
	if err != nil {
		return nil, err
	}

	return b.ack(ctx, &messaging.GetActionMessageInput{Action: messaging.ActionQueued, Track: output.Track})
}

// ack renders the acknowledgement of a completed action
func (b *Bot) ack(ctx context.Context, input *messaging.GetActionMessageInput) (*Reply, error) {
	output, err := b.messagingService.GetActionMessage(ctx, input)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Embeds:    []*discordgo.MessageEmbed{ui.Notice("", output.Message, ui.ColorInfo, b.now())},
		Ephemeral: true,
	}, nil
}

// errorReply turns a failed action into user-facing copy
func (b *Bot) errorReply(ctx context.Context, err error) *Reply {
	if player.IsUserError(err) {
		b.logger.Debug("request rejected", zap.Error(err))
	} else {
		b.logger.Warn("request failed", zap.Error(err))
	}

	output, msgErr := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		b.logger.Warn("failed to get error message", zap.Error(msgErr))
		return b.internalErrorReply()
	}

	return &Reply{
		Embeds:    []*discordgo.MessageEmbed{ui.Notice(output.Title, output.Message, ui.ColorError, b.now())},
		Ephemeral: true,
	}
}

// internalErrorReply is the generic failure notice. It touches no
// collaborator so it is safe to send after a panic.
func (b *Bot) internalErrorReply() *Reply {
	return &Reply{
		Embeds:    []*discordgo.MessageEmbed{ui.Notice("❌ Error", "Something went wrong, please try again.", ui.ColorError, b.now())},
		Ephemeral: true,
	}
}
