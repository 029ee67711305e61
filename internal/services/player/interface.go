package player

import (
	"context"

	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/sora/internal/services/player Messenger,VoiceLocator

// Service is the per-guild session controller. Every operation for a guild
// runs serialized with that guild's engine events.
type Service interface {
	// Play resolves a query and queues it, creating the session when needed
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// HandleEvent routes an engine lifecycle event to its session
	HandleEvent(evt engine.Event)

	// HasSession reports whether the guild has a live session
	HasSession(guildID string) bool

	TogglePause(ctx context.Context, input *GuildInput) (*TogglePauseOutput, error)
	Skip(ctx context.Context, input *GuildInput) (*SkipOutput, error)
	Previous(ctx context.Context, input *GuildInput) error
	CycleRepeat(ctx context.Context, input *GuildInput) (*CycleRepeatOutput, error)
	ToggleAutoPlay(ctx context.Context, input *GuildInput) (*ToggleAutoPlayOutput, error)
	AdjustVolume(ctx context.Context, input *AdjustVolumeInput) (*AdjustVolumeOutput, error)
	Stop(ctx context.Context, input *GuildInput) error
	Leave(ctx context.Context, input *GuildInput) error
	GetQueue(ctx context.Context, input *GetQueueInput) (*GetQueueOutput, error)
	SelectSuggestion(ctx context.Context, input *SelectSuggestionInput) (*SelectSuggestionOutput, error)
	AddNext(ctx context.Context, input *AddNextInput) (*AddNextOutput, error)

	// Close stops every progress ticker
	Close()
}

// Messenger sends and maintains chat messages
type Messenger interface {
	Send(ctx context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
	Edit(ctx context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error)
	Delete(ctx context.Context, channelID, messageID string) error
}

// VoiceLocator finds the voice channel the bot itself sits in
type VoiceLocator interface {
	BotVoiceChannel(guildID string) (string, bool)
}
