package voicestatus

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sora/internal/services/voicestatus Service
//go:generate mockgen -package=mocks -destination=mocks/mock_api.go github.com/KirkDiggler/sora/internal/services/voicestatus ChannelResolver,Requester

// Service sets the "now playing" label shown on a voice channel. Failures
// are logged, never returned.
type Service interface {
	Set(ctx context.Context, channelID, label string)
	Clear(ctx context.Context, channelID string)
}

// ChannelResolver looks up channels and the bot's permissions in them
type ChannelResolver interface {
	Channel(ctx context.Context, channelID string) (*discordgo.Channel, error)
	BotPermissions(channelID string) (int64, error)
}

// Requester performs raw REST calls not covered by the client library
type Requester interface {
	Request(ctx context.Context, method, url string, body any) error
}
