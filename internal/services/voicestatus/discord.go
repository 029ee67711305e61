package voicestatus

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
)

// DiscordAPI implements ChannelResolver and Requester over a discordgo session
type DiscordAPI struct {
	session *discordgo.Session
}

// NewDiscordAPI wraps a connected session
func NewDiscordAPI(session *discordgo.Session) (*DiscordAPI, error) {
	if session == nil {
		return nil, errors.New("discord session cannot be nil")
	}
	return &DiscordAPI{session: session}, nil
}

// Channel returns the channel from state, falling back to REST
func (d *DiscordAPI) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if ch, err := d.session.State.Channel(channelID); err == nil {
		return ch, nil
	}
	return d.session.Channel(channelID, discordgo.WithContext(ctx))
}

// BotPermissions computes the bot's permissions in the channel
func (d *DiscordAPI) BotPermissions(channelID string) (int64, error) {
	if d.session.State == nil || d.session.State.User == nil {
		return 0, errors.New("session state is not ready")
	}
	return d.session.State.UserChannelPermissions(d.session.State.User.ID, channelID)
}

// Request sends a raw REST request using the channel's rate limit bucket
func (d *DiscordAPI) Request(ctx context.Context, method, url string, body any) error {
	_, err := d.session.RequestWithBucketID(method, url, body, url, discordgo.WithContext(ctx))
	return err
}
