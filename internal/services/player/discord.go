package player

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Discord sends controller messages through a discordgo session and reads
// the bot's voice state from its cache
type Discord struct {
	session *discordgo.Session
}

// NewDiscord wraps session as a Messenger and VoiceLocator
func NewDiscord(session *discordgo.Session) (*Discord, error) {
	if session == nil {
		return nil, ErrNilSession
	}
	return &Discord{session: session}, nil
}

func (d *Discord) Send(ctx context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return d.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
}

func (d *Discord) Edit(ctx context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error) {
	return d.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
}

func (d *Discord) Delete(ctx context.Context, channelID, messageID string) error {
	return d.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
}

// BotVoiceChannel reads the bot's cached voice state
func (d *Discord) BotVoiceChannel(guildID string) (string, bool) {
	state := d.session.State
	if state == nil || state.User == nil {
		return "", false
	}

	vs, err := state.VoiceState(guildID, state.User.ID)
	if err != nil || vs == nil || vs.ChannelID == "" {
		return "", false
	}

	return vs.ChannelID, true
}
