package discord

import (
	"github.com/KirkDiggler/sora/internal/services/player"
	"github.com/KirkDiggler/sora/internal/ui"
	"github.com/bwmarrin/discordgo"
)

// Request identifies who asked for something and where
type Request struct {
	GuildID   string
	ChannelID string
	UserID    string
}

// Reply is what the bot shows in answer to a request
type Reply struct {
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Files      []*discordgo.File

	// Ephemeral replies are only visible to the caller where supported
	Ephemeral bool
}

func requestFromInteraction(i *discordgo.InteractionCreate) *Request {
	req := &Request{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
	}

	switch {
	case i.Member != nil && i.Member.User != nil:
		req.UserID = i.Member.User.ID
	case i.User != nil:
		req.UserID = i.User.ID
	}

	return req
}

func requestFromMessage(m *discordgo.MessageCreate) *Request {
	return &Request{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
	}
}

// renderResponseData renders a reply as an immediate interaction response
func renderResponseData(reply *Reply) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds:     reply.Embeds,
		Components: reply.Components,
		Files:      reply.Files,
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// renderWebhookEdit renders a reply as the edit of a deferred response
func renderWebhookEdit(reply *Reply) *discordgo.WebhookEdit {
	embeds := reply.Embeds
	components := reply.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	return &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
		Files:      reply.Files,
	}
}

// renderMessageSend renders a reply as a channel message. Ephemeral has no
// meaning for plain messages and is dropped.
func renderMessageSend(reply *Reply, reference *discordgo.MessageReference) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds:     reply.Embeds,
		Components: reply.Components,
		Files:      reply.Files,
		Reference:  reference,
	}
}

// renderQueue renders the queue listing
func renderQueue(output *player.GetQueueOutput) ui.QueueView {
	return ui.QueueView{
		Current:      output.Current,
		Upcoming:     output.Upcoming,
		Remaining:    output.Remaining,
		AutoPlayHint: output.AutoPlayHint,
	}
}
