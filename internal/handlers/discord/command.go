package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle runs the command and returns what to show the caller
	Handle(ctx context.Context, req *Request, options map[string]string) (*Reply, error)
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	dmPermission := false
	return &discordgo.ApplicationCommand{
		Name:         c.Name,
		Description:  c.Description,
		Options:      c.Options,
		DMPermission: &dmPermission,
	}
}

// funcCommand is a command backed by a bot action
type funcCommand struct {
	BaseCommand
	handle func(ctx context.Context, req *Request, options map[string]string) (*Reply, error)
}

// Handle runs the bound action
func (c *funcCommand) Handle(ctx context.Context, req *Request, options map[string]string) (*Reply, error) {
	return c.handle(ctx, req, options)
}

func stringOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// slashCommands lists every slash command the bot registers
func (b *Bot) slashCommands() []CommandHandler {
	downloadOptions := []*discordgo.ApplicationCommandOption{
		stringOption("url", "YouTube link to download"),
	}
	downloadHandler := func(ctx context.Context, req *Request, options map[string]string) (*Reply, error) {
		return b.downloadPrompt(ctx, req, options["url"])
	}

	return []CommandHandler{
		&funcCommand{
			BaseCommand: BaseCommand{
				Name:        "play",
				Description: "Play a song from a link or keywords",
				Options: []*discordgo.ApplicationCommandOption{
					stringOption("query", "Song link or keywords"),
				},
			},
			handle: func(ctx context.Context, req *Request, options map[string]string) (*Reply, error) {
				return b.play(ctx, req, options["query"])
			},
		},
		&funcCommand{
			BaseCommand: BaseCommand{Name: "leave", Description: "Disconnect and clear the queue"},
			handle: func(ctx context.Context, req *Request, _ map[string]string) (*Reply, error) {
				return b.leave(ctx, req)
			},
		},
		&funcCommand{
			BaseCommand: BaseCommand{Name: "queue", Description: "Show the upcoming songs"},
			handle: func(ctx context.Context, req *Request, _ map[string]string) (*Reply, error) {
				return b.queue(ctx, req, queueLimitCommand)
			},
		},
		&funcCommand{
			BaseCommand: BaseCommand{Name: "help", Description: "Show how to use the bot"},
			handle: func(ctx context.Context, req *Request, _ map[string]string) (*Reply, error) {
				return b.help(req), nil
			},
		},
		&funcCommand{
			BaseCommand: BaseCommand{Name: "download", Description: "Download a video as MP3, MP4 or AVI", Options: downloadOptions},
			handle:      downloadHandler,
		},
		&funcCommand{
			BaseCommand: BaseCommand{Name: "dow", Description: "Alias of /download", Options: downloadOptions},
			handle:      downloadHandler,
		},
	}
}

// commandOptions flattens top-level string options by name
func commandOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, opt := range options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		values[opt.Name] = opt.StringValue()
	}
	return values
}

// discordAPI is the part of *discordgo.Session used to answer users
type discordAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// interaction answers one interaction and remembers whether it was
// acknowledged yet
type interaction struct {
	api          discordAPI
	event        *discordgo.InteractionCreate
	acknowledged bool
}

// deferReply acknowledges an interaction that will be answered later
func (it *interaction) deferReply(ephemeral bool) error {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := it.api.InteractionRespond(it.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		it.acknowledged = true
	}
	return err
}

// edit fills in a deferred interaction response
func (it *interaction) edit(reply *Reply) error {
	_, err := it.api.InteractionResponseEdit(it.event.Interaction, renderWebhookEdit(reply))
	return err
}

// respond answers an interaction immediately
func (it *interaction) respond(reply *Reply) error {
	err := it.api.InteractionRespond(it.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: renderResponseData(reply),
	})
	if err == nil {
		it.acknowledged = true
	}
	return err
}

// reply answers whether or not the interaction was deferred
func (it *interaction) reply(reply *Reply) error {
	if it.acknowledged {
		return it.edit(reply)
	}
	return it.respond(reply)
}

// modal opens a form
func (it *interaction) modal(data *discordgo.InteractionResponseData) error {
	err := it.api.InteractionRespond(it.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: data,
	})
	if err == nil {
		it.acknowledged = true
	}
	return err
}
