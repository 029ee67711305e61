package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/sora/internal/common/clock"
	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/KirkDiggler/sora/internal/common/ratelimit"
	"github.com/KirkDiggler/sora/internal/services/download"
	"github.com/KirkDiggler/sora/internal/services/messaging"
	"github.com/KirkDiggler/sora/internal/services/player"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// DefaultPrefix is used for message commands when none is configured
	DefaultPrefix = "0"

	interactionTimeout = 30 * time.Second
	downloadTimeout    = 5 * time.Minute
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config

	playerService    player.Service
	downloadService  download.Service
	messagingService messaging.Service
	playLimiter      *ratelimit.Keyed
	clock            clock.Clock
	logger           *zap.Logger

	// voiceOf finds the voice channel a member sits in
	voiceOf func(guildID, userID string) (string, bool)
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Prefix for message commands
	Prefix string

	// ReportURL is linked from help and leave displays
	ReportURL string

	// Service dependencies
	PlayerService    player.Service
	DownloadService  download.Service
	MessagingService messaging.Service

	// PlayLimiter throttles play requests per user; nil disables throttling
	PlayLimiter *ratelimit.Keyed

	Clock  clock.Clock
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.PlayerService == nil {
		return nil, errors.New("player service cannot be nil")
	}

	if cfg.DownloadService == nil {
		return nil, errors.New("download service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		config:           cfg,
		playerService:    cfg.PlayerService,
		downloadService:  cfg.DownloadService,
		messagingService: cfg.MessagingService,
		playLimiter:      cfg.PlayLimiter,
		clock:            clk,
		logger:           logger.OrNop(cfg.Logger),
	}
	bot.voiceOf = bot.memberVoiceChannel

	// Register the gateway handlers
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.slashCommands() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is running", zap.String("prefix", b.config.Prefix))
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName), zap.String("command_id", cmdID), zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// An empty guild id registers the command globally
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Debug("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.serveInteraction(&interaction{api: s, event: i})
}

func (b *Bot) serveInteraction(it *interaction) {
	i := it.event
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("interaction handler panicked",
				zap.Any("panic", r), zap.String("guild_id", i.GuildID))
			if err := it.reply(b.internalErrorReply()); err != nil {
				b.logger.Warn("failed to report panic", zap.String("guild_id", i.GuildID), zap.Error(err))
			}
		}
	}()

	if i.GuildID == "" {
		return
	}

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.handleCommandInteraction(it)
	case discordgo.InteractionMessageComponent:
		err = b.handleComponentInteraction(it)
	case discordgo.InteractionModalSubmit:
		err = b.handleModalSubmit(it)
	}

	if err != nil {
		b.logger.Warn("failed to answer interaction",
			zap.String("guild_id", i.GuildID), zap.Error(err))
	}
}

// handleCommandInteraction runs a slash command
func (b *Bot) handleCommandInteraction(it *interaction) error {
	data := it.event.ApplicationCommandData()
	h, ok := b.commands[data.Name]
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	// Search and connect can outlast the three second acknowledgement window
	if err := it.deferReply(false); err != nil {
		return err
	}

	reply, err := h.Handle(ctx, requestFromInteraction(it.event), commandOptions(data.Options))
	if err != nil {
		reply = b.errorReply(ctx, err)
	}

	return it.edit(reply)
}

// memberVoiceChannel reads the member's voice channel from the gateway cache
func (b *Bot) memberVoiceChannel(guildID, userID string) (string, bool) {
	vs, err := b.session.State.VoiceState(guildID, userID)
	if err != nil || vs == nil || vs.ChannelID == "" {
		return "", false
	}
	return vs.ChannelID, true
}

func (b *Bot) now() time.Time {
	return b.clock.Now()
}
