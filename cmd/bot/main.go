package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/sora/internal/common/clock"
	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/KirkDiggler/sora/internal/common/random"
	"github.com/KirkDiggler/sora/internal/common/ratelimit"
	"github.com/KirkDiggler/sora/internal/common/sequencer"
	"github.com/KirkDiggler/sora/internal/common/uuid"
	"github.com/KirkDiggler/sora/internal/config"
	"github.com/KirkDiggler/sora/internal/engine/lavalink"
	"github.com/KirkDiggler/sora/internal/handlers/discord"
	"github.com/KirkDiggler/sora/internal/repositories/download_token"
	"github.com/KirkDiggler/sora/internal/search"
	"github.com/KirkDiggler/sora/internal/services/download"
	"github.com/KirkDiggler/sora/internal/services/messaging"
	"github.com/KirkDiggler/sora/internal/services/player"
	"github.com/KirkDiggler/sora/internal/services/suggestion"
	"github.com/KirkDiggler/sora/internal/services/voicestatus"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(&logger.Config{Level: cfg.LogLevel, Development: cfg.Development})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return err
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	clk := clock.New()

	// Playback engine and search
	eng, err := lavalink.New(&lavalink.Config{
		Session: session,
		Node: lavalink.NodeConfig{
			Name:     cfg.LavalinkName,
			Address:  cfg.LavalinkAddress,
			Password: cfg.LavalinkPassword,
			Secure:   cfg.LavalinkSecure,
		},
		Logger: logr.Named("lavalink"),
	})
	if err != nil {
		return err
	}

	searchChain, err := search.NewChain(&search.ChainConfig{
		Searchers: []search.Named{
			{Name: "lavalink", Searcher: eng},
			{Name: "youtube", Searcher: search.NewYouTube(&search.YouTubeConfig{Limit: suggestion.DefaultLimit * 2})},
		},
		Logger: logr.Named("search"),
	})
	if err != nil {
		return err
	}

	suggestions, err := suggestion.New(&suggestion.Config{
		Searcher: searchChain,
		Logger:   logr.Named("suggestion"),
	})
	if err != nil {
		return err
	}

	// Discord adapters
	discordAPI, err := voicestatus.NewDiscordAPI(session)
	if err != nil {
		return err
	}

	voiceStatus, err := voicestatus.New(&voicestatus.Config{
		Channels:  discordAPI,
		Requester: discordAPI,
		Logger:    logr.Named("voicestatus"),
	})
	if err != nil {
		return err
	}

	messenger, err := player.NewDiscord(session)
	if err != nil {
		return err
	}

	// Download flow
	tokenRepo, err := download_token.NewRedis(&download_token.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	downloadSvc, err := download.New(&download.Config{
		Dir:           cfg.DownloadDir,
		TokenTTL:      cfg.DownloadTokenTTL,
		MaxBytes:      cfg.DownloadMaxBytes,
		TokenRepo:     tokenRepo,
		Converter:     download.NewYTDLP(&download.YTDLPConfig{Proxy: cfg.YTDLPProxy, Logger: logr.Named("ytdlp")}),
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Logger:        logr.Named("download"),
	})
	if err != nil {
		return err
	}

	// Session controller
	playerSvc, err := player.New(&player.Config{
		Engine:       eng,
		Registry:     player.NewRegistry(),
		Messenger:    messenger,
		VoiceStatus:  voiceStatus,
		VoiceLocator: messenger,
		Suggestions:  suggestions,
		Picker:       random.New(nil),
		Clock:        clk,
		Sequencer:    sequencer.New(&sequencer.Config{Logger: logr.Named("sequencer")}),
		Logger:       logr.Named("player"),
		ReportURL:    cfg.ReportURL,
	})
	if err != nil {
		return err
	}
	defer playerSvc.Close()

	messagingSvc, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		Prefix:           cfg.CommandPrefix,
		ReportURL:        cfg.ReportURL,
		PlayerService:    playerSvc,
		DownloadService:  downloadSvc,
		MessagingService: messagingSvc,
		PlayLimiter:      ratelimit.New(&ratelimit.Config{Every: cfg.PlayEvery(), Burst: cfg.PlayBurst}),
		Clock:            clk,
		Logger:           logr.Named("discord"),
	})
	if err != nil {
		return err
	}

	// The engine needs the bot user, so the gateway opens first
	if err := bot.Start(); err != nil {
		return err
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			logr.Warn("error stopping bot", zap.Error(err))
		}
	}()

	if err := eng.Open(ctx); err != nil {
		return err
	}
	eng.Subscribe(playerSvc.HandleEvent)

	logr.Info("bot is ready, press CTRL-C to exit")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()
	eng.Close(closeCtx)

	logr.Info("bot has been shut down")
	return nil
}
