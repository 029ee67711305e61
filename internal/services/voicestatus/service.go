package voicestatus

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// MaxLabelLength is the longest status Discord accepts
const MaxLabelLength = 500

// strategy is one way of writing the status, tried in order
type strategy struct {
	name   string
	method string
	url    func(channelID string) string
}

var defaultStrategies = []strategy{
	{
		name:   "voice-status",
		method: http.MethodPut,
		url: func(channelID string) string {
			return discordgo.EndpointChannel(channelID) + "/voice-status"
		},
	},
	{
		name:   "channel-patch",
		method: http.MethodPatch,
		url:    discordgo.EndpointChannel,
	},
}

type statusBody struct {
	Status string `json:"status"`
}

// Config holds configuration for the voice status service
type Config struct {
	Channels  ChannelResolver
	Requester Requester
	Logger    *zap.Logger
}

// service implements the Service interface
type service struct {
	channels   ChannelResolver
	requester  Requester
	strategies []strategy
	logger     *zap.Logger
}

// New creates a new voice status service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Channels == nil {
		return nil, errors.New("channel resolver cannot be nil")
	}

	if cfg.Requester == nil {
		return nil, errors.New("requester cannot be nil")
	}

	return &service{
		channels:   cfg.Channels,
		requester:  cfg.Requester,
		strategies: defaultStrategies,
		logger:     logger.OrNop(cfg.Logger),
	}, nil
}

// Set writes label to the channel status
func (s *service) Set(ctx context.Context, channelID, label string) {
	s.update(ctx, channelID, truncate(label, MaxLabelLength))
}

// Clear removes the channel status
func (s *service) Clear(ctx context.Context, channelID string) {
	s.update(ctx, channelID, "")
}

func (s *service) update(ctx context.Context, channelID, status string) {
	if channelID == "" {
		return
	}

	log := s.logger.With(zap.String("channel_id", channelID))

	if err := s.checkChannel(ctx, channelID); err != nil {
		log.Debug("skipping voice status", zap.Error(err))
		return
	}

	body := &statusBody{Status: status}

	var errs []error
	for _, st := range s.strategies {
		err := s.requester.Request(ctx, st.method, st.url(channelID), body)
		if err == nil {
			log.Debug("voice status updated", zap.String("strategy", st.name))
			return
		}
		errs = append(errs, fmt.Errorf("%s: %w", st.name, err))
	}

	log.Warn("failed to update voice status", zap.Error(errors.Join(errs...)))
}

// checkChannel makes sure the channel is a voice channel we may manage
func (s *service) checkChannel(ctx context.Context, channelID string) error {
	channel, err := s.channels.Channel(ctx, channelID)
	if err != nil {
		return fmt.Errorf("failed to resolve channel: %w", err)
	}

	if channel == nil || channel.Type != discordgo.ChannelTypeGuildVoice {
		return errors.New("channel is not a voice channel")
	}

	perms, err := s.channels.BotPermissions(channelID)
	if err != nil {
		return fmt.Errorf("failed to read permissions: %w", err)
	}

	if perms&discordgo.PermissionManageChannels == 0 {
		return errors.New("missing manage channels permission")
	}

	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
