package download_token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	tokenKeyPrefix = "download_token:"
)

// ErrTokenNotFound is returned when a token is unknown, used or expired
var ErrTokenNotFound = errors.New("download token not found")

// Config holds configuration for the Redis download token repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed download token repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveLink stores the link with an expiry so abandoned tokens vanish on their own
func (r *redisRepository) SaveLink(ctx context.Context, input *SaveLinkInput) error {
	if input == nil || input.Link == nil {
		return errors.New("input and link cannot be nil")
	}

	link := input.Link

	if link.Token == "" {
		return errors.New("token cannot be empty")
	}

	if input.TTL <= 0 {
		return errors.New("ttl must be positive")
	}

	// Marshal the link to JSON
	linkJSON, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal download link: %w", err)
	}

	key := fmt.Sprintf("%s%s", tokenKeyPrefix, link.Token)
	if err := r.client.Set(ctx, key, linkJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save download link: %w", err)
	}

	return nil
}

// ConsumeLink returns the link and removes it in one step, so a token
// can be redeemed at most once
func (r *redisRepository) ConsumeLink(ctx context.Context, input *ConsumeLinkInput) (*models.DownloadLink, error) {
	if input == nil || input.Token == "" {
		return nil, errors.New("input and token cannot be empty")
	}

	key := fmt.Sprintf("%s%s", tokenKeyPrefix, input.Token)
	linkJSON, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to consume download link: %w", err)
	}

	// Unmarshal the link from JSON
	var link models.DownloadLink
	if err := json.Unmarshal([]byte(linkJSON), &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal download link: %w", err)
	}

	return &link, nil
}
