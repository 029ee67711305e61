package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/sora/internal/common/clock"
	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/KirkDiggler/sora/internal/common/uuid"
	"github.com/KirkDiggler/sora/internal/models"
	tokenRepo "github.com/KirkDiggler/sora/internal/repositories/download_token"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	dir       string
	ttl       time.Duration
	maxBytes  int64
	tokenRepo tokenRepo.Repository
	converter Converter
	clock     clock.Clock
	uuid      uuid.UUID
	logger    *zap.Logger
}

// New creates a new download service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TokenRepo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Converter == nil {
		return nil, ErrNilConverter
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		dir:       cfg.Dir,
		ttl:       cfg.TokenTTL,
		maxBytes:  cfg.MaxBytes,
		tokenRepo: cfg.TokenRepo,
		converter: cfg.Converter,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
		logger:    logger.OrNop(cfg.Logger),
	}

	if svc.dir == "" {
		svc.dir = DefaultDir
	}
	if svc.ttl <= 0 {
		svc.ttl = DefaultTokenTTL
	}
	if svc.maxBytes <= 0 {
		svc.maxBytes = DefaultMaxBytes
	}

	return svc, nil
}

// CreateLink stores the URL under a fresh token
func (s *service) CreateLink(ctx context.Context, input *CreateLinkInput) (*CreateLinkOutput, error) {
	if input == nil {
		return nil, ErrEmptyURL
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, ErrEmptyURL
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, ErrInvalidURL
	}

	now := s.clock.Now()
	token := s.uuid.NewUUID()

	err := s.tokenRepo.SaveLink(ctx, &tokenRepo.SaveLinkInput{
		Link: &models.DownloadLink{
			Token:       token,
			URL:         url,
			RequesterID: input.RequesterID,
			CreatedAt:   now,
		},
		TTL: s.ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save download link: %w", err)
	}

	formats := make([]models.DownloadFormat, len(models.DownloadFormats))
	copy(formats, models.DownloadFormats)

	return &CreateLinkOutput{
		Token:     token,
		Formats:   formats,
		ExpiresAt: now.Add(s.ttl),
	}, nil
}

// Convert redeems the token and converts its URL. The token is spent even
// when conversion fails.
func (s *service) Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrLinkExpired
	}

	// Validate the format before spending the token
	if !input.Format.IsValid() {
		return nil, ErrUnsupportedFormat
	}

	// Redeem the token
	link, err := s.tokenRepo.ConsumeLink(ctx, &tokenRepo.ConsumeLinkInput{
		Token: input.Token,
	})
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			return nil, ErrLinkExpired
		}
		return nil, fmt.Errorf("failed to read download link: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	// Convert
	result, err := s.converter.Convert(ctx, &ConversionRequest{
		URL:    link.URL,
		Format: input.Format,
		Dir:    s.dir,
		Token:  input.Token,
	})
	if err != nil {
		s.logger.Warn("conversion failed",
			zap.String("url", link.URL),
			zap.String("format", string(input.Format)),
			zap.Error(err))
		if errors.Is(err, ErrFFmpegMissing) {
			return nil, ErrFFmpegMissing
		}
		return nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	// Check the output
	info, err := os.Stat(result.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: output file missing: %v", ErrConversionFailed, err)
	}

	if info.Size() > s.maxBytes {
		if err := os.Remove(result.FilePath); err != nil {
			s.logger.Warn("failed to remove oversized file", zap.String("path", result.FilePath), zap.Error(err))
		}
		return nil, ErrFileTooLarge
	}

	title := result.Title
	if title == "" {
		title = "Unknown Title"
	}

	return &ConvertOutput{
		FilePath: result.FilePath,
		FileName: strings.TrimPrefix(filepath.Base(result.FilePath), input.Token+"-"),
		Title:    title,
		Size:     info.Size(),
		Format:   input.Format,
	}, nil
}
