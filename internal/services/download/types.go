package download

import (
	"time"

	"github.com/KirkDiggler/sora/internal/common/clock"
	"github.com/KirkDiggler/sora/internal/common/uuid"
	"github.com/KirkDiggler/sora/internal/models"
	tokenRepo "github.com/KirkDiggler/sora/internal/repositories/download_token"
	"go.uber.org/zap"
)

const (
	// DefaultTokenTTL bounds how long format buttons stay usable
	DefaultTokenTTL = 5 * time.Minute

	// DefaultMaxBytes is the upload ceiling for converted files
	DefaultMaxBytes int64 = 8 * 1024 * 1024

	// DefaultDir is where converted files are written
	DefaultDir = "downloads"
)

// Config holds configuration for the download service
type Config struct {
	// Directory for converted files
	Dir string

	// Token lifetime
	TokenTTL time.Duration

	// Largest file we hand back
	MaxBytes int64

	// Repository dependencies
	TokenRepo tokenRepo.Repository

	// Service dependencies
	Converter     Converter
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// CreateLinkInput contains parameters for creating a download link
type CreateLinkInput struct {
	URL         string
	RequesterID string
}

// CreateLinkOutput contains the result of creating a download link
type CreateLinkOutput struct {
	Token     string
	Formats   []models.DownloadFormat
	ExpiresAt time.Time
}

// ConvertInput contains parameters for redeeming a download link
type ConvertInput struct {
	Token  string
	Format models.DownloadFormat
}

// ConvertOutput contains the converted file. The caller owns the file and
// removes it once uploaded.
type ConvertOutput struct {
	FilePath string
	FileName string
	Title    string
	Size     int64
	Format   models.DownloadFormat
}

// ConversionRequest is a single conversion job
type ConversionRequest struct {
	URL    string
	Format models.DownloadFormat
	Dir    string

	// Token prefixes the output name so concurrent jobs never share a file
	Token string
}

// ConversionResult is where the converter left its output
type ConversionResult struct {
	FilePath string
	Title    string
}
