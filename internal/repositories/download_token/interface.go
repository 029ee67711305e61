package download_token

import (
	"context"

	"github.com/KirkDiggler/sora/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sora/internal/repositories/download_token Repository

// Repository defines the interface for download token persistence
type Repository interface {
	// SaveLink stores a link under its token until the TTL elapses
	SaveLink(ctx context.Context, input *SaveLinkInput) error

	// ConsumeLink atomically reads and deletes the link for a token
	ConsumeLink(ctx context.Context, input *ConsumeLinkInput) (*models.DownloadLink, error)
}
