package suggestion

import (
	"context"

	"github.com/KirkDiggler/sora/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/sora/internal/services/suggestion Provider

// Provider finds tracks similar to the one playing
type Provider interface {
	// Similar returns up to the configured limit of tracks similar to current.
	// It never fails; collaborator errors yield an empty slice.
	Similar(ctx context.Context, current *models.Track) []*models.Track
}
