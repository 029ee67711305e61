package search

import (
	"context"

	"github.com/KirkDiggler/sora/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_searcher.go github.com/KirkDiggler/sora/internal/search Searcher

// Searcher resolves a free-text query into candidate tracks
type Searcher interface {
	Search(ctx context.Context, query string) ([]*models.Track, error)
}
