package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sora/internal/models"
	"go.uber.org/zap"
)

// ErrNoResults is returned when every searcher came back empty
var ErrNoResults = errors.New("no search results")

// Named pairs a searcher with a name for logging
type Named struct {
	Name     string
	Searcher Searcher
}

// ChainConfig holds configuration for a search chain
type ChainConfig struct {
	// Searchers are tried in order; the first non-empty result wins
	Searchers []Named

	Logger *zap.Logger
}

// Chain tries several searchers in priority order
type Chain struct {
	searchers []Named
	logger    *zap.Logger
}

// NewChain creates a new search chain
func NewChain(cfg *ChainConfig) (*Chain, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if len(cfg.Searchers) == 0 {
		return nil, errors.New("at least one searcher is required")
	}

	for i, n := range cfg.Searchers {
		if n.Searcher == nil {
			return nil, fmt.Errorf("searcher %d cannot be nil", i)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Chain{
		searchers: cfg.Searchers,
		logger:    logger,
	}, nil
}

// Search returns the first non-empty result. If all searchers fail the
// last error is returned; if they all succeed empty, ErrNoResults.
func (c *Chain) Search(ctx context.Context, query string) ([]*models.Track, error) {
	var lastErr error

	for _, n := range c.searchers {
		tracks, err := n.Searcher.Search(ctx, query)
		if err != nil {
			c.logger.Debug("searcher failed",
				zap.String("searcher", n.Name),
				zap.String("query", query),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		if len(tracks) > 0 {
			return tracks, nil
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all searchers failed: %w", lastErr)
	}
	return nil, ErrNoResults
}
