package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/ppalone/ytsearch"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// YouTube searches YouTube directly, without the playback engine
type YouTube struct {
	client *ytsearch.Client
	limit  int
}

// YouTubeConfig holds configuration for the YouTube searcher
type YouTubeConfig struct {
	// Limit caps the number of returned tracks; zero means no cap
	Limit int
}

// NewYouTube creates a YouTube searcher
func NewYouTube(cfg *YouTubeConfig) *YouTube {
	limit := 0
	if cfg != nil {
		limit = cfg.Limit
	}

	return &YouTube{
		client: ytsearch.NewClient(nil),
		limit:  limit,
	}
}

// Search implements Searcher
func (y *YouTube) Search(ctx context.Context, query string) ([]*models.Track, error) {
	res, err := y.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	tracks := make([]*models.Track, 0, len(res.Results))
	for _, r := range res.Results {
		if r.VideoID == "" {
			continue
		}

		seconds, known := parseColonDuration(r.Duration)
		tracks = append(tracks, &models.Track{
			Identifier:   r.VideoID,
			Title:        r.Title,
			Author:       r.Channel,
			URL:          youtubeWatchURL + r.VideoID,
			Duration:     seconds,
			DurationUnit: models.DurationUnitSeconds,
			IsStream:     !known,
		})

		if y.limit > 0 && len(tracks) >= y.limit {
			break
		}
	}

	return tracks, nil
}

// parseColonDuration parses "3:20" or "1:05:20" into seconds
func parseColonDuration(s string) (int64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	var total int64
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, total > 0
}
