package suggestion

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/KirkDiggler/sora/internal/search"
	"go.uber.org/zap"
)

// DefaultLimit is the maximum number of suggestions returned
const DefaultLimit = 5

const (
	maxKeywords   = 3
	minKeywordLen = 3
	querySuffix   = "music"
)

var (
	bracketPattern  = regexp.MustCompile(`[\[\]()]`)
	stopWordPattern = regexp.MustCompile(`(?i)official|video|music|mv|audio|lyrics|hd|4k`)
)

// Config holds configuration for the suggestion service
type Config struct {
	Searcher search.Searcher

	// Limit caps the result count, DefaultLimit when zero
	Limit int

	Logger *zap.Logger
}

type service struct {
	searcher search.Searcher
	limit    int
	logger   *zap.Logger
}

// New creates a new suggestion provider
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Searcher == nil {
		return nil, errors.New("searcher cannot be nil")
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		searcher: cfg.Searcher,
		limit:    limit,
		logger:   logger,
	}, nil
}

// BuildQuery derives a keyword search query from a track title: brackets
// and promo words are removed, the first three tokens longer than two
// characters are kept and "music" is appended.
func BuildQuery(title string) string {
	cleaned := bracketPattern.ReplaceAllString(title, " ")
	cleaned = stopWordPattern.ReplaceAllString(cleaned, " ")

	keywords := make([]string, 0, maxKeywords)
	for _, token := range strings.Fields(cleaned) {
		if len([]rune(token)) < minKeywordLen {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return strings.TrimSpace(strings.Join(keywords, " ") + " " + querySuffix)
}

// Similar implements Provider
func (s *service) Similar(ctx context.Context, current *models.Track) []*models.Track {
	if current == nil || current.Title == "" {
		return []*models.Track{}
	}

	query := BuildQuery(current.Title)
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.Debug("suggestion search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return []*models.Track{}
	}

	suggestions := make([]*models.Track, 0, s.limit)
	for _, track := range results {
		if track == nil || track.URL == "" || track.URL == current.URL {
			continue
		}
		suggestions = append(suggestions, track)
		if len(suggestions) == s.limit {
			break
		}
	}

	return suggestions
}
