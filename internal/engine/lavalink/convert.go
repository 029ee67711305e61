package lavalink

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/disgoorg/disgolink/v3/lavalink"
)

// DefaultSearchPrefix routes free-text queries to YouTube search
const DefaultSearchPrefix = "ytsearch:"

// identifierFor turns a user query into a Lavalink load identifier
func identifierFor(query, searchPrefix string) string {
	query = strings.TrimSpace(query)
	if strings.HasPrefix(query, "http://") || strings.HasPrefix(query, "https://") {
		return query
	}
	if strings.Contains(query, "search:") {
		return query
	}
	return searchPrefix + query
}

// tracksFromResult flattens a load result. Searches yield only their
// first hit when first is set; playlists always yield every track.
func tracksFromResult(result *lavalink.LoadResult, first bool) ([]lavalink.Track, error) {
	if result == nil {
		return nil, ErrNoMatches
	}

	switch result.LoadType {
	case lavalink.LoadTypeTrack:
		track, ok := result.Data.(lavalink.Track)
		if !ok {
			return nil, fmt.Errorf("unexpected track payload %T", result.Data)
		}
		return []lavalink.Track{track}, nil

	case lavalink.LoadTypePlaylist:
		playlist, ok := result.Data.(lavalink.Playlist)
		if !ok {
			return nil, fmt.Errorf("unexpected playlist payload %T", result.Data)
		}
		if len(playlist.Tracks) == 0 {
			return nil, ErrNoMatches
		}
		return playlist.Tracks, nil

	case lavalink.LoadTypeSearch:
		search, ok := result.Data.(lavalink.Search)
		if !ok {
			return nil, fmt.Errorf("unexpected search payload %T", result.Data)
		}
		if len(search) == 0 {
			return nil, ErrNoMatches
		}
		if first {
			return []lavalink.Track{search[0]}, nil
		}
		return search, nil

	case lavalink.LoadTypeError:
		if ex, ok := result.Data.(lavalink.Exception); ok {
			return nil, fmt.Errorf("%w: %s", ErrLoadFailed, ex.Message)
		}
		return nil, ErrLoadFailed

	default:
		return nil, ErrNoMatches
	}
}

// toModel converts a Lavalink track. Lavalink reports lengths in milliseconds.
func toModel(t lavalink.Track, requesterID string) *models.Track {
	track := &models.Track{
		Identifier:   t.Info.Identifier,
		Title:        t.Info.Title,
		Author:       t.Info.Author,
		Duration:     int64(t.Info.Length),
		DurationUnit: models.DurationUnitMilliseconds,
		IsStream:     t.Info.IsStream,
		RequesterID:  requesterID,
	}
	if t.Info.URI != nil {
		track.URL = *t.Info.URI
	}
	if t.Info.ArtworkURL != nil {
		track.ArtworkURL = *t.Info.ArtworkURL
	}
	return track
}
