package models

// DurationUnit says how a Track's Duration is denominated
type DurationUnit string

const (
	// DurationUnitSeconds means Duration is already in seconds
	DurationUnitSeconds DurationUnit = "seconds"

	// DurationUnitMilliseconds means Duration is in milliseconds
	DurationUnitMilliseconds DurationUnit = "milliseconds"

	// DurationUnitUnknown means the source did not say; callers fall back
	// to the magnitude heuristic in the duration normalizer
	DurationUnitUnknown DurationUnit = ""
)

// AutoplayRequester is the requester id recorded for tracks added by autoplay
const AutoplayRequester = "autoplay"

// Track is a playable item resolved by the playback engine or a searcher
type Track struct {
	// Identifier is the source-specific id (e.g. a YouTube video id)
	Identifier string

	// Title of the track
	Title string

	// Author is the uploader or artist
	Author string

	// URL is the canonical source URL; suggestion filtering compares on it
	URL string

	// ArtworkURL is an optional thumbnail
	ArtworkURL string

	// Duration is the raw length as reported by the source
	Duration int64

	// DurationUnit qualifies Duration
	DurationUnit DurationUnit

	// IsStream marks live content with no meaningful duration
	IsStream bool

	// RequesterID is the user who queued the track
	RequesterID string
}

// DisplayTitle returns the title or a placeholder
func (t *Track) DisplayTitle() string {
	if t == nil || t.Title == "" {
		return "Unknown"
	}
	return t.Title
}

// DisplayAuthor returns the author or a placeholder
func (t *Track) DisplayAuthor() string {
	if t == nil || t.Author == "" {
		return "Unknown"
	}
	return t.Author
}
