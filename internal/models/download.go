package models

import "time"

// DownloadFormat is an output container offered by the download flow
type DownloadFormat string

const (
	DownloadFormatMP3 DownloadFormat = "mp3"
	DownloadFormatMP4 DownloadFormat = "mp4"
	DownloadFormatAVI DownloadFormat = "avi"
)

// DownloadFormats lists the offered formats in display order
var DownloadFormats = []DownloadFormat{
	DownloadFormatMP3,
	DownloadFormatMP4,
	DownloadFormatAVI,
}

// IsValid reports whether f is one of the offered formats
func (f DownloadFormat) IsValid() bool {
	for _, known := range DownloadFormats {
		if f == known {
			return true
		}
	}
	return false
}

// IsAudio reports whether the format is audio-only
func (f DownloadFormat) IsAudio() bool {
	return f == DownloadFormatMP3
}

// DownloadLink is a pending download request addressed by a short-lived token
type DownloadLink struct {
	Token       string    `json:"token"`
	URL         string    `json:"url"`
	RequesterID string    `json:"requester_id"`
	CreatedAt   time.Time `json:"created_at"`
}
