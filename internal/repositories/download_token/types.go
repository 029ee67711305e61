package download_token

import (
	"time"

	"github.com/KirkDiggler/sora/internal/models"
)

// SaveLinkInput contains parameters for saving a download link
type SaveLinkInput struct {
	Link *models.DownloadLink
	TTL  time.Duration
}

// ConsumeLinkInput contains parameters for consuming a download link
type ConsumeLinkInput struct {
	Token string
}
