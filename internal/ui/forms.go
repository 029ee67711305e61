package ui

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/bwmarrin/discordgo"
)

const downloadIDPrefix = "download_"

// AddNextModal is the form opened by the add_next button
func AddNextModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: ModalAddNext,
		Title:    "Add a song next",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    InputSongURL,
						Label:       "Song URL or keywords",
						Style:       discordgo.TextInputShort,
						Placeholder: "https://youtube.com/watch?v=...",
						Required:    true,
						MaxLength:   500,
					},
				},
			},
		},
	}
}

// DownloadID is the custom id of a format button
func DownloadID(format models.DownloadFormat, token string) string {
	return fmt.Sprintf("%s%s_%s", downloadIDPrefix, format, token)
}

// IsDownloadID reports whether customID belongs to a download format button
func IsDownloadID(customID string) bool {
	return strings.HasPrefix(customID, downloadIDPrefix)
}

// ParseDownloadID splits download_<format>_<token>
func ParseDownloadID(customID string) (models.DownloadFormat, string, bool) {
	if !IsDownloadID(customID) {
		return "", "", false
	}

	parts := strings.SplitN(strings.TrimPrefix(customID, downloadIDPrefix), "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return models.DownloadFormat(parts[0]), parts[1], true
}

// DownloadButtons offers each format for token
func DownloadButtons(token string) []discordgo.MessageComponent {
	emojis := map[models.DownloadFormat]string{
		models.DownloadFormatMP3: "🎵",
		models.DownloadFormatMP4: "🎬",
		models.DownloadFormatAVI: "📼",
	}

	buttons := make([]discordgo.MessageComponent, 0, len(models.DownloadFormats))
	for _, format := range models.DownloadFormats {
		buttons = append(buttons, discordgo.Button{
			CustomID: DownloadID(format, token),
			Label:    strings.ToUpper(string(format)),
			Style:    discordgo.PrimaryButton,
			Emoji:    &discordgo.ComponentEmoji{Name: emojis[format]},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}
