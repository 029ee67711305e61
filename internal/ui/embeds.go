package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	ColorBrand   = 0xefe9dc
	ColorIdle    = 0x2f3136
	ColorSuccess = 0x00ff00
	ColorInfo    = 0x3498db
	ColorWarning = 0xffa500
	ColorError   = 0xff0000
)

const footerText = "🎶 Sora - Music Bot"

// NowPlayingView carries everything the now-playing embed shows
type NowPlayingView struct {
	Track           *models.Track
	RequesterID     string
	CurrentSeconds  int64
	DurationSeconds int64
	DurationKnown   bool
	QueueLength     int
	Timestamp       time.Time
}

// NowPlaying builds the now-playing embed of the controls message
func NowPlaying(view NowPlayingView) *discordgo.MessageEmbed {
	if view.Track == nil {
		return Notice("❌ Error", "No track information available.", ColorError, view.Timestamp)
	}

	song, author := splitTitle(view.Track)

	requester := "Anonymous"
	switch {
	case view.RequesterID == models.AutoplayRequester:
		requester = "🎲 Autoplay"
	case view.RequesterID != "":
		requester = fmt.Sprintf("<@%s>", view.RequesterID)
	}

	length := FormatDuration(0)
	progress := FormatDuration(0)
	if view.Track.IsStream {
		length = "🔴 LIVE"
		progress = "🔴 LIVE"
	} else if view.DurationKnown {
		length = FormatDuration(view.DurationSeconds)
		progress = ProgressBar(view.CurrentSeconds, view.DurationSeconds)
	}

	queueText := "📋 Queue is empty"
	if view.QueueLength > 0 {
		queueText = fmt.Sprintf("📋 **%d** in queue", view.QueueLength)
	}

	embed := &discordgo.MessageEmbed{
		Title: "▶️ NOW PLAYING",
		URL:   view.Track.URL,
		Color: ColorBrand,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🎧 Title", Value: song, Inline: true},
			{Name: "👤 Author", Value: author, Inline: true},
			{Name: "⏱ Duration", Value: length, Inline: true},
			{Name: "⏳ Progress", Value: progress, Inline: false},
			{Name: "🙋 Requested by", Value: requester, Inline: true},
			{Name: "📊 Queue", Value: queueText, Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp: timestamp(view.Timestamp),
	}
	if view.Track.ArtworkURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: view.Track.ArtworkURL}
	}

	return embed
}

// Leave is the idle/leave display
func Leave(now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎶 Sora - Music Bot",
		Description: "Playback has ended. Have a great day!",
		Color:       ColorIdle,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   timestamp(now),
	}
}

// Notice is a small titled embed used for transient messages
func Notice(title, description string, color int, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   timestamp(now),
	}
}

// TrackAdded announces a track that was queued behind the current one
func TrackAdded(track *models.Track, position int, now time.Time) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("**%s**\n*%s*", track.DisplayTitle(), track.DisplayAuthor())
	if position > 0 {
		desc += fmt.Sprintf("\nPosition in queue: **%d**", position)
	}
	return Notice("✅ Added to queue", desc, ColorSuccess, now)
}

// AutoAdded announces a track picked by autoplay
func AutoAdded(track *models.Track, now time.Time) *discordgo.MessageEmbed {
	return Notice("🎲 Autoplay added",
		fmt.Sprintf("**%s**\n*by %s*", track.DisplayTitle(), track.DisplayAuthor()),
		ColorSuccess, now)
}

// DownloadPrompt asks for the format of a pending download
func DownloadPrompt(expiresAt, now time.Time) *discordgo.MessageEmbed {
	desc := "Choose the format you want to download:"
	if !expiresAt.IsZero() {
		desc += fmt.Sprintf("\nThese buttons expire <t:%d:R>.", expiresAt.Unix())
	}
	return Notice("🎥 Choose a download format", desc, ColorBrand, now)
}

// DownloadReady accompanies an uploaded file
func DownloadReady(title string, format models.DownloadFormat, now time.Time) *discordgo.MessageEmbed {
	return Notice("🎥 Download complete",
		fmt.Sprintf("**%s** was downloaded as %s.", title, strings.ToUpper(string(format))),
		ColorSuccess, now)
}

// QueueView carries the queue listing
type QueueView struct {
	Current      *models.Track
	Upcoming     []*models.Track
	Remaining    int
	AutoPlayHint bool
}

// Queue renders the queue listing
func Queue(view QueueView, now time.Time) *discordgo.MessageEmbed {
	var b strings.Builder

	if view.Current != nil {
		fmt.Fprintf(&b, "**Now playing:** %s\n\n", view.Current.DisplayTitle())
	}

	if len(view.Upcoming) == 0 {
		b.WriteString("The queue is empty.")
		if view.AutoPlayHint {
			b.WriteString("\n🎲 Autoplay is on and will pick a similar song when this one ends.")
		}
	} else {
		for i, track := range view.Upcoming {
			fmt.Fprintf(&b, "%d. %s\n", i+1, track.DisplayTitle())
		}
		if view.Remaining > 0 {
			fmt.Fprintf(&b, "+%d more", view.Remaining)
		}
	}

	return Notice("📋 Queue", strings.TrimRight(b.String(), "\n"), ColorInfo, now)
}

// Help lists commands and controls
func Help(userID, prefix string, now time.Time) *discordgo.MessageEmbed {
	desc := fmt.Sprintf(`👋 Hi <@%[1]s>, here is how to use **Sora**!

**📜 Commands** (prefix `+"`%[2]s`"+` or slash `+"`/command`"+`)
• **play <url or keywords>** play from YouTube, SoundCloud and more
• **download <youtube url>** (alias `+"`dow`"+`) get the video as MP3, MP4 or AVI
• **queue** (alias `+"`q`"+`) show the upcoming songs
• **leave** disconnect and clear the queue
• **help** show this guide

**🎮 Controls**
• ➕ add a song next
• ⏮️ previous song
• ⏸️/▶️ pause or resume
• ⏭️ skip (or stop if nothing is left)
• 🔁 loop off / track / queue
• 🎲 autoplay on or off
• 🔉/🔊 volume down or up by 10%%
• 📋 show the queue
• 🎵 suggestion menu: pick a similar song or a random one`, userID, prefix)

	return &discordgo.MessageEmbed{
		Title:       "🎶 How to use Sora",
		Description: desc,
		Color:       ColorBrand,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   timestamp(now),
	}
}

// Tag is the reply to a bare mention of the bot
func Tag(userID, prefix string, now time.Time) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("👋 Hey <@%s>, I'm **Sora** >.<\n"+
		"🎶 Start with `/play` or `%splay`\n"+
		"⚡ My prefix here is `%s`\n"+
		"💡 Use `/help` to see everything I can do.", userID, prefix, prefix)

	return &discordgo.MessageEmbed{
		Description: desc,
		Color:       ColorBrand,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
		Timestamp:   timestamp(now),
	}
}

// VoiceStatusLabel is the voice channel label for a playing track
func VoiceStatusLabel(track *models.Track) string {
	return "🎵 " + track.DisplayTitle()
}

// splitTitle splits "Song - Artist" titles, falling back to the track author
func splitTitle(track *models.Track) (string, string) {
	title := track.DisplayTitle()
	parts := strings.SplitN(title, " - ", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[0]) != "" && strings.TrimSpace(parts[1]) != "" {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return title, track.DisplayAuthor()
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
