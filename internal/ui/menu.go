package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Suggestion menu option values
const (
	OptionRandomNext    = "random_next"
	OptionNoSuggestions = "no_suggestions"

	suggestionValuePrefix = "suggestion_"
)

const (
	maxOptionLabel       = 100
	maxOptionDescription = 50
)

// SuggestionMenu builds the suggestion select menu. The first option is
// always random_next; suggestion_<i> follows for each entry, and
// no_suggestions is added when there is nothing to offer.
func SuggestionMenu(suggestions []*models.Track) discordgo.SelectMenu {
	minValues := 1

	options := []discordgo.SelectMenuOption{
		{
			Label:       "Random pick",
			Value:       OptionRandomNext,
			Description: "Let the bot choose what plays next",
			Emoji:       &discordgo.ComponentEmoji{Name: "🎲"},
		},
	}

	for i, track := range suggestions {
		if track == nil || track.Title == "" {
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(track.Title, maxOptionLabel),
			Value:       SuggestionValue(i),
			Description: truncate("♪ "+track.DisplayAuthor(), maxOptionDescription),
			Emoji:       &discordgo.ComponentEmoji{Name: "🎵"},
		})
	}

	if len(options) == 1 {
		options = append(options, discordgo.SelectMenuOption{
			Label:       "No suggestions found",
			Value:       OptionNoSuggestions,
			Description: "Add a song yourself or use random pick",
			Emoji:       &discordgo.ComponentEmoji{Name: "❌"},
		})
	}

	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    SelectSuggestion,
		Placeholder: "Pick the next song or let the bot decide...",
		MinValues:   &minValues,
		MaxValues:   1,
		Options:     options,
	}
}

// SuggestionValue is the option value for suggestion index i
func SuggestionValue(i int) string {
	return fmt.Sprintf("%s%d", suggestionValuePrefix, i)
}

// ParseSuggestionValue extracts the index from a suggestion_<i> value
func ParseSuggestionValue(value string) (int, bool) {
	if !strings.HasPrefix(value, suggestionValuePrefix) {
		return 0, false
	}

	i, err := strconv.Atoi(strings.TrimPrefix(value, suggestionValuePrefix))
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// truncate cuts s to max runes, ending in "..." when shortened
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
