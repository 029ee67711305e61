package discord

import (
	"context"

	"github.com/KirkDiggler/sora/internal/services/player"
	"github.com/KirkDiggler/sora/internal/ui"
	"github.com/bwmarrin/discordgo"
)

// handleComponentInteraction handles button clicks and menu choices
func (b *Bot) handleComponentInteraction(it *interaction) error {
	data := it.event.MessageComponentData()
	req := requestFromInteraction(it.event)

	if ui.IsDownloadID(data.CustomID) {
		return b.handleDownloadButton(it, data.CustomID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	// The form has to be the first response, so it cannot be deferred
	if data.CustomID == ui.ButtonAddNext {
		if !b.playerService.HasSession(req.GuildID) {
			return it.respond(b.errorReply(ctx, player.ErrNoSession))
		}
		return it.modal(ui.AddNextModal())
	}

	if err := it.deferReply(true); err != nil {
		return err
	}

	reply, err := b.control(ctx, req, data.CustomID, data.Values)
	if err != nil {
		reply = b.errorReply(ctx, err)
	}

	return it.edit(reply)
}

// handleDownloadButton converts and uploads the chosen format
func (b *Bot) handleDownloadButton(it *interaction, customID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	if err := it.deferReply(false); err != nil {
		return err
	}

	reply, cleanup, err := b.convertDownload(ctx, customID)
	defer cleanup()
	if err != nil {
		reply = b.errorReply(ctx, err)
	}

	return it.edit(reply)
}

// handleModalSubmit handles the add-next form
func (b *Bot) handleModalSubmit(it *interaction) error {
	data := it.event.ModalSubmitData()
	if data.CustomID != ui.ModalAddNext {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	if err := it.deferReply(true); err != nil {
		return err
	}

	reply, err := b.addNext(ctx, requestFromInteraction(it.event), modalValue(data.Components, ui.InputSongURL))
	if err != nil {
		reply = b.errorReply(ctx, err)
	}

	return it.edit(reply)
}

// modalValue finds the text input with customID among the submitted rows
func modalValue(components []discordgo.MessageComponent, customID string) string {
	for _, c := range components {
		var inner []discordgo.MessageComponent
		switch row := c.(type) {
		case *discordgo.ActionsRow:
			inner = row.Components
		case discordgo.ActionsRow:
			inner = row.Components
		default:
			continue
		}

		for _, ic := range inner {
			switch input := ic.(type) {
			case *discordgo.TextInput:
				if input.CustomID == customID {
					return input.Value
				}
			case discordgo.TextInput:
				if input.CustomID == customID {
					return input.Value
				}
			}
		}
	}
	return ""
}
