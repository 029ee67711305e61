package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// parsePrefixCommand splits "<prefix><command> <args>" into a lowercase
// command and its raw argument string
func parsePrefixCommand(prefix, content string) (string, string, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(content, prefix))
	if rest == "" {
		return "", "", false
	}

	cmd, args, _ := strings.Cut(rest, " ")
	return strings.ToLower(cmd), strings.TrimSpace(args), true
}

// isBareMention reports whether content only mentions userID
func isBareMention(content, userID string) bool {
	content = strings.TrimSpace(content)
	return userID != "" && (content == "<@"+userID+">" || content == "<@!"+userID+">")
}

// runPrefixCommand runs a message command. ok is false for unknown commands.
func (b *Bot) runPrefixCommand(ctx context.Context, req *Request, cmd, args string) (reply *Reply, ok bool, err error) {
	switch cmd {
	case "play", "p":
		reply, err = b.play(ctx, req, args)
	case "leave":
		reply, err = b.leave(ctx, req)
	case "queue", "q":
		reply, err = b.queue(ctx, req, queueLimitCommand)
	case "help":
		reply = b.help(req)
	case "dow", "download":
		reply, err = b.downloadPrompt(ctx, req, args)
	default:
		return nil, false, nil
	}

	return reply, true, err
}

// handleMessageCreate serves prefix commands and mentions
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	var botUserID string
	if s.State != nil && s.State.User != nil {
		botUserID = s.State.User.ID
	}
	b.serveMessage(s, botUserID, m)
}

func (b *Bot) serveMessage(api discordAPI, botUserID string, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	req := requestFromMessage(m)
	reference := m.Reference()

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("message handler panicked", zap.Any("panic", r), zap.String("guild_id", m.GuildID))
			b.send(api, req, b.internalErrorReply(), nil)
		}
	}()

	if isBareMention(m.Content, botUserID) {
		b.send(api, req, b.tag(req), reference)
		return
	}

	cmd, args, ok := parsePrefixCommand(b.config.Prefix, m.Content)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	reply, ok, err := b.runPrefixCommand(ctx, req, cmd, args)
	if !ok {
		return
	}
	if err != nil {
		reply = b.errorReply(ctx, err)
	}

	// The download prompt replaces the request message
	if cmd == "dow" || cmd == "download" {
		if err := api.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			b.logger.Debug("failed to delete download request", zap.Error(err))
		}
		reference = nil
	}

	b.send(api, req, reply, reference)
}

func (b *Bot) send(api discordAPI, req *Request, reply *Reply, reference *discordgo.MessageReference) {
	if _, err := api.ChannelMessageSendComplex(req.ChannelID, renderMessageSend(reply, reference)); err != nil {
		b.logger.Warn("failed to send reply",
			zap.String("guild_id", req.GuildID), zap.String("channel_id", req.ChannelID), zap.Error(err))
	}
}
