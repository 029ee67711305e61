package discord

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/sora/internal/common/clock/mocks"
	"github.com/KirkDiggler/sora/internal/common/ratelimit"
	"github.com/KirkDiggler/sora/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/KirkDiggler/sora/internal/services/download"
	downloadMocks "github.com/KirkDiggler/sora/internal/services/download/mocks"
	"github.com/KirkDiggler/sora/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/sora/internal/services/messaging/mocks"
	"github.com/KirkDiggler/sora/internal/services/player"
	"github.com/KirkDiggler/sora/internal/ui"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPlayer    *mocks.MockService
	mockMessaging *messagingMocks.MockService
	mockDownload  *downloadMocks.MockService
	mockClock     *clockMocks.MockClock
	bot           *Bot
	ctx           context.Context

	// Test data
	testTime     time.Time
	voiceChannel string
	req          *Request
	testTrack    *models.Track
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayer = mocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockDownload = downloadMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.voiceChannel = "voice-1"
	s.req = &Request{GuildID: "guild-1", ChannelID: "text-1", UserID: "user-1"}
	s.testTrack = &models.Track{Title: "Song", Author: "Artist", URL: "https://youtu.be/a"}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)

	bot, err := New(&Config{
		Session:          session,
		ReportURL:        "https://example.com/report",
		PlayerService:    s.mockPlayer,
		DownloadService:  s.mockDownload,
		MessagingService: s.mockMessaging,
		PlayLimiter:      ratelimit.New(&ratelimit.Config{Every: time.Hour, Burst: 1}),
		Clock:            s.mockClock,
	})
	s.Require().NoError(err)
	bot.voiceOf = func(guildID, userID string) (string, bool) {
		return s.voiceChannel, s.voiceChannel != ""
	}
	s.bot = bot
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) expectAck(input *messaging.GetActionMessageInput, message string) {
	s.mockMessaging.EXPECT().
		GetActionMessage(gomock.Any(), input).
		Return(&messaging.GetActionMessageOutput{Message: message}, nil)
}

func (s *BotTestSuite) TestNewValidation() {
	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)

	_, err = New(nil)
	s.Error(err)

	_, err = New(&Config{Session: session})
	s.EqualError(err, "player service cannot be nil")

	bot, err := New(&Config{
		Session:          session,
		PlayerService:    s.mockPlayer,
		DownloadService:  s.mockDownload,
		MessagingService: s.mockMessaging,
	})
	s.Require().NoError(err)
	s.Equal(DefaultPrefix, bot.config.Prefix)
}

func (s *BotTestSuite) TestPlayStarts() {
	s.mockPlayer.EXPECT().
		Play(gomock.Any(), &player.PlayInput{
			GuildID:        "guild-1",
			TextChannelID:  "text-1",
			VoiceChannelID: "voice-1",
			RequesterID:    "user-1",
			Query:          "never gonna",
		}).
		Return(&player.PlayOutput{Track: s.testTrack, Created: true}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionPlaying, Track: s.testTrack}, "playing")

	reply, err := s.bot.play(s.ctx, s.req, "  never gonna ")

	s.Require().NoError(err)
	s.Require().Len(reply.Embeds, 1)
	s.Equal("playing", reply.Embeds[0].Description)
	s.True(reply.Ephemeral)
}

func (s *BotTestSuite) TestPlayQueued() {
	s.mockPlayer.EXPECT().Play(gomock.Any(), gomock.Any()).
		Return(&player.PlayOutput{Track: s.testTrack, Queued: true}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionQueued, Track: s.testTrack}, "queued")

	reply, err := s.bot.play(s.ctx, s.req, "song")

	s.Require().NoError(err)
	s.Equal("queued", reply.Embeds[0].Description)
}

func (s *BotTestSuite) TestPlayRequiresVoice() {
	s.voiceChannel = ""

	_, err := s.bot.play(s.ctx, s.req, "song")

	s.ErrorIs(err, player.ErrNotInVoice)
}

func (s *BotTestSuite) TestPlayEmptyQuery() {
	_, err := s.bot.play(s.ctx, s.req, "   ")

	s.ErrorIs(err, player.ErrEmptyQuery)
}

func (s *BotTestSuite) TestPlayRateLimitedPerUser() {
	s.mockPlayer.EXPECT().Play(gomock.Any(), gomock.Any()).
		Return(&player.PlayOutput{Track: s.testTrack}, nil).Times(2)
	s.mockMessaging.EXPECT().GetActionMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetActionMessageOutput{Message: "ok"}, nil).Times(2)

	_, err := s.bot.play(s.ctx, s.req, "one")
	s.Require().NoError(err)

	_, err = s.bot.play(s.ctx, s.req, "two")
	s.ErrorIs(err, ratelimit.ErrRateLimited)

	other := &Request{GuildID: "guild-1", ChannelID: "text-1", UserID: "user-2"}
	_, err = s.bot.play(s.ctx, other, "three")
	s.NoError(err)
}

func (s *BotTestSuite) TestPlayFailurePropagates() {
	s.mockPlayer.EXPECT().Play(gomock.Any(), gomock.Any()).Return(nil, player.ErrNoResults)

	_, err := s.bot.play(s.ctx, s.req, "song")

	s.ErrorIs(err, player.ErrNoResults)
}

func (s *BotTestSuite) TestLeave() {
	s.mockPlayer.EXPECT().Leave(gomock.Any(), &player.GuildInput{GuildID: "guild-1", UserID: "user-1"}).Return(nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionLeft}, "bye")

	reply, err := s.bot.leave(s.ctx, s.req)

	s.Require().NoError(err)
	s.Equal("bye", reply.Embeds[0].Description)
}

func (s *BotTestSuite) TestLeaveWithoutSession() {
	s.mockPlayer.EXPECT().Leave(gomock.Any(), gomock.Any()).Return(player.ErrNoSession)

	_, err := s.bot.leave(s.ctx, s.req)

	s.ErrorIs(err, player.ErrNoSession)
}

func (s *BotTestSuite) TestHelpCarriesReportLink() {
	reply := s.bot.help(s.req)

	s.Require().Len(reply.Embeds, 1)
	s.Contains(reply.Embeds[0].Description, "<@user-1>")
	s.Require().Len(reply.Components, 1)
	row := reply.Components[0].(discordgo.ActionsRow)
	s.Equal("https://example.com/report", row.Components[0].(discordgo.Button).URL)
}

func (s *BotTestSuite) TestDownloadPrompt() {
	expires := s.testTime.Add(5 * time.Minute)
	s.mockDownload.EXPECT().
		CreateLink(gomock.Any(), &download.CreateLinkInput{URL: "https://youtu.be/a", RequesterID: "user-1"}).
		Return(&download.CreateLinkOutput{Token: "tok", Formats: models.DownloadFormats, ExpiresAt: expires}, nil)

	reply, err := s.bot.downloadPrompt(s.ctx, s.req, " https://youtu.be/a ")

	s.Require().NoError(err)
	s.Require().Len(reply.Components, 1)
	row := reply.Components[0].(discordgo.ActionsRow)
	s.Len(row.Components, len(models.DownloadFormats))
	s.Equal(ui.DownloadID(models.DownloadFormatMP3, "tok"), row.Components[0].(discordgo.Button).CustomID)
}

func (s *BotTestSuite) TestDownloadPromptRejected() {
	s.mockDownload.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil, download.ErrInvalidURL)

	_, err := s.bot.downloadPrompt(s.ctx, s.req, "ftp://nope")

	s.ErrorIs(err, download.ErrInvalidURL)
}

func (s *BotTestSuite) TestConvertDownloadUploadsAndCleansUp() {
	path := filepath.Join(s.T().TempDir(), "song.mp4")
	s.Require().NoError(os.WriteFile(path, []byte("data"), 0o644))

	s.mockDownload.EXPECT().
		Convert(gomock.Any(), &download.ConvertInput{Token: "tok", Format: models.DownloadFormatMP4}).
		Return(&download.ConvertOutput{
			FilePath: path,
			FileName: "song.mp4",
			Title:    "Song",
			Size:     4,
			Format:   models.DownloadFormatMP4,
		}, nil)

	reply, cleanup, err := s.bot.convertDownload(s.ctx, ui.DownloadID(models.DownloadFormatMP4, "tok"))

	s.Require().NoError(err)
	s.Require().Len(reply.Files, 1)
	s.Equal("song.mp4", reply.Files[0].Name)
	s.Equal("**Song** was downloaded as MP4.", reply.Embeds[0].Description)

	cleanup()
	_, statErr := os.Stat(path)
	s.True(os.IsNotExist(statErr))
}

func (s *BotTestSuite) TestConvertDownloadMalformedID() {
	_, cleanup, err := s.bot.convertDownload(s.ctx, "download_mp3")
	cleanup()

	s.ErrorIs(err, ErrBadDownloadID)
}

func (s *BotTestSuite) TestConvertDownloadExpired() {
	s.mockDownload.EXPECT().Convert(gomock.Any(), gomock.Any()).Return(nil, download.ErrLinkExpired)

	_, cleanup, err := s.bot.convertDownload(s.ctx, ui.DownloadID(models.DownloadFormatMP3, "tok"))
	cleanup()

	s.ErrorIs(err, download.ErrLinkExpired)
}

func (s *BotTestSuite) TestControlPause() {
	s.mockPlayer.EXPECT().TogglePause(gomock.Any(), gomock.Any()).Return(&player.TogglePauseOutput{Paused: true}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionPaused}, "paused")

	reply, err := s.bot.control(s.ctx, s.req, ui.ButtonPause, nil)

	s.Require().NoError(err)
	s.Equal("paused", reply.Embeds[0].Description)
}

func (s *BotTestSuite) TestControlResume() {
	s.mockPlayer.EXPECT().TogglePause(gomock.Any(), gomock.Any()).Return(&player.TogglePauseOutput{Paused: false}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionResumed}, "resumed")

	_, err := s.bot.control(s.ctx, s.req, ui.ButtonResume, nil)

	s.NoError(err)
}

func (s *BotTestSuite) TestControlSkipOutcomes() {
	testCases := []struct {
		name   string
		output *player.SkipOutput
		want   *messaging.GetActionMessageInput
	}{
		{
			name:   "next track",
			output: &player.SkipOutput{Next: s.testTrack},
			want:   &messaging.GetActionMessageInput{Action: messaging.ActionSkipped, Track: s.testTrack},
		},
		{
			name:   "autoplay",
			output: &player.SkipOutput{AutoPlayed: true},
			want:   &messaging.GetActionMessageInput{Action: messaging.ActionSkippedAutoPlay},
		},
		{
			name:   "stopped",
			output: &player.SkipOutput{Stopped: true},
			want:   &messaging.GetActionMessageInput{Action: messaging.ActionStopped},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockPlayer.EXPECT().Skip(gomock.Any(), gomock.Any()).Return(tc.output, nil)
			s.expectAck(tc.want, tc.name)

			reply, err := s.bot.control(s.ctx, s.req, ui.ButtonSkip, nil)

			s.Require().NoError(err)
			s.Equal(tc.name, reply.Embeds[0].Description)
		})
	}
}

func (s *BotTestSuite) TestControlPreviousWithoutHistory() {
	s.mockPlayer.EXPECT().Previous(gomock.Any(), gomock.Any()).Return(player.ErrNoHistory)

	_, err := s.bot.control(s.ctx, s.req, ui.ButtonPrevious, nil)

	s.ErrorIs(err, player.ErrNoHistory)
}

func (s *BotTestSuite) TestControlLoop() {
	s.mockPlayer.EXPECT().CycleRepeat(gomock.Any(), gomock.Any()).
		Return(&player.CycleRepeatOutput{Mode: models.RepeatModeQueue}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionRepeat, Mode: models.RepeatModeQueue}, "queue")

	_, err := s.bot.control(s.ctx, s.req, ui.ButtonLoop, nil)

	s.NoError(err)
}

func (s *BotTestSuite) TestControlAutoplay() {
	s.mockPlayer.EXPECT().ToggleAutoPlay(gomock.Any(), gomock.Any()).
		Return(&player.ToggleAutoPlayOutput{Enabled: false}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionAutoPlay, Enabled: false}, "off")

	_, err := s.bot.control(s.ctx, s.req, ui.ButtonToggleAutoplay, nil)

	s.NoError(err)
}

func (s *BotTestSuite) TestControlVolume() {
	s.mockPlayer.EXPECT().
		AdjustVolume(gomock.Any(), &player.AdjustVolumeInput{GuildID: "guild-1", Delta: -player.VolumeStep}).
		Return(&player.AdjustVolumeOutput{Volume: 40}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionVolume, Volume: 40}, "40")

	_, err := s.bot.control(s.ctx, s.req, ui.ButtonDecreaseVolume, nil)
	s.Require().NoError(err)

	s.mockPlayer.EXPECT().
		AdjustVolume(gomock.Any(), &player.AdjustVolumeInput{GuildID: "guild-1", Delta: player.VolumeStep}).
		Return(&player.AdjustVolumeOutput{Volume: 50}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionVolume, Volume: 50}, "50")

	_, err = s.bot.control(s.ctx, s.req, ui.ButtonIncreaseVolume, nil)
	s.NoError(err)
}

func (s *BotTestSuite) TestControlStop() {
	s.mockPlayer.EXPECT().Stop(gomock.Any(), gomock.Any()).Return(nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionStop}, "stopped")

	_, err := s.bot.control(s.ctx, s.req, ui.ButtonStop, nil)

	s.NoError(err)
}

func (s *BotTestSuite) TestControlQueueUsesButtonLimit() {
	s.mockPlayer.EXPECT().
		GetQueue(gomock.Any(), &player.GetQueueInput{GuildID: "guild-1", Limit: player.QueueLimitButton}).
		Return(&player.GetQueueOutput{Current: s.testTrack, AutoPlayHint: true}, nil)

	reply, err := s.bot.control(s.ctx, s.req, ui.ButtonQueue, nil)

	s.Require().NoError(err)
	s.True(reply.Ephemeral)
	s.Contains(reply.Embeds[0].Description, "**Now playing:** Song")
	s.Contains(reply.Embeds[0].Description, "Autoplay is on")
}

func (s *BotTestSuite) TestControlSuggestionOutcomes() {
	testCases := []struct {
		name   string
		values []string
		output *player.SelectSuggestionOutput
		want   *messaging.GetActionMessageInput
	}{
		{
			name:   "random next",
			values: []string{ui.OptionRandomNext},
			output: &player.SelectSuggestionOutput{Action: player.SelectActionAutoPlay},
			want:   &messaging.GetActionMessageInput{Action: messaging.ActionAutoPlay, Enabled: true},
		},
		{
			name:   "no suggestions",
			values: []string{ui.OptionNoSuggestions},
			output: &player.SelectSuggestionOutput{Action: player.SelectActionNoSuggestions},
			want:   &messaging.GetActionMessageInput{Action: messaging.ActionNoSuggestions},
		},
		{
			name:   "added",
			values: []string{ui.SuggestionValue(0)},
			output: &player.SelectSuggestionOutput{Action: player.SelectActionAdded, Track: s.testTrack},
			want:   &messaging.GetActionMessageInput{Action: messaging.ActionQueued, Track: s.testTrack},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockPlayer.EXPECT().
				SelectSuggestion(gomock.Any(), &player.SelectSuggestionInput{GuildID: "guild-1", UserID: "user-1", Value: tc.values[0]}).
				Return(tc.output, nil)
			s.expectAck(tc.want, tc.name)

			_, err := s.bot.control(s.ctx, s.req, ui.SelectSuggestion, tc.values)

			s.NoError(err)
		})
	}
}

func (s *BotTestSuite) TestControlUnknown() {
	_, err := s.bot.control(s.ctx, s.req, "dance", nil)

	s.ErrorIs(err, ErrUnknownComponent)
}

func (s *BotTestSuite) TestAddNext() {
	s.mockPlayer.EXPECT().
		AddNext(gomock.Any(), &player.AddNextInput{GuildID: "guild-1", UserID: "user-1", URL: "https://youtu.be/b"}).
		Return(&player.AddNextOutput{Track: s.testTrack}, nil)
	s.expectAck(&messaging.GetActionMessageInput{Action: messaging.ActionQueued, Track: s.testTrack}, "added")

	reply, err := s.bot.addNext(s.ctx, s.req, "https://youtu.be/b")

	s.Require().NoError(err)
	s.Equal("added", reply.Embeds[0].Description)
}

func (s *BotTestSuite) TestErrorReplyUsesMessaging() {
	s.mockMessaging.EXPECT().
		GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{Err: player.ErrNoSession}).
		Return(&messaging.GetErrorMessageOutput{Title: "Nothing playing", Message: "Start with /play"}, nil)

	reply := s.bot.errorReply(s.ctx, player.ErrNoSession)

	s.True(reply.Ephemeral)
	s.Equal("Nothing playing", reply.Embeds[0].Title)
	s.Equal("Start with /play", reply.Embeds[0].Description)
	s.Equal(ui.ColorError, reply.Embeds[0].Color)
}

func (s *BotTestSuite) TestErrorReplyFallsBack() {
	s.mockMessaging.EXPECT().GetErrorMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	reply := s.bot.errorReply(s.ctx, errors.New("engine down"))

	s.Equal("Something went wrong, please try again.", reply.Embeds[0].Description)
}

func (s *BotTestSuite) TestRunPrefixCommand() {
	s.mockPlayer.EXPECT().
		GetQueue(gomock.Any(), &player.GetQueueInput{GuildID: "guild-1", Limit: player.QueueLimitCommand}).
		Return(&player.GetQueueOutput{}, nil)

	reply, ok, err := s.bot.runPrefixCommand(s.ctx, s.req, "q", "")
	s.True(ok)
	s.Require().NoError(err)
	s.Contains(reply.Embeds[0].Description, "The queue is empty.")

	_, ok, err = s.bot.runPrefixCommand(s.ctx, s.req, "dance", "")
	s.False(ok)
	s.NoError(err)
}

func (s *BotTestSuite) TestRunPrefixPlayPassesArgs() {
	var query string
	s.mockPlayer.EXPECT().Play(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *player.PlayInput) (*player.PlayOutput, error) {
			query = input.Query
			return &player.PlayOutput{Track: s.testTrack}, nil
		})
	s.mockMessaging.EXPECT().GetActionMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetActionMessageOutput{Message: "ok"}, nil)

	_, ok, err := s.bot.runPrefixCommand(s.ctx, s.req, "play", "lofi beats")

	s.True(ok)
	s.NoError(err)
	s.Equal("lofi beats", query)
}

func (s *BotTestSuite) TestSlashCommands() {
	var names []string
	for _, cmd := range s.bot.slashCommands() {
		names = append(names, cmd.GetName())
		s.False(*cmd.GetCommand().DMPermission)
	}

	s.Equal([]string{"play", "leave", "queue", "help", "download", "dow"}, names)
}

func (s *BotTestSuite) TestSlashDownloadAliasShares() {
	s.mockDownload.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
		Return(&download.CreateLinkOutput{Token: "tok", ExpiresAt: s.testTime}, nil).Times(2)

	for _, cmd := range s.bot.slashCommands() {
		if cmd.GetName() != "download" && cmd.GetName() != "dow" {
			continue
		}
		reply, err := cmd.Handle(s.ctx, s.req, map[string]string{"url": "https://youtu.be/a"})
		s.Require().NoError(err)
		s.NotEmpty(reply.Components)
	}
}

type HelpersTestSuite struct {
	suite.Suite
}

func TestHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(HelpersTestSuite))
}

func (s *HelpersTestSuite) TestParsePrefixCommand() {
	testCases := []struct {
		content string
		cmd     string
		args    string
		ok      bool
	}{
		{content: "0play never gonna give", cmd: "play", args: "never gonna give", ok: true},
		{content: "  0Q  ", cmd: "q", ok: true},
		{content: "0dow https://youtu.be/a", cmd: "dow", args: "https://youtu.be/a", ok: true},
		{content: "0", ok: false},
		{content: "play something", ok: false},
	}

	for _, tc := range testCases {
		s.Run(tc.content, func() {
			cmd, args, ok := parsePrefixCommand("0", tc.content)
			s.Equal(tc.ok, ok)
			s.Equal(tc.cmd, cmd)
			s.Equal(tc.args, args)
		})
	}
}

func (s *HelpersTestSuite) TestIsBareMention() {
	s.True(isBareMention("<@123>", "123"))
	s.True(isBareMention(" <@!123> ", "123"))
	s.False(isBareMention("<@123> play", "123"))
	s.False(isBareMention("<@>", ""))
}

func (s *HelpersTestSuite) TestModalValue() {
	components := []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "other", Value: "x"},
			},
		},
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: ui.InputSongURL, Value: "https://youtu.be/b"},
			},
		},
	}

	s.Equal("https://youtu.be/b", modalValue(components, ui.InputSongURL))
	s.Equal("", modalValue(components, "missing"))
}

func (s *HelpersTestSuite) TestCommandOptions() {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "query", Type: discordgo.ApplicationCommandOptionString, Value: "song"},
		{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(2)},
	}

	s.Equal(map[string]string{"query": "song"}, commandOptions(options))
}

func (s *HelpersTestSuite) TestRenderWebhookEditClearsComponents() {
	edit := renderWebhookEdit(&Reply{})

	s.Require().NotNil(edit.Components)
	s.Empty(*edit.Components)
}

func (s *HelpersTestSuite) TestRenderResponseDataEphemeral() {
	data := renderResponseData(&Reply{Ephemeral: true})

	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)
}

func (s *HelpersTestSuite) TestRequestFromInteraction() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		GuildID:   "g",
		ChannelID: "c",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "u"}},
	}}

	s.Equal(&Request{GuildID: "g", ChannelID: "c", UserID: "u"}, requestFromInteraction(i))
}

// recordingAPI captures what the bot sends back to Discord
type recordingAPI struct {
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	sends     []*discordgo.MessageSend
	deletes   []string
}

func (r *recordingAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return nil
}

func (r *recordingAPI) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.edits = append(r.edits, edit)
	return &discordgo.Message{}, nil
}

func (r *recordingAPI) ChannelMessageSendComplex(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.sends = append(r.sends, data)
	return &discordgo.Message{}, nil
}

func (r *recordingAPI) ChannelMessageDelete(_, messageID string, _ ...discordgo.RequestOption) error {
	r.deletes = append(r.deletes, messageID)
	return nil
}

func (s *BotTestSuite) buttonClick(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   "guild-1",
			ChannelID: "text-1",
			Member:    &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
			Data:      discordgo.MessageComponentInteractionData{CustomID: customID},
		},
	}
}

func (s *BotTestSuite) TestPanicAfterDeferEditsGenericError() {
	api := &recordingAPI{}
	s.mockPlayer.EXPECT().Skip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *player.GuildInput) (*player.SkipOutput, error) {
			panic("engine exploded")
		})

	s.NotPanics(func() {
		s.bot.serveInteraction(&interaction{api: api, event: s.buttonClick(ui.ButtonSkip)})
	})

	s.Require().Len(api.responses, 1)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, api.responses[0].Type)
	s.Require().Len(api.edits, 1)
	s.Require().NotNil(api.edits[0].Embeds)
	embeds := *api.edits[0].Embeds
	s.Require().Len(embeds, 1)
	s.Equal("❌ Error", embeds[0].Title)
	s.Equal("Something went wrong, please try again.", embeds[0].Description)
}

func (s *BotTestSuite) TestPanicBeforeDeferRespondsGenericError() {
	api := &recordingAPI{}
	s.mockPlayer.EXPECT().HasSession("guild-1").
		DoAndReturn(func(string) bool {
			panic("registry exploded")
		})

	s.NotPanics(func() {
		s.bot.serveInteraction(&interaction{api: api, event: s.buttonClick(ui.ButtonAddNext)})
	})

	s.Empty(api.edits)
	s.Require().Len(api.responses, 1)
	resp := api.responses[0]
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Something went wrong, please try again.", resp.Data.Embeds[0].Description)
}

func (s *BotTestSuite) TestPanicInPrefixCommandSendsGenericError() {
	api := &recordingAPI{}
	s.mockPlayer.EXPECT().Leave(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *player.GuildInput) error {
			panic("leave exploded")
		})

	msg := &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "msg-1",
		GuildID:   "guild-1",
		ChannelID: "text-1",
		Content:   "0leave",
		Author:    &discordgo.User{ID: "user-1"},
	}}

	s.NotPanics(func() {
		s.bot.serveMessage(api, "bot-1", msg)
	})

	s.Require().Len(api.sends, 1)
	s.Require().Len(api.sends[0].Embeds, 1)
	s.Equal("Something went wrong, please try again.", api.sends[0].Embeds[0].Description)
	s.Empty(api.deletes)
}
