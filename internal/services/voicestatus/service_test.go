package voicestatus_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/KirkDiggler/sora/internal/services/voicestatus"
	"github.com/KirkDiggler/sora/internal/services/voicestatus/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoiceStatusTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockChannels  *mocks.MockChannelResolver
	mockRequester *mocks.MockRequester
	service       voicestatus.Service
	ctx           context.Context

	channelID   string
	voiceStatus string
	channelURL  string
}

func (s *VoiceStatusTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChannels = mocks.NewMockChannelResolver(s.mockCtrl)
	s.mockRequester = mocks.NewMockRequester(s.mockCtrl)
	s.ctx = context.Background()

	s.channelID = "555"
	s.voiceStatus = discordgo.EndpointChannel(s.channelID) + "/voice-status"
	s.channelURL = discordgo.EndpointChannel(s.channelID)

	svc, err := voicestatus.New(&voicestatus.Config{
		Channels:  s.mockChannels,
		Requester: s.mockRequester,
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestVoiceStatusTestSuite(t *testing.T) {
	suite.Run(t, new(VoiceStatusTestSuite))
}

func (s *VoiceStatusTestSuite) expectManageableVoiceChannel() {
	s.mockChannels.EXPECT().
		Channel(s.ctx, s.channelID).
		Return(&discordgo.Channel{ID: s.channelID, Type: discordgo.ChannelTypeGuildVoice}, nil)
	s.mockChannels.EXPECT().
		BotPermissions(s.channelID).
		Return(int64(discordgo.PermissionManageChannels|discordgo.PermissionVoiceConnect), nil)
}

func (s *VoiceStatusTestSuite) TestSetUsesPrimaryStrategy() {
	s.expectManageableVoiceChannel()
	s.mockRequester.EXPECT().
		Request(s.ctx, http.MethodPut, s.voiceStatus, gomock.Any()).
		Return(nil)

	s.service.Set(s.ctx, s.channelID, "🎵 Song")
}

func (s *VoiceStatusTestSuite) TestSetFallsBackToPatch() {
	s.expectManageableVoiceChannel()
	gomock.InOrder(
		s.mockRequester.EXPECT().
			Request(s.ctx, http.MethodPut, s.voiceStatus, gomock.Any()).
			Return(errors.New("404 Not Found")),
		s.mockRequester.EXPECT().
			Request(s.ctx, http.MethodPatch, s.channelURL, gomock.Any()).
			Return(nil),
	)

	s.service.Set(s.ctx, s.channelID, "🎵 Song")
}

func (s *VoiceStatusTestSuite) TestBothStrategiesFailIsSwallowed() {
	s.expectManageableVoiceChannel()
	s.mockRequester.EXPECT().
		Request(s.ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("403 Forbidden")).
		Times(2)

	s.NotPanics(func() {
		s.service.Clear(s.ctx, s.channelID)
	})
}

func (s *VoiceStatusTestSuite) TestLabelTruncated() {
	s.expectManageableVoiceChannel()
	s.mockRequester.EXPECT().
		Request(s.ctx, http.MethodPut, s.voiceStatus, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body any) error {
			s.True(strings.HasPrefix(toJSONStatus(body), "aaa"))
			s.Len([]rune(toJSONStatus(body)), voicestatus.MaxLabelLength)
			return nil
		})

	s.service.Set(s.ctx, s.channelID, strings.Repeat("a", 800))
}

func (s *VoiceStatusTestSuite) TestSkipsNonVoiceChannel() {
	s.mockChannels.EXPECT().
		Channel(s.ctx, s.channelID).
		Return(&discordgo.Channel{ID: s.channelID, Type: discordgo.ChannelTypeGuildText}, nil)

	s.service.Set(s.ctx, s.channelID, "🎵 Song")
}

func (s *VoiceStatusTestSuite) TestSkipsWithoutPermission() {
	s.mockChannels.EXPECT().
		Channel(s.ctx, s.channelID).
		Return(&discordgo.Channel{ID: s.channelID, Type: discordgo.ChannelTypeGuildVoice}, nil)
	s.mockChannels.EXPECT().
		BotPermissions(s.channelID).
		Return(int64(discordgo.PermissionVoiceConnect), nil)

	s.service.Set(s.ctx, s.channelID, "🎵 Song")
}

func (s *VoiceStatusTestSuite) TestSkipsUnresolvableChannel() {
	s.mockChannels.EXPECT().
		Channel(s.ctx, s.channelID).
		Return(nil, errors.New("unknown channel"))

	s.service.Clear(s.ctx, s.channelID)
}

func (s *VoiceStatusTestSuite) TestEmptyChannelIsNoop() {
	s.service.Set(s.ctx, "", "🎵 Song")
}

func (s *VoiceStatusTestSuite) TestNewValidation() {
	_, err := voicestatus.New(nil)
	s.Error(err)

	_, err = voicestatus.New(&voicestatus.Config{Channels: s.mockChannels})
	s.Error(err)
}

// toJSONStatus pulls the status field out of the request body
func toJSONStatus(body any) string {
	raw, err := json.Marshal(body)
	if err != nil {
		return ""
	}
	var decoded struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ""
	}
	return decoded.Status
}
