package lavalink

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type fakeRemote struct {
	updates   int
	destroyed bool
	err       error
}

func (f *fakeRemote) Update(ctx context.Context, opts ...lavalink.PlayerUpdateOpt) error {
	f.updates++
	return f.err
}

func (f *fakeRemote) Destroy(ctx context.Context) error {
	f.destroyed = true
	return nil
}

type fakeVoice struct {
	joins []string
}

func (f *fakeVoice) ChannelVoiceJoinManual(gID, cID string, mute, deaf bool) error {
	f.joins = append(f.joins, cID)
	return nil
}

type fakeLoader struct {
	result *lavalink.LoadResult
	err    error
	asked  []string
}

func (f *fakeLoader) LoadTracks(ctx context.Context, identifier string) (*lavalink.LoadResult, error) {
	f.asked = append(f.asked, identifier)
	return f.result, f.err
}

func testTrack(id string) lavalink.Track {
	uri := "https://youtu.be/" + id
	return lavalink.Track{
		Encoded: "enc-" + id,
		Info: lavalink.TrackInfo{
			Identifier: id,
			Title:      "Song " + id,
			Author:     "Artist",
			Length:     200000,
			URI:        &uri,
		},
	}
}

type PlayerTestSuite struct {
	suite.Suite
	ctx    context.Context
	remote *fakeRemote
	voice  *fakeVoice
	loader *fakeLoader
	engine *Engine
	player *player

	mu     sync.Mutex
	events []engine.Event
}

func (s *PlayerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.remote = &fakeRemote{}
	s.voice = &fakeVoice{}
	s.loader = &fakeLoader{}
	s.events = nil

	s.engine = &Engine{
		searchPrefix: DefaultSearchPrefix,
		logger:       zap.NewNop(),
		voice:        s.voice,
		loader:       func() trackLoader { return s.loader },
		remote:       func(snowflake.ID) remotePlayer { return s.remote },
		players:      make(map[string]*player),
	}
	s.engine.Subscribe(func(evt engine.Event) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.events = append(s.events, evt)
	})

	p, err := s.engine.Create(s.ctx, "123456789012345678")
	s.Require().NoError(err)
	s.player = p.(*player)
}

func (s *PlayerTestSuite) eventTypes() []engine.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.EventType, 0, len(s.events))
	for _, evt := range s.events {
		out = append(out, evt.Type)
	}
	return out
}

func (s *PlayerTestSuite) loadSearch(tracks ...lavalink.Track) {
	s.loader.result = &lavalink.LoadResult{LoadType: lavalink.LoadTypeSearch, Data: lavalink.Search(tracks)}
}

func (s *PlayerTestSuite) TestPlayStartsWhenIdle() {
	s.loadSearch(testTrack("a"), testTrack("b"))

	track, err := s.player.Play(s.ctx, "some song", "user-1")

	s.Require().NoError(err)
	s.Equal("Song a", track.Title)
	s.Equal("user-1", track.RequesterID)
	s.Equal(models.DurationUnitMilliseconds, track.DurationUnit)
	s.Equal([]string{"ytsearch:some song"}, s.loader.asked)
	s.Equal(track, s.player.Current())
	s.Empty(s.player.Queue())
	s.Equal(1, s.remote.updates)
	s.Empty(s.eventTypes())
}

func (s *PlayerTestSuite) TestPlayQueuesBehindCurrent() {
	s.loadSearch(testTrack("a"))
	_, err := s.player.Play(s.ctx, "https://youtu.be/a", "user-1")
	s.Require().NoError(err)

	s.loadSearch(testTrack("b"))
	_, err = s.player.Play(s.ctx, "b", "user-2")
	s.Require().NoError(err)

	s.Equal("https://youtu.be/a", s.loader.asked[0])
	s.Len(s.player.Queue(), 1)
	s.Equal([]engine.EventType{engine.EventTrackAdd}, s.eventTypes())
	s.Equal(1, s.events[0].Remaining)
}

func (s *PlayerTestSuite) TestPlayQueuesWholePlaylist() {
	s.loader.result = &lavalink.LoadResult{
		LoadType: lavalink.LoadTypePlaylist,
		Data: lavalink.Playlist{
			Tracks: []lavalink.Track{testTrack("a"), testTrack("b"), testTrack("c")},
		},
	}

	_, err := s.player.Play(s.ctx, "https://youtube.com/playlist?list=x", "user-1")

	s.Require().NoError(err)
	s.Equal("Song a", s.player.Current().Title)
	s.Len(s.player.Queue(), 2)
}

func (s *PlayerTestSuite) TestPlayNoMatches() {
	s.loader.result = &lavalink.LoadResult{LoadType: lavalink.LoadTypeEmpty}

	_, err := s.player.Play(s.ctx, "nothing", "user-1")

	s.ErrorIs(err, ErrNoMatches)
	s.Nil(s.player.Current())
}

func (s *PlayerTestSuite) TestPlayStartFailureLeavesIdle() {
	s.loadSearch(testTrack("a"))
	s.remote.err = errors.New("node down")

	_, err := s.player.Play(s.ctx, "a", "user-1")

	s.Error(err)
	s.Nil(s.player.Current())
}

func (s *PlayerTestSuite) TestReconnectRestartsCurrentTrack() {
	s.loadSearch(testTrack("a"))
	_, err := s.player.Play(s.ctx, "a", "user-1")
	s.Require().NoError(err)

	s.player.setConnected(false)
	s.Require().NoError(s.player.Connect(s.ctx, "999"))
	s.Require().NoError(s.player.Restart(s.ctx))

	s.Equal(2, s.remote.updates)
	s.Equal("Song a", s.player.Current().Title)
	s.Empty(s.player.Queue())
	s.NotContains(s.eventTypes(), engine.EventTrackAdd)
	s.True(s.player.Connected())
}

func (s *PlayerTestSuite) TestRestartWhenIdle() {
	s.ErrorIs(s.player.Restart(s.ctx), ErrIdle)
	s.Zero(s.remote.updates)
}

func (s *PlayerTestSuite) TestSkipAndPrevious() {
	s.loadSearch(testTrack("a"))
	_, _ = s.player.Play(s.ctx, "a", "u")
	s.loadSearch(testTrack("b"))
	_, _ = s.player.Play(s.ctx, "b", "u")

	s.Require().NoError(s.player.Skip(s.ctx))
	s.Equal("Song b", s.player.Current().Title)
	s.Len(s.player.History(), 1)
	s.ErrorIs(s.player.Skip(s.ctx), ErrQueueEmpty)

	s.Require().NoError(s.player.Previous(s.ctx))
	s.Equal("Song a", s.player.Current().Title)
	s.Equal("Song b", s.player.Queue()[0].Title)
	s.ErrorIs(s.player.Previous(s.ctx), ErrNoHistory)
}

func (s *PlayerTestSuite) TestTrackEndAdvances() {
	s.loadSearch(testTrack("a"))
	_, _ = s.player.Play(s.ctx, "a", "u")
	s.loadSearch(testTrack("b"))
	_, _ = s.player.Play(s.ctx, "b", "u")
	s.events = nil

	s.player.handleTrackEnd(s.ctx)

	s.Equal([]engine.EventType{engine.EventTrackEnd}, s.eventTypes())
	s.Equal(1, s.events[0].Remaining)
	s.Equal("Song b", s.player.Current().Title)
	s.Len(s.player.History(), 1)
}

func (s *PlayerTestSuite) TestTrackEndEmitsQueueEnd() {
	s.loadSearch(testTrack("a"))
	_, _ = s.player.Play(s.ctx, "a", "u")

	s.player.handleTrackEnd(s.ctx)

	s.Equal([]engine.EventType{engine.EventTrackEnd, engine.EventQueueEnd}, s.eventTypes())
	s.Nil(s.player.Current())
}

func (s *PlayerTestSuite) TestTrackEndLoopsQueue() {
	s.player.SetRepeatMode(models.RepeatModeQueue)
	s.loadSearch(testTrack("a"))
	_, _ = s.player.Play(s.ctx, "a", "u")

	s.player.handleTrackEnd(s.ctx)

	s.Equal([]engine.EventType{engine.EventTrackEnd}, s.eventTypes())
	s.Equal(1, s.events[0].Remaining)
	s.Equal("Song a", s.player.Current().Title)
}

func (s *PlayerTestSuite) TestTrackEndHoldsForRepeatTrack() {
	s.player.SetRepeatMode(models.RepeatModeTrack)
	s.loadSearch(testTrack("a"))
	_, _ = s.player.Play(s.ctx, "a", "u")
	s.loadSearch(testTrack("b"))
	_, _ = s.player.Play(s.ctx, "b", "u")
	s.events = nil

	s.player.handleTrackEnd(s.ctx)

	s.Equal([]engine.EventType{engine.EventTrackEnd}, s.eventTypes())
	s.Nil(s.player.Current())

	// replay starts ahead of the waiting track
	s.loadSearch(testTrack("a"))
	_, err := s.player.Play(s.ctx, "https://youtu.be/a", "u")
	s.Require().NoError(err)
	s.Equal("Song a", s.player.Current().Title)
	s.Equal("Song b", s.player.Queue()[0].Title)
}

func (s *PlayerTestSuite) TestStopKeepsConnection() {
	s.Require().NoError(s.player.Connect(s.ctx, "999"))
	s.loadSearch(testTrack("a"))
	_, _ = s.player.Play(s.ctx, "a", "u")

	s.Require().NoError(s.player.Stop(s.ctx))

	s.Nil(s.player.Current())
	s.True(s.player.Connected())
	s.Equal("999", s.player.ChannelID())
}

func (s *PlayerTestSuite) TestDestroy() {
	s.Require().NoError(s.player.Connect(s.ctx, "999"))

	s.Require().NoError(s.player.Destroy(s.ctx))

	s.True(s.remote.destroyed)
	s.Equal([]string{"999", ""}, s.voice.joins)
	s.Nil(s.engine.Player(s.player.guildID))
	s.Equal([]engine.EventType{engine.EventPlayerDestroy}, s.eventTypes())
}

func (s *PlayerTestSuite) TestVolume() {
	s.Equal(DefaultVolume, s.player.Volume())
	s.Require().NoError(s.player.SetVolume(s.ctx, 40))
	s.Equal(40, s.player.Volume())
	s.ErrorIs(s.player.SetVolume(s.ctx, 140), ErrInvalidVolume)
}

func (s *PlayerTestSuite) TestPauseThroughCapability() {
	s.Require().NoError(engine.Pause(s.ctx, s.player))
	s.Require().NoError(engine.Resume(s.ctx, s.player))
	s.Equal(2, s.remote.updates)
}

func (s *PlayerTestSuite) TestDroppedEmitsEmptyOnce() {
	s.Require().NoError(s.player.Connect(s.ctx, "999"))

	s.player.handleDropped()
	s.player.handleDropped()

	s.Equal([]engine.EventType{engine.EventEmpty}, s.eventTypes())
	s.False(s.player.Connected())
}

func (s *PlayerTestSuite) TestAudienceLeaves() {
	s.Require().NoError(s.player.Connect(s.ctx, "999"))

	s.player.checkAudience(2)
	s.player.checkAudience(0)
	s.player.checkAudience(0)

	s.Equal([]engine.EventType{engine.EventEmpty}, s.eventTypes())
}

func (s *PlayerTestSuite) TestCreateRequiresOpen() {
	e := &Engine{players: make(map[string]*player)}

	_, err := e.Create(s.ctx, "1")

	s.ErrorIs(err, ErrNotOpen)
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

type ConvertTestSuite struct {
	suite.Suite
}

func (s *ConvertTestSuite) TestIdentifierFor() {
	s.Equal("https://youtu.be/x", identifierFor(" https://youtu.be/x ", DefaultSearchPrefix))
	s.Equal("ytsearch:lofi beats", identifierFor("lofi beats", DefaultSearchPrefix))
	s.Equal("scsearch:lofi", identifierFor("scsearch:lofi", DefaultSearchPrefix))
}

func (s *ConvertTestSuite) TestToModel() {
	art := "https://img/x.jpg"
	t := testTrack("x")
	t.Info.ArtworkURL = &art
	t.Info.IsStream = true

	m := toModel(t, "u")

	s.Equal("x", m.Identifier)
	s.Equal("https://youtu.be/x", m.URL)
	s.Equal(art, m.ArtworkURL)
	s.Equal(int64(200000), m.Duration)
	s.True(m.IsStream)
	s.Equal("u", m.RequesterID)
}

func (s *ConvertTestSuite) TestTracksFromResult() {
	_, err := tracksFromResult(nil, true)
	s.ErrorIs(err, ErrNoMatches)

	_, err = tracksFromResult(&lavalink.LoadResult{
		LoadType: lavalink.LoadTypeError,
		Data:     lavalink.Exception{Message: "blocked"},
	}, true)
	s.ErrorIs(err, ErrLoadFailed)
	s.Contains(err.Error(), "blocked")

	tracks, err := tracksFromResult(&lavalink.LoadResult{
		LoadType: lavalink.LoadTypeSearch,
		Data:     lavalink.Search{testTrack("a"), testTrack("b")},
	}, false)
	s.Require().NoError(err)
	s.Len(tracks, 2)
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertTestSuite))
}
