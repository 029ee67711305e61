package lavalink

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/KirkDiggler/sora/internal/engine"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"
)

// DefaultVolume is the volume a fresh player starts at
const DefaultVolume = 100

// NodeConfig describes the Lavalink node to connect to
type NodeConfig struct {
	Name     string
	Address  string
	Password string
	Secure   bool
}

// Config holds configuration for the Lavalink engine
type Config struct {
	Session      *discordgo.Session
	Node         NodeConfig
	SearchPrefix string
	Logger       *zap.Logger
}

// voiceGateway joins and leaves voice channels over the Discord gateway
type voiceGateway interface {
	ChannelVoiceJoinManual(gID, cID string, mute, deaf bool) error
}

// trackLoader resolves identifiers into tracks
type trackLoader interface {
	LoadTracks(ctx context.Context, identifier string) (*lavalink.LoadResult, error)
}

// remotePlayer is the node-side player for one guild
type remotePlayer interface {
	Update(ctx context.Context, opts ...lavalink.PlayerUpdateOpt) error
	Destroy(ctx context.Context) error
}

// Engine implements engine.Engine on top of a Lavalink node
type Engine struct {
	session      *discordgo.Session
	node         NodeConfig
	searchPrefix string
	logger       *zap.Logger

	client disgolink.Client
	voice  voiceGateway
	loader func() trackLoader
	remote func(guildID snowflake.ID) remotePlayer

	mu        sync.RWMutex
	players   map[string]*player
	listeners []engine.Listener
}

// New creates a new Lavalink engine. Open must be called once the Discord
// session is connected.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.Node.Address == "" {
		return nil, errors.New("lavalink address cannot be empty")
	}

	prefix := cfg.SearchPrefix
	if prefix == "" {
		prefix = DefaultSearchPrefix
	}

	return &Engine{
		session:      cfg.Session,
		node:         cfg.Node,
		searchPrefix: prefix,
		logger:       logger.OrNop(cfg.Logger),
		voice:        cfg.Session,
		players:      make(map[string]*player),
	}, nil
}

// Open creates the Lavalink client, connects the node and starts forwarding
// voice updates from the Discord session.
func (e *Engine) Open(ctx context.Context) error {
	if e.session.State == nil || e.session.State.User == nil {
		return errors.New("discord session is not connected")
	}

	userID, err := snowflake.Parse(e.session.State.User.ID)
	if err != nil {
		return fmt.Errorf("invalid bot user id: %w", err)
	}

	e.client = disgolink.New(userID,
		disgolink.WithListenerFunc(e.onTrackStart),
		disgolink.WithListenerFunc(e.onTrackEnd),
		disgolink.WithListenerFunc(e.onTrackException),
		disgolink.WithListenerFunc(e.onTrackStuck),
		disgolink.WithListenerFunc(e.onWebSocketClosed),
	)

	node, err := e.client.AddNode(ctx, disgolink.NodeConfig{
		Name:     e.node.Name,
		Address:  e.node.Address,
		Password: e.node.Password,
		Secure:   e.node.Secure,
	})
	if err != nil {
		return fmt.Errorf("failed to add lavalink node: %w", err)
	}

	e.loader = func() trackLoader {
		best := e.client.BestNode()
		if best == nil {
			return nil
		}
		return best
	}
	e.remote = func(guildID snowflake.ID) remotePlayer {
		return e.client.Player(guildID)
	}

	e.session.AddHandler(e.onVoiceServerUpdate)
	e.session.AddHandler(e.onVoiceStateUpdate)

	e.logger.Info("lavalink node added", zap.String("node", node.Config().Name))
	return nil
}

// Close disconnects every player and shuts the client down
func (e *Engine) Close(ctx context.Context) {
	e.mu.RLock()
	players := make([]*player, 0, len(e.players))
	for _, p := range e.players {
		players = append(players, p)
	}
	e.mu.RUnlock()

	for _, p := range players {
		if err := p.Destroy(ctx); err != nil {
			e.logger.Warn("failed to destroy player", zap.String("guild_id", p.guildID), zap.Error(err))
		}
	}

	if e.client != nil {
		e.client.Close()
	}
}

// Subscribe registers a lifecycle listener
func (e *Engine) Subscribe(listener engine.Listener) {
	if listener == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Player returns the guild's player, or nil when none exists
func (e *Engine) Player(guildID string) engine.Player {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, ok := e.players[guildID]
	if !ok {
		return nil
	}
	return p
}

// Create returns the guild's player, creating it when needed
func (e *Engine) Create(ctx context.Context, guildID string) (engine.Player, error) {
	if e.remote == nil {
		return nil, ErrNotOpen
	}

	id, err := snowflake.Parse(guildID)
	if err != nil {
		return nil, fmt.Errorf("invalid guild id %q: %w", guildID, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.players[guildID]; ok {
		return p, nil
	}

	p := &player{
		engine:  e,
		guildID: guildID,
		remote:  e.remote(id),
		volume:  DefaultVolume,
	}
	e.players[guildID] = p

	e.logger.Debug("player created", zap.String("guild_id", guildID))
	return p, nil
}

// Search resolves a free-text query into candidate tracks
func (e *Engine) Search(ctx context.Context, query string) ([]*models.Track, error) {
	tracks, err := e.load(ctx, identifierFor(query, e.searchPrefix), false)
	if err != nil {
		if errors.Is(err, ErrNoMatches) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]*models.Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, toModel(t, ""))
	}
	return out, nil
}

func (e *Engine) load(ctx context.Context, identifier string, first bool) ([]lavalink.Track, error) {
	if e.loader == nil {
		return nil, ErrNotOpen
	}

	node := e.loader()
	if node == nil {
		return nil, ErrNoNode
	}

	result, err := node.LoadTracks(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", identifier, err)
	}

	return tracksFromResult(result, first)
}

func (e *Engine) removePlayer(guildID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.players, guildID)
}

func (e *Engine) lookup(guildID snowflake.ID) *player {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.players[guildID.String()]
}

func (e *Engine) emit(evt engine.Event) {
	e.mu.RLock()
	listeners := make([]engine.Listener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(evt)
	}
}

// Lavalink listeners

func (e *Engine) onTrackStart(lp disgolink.Player, event lavalink.TrackStartEvent) {
	if p := e.lookup(lp.GuildID()); p != nil {
		p.handleTrackStart(event.Track)
	}
}

func (e *Engine) onTrackEnd(lp disgolink.Player, event lavalink.TrackEndEvent) {
	if !event.Reason.MayStartNext() {
		return
	}
	if p := e.lookup(lp.GuildID()); p != nil {
		p.handleTrackEnd(context.Background())
	}
}

func (e *Engine) onTrackException(lp disgolink.Player, event lavalink.TrackExceptionEvent) {
	if p := e.lookup(lp.GuildID()); p != nil {
		p.handleFailure(fmt.Errorf("%w: %s", ErrTrackFailed, event.Exception.Message))
	}
}

func (e *Engine) onTrackStuck(lp disgolink.Player, event lavalink.TrackStuckEvent) {
	if p := e.lookup(lp.GuildID()); p != nil {
		p.handleFailure(ErrTrackStuck)
		if err := p.Skip(context.Background()); err != nil && !errors.Is(err, ErrQueueEmpty) {
			e.logger.Warn("failed to skip stuck track", zap.String("guild_id", p.guildID), zap.Error(err))
		}
	}
}

func (e *Engine) onWebSocketClosed(lp disgolink.Player, event lavalink.WebSocketClosedEvent) {
	if p := e.lookup(lp.GuildID()); p != nil {
		p.setConnected(false)
		p.handleFailure(fmt.Errorf("%w: %d %s", ErrDisconnected, event.Code, event.Reason))
	}
}

// Discord voice forwarding

func (e *Engine) onVoiceServerUpdate(s *discordgo.Session, event *discordgo.VoiceServerUpdate) {
	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil || e.client == nil {
		return
	}
	e.client.OnVoiceServerUpdate(context.Background(), guildID, event.Token, event.Endpoint)
}

func (e *Engine) onVoiceStateUpdate(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil || e.client == nil {
		return
	}

	p := e.lookup(guildID)

	if event.UserID != s.State.User.ID {
		if p != nil {
			p.checkAudience(e.listenerCount(s, event.GuildID, p.ChannelID()))
		}
		return
	}

	var channelID *snowflake.ID
	if event.ChannelID != "" {
		id, err := snowflake.Parse(event.ChannelID)
		if err != nil {
			return
		}
		channelID = &id
	}

	e.client.OnVoiceStateUpdate(context.Background(), guildID, channelID, event.SessionID)

	if p == nil {
		return
	}
	if event.ChannelID == "" {
		p.handleDropped()
		return
	}
	p.setChannel(event.ChannelID)
}

// listenerCount counts non-bot members sitting in channelID
func (e *Engine) listenerCount(s *discordgo.Session, guildID, channelID string) int {
	if channelID == "" || s.State == nil {
		return 0
	}

	guild, err := s.State.Guild(guildID)
	if err != nil {
		return 0
	}

	count := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID != channelID || vs.UserID == s.State.User.ID {
			continue
		}
		if vs.Member != nil && vs.Member.User != nil && vs.Member.User.Bot {
			continue
		}
		count++
	}
	return count
}
