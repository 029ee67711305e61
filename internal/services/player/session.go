package player

import (
	"sync"

	"github.com/KirkDiggler/sora/internal/models"
	"github.com/bwmarrin/discordgo"
)

// MessageRef points at a message the controller owns, with the components
// it was last sent with
type MessageRef struct {
	ChannelID  string
	MessageID  string
	Components []discordgo.MessageComponent
}

// Session is the playback and UI state of one guild. Fields are only
// touched from jobs on the guild's sequencer lane.
type Session struct {
	GuildID string

	// ChannelID is the text channel used for controls and notices
	ChannelID string

	// VoiceChannelID is where playback was requested
	VoiceChannelID string

	RequesterID string
	Paused      bool
	RepeatMode  models.RepeatMode

	// AutoPlay is nil until set; read it through AutoPlayEnabled
	AutoPlay *bool

	CurrentTimeSeconds int64

	// CorrectedDurationSeconds is nil for live or unknown lengths
	CorrectedDurationSeconds *int64

	CurrentTrack *models.Track

	Controls     *MessageRef
	LastControls *MessageRef

	// CurrentSuggestions backs the indices of the rendered suggestion menu
	CurrentSuggestions []*models.Track

	ticker             *ticker
	reconnectAttempted bool
	autoplayFailed     bool
}

// NewSession creates a session with autoplay on
func NewSession(guildID, channelID, voiceChannelID, requesterID string) *Session {
	sess := &Session{
		GuildID:        guildID,
		ChannelID:      channelID,
		VoiceChannelID: voiceChannelID,
		RequesterID:    requesterID,
	}
	sess.SetAutoPlay(true)
	return sess
}

// AutoPlayEnabled treats an unset value as on
func (s *Session) AutoPlayEnabled() bool {
	return s.AutoPlay == nil || *s.AutoPlay
}

func (s *Session) SetAutoPlay(enabled bool) {
	s.AutoPlay = &enabled
}

// LoopCurrentTrack is derived from RepeatMode
func (s *Session) LoopCurrentTrack() bool {
	return s.RepeatMode.LoopsTrack()
}

// LoopQueue is derived from RepeatMode
func (s *Session) LoopQueue() bool {
	return s.RepeatMode.LoopsQueue()
}

// DurationKnown reports whether progress can be tracked
func (s *Session) DurationKnown() bool {
	return s.CorrectedDurationSeconds != nil
}

// Registry holds the live sessions keyed by guild id
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Get(guildID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[guildID]
	return sess, ok
}

func (r *Registry) Put(sess *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.GuildID] = sess
}

func (r *Registry) Delete(guildID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, guildID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// All returns a snapshot of the live sessions
func (r *Registry) All() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		out = append(out, sess)
	}
	return out
}
