package models

// RepeatMode is the loop setting of a session
type RepeatMode int

const (
	// RepeatModeOff plays the queue once
	RepeatModeOff RepeatMode = iota

	// RepeatModeTrack replays the current track
	RepeatModeTrack

	// RepeatModeQueue replays the whole queue
	RepeatModeQueue
)

const repeatModeCount = 3

// Next cycles Off -> Track -> Queue -> Off
func (m RepeatMode) Next() RepeatMode {
	return RepeatMode((int(m.normalize()) + 1) % repeatModeCount)
}

// LoopsTrack reports whether the current track repeats
func (m RepeatMode) LoopsTrack() bool {
	return m.normalize() == RepeatModeTrack
}

// LoopsQueue reports whether the queue repeats
func (m RepeatMode) LoopsQueue() bool {
	return m.normalize() == RepeatModeQueue
}

// String returns the mode name
func (m RepeatMode) String() string {
	switch m.normalize() {
	case RepeatModeTrack:
		return "track"
	case RepeatModeQueue:
		return "queue"
	default:
		return "off"
	}
}

func (m RepeatMode) normalize() RepeatMode {
	if m < RepeatModeOff || m > RepeatModeQueue {
		return RepeatModeOff
	}
	return m
}
