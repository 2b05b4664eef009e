package models

// PlaybackState is the coarse state of a media player.
type PlaybackState int

const (
	Stopped PlaybackState = iota
	Playing
	Paused
)

func (s PlaybackState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// PlaybackEvent reports a state change. UserInitiated is false when the
// player changed state on its own, e.g. at end of file.
type PlaybackEvent struct {
	State         PlaybackState
	UserInitiated bool
}
