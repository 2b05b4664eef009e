package eventbus

import "audiology/internal/models"

const (
	keyState         = "state"
	keyUserInitiated = "user_initiated"
)

// NewPlaybackEvent wraps a player state change for the bus.
func NewPlaybackEvent(source string, ev models.PlaybackEvent) Event {
	return Event{
		Type:   TypeVideoState,
		Source: source,
		Data: map[string]interface{}{
			keyState:         ev.State,
			keyUserInitiated: ev.UserInitiated,
		},
	}
}

// DecodePlayback extracts a state change published by NewPlaybackEvent.
func DecodePlayback(e Event) (models.PlaybackEvent, bool) {
	if e.Type != TypeVideoState {
		return models.PlaybackEvent{}, false
	}
	state, ok := e.Data[keyState].(models.PlaybackState)
	if !ok {
		return models.PlaybackEvent{}, false
	}
	user, _ := e.Data[keyUserInitiated].(bool)
	return models.PlaybackEvent{State: state, UserInitiated: user}, true
}
