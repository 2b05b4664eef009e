// Package media plays tone clips and the background soundtrack into a
// shared Sink.
package media

import (
	"audiology/internal/eventbus"

	"github.com/gopxl/beep/v2"
)

// Sink is where players send their streams.
type Sink interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer) error
	Lock()
	Unlock()
}

// Publisher receives player notifications.
type Publisher interface {
	Publish(event eventbus.Event)
}
