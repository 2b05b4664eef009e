package media

import (
	"sync"

	"audiology/internal/eventbus"

	"github.com/gopxl/beep/v2"
)

type fakeSink struct {
	rate    beep.SampleRate
	mu      sync.Mutex
	streams []beep.Streamer
	err     error
}

func (s *fakeSink) SampleRate() beep.SampleRate { return s.rate }
func (s *fakeSink) Lock()                       {}
func (s *fakeSink) Unlock()                     {}

func (s *fakeSink) Play(st beep.Streamer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.streams = append(s.streams, st)
	return nil
}

func (s *fakeSink) last() beep.Streamer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.streams) == 0 {
		return nil
	}
	return s.streams[len(s.streams)-1]
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(e eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
