package media

import (
	"fmt"
	"os"
	"sync"

	"audiology/internal/eventbus"
	"audiology/internal/logger"
	"audiology/internal/media/stream"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

const resampleQuality = 4

// TonePlayer plays one WAV clip at a time, looping it until stopped.
type TonePlayer struct {
	name      string
	sink      Sink
	publisher Publisher
	logger    logger.Logger

	mu     sync.Mutex
	ctrl   *beep.Ctrl
	source beep.StreamSeekCloser
	path   string
}

func NewTonePlayer(name string, sink Sink, publisher Publisher, log logger.Logger) *TonePlayer {
	return &TonePlayer{
		name:      name,
		sink:      sink,
		publisher: publisher,
		logger:    log,
	}
}

// Play stops the current clip and starts path from the beginning.
func (p *TonePlayer) Play(path string) error {
	p.Stop()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tone: %w", err)
	}

	decoded, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode tone %s: %w", path, err)
	}

	looped := stream.NewRewinder(decoded, func() {
		p.publisher.Publish(eventbus.Event{
			Type:   eventbus.TypeEndOfMedia,
			Source: p.name,
			Data:   map[string]interface{}{"path": path},
		})
	})

	var s beep.Streamer = looped
	if format.SampleRate != p.sink.SampleRate() {
		s = beep.Resample(resampleQuality, format.SampleRate, p.sink.SampleRate(), looped)
	}

	ctrl := &beep.Ctrl{Streamer: s}

	p.mu.Lock()
	p.ctrl = ctrl
	p.source = decoded
	p.path = path
	p.mu.Unlock()

	if err := p.sink.Play(ctrl); err != nil {
		p.Stop()
		return fmt.Errorf("play tone %s: %w", path, err)
	}

	p.logger.Debug("TonePlayer", "tone started", map[string]interface{}{
		"player":      p.name,
		"path":        path,
		"sample_rate": int(format.SampleRate),
		"channels":    format.NumChannels,
	})
	return nil
}

// Stop halts playback immediately. Safe to call when idle.
func (p *TonePlayer) Stop() {
	p.mu.Lock()
	ctrl, source, path := p.ctrl, p.source, p.path
	p.ctrl, p.source, p.path = nil, nil, ""
	p.mu.Unlock()

	if ctrl == nil {
		return
	}

	p.sink.Lock()
	ctrl.Streamer = nil
	ctrl.Paused = true
	p.sink.Unlock()

	if err := source.Close(); err != nil {
		p.logger.Warning("TonePlayer", "closing tone failed", map[string]interface{}{
			"player": p.name,
			"path":   path,
			"error":  err.Error(),
		})
	}
}

// Playing returns the clip currently playing, or "".
func (p *TonePlayer) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

func (p *TonePlayer) Shutdown() {
	p.Stop()
}
