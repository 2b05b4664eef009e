// Package device owns the process-wide speaker that every player mixes into.
package device

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"audiology/internal/logger"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	BufferDuration    = 100 * time.Millisecond
)

var ErrNoDevice = errors.New("audio device not initialized")

// Mixer owns the process-wide speaker.
type Mixer struct {
	rate   beep.SampleRate
	logger logger.Logger

	once  sync.Once
	mu    sync.RWMutex
	ready bool
	err   error
}

func NewMixer(rate beep.SampleRate, log logger.Logger) *Mixer {
	return &Mixer{rate: rate, logger: log}
}

// Init opens the audio device once. Later calls return the first result.
func (m *Mixer) Init() error {
	m.once.Do(func() {
		err := speaker.Init(m.rate, m.rate.N(BufferDuration))

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			m.err = fmt.Errorf("initialize speaker: %w", err)
			m.logger.Error("Mixer", m.err, map[string]interface{}{
				"sample_rate": int(m.rate),
			})
			return
		}
		m.ready = true
		m.logger.Info("Mixer", "speaker initialized", map[string]interface{}{
			"sample_rate": int(m.rate),
			"buffer_ms":   BufferDuration.Milliseconds(),
		})
	})
	return m.err
}

func (m *Mixer) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

func (m *Mixer) SampleRate() beep.SampleRate {
	return m.rate
}

func (m *Mixer) Play(s beep.Streamer) error {
	if !m.Ready() {
		return ErrNoDevice
	}
	speaker.Play(s)
	return nil
}

func (m *Mixer) Lock() {
	if m.Ready() {
		speaker.Lock()
	}
}

func (m *Mixer) Unlock() {
	if m.Ready() {
		speaker.Unlock()
	}
}

func (m *Mixer) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.ready = false
}
