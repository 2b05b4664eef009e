package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"audiology/internal/logger"
	"audiology/internal/media/stream"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Soundtrack is the audio track of the background video, decoded up front
// and kept in memory so it can restart in step with the picture.
type Soundtrack struct {
	sink   Sink
	buffer *beep.Buffer
	logger logger.Logger

	mu     sync.Mutex
	ctrl   *beep.Ctrl
	volume *effects.Volume
	muted  bool
}

// DecodeSoundtrack runs FFmpeg to extract the audio track of path as
// stereo s16le PCM at the sink's sample rate. Samples are streamed from the
// pipe straight into the buffer.
func DecodeSoundtrack(ctx context.Context, path string, sink Sink, log logger.Logger) (*Soundtrack, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not available: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", path,
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", fmt.Sprint(int(sink.SampleRate())),
		"-ac", "2",
		"-loglevel", "error",
		"pipe:1",
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	buf, readErr := stream.ReadStereoBuffer(stdout, sink.SampleRate())
	if readErr != nil {
		// Keep ffmpeg from blocking on a full pipe before Wait.
		_, _ = io.Copy(io.Discard, stdout)
	}
	if err := cmd.Wait(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("ffmpeg decode %s: %w: %s", path, err, msg)
		}
		return nil, fmt.Errorf("ffmpeg decode %s: %w", path, err)
	}
	if readErr != nil {
		return nil, fmt.Errorf("read ffmpeg output for %s: %w", path, readErr)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("no audio track in %s", path)
	}

	log.Info("Soundtrack", "soundtrack decoded", map[string]interface{}{
		"path":    path,
		"seconds": sink.SampleRate().D(buf.Len()).Seconds(),
	})

	return NewSoundtrack(buf, sink, log), nil
}

// NewSoundtrack wraps an already decoded buffer.
func NewSoundtrack(buf *beep.Buffer, sink Sink, log logger.Logger) *Soundtrack {
	return &Soundtrack{sink: sink, buffer: buf, logger: log}
}

func (s *Soundtrack) Duration() time.Duration {
	return s.buffer.Format().SampleRate.D(s.buffer.Len())
}

// Restart plays the track from the beginning, replacing any running copy.
func (s *Soundtrack) Restart() error {
	return s.RestartAt(0)
}

// RestartAt plays the track from offset, replacing any running copy. An
// offset past the end plays nothing until the next restart.
func (s *Soundtrack) RestartAt(offset time.Duration) error {
	s.Stop()

	from := s.buffer.Format().SampleRate.N(offset)
	if from < 0 {
		from = 0
	}
	if from >= s.buffer.Len() {
		return nil
	}

	s.mu.Lock()
	volume := &effects.Volume{
		Streamer: s.buffer.Streamer(from, s.buffer.Len()),
		Base:     2,
		Silent:   s.muted,
	}
	ctrl := &beep.Ctrl{Streamer: volume}
	s.volume, s.ctrl = volume, ctrl
	s.mu.Unlock()

	return s.sink.Play(ctrl)
}

func (s *Soundtrack) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
	if s.volume == nil {
		return
	}
	s.sink.Lock()
	s.volume.Silent = muted
	s.sink.Unlock()
}

func (s *Soundtrack) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctrl == nil {
		return
	}
	s.sink.Lock()
	s.ctrl.Streamer = nil
	s.sink.Unlock()
	s.ctrl, s.volume = nil, nil
}
