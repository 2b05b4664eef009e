// Package video decodes the background video with OpenCV and hands frames
// to the UI at the container's frame rate.
package video

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"audiology/internal/eventbus"
	"audiology/internal/logger"
	"audiology/internal/media"
	"audiology/internal/models"
	"audiology/internal/opencv/conversion"
	"audiology/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const (
	Source     = "background_video"
	DefaultFPS = 30
	maxFPS     = 240
)

// Soundtrack is the optional audio companion of the picture.
type Soundtrack interface {
	Restart() error
	RestartAt(offset time.Duration) error
	SetMuted(muted bool)
	Stop()
}

type Player struct {
	path      string
	publisher media.Publisher
	logger    logger.Logger
	onFrame   func(image.Image)

	mu            sync.Mutex
	state         models.PlaybackState
	muted         bool
	soundtrack    Soundtrack
	capture       *gocv.VideoCapture
	frameInterval time.Duration
	frames        int64
	cancel        context.CancelFunc
	done          chan struct{}
}

// NewPlayer prepares a player for path. onFrame runs on the decode
// goroutine; callers hop to the UI thread themselves.
func NewPlayer(path string, publisher media.Publisher, log logger.Logger, onFrame func(image.Image)) *Player {
	return &Player{
		path:      path,
		publisher: publisher,
		logger:    log,
		onFrame:   onFrame,
		state:     models.Stopped,
	}
}

// SetSoundtrack attaches the decoded audio track. When the picture is
// already running, the track joins at the current frame.
func (p *Player) SetSoundtrack(s Soundtrack) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.soundtrack = s
	s.SetMuted(p.muted)

	if p.state != models.Playing {
		return
	}
	offset := time.Duration(p.frames) * p.frameInterval
	if err := s.RestartAt(offset); err != nil {
		p.logger.Warning("VideoPlayer", "soundtrack start failed", map[string]interface{}{
			"error":     err.Error(),
			"offset_ms": offset.Milliseconds(),
		})
	}
}

func (p *Player) open() error {
	capture, err := gocv.VideoCaptureFile(p.path)
	if err != nil {
		return fmt.Errorf("open video %s: %w", p.path, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return fmt.Errorf("open video %s: capture not opened", p.path)
	}

	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))
	if err := safe.ValidateDimensions(width, height, "open video"); err != nil {
		capture.Close()
		return fmt.Errorf("open video %s: %w", p.path, err)
	}

	fps := capture.Get(gocv.VideoCaptureFPS)
	if fps <= 0 || fps > maxFPS {
		fps = DefaultFPS
	}

	p.capture = capture
	p.frameInterval = time.Duration(float64(time.Second) / fps)

	p.logger.Info("VideoPlayer", "video opened", map[string]interface{}{
		"path":   p.path,
		"fps":    fps,
		"width":  width,
		"height": height,
	})
	return nil
}

// Play starts playback from the first frame.
func (p *Player) Play() error {
	p.mu.Lock()

	if p.state == models.Playing {
		p.mu.Unlock()
		return nil
	}

	if p.capture == nil {
		if err := p.open(); err != nil {
			p.mu.Unlock()
			return err
		}
	}

	p.capture.Set(gocv.VideoCapturePosFrames, 0)
	p.frames = 0

	if p.soundtrack != nil {
		if err := p.soundtrack.Restart(); err != nil {
			p.logger.Warning("VideoPlayer", "soundtrack restart failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel, p.done = cancel, done
	p.state = models.Playing
	go p.run(ctx, p.capture, p.frameInterval, done)

	p.mu.Unlock()

	p.publish(models.Playing, true)
	return nil
}

// Stop ends playback on request. The next Play starts from the beginning.
func (p *Player) Stop() {
	if !p.halt() {
		return
	}
	p.withSoundtrack(func(s Soundtrack) { s.Stop() })
	p.publish(models.Stopped, true)
}

func (p *Player) State() models.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.soundtrack != nil {
		p.soundtrack.SetMuted(p.muted)
	}
	return p.muted
}

func (p *Player) Shutdown() {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.capture != nil {
		if err := p.capture.Close(); err != nil {
			p.logger.Warning("VideoPlayer", "closing capture failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		p.capture = nil
	}
}

// halt stops the decode goroutine. It reports whether playback was running.
func (p *Player) halt() bool {
	p.mu.Lock()
	if p.state != models.Playing {
		p.mu.Unlock()
		return false
	}
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.state = models.Stopped
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	return true
}

func (p *Player) run(ctx context.Context, capture *gocv.VideoCapture, interval time.Duration, done chan struct{}) {
	defer close(done)

	frame := gocv.NewMat()
	defer frame.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if ok := capture.Read(&frame); !ok || frame.Empty() {
			p.reachedEnd()
			return
		}

		p.mu.Lock()
		p.frames++
		p.mu.Unlock()

		img, err := conversion.MatToImage(frame)
		if err != nil {
			p.logger.Warning("VideoPlayer", "frame conversion failed", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		if p.onFrame != nil {
			p.onFrame(img)
		}
	}
}

// reachedEnd reports a stop that nobody asked for.
func (p *Player) reachedEnd() {
	p.mu.Lock()
	if p.state != models.Playing {
		p.mu.Unlock()
		return
	}
	p.state = models.Stopped
	cancel := p.cancel
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	cancel()

	p.logger.Debug("VideoPlayer", "end of video", map[string]interface{}{
		"path": p.path,
	})
	p.publish(models.Stopped, false)
}

func (p *Player) withSoundtrack(fn func(Soundtrack)) {
	p.mu.Lock()
	s := p.soundtrack
	p.mu.Unlock()
	if s != nil {
		fn(s)
	}
}

func (p *Player) publish(state models.PlaybackState, user bool) {
	p.publisher.Publish(eventbus.NewPlaybackEvent(Source, models.PlaybackEvent{
		State:         state,
		UserInitiated: user,
	}))
}
