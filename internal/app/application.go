// Package app wires configuration, media, presenter and window together.
package app

import (
	"fmt"
	"image"
	"os"

	"audiology/internal/config"
	"audiology/internal/eventbus"
	"audiology/internal/gui"
	"audiology/internal/gui/widgets"
	"audiology/internal/logger"
	"audiology/internal/media"
	"audiology/internal/media/device"
	"audiology/internal/media/video"
	"audiology/internal/models"
	"audiology/internal/opencv/conversion"
	"audiology/internal/presenter"
	"audiology/internal/shutdown"
	"audiology/internal/timing"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName         = "Audiology"
	AppID           = "com.audiology.presenter"
	AppVersion      = "1.0.0"
	eventBufferSize = 64
)

type Application struct {
	cfg       config.Config
	assets    models.AssetLayout
	fyneApp   fyne.App
	logger    logger.Logger
	bus       *eventbus.Bus
	mixer     *device.Mixer
	players   []*media.TonePlayer
	video     *video.Player
	surface   *gui.Surface
	presenter *presenter.Presenter
	shutdown  *shutdown.Manager
	timings   *timing.Tracker
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	assets := models.AssetLayout{Root: cfg.AssetDir}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"asset_dir": cfg.AssetDir,
		"windowed":  cfg.Windowed,
		"log_level": cfg.LogLevel.String(),
	})

	for _, path := range assets.Missing() {
		log.Warning("Application", "asset missing", map[string]interface{}{
			"path": path,
		})
	}

	a := &Application{
		cfg:      cfg,
		assets:   assets,
		fyneApp:  fyneApp,
		logger:   log,
		bus:      eventbus.NewBus(eventBufferSize, log),
		mixer:    device.NewMixer(device.DefaultSampleRate, log),
		shutdown: shutdown.NewManager(log),
		timings:  timing.NewTracker(log),
	}

	if err := a.mixer.Init(); err != nil {
		log.Warning("Application", "continuing without audio", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.surface = gui.NewSurface(fyneApp, cfg.Windowed, log)

	slots := assets.Slots()
	tones := make([]presenter.Tone, len(slots))
	for i, slotAssets := range slots {
		player := media.NewTonePlayer(fmt.Sprintf("tone_%d", i+1), a.mixer, a.bus, log)
		tone := widgets.NewToneWidget(i+1, slotAssets, player, log)
		ctx := a.timings.Start("load_image")
		tone.LoadImages(conversion.LoadVariants)
		a.timings.End(ctx)
		a.surface.AddTone(tone)

		a.players = append(a.players, player)
		tones[i] = tone
	}

	a.video = video.NewPlayer(assets.BackgroundVideo(), a.bus, log, func(img image.Image) {
		fyne.Do(func() { a.surface.SetFrame(img) })
	})

	p, err := presenter.New(slots, tones, gui.NewBackground(a.video, a.surface.Video()), a.surface, log)
	if err != nil {
		return nil, fmt.Errorf("create presenter: %w", err)
	}
	a.presenter = p
	a.surface.Bind(p)

	a.subscribe()
	a.registerShutdown()

	summary := a.timings.Summary()
	summary["slots"] = len(slots)
	summary["audio"] = a.mixer.Ready()
	log.Info("Application", "initialization complete", summary)
	return a, nil
}

// attachSoundtrack decodes the video's audio track and hands it to the
// running player. It runs off the UI goroutine.
func (a *Application) attachSoundtrack(path string) {
	if !a.mixer.Ready() {
		return
	}

	ctx := a.timings.Start("decode_soundtrack")
	track, err := media.DecodeSoundtrack(a.shutdown.Context(), path, a.mixer, a.logger)
	a.timings.End(ctx)
	if a.shutdown.Context().Err() != nil {
		return
	}
	if err != nil {
		a.logger.Warning("Application", "background video will play without sound", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	a.video.SetSoundtrack(track)
}

func (a *Application) subscribe() {
	a.bus.Subscribe(eventbus.TypeVideoState, eventbus.HandlerFunc(func(e eventbus.Event) {
		ev, ok := eventbus.DecodePlayback(e)
		if !ok || a.shutdown.Context().Err() != nil {
			return
		}
		fyne.Do(func() { a.presenter.HandleBackgroundState(ev) })
	}))

	a.bus.Subscribe(eventbus.TypeEndOfMedia, eventbus.HandlerFunc(func(e eventbus.Event) {
		a.logger.Debug("Application", "tone looped", map[string]interface{}{
			"source": e.Source,
			"path":   e.Data["path"],
		})
	}))
}

// registerShutdown lists components in start order; the manager stops them
// in reverse.
func (a *Application) registerShutdown() {
	a.shutdown.Register("event bus", a.bus)
	a.shutdown.Register("mixer", a.mixer)
	a.shutdown.Register("background video", shutdown.ShutdownFunc(a.video.Shutdown))
	for _, player := range a.players {
		a.shutdown.Register("tone player", player)
	}
}

// Run shows the window and blocks until the user confirms exit or a signal
// arrives.
func (a *Application) Run() error {
	a.shutdown.Listen(func(os.Signal) {
		fyne.Do(a.fyneApp.Quit)
	})

	a.surface.Show()

	if err := a.video.Play(); err != nil {
		a.logger.Error("Application", fmt.Errorf("start background video: %w", err), nil)
	}
	go a.attachSoundtrack(a.assets.BackgroundVideo())

	a.fyneApp.Run()

	a.logger.Info("Application", "shutdown requested", nil)
	a.shutdown.Shutdown()
	return nil
}
