// Package gui is the Fyne side of the presenter: one borderless window with
// the video behind and the tone widgets stacked above it.
package gui

import (
	"image"

	"audiology/internal/gui/layout"
	"audiology/internal/gui/widgets"
	"audiology/internal/logger"
	"audiology/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	WindowTitle    = "Audiology"
	WindowedWidth  = 1280
	WindowedHeight = 800

	exitTitle   = "Exit Confirmation"
	exitMessage = "Are you sure you want to exit?"
)

// Controller receives keyboard input and viewport changes.
type Controller interface {
	HandleKey(key fyne.KeyName) bool
	HandleResize(size models.Size)
}

type Surface struct {
	app      fyne.App
	window   fyne.Window
	stage    *fyne.Container
	video    *widgets.VideoLayer
	logger   logger.Logger
	windowed bool

	controller  Controller
	pending     *models.Size
	exitPending bool
}

func NewSurface(app fyne.App, windowed bool, log logger.Logger) *Surface {
	s := &Surface{
		app:      app,
		window:   app.NewWindow(WindowTitle),
		video:    widgets.NewVideoLayer(),
		logger:   log,
		windowed: windowed,
	}
	s.stage = container.New(layout.NewOverlayLayout(s.video, s.onResize), s.video)

	s.window.SetPadded(false)
	s.window.SetMaster()
	s.window.SetContent(s.stage)
	s.window.Canvas().SetOnTypedKey(s.onTypedKey)

	if windowed {
		s.window.Resize(fyne.NewSize(WindowedWidth, WindowedHeight))
		s.window.CenterOnScreen()
	} else {
		s.window.SetFullScreen(true)
	}

	return s
}

// AddTone stacks a hidden tone widget above everything already on stage.
func (s *Surface) AddTone(tone *widgets.ToneWidget) {
	tone.Hide()
	tone.SetRaiser(s.Raise)
	s.stage.Add(tone)
}

// Raise moves obj to the top of the stage.
func (s *Surface) Raise(obj fyne.CanvasObject) {
	objects := s.stage.Objects
	if len(objects) > 0 && objects[len(objects)-1] == obj {
		return
	}
	s.stage.Remove(obj)
	s.stage.Add(obj)
}

// Bind routes key presses and resizes to c. A resize that happened before
// binding is replayed.
func (s *Surface) Bind(c Controller) {
	s.controller = c
	if s.pending != nil {
		c.HandleResize(*s.pending)
		s.pending = nil
	}
}

// ConfirmExit asks before quitting the application. Keys are ignored while
// the question is open.
func (s *Surface) ConfirmExit() {
	if s.exitPending {
		return
	}
	s.exitPending = true
	dialog.ShowConfirm(exitTitle, exitMessage, s.answerExit, s.window)
}

func (s *Surface) answerExit(ok bool) {
	s.exitPending = false
	if !ok {
		s.logger.Debug("Surface", "exit cancelled", nil)
		return
	}
	s.logger.Info("Surface", "exit confirmed", nil)
	s.app.Quit()
}

func (s *Surface) ExitPending() bool {
	return s.exitPending
}

// SetFrame shows a video frame. Must run on the UI goroutine.
func (s *Surface) SetFrame(img image.Image) {
	s.video.SetFrame(img)
}

func (s *Surface) Video() *widgets.VideoLayer {
	return s.video
}

func (s *Surface) Window() fyne.Window {
	return s.window
}

// Objects returns the stage in paint order, bottom first.
func (s *Surface) Objects() []fyne.CanvasObject {
	return s.stage.Objects
}

func (s *Surface) Show() {
	s.window.Show()
	s.logger.Info("Surface", "window shown", map[string]interface{}{
		"fullscreen": !s.windowed,
	})
}

func (s *Surface) onTypedKey(ev *fyne.KeyEvent) {
	if s.controller == nil || s.exitPending {
		return
	}
	if !s.controller.HandleKey(ev.Name) {
		s.logger.Debug("Surface", "unbound key", map[string]interface{}{
			"key": string(ev.Name),
		})
	}
}

func (s *Surface) onResize(size fyne.Size) {
	viewport := models.Size{Width: size.Width, Height: size.Height}
	if s.controller == nil {
		s.pending = &viewport
		return
	}
	s.controller.HandleResize(viewport)
}
