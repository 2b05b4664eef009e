package widgets

import (
	"image"

	"audiology/internal/logger"
	"audiology/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// AudioPlayer plays one looping clip at a time.
type AudioPlayer interface {
	Play(path string) error
	Stop()
}

// ImageLoader returns an image and its horizontal mirror.
type ImageLoader func(path string) (original, mirrored image.Image, err error)

// ToneWidget shows one slot's image in a fixed square and drives its audio.
type ToneWidget struct {
	widget.BaseWidget

	number   int
	assets   models.SlotAssets
	player   AudioPlayer
	logger   logger.Logger
	raiser   func(fyne.CanvasObject)
	original image.Image
	mirrored image.Image
	side     models.Side
	image    *canvas.Image
}

func NewToneWidget(number int, assets models.SlotAssets, player AudioPlayer, log logger.Logger) *ToneWidget {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(models.WidgetSize, models.WidgetSize))

	t := &ToneWidget{
		number: number,
		assets: assets,
		player: player,
		logger: log,
		side:   models.Left,
		image:  img,
	}
	t.ExtendBaseWidget(t)
	return t
}

// LoadImages reads the slot image through load. On failure the widget
// stays blank but keeps working.
func (t *ToneWidget) LoadImages(load ImageLoader) {
	original, mirrored, err := load(t.assets.Image)
	if err != nil {
		t.logger.Error("ToneWidget", err, map[string]interface{}{
			"slot": t.number,
			"path": t.assets.Image,
		})
		return
	}
	t.SetImages(original, mirrored)
}

func (t *ToneWidget) SetImages(original, mirrored image.Image) {
	t.original = original
	t.mirrored = mirrored
	t.SetSide(t.side)
}

// SetRaiser installs the callback that brings the widget to the front.
func (t *ToneWidget) SetRaiser(raiser func(fyne.CanvasObject)) {
	t.raiser = raiser
}

func (t *ToneWidget) Number() int {
	return t.number
}

func (t *ToneWidget) Side() models.Side {
	return t.side
}

// CurrentImage is the variant currently rendered, nil when nothing loaded.
func (t *ToneWidget) CurrentImage() image.Image {
	return t.image.Image
}

func (t *ToneWidget) Place(pos models.Position) {
	t.Move(fyne.NewPos(pos.X, pos.Y))
}

// SetSide selects the original image for the left side and the mirrored one
// for the right.
func (t *ToneWidget) SetSide(side models.Side) {
	t.side = side
	if side.Mirrored() {
		t.image.Image = t.mirrored
	} else {
		t.image.Image = t.original
	}
	t.image.Refresh()
}

func (t *ToneWidget) PlayAudio(side models.Side) {
	path := t.assets.Audio(side)
	if err := t.player.Play(path); err != nil {
		t.logger.Warning("ToneWidget", "audio playback failed", map[string]interface{}{
			"slot":  t.number,
			"side":  side.String(),
			"error": err.Error(),
		})
	}
}

func (t *ToneWidget) StopAudio() {
	t.player.Stop()
}

func (t *ToneWidget) Raise() {
	if t.raiser != nil {
		t.raiser(t)
	}
}

func (t *ToneWidget) MinSize() fyne.Size {
	return fyne.NewSize(models.WidgetSize, models.WidgetSize)
}

func (t *ToneWidget) CreateRenderer() fyne.WidgetRenderer {
	return &toneRenderer{
		tone:    t,
		objects: []fyne.CanvasObject{t.image},
	}
}

type toneRenderer struct {
	tone    *ToneWidget
	objects []fyne.CanvasObject
}

func (r *toneRenderer) Layout(size fyne.Size) {
	r.tone.image.Resize(size)
	r.tone.image.Move(fyne.NewPos(0, 0))
}

func (r *toneRenderer) MinSize() fyne.Size {
	return fyne.NewSize(models.WidgetSize, models.WidgetSize)
}

func (r *toneRenderer) Refresh() {
	r.Layout(r.tone.Size())
	r.tone.image.Refresh()
}

func (r *toneRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *toneRenderer) Destroy() {}
