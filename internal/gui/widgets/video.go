package widgets

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// VideoLayer stretches the latest decoded frame over its whole area.
type VideoLayer struct {
	widget.BaseWidget
	frame  *canvas.Image
	frames uint64
}

func NewVideoLayer() *VideoLayer {
	frame := canvas.NewImageFromImage(nil)
	frame.FillMode = canvas.ImageFillStretch
	frame.ScaleMode = canvas.ImageScaleFastest

	v := &VideoLayer{frame: frame}
	v.ExtendBaseWidget(v)
	return v
}

// SetFrame must be called on the UI goroutine.
func (v *VideoLayer) SetFrame(img image.Image) {
	v.frame.Image = img
	v.frames++
	v.frame.Refresh()
}

func (v *VideoLayer) Frame() image.Image {
	return v.frame.Image
}

// FrameCount is the number of frames shown so far.
func (v *VideoLayer) FrameCount() uint64 {
	return v.frames
}

func (v *VideoLayer) CreateRenderer() fyne.WidgetRenderer {
	return &videoRenderer{layer: v, objects: []fyne.CanvasObject{v.frame}}
}

type videoRenderer struct {
	layer   *VideoLayer
	objects []fyne.CanvasObject
}

func (r *videoRenderer) Layout(size fyne.Size) {
	r.layer.frame.Resize(size)
	r.layer.frame.Move(fyne.NewPos(0, 0))
}

func (r *videoRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *videoRenderer) Refresh() {
	r.Layout(r.layer.Size())
	r.layer.frame.Refresh()
}

func (r *videoRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *videoRenderer) Destroy() {}
