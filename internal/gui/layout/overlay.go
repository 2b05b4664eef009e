package layout

import (
	"fyne.io/fyne/v2"
)

// OverlayLayout stretches a background object over the whole container and
// leaves every other object at its own position and minimum size. Each
// size change is reported through onResize.
type OverlayLayout struct {
	background fyne.CanvasObject
	onResize   func(fyne.Size)
	lastSize   fyne.Size
}

func NewOverlayLayout(background fyne.CanvasObject, onResize func(fyne.Size)) *OverlayLayout {
	return &OverlayLayout{
		background: background,
		onResize:   onResize,
	}
}

func (ol *OverlayLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		if obj == ol.background {
			obj.Resize(containerSize)
			obj.Move(fyne.NewPos(0, 0))
			continue
		}
		obj.Resize(obj.MinSize())
	}

	if containerSize != ol.lastSize {
		ol.lastSize = containerSize
		if ol.onResize != nil {
			ol.onResize(containerSize)
		}
	}
}

func (ol *OverlayLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if ol.background == nil {
		return fyne.NewSize(0, 0)
	}
	return ol.background.MinSize()
}
