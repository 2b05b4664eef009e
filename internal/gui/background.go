package gui

import (
	"audiology/internal/gui/widgets"
	"audiology/internal/models"

	"fyne.io/fyne/v2"
)

// VideoSource is the playback half of the background video.
type VideoSource interface {
	Play() error
	ToggleMute() bool
}

// Background pairs the video player with the layer it draws into.
type Background struct {
	source VideoSource
	layer  *widgets.VideoLayer
}

func NewBackground(source VideoSource, layer *widgets.VideoLayer) *Background {
	return &Background{source: source, layer: layer}
}

func (b *Background) Play() error {
	return b.source.Play()
}

func (b *Background) ToggleMute() bool {
	return b.source.ToggleMute()
}

func (b *Background) Resize(size models.Size) {
	b.layer.Resize(fyne.NewSize(size.Width, size.Height))
}
