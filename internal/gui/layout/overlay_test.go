package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTile() *canvas.Rectangle {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(100, 100))
	return r
}

func TestOverlayLayout_BackgroundFillsTilesKeepPosition(t *testing.T) {
	test.NewTempApp(t)

	background := canvas.NewRectangle(nil)
	tile := newTile()
	tile.Move(fyne.NewPos(40, 80))

	var sizes []fyne.Size
	ol := NewOverlayLayout(background, func(s fyne.Size) { sizes = append(sizes, s) })

	ol.Layout([]fyne.CanvasObject{background, tile}, fyne.NewSize(1920, 1080))

	assert.Equal(t, fyne.NewSize(1920, 1080), background.Size())
	assert.Equal(t, fyne.NewPos(0, 0), background.Position())
	assert.Equal(t, fyne.NewSize(100, 100), tile.Size())
	assert.Equal(t, fyne.NewPos(40, 80), tile.Position())
	require.Len(t, sizes, 1)
}

func TestOverlayLayout_ReportsOnlyChanges(t *testing.T) {
	test.NewTempApp(t)

	background := canvas.NewRectangle(nil)
	var sizes []fyne.Size
	ol := NewOverlayLayout(background, func(s fyne.Size) { sizes = append(sizes, s) })

	objects := []fyne.CanvasObject{background}
	ol.Layout(objects, fyne.NewSize(1920, 1080))
	ol.Layout(objects, fyne.NewSize(1920, 1080))
	ol.Layout(objects, fyne.NewSize(1280, 720))

	assert.Equal(t, []fyne.Size{fyne.NewSize(1920, 1080), fyne.NewSize(1280, 720)}, sizes)
}

func TestOverlayLayout_BackgroundAfterRaise(t *testing.T) {
	test.NewTempApp(t)

	background := canvas.NewRectangle(nil)
	tile := newTile()
	c := container.New(NewOverlayLayout(background, nil), tile, background)
	c.Resize(fyne.NewSize(800, 600))

	assert.Equal(t, fyne.NewSize(800, 600), background.Size())
	assert.Equal(t, fyne.NewSize(100, 100), tile.Size())
}
