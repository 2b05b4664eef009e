package widgets

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"audiology/internal/logger"
	"audiology/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	played []string
	stops  int
	err    error
}

func (p *recordingPlayer) Play(path string) error {
	p.played = append(p.played, path)
	return p.err
}

func (p *recordingPlayer) Stop() { p.stops++ }

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newTestTone(t *testing.T, player AudioPlayer) *ToneWidget {
	t.Helper()
	test.NewTempApp(t)
	assets := models.AssetLayout{Root: "/assets"}.Slot(2)
	return NewToneWidget(3, assets, player, logger.NoOpLogger{})
}

func TestToneWidget_MinSize(t *testing.T) {
	tone := newTestTone(t, &recordingPlayer{})
	assert.Equal(t, fyne.NewSize(models.WidgetSize, models.WidgetSize), tone.MinSize())

	r := test.WidgetRenderer(tone)
	assert.Len(t, r.Objects(), 1)
}

func TestToneWidget_SetSideSwapsImage(t *testing.T) {
	tone := newTestTone(t, &recordingPlayer{})
	left := solid(color.White)
	right := solid(color.Black)
	tone.SetImages(left, right)

	assert.Equal(t, left, tone.CurrentImage())

	tone.SetSide(models.Right)
	assert.Equal(t, right, tone.CurrentImage())
	assert.Equal(t, models.Right, tone.Side())

	tone.SetSide(models.Left)
	assert.Equal(t, left, tone.CurrentImage())
}

func TestToneWidget_LoadImagesFailureStaysBlank(t *testing.T) {
	tone := newTestTone(t, &recordingPlayer{})

	tone.LoadImages(func(string) (image.Image, image.Image, error) {
		return nil, nil, errors.New("corrupt png")
	})

	assert.Nil(t, tone.CurrentImage())
	tone.SetSide(models.Right)
	assert.Nil(t, tone.CurrentImage())
	tone.Show()
	assert.True(t, tone.Visible())
}

func TestToneWidget_LoadImagesUsesSlotPath(t *testing.T) {
	tone := newTestTone(t, &recordingPlayer{})

	var requested string
	img := solid(color.White)
	tone.LoadImages(func(path string) (image.Image, image.Image, error) {
		requested = path
		return img, img, nil
	})

	assert.Equal(t, "/assets/vg/3.png", requested)
	assert.Equal(t, img, tone.CurrentImage())
}

func TestToneWidget_AudioPerSide(t *testing.T) {
	player := &recordingPlayer{}
	tone := newTestTone(t, player)

	tone.PlayAudio(models.Left)
	tone.PlayAudio(models.Right)
	tone.StopAudio()

	require.Len(t, player.played, 2)
	assert.Equal(t, "/assets/tones/3L.wav", player.played[0])
	assert.Equal(t, "/assets/tones/3R.wav", player.played[1])
	assert.Equal(t, 1, player.stops)
}

func TestToneWidget_AudioFailureNonFatal(t *testing.T) {
	tone := newTestTone(t, &recordingPlayer{err: errors.New("no device")})
	assert.NotPanics(t, func() { tone.PlayAudio(models.Left) })
}

func TestToneWidget_PlaceAndRaise(t *testing.T) {
	tone := newTestTone(t, &recordingPlayer{})

	tone.Place(models.Position{X: 200, Y: 140})
	assert.Equal(t, fyne.NewPos(200, 140), tone.Position())

	assert.NotPanics(t, tone.Raise)

	var raised fyne.CanvasObject
	tone.SetRaiser(func(o fyne.CanvasObject) { raised = o })
	tone.Raise()
	assert.Equal(t, tone, raised)
}
