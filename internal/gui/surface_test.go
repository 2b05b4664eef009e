package gui

import (
	"testing"

	"audiology/internal/gui/widgets"
	"audiology/internal/logger"
	"audiology/internal/models"
	"audiology/internal/presenter"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubController struct {
	keys    []fyne.KeyName
	resizes []models.Size
}

func (c *stubController) HandleKey(key fyne.KeyName) bool {
	c.keys = append(c.keys, key)
	return key != fyne.KeyA
}

func (c *stubController) HandleResize(size models.Size) {
	c.resizes = append(c.resizes, size)
}

type silentPlayer struct{}

func (silentPlayer) Play(string) error { return nil }
func (silentPlayer) Stop()             {}

func newTestSurface(t *testing.T) *Surface {
	t.Helper()
	return NewSurface(test.NewTempApp(t), true, logger.NoOpLogger{})
}

func newTone(n int) *widgets.ToneWidget {
	return widgets.NewToneWidget(n, models.AssetLayout{Root: "/assets"}.Slot(n-1), silentPlayer{}, logger.NoOpLogger{})
}

func TestSurface_AddToneStartsHidden(t *testing.T) {
	s := newTestSurface(t)
	tone := newTone(1)

	s.AddTone(tone)

	assert.False(t, tone.Visible())
	objects := s.Objects()
	require.Len(t, objects, 2)
	assert.Equal(t, fyne.CanvasObject(s.Video()), objects[0])
}

func TestSurface_RaiseMovesToTop(t *testing.T) {
	s := newTestSurface(t)
	first, second := newTone(1), newTone(2)
	s.AddTone(first)
	s.AddTone(second)

	first.Raise()

	objects := s.Objects()
	require.Len(t, objects, 3)
	assert.Equal(t, fyne.CanvasObject(first), objects[2])
	assert.Equal(t, fyne.CanvasObject(second), objects[1])

	first.Raise()
	assert.Len(t, s.Objects(), 3)
}

func TestSurface_RoutesKeys(t *testing.T) {
	s := newTestSurface(t)
	c := &stubController{}

	onKey := s.Window().Canvas().OnTypedKey()
	require.NotNil(t, onKey)
	assert.NotPanics(t, func() { onKey(&fyne.KeyEvent{Name: fyne.Key3}) })

	s.Bind(c)
	onKey(&fyne.KeyEvent{Name: fyne.Key3})
	onKey(&fyne.KeyEvent{Name: fyne.KeyA})

	assert.Equal(t, []fyne.KeyName{fyne.Key3, fyne.KeyA}, c.keys)
}

func TestSurface_ResizeBeforeBindIsReplayed(t *testing.T) {
	s := newTestSurface(t)
	c := &stubController{}

	s.onResize(fyne.NewSize(1920, 1080))
	s.Bind(c)
	s.onResize(fyne.NewSize(1280, 720))

	assert.Equal(t, []models.Size{
		{Width: 1920, Height: 1080},
		{Width: 1280, Height: 720},
	}, c.resizes)
}

func TestSurface_ConfirmExitShowsDialog(t *testing.T) {
	s := newTestSurface(t)
	s.ConfirmExit()
	assert.NotNil(t, s.Window().Canvas().Overlays().Top())
}

type fakeSource struct {
	plays int
	muted bool
}

func (f *fakeSource) Play() error { f.plays++; return nil }

func (f *fakeSource) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func TestBackground_Delegates(t *testing.T) {
	test.NewTempApp(t)
	source := &fakeSource{}
	layer := widgets.NewVideoLayer()
	bg := NewBackground(source, layer)

	require.NoError(t, bg.Play())
	assert.True(t, bg.ToggleMute())
	bg.Resize(models.Size{Width: 1280, Height: 720})

	assert.Equal(t, 1, source.plays)
	assert.Equal(t, fyne.NewSize(1280, 720), layer.Size())
}

func TestSurface_ExitPromptBlocksKeys(t *testing.T) {
	s := newTestSurface(t)

	slots := models.AssetLayout{Root: "/assets"}.Slots()
	tones := make([]presenter.Tone, len(slots))
	for i := range slots {
		tone := newTone(i + 1)
		s.AddTone(tone)
		tones[i] = tone
	}
	p, err := presenter.New(slots, tones, NewBackground(&fakeSource{}, s.Video()), s, logger.NoOpLogger{})
	require.NoError(t, err)
	s.Bind(p)

	onKey := s.Window().Canvas().OnTypedKey()
	onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	onKey(&fyne.KeyEvent{Name: fyne.Key3})
	onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.True(t, s.ExitPending())
	assert.Len(t, s.Window().Canvas().Overlays().List(), 1)
	slot, _ := p.Slot(2)
	assert.Equal(t, models.Hidden, slot.State)

	s.answerExit(false)
	assert.False(t, s.ExitPending())

	onKey(&fyne.KeyEvent{Name: fyne.Key3})
	slot, _ = p.Slot(2)
	assert.True(t, slot.State.Visible())
}
