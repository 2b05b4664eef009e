package presenter

import (
	"errors"

	"audiology/internal/models"
)

type fakeTone struct {
	pos      models.Position
	visible  bool
	side     models.Side
	playing  models.Side
	audioOn  bool
	plays    []models.Side
	stops    int
	raises   int
	sideSets int
}

func (f *fakeTone) Place(pos models.Position) { f.pos = pos }
func (f *fakeTone) Show()                     { f.visible = true }
func (f *fakeTone) Hide()                     { f.visible = false }
func (f *fakeTone) SetSide(side models.Side)  { f.side = side; f.sideSets++ }
func (f *fakeTone) Raise()                    { f.raises++ }

func (f *fakeTone) PlayAudio(side models.Side) {
	f.playing = side
	f.audioOn = true
	f.plays = append(f.plays, side)
}

func (f *fakeTone) StopAudio() {
	f.audioOn = false
	f.stops++
}

type fakeBackground struct {
	plays   int
	muted   bool
	size    models.Size
	resizes int
	failing bool
}

func (f *fakeBackground) Play() error {
	f.plays++
	if f.failing {
		return errors.New("no decoder")
	}
	return nil
}

func (f *fakeBackground) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakeBackground) Resize(size models.Size) {
	f.size = size
	f.resizes++
}

type fakePrompter struct {
	prompts int
}

func (f *fakePrompter) ConfirmExit() { f.prompts++ }
