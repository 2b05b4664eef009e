// Package presenter holds the stage logic: which slots are visible, on
// which side, where they sit, and what each key does. It drives the UI
// through small interfaces so it can run without a window.
package presenter

import (
	"fmt"

	"audiology/internal/logger"
	"audiology/internal/models"

	"fyne.io/fyne/v2"
)

// Tone is the on-screen half of a slot.
type Tone interface {
	Place(pos models.Position)
	Show()
	Hide()
	SetSide(side models.Side)
	PlayAudio(side models.Side)
	StopAudio()
	Raise()
}

// Background is the looping video behind the tones.
type Background interface {
	Play() error
	ToggleMute() bool
	Resize(size models.Size)
}

type ExitPrompter interface {
	ConfirmExit()
}

// Presenter must only be used from the UI goroutine.
type Presenter struct {
	layout     *models.Layout
	slots      []models.Slot
	tones      []Tone
	side       models.Side
	viewport   models.Size
	background Background
	prompter   ExitPrompter
	logger     logger.Logger
}

func New(assets []models.SlotAssets, tones []Tone, background Background, prompter ExitPrompter, log logger.Logger) (*Presenter, error) {
	if len(assets) != len(tones) {
		return nil, fmt.Errorf("slot count mismatch: %d asset sets, %d tones", len(assets), len(tones))
	}

	layout := models.NewDefaultLayout()
	if layout.Len() < len(tones) {
		return nil, fmt.Errorf("layout has %d positions for %d tones", layout.Len(), len(tones))
	}

	slots := make([]models.Slot, len(tones))
	for i := range slots {
		pos, _ := layout.PositionFor(i, models.Left)
		slots[i] = models.Slot{
			Index:    i,
			Assets:   assets[i],
			State:    models.Hidden,
			Position: pos,
		}
	}

	return &Presenter{
		layout:     layout,
		slots:      slots,
		tones:      tones,
		side:       models.Left,
		background: background,
		prompter:   prompter,
		logger:     log,
	}, nil
}

// Side is the side newly shown slots appear on.
func (p *Presenter) Side() models.Side {
	return p.side
}

func (p *Presenter) Viewport() models.Size {
	return p.viewport
}

// Slot returns a copy of slot index.
func (p *Presenter) Slot(index int) (models.Slot, bool) {
	if index < 0 || index >= len(p.slots) {
		return models.Slot{}, false
	}
	return p.slots[index], true
}

func (p *Presenter) SlotCount() int {
	return len(p.slots)
}

// PositionFor reports where slot index would be placed on side for the
// current viewport.
func (p *Presenter) PositionFor(index int, side models.Side) (models.Position, error) {
	return p.layout.PositionFor(index, side)
}

// ToggleSlot shows a hidden slot on the current side or hides a visible one.
// Indices outside the slot range are ignored.
func (p *Presenter) ToggleSlot(index int) {
	if index < 0 || index >= len(p.slots) {
		p.logger.Debug("Presenter", "ignoring slot toggle", map[string]interface{}{
			"index": index,
		})
		return
	}

	// The viewport may have changed since the last layout pass.
	p.layout.Recompute(p.viewport.Width)
	p.toggleSlot(index, p.side)
}

func (p *Presenter) toggleSlot(index int, side models.Side) {
	slot := &p.slots[index]
	tone := p.tones[index]

	pos, err := p.layout.PositionFor(index, side)
	if err != nil {
		p.logger.Error("Presenter", err, nil)
		return
	}

	tone.Place(pos)
	slot.Position = pos
	slot.State = slot.State.Toggle(side)

	if slot.State.Visible() {
		tone.Show()
		tone.PlayAudio(side)
		tone.SetSide(side)
	} else {
		tone.Hide()
		tone.StopAudio()
	}
	tone.Raise()

	p.logger.Info("Presenter", "slot toggled", map[string]interface{}{
		"slot":  slot.Number(),
		"state": slot.State.String(),
		"x":     pos.X,
		"y":     pos.Y,
	})
}

// ToggleGlobalSide flips the side for every visible slot's audio and image.
// Visible widgets keep their position until they are toggled again.
func (p *Presenter) ToggleGlobalSide() {
	p.side = p.side.Opposite()

	switched := 0
	for i := range p.slots {
		if !p.slots[i].State.Visible() {
			continue
		}
		p.switchSide(i, p.side)
		switched++
	}

	p.logger.Info("Presenter", "side toggled", map[string]interface{}{
		"side":     p.side.String(),
		"switched": switched,
	})
}

func (p *Presenter) switchSide(index int, side models.Side) {
	tone := p.tones[index]

	tone.StopAudio()
	tone.PlayAudio(side)
	tone.SetSide(side)
	tone.Raise()

	p.slots[index].State = p.slots[index].State.WithSide(side)
}

// HandleKey runs the action bound to key and reports whether it was bound.
func (p *Presenter) HandleKey(key fyne.KeyName) bool {
	action, index := ActionForKey(key, len(p.slots))

	switch action {
	case ActionConfirmExit:
		p.prompter.ConfirmExit()
	case ActionToggleMute:
		muted := p.background.ToggleMute()
		p.logger.Info("Presenter", "background mute toggled", map[string]interface{}{
			"muted": muted,
		})
	case ActionToggleSide:
		p.ToggleGlobalSide()
	case ActionToggleSlot:
		p.ToggleSlot(index)
	default:
		return false
	}
	return true
}

// HandleResize fits the video to the new viewport and recomputes the right
// side positions. Visible widgets move on their next toggle.
func (p *Presenter) HandleResize(size models.Size) {
	if size == p.viewport {
		return
	}
	p.viewport = size
	p.background.Resize(size)
	p.layout.Recompute(size.Width)

	p.logger.Debug("Presenter", "viewport resized", map[string]interface{}{
		"width":  size.Width,
		"height": size.Height,
	})
}

// HandleBackgroundState restarts the video whenever it stops on its own.
func (p *Presenter) HandleBackgroundState(ev models.PlaybackEvent) {
	if ev.State != models.Stopped || ev.UserInitiated {
		return
	}

	if err := p.background.Play(); err != nil {
		p.logger.Error("Presenter", fmt.Errorf("restart background video: %w", err), nil)
		return
	}
	p.logger.Debug("Presenter", "background video restarted", nil)
}
