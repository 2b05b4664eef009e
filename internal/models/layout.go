package models

import "fmt"

const (
	// SlotCount is the number of tone slots on the stage.
	SlotCount = 8

	// WidgetSize is the square footprint of a tone widget.
	WidgetSize = 100
)

// DefaultBasePositions returns the left-side anchor of every slot.
func DefaultBasePositions() []Position {
	return []Position{
		{X: 40, Y: 80},
		{X: 100, Y: 580},
		{X: 200, Y: 140},
		{X: 80, Y: 460},
		{X: 90, Y: 550},
		{X: 10, Y: 720},
		{X: 100, Y: 740},
		{X: 300, Y: 760},
	}
}

// MirrorX reflects a left-side x coordinate across the viewport.
func MirrorX(viewportWidth, baseX, widgetWidth float32) float32 {
	return viewportWidth - baseX - widgetWidth
}

// Layout holds the fixed left positions and the mirrored right positions
// derived from the last viewport width it was given.
type Layout struct {
	base          []Position
	mirrored      []Position
	widgetWidth   float32
	viewportWidth float32
}

func NewLayout(base []Position, widgetWidth float32) *Layout {
	l := &Layout{
		base:        append([]Position(nil), base...),
		mirrored:    make([]Position, len(base)),
		widgetWidth: widgetWidth,
	}
	l.Recompute(0)
	return l
}

func NewDefaultLayout() *Layout {
	return NewLayout(DefaultBasePositions(), WidgetSize)
}

// Recompute derives the right-side positions for the given viewport width.
// It must run after every viewport change; stale mirrored positions put
// right-side widgets in the wrong place.
func (l *Layout) Recompute(viewportWidth float32) {
	l.viewportWidth = viewportWidth
	for i, p := range l.base {
		l.mirrored[i] = Position{X: MirrorX(viewportWidth, p.X, l.widgetWidth), Y: p.Y}
	}
}

func (l *Layout) ViewportWidth() float32 {
	return l.viewportWidth
}

func (l *Layout) Len() int {
	return len(l.base)
}

// PositionFor returns where slot index should be placed on the given side.
func (l *Layout) PositionFor(index int, side Side) (Position, error) {
	if index < 0 || index >= len(l.base) {
		return Position{}, fmt.Errorf("slot index %d out of range [0, %d)", index, len(l.base))
	}
	if side == Right {
		return l.mirrored[index], nil
	}
	return l.base[index], nil
}
