package models

// SlotState is either Hidden or Visible on one side.
type SlotState struct {
	visible bool
	side    Side
}

var Hidden = SlotState{}

func VisibleOn(side Side) SlotState {
	return SlotState{visible: true, side: side}
}

func (s SlotState) Visible() bool {
	return s.visible
}

// Side is the side the slot is shown on. Only meaningful while visible.
func (s SlotState) Side() Side {
	return s.side
}

// Toggle hides a visible slot or shows a hidden one on side.
func (s SlotState) Toggle(side Side) SlotState {
	if s.visible {
		return Hidden
	}
	return VisibleOn(side)
}

// WithSide moves a visible slot to side. Hidden slots stay hidden.
func (s SlotState) WithSide(side Side) SlotState {
	if !s.visible {
		return s
	}
	return VisibleOn(side)
}

func (s SlotState) String() string {
	if !s.visible {
		return "hidden"
	}
	return "visible(" + s.side.String() + ")"
}

// Slot is one of the eight tone units on the stage.
type Slot struct {
	Index    int
	Assets   SlotAssets
	State    SlotState
	Position Position
}

// Number is the 1-based label used by the keyboard and the asset names.
func (s Slot) Number() int {
	return s.Index + 1
}
