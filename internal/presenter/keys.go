package presenter

import "fyne.io/fyne/v2"

// Action is what a key press asks the presenter to do.
type Action int

const (
	ActionNone Action = iota
	ActionConfirmExit
	ActionToggleMute
	ActionToggleSide
	ActionToggleSlot
)

func (a Action) String() string {
	switch a {
	case ActionConfirmExit:
		return "confirm_exit"
	case ActionToggleMute:
		return "toggle_mute"
	case ActionToggleSide:
		return "toggle_side"
	case ActionToggleSlot:
		return "toggle_slot"
	default:
		return "none"
	}
}

// ActionForKey maps a key to an action. For ActionToggleSlot the returned
// index is the 0-based slot; digits beyond the slot count map to no action.
func ActionForKey(key fyne.KeyName, slots int) (Action, int) {
	switch key {
	case fyne.KeyEscape:
		return ActionConfirmExit, 0
	case fyne.KeyM:
		return ActionToggleMute, 0
	case fyne.KeyF, fyne.KeyG:
		return ActionToggleSide, 0
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		index := int(key[0] - '1')
		if index < slots {
			return ActionToggleSlot, index
		}
	}
	return ActionNone, 0
}
