package presenter

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestActionForKey(t *testing.T) {
	cases := []struct {
		key    fyne.KeyName
		action Action
		index  int
	}{
		{fyne.KeyEscape, ActionConfirmExit, 0},
		{fyne.KeyM, ActionToggleMute, 0},
		{fyne.KeyF, ActionToggleSide, 0},
		{fyne.KeyG, ActionToggleSide, 0},
		{fyne.Key1, ActionToggleSlot, 0},
		{fyne.Key8, ActionToggleSlot, 7},
		{fyne.Key9, ActionNone, 0},
		{fyne.Key0, ActionNone, 0},
		{fyne.KeyH, ActionNone, 0},
	}

	for _, tc := range cases {
		action, index := ActionForKey(tc.key, 8)
		assert.Equal(t, tc.action, action, string(tc.key))
		assert.Equal(t, tc.index, index, string(tc.key))
	}
}

func TestActionForKey_FewerSlots(t *testing.T) {
	action, _ := ActionForKey(fyne.Key4, 3)
	assert.Equal(t, ActionNone, action)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "toggle_slot", ActionToggleSlot.String())
	assert.Equal(t, "none", Action(42).String())
}
