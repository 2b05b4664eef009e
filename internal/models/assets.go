package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ToneDir             = "tones"
	ImageDir            = "vg"
	BackgroundVideoName = "BackgroundVideo.mp4"
)

// SlotAssets names the files backing one slot.
type SlotAssets struct {
	Image      string
	LeftAudio  string
	RightAudio string
}

// Audio returns the clip for the given side.
func (a SlotAssets) Audio(side Side) string {
	if side == Right {
		return a.RightAudio
	}
	return a.LeftAudio
}

// AssetLayout resolves the fixed asset naming convention under Root.
type AssetLayout struct {
	Root string
}

func (l AssetLayout) Slot(index int) SlotAssets {
	n := index + 1
	return SlotAssets{
		Image:      filepath.Join(l.Root, ImageDir, fmt.Sprintf("%d.png", n)),
		LeftAudio:  filepath.Join(l.Root, ToneDir, fmt.Sprintf("%dL.wav", n)),
		RightAudio: filepath.Join(l.Root, ToneDir, fmt.Sprintf("%dR.wav", n)),
	}
}

func (l AssetLayout) Slots() []SlotAssets {
	slots := make([]SlotAssets, SlotCount)
	for i := range slots {
		slots[i] = l.Slot(i)
	}
	return slots
}

func (l AssetLayout) BackgroundVideo() string {
	return filepath.Join(l.Root, ImageDir, BackgroundVideoName)
}

// Missing lists every expected asset that cannot be found on disk.
func (l AssetLayout) Missing() []string {
	var missing []string
	check := func(path string) {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			missing = append(missing, path)
		}
	}

	for _, slot := range l.Slots() {
		check(slot.Image)
		check(slot.LeftAudio)
		check(slot.RightAudio)
	}
	check(l.BackgroundVideo())

	return missing
}
