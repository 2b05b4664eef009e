package models

import "fmt"

// Side selects the screen half, audio channel file and image variant of a slot.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Opposite() Side {
	if s == Right {
		return Left
	}
	return Right
}

// Mirrored reports whether widgets on this side draw the flipped image.
func (s Side) Mirrored() bool {
	return s == Right
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}
