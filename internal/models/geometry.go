package models

// Position is a top-left coordinate in canvas units.
type Position struct {
	X float32
	Y float32
}

type Size struct {
	Width  float32
	Height float32
}
