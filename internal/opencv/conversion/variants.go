package conversion

import (
	"fmt"
	"image"

	"audiology/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const flipHorizontal = 1

// LoadVariants reads an image file keeping its alpha channel and returns it
// together with a horizontally mirrored copy.
func LoadVariants(path string) (original, mirrored image.Image, err error) {
	src := gocv.IMRead(path, gocv.IMReadUnchanged)
	defer src.Close()

	if src.Empty() {
		return nil, nil, fmt.Errorf("failed to load image at %s", path)
	}
	if err := safe.ValidateMat(src, "LoadVariants"); err != nil {
		return nil, nil, err
	}

	eight, err := toEightBit(src)
	if err != nil {
		return nil, nil, fmt.Errorf("normalize %s: %w", path, err)
	}
	defer eight.Close()

	flipped := gocv.NewMat()
	defer flipped.Close()
	gocv.Flip(eight, &flipped, flipHorizontal)

	original, err = MatToImage(eight)
	if err != nil {
		return nil, nil, fmt.Errorf("convert %s: %w", path, err)
	}

	mirrored, err = MatToImage(flipped)
	if err != nil {
		return nil, nil, fmt.Errorf("convert mirrored %s: %w", path, err)
	}

	return original, mirrored, nil
}

// toEightBit returns an 8-bit copy of src; 16-bit PNGs are scaled down.
func toEightBit(src gocv.Mat) (gocv.Mat, error) {
	if err := safe.ValidateMatType(src.Type(), "toEightBit"); err != nil {
		return gocv.Mat{}, err
	}

	switch src.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return src.Clone(), nil
	default:
		target := map[int]gocv.MatType{
			1: gocv.MatTypeCV8UC1,
			3: gocv.MatTypeCV8UC3,
			4: gocv.MatTypeCV8UC4,
		}[src.Channels()]

		dst := gocv.NewMat()
		src.ConvertToWithParams(&dst, target, 1.0/257.0, 0)
		return dst, nil
	}
}
