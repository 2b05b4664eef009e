package conversion

import (
	"fmt"
	"image"

	"audiology/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// MatToImage converts an 8-bit GoCV Mat to a standard Go image.
// BGR input becomes *image.RGBA, BGRA becomes *image.NRGBA (OpenCV keeps
// straight alpha), single channel becomes *image.Gray.
func MatToImage(src gocv.Mat) (image.Image, error) {
	if err := safe.ValidateMat(src, "MatToImage"); err != nil {
		return nil, err
	}

	rows, cols := src.Rows(), src.Cols()
	channels := src.Channels()
	if err := safe.ValidateChannels(channels, "MatToImage"); err != nil {
		return nil, err
	}

	data := src.ToBytes()
	if len(data) < rows*cols*channels {
		return nil, fmt.Errorf("Mat data too short: %d bytes for %dx%dx%d", len(data), cols, rows, channels)
	}

	switch channels {
	case 1:
		return grayFromBytes(data, rows, cols), nil
	case 3:
		return rgbaFromBGR(data, rows, cols), nil
	default:
		return nrgbaFromBGRA(data, rows, cols), nil
	}
}

func grayFromBytes(data []byte, rows, cols int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+cols], data[y*cols:(y+1)*cols])
	}
	return img
}

func rgbaFromBGR(data []byte, rows, cols int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s := (y*cols + x) * 3
			d := y*img.Stride + x*4
			img.Pix[d+0] = data[s+2]
			img.Pix[d+1] = data[s+1]
			img.Pix[d+2] = data[s+0]
			img.Pix[d+3] = 0xff
		}
	}
	return img
}

func nrgbaFromBGRA(data []byte, rows, cols int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s := (y*cols + x) * 4
			d := y*img.Stride + x*4
			img.Pix[d+0] = data[s+2]
			img.Pix[d+1] = data[s+1]
			img.Pix[d+2] = data[s+0]
			img.Pix[d+3] = data[s+3]
		}
	}
	return img
}
