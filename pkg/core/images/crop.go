package images

import (
	"github.com/pkg/errors"
)

// ErrCropTooLarge is returned when the requested crop doesn't fit in the source array.
var ErrCropTooLarge = errors.New("crop larger than image")

// CenterCropOrigin returns the top-left corner of a width x height region centered in
// a srcWidth x srcHeight image: (⌊srcWidth/2 - width/2⌋, ⌊srcHeight/2 - height/2⌋).
func CenterCropOrigin(srcWidth, srcHeight, width, height int) (x0, y0 int, err error) {
	if width <= 0 || height <= 0 {
		err = errors.Wrapf(ErrInvalidSize, "crop size %dx%d", width, height)
		return
	}
	if width > srcWidth || height > srcHeight {
		err = errors.Wrapf(ErrCropTooLarge, "can't crop %dx%d out of %dx%d", width, height, srcWidth, srcHeight)
		return
	}
	// Both differences are non-negative, so integer division is the floor.
	x0 = (srcWidth - width) / 2
	y0 = (srcHeight - height) / 2
	return
}

// CenterCrop returns a new Array with the width x height region at the center of arr.
func CenterCrop(arr *Array, width, height int) (*Array, error) {
	x0, y0, err := CenterCropOrigin(arr.Width, arr.Height, width, height)
	if err != nil {
		return nil, err
	}
	cropped := &Array{
		Width:    width,
		Height:   height,
		Channels: arr.Channels,
		Data:     make([]float32, width*height*arr.Channels),
	}
	rowLen := width * arr.Channels
	for y := 0; y < height; y++ {
		start := arr.offset(x0, y0+y, 0)
		copy(cropped.Data[y*rowLen:(y+1)*rowLen], arr.Data[start:start+rowLen])
	}
	return cropped, nil
}
