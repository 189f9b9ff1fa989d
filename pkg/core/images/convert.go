package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultMaxValue is the value a fully saturated channel is mapped to: pixel
// arrays hold the raw 0 to 255 channel values as floats.
const DefaultMaxValue = 255.0

// ToArrayConfig holds the configuration returned by the ToArray function. Once
// configured, use Single to actually convert.
type ToArrayConfig struct {
	maxValue float64
}

// ToArray returns a configuration to convert images to RGB float pixel arrays.
//
// Images of any color model (gray, paletted, CMYK, with alpha, ...) are converted
// to RGB. The alpha channel, if any, is dropped and the colors are taken non-premultiplied.
func ToArray() *ToArrayConfig {
	return &ToArrayConfig{maxValue: DefaultMaxValue}
}

// MaxValue sets the value of a fully saturated channel. It defaults to DefaultMaxValue.
//
// It returns the ToArrayConfig object, so configuration calls can be cascaded.
func (tc *ToArrayConfig) MaxValue(v float64) *ToArrayConfig {
	tc.maxValue = v
	return tc
}

// Single converts img to an Array shaped `[height, width, 3]`.
func (tc *ToArrayConfig) Single(img image.Image) *Array {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = imaging.Clone(img)
	}
	width, height := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	arr := NewArray(width, height)
	scale := float32(tc.maxValue / 255.0)
	pos := 0
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			px := row[x*4 : x*4+3] // Alpha is dropped.
			for _, v := range px {
				arr.Data[pos] = float32(v) * scale
				pos++
			}
		}
	}
	return arr
}
