// Package images provides the normalization of images into float pixel arrays:
// decoding, short-side resizing, RGB conversion, center cropping and pre-sized
// batches to hold the results.
package images

import (
	"fmt"
	"slices"
)

// NumChannels of the pixel arrays: R, G and B.
const NumChannels = 3

// Array holds the pixels of one image as float32 values.
//
// The data is stored flat in `[height, width, channels]` order, so
// the value of channel c at column x and row y is at `(y*Width+x)*Channels+c`.
type Array struct {
	Width, Height, Channels int
	Data                    []float32
}

// NewArray allocates a zero-filled Array of the given dimensions, with NumChannels channels.
func NewArray(width, height int) *Array {
	return &Array{
		Width:    width,
		Height:   height,
		Channels: NumChannels,
		Data:     make([]float32, width*height*NumChannels),
	}
}

// Size returns the number of float32 values in the array.
func (a *Array) Size() int { return a.Width * a.Height * a.Channels }

// Shape returns the dimensions as `[height, width, channels]`.
func (a *Array) Shape() []int { return []int{a.Height, a.Width, a.Channels} }

func (a *Array) offset(x, y, c int) int {
	return (y*a.Width+x)*a.Channels + c
}

// At returns the value of channel c for pixel (x, y).
func (a *Array) At(x, y, c int) float32 { return a.Data[a.offset(x, y, c)] }

// Set the value of channel c for pixel (x, y).
func (a *Array) Set(x, y, c int, v float32) { a.Data[a.offset(x, y, c)] = v }

// Equal returns whether both arrays have the same dimensions and values.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Width == b.Width && a.Height == b.Height && a.Channels == b.Channels &&
		slices.Equal(a.Data, b.Data)
}

// String implements fmt.Stringer, printing only the shape.
func (a *Array) String() string {
	return fmt.Sprintf("(Float32)[%d %d %d]", a.Height, a.Width, a.Channels)
}
