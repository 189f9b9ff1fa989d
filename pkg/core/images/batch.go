package images

import (
	"fmt"

	. "github.com/gomlx/exceptions"
)

// Batch is a pre-allocated block of Count images of the same dimensions, stored
// contiguously with shape `[count, height, width, channels]`.
//
// Images are written by index with Set, and Batch keeps track of which positions
// were written, so the owner can check that the batch was completely filled.
type Batch struct {
	Width, Height, Channels int
	Data                    []float32

	count   int
	written []bool
	filled  int
}

// NewBatch allocates a Batch for count images of width x height pixels with NumChannels channels.
func NewBatch(count, width, height int) *Batch {
	if count < 0 || width <= 0 || height <= 0 {
		Panicf("invalid batch dimensions: count=%d, width=%d, height=%d", count, width, height)
	}
	return &Batch{
		Width:    width,
		Height:   height,
		Channels: NumChannels,
		Data:     make([]float32, count*width*height*NumChannels),
		count:    count,
		written:  make([]bool, count),
	}
}

// BatchFromData wraps data, holding count complete images of width x height pixels,
// into a Batch with all positions marked as written.
func BatchFromData(count, width, height int, data []float32) *Batch {
	b := &Batch{
		Width:    width,
		Height:   height,
		Channels: NumChannels,
		Data:     data,
		count:    count,
		written:  make([]bool, count),
		filled:   count,
	}
	if len(data) != count*b.ImageSize() {
		Panicf("BatchFromData: %d values given, but %d images of %dx%dx%d require %d",
			len(data), count, width, height, NumChannels, count*b.ImageSize())
	}
	for ii := range b.written {
		b.written[ii] = true
	}
	return b
}

// Count returns the number of images the batch holds.
func (b *Batch) Count() int { return b.count }

// Filled returns the number of distinct positions written so far.
func (b *Batch) Filled() int { return b.filled }

// ImageSize returns the number of float32 values per image.
func (b *Batch) ImageSize() int { return b.Width * b.Height * b.Channels }

// Shape returns `[count, height, width, channels]`.
func (b *Batch) Shape() []int { return []int{b.count, b.Height, b.Width, b.Channels} }

// Memory returns the number of bytes used by the pixel values.
func (b *Batch) Memory() uintptr { return uintptr(len(b.Data)) * 4 }

// Set copies arr into position idx.
//
// It panics if idx is out of range or arr doesn't have the batch's image dimensions.
func (b *Batch) Set(idx int, arr *Array) {
	if idx < 0 || idx >= b.count {
		Panicf("batch index %d out of range, batch has %d images", idx, b.count)
	}
	if arr.Width != b.Width || arr.Height != b.Height || arr.Channels != b.Channels {
		Panicf("image #%d is shaped %s, but batch holds images shaped (Float32)[%d %d %d]",
			idx, arr, b.Height, b.Width, b.Channels)
	}
	size := b.ImageSize()
	copy(b.Data[idx*size:(idx+1)*size], arr.Data)
	if !b.written[idx] {
		b.written[idx] = true
		b.filled++
	}
}

// At returns a view (not a copy) of the image at position idx.
func (b *Batch) At(idx int) *Array {
	if idx < 0 || idx >= b.count {
		Panicf("batch index %d out of range, batch has %d images", idx, b.count)
	}
	size := b.ImageSize()
	return &Array{
		Width:    b.Width,
		Height:   b.Height,
		Channels: b.Channels,
		Data:     b.Data[idx*size : (idx+1)*size : (idx+1)*size],
	}
}

// String implements fmt.Stringer.
func (b *Batch) String() string {
	return fmt.Sprintf("(Float32)[%d %d %d %d]", b.count, b.Height, b.Width, b.Channels)
}
