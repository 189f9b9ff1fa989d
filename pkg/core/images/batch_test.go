package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArray(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	copy(img.Pix, []uint8{
		1, 2, 3, 255,
		4, 5, 6, 0,
		7, 8, 9, 128,
		10, 11, 12, 255,
		13, 14, 15, 255,
		255, 0, 255, 255})
	arr := ToArray().Single(img)
	assert.Equal(t, []int{2, 3, 3}, arr.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 255, 0, 255}, arr.Data)

	arr = ToArray().MaxValue(1.0).Single(img)
	assert.InDelta(t, 1.0, arr.At(2, 1, 0), 1e-6)
	assert.InDelta(t, 0.0, arr.At(2, 1, 1), 1e-6)

	// Sub-image with non-zero origin and a paletted color model.
	pal := image.NewPaletted(image.Rect(5, 5, 7, 6), color.Palette{color.Black, color.NRGBA{R: 9, G: 8, B: 7, A: 255}})
	pal.SetColorIndex(6, 5, 1)
	arr = ToArray().Single(pal)
	assert.Equal(t, []float32{0, 0, 0, 9, 8, 7}, arr.Data)
}

func TestBatch(t *testing.T) {
	b := NewBatch(3, 4, 2)
	assert.Equal(t, []int{3, 2, 4, 3}, b.Shape())
	assert.Equal(t, 24, b.ImageSize())
	assert.Equal(t, uintptr(3*24*4), b.Memory())
	assert.Equal(t, 0, b.Filled())

	arr := positionalArray(4, 2)
	b.Set(1, arr)
	b.Set(1, arr)
	assert.Equal(t, 1, b.Filled(), "writing the same position twice counts once")
	assert.True(t, b.At(1).Equal(arr))
	assert.True(t, b.At(0).Equal(NewArray(4, 2)))

	b.Set(0, arr)
	b.Set(2, arr)
	assert.Equal(t, b.Count(), b.Filled())
}

func TestBatchPanics(t *testing.T) {
	b := NewBatch(2, 4, 2)
	require.Panics(t, func() { b.Set(2, positionalArray(4, 2)) })
	require.Panics(t, func() { b.Set(-1, positionalArray(4, 2)) })
	require.Panics(t, func() { b.Set(0, positionalArray(2, 4)) })
	require.Panics(t, func() { b.At(5) })
	require.Panics(t, func() { BatchFromData(2, 4, 2, make([]float32, 10)) })

	err := exceptions.TryCatch[error](func() { b.Set(0, positionalArray(3, 3)) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image #0")
}

func TestBatchFromData(t *testing.T) {
	data := make([]float32, 2*2*2*3)
	for ii := range data {
		data[ii] = float32(ii)
	}
	b := BatchFromData(2, 2, 2, data)
	assert.Equal(t, 2, b.Filled())
	assert.Equal(t, float32(12), b.At(1).At(0, 0, 0))
}

func TestChannelStats(t *testing.T) {
	b := NewBatch(2, 2, 1)
	a0, a1 := NewArray(2, 1), NewArray(2, 1)
	for x := range 2 {
		a0.Set(x, 0, 0, 10)
		a1.Set(x, 0, 0, 20)
		a0.Set(x, 0, 1, 5)
		a1.Set(x, 0, 1, 5)
		a0.Set(x, 0, 2, float32(x))
		a1.Set(x, 0, 2, float32(x))
	}
	b.Set(0, a0)
	b.Set(1, a1)
	mean, stddev := b.ChannelStats()
	assert.InDeltaSlice(t, []float64{15, 5, 0.5}, mean[:], 1e-9)
	assert.InDelta(t, 0.0, stddev[1], 1e-9)
	assert.Greater(t, stddev[0], 0.0)

	var empty Batch
	mean, _ = empty.ChannelStats()
	assert.Equal(t, [NumChannels]float64{}, mean)
}
