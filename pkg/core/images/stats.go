package images

import (
	"gonum.org/v1/gonum/stat"
)

// ChannelStats returns the mean and standard deviation of each channel over all
// images in the batch. They are typically used to normalize model inputs.
func (b *Batch) ChannelStats() (mean, stddev [NumChannels]float64) {
	if b.count == 0 {
		return
	}
	numPixels := len(b.Data) / b.Channels
	values := make([]float64, numPixels)
	for c := 0; c < b.Channels && c < NumChannels; c++ {
		for ii := range numPixels {
			values[ii] = float64(b.Data[ii*b.Channels+c])
		}
		mean[c], stddev[c] = stat.MeanStdDev(values, nil)
	}
	return
}
