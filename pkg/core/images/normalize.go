package images

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// DefaultSize is the default length of the short side of normalized images.
const DefaultSize = 256

// ErrInvalidSize is returned for non-positive sizes.
var ErrInvalidSize = errors.New("invalid image size")

// ShortSideSize returns the dimensions of an image of width x height scaled
// uniformly so that its short side becomes target.
//
// The short side is exactly target, the long side is rounded to the nearest integer
// (halves to even), so the aspect ratio is preserved up to rounding.
func ShortSideSize(width, height, target int) (newWidth, newHeight int, err error) {
	if width <= 0 || height <= 0 || target <= 0 {
		err = errors.Wrapf(ErrInvalidSize, "can't resize %dx%d image to short side %d", width, height, target)
		return
	}
	switch {
	case width < height:
		ratio := float64(target) / float64(width)
		newWidth = target
		newHeight = int(math.RoundToEven(float64(height) * ratio))
	case height < width:
		ratio := float64(target) / float64(height)
		newHeight = target
		newWidth = int(math.RoundToEven(float64(width) * ratio))
	default:
		newWidth, newHeight = target, target
	}
	return
}

// ResizeShortSide resizes img proportionally so that its short side has length target.
func ResizeShortSide(img image.Image, target int, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	bounds := img.Bounds()
	width, height, err := ShortSideSize(bounds.Dx(), bounds.Dy(), target)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, height, filter), nil
}

// Normalizer loads images from disk and converts them to pixel arrays whose short side is Size.
type Normalizer struct {
	// Size of the short side after resizing.
	Size int

	// Filter used for resampling. Lanczos is the antialiasing filter.
	Filter imaging.ResampleFilter

	// MaxValue of a fully saturated channel, see ToArrayConfig.MaxValue.
	MaxValue float64
}

// NewNormalizer returns a Normalizer to the given short side size, using the Lanczos filter
// and DefaultMaxValue.
func NewNormalizer(size int) *Normalizer {
	return &Normalizer{Size: size, Filter: imaging.Lanczos, MaxValue: DefaultMaxValue}
}

// Image normalizes an already decoded image.
func (n *Normalizer) Image(img image.Image) (*Array, error) {
	resized, err := ResizeShortSide(img, n.Size, n.Filter)
	if err != nil {
		return nil, err
	}
	return ToArray().MaxValue(n.MaxValue).Single(resized), nil
}

// Load decodes the image in imagePath and normalizes it.
//
// There is no fallback: missing or corrupt files are returned as errors
// (a *DecodeError for the latter).
func (n *Normalizer) Load(imagePath string) (*Array, error) {
	img, _, err := ReadImage(imagePath)
	if err != nil {
		return nil, err
	}
	arr, err := n.Image(img)
	if err != nil {
		return nil, errors.WithMessagef(err, "normalizing %q", imagePath)
	}
	return arr, nil
}

// Normalize loads the image in imagePath, resizes it so its short side is size and
// returns it as an RGB pixel array.
func Normalize(imagePath string, size int) (*Array, error) {
	return NewNormalizer(size).Load(imagePath)
}
