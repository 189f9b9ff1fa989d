package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError is returned when a file exists but can't be decoded as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error { return e.Err }

// ReadImage opens and decodes the image in imagePath.
// Supported formats: JPEG, PNG, GIF, BMP, TIFF and WebP.
//
// If the file can't be opened the returned error wraps the *os.PathError, if it can't
// be decoded it is a *DecodeError.
func ReadImage(imagePath string) (image.Image, string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open image")
	}
	defer func() { _ = f.Close() }()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: imagePath, Err: err}
	}
	return img, format, nil
}
