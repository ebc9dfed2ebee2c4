// Package imgio reads and writes image files for the command line tool.
package imgio

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/srlehn/dpiscale/internal/errors"
)

// Load decodes an image file and applies its EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.New(err)
	}
	return img, nil
}

func Decode(r io.Reader) (image.Image, error) {
	if r == nil {
		return nil, errors.NilParam()
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.New(err)
	}
	return img, nil
}
