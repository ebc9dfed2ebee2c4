package resample

import (
	"image"
	"image/color"
	"image/draw"

	imagingOrig "github.com/kovidgoyal/imaging"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
)

// NewImage allocates an image of the given size in the pixel format of like.
// Formats that cannot be drawn into (YCbCr, uniform, ...) get RGBA, or NRGBA
// if like is not premultiplied.
func NewImage(like image.Image, size image.Point) draw.Image {
	r := image.Rectangle{Max: size}
	switch m := like.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Paletted:
		p := make(color.Palette, len(m.Palette))
		copy(p, m.Palette)
		return image.NewPaletted(r, p)
	case *image.NYCbCrA:
		return image.NewNRGBA(r)
	}
	if like != nil && like.ColorModel() == color.NRGBAModel {
		return image.NewNRGBA(r)
	}
	return image.NewRGBA(r)
}

// Crop returns the pixels of src inside sr for backends that can only resize
// whole images. sr must be pixel aligned and inside the bounds of src.
func Crop(src image.Image, sr Rect64) (image.Image, error) {
	if src == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	r, ok := sr.Aligned()
	if !ok {
		return nil, errors.New(consts.ErrUnalignedSource)
	}
	b := src.Bounds()
	if r == b {
		return src, nil
	}
	if !r.In(b) || r.Empty() {
		return nil, errors.Errorf(`sampling rectangle %v outside of image bounds %v`, r, b)
	}
	if simg, ok := src.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return simg.SubImage(r), nil
	}
	return imagingOrig.Crop(src, r), nil
}

// Place copies a resized image into dr of dst.
func Place(dst draw.Image, dr image.Rectangle, resized image.Image) error {
	if dst == nil || resized == nil {
		return errors.New(consts.ErrNilImage)
	}
	if resized.Bounds().Size() != dr.Size() {
		return errors.Errorf(`resized image size %v does not match destination %v`, resized.Bounds().Size(), dr.Size())
	}
	draw.Draw(dst, dr, resized, resized.Bounds().Min, draw.Src)
	return nil
}

// CheckArgs validates the arguments of Resample.
func CheckArgs(dst draw.Image, dr image.Rectangle, src image.Image, sr Rect64) error {
	if dst == nil || src == nil {
		return errors.New(consts.ErrNilImage)
	}
	if dr.Empty() || sr.Dx() <= 0 || sr.Dy() <= 0 {
		return errors.New(consts.ErrInvalidSize)
	}
	return nil
}
