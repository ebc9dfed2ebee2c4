package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/resample"
)

const Name = `rez`

func init() { resample.Register(Name, &Resampler{}) }

// Resampler uses "github.com/bamiaux/rez"
// rez has no nearest neighbor filter and only converts between images of
// the same type (YCbCr, RGBA, NRGBA, Gray).
type Resampler struct{}

var _ resample.Resampler = (*Resampler)(nil)

// Supports reports whether rez can resample src with mode.
func Supports(src image.Image, mode resample.Mode) bool {
	if mode != resample.HighQualityBilinear && mode != resample.HighQualityBicubic {
		return false
	}
	switch src.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
		return true
	}
	return false
}

// Resample ...
func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	if err := resample.CheckArgs(dst, dr, src, sr); err != nil {
		return err
	}
	var filter rez.Filter
	switch mode {
	case resample.HighQualityBilinear:
		filter = rez.NewBilinearFilter()
	case resample.HighQualityBicubic:
		filter = rez.NewBicubicFilter()
	default:
		return errors.WrapPrefix(consts.ErrUnsupportedMode, mode.String(), 0)
	}
	img, err := resample.Crop(src, sr)
	if err != nil {
		return err
	}
	size := image.Rectangle{Max: dr.Size()}
	var m image.Image
	switch it := img.(type) {
	case *image.YCbCr:
		m = image.NewYCbCr(size, it.SubsampleRatio)
	case *image.RGBA:
		m = image.NewRGBA(size)
	case *image.NRGBA:
		m = image.NewNRGBA(size)
	case *image.Gray:
		m = image.NewGray(size)
	default:
		return errors.Errorf(`rez: unsupported image type %T`, img)
	}
	if err := rez.Convert(m, img, filter); err != nil {
		return errors.New(err)
	}
	return resample.Place(dst, dr, m)
}
