package nfnt

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/resample"
)

const Name = `nfnt`

func init() { resample.Register(Name, &Resampler{}) }

// Resampler uses "github.com/nfnt/resize"
type Resampler struct{}

var _ resample.Resampler = (*Resampler)(nil)

// Resample ...
func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	if err := resample.CheckArgs(dst, dr, src, sr); err != nil {
		return err
	}
	var ip resize.InterpolationFunction
	switch mode {
	case resample.NearestNeighbor:
		ip = resize.NearestNeighbor
	case resample.HighQualityBilinear:
		ip = resize.Bilinear
	case resample.HighQualityBicubic:
		ip = resize.Bicubic
	default:
		return errors.WrapPrefix(consts.ErrUnsupportedMode, mode.String(), 0)
	}
	img, err := resample.Crop(src, sr)
	if err != nil {
		return err
	}
	return resample.Place(dst, dr, resize.Resize(uint(dr.Dx()), uint(dr.Dy()), img, ip))
}
