package bild

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/resample"
)

const Name = `bild`

func init() { resample.Register(Name, &Resampler{}) }

// Resampler uses "github.com/anthonynsimon/bild/transform"
type Resampler struct{}

var _ resample.Resampler = (*Resampler)(nil)

// Resample ...
func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	if err := resample.CheckArgs(dst, dr, src, sr); err != nil {
		return err
	}
	var filter transform.ResampleFilter
	switch mode {
	case resample.NearestNeighbor:
		filter = transform.NearestNeighbor
	case resample.HighQualityBilinear:
		filter = transform.Linear
	case resample.HighQualityBicubic:
		filter = transform.CatmullRom
	default:
		return errors.WrapPrefix(consts.ErrUnsupportedMode, mode.String(), 0)
	}
	img, err := resample.Crop(src, sr)
	if err != nil {
		return err
	}
	return resample.Place(dst, dr, transform.Resize(img, dr.Dx(), dr.Dy(), filter))
}
