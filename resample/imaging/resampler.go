package imaging

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/resample"
)

const Name = `imaging`

func init() { resample.Register(Name, &Resampler{}) }

// Resampler uses "github.com/disintegration/imaging"
type Resampler struct{}

var _ resample.Resampler = (*Resampler)(nil)

// Resample ...
func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	if err := resample.CheckArgs(dst, dr, src, sr); err != nil {
		return err
	}
	var filter imaging.ResampleFilter
	switch mode {
	case resample.NearestNeighbor:
		filter = imaging.NearestNeighbor
	case resample.HighQualityBilinear:
		filter = imaging.Linear
	case resample.HighQualityBicubic:
		filter = imaging.CatmullRom
	default:
		return errors.WrapPrefix(consts.ErrUnsupportedMode, mode.String(), 0)
	}
	img, err := resample.Crop(src, sr)
	if err != nil {
		return err
	}
	return resample.Place(dst, dr, imaging.Resize(img, dr.Dx(), dr.Dy(), filter))
}
