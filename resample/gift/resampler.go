package gift

import (
	"image"
	"image/draw"

	"github.com/disintegration/gift"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/resample"
)

const Name = `gift`

func init() { resample.Register(Name, &Resampler{}) }

// Resampler uses "github.com/disintegration/gift"
type Resampler struct{}

var _ resample.Resampler = (*Resampler)(nil)

// Resample ...
func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	if err := resample.CheckArgs(dst, dr, src, sr); err != nil {
		return err
	}
	var rs gift.Resampling
	switch mode {
	case resample.NearestNeighbor:
		rs = gift.NearestNeighborResampling
	case resample.HighQualityBilinear:
		rs = gift.LinearResampling
	case resample.HighQualityBicubic:
		rs = gift.CubicResampling
	default:
		return errors.WrapPrefix(consts.ErrUnsupportedMode, mode.String(), 0)
	}
	img, err := resample.Crop(src, sr)
	if err != nil {
		return err
	}
	m := image.NewNRGBA(image.Rectangle{Max: dr.Size()})
	gift.Resize(dr.Dx(), dr.Dy(), rs).Draw(m, img, &gift.Options{Parallelization: true})
	return resample.Place(dst, dr, m)
}
