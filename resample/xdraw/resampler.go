// Package xdraw provides a resampler implementation using golang.org/x/image/draw.
// It is the only backend sampling fractional source rectangles exactly.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/resample"
)

const Name = `xdraw`

func init() { resample.Register(Name, New()) }

// Resampler uses "golang.org/x/image/draw"
type Resampler struct {
	// Fast selects ApproxBiLinear instead of BiLinear for bilinear resampling.
	Fast bool
}

var _ resample.Resampler = (*Resampler)(nil)

func New() *Resampler { return &Resampler{} }

// Interpolator returns the x/image interpolator used for mode.
func (r *Resampler) Interpolator(mode resample.Mode) (draw.Interpolator, error) {
	switch mode {
	case resample.NearestNeighbor:
		return draw.NearestNeighbor, nil
	case resample.HighQualityBilinear:
		if r != nil && r.Fast {
			return draw.ApproxBiLinear, nil
		}
		return draw.BiLinear, nil
	case resample.HighQualityBicubic:
		return draw.CatmullRom, nil
	}
	return nil, errors.WrapPrefix(consts.ErrUnsupportedMode, mode.String(), 0)
}

func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	if err := resample.CheckArgs(dst, dr, src, sr); err != nil {
		return err
	}
	ip, err := r.Interpolator(mode)
	if err != nil {
		return err
	}
	if srAligned, ok := sr.Aligned(); ok && srAligned.In(src.Bounds()) {
		ip.Scale(dst, dr, src, srAligned, draw.Src, nil)
		return nil
	}
	c := sr.CornerOrigin()
	kx := float64(dr.Dx()) / c.Dx()
	ky := float64(dr.Dy()) / c.Dy()
	s2d := f64.Aff3{
		kx, 0, float64(dr.Min.X) - c.X0*kx,
		0, ky, float64(dr.Min.Y) - c.Y0*ky,
	}
	srClip := sr.Covering().Intersect(src.Bounds())
	if srClip.Empty() {
		return errors.Errorf(`sampling rectangle %v outside of image bounds %v`, sr, src.Bounds())
	}
	ip.Transform(clip(dst, dr), s2d, src, srClip, draw.Src, nil)
	return nil
}

// clip restricts drawing to dr where the image type allows it.
func clip(dst draw.Image, dr image.Rectangle) draw.Image {
	if sub, ok := dst.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		if d, ok := sub.SubImage(dr).(draw.Image); ok {
			return d
		}
	}
	return dst
}
