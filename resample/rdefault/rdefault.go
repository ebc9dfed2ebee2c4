// Package rdefault provides the default resampler.
package rdefault

import (
	"image"
	"image/draw"
	"runtime"

	"github.com/srlehn/dpiscale/resample"
	"github.com/srlehn/dpiscale/resample/rez"
	"github.com/srlehn/dpiscale/resample/xdraw"
)

const Name = `default`

func init() { resample.Register(Name, &Resampler{}) }

// Resampler uses the SIMD code of rez where it applies and
// golang.org/x/image/draw otherwise.
type Resampler struct{}

var _ resample.Resampler = (*Resampler)(nil)

func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	fallback := xdraw.New()
	if runtime.GOARCH != `amd64` || !rez.Supports(src, mode) {
		return fallback.Resample(dst, dr, src, sr, mode)
	}
	if _, aligned := sr.Aligned(); !aligned {
		return fallback.Resample(dst, dr, src, sr, mode)
	}
	if err := (&rez.Resampler{}).Resample(dst, dr, src, sr, mode); err != nil {
		return fallback.Resample(dst, dr, src, sr, mode)
	}
	return nil
}
