// Package resample draws a source image into a destination rectangle with a
// chosen interpolation mode. Backends for several imaging libraries live in
// the sub packages, rdefault picks one of them.
package resample

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/srlehn/dpiscale/internal/errors"
)

// Mode is the resampling algorithm.
type Mode uint8

const (
	// NearestNeighbor keeps pixels crisp, integer zooms produce NxN blocks.
	NearestNeighbor Mode = iota
	// HighQualityBilinear is used for shrinking.
	HighQualityBilinear
	// HighQualityBicubic is used for fractional enlargement.
	HighQualityBicubic
)

var Modes = [...]Mode{NearestNeighbor, HighQualityBilinear, HighQualityBicubic}

func (m Mode) String() string {
	switch m {
	case NearestNeighbor:
		return `nearest-neighbor`
	case HighQualityBilinear:
		return `high-quality-bilinear`
	case HighQualityBicubic:
		return `high-quality-bicubic`
	default:
		return `unknown`
	}
}

// ParseMode accepts the names returned by Mode.String and the short forms
// "nearest", "bilinear" and "bicubic".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `nearest-neighbor`, `nearest`, `nn`:
		return NearestNeighbor, nil
	case `high-quality-bilinear`, `bilinear`, `linear`:
		return HighQualityBilinear, nil
	case `high-quality-bicubic`, `bicubic`, `cubic`:
		return HighQualityBicubic, nil
	}
	return 0, errors.Errorf(`unknown interpolation mode %q`, s)
}

// Resampler draws the part sr of src into the part dr of dst.
type Resampler interface {
	Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr Rect64, mode Mode) error
}

// Rect64 is a rectangle in source pixel space. Integer coordinates address
// pixel centers, so the pixel (x, y) covers [x-0.5, x+0.5) × [y-0.5, y+0.5).
type Rect64 struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect64) Dx() float64 { return r.X1 - r.X0 }
func (r Rect64) Dy() float64 { return r.Y1 - r.Y0 }

// SamplingRect returns the sampling rectangle for the whole of b: b offset by
// half a pixel up and left. Sampling b itself instead would move every sample
// half a source pixel towards the bottom right and let the last row and column
// blend with the transparent outside.
func SamplingRect(b image.Rectangle) Rect64 {
	return Rect64{
		X0: float64(b.Min.X) - 0.5,
		Y0: float64(b.Min.Y) - 0.5,
		X1: float64(b.Max.X) - 0.5,
		Y1: float64(b.Max.Y) - 0.5,
	}
}

// CornerOrigin converts r to the convention of the Go imaging libraries where
// integer coordinates address the top left corner of a pixel.
func (r Rect64) CornerOrigin() Rect64 {
	return Rect64{X0: r.X0 + 0.5, Y0: r.Y0 + 0.5, X1: r.X1 + 0.5, Y1: r.Y1 + 0.5}
}

// Aligned returns the corner origin pixel rectangle of r if r covers whole
// pixels.
func (r Rect64) Aligned() (image.Rectangle, bool) {
	c := r.CornerOrigin()
	for _, v := range [...]float64{c.X0, c.Y0, c.X1, c.Y1} {
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return image.Rectangle{}, false
		}
	}
	return image.Rect(int(c.X0), int(c.Y0), int(c.X1), int(c.Y1)), true
}

// Covering returns the smallest corner origin pixel rectangle containing r.
func (r Rect64) Covering() image.Rectangle {
	c := r.CornerOrigin()
	return image.Rect(
		int(math.Floor(c.X0)), int(math.Floor(c.Y0)),
		int(math.Ceil(c.X1)), int(math.Ceil(c.Y1)),
	)
}
