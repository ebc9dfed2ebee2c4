package scale

import (
	"math"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/resample"
)

// State is the immutable result of the display probe.
type State struct {
	DeviceDPI     int
	Factor        float64
	Interpolation resample.Mode
}

// NewState derives the scale factor and interpolation mode from dpi.
// A non-positive dpi is treated as the logical DPI.
func NewState(dpi int) State {
	if dpi <= 0 {
		dpi = consts.LogicalDPI
	}
	f := ScaleFactor(dpi)
	return State{
		DeviceDPI:     dpi,
		Factor:        f,
		Interpolation: ChooseInterpolationMode(int(math.Round(f * 100))),
	}
}

// Percent returns the scale factor in percent.
func (s State) Percent() int { return int(math.Round(s.Factor * 100)) }

// ScaleFactor returns dpi / 96.
func ScaleFactor(dpi int) float64 { return float64(dpi) / consts.LogicalDPI }

// ChooseInterpolationMode picks the resampling algorithm for a zoom level.
// Integer zooms keep pixels crisp, shrinking samples few neighbors and
// fractional enlargement is smoothed.
func ChooseInterpolationMode(percent int) resample.Mode {
	switch {
	case percent%100 == 0:
		return resample.NearestNeighbor
	case percent < 100:
		return resample.HighQualityBilinear
	default:
		return resample.HighQualityBicubic
	}
}

// ScaleToPercent scales v by percent / 100.
func ScaleToPercent(v, percent int) int {
	return int(math.Round(float64(v) * float64(percent) / 100))
}

// ConvertToGivenDPIPixel scales v by factor. A nonzero value never becomes 0
// so that thin lines and borders stay visible.
func ConvertToGivenDPIPixel(v int, factor float64) int {
	r := int(math.Round(float64(v) * factor))
	if r == 0 && v != 0 {
		if v < 0 {
			return -1
		}
		return 1
	}
	return r
}
