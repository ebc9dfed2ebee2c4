package scale

import (
	"image"
	"math"
)

// All conversions round half away from zero (math.Round). For factors of
// at least 1 this makes DeviceToLogical(LogicalToDevice(v)) == v.

// LogicalToDevice converts v from logical to device units. overrideDPI is
// the DPI of the target display, 0 selects the cached device DPI.
func (e *Engine) LogicalToDevice(v, overrideDPI int) int {
	return int(math.Round(float64(v) * e.factor(overrideDPI)))
}

// DeviceToLogical is the inverse of LogicalToDevice.
func (e *Engine) DeviceToLogical(v, overrideDPI int) int {
	return int(math.Round(float64(v) / e.factor(overrideDPI)))
}

func (e *Engine) LogicalToDevicePoint(p image.Point, overrideDPI int) image.Point {
	f := e.factor(overrideDPI)
	return image.Pt(mul(p.X, f), mul(p.Y, f))
}

func (e *Engine) DeviceToLogicalPoint(p image.Point, overrideDPI int) image.Point {
	f := e.factor(overrideDPI)
	return image.Pt(div(p.X, f), div(p.Y, f))
}

// LogicalToDeviceSize is LogicalToDevicePoint for sizes.
func (e *Engine) LogicalToDeviceSize(size image.Point, overrideDPI int) image.Point {
	return e.LogicalToDevicePoint(size, overrideDPI)
}

// RectMode selects how rectangles are converted.
type RectMode uint8

const (
	// RectComponentwise converts x, y, width and height independently.
	// Under fractional factors edges of adjacent rectangles may drift apart
	// by a pixel.
	RectComponentwise RectMode = iota
	// RectExtendToWholePixels floors the top left and ceils the bottom right
	// corner. The result covers the converted original completely.
	RectExtendToWholePixels
)

func (m RectMode) String() string {
	switch m {
	case RectComponentwise:
		return `componentwise`
	case RectExtendToWholePixels:
		return `extend-to-whole-pixels`
	default:
		return `unknown`
	}
}

func (e *Engine) LogicalToDeviceRect(r image.Rectangle, overrideDPI int, mode RectMode) image.Rectangle {
	f := e.factor(overrideDPI)
	return convertRect(r, func(v int) float64 { return float64(v) * f }, mode)
}

func (e *Engine) DeviceToLogicalRect(r image.Rectangle, overrideDPI int, mode RectMode) image.Rectangle {
	f := e.factor(overrideDPI)
	return convertRect(r, func(v int) float64 { return float64(v) / f }, mode)
}

func convertRect(r image.Rectangle, conv func(int) float64, mode RectMode) image.Rectangle {
	if mode == RectExtendToWholePixels {
		return image.Rect(
			int(math.Floor(conv(r.Min.X))),
			int(math.Floor(conv(r.Min.Y))),
			int(math.Ceil(conv(r.Max.X))),
			int(math.Ceil(conv(r.Max.Y))),
		)
	}
	round := func(v int) int { return int(math.Round(conv(v))) }
	x, y := round(r.Min.X), round(r.Min.Y)
	return image.Rect(x, y, x+round(r.Dx()), y+round(r.Dy()))
}

// Padding holds the inner spacing of a control.
type Padding struct {
	Left, Top, Right, Bottom int
}

func (e *Engine) LogicalToDevicePadding(p Padding, overrideDPI int) Padding {
	f := e.factor(overrideDPI)
	return Padding{Left: mul(p.Left, f), Top: mul(p.Top, f), Right: mul(p.Right, f), Bottom: mul(p.Bottom, f)}
}

func (e *Engine) DeviceToLogicalPadding(p Padding, overrideDPI int) Padding {
	f := e.factor(overrideDPI)
	return Padding{Left: div(p.Left, f), Top: div(p.Top, f), Right: div(p.Right, f), Bottom: div(p.Bottom, f)}
}

func mul(v int, f float64) int { return int(math.Round(float64(v) * f)) }
func div(v int, f float64) int { return int(math.Round(float64(v) / f)) }
