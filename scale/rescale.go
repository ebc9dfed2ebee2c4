package scale

import (
	"image"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/logx"
	"github.com/srlehn/dpiscale/resample"
)

// Rescale returns a new image of size in the pixel format of src, resampled
// with the engine's interpolation mode. src is not modified.
func (e *Engine) Rescale(src image.Image, size image.Point) (image.Image, error) {
	return e.RescaleWithMode(src, size, e.InterpolationMode())
}

// RescaleWithMode is Rescale with an explicit interpolation mode.
//
// The source is sampled over its bounds shifted half a pixel up and left.
// Without the shift the bottom and right edges of the result are blended
// with the transparent area outside of src.
func (e *Engine) RescaleWithMode(src image.Image, size image.Point, mode resample.Mode) (image.Image, error) {
	bounds, ok := imageBounds(src)
	if !ok {
		return nil, errors.WrapPrefix(consts.ErrNilImage, `rescale`, 0)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.WrapPrefix(consts.ErrInvalidSize, size.String(), 0)
	}
	if e.resampler == nil {
		return nil, errors.NilParam()
	}
	dst := resample.NewImage(src, size)
	sr := resample.SamplingRect(bounds)
	return logx.TimeIt2(func() (image.Image, error) {
		if err := e.resampler.Resample(dst, dst.Bounds(), src, sr, mode); err != nil {
			return nil, err
		}
		return dst, nil
	}, `rescale`, e, `from`, bounds.Size().String(), `to`, size.String(), `mode`, mode.String())
}

// RescaleToLogicalDPI scales src, taken to be in logical units, to device
// units. A nil src is returned as is, as is src if its size does not change.
func (e *Engine) RescaleToLogicalDPI(src image.Image, overrideDPI int) (image.Image, error) {
	bounds, ok := imageBounds(src)
	if !ok {
		return src, nil
	}
	from := bounds.Size()
	to := e.LogicalToDeviceSize(from, overrideDPI)
	if to == from {
		return src, nil
	}
	return e.Rescale(src, to)
}

// RescaleToSize scales src to size. A nil src is returned as is.
func (e *Engine) RescaleToSize(src image.Image, size image.Point) (image.Image, error) {
	bounds, ok := imageBounds(src)
	if !ok {
		return src, nil
	}
	if bounds.Size() == size {
		return src, nil
	}
	return e.Rescale(src, size)
}

// imageBounds returns the bounds of src. ok is false for nil images,
// including nil pointers of image types whose Bounds method panics.
func imageBounds(src image.Image) (b image.Rectangle, ok bool) {
	if src == nil {
		return b, false
	}
	defer func() {
		if r := recover(); r != nil {
			b, ok = image.Rectangle{}, false
		}
	}()
	return src.Bounds(), true
}

// RescaleButtonImage scales a button glyph drawn at 96 DPI to the device
// DPI. Without scaling src is returned.
func (e *Engine) RescaleButtonImage(src image.Image) (image.Image, error) {
	if src == nil || !e.IsScalingRequired() {
		return src, nil
	}
	return e.RescaleToLogicalDPI(src, 0)
}
