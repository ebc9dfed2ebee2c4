package resample_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/resample"
)

func TestSamplingRect(t *testing.T) {
	sr := resample.SamplingRect(image.Rect(0, 0, 96, 48))
	assert.Equal(t, resample.Rect64{X0: -0.5, Y0: -0.5, X1: 95.5, Y1: 47.5}, sr)
	assert.Equal(t, 96.0, sr.Dx())
	assert.Equal(t, 48.0, sr.Dy())

	r, ok := sr.Aligned()
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 96, 48), r)

	sr = resample.SamplingRect(image.Rect(10, 20, 30, 40))
	assert.Equal(t, resample.Rect64{X0: 9.5, Y0: 19.5, X1: 29.5, Y1: 39.5}, sr)
	assert.Equal(t, resample.Rect64{X0: 10, Y0: 20, X1: 30, Y1: 40}, sr.CornerOrigin())
}

func TestRect64Unaligned(t *testing.T) {
	sr := resample.Rect64{X0: 0, Y0: 0, X1: 3, Y1: 3}
	_, ok := sr.Aligned()
	assert.False(t, ok)
	assert.Equal(t, image.Rect(0, 0, 4, 4), sr.Covering())
}

func TestParseMode(t *testing.T) {
	for _, m := range resample.Modes {
		got, err := resample.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := resample.ParseMode(`Bicubic`)
	require.NoError(t, err)
	assert.Equal(t, resample.HighQualityBicubic, got)
	_, err = resample.ParseMode(`lanczos`)
	assert.Error(t, err)
	assert.Equal(t, `unknown`, resample.Mode(9).String())
}

func TestNewImageKeepsPixelFormat(t *testing.T) {
	size := image.Pt(3, 2)
	r := image.Rect(0, 0, 1, 1)
	tests := []struct {
		like image.Image
		want any
	}{
		{image.NewRGBA(r), &image.RGBA{}},
		{image.NewNRGBA(r), &image.NRGBA{}},
		{image.NewRGBA64(r), &image.RGBA64{}},
		{image.NewNRGBA64(r), &image.NRGBA64{}},
		{image.NewGray(r), &image.Gray{}},
		{image.NewGray16(r), &image.Gray16{}},
		{image.NewAlpha(r), &image.Alpha{}},
		{image.NewAlpha16(r), &image.Alpha16{}},
		{image.NewCMYK(r), &image.CMYK{}},
		{image.NewPaletted(r, color.Palette{color.Black, color.White}), &image.Paletted{}},
		{image.NewYCbCr(r, image.YCbCrSubsampleRatio420), &image.RGBA{}},
		{image.NewNYCbCrA(r, image.YCbCrSubsampleRatio420), &image.NRGBA{}},
		{image.NewUniform(color.White), &image.RGBA{}},
	}
	for _, tc := range tests {
		m := resample.NewImage(tc.like, size)
		assert.IsType(t, tc.want, m)
		assert.Equal(t, image.Rectangle{Max: size}, m.Bounds())
	}
	p := resample.NewImage(image.NewPaletted(r, color.Palette{color.Black, color.White}), size).(*image.Paletted)
	assert.Len(t, p.Palette, 2)
}

func TestCrop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	m, err := resample.Crop(src, resample.SamplingRect(src.Bounds()))
	require.NoError(t, err)
	assert.Same(t, src, m)

	m, err = resample.Crop(src, resample.SamplingRect(image.Rect(2, 2, 6, 6)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(2, 2, 6, 6), m.Bounds())

	_, err = resample.Crop(src, resample.Rect64{X0: 0.25, Y0: 0, X1: 4, Y1: 4})
	assert.Error(t, err)
	_, err = resample.Crop(src, resample.SamplingRect(image.Rect(4, 4, 12, 12)))
	assert.Error(t, err)
	_, err = resample.Crop(nil, resample.Rect64{})
	assert.Error(t, err)

	// no SubImage method
	m, err = resample.Crop(image.NewUniform(color.White), resample.SamplingRect(image.Rect(1, 1, 4, 3)))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), m.Bounds().Size())
}
