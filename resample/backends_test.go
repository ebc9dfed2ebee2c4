package resample_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/resample"
	_ "github.com/srlehn/dpiscale/resample/bild"
	_ "github.com/srlehn/dpiscale/resample/gift"
	"github.com/srlehn/dpiscale/resample/imaging"
	_ "github.com/srlehn/dpiscale/resample/nfnt"
	"github.com/srlehn/dpiscale/resample/rdefault"
	"github.com/srlehn/dpiscale/resample/rez"
	"github.com/srlehn/dpiscale/resample/xdraw"
)

func uniform(r image.Rectangle, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestRegisteredBackends(t *testing.T) {
	names := resample.Names()
	for _, name := range []string{`bild`, `default`, `gift`, `imaging`, `nfnt`, `rez`, `xdraw`} {
		assert.Contains(t, names, name)
	}
	assert.Nil(t, resample.Lookup(`caire`))
}

func TestBackendsKeepUniformColor(t *testing.T) {
	fill := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	src := uniform(image.Rect(0, 0, 32, 32), fill)
	sizes := []image.Point{{64, 64}, {48, 48}, {16, 16}}
	for _, name := range resample.Names() {
		rs := resample.Lookup(name)
		for _, mode := range resample.Modes {
			for _, size := range sizes {
				t.Run(name+`/`+mode.String(), func(t *testing.T) {
					dst := image.NewNRGBA(image.Rectangle{Max: size})
					err := rs.Resample(dst, dst.Bounds(), src, resample.SamplingRect(src.Bounds()), mode)
					if name == rez.Name && mode == resample.NearestNeighbor {
						assert.True(t, errors.Is(err, consts.ErrUnsupportedMode))
						return
					}
					require.NoError(t, err)
					c := dst.NRGBAAt(size.X/2, size.Y/2)
					assert.True(t, near(c.R, fill.R) && near(c.G, fill.G) && near(c.B, fill.B) && near(c.A, fill.A), `%s: got %v`, name, c)
				})
			}
		}
	}
}

func TestBackendsOnlyWriteDestinationRect(t *testing.T) {
	src := uniform(image.Rect(0, 0, 16, 16), color.NRGBA{R: 255, A: 255})
	dr := image.Rect(4, 4, 36, 36)
	for _, name := range resample.Names() {
		dst := image.NewNRGBA(image.Rect(0, 0, 40, 40))
		require.NoError(t, resample.Lookup(name).Resample(dst, dr, src, resample.SamplingRect(src.Bounds()), resample.HighQualityBilinear), name)
		assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(0, 0), name)
		assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(39, 39), name)
		assert.Equal(t, uint8(255), dst.NRGBAAt(20, 20).A, name)
	}
}

func checker() *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return src
}

func TestNearestNeighborIntegerZoomIsCrisp(t *testing.T) {
	src := checker()
	for _, rs := range []resample.Resampler{xdraw.New(), &imaging.Resampler{}, &rdefault.Resampler{}} {
		dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		require.NoError(t, rs.Resample(dst, dst.Bounds(), src, resample.SamplingRect(src.Bounds()), resample.NearestNeighbor))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				assert.Equal(t, src.NRGBAAt(x/2, y/2), dst.NRGBAAt(x, y), `%T (%d,%d)`, rs, x, y)
			}
		}
	}
}

func TestXDrawFractionalSamplingRect(t *testing.T) {
	src := uniform(image.Rect(0, 0, 8, 8), color.NRGBA{G: 255, A: 255})
	dst := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	sr := resample.Rect64{X0: 1.25, Y0: 1.25, X1: 5.75, Y1: 5.75}
	require.NoError(t, xdraw.New().Resample(dst, dst.Bounds(), src, sr, resample.HighQualityBicubic))
	assert.Equal(t, uint8(255), dst.NRGBAAt(3, 3).G)

	_, err := resample.Crop(src, sr)
	assert.ErrorIs(t, err, consts.ErrUnalignedSource)
}

func TestXDrawFastBilinear(t *testing.T) {
	ip, err := (&xdraw.Resampler{Fast: true}).Interpolator(resample.HighQualityBilinear)
	require.NoError(t, err)
	assert.NotNil(t, ip)
	_, err = xdraw.New().Interpolator(resample.Mode(7))
	assert.ErrorIs(t, err, consts.ErrUnsupportedMode)
}

func TestBackendsRejectBadArgs(t *testing.T) {
	src := uniform(image.Rect(0, 0, 2, 2), color.NRGBA{A: 255})
	for _, name := range resample.Names() {
		rs := resample.Lookup(name)
		dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		assert.Error(t, rs.Resample(nil, dst.Bounds(), src, resample.SamplingRect(src.Bounds()), resample.HighQualityBilinear), name)
		assert.Error(t, rs.Resample(dst, dst.Bounds(), nil, resample.SamplingRect(src.Bounds()), resample.HighQualityBilinear), name)
		assert.Error(t, rs.Resample(dst, image.Rectangle{}, src, resample.SamplingRect(src.Bounds()), resample.HighQualityBilinear), name)
	}
}
