package scale_test

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/testutil"
	"github.com/srlehn/dpiscale/resample"
	"github.com/srlehn/dpiscale/scale"
)

func TestInitializeProbesOnce(t *testing.T) {
	p := &testutil.Prober{DPI: 144, OK: true}
	e := scale.New(scale.WithProber(p))

	const n = 32
	factors := make([]float64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e.Initialize()
			factors[i] = e.Factor()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, p.Probes())
	for _, f := range factors {
		assert.Equal(t, 1.5, f)
	}
	e.Initialize()
	assert.Equal(t, 1, p.Probes())
}

func TestFailedProbeMeansNoScaling(t *testing.T) {
	p := &testutil.Prober{DPI: 192, OK: false}
	e := scale.New(scale.WithProber(p))
	assert.Equal(t, 96, e.DeviceDPI())
	assert.Equal(t, 1.0, e.Factor())
	assert.False(t, e.IsScalingRequired())
	assert.Equal(t, resample.NearestNeighbor, e.InterpolationMode())

	// not retried
	p.OK = true
	assert.Equal(t, 96, e.DeviceDPI())
	assert.Equal(t, 1, p.Probes())
}

func TestEngineWithoutProber(t *testing.T) {
	e := scale.New()
	assert.Equal(t, 96, e.DeviceDPI())
	assert.NotNil(t, e.Resampler())
}

func TestFixedDPISkipsProbe(t *testing.T) {
	p := &testutil.Prober{DPI: 96, OK: true}
	e := scale.New(scale.WithProber(p), scale.WithDPI(192))
	assert.Equal(t, 192, e.DeviceDPI())
	assert.True(t, e.IsScalingRequired())
	assert.Equal(t, 0, p.Probes())
}

func TestEngineUsesGatewayDisplayDPI(t *testing.T) {
	gw := gateway.New(testutil.NewLegacyPlatform(120))
	e := scale.New(scale.WithProber(gw))
	assert.Equal(t, 1.25, e.Factor())
	assert.Equal(t, resample.HighQualityBicubic, e.InterpolationMode())

	gw = gateway.New(testutil.NewLegacyPlatform(0))
	assert.Equal(t, 96, scale.New(scale.WithProber(gw)).DeviceDPI())
}

func TestRoundTrip(t *testing.T) {
	for _, percent := range []int{100, 125, 150, 175, 200, 250, 300} {
		dpi := 96 * percent / 100
		e := scale.New(scale.WithDPI(dpi))
		for v := -500; v <= 500; v++ {
			d := e.LogicalToDevice(v, 0)
			require.Equal(t, v, e.DeviceToLogical(d, 0), `%d%%: %d -> %d`, percent, v, d)
		}
	}
}

func TestConversions(t *testing.T) {
	e := scale.New(scale.WithDPI(144))
	assert.Equal(t, 15, e.LogicalToDevice(10, 0))
	assert.Equal(t, 10, e.DeviceToLogical(15, 0))
	// half away from zero
	assert.Equal(t, 2, e.LogicalToDevice(1, 0))
	assert.Equal(t, -2, e.LogicalToDevice(-1, 0))

	// override DPI ignores the cached factor
	assert.Equal(t, 20, e.LogicalToDevice(10, 192))
	assert.Equal(t, 5, e.DeviceToLogical(10, 192))
	assert.Equal(t, 10, e.LogicalToDevice(10, 96))

	assert.Equal(t, image.Pt(15, 30), e.LogicalToDevicePoint(image.Pt(10, 20), 0))
	assert.Equal(t, image.Pt(10, 20), e.DeviceToLogicalPoint(image.Pt(15, 30), 0))
	assert.Equal(t, image.Pt(144, 144), e.LogicalToDeviceSize(image.Pt(96, 96), 0))
}

func TestRectModes(t *testing.T) {
	e := scale.New(scale.WithDPI(144))
	r := image.Rect(1, 1, 4, 4)

	assert.Equal(t, image.Rect(2, 2, 7, 7), e.LogicalToDeviceRect(r, 0, scale.RectComponentwise))
	assert.Equal(t, image.Rect(1, 1, 6, 6), e.LogicalToDeviceRect(r, 0, scale.RectExtendToWholePixels))

	full := image.Rect(0, 0, 96, 96)
	assert.Equal(t, image.Rect(0, 0, 144, 144), e.LogicalToDeviceRect(full, 0, scale.RectComponentwise))
	assert.Equal(t, image.Rect(0, 0, 144, 144), e.LogicalToDeviceRect(full, 0, scale.RectExtendToWholePixels))

	assert.Equal(t, image.Rect(0, 0, 96, 96), e.DeviceToLogicalRect(image.Rect(0, 0, 144, 144), 0, scale.RectComponentwise))
	assert.Equal(t, image.Rect(1, 1, 5, 5), e.DeviceToLogicalRect(image.Rect(2, 2, 7, 7), 0, scale.RectExtendToWholePixels))

	assert.Equal(t, image.Rect(2, 2, 8, 8), e.LogicalToDeviceRect(r, 192, scale.RectComponentwise))
}

func TestExtendedRectCoversOriginal(t *testing.T) {
	e := scale.New(scale.WithDPI(120))
	for x := 0; x < 20; x++ {
		r := image.Rect(x, x+1, 2*x+3, 3*x+5)
		got := e.LogicalToDeviceRect(r, 0, scale.RectExtendToWholePixels)
		assert.LessOrEqual(t, float64(got.Min.X), float64(r.Min.X)*1.25)
		assert.LessOrEqual(t, float64(got.Min.Y), float64(r.Min.Y)*1.25)
		assert.GreaterOrEqual(t, float64(got.Max.X), float64(r.Max.X)*1.25)
		assert.GreaterOrEqual(t, float64(got.Max.Y), float64(r.Max.Y)*1.25)
	}
}

func TestPadding(t *testing.T) {
	for _, dpi := range []int{72, 96, 120, 144, 192, 288} {
		e := scale.New(scale.WithDPI(dpi))
		assert.Equal(t, scale.Padding{}, e.DeviceToLogicalPadding(scale.Padding{}, 0))
		assert.Equal(t, scale.Padding{}, e.LogicalToDevicePadding(scale.Padding{}, 0))
	}
	e := scale.New(scale.WithDPI(192))
	p := scale.Padding{Left: 1, Top: 2, Right: 3, Bottom: 4}
	assert.Equal(t, scale.Padding{Left: 2, Top: 4, Right: 6, Bottom: 8}, e.LogicalToDevicePadding(p, 0))
	assert.Equal(t, p, e.DeviceToLogicalPadding(scale.Padding{Left: 2, Top: 4, Right: 6, Bottom: 8}, 0))
}
