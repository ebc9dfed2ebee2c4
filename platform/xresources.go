package platform

import (
	"math"
	"strconv"
	"strings"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/environ"
)

// ParseXResources splits the RESOURCE_MANAGER property of the root window
// into name value pairs.
func ParseXResources(data string) [][2]string {
	var xRes [][2]string
	for _, res := range strings.Split(data, "\n") {
		if len(res) == 0 || strings.HasPrefix(res, `!`) {
			continue
		}
		name, value, found := strings.Cut(res, `:`)
		if !found {
			continue
		}
		xRes = append(xRes, [2]string{strings.TrimSpace(name), strings.TrimSpace(value)})
	}
	return xRes
}

// XftDPI returns the value of the Xft.dpi resource. Later entries override
// earlier ones like with xrdb.
func XftDPI(xRes [][2]string) (int, bool) {
	var (
		dpi int
		ok  bool
	)
	for _, res := range xRes {
		if res[0] != `Xft.dpi` && res[0] != `*dpi` {
			continue
		}
		f, err := strconv.ParseFloat(res[1], 64)
		if err != nil || f <= 0 {
			continue
		}
		dpi, ok = int(math.Round(f)), true
	}
	return dpi, ok
}

// EnvDPI derives the DPI from the toolkit scale variables GDK_SCALE and
// QT_SCALE_FACTOR.
func EnvDPI(e environ.Enver) (int, bool) {
	for _, name := range [...]string{`GDK_SCALE`, `QT_SCALE_FACTOR`} {
		f, ok, err := environ.LookupFloat(e, name)
		if err != nil || !ok || f <= 0 {
			continue
		}
		return int(math.Round(f * consts.LogicalDPI)), true
	}
	return 0, false
}

// PhysicalDPI computes the DPI from a width in pixels and millimeters.
func PhysicalDPI(px, mm int) (int, bool) {
	if px <= 0 || mm <= 0 {
		return 0, false
	}
	return int(math.Round(float64(px) * 25.4 / float64(mm))), true
}
