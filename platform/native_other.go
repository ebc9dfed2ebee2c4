//go:build !windows

package platform

import (
	"github.com/jezek/xgb/xproto"
	"github.com/srlehn/xgbutil"
	"github.com/srlehn/xgbutil/xprop"

	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/environ"
	"github.com/srlehn/dpiscale/internal/errors"
)

// Native returns the platform of the running system. Without an X server
// only the environment is consulted for the display DPI.
func Native() gateway.Platform { return NewX11(environ.OS()) }

var _ gateway.Platform = (*X11)(nil)

// X11 has no awareness contexts. The display DPI is taken from the Xft.dpi
// resource, the toolkit scale variables or the physical screen size, in that
// order.
type X11 struct {
	env environ.Enver
}

func NewX11(env environ.Enver) *X11 { return &X11{env: env} }

func (*X11) HasEntryPoint(gateway.EntryPoint) bool { return false }
func (*X11) ThreadContext() (awareness.Context, error) {
	return awareness.Unspecified, errors.New(consts.ErrPlatformNotSupported)
}
func (*X11) SetThreadContext(awareness.Context) (awareness.Context, error) {
	return awareness.Unspecified, errors.New(consts.ErrPlatformNotSupported)
}
func (*X11) ContextsEqual(_, _ awareness.Context) (bool, error) {
	return false, errors.New(consts.ErrPlatformNotSupported)
}

func (p *X11) PrimaryDisplayDPI() (int, error) {
	var errs []error
	var conn *xgbutil.XUtil
	if display := p.getenv(`DISPLAY`); len(display) > 0 {
		c, err := xgbutil.NewConnDisplay(display)
		if err != nil {
			errs = append(errs, errors.New(err))
		} else {
			conn = c
			defer conn.Conn().Close()
			xRes, err := XResources(conn)
			if err != nil {
				errs = append(errs, err)
			} else if dpi, ok := XftDPI(xRes); ok {
				return dpi, nil
			}
		}
	}
	if dpi, ok := EnvDPI(p.env); ok {
		return dpi, nil
	}
	if conn != nil {
		if scr := conn.Screen(); scr != nil {
			if dpi, ok := PhysicalDPI(int(scr.WidthInPixels), int(scr.WidthInMillimeters)); ok {
				return dpi, nil
			}
		}
	}
	errs = append(errs, errors.New(`no display dpi source`))
	return 0, errors.Join(errs...)
}

func (p *X11) getenv(name string) string {
	if p == nil || p.env == nil {
		return ``
	}
	return p.env.Getenv(name)
}

// XResources reads the resource database of the X server (xrdb -query).
func XResources(conn *xgbutil.XUtil) ([][2]string, error) {
	if conn == nil {
		return nil, errors.NilParam()
	}
	resMgrStr, err := xprop.AtomName(conn, xproto.AtomResourceManager) // "RESOURCE_MANAGER"
	if err != nil {
		return nil, errors.New(err)
	}
	resMgrProp, err := xprop.GetProperty(conn, conn.RootWin(), resMgrStr)
	if err != nil {
		return nil, errors.New(err)
	}
	return ParseXResources(string(resMgrProp.Value)), nil
}
