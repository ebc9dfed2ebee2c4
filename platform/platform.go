// Package platform provides the operating system surface for the gateway.
//
// On Windows the thread DPI-awareness entry points of user32 are bound
// lazily, older versions of Windows simply lack them. Elsewhere there are no
// awareness contexts, only the display DPI is read from the X server.
package platform

import (
	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
)

var _ gateway.Platform = (*none)(nil)

// None returns a platform without any facility.
func None() gateway.Platform { return &none{} }

type none struct{}

func (*none) HasEntryPoint(gateway.EntryPoint) bool { return false }
func (*none) ThreadContext() (awareness.Context, error) {
	return awareness.Unspecified, errors.New(consts.ErrPlatformNotSupported)
}
func (*none) SetThreadContext(awareness.Context) (awareness.Context, error) {
	return awareness.Unspecified, errors.New(consts.ErrPlatformNotSupported)
}
func (*none) ContextsEqual(_, _ awareness.Context) (bool, error) {
	return false, errors.New(consts.ErrPlatformNotSupported)
}
func (*none) PrimaryDisplayDPI() (int, error) {
	return 0, errors.New(consts.ErrPlatformNotSupported)
}
