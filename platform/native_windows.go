//go:build windows

package platform

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/errors"
)

var (
	user32DLL = windows.NewLazySystemDLL(gateway.ModuleUser32)
	shcoreDLL = windows.NewLazySystemDLL(`shcore.dll`)
)

var (
	getThreadDpiAwarenessContextProc        = user32DLL.NewProc(gateway.EntryGetThreadContext.Name)
	setThreadDpiAwarenessContextProc        = user32DLL.NewProc(gateway.EntrySetThreadContext.Name)
	areDpiAwarenessContextsEqualProc        = user32DLL.NewProc(gateway.EntryContextsEqual.Name)
	getAwarenessFromDpiAwarenessContextProc = user32DLL.NewProc(`GetAwarenessFromDpiAwarenessContext`)
	getDpiForMonitorProc                    = shcoreDLL.NewProc(`GetDpiForMonitor`)
)

// DPI_AWARENESS_CONTEXT pseudo handles
// https://learn.microsoft.com/en-us/windows/win32/hidpi/dpi-awareness-context
var handles = map[awareness.Context]uintptr{
	awareness.Unaware:           ^uintptr(0), // -1
	awareness.SystemAware:       ^uintptr(1), // -2
	awareness.PerMonitorAware:   ^uintptr(2), // -3
	awareness.PerMonitorAwareV2: ^uintptr(3), // -4
}

// Native returns the user32 backed platform.
func Native() gateway.Platform { return &Windows{} }

var _ gateway.Platform = (*Windows)(nil)

// Windows calls the procedures without checking for their presence first,
// missing procedures panic. The gateway checks HasEntryPoint before.
type Windows struct{}

func (*Windows) HasEntryPoint(ep gateway.EntryPoint) bool {
	return windows.NewLazySystemDLL(ep.Module).NewProc(ep.Name).Find() == nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-getthreaddpiawarenesscontext
// DPI_AWARENESS_CONTEXT GetThreadDpiAwarenessContext();
func (w *Windows) ThreadContext() (awareness.Context, error) {
	h, _, _ := getThreadDpiAwarenessContextProc.Call()
	if h == 0 {
		return awareness.Unspecified, errors.New(`GetThreadDpiAwarenessContext failed`)
	}
	return w.resolve(h), nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-setthreaddpiawarenesscontext
// DPI_AWARENESS_CONTEXT SetThreadDpiAwarenessContext([in] DPI_AWARENESS_CONTEXT dpiContext);
func (w *Windows) SetThreadContext(ctx awareness.Context) (awareness.Context, error) {
	target, ok := handles[ctx]
	if !ok {
		return awareness.Unspecified, errors.Errorf(`no handle for dpi awareness context %s`, ctx)
	}
	prev, _, err := setThreadDpiAwarenessContextProc.Call(target)
	if prev == 0 {
		if err != nil && err != windows.ERROR_SUCCESS {
			return awareness.Unspecified, errors.New(err)
		}
		return awareness.Unspecified, errors.New(`SetThreadDpiAwarenessContext failed`)
	}
	return w.resolve(prev), nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-aredpiawarenesscontextsequal
// BOOL AreDpiAwarenessContextsEqual(DPI_AWARENESS_CONTEXT dpiContextA, DPI_AWARENESS_CONTEXT dpiContextB);
func (*Windows) ContextsEqual(a, b awareness.Context) (bool, error) {
	ha, okA := handles[a]
	hb, okB := handles[b]
	if !okA || !okB {
		return false, nil
	}
	ret, _, _ := areDpiAwarenessContextsEqualProc.Call(ha, hb)
	return ret != 0, nil
}

// resolve maps a context handle returned by the system, which need not be
// one of the pseudo handles, to a Context.
func (*Windows) resolve(h uintptr) awareness.Context {
	if areDpiAwarenessContextsEqualProc.Find() == nil {
		for _, ctx := range awareness.Specified {
			ret, _, _ := areDpiAwarenessContextsEqualProc.Call(h, handles[ctx])
			if ret != 0 {
				return ctx
			}
		}
	}
	if getAwarenessFromDpiAwarenessContextProc.Find() != nil {
		return awareness.Unspecified
	}
	// DPI_AWARENESS GetAwarenessFromDpiAwarenessContext(DPI_AWARENESS_CONTEXT value);
	ret, _, _ := getAwarenessFromDpiAwarenessContextProc.Call(h)
	switch int32(ret) {
	case 0: // DPI_AWARENESS_UNAWARE
		return awareness.Unaware
	case 1: // DPI_AWARENESS_SYSTEM_AWARE
		return awareness.SystemAware
	case 2: // DPI_AWARENESS_PER_MONITOR_AWARE
		return awareness.PerMonitorAware
	default: // DPI_AWARENESS_INVALID
		return awareness.Unspecified
	}
}

// PrimaryDisplayDPI uses the effective DPI of the primary monitor (Windows
// 8.1+) and the DPI of the screen device context before that.
func (*Windows) PrimaryDisplayDPI() (int, error) {
	if getDpiForMonitorProc.Find() == nil {
		hmon := win.MonitorFromWindow(0, win.MONITOR_DEFAULTTOPRIMARY)
		if hmon != 0 {
			var dpiX, dpiY uint32
			// HRESULT GetDpiForMonitor(HMONITOR hmonitor, MONITOR_DPI_TYPE dpiType, UINT *dpiX, UINT *dpiY);
			// MDT_EFFECTIVE_DPI = 0
			hr, _, _ := getDpiForMonitorProc.Call(uintptr(hmon), 0, uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
			if hr == 0 && dpiX > 0 {
				return int(dpiX), nil
			}
		}
	}
	hdc := win.GetDC(0)
	if hdc == 0 {
		return 0, errors.New(`GetDC failed`)
	}
	defer win.ReleaseDC(0, hdc)
	dpi := win.GetDeviceCaps(hdc, win.LOGPIXELSX)
	if dpi <= 0 {
		return 0, errors.New(`GetDeviceCaps(LOGPIXELSX) failed`)
	}
	return int(dpi), nil
}
