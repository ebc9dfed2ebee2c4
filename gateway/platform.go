package gateway

import (
	"github.com/srlehn/dpiscale/awareness"
)

// Platform is the operating system surface the gateway wraps.
// Implementations may fail or panic when an entry point is missing, the
// gateway absorbs both.
type Platform interface {
	// HasEntryPoint reports whether the entry point can be resolved.
	// It is called at most once per entry point by a Gateway.
	HasEntryPoint(ep EntryPoint) bool
	ThreadContext() (awareness.Context, error)
	// SetThreadContext switches the current thread to ctx and returns the
	// context that was active before.
	SetThreadContext(ctx awareness.Context) (awareness.Context, error)
	ContextsEqual(a, b awareness.Context) (bool, error)
	// PrimaryDisplayDPI returns the horizontal density of the primary display.
	PrimaryDisplayDPI() (int, error)
}

// EntryPoint names a procedure exported by an operating system module.
type EntryPoint struct {
	Module string
	Name   string
}

func (e EntryPoint) String() string { return e.Module + `!` + e.Name }

const ModuleUser32 = `user32.dll`

var (
	EntryGetThreadContext = EntryPoint{Module: ModuleUser32, Name: `GetThreadDpiAwarenessContext`}
	EntrySetThreadContext = EntryPoint{Module: ModuleUser32, Name: `SetThreadDpiAwarenessContext`}
	EntryContextsEqual    = EntryPoint{Module: ModuleUser32, Name: `AreDpiAwarenessContextsEqual`}
)

// EntryPoints lists the entry points the gateway probes.
var EntryPoints = []EntryPoint{EntryGetThreadContext, EntrySetThreadContext, EntryContextsEqual}
