// Package gateway isolates the operating system's per-thread DPI-awareness
// facilities. Missing facilities never surface as errors, the operations
// degrade to awareness.Unspecified, false or "no DPI".
package gateway

import (
	"log/slog"
	"sync"

	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/logx"
)

// Gateway is safe for concurrent use.
type Gateway struct {
	platform Platform
	logger   *slog.Logger
	availMu  sync.RWMutex
	avail    map[EntryPoint]bool
}

var _ logx.LoggerProvider = (*Gateway)(nil)

type Option func(*Gateway)

func WithLogger(logger *slog.Logger) Option { return func(g *Gateway) { g.logger = logger } }

// New returns a gateway over p. A nil Platform has no facilities.
func New(p Platform, opts ...Option) *Gateway {
	g := &Gateway{
		platform: p,
		avail:    make(map[EntryPoint]bool),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

func (g *Gateway) Logger() *slog.Logger {
	if g == nil {
		return nil
	}
	return g.logger
}

// Available reports whether the entry point exists. The platform is asked
// once per distinct entry point, the answer is kept for the lifetime of g.
func (g *Gateway) Available(ep EntryPoint) bool {
	if g == nil || g.platform == nil {
		return false
	}
	g.availMu.RLock()
	ok, known := g.avail[ep]
	g.availMu.RUnlock()
	if known {
		return ok
	}
	g.availMu.Lock()
	defer g.availMu.Unlock()
	if ok, known = g.avail[ep]; known {
		return ok
	}
	err := g.guard(func() error {
		ok = g.platform.HasEntryPoint(ep)
		return nil
	})
	if err != nil {
		logx.Debug(`entry point probe failed`, g, `entry_point`, ep.String(), `error`, err)
		ok = false
	}
	g.avail[ep] = ok
	logx.Debug(`entry point probed`, g, `entry_point`, ep.String(), `available`, ok)
	return ok
}

// TryGetThreadContext returns the current thread's context or Unspecified.
func (g *Gateway) TryGetThreadContext() awareness.Context {
	if !g.Available(EntryGetThreadContext) {
		return awareness.Unspecified
	}
	var ctx awareness.Context
	err := g.guard(func() error {
		var err error
		ctx, err = g.platform.ThreadContext()
		return err
	})
	if err != nil {
		logx.Debug(`thread dpi awareness context query failed`, g, `error`, err)
		return awareness.Unspecified
	}
	return ctx
}

// TrySetThreadContext switches the current thread to target and returns the
// context active before the call, which is the value to restore later.
// Setting Unspecified is a caller error and fails with
// consts.ErrInvalidArgument. Without the OS facility the call is a no-op
// returning Unspecified.
func (g *Gateway) TrySetThreadContext(target awareness.Context) (awareness.Context, error) {
	if !target.IsSpecified() {
		return awareness.Unspecified, errors.WrapPrefix(consts.ErrInvalidArgument, `set thread dpi awareness context to `+target.String(), 0)
	}
	if !g.Available(EntrySetThreadContext) {
		return awareness.Unspecified, nil
	}
	var prev awareness.Context
	err := g.guard(func() error {
		var err error
		prev, err = g.platform.SetThreadContext(target)
		return err
	})
	if err != nil {
		logx.Debug(`thread dpi awareness context transition failed`, g, `target`, target.String(), `error`, err)
		return awareness.Unspecified, nil
	}
	logx.Debug(`thread dpi awareness context set`, g, `target`, target.String(), `previous`, prev.String())
	return prev, nil
}

// ContextsEqual reports whether a and b are the same context. Two
// Unspecified contexts are equal. Without the OS comparison the answer is
// false, equality is never assumed.
func (g *Gateway) ContextsEqual(a, b awareness.Context) bool {
	if a == awareness.Unspecified && b == awareness.Unspecified {
		return true
	}
	if !g.Available(EntryContextsEqual) {
		return false
	}
	var eq bool
	err := g.guard(func() error {
		var err error
		eq, err = g.platform.ContextsEqual(a, b)
		return err
	})
	if err != nil {
		logx.Debug(`dpi awareness context comparison failed`, g, `error`, err)
		return false
	}
	return eq
}

// IsThreadPerMonitorV2Aware reports whether the calling thread runs in the
// per monitor v2 context. It is false without the OS facilities.
func (g *Gateway) IsThreadPerMonitorV2Aware() bool {
	cur := g.TryGetThreadContext()
	return cur.IsSpecified() && g.ContextsEqual(cur, awareness.PerMonitorAwareV2)
}

// TryPrimaryDisplayDPI returns the horizontal DPI of the primary display.
func (g *Gateway) TryPrimaryDisplayDPI() (int, bool) {
	if g == nil || g.platform == nil {
		return 0, false
	}
	var dpi int
	err := g.guard(func() error {
		var err error
		dpi, err = g.platform.PrimaryDisplayDPI()
		return err
	})
	if err != nil {
		logx.Debug(`primary display dpi query failed`, g, `error`, err)
		return 0, false
	}
	if dpi <= 0 {
		logx.Debug(`primary display dpi invalid`, g, `dpi`, dpi)
		return 0, false
	}
	return dpi, true
}

// guard runs a platform call. Returned errors and panics are reported as
// error, except runtime errors which are raised again.
func (g *Gateway) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Recovered(r)
		}
	}()
	return fn()
}
