// Package scale converts between logical units (96 DPI) and device units of
// the primary display and rescales images accordingly.
//
// The device DPI is probed once per Engine. Changes of the display DPI while
// the process runs are not picked up, create a new Engine for that.
package scale

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/logx"
	"github.com/srlehn/dpiscale/resample"
	"github.com/srlehn/dpiscale/resample/rdefault"
)

// DisplayProber reports the horizontal DPI of the primary display.
// *gateway.Gateway implements it.
type DisplayProber interface {
	TryPrimaryDisplayDPI() (int, bool)
}

// Engine is safe for concurrent use.
type Engine struct {
	prober    DisplayProber
	fixedDPI  int
	resampler resample.Resampler
	logger    *slog.Logger

	once  sync.Once
	state atomic.Pointer[State]
}

var _ logx.LoggerProvider = (*Engine)(nil)

type Option func(*Engine)

// WithProber sets where the device DPI comes from.
func WithProber(p DisplayProber) Option { return func(e *Engine) { e.prober = p } }

// WithDPI fixes the device DPI, the display is not probed.
func WithDPI(dpi int) Option { return func(e *Engine) { e.fixedDPI = dpi } }

func WithResampler(r resample.Resampler) Option { return func(e *Engine) { e.resampler = r } }

func WithLogger(logger *slog.Logger) Option { return func(e *Engine) { e.logger = logger } }

// New returns an uninitialized engine. Without a prober or fixed DPI the
// engine runs at 96 DPI.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.resampler == nil {
		e.resampler = &rdefault.Resampler{}
	}
	return e
}

func (e *Engine) Logger() *slog.Logger {
	if e == nil {
		return nil
	}
	return e.logger
}

func (e *Engine) Resampler() resample.Resampler { return e.resampler }

// Initialize probes the display. Only the first call has an effect,
// concurrent callers block until the state is published. A failed probe
// leaves the engine at 96 DPI.
func (e *Engine) Initialize() {
	e.once.Do(func() {
		dpi := consts.LogicalDPI
		switch {
		case e.fixedDPI > 0:
			dpi = e.fixedDPI
		case e.prober != nil:
			if d, ok := e.prober.TryPrimaryDisplayDPI(); ok {
				dpi = d
			} else {
				logx.Info(`display dpi unknown, assuming no scaling`, e)
			}
		}
		s := NewState(dpi)
		e.state.Store(&s)
		logx.Debug(`scale state initialized`, e, `dpi`, s.DeviceDPI, `factor`, s.Factor, `interpolation`, s.Interpolation.String())
	})
}

// State initializes the engine if necessary.
func (e *Engine) State() State {
	if s := e.state.Load(); s != nil {
		return *s
	}
	e.Initialize()
	return *e.state.Load()
}

func (e *Engine) DeviceDPI() int                   { return e.State().DeviceDPI }
func (e *Engine) Factor() float64                  { return e.State().Factor }
func (e *Engine) InterpolationMode() resample.Mode { return e.State().Interpolation }

// IsScalingRequired reports whether the device DPI differs from 96.
func (e *Engine) IsScalingRequired() bool { return e.State().DeviceDPI != consts.LogicalDPI }

// factor returns overrideDPI / 96 or the cached factor if overrideDPI is 0.
func (e *Engine) factor(overrideDPI int) float64 {
	if overrideDPI != 0 {
		return ScaleFactor(overrideDPI)
	}
	return e.Factor()
}
