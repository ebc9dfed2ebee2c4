package testutil

import (
	"sync"
	"sync/atomic"

	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/errors"
)

var _ gateway.Platform = (*Platform)(nil)

// Platform is a scriptable gateway.Platform. The zero value has no entry
// points and no display.
type Platform struct {
	mu      sync.Mutex
	entries map[gateway.EntryPoint]bool
	current awareness.Context
	dpi     int
	dpiErr  error

	// PanicOn makes the named operation panic with the value.
	PanicOn map[string]any
	// FailSet makes SetThreadContext return an error.
	FailSet bool
	// HidePrevious makes SetThreadContext switch the context but report
	// the previous one as Unspecified.
	HidePrevious bool

	EntryProbes atomic.Int32
	DPIProbes   atomic.Int32
	Sets        atomic.Int32
	History     []awareness.Context
}

// NewPlatform returns a platform exposing all thread context entry points,
// running in current.
func NewPlatform(current awareness.Context, dpi int) *Platform {
	p := &Platform{current: current, dpi: dpi}
	p.entries = make(map[gateway.EntryPoint]bool)
	for _, ep := range gateway.EntryPoints {
		p.entries[ep] = true
	}
	return p
}

// NewLegacyPlatform returns a platform without any thread context entry points.
func NewLegacyPlatform(dpi int) *Platform { return &Platform{dpi: dpi} }

func (p *Platform) SetEntryPoint(ep gateway.EntryPoint, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.entries == nil {
		p.entries = make(map[gateway.EntryPoint]bool)
	}
	p.entries[ep] = ok
}

func (p *Platform) SetDPIError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dpiErr = err
}

func (p *Platform) Current() awareness.Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Platform) panicOn(op string) {
	if v, ok := p.PanicOn[op]; ok {
		panic(v)
	}
}

func (p *Platform) HasEntryPoint(ep gateway.EntryPoint) bool {
	p.EntryProbes.Add(1)
	p.panicOn(`HasEntryPoint`)
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.entries[ep]
}

func (p *Platform) ThreadContext() (awareness.Context, error) {
	p.panicOn(`ThreadContext`)
	return p.Current(), nil
}

func (p *Platform) SetThreadContext(ctx awareness.Context) (awareness.Context, error) {
	p.panicOn(`SetThreadContext`)
	p.Sets.Add(1)
	if p.FailSet {
		return awareness.Unspecified, errors.New(`SetThreadDpiAwarenessContext failed`)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	prev := p.current
	p.current = ctx
	p.History = append(p.History, ctx)
	if p.HidePrevious {
		return awareness.Unspecified, nil
	}
	return prev, nil
}

func (p *Platform) ContextsEqual(a, b awareness.Context) (bool, error) {
	p.panicOn(`ContextsEqual`)
	return a == b, nil
}

func (p *Platform) PrimaryDisplayDPI() (int, error) {
	p.DPIProbes.Add(1)
	p.panicOn(`PrimaryDisplayDPI`)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dpiErr != nil {
		return 0, p.dpiErr
	}
	return p.dpi, nil
}
