package testutil

import (
	"image"
	"image/draw"
	"sync"

	"github.com/srlehn/dpiscale/resample"
	"github.com/srlehn/dpiscale/resample/xdraw"
)

// Call is one recorded Resample call.
type Call struct {
	DstRect image.Rectangle
	SrcRect resample.Rect64
	Mode    resample.Mode
}

var _ resample.Resampler = (*Resampler)(nil)

// Resampler records its calls and forwards them to x/image.
type Resampler struct {
	mu    sync.Mutex
	calls []Call
	Err   error
}

func (r *Resampler) Resample(dst draw.Image, dr image.Rectangle, src image.Image, sr resample.Rect64, mode resample.Mode) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{DstRect: dr, SrcRect: sr, Mode: mode})
	err := r.Err
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return xdraw.New().Resample(dst, dr, src, sr, mode)
}

func (r *Resampler) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Prober is a scale.DisplayProber counting its probes.
type Prober struct {
	DPI    int
	OK     bool
	mu     sync.Mutex
	probes int
}

func (p *Prober) TryPrimaryDisplayDPI() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes++
	return p.DPI, p.OK
}

func (p *Prober) Probes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.probes
}
