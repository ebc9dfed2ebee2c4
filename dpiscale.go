// Package dpiscale converts coordinates and images between logical units
// (96 DPI) and the device units of the display, and runs code in a given
// thread DPI-awareness context.
//
//	img, err := dpiscale.RescaleToLogicalDPI(icon)
//
//	s := dpiscale.EnterScope(awareness.SystemAware)
//	defer s.Close()
package dpiscale

import (
	"image"
	"log/slog"
	"sync"

	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/environ"
	"github.com/srlehn/dpiscale/internal/logx"
	"github.com/srlehn/dpiscale/internal/propkeys"
	"github.com/srlehn/dpiscale/platform"
	"github.com/srlehn/dpiscale/resample"
	"github.com/srlehn/dpiscale/resample/rdefault"
	"github.com/srlehn/dpiscale/scale"
	"github.com/srlehn/dpiscale/scope"

	// register the resampling backends
	_ "github.com/srlehn/dpiscale/resample/bild"
	_ "github.com/srlehn/dpiscale/resample/gift"
	_ "github.com/srlehn/dpiscale/resample/imaging"
	_ "github.com/srlehn/dpiscale/resample/nfnt"
	_ "github.com/srlehn/dpiscale/resample/rez"
	_ "github.com/srlehn/dpiscale/resample/xdraw"
)

// Scaler bundles the gateway and scale engine sharing one platform.
type Scaler struct {
	platform  gateway.Platform
	resampler resample.Resampler
	logger    *slog.Logger
	dpi       int
	props     environ.Properties

	gw  *gateway.Gateway
	eng *scale.Engine
}

var _ logx.LoggerProvider = (*Scaler)(nil)

// New applies the options in order. Without options the Scaler has no
// platform facilities and runs at 96 DPI.
func New(opts ...Option) (*Scaler, error) {
	s := &Scaler{
		resampler: &rdefault.Resampler{},
		props:     environ.NewProperties(),
	}
	if err := s.setOptions(opts...); err != nil {
		return nil, err
	}
	s.gw = gateway.New(s.platform, gateway.WithLogger(s.logger))
	engOpts := []scale.Option{
		scale.WithProber(s.gw),
		scale.WithResampler(s.resampler),
		scale.WithLogger(s.logger),
	}
	if s.dpi > 0 {
		engOpts = append(engOpts, scale.WithDPI(s.dpi))
	} else {
		s.props.SetProperty(propkeys.DPISource, `probe`)
	}
	s.eng = scale.New(engOpts...)
	if _, ok := s.props.Property(propkeys.Resampler); !ok {
		s.props.SetProperty(propkeys.Resampler, rdefault.Name)
	}
	return s, nil
}

func (s *Scaler) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.logger
}

func (s *Scaler) Gateway() *gateway.Gateway { return s.gw }
func (s *Scaler) Engine() *scale.Engine     { return s.eng }

// Properties returns a copy of the properties collected while building s.
func (s *Scaler) Properties() environ.Properties { return environ.CloneProperties(s.props) }

// IsThreadPerMonitorV2Aware reports whether the calling thread runs in the
// per monitor v2 context.
func (s *Scaler) IsThreadPerMonitorV2Aware() bool { return s.gw.IsThreadPerMonitorV2Aware() }

// IsScalingRequirementMet reports whether sizes need to be converted to
// device units: the display is not at 96 DPI or the thread follows the DPI
// of each monitor.
func (s *Scaler) IsScalingRequirementMet() bool {
	return s.eng.IsScalingRequired() || s.gw.IsThreadPerMonitorV2Aware()
}

// EnterScope enters target on the calling goroutine's thread.
func (s *Scaler) EnterScope(target awareness.Context) *scope.Scope { return scope.Enter(s.gw, target) }

func (s *Scaler) LogicalToDevice(v int) int { return s.eng.LogicalToDevice(v, 0) }
func (s *Scaler) DeviceToLogical(v int) int { return s.eng.DeviceToLogical(v, 0) }

func (s *Scaler) RescaleToLogicalDPI(img image.Image) (image.Image, error) {
	return s.eng.RescaleToLogicalDPI(img, 0)
}

var (
	// DefaultConfig is applied to the process wide Scaler on first use.
	DefaultConfig = Options{
		OptFunc(func(s *Scaler) error { return SetPlatform(platform.Native()).ApplyOption(s) }),
		OptFunc(func(s *Scaler) error { return SetEnv(environ.OS()).ApplyOption(s) }),
	}
)

var (
	defaultOnce   sync.Once
	defaultScaler *Scaler
)

// Default returns the process wide Scaler built from DefaultConfig. If
// DefaultConfig fails the Scaler has no platform facilities.
func Default() *Scaler {
	defaultOnce.Do(func() {
		s, err := New(DefaultConfig)
		if err != nil {
			s, _ = New()
		}
		defaultScaler = s
	})
	return defaultScaler
}

func Gateway() *gateway.Gateway { return Default().Gateway() }
func Engine() *scale.Engine     { return Default().Engine() }

func IsThreadPerMonitorV2Aware() bool { return Default().IsThreadPerMonitorV2Aware() }
func IsScalingRequirementMet() bool   { return Default().IsScalingRequirementMet() }

// EnterScope ...
func EnterScope(target awareness.Context) *scope.Scope { return Default().EnterScope(target) }

// LogicalToDevice ...
func LogicalToDevice(v int) int { return Default().LogicalToDevice(v) }

// DeviceToLogical ...
func DeviceToLogical(v int) int { return Default().DeviceToLogical(v) }

// RescaleToLogicalDPI scales an image drawn at 96 DPI to the device DPI.
func RescaleToLogicalDPI(img image.Image) (image.Image, error) {
	return Default().RescaleToLogicalDPI(img)
}
