package dpiscale

import (
	"log/slog"
	"strconv"

	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/environ"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/logx"
	"github.com/srlehn/dpiscale/internal/propkeys"
	"github.com/srlehn/dpiscale/resample"
)

type Option interface {
	ApplyOption(s *Scaler) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Scaler) error

func (o OptFunc) ApplyOption(s *Scaler) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Scaler) error { return s.setOptions([]Option(o)...) }

func (s *Scaler) setOptions(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetPlatform sets the operating system surface. A nil platform has no
// facilities.
func SetPlatform(p gateway.Platform) Option {
	return OptFunc(func(s *Scaler) error {
		s.platform = p
		return nil
	})
}

func SetResampler(r resample.Resampler) Option {
	return OptFunc(func(s *Scaler) error {
		if r == nil {
			return errors.NilParam()
		}
		s.resampler = r
		return nil
	})
}

// SetResamplerName selects a registered resampling backend.
func SetResamplerName(name string) Option {
	return OptFunc(func(s *Scaler) error {
		r := resample.Lookup(name)
		if r == nil {
			return errors.Errorf(`unknown resampler %q (available: %v)`, name, resample.Names())
		}
		s.resampler = r
		s.props.SetProperty(propkeys.Resampler, name)
		return nil
	})
}

// SetLogger sets the logger of all components. nil disables logging.
func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(s *Scaler) error {
		s.logger = logger
		return nil
	})
}

// SetDPI fixes the device DPI instead of probing the display.
func SetDPI(dpi int) Option {
	return OptFunc(func(s *Scaler) error {
		if dpi <= 0 {
			return errors.WrapPrefix(consts.ErrInvalidArgument, `dpi `+strconv.Itoa(dpi), 0)
		}
		s.dpi = dpi
		s.props.SetProperty(propkeys.DeviceDPI, strconv.Itoa(dpi))
		s.props.SetProperty(propkeys.DPISource, `option`)
		return nil
	})
}

// SetEnv applies the variables DPISCALE_DPI and DPISCALE_RESAMPLER from e.
// Invalid values are logged and skipped.
func SetEnv(e environ.Enver) Option {
	return OptFunc(func(s *Scaler) error {
		if e == nil {
			return nil
		}
		var vars []string
		for _, name := range []string{consts.EnvDPI, consts.EnvResampler} {
			if v, ok := e.LookupEnv(name); ok {
				vars = append(vars, name+`=`+v)
			}
		}
		s.props.MergeProperties(environ.FromEnviron(vars))
		dpi, ok, err := environ.LookupInt(e, consts.EnvDPI)
		switch {
		case err != nil:
			logx.IsErr(err, s, slog.LevelWarn)
		case ok:
			if !logx.IsErr(SetDPI(dpi).ApplyOption(s), s, slog.LevelWarn, `variable`, consts.EnvDPI) {
				s.props.SetProperty(propkeys.DPISource, `env`)
			}
		}
		if name := e.Getenv(consts.EnvResampler); len(name) > 0 {
			logx.IsErr(SetResamplerName(name).ApplyOption(s), s, slog.LevelWarn, `variable`, consts.EnvResampler)
		}
		return nil
	})
}
