package consts

import (
	"errors"
)

var (
	ErrNilParam             = errors.New(`nil parameter`)
	ErrNilImage             = errors.New(`nil image`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
	ErrInvalidArgument      = errors.New(`invalid argument`)
	ErrUnsupportedMode      = errors.New(`unsupported interpolation mode`)
	ErrUnalignedSource      = errors.New(`sampling rectangle not pixel aligned`)
	ErrInvalidSize          = errors.New(`invalid size`)
)

const (
	// LogicalDPI is the density at which logical units equal device pixels.
	LogicalDPI = 96

	EnvDPI       = `DPISCALE_DPI`
	EnvResampler = `DPISCALE_RESAMPLER`
)
