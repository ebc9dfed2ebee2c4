package propkeys

const (
	EnvPrefix     = `env_`
	GeneralPrefix = `general_`
	// DeviceDPI is the device DPI the root package was configured with.
	DeviceDPI = GeneralPrefix + `deviceDPI`
	// Resampler is the name of the configured resampling backend.
	Resampler = GeneralPrefix + `resampler`
	// DPISource names where the display DPI was read from (option, env, probe).
	DPISource = GeneralPrefix + `dpiSource`
)
