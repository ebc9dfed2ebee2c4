package resample

import (
	"sync"

	"github.com/srlehn/dpiscale/internal/util"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Resampler)
)

// Register makes a resampler available by name. Backends register
// themselves on import.
func Register(name string, r Resampler) {
	if len(name) == 0 || r == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = r
}

// Lookup returns the registered resampler or nil.
func Lookup(name string) Resampler {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Names returns the sorted names of all registered resamplers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return util.MapsKeysSorted(registry)
}
