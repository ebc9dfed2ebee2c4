package environ

import (
	"os"
	"strconv"
	"strings"

	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/propkeys"
)

// FromEnviron stores env entries of the form "key=value" as properties.
func FromEnviron(env []string) Properties {
	pr := NewProperties()
	for _, v := range env {
		if len(v) == 0 {
			continue
		}
		k, val, _ := strings.Cut(v, `=`)
		pr.SetProperty(propkeys.EnvPrefix+k, val)
	}
	return pr
}

// OS returns the environment of the process.
func OS() Properties { return FromEnviron(os.Environ()) }

// LookupInt parses the variable as int. A missing or empty variable is not
// an error.
func LookupInt(e Enver, name string) (int, bool, error) {
	if e == nil {
		return 0, false, nil
	}
	s, ok := e.LookupEnv(name)
	if s = strings.TrimSpace(s); !ok || len(s) == 0 {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, errors.WrapPrefix(err, name, 0)
	}
	return v, true, nil
}

// LookupFloat parses the variable as float64.
func LookupFloat(e Enver, name string) (float64, bool, error) {
	if e == nil {
		return 0, false, nil
	}
	s, ok := e.LookupEnv(name)
	if s = strings.TrimSpace(s); !ok || len(s) == 0 {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, errors.WrapPrefix(err, name, 0)
	}
	return v, true, nil
}
