// Package awareness defines the DPI-awareness contexts a thread can run in
// and the rule deciding which context may be entered from which.
package awareness

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/srlehn/dpiscale/internal/errors"
)

// Context is the DPI-awareness context of a thread.
//
// The specified contexts are ordered by precision:
//
//	Unaware < SystemAware < PerMonitorAware < PerMonitorAwareV2
//
// Unspecified marks a context that could not be determined, e.g. because the
// operating system lacks the facility. It is not part of the ordering.
type Context int8

const (
	Unspecified Context = iota
	Unaware
	SystemAware
	PerMonitorAware
	PerMonitorAwareV2
)

// Specified lists all contexts except Unspecified from most to least precise.
var Specified = [...]Context{PerMonitorAwareV2, PerMonitorAware, SystemAware, Unaware}

func (c Context) String() string {
	switch c {
	case Unspecified:
		return `unspecified`
	case Unaware:
		return `unaware`
	case SystemAware:
		return `system-aware`
	case PerMonitorAware:
		return `per-monitor-aware`
	case PerMonitorAwareV2:
		return `per-monitor-aware-v2`
	default:
		return `invalid`
	}
}

// IsSpecified reports whether c is one of the four real contexts.
func (c Context) IsSpecified() bool { return c >= Unaware && c <= PerMonitorAwareV2 }

// Precision returns the position of c in the ordering, -1 for Unspecified
// and invalid values.
func (c Context) Precision() int {
	if !c.IsSpecified() {
		return -1
	}
	return int(c - Unaware)
}

// CanParent reports whether a thread running in outer may declare itself to
// be running in inner. A thread may only move to an equally or less precise
// context. Unspecified can neither parent nor be parented.
func CanParent(outer, inner Context) bool {
	if !outer.IsSpecified() || !inner.IsSpecified() {
		return false
	}
	return inner.Precision() <= outer.Precision()
}

const win32Prefix = `dpi-awareness-context-`

// Parse accepts the names returned by String in any casing and delimiter
// style ("PerMonitorAwareV2", "per_monitor_aware_v2", ...) as well as the
// Win32 constant names ("DPI_AWARENESS_CONTEXT_SYSTEM_AWARE").
func Parse(s string) (Context, error) {
	name := normalize(s)
	if len(name) == 0 {
		return Unspecified, errors.New(`empty dpi awareness context name`)
	}
	name = strings.TrimPrefix(name, win32Prefix)
	for _, c := range append([]Context{Unspecified}, Specified[:]...) {
		if name == normalize(c.String()) {
			return c, nil
		}
	}
	return Unspecified, errors.Errorf(`unknown dpi awareness context %q`, s)
}

func normalize(s string) string {
	return strcase.ToKebab(strings.TrimSpace(s))
}
