// Package scope runs code in a given DPI-awareness context and restores the
// previous context afterwards.
//
// The DPI-awareness context is a property of the OS thread. A goroutine
// entering an active scope is locked to its thread until the scope is closed,
// and the scope must be closed by the same goroutine.
package scope

import (
	"log/slog"
	"runtime"

	"github.com/srlehn/dpiscale/awareness"
	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/logx"
)

// Gateway is the subset of *gateway.Gateway a scope needs.
type Gateway interface {
	TryGetThreadContext() awareness.Context
	TrySetThreadContext(target awareness.Context) (awareness.Context, error)
	ContextsEqual(a, b awareness.Context) bool
}

// Scope is the record of one scope entry.
type Scope struct {
	gw           Gateway
	target       awareness.Context
	original     awareness.Context
	transitioned bool
}

// Enter switches the current thread to target if that is permitted and
// necessary. The returned scope is never nil, Close it with defer:
//
//	s := scope.Enter(gw, awareness.SystemAware)
//	defer s.Close()
//
// Enter does nothing if target is Unspecified, if the thread already runs in
// target, if the thread's context cannot parent target or if the OS lacks the
// facility.
func Enter(gw Gateway, target awareness.Context) *Scope {
	s := &Scope{gw: gw, target: target}
	if gw == nil || target == awareness.Unspecified {
		return s
	}
	runtime.LockOSThread()
	s.original = gw.TryGetThreadContext()
	switch {
	case gw.ContextsEqual(s.original, target):
		logx.Debug(`dpi awareness scope: already in target context`, s, `target`, target.String())
	case !awareness.CanParent(s.original, target):
		logx.Debug(`dpi awareness scope: context cannot parent target`, s, `current`, s.original.String(), `target`, target.String())
	default:
		prev, err := gw.TrySetThreadContext(target)
		if err != nil {
			logx.IsErr(err, s, slog.LevelWarn)
			break
		}
		if prev.IsSpecified() {
			s.original = prev
		} else if !gw.ContextsEqual(gw.TryGetThreadContext(), target) {
			break
		}
		s.transitioned = true
		return s
	}
	runtime.UnlockOSThread()
	return s
}

// Active reports whether the scope changed the thread's context and has not
// been closed yet.
func (s *Scope) Active() bool { return s != nil && s.transitioned }

// Original returns the context the thread ran in when the scope was entered.
// It is Unspecified when Enter did not query the thread.
func (s *Scope) Original() awareness.Context {
	if s == nil {
		return awareness.Unspecified
	}
	return s.original
}

// Target returns the requested context.
func (s *Scope) Target() awareness.Context {
	if s == nil {
		return awareness.Unspecified
	}
	return s.target
}

// Close restores the context the thread ran in before an active scope.
// Closing an inactive or already closed scope does nothing.
func (s *Scope) Close() error {
	if s == nil || !s.transitioned {
		return nil
	}
	s.transitioned = false
	defer runtime.UnlockOSThread()
	_, err := s.gw.TrySetThreadContext(s.original)
	logx.Debug(`dpi awareness scope: restored`, s, `context`, s.original.String())
	return err
}

func (s *Scope) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	if lp, ok := s.gw.(logx.LoggerProvider); ok && lp != nil {
		return lp.Logger()
	}
	return nil
}

// Do runs fn in target and restores the previous context when fn returns
// or panics.
func Do(gw Gateway, target awareness.Context, fn func() error) (err error) {
	s := Enter(gw, target)
	defer func() {
		if errClose := s.Close(); err == nil {
			err = errClose
		}
	}()
	if fn == nil {
		return nil
	}
	return fn()
}

// InSystemAware creates an object in a system aware context. Objects like
// dialogs which do not scale themselves get their DPI awareness from the
// context they are created in.
func InSystemAware[T any](gw Gateway, fn func() (T, error)) (T, error) {
	var obj T
	if fn == nil {
		return obj, errors.NilParam()
	}
	err := Do(gw, awareness.SystemAware, func() error {
		var err error
		obj, err = fn()
		return err
	})
	return obj, err
}
