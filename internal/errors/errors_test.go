package errors_test

import (
	stderrors "errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/internal/errors"
)

func TestNilParam(t *testing.T) {
	err := errors.NilParam()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), `nil parameter: `))
	assert.Contains(t, err.Error(), `TestNilParam`)

	assert.NoError(t, errors.NilParam(1, `a`))
	assert.Error(t, errors.NilParam(1, nil))
}

func TestNewKeepsOrigin(t *testing.T) {
	assert.Nil(t, errors.New(nil))
	e := errors.New(`first`)
	assert.Same(t, e, errors.New(e))
	sentinel := stderrors.New(`sentinel`)
	assert.ErrorIs(t, errors.WrapPrefix(sentinel, `prefix`, 0), sentinel)
	assert.Nil(t, errors.Join(nil, nil))
	assert.ErrorIs(t, errors.Join(sentinel, stderrors.New(`other`)), sentinel)
}

func TestRecovered(t *testing.T) {
	assert.Nil(t, errors.Recovered(nil))

	sentinel := stderrors.New(`dll error`)
	assert.ErrorIs(t, errors.Recovered(sentinel), sentinel)
	assert.EqualError(t, errors.Recovered(`message`), `message`)

	assert.Panics(t, func() {
		var re runtime.Error
		func() {
			defer func() { re = recover().(runtime.Error) }()
			var m map[string]int
			m[``] = 1
		}()
		_ = errors.Recovered(re)
	})
}
