package logx_test

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/internal/logx"
)

func newLogger(lvl slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: lvl})), &buf
}

func TestLevels(t *testing.T) {
	logger, buf := newLogger(slog.LevelInfo)
	prov := logx.Prov(logger)
	logx.Debug(`hidden`, prov)
	logx.Info(`shown`, prov, `dpi`, 144)
	logx.Warn(`warned`, prov)
	out := buf.String()
	assert.NotContains(t, out, `hidden`)
	assert.Contains(t, out, `msg=shown dpi=144`)
	assert.Contains(t, out, `level=WARN msg=warned`)

	// nil providers and loggers are ignored
	logx.Info(`x`, nil)
	logx.Info(`x`, logx.Prov(nil))
}

func TestIsErr(t *testing.T) {
	logger, buf := newLogger(slog.LevelDebug)
	prov := logx.Prov(logger)
	assert.False(t, logx.IsErr(nil, prov, slog.LevelError))
	assert.True(t, logx.IsErr(stderrors.Join(stderrors.New(`one`), stderrors.New(`two`)), prov, slog.LevelError))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `msg=one`)
	assert.Contains(t, lines[1], `msg=two`)
	assert.True(t, logx.IsErr(stderrors.New(`x`), nil, slog.LevelError))
}

func TestTimeIt2(t *testing.T) {
	logger, buf := newLogger(slog.LevelDebug)
	v, err := logx.TimeIt2(func() (int, error) { return 7, nil }, `work`, logx.Prov(logger), `k`, `v`)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Contains(t, buf.String(), `msg=work duration=`)
	assert.Contains(t, buf.String(), `k=v`)

	_, err = logx.TimeIt2[int](nil, ``, nil)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logx.Info(`dropped`, logx.Prov(logx.Discard()))
}
