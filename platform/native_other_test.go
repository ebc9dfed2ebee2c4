//go:build !windows

package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/gateway"
	"github.com/srlehn/dpiscale/internal/environ"
	"github.com/srlehn/dpiscale/platform"
)

func TestX11WithoutDisplayUsesEnv(t *testing.T) {
	p := platform.NewX11(environ.FromEnviron([]string{`QT_SCALE_FACTOR=1.5`}))
	dpi, err := p.PrimaryDisplayDPI()
	require.NoError(t, err)
	assert.Equal(t, 144, dpi)

	for _, ep := range gateway.EntryPoints {
		assert.False(t, p.HasEntryPoint(ep))
	}
	_, err = platform.NewX11(environ.FromEnviron(nil)).PrimaryDisplayDPI()
	assert.Error(t, err)
}
