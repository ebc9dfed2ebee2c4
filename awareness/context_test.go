package awareness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dpiscale/awareness"
)

func TestCanParent(t *testing.T) {
	tests := []struct {
		outer, inner awareness.Context
		want         bool
	}{
		{awareness.PerMonitorAwareV2, awareness.PerMonitorAwareV2, true},
		{awareness.PerMonitorAwareV2, awareness.PerMonitorAware, true},
		{awareness.PerMonitorAwareV2, awareness.SystemAware, true},
		{awareness.PerMonitorAwareV2, awareness.Unaware, true},
		{awareness.PerMonitorAware, awareness.PerMonitorAwareV2, false},
		{awareness.PerMonitorAware, awareness.PerMonitorAware, true},
		{awareness.PerMonitorAware, awareness.SystemAware, true},
		{awareness.PerMonitorAware, awareness.Unaware, true},
		{awareness.SystemAware, awareness.PerMonitorAwareV2, false},
		{awareness.SystemAware, awareness.PerMonitorAware, false},
		{awareness.SystemAware, awareness.SystemAware, true},
		{awareness.SystemAware, awareness.Unaware, true},
		{awareness.Unaware, awareness.PerMonitorAwareV2, false},
		{awareness.Unaware, awareness.PerMonitorAware, false},
		{awareness.Unaware, awareness.SystemAware, false},
		{awareness.Unaware, awareness.Unaware, true},
		{awareness.Unspecified, awareness.Unaware, false},
		{awareness.PerMonitorAwareV2, awareness.Unspecified, false},
		{awareness.Unspecified, awareness.Unspecified, false},
	}
	for _, tc := range tests {
		t.Run(tc.outer.String()+`>`+tc.inner.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, awareness.CanParent(tc.outer, tc.inner))
		})
	}
}

func TestCanParentReflexive(t *testing.T) {
	for _, c := range awareness.Specified {
		assert.True(t, awareness.CanParent(c, c), c.String())
	}
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, -1, awareness.Unspecified.Precision())
	assert.Equal(t, 0, awareness.Unaware.Precision())
	assert.Equal(t, 3, awareness.PerMonitorAwareV2.Precision())
	assert.False(t, awareness.Context(42).IsSpecified())
	assert.Equal(t, `invalid`, awareness.Context(42).String())
}

func TestParse(t *testing.T) {
	tests := map[string]awareness.Context{
		`unaware`:              awareness.Unaware,
		`SystemAware`:          awareness.SystemAware,
		`system_aware`:         awareness.SystemAware,
		`per-monitor-aware`:    awareness.PerMonitorAware,
		`PerMonitorAwareV2`:    awareness.PerMonitorAwareV2,
		`per_monitor_aware_v2`: awareness.PerMonitorAwareV2,
		` unspecified `:        awareness.Unspecified,
		`DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2`: awareness.PerMonitorAwareV2,
		`DPI_AWARENESS_CONTEXT_UNAWARE`:              awareness.Unaware,
	}
	for in, want := range tests {
		got, err := awareness.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, c := range append([]awareness.Context{awareness.Unspecified}, awareness.Specified[:]...) {
		got, err := awareness.Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, in := range []string{``, `  `, `monitor`, `per-monitor-aware-v3`} {
		_, err := awareness.Parse(in)
		assert.Error(t, err, in)
	}
}
