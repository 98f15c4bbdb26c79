package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlaygroundDefaults(t *testing.T) {
	cfg, err := LoadPlayground()
	require.NoError(t, err)
	assert.Equal(t, Playground{Level: "sandbox", PrefabDir: "prefabs", Zoom: 40}, cfg)
}

func TestLoadPlaygroundFromEnv(t *testing.T) {
	t.Setenv("CHARACTERCORE_LEVEL", "caves")
	t.Setenv("CHARACTERCORE_DEBUG", "true")
	t.Setenv("CHARACTERCORE_ZOOM", "24")

	cfg, err := LoadPlayground()
	require.NoError(t, err)
	assert.Equal(t, "caves", cfg.Level)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 24.0, cfg.Zoom)
}

func TestLoadPlaygroundErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"bad bool", "CHARACTERCORE_WATCH", "sometimes", "parse env"},
		{"bad zoom", "CHARACTERCORE_ZOOM", "wide", "parse env"},
		{"zero zoom", "CHARACTERCORE_ZOOM", "0", "invalid zoom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadPlayground()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
