package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name string
		get  func(*Debug) bool
	}{
		{ToggleMovementCollision, func(d *Debug) bool { return d.DrawMovementCollision }},
		{ToggleMovementInputs, func(d *Debug) bool { return d.DrawMovementInputs }},
		{ToggleTerrainCollision, func(d *Debug) bool { return d.DrawTerrainCollision }},
		{ToggleAttackHitShapes, func(d *Debug) bool { return d.DrawAttackHitShapes }},
		{ToggleFastInspector, func(d *Debug) bool { return d.FastInspector }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDebug()
			on, err := d.Toggle(tt.name)
			require.NoError(t, err)
			assert.True(t, on)
			assert.True(t, tt.get(d))
			assert.Equal(t, []string{tt.name}, d.Enabled())

			on, err = d.Toggle(tt.name)
			require.NoError(t, err)
			assert.False(t, on)
			assert.Empty(t, d.Enabled())
		})
	}
}

func TestUnknownToggle(t *testing.T) {
	d := NewDebug()
	_, err := d.Toggle("draw_everything")
	assert.ErrorContains(t, err, "draw_everything")
	assert.Error(t, d.Set("nope", true))

	var nilDebug *Debug
	_, err = nilDebug.Toggle(ToggleFastInspector)
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	d := NewDebug()
	require.NoError(t, d.Set(ToggleTerrainCollision, true))
	require.NoError(t, d.Set(ToggleAttackHitShapes, true))
	assert.Equal(t, []string{ToggleAttackHitShapes, ToggleTerrainCollision}, d.Enabled())
}

func TestLine(t *testing.T) {
	assert.Equal(t, float32(1), NewDebug().Line())
	assert.Equal(t, float32(1), (&Debug{}).Line())
	assert.Equal(t, float32(3), (&Debug{LineThickness: 3}).Line())
}
