package terrain

import (
	"testing"

	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkClassifiesTiles(t *testing.T) {
	c := NewChunk(0, 0, 10, 10)
	c.Add(NewTile(0, 0, 3, 1))
	c.Add(NewTile(4, 4, 2, 1, Platform()))
	c.Add(NewTile(6, 0, 1, 5, WithoutTop(), WithoutWallRight()))

	assert.Len(t, c.Tiles(), 3)
	assert.Len(t, c.Floors(), 2)
	assert.Len(t, c.Ceilings(), 2)
	assert.Len(t, c.WallsLeft(), 2)
	assert.Len(t, c.WallsRight(), 1)

	right := c.WallsRight()[0]
	assert.Equal(t, 3.0, right.X)
	assert.Equal(t, geom.SideRight, right.Side)
}

func TestChunkCollectRegion(t *testing.T) {
	c := NewChunk(0, 0, 10, 10)
	n := c.Collect([]*Tile{
		NewTile(0, 0, 1, 1),
		NewTile(9.5, 9.5, 1, 1),
		NewTile(10, 0, 1, 1),
		NewTile(-1, 0, 1, 1),
		nil,
	})
	assert.Equal(t, 2, n)
	assert.Len(t, c.Tiles(), 2)
}

func TestChunkDamageablesIn(t *testing.T) {
	c := NewChunk(0, 0, 10, 10)
	near := NewDummy(2, 0, 10)
	far := NewDummy(8, 0, 10)
	c.AddDamageable(near)
	c.AddDamageable(far)
	c.AddDamageable(nil)
	var missing *Dummy
	assert.NotPanics(t, func() { c.AddDamageable(missing) })
	require.Len(t, c.Damageables(), 2)
	assert.Zero(t, missing.Health())

	box := geom.NewHitBox(1.5, 0.5, 1, 0.5)
	hits := c.DamageablesIn(box)
	require.Len(t, hits, 1)
	assert.Same(t, near, hits[0])

	touching := geom.NewHitBox(3, 0, 1, 1)
	assert.Empty(t, c.DamageablesIn(touching))
}

func TestFromLevelMergesCells(t *testing.T) {
	lvl := &levels.Level{
		Width:  4,
		Height: 3,
		Layers: [][]int{{
			0, 0, 0, 0,
			0, 3, 3, 0,
			1, 1, 1, 1,
		}},
		Entities: []levels.Entity{{Type: "dummy", X: 3, Y: 1, Props: map[string]interface{}{"health": 12.0}}},
	}

	c, err := FromLevel(lvl, 2)
	require.NoError(t, err)
	require.Len(t, c.Tiles(), 2)

	platform := c.Tiles()[0]
	assert.True(t, platform.FallThrough)
	assert.Equal(t, []float64{2, 2, 4, 2}, []float64{platform.X, platform.Y, platform.W, platform.H})

	ground := c.Tiles()[1]
	assert.False(t, ground.FallThrough)
	assert.Equal(t, []float64{0, 0, 8, 2}, []float64{ground.X, ground.Y, ground.W, ground.H})

	assert.Len(t, c.Floors(), 2)
	assert.Len(t, c.Ceilings(), 1)
	assert.Len(t, c.WallsLeft(), 1)
	assert.Len(t, c.WallsRight(), 1)

	require.Len(t, c.Damageables(), 1)
	assert.Equal(t, 12, c.Damageables()[0].Health())
	assert.Equal(t, 6.0, c.Damageables()[0].Shape().X())
	assert.Equal(t, 2.0, c.Damageables()[0].Shape().Y())
}

func TestFromLevelErrors(t *testing.T) {
	_, err := FromLevel(nil, 1)
	assert.Error(t, err)
	_, err = FromLevel(&levels.Level{Width: 1, Height: 1, Layers: [][]int{{1}}}, 0)
	assert.Error(t, err)
}

func TestFromEmbeddedSandbox(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("sandbox")
	require.NoError(t, err)

	c, err := FromLevel(lvl, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Floors())
	assert.NotEmpty(t, c.WallsLeft())
	assert.NotEmpty(t, c.WallsRight())
	assert.Len(t, c.Damageables(), 1)
}

func TestSpawnPoint(t *testing.T) {
	lvl := &levels.Level{Width: 4, Height: 3, SpawnX: 1, SpawnY: 1}
	assert.Equal(t, geom.Vec{X: 3, Y: 2}, SpawnPoint(lvl, 2))
	assert.Equal(t, geom.Vec{}, SpawnPoint(nil, 1))
}
