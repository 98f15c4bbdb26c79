package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitBoxPosition(t *testing.T) {
	tr := NewTransform(10, 5)

	cases := []struct {
		name      string
		box       *HitBox
		direction int
		wantX     float64
		wantY     float64
	}{
		{"detached", NewHitBox(1, 2, 3, 4), 1, 1, 2},
		{"following_right", NewHitBox(1, 2, 3, 4).Follow(tr), 1, 11, 7},
		{"following_left", NewHitBox(1, 2, 3, 4).Follow(tr), -1, 6, 7},
		{"direction_clamped", NewHitBox(0, 0, 2, 2).Follow(tr), -5, 8, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.box.SetDirection(c.direction)
			assert.Equal(t, c.wantX, c.box.X())
			assert.Equal(t, c.wantY, c.box.Y())
			assert.Equal(t, c.wantX+c.box.W, c.box.XW())
			assert.Equal(t, c.wantY+c.box.H, c.box.YH())
		})
	}
}

func TestHitBoxOverlaps(t *testing.T) {
	a := NewHitBox(0, 0, 2, 2)

	cases := []struct {
		name  string
		other *HitBox
		want  bool
	}{
		{"inside", NewHitBox(0.5, 0.5, 1, 1), true},
		{"partial", NewHitBox(1, 1, 2, 2), true},
		{"touching_edge", NewHitBox(2, 0, 1, 1), false},
		{"apart", NewHitBox(5, 5, 1, 1), false},
		{"containing", NewHitBox(-1, -1, 4, 4), true},
		{"nil", nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, a.Overlaps(c.other))
			if c.other != nil {
				assert.Equal(t, c.want, c.other.Overlaps(a))
			}
		})
	}
}

func TestHitBoxCloneDetaches(t *testing.T) {
	tr := NewTransform(3, 3)
	box := NewHitBox(0, 0, 1, 1).Follow(tr)
	box.SetDirection(-1)

	clone := box.Clone()
	require.NotNil(t, clone)
	assert.Nil(t, clone.Following())
	assert.Equal(t, -1, clone.Direction())

	bb := box.BB()
	assert.Equal(t, 2.0, bb.L)
	assert.Equal(t, 3.0, bb.R)
	assert.True(t, box.Contains(Vec{X: 2.5, Y: 3.5}))
	assert.False(t, box.Contains(Vec{X: 3, Y: 3.5}))
}

func TestWallCheckCollision(t *testing.T) {
	left := NewWall(10, 0, 2, SideLeft)
	right := NewWall(10, 0, 2, SideRight)

	cases := []struct {
		name          string
		wall          *Wall
		prevX, target float64
		y, h          float64
		want          bool
	}{
		{"left_crossed", left, 9.5, 10.4, 0.5, 1, true},
		{"left_short", left, 9, 9.5, 0.5, 1, false},
		{"left_within_margin", left, 9.5, 9.95, 0.5, 1, true},
		{"left_already_past", left, 10.5, 11, 0.5, 1, false},
		{"left_above", left, 9.5, 10.4, 2, 1, false},
		{"left_below", left, 9.5, 10.4, -1, 1, false},
		{"left_spanning", left, 9.5, 10.4, -1, 5, true},
		{"right_crossed", right, 10.5, 9.6, 0.5, 1, true},
		{"right_moving_away", right, 10.5, 11, 0.5, 1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.wall.CheckCollision(c.prevX, c.target, c.y, c.h))
		})
	}
}
