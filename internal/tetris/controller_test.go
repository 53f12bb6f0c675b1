package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
)

func TestRotateRevertsWhenBlocked(t *testing.T) {
	b := NewBoard(10, 20)
	// Vertical I flush against the left wall; horizontal would poke through it
	p := Piece{Shape: ShapeI, Rotation: 0, X: -2, Y: 5}
	require.True(t, IsValidPosition(b, p, 0, 0))
	before := p

	assert.False(t, Rotate(b, &p, 1))
	assert.Equal(t, before, p)
	assert.False(t, Rotate(b, &p, -1))
	assert.Equal(t, before, p)
}

func TestRotateFullCycleReturnsToStart(t *testing.T) {
	b := NewBoard(10, 20)
	for _, shape := range Shapes() {
		for _, dir := range []int{1, -1} {
			p := Piece{Shape: shape, X: 3, Y: 5}
			start := p
			for i := 0; i < RotationCount(shape); i++ {
				require.True(t, Rotate(b, &p, dir))
			}
			assert.Equal(t, start, p, "shape %v dir %d", shape, dir)
		}
	}
}

func TestControllerCooldowns(t *testing.T) {
	b := NewBoard(10, 20)
	c := NewController(config.TimingConfig{SideCooldown: 2, DownCooldown: 1, RotateCooldown: 3})
	c.Reset(0)
	p := Piece{Shape: ShapeT, X: 3, Y: 5}

	var sideTicks, rotateTicks []uint64
	for tick := uint64(1); tick <= 7; tick++ {
		applied := c.Apply(b, &p, core.ActionLeftRotateRight.Move(), tick)
		if applied.Side {
			sideTicks = append(sideTicks, tick)
		}
		if applied.Rotate {
			rotateTicks = append(rotateTicks, tick)
		}
	}
	assert.Equal(t, []uint64{2, 4, 6}, sideTicks)
	assert.Equal(t, []uint64{3, 6}, rotateTicks)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, NormalizeRotation(ShapeT, 2), p.Rotation)
}

func TestControllerBlockedMoveIsNotAccepted(t *testing.T) {
	b := NewBoard(10, 20)
	c := NewController(config.TimingConfig{SideCooldown: 2})
	c.Reset(0)
	// Horizontal I touching the left wall
	p := Piece{Shape: ShapeI, Rotation: 1, X: 0, Y: 5}

	applied := c.Apply(b, &p, core.ActionLeft.Move(), 2)
	assert.False(t, applied.Side)
	assert.True(t, c.Ready(ClassSide, 3), "a blocked move must not start the cooldown")

	applied = c.Apply(b, &p, core.ActionRight.Move(), 3)
	assert.True(t, applied.Side)
	assert.Equal(t, 1, p.X)
}

func TestControllerZeroCooldownAcceptsEveryTick(t *testing.T) {
	b := NewBoard(10, 20)
	c := NewController(config.TimingConfig{})
	c.Reset(0)
	p := Piece{Shape: ShapeO, X: 3, Y: 0}

	for tick := uint64(1); tick <= 3; tick++ {
		applied := c.Apply(b, &p, core.ActionRightDown.Move(), tick)
		assert.True(t, applied.Side)
		assert.True(t, applied.Down)
	}
	assert.Equal(t, 6, p.X)
	assert.Equal(t, 3, p.Y)
}

func TestControllerAppliesSideBeforeRotate(t *testing.T) {
	b := NewBoard(10, 20)
	c := NewController(config.TimingConfig{})
	c.Reset(0)
	// Vertical I against the left wall only fits horizontally once it has
	// moved two columns right; each tick shifts before it rotates.
	p := Piece{Shape: ShapeI, Rotation: 0, X: -2, Y: 5}
	require.False(t, IsValidPosition(b, Piece{Shape: ShapeI, Rotation: 1, X: -2, Y: 5}, 0, 0))

	applied := c.Apply(b, &p, core.ActionRightRotateRight.Move(), 1)
	assert.True(t, applied.Side)
	assert.False(t, applied.Rotate, "horizontal I at x=-1 still crosses the wall")

	applied = c.Apply(b, &p, core.ActionRightRotateRight.Move(), 2)
	assert.True(t, applied.Side)
	assert.True(t, applied.Rotate)
	assert.Equal(t, Piece{Shape: ShapeI, Rotation: 1, X: 0, Y: 5}, p)
}

func TestSoftDropNeverLands(t *testing.T) {
	b := NewBoard(10, 20)
	c := NewController(config.TimingConfig{})
	c.Reset(0)
	p := Piece{Shape: ShapeO, X: 3, Y: 16}

	applied := c.Apply(b, &p, core.ActionDown.Move(), 1)
	assert.False(t, applied.Down)
	assert.Equal(t, 16, p.Y)
	assert.Equal(t, 0, b.StackHeight(), "soft drop must not merge")
}

func TestGravityFallsAfterInterval(t *testing.T) {
	g := NewGravity(2.5)
	var due []int
	for i := 1; i <= 6; i++ {
		if g.Tick() {
			due = append(due, i)
			g.Restart()
		}
	}
	assert.Equal(t, []int{3, 6}, due)

	g = NewGravity(0.1)
	assert.True(t, g.Tick(), "intervals below one tick fall every tick")
}
