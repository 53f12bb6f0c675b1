package tetris

import (
	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
)

// MoveClass groups primitive moves that share a cooldown.
type MoveClass int

const (
	ClassSide MoveClass = iota
	ClassDown
	ClassRotate
	numMoveClasses
)

// String returns the class name.
func (c MoveClass) String() string {
	switch c {
	case ClassSide:
		return "side"
	case ClassDown:
		return "down"
	case ClassRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Applied records which primitive moves of one action took effect.
type Applied struct {
	Side   bool
	Rotate bool
	Down   bool
}

// Controller applies agent moves to the active piece, rate-limited per
// move class. A request is accepted when at least cooldown ticks have passed
// since the last accepted move of the same class; otherwise it is dropped.
// Only moves that actually change the piece count as accepted.
type Controller struct {
	cooldown [numMoveClasses]uint64
	last     [numMoveClasses]uint64
}

// NewController creates a controller from the timing configuration.
func NewController(cfg config.TimingConfig) Controller {
	var c Controller
	c.cooldown[ClassSide] = uint64(cfg.SideCooldown)
	c.cooldown[ClassDown] = uint64(cfg.DownCooldown)
	c.cooldown[ClassRotate] = uint64(cfg.RotateCooldown)
	return c
}

// Reset marks every class as last used at tick.
func (c *Controller) Reset(tick uint64) {
	for i := range c.last {
		c.last[i] = tick
	}
}

// Ready reports whether a move of class may be accepted at tick.
func (c *Controller) Ready(class MoveClass, tick uint64) bool {
	return tick-c.last[class] >= c.cooldown[class]
}

func (c *Controller) accept(class MoveClass, tick uint64) {
	c.last[class] = tick
}

// Apply performs the primitive moves of m on p in the order
// sideways, rotation, soft drop. A soft drop never lands the piece.
func (c *Controller) Apply(b *Board, p *Piece, m core.Move, tick uint64) Applied {
	var applied Applied

	if m.Side != 0 && c.Ready(ClassSide, tick) && IsValidPosition(b, *p, m.Side, 0) {
		p.X += m.Side
		c.accept(ClassSide, tick)
		applied.Side = true
	}

	if m.Rotate != 0 && c.Ready(ClassRotate, tick) && Rotate(b, p, m.Rotate) {
		c.accept(ClassRotate, tick)
		applied.Rotate = true
	}

	if m.Down && c.Ready(ClassDown, tick) && IsValidPosition(b, *p, 0, 1) {
		p.Y++
		c.accept(ClassDown, tick)
		applied.Down = true
	}

	return applied
}

// Rotate turns p one step (dir +1 or -1) in place. If the rotated piece does
// not fit, the rotation is reverted and Rotate returns false. There are no
// wall kicks.
func Rotate(b *Board, p *Piece, dir int) bool {
	prev := p.Rotation
	p.Rotation = NormalizeRotation(p.Shape, p.Rotation+dir)
	if !IsValidPosition(b, *p, 0, 0) {
		p.Rotation = prev
		return false
	}
	return true
}

// Gravity pulls the active piece down one row every time its timer exceeds
// the fall interval. The timer advances by one per tick.
type Gravity struct {
	timer    int
	interval float64
}

// NewGravity creates a gravity timer with the given fall interval in ticks.
func NewGravity(interval float64) Gravity {
	return Gravity{interval: interval}
}

// Interval returns the current fall interval.
func (g *Gravity) Interval() float64 { return g.interval }

// SetInterval changes the fall interval without touching the timer.
func (g *Gravity) SetInterval(interval float64) { g.interval = interval }

// Restart zeroes the timer.
func (g *Gravity) Restart() { g.timer = 0 }

// Timer returns the ticks counted since the last fall.
func (g *Gravity) Timer() int { return g.timer }

// Tick advances the timer and reports whether the piece is due to fall.
func (g *Gravity) Tick() bool {
	g.timer++
	return float64(g.timer) > g.interval
}
