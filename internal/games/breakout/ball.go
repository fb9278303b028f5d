package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball is the moving circle. It owns collision resolution against the
// walls, the paddle and the blocks.
type Ball struct {
	Center   core.Vec2
	Radius   float64
	Speed    core.Vec2 // Displacement per frame
	IsMoving bool

	fieldWidth float64
}

// MoveWithHitBar keeps the ball riding on the paddle before launch.
// The bounds test uses half the paddle width around the ball's center,
// not the ball radius, so the ball stops together with the paddle.
func (b *Ball) MoveWithHitBar(p *Paddle, dir int) {
	vx := float64(dir) * p.Velocity
	half := p.Width / 2
	if b.Center.X+vx < half || b.Center.X+vx+half > b.fieldWidth {
		return
	}
	b.Center.X += vx
}

// Move advances the ball by one frame and resolves collisions.
// There is no delta time: one call is one step of Speed.
func (b *Ball) Move(p *Paddle, blocks []Block) {
	if !b.IsMoving {
		return
	}
	b.Center = b.Center.Add(b.Speed)
	b.CheckCollisions(p, blocks)
}

// HasBlockCollision bounces the ball off a live block and destroys it.
// A hit on the top or bottom face (center x over the block) flips the
// vertical speed; otherwise a hit on a side face flips the horizontal speed.
func (b *Ball) HasBlockCollision(block *Block) bool {
	if block.Destroyed {
		return false
	}

	c := b.Center
	switch {
	case c.X >= block.X && c.X <= block.X+block.Width &&
		c.Y >= block.Y-b.Radius && c.Y <= block.Y+block.Height+b.Radius:
		b.Speed.Y = -b.Speed.Y
	case c.Y >= block.Y && c.Y <= block.Y+block.Height &&
		c.X >= block.X-b.Radius && c.X <= block.X+block.Width+b.Radius:
		b.Speed.X = -b.Speed.X
	default:
		return false
	}

	block.Destroyed = true
	return true
}

// CheckCollisions runs every collision test of a frame in a fixed order:
// all blocks (each may flip an axis, so two hits in one frame cancel out),
// then left, right and top walls, then the paddle. The tests are independent.
func (b *Ball) CheckCollisions(p *Paddle, blocks []Block) {
	for i := range blocks {
		b.HasBlockCollision(&blocks[i])
	}

	if b.Center.X-b.Radius <= 0 {
		b.Center.X = b.Radius
		b.Speed.X = -b.Speed.X
	}
	if b.Center.X+b.Radius >= b.fieldWidth {
		b.Center.X = b.fieldWidth - b.Radius
		b.Speed.X = -b.Speed.X
	}
	if b.Center.Y-b.Radius <= 0 {
		b.Center.Y = b.Radius
		b.Speed.Y = -b.Speed.Y
	}

	if b.Center.Y+b.Radius >= p.Y && b.Center.X > p.X && b.Center.X < p.X+p.Width {
		b.Center.Y = p.Y - b.Radius
		// Back-project x to the contact point with the pre-bounce slope.
		// A zero vertical speed would make this 0/0.
		if b.Speed.Y != 0 {
			b.Center.X -= (b.Radius + b.Center.Y - p.Y) * b.Speed.X / b.Speed.Y
		}
		b.Speed.Y = -b.Speed.Y
	}
}

// Draw paints the ball outline.
func (b *Ball) Draw(s Surface) {
	s.StrokeCircle(Entity{Kind: EntityBall}, b.Center.X, b.Center.Y, b.Radius)
}
