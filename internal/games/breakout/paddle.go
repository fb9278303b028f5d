package breakout

// Paddle is the player's hit bar. It slides along the bottom edge of the field.
type Paddle struct {
	X, Y          float64 // Top-left corner; Y is fixed
	Width, Height float64
	Velocity      float64 // Pixels per move step

	fieldWidth float64
}

// newPaddle places the paddle at the bottom-left corner of the field.
func newPaddle(width, height, velocity, fieldWidth, fieldHeight float64) Paddle {
	return Paddle{
		X:          0,
		Y:          fieldHeight - height,
		Width:      width,
		Height:     height,
		Velocity:   velocity,
		fieldWidth: fieldWidth,
	}
}

// Move shifts the paddle one step in dir (-1 left, 1 right).
// A step that would leave the field is dropped entirely, not clamped.
func (p *Paddle) Move(dir int) {
	vx := float64(dir) * p.Velocity
	if p.X+vx < 0 || p.X+vx+p.Width > p.fieldWidth {
		return
	}
	p.X += vx
}

// CheckBallCollision reports whether the ball's bottom edge has reached the
// paddle's top while its center is strictly within the paddle's span.
// Ball.CheckCollisions does its own bounce test; this predicate is only
// informational.
func (p *Paddle) CheckBallCollision(b *Ball) bool {
	return b.Center.Y+b.Radius >= p.Y &&
		b.Center.X > p.X &&
		b.Center.X < p.X+p.Width
}

// Draw paints the paddle.
func (p *Paddle) Draw(s Surface) {
	s.FillRect(Entity{Kind: EntityPaddle}, p.X, p.Y, p.Width, p.Height)
}
