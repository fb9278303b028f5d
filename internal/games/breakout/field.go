package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the game state derived from the launch, moving and over flags.
type Phase int

const (
	PhaseNotLaunched Phase = iota // Ball rides the paddle
	PhasePaused                   // Launched, ball frozen
	PhaseMoving                   // Launched, ball in flight
	PhaseOver                     // Terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotLaunched:
		return "ready"
	case PhasePaused:
		return "paused"
	case PhaseMoving:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome tells why a game ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeBallLost         // Ball reached the bottom edge
	OutcomeCleared          // Every block destroyed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBallLost:
		return "ball lost"
	case OutcomeCleared:
		return "cleared"
	default:
		return "none"
	}
}

// Command is a player intent forwarded by the input collaborator.
type Command int

const (
	CmdMoveLeft     Command = iota // Start moving the paddle left
	CmdMoveRight                   // Start moving the paddle right
	CmdMoveStop                    // Stop moving the paddle
	CmdLaunchToggle                // Launch if needed, then pause/resume
)

// Field owns one game: paddle, ball and blocks plus the launch and
// game-over state. Restarting means building a new Field.
type Field struct {
	width, height float64

	launched   bool
	over       bool
	outcome    Outcome
	pendingDir int

	paddle Paddle
	ball   Ball
	blocks []Block
}

// NewField builds a fresh game from the static configuration.
func NewField(cfg config.BreakoutConfig) *Field {
	fw, fh := cfg.Field.Width, cfg.Field.Height

	return &Field{
		width:  fw,
		height: fh,
		paddle: newPaddle(cfg.Bar.Width, cfg.Bar.Height, cfg.Bar.Velocity, fw, fh),
		ball: Ball{
			Center: core.Vec2{
				X: cfg.Bar.Width / 2,
				Y: fh - cfg.Bar.Height - cfg.Ball.Radius,
			},
			Radius:     cfg.Ball.Radius,
			Speed:      core.Vec2{X: cfg.Ball.Speed.X, Y: -cfg.Ball.Speed.Y},
			fieldWidth: fw,
		},
		blocks: newStaircase(cfg.Blocks.Quantity, cfg.Blocks.Width, cfg.Blocks.Height),
	}
}

// Size returns the field dimensions in pixels.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Paddle returns a copy of the paddle.
func (f *Field) Paddle() Paddle { return f.paddle }

// Ball returns a copy of the ball.
func (f *Field) Ball() Ball { return f.ball }

// Blocks returns a copy of the blocks in creation order.
func (f *Field) Blocks() []Block {
	out := make([]Block, len(f.blocks))
	copy(out, f.blocks)
	return out
}

// BlocksLeft returns the number of blocks still standing.
func (f *Field) BlocksLeft() int { return countAlive(f.blocks) }

// Launched reports whether the ball has been launched.
func (f *Field) Launched() bool { return f.launched }

// IsOver reports whether the game has ended.
func (f *Field) IsOver() bool { return f.over }

// Outcome returns why the game ended, or OutcomeNone while it runs.
func (f *Field) Outcome() Outcome { return f.outcome }

// PendingDirection returns the paddle direction applied each frame.
func (f *Field) PendingDirection() int { return f.pendingDir }

// Phase returns the current state machine state.
func (f *Field) Phase() Phase {
	switch {
	case f.over:
		return PhaseOver
	case !f.launched:
		return PhaseNotLaunched
	case f.ball.IsMoving:
		return PhaseMoving
	default:
		return PhasePaused
	}
}

// SetDirection sets the direction applied to the paddle on every frame.
// Values outside -1..1 are reduced to their sign.
func (f *Field) SetDirection(dir int) {
	f.pendingDir = sign(dir)
}

// MoveHitBar moves the paddle one step; before launch the ball follows it.
func (f *Field) MoveHitBar(dir int) {
	if f.over {
		return
	}
	dir = sign(dir)
	f.paddle.Move(dir)
	if !f.launched {
		f.ball.MoveWithHitBar(&f.paddle, dir)
	}
}

// Launch releases the ball from the paddle. It cannot be undone.
func (f *Field) Launch() {
	f.launched = true
}

// Toggle pauses or resumes the ball. It has no visible effect before launch
// and none after the game is over.
func (f *Field) Toggle() {
	if f.over {
		return
	}
	f.ball.IsMoving = !f.ball.IsMoving
}

// Apply executes one player command.
func (f *Field) Apply(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		f.SetDirection(-1)
	case CmdMoveRight:
		f.SetDirection(1)
	case CmdMoveStop:
		f.SetDirection(0)
	case CmdLaunchToggle:
		if !f.launched {
			f.Launch()
		}
		f.Toggle()
	}
}

// CheckGameOver ends the game when the ball's bottom edge reaches the
// bottom of the field or when no block is left. Lost ball wins over
// cleared if both happen on the same frame.
func (f *Field) CheckGameOver() {
	lost := f.ball.Center.Y+f.ball.Radius >= f.height
	cleared := countAlive(f.blocks) == 0
	if !lost && !cleared {
		return
	}

	if !f.over {
		if lost {
			f.outcome = OutcomeBallLost
		} else {
			f.outcome = OutcomeCleared
		}
	}
	f.over = true
	f.ball.IsMoving = false
}

// Draw runs one frame: move the paddle, advance the ball, check for game
// over, then paint paddle, ball and the remaining blocks in that order.
// Once the game is over it does nothing, leaving the last frame in place.
func (f *Field) Draw(s Surface) {
	if f.over {
		return
	}

	s.Clear()
	if f.pendingDir != 0 {
		f.MoveHitBar(f.pendingDir)
	}
	if f.launched {
		f.ball.Move(&f.paddle, f.blocks)
	}
	f.CheckGameOver()

	f.paddle.Draw(s)
	f.ball.Draw(s)
	for i := range f.blocks {
		if !f.blocks[i].Destroyed {
			f.blocks[i].Draw(s, i)
		}
	}
}

// Update applies the commands received since the last frame, runs one frame
// and returns what it painted. It returns nil once the game is over.
func (f *Field) Update(cmds ...Command) RenderList {
	for _, cmd := range cmds {
		f.Apply(cmd)
	}
	rec := NewRecorder()
	f.Draw(rec)
	return rec.Ops()
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
