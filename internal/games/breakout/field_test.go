package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestField() *Field {
	return NewField(config.DefaultBreakoutConfig())
}

func TestNewFieldLayout(t *testing.T) {
	f := newTestField()

	if f.paddle.X != 0 || f.paddle.Y != 477 || f.paddle.Width != 80 {
		t.Errorf("paddle = %+v, expected x=0 y=477 width=80", f.paddle)
	}
	if f.ball.Center != (core.Vec2{X: 40, Y: 472}) {
		t.Errorf("ball center = %v, expected {40 472}", f.ball.Center)
	}
	if f.ball.Speed != (core.Vec2{X: 2, Y: -2}) {
		t.Errorf("ball speed = %v, expected {2 -2}", f.ball.Speed)
	}
	if f.ball.IsMoving || f.launched || f.over {
		t.Error("new field should be not launched, not moving, not over")
	}

	if len(f.blocks) != 10 {
		t.Fatalf("len(blocks) = %d, expected 10", len(f.blocks))
	}
	for i, b := range f.blocks {
		if b.X != float64(20*i) || b.Y != float64(40*i) || b.Destroyed {
			t.Errorf("block %d = %+v, expected staircase position (%d, %d)", i, b, 20*i, 40*i)
		}
	}
}

func TestPaddleMove(t *testing.T) {
	tests := []struct {
		name     string
		startX   float64
		dir      int
		expected float64
	}{
		{"left wall rejects", 0, -1, 0},
		{"moves right", 0, 1, 10},
		{"moves left", 100, -1, 90},
		{"right wall rejects", 560, 1, 560},
		{"reaches right wall exactly", 550, 1, 560},
		{"partial step is not clamped", 5, -1, 5},
		{"no direction", 100, 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField()
			f.paddle.X = tc.startX
			f.paddle.Move(tc.dir)
			if f.paddle.X != tc.expected {
				t.Errorf("Move(%d) from %g: x = %g, expected %g", tc.dir, tc.startX, f.paddle.X, tc.expected)
			}
		})
	}
}

func TestPaddleCheckBallCollision(t *testing.T) {
	f := newTestField()
	p := &f.paddle

	tests := []struct {
		name     string
		center   core.Vec2
		expected bool
	}{
		{"touching top edge", core.Vec2{X: 40, Y: 472}, true},
		{"above paddle", core.Vec2{X: 40, Y: 460}, false},
		{"on left edge", core.Vec2{X: 0, Y: 475}, false},
		{"on right edge", core.Vec2{X: 80, Y: 475}, false},
		{"beside paddle", core.Vec2{X: 120, Y: 475}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Center: tc.center, Radius: 5}
			if got := p.CheckBallCollision(&b); got != tc.expected {
				t.Errorf("CheckBallCollision(%v) = %v, expected %v", tc.center, got, tc.expected)
			}
		})
	}
}

func TestBallMoveStepsBeforePaddle(t *testing.T) {
	f := newTestField()
	f.Launch()
	f.ball.IsMoving = true
	f.ball.Center = core.Vec2{X: 50, Y: 472}
	f.ball.Speed = core.Vec2{X: 2, Y: -2}

	f.Draw(NewRecorder())

	if f.ball.Center != (core.Vec2{X: 52, Y: 470}) {
		t.Errorf("center = %v, expected {52 470}", f.ball.Center)
	}
	if f.ball.Speed != (core.Vec2{X: 2, Y: -2}) {
		t.Errorf("speed = %v, expected unchanged {2 -2}", f.ball.Speed)
	}
}

func TestBallMoveRequiresMoving(t *testing.T) {
	f := newTestField()
	before := f.ball.Center
	f.ball.Move(&f.paddle, f.blocks)
	if f.ball.Center != before {
		t.Errorf("Move on a resting ball changed center to %v", f.ball.Center)
	}
}

func TestHasBlockCollision(t *testing.T) {
	block := Block{X: 40, Y: 80, Width: 20, Height: 40}

	tests := []struct {
		name          string
		center        core.Vec2
		hit           bool
		expectedSpeed core.Vec2
	}{
		{"top face", core.Vec2{X: 50, Y: 75}, true, core.Vec2{X: 2, Y: 2}},
		{"bottom face", core.Vec2{X: 40, Y: 125}, true, core.Vec2{X: 2, Y: 2}},
		{"left face", core.Vec2{X: 37, Y: 100}, true, core.Vec2{X: -2, Y: -2}},
		{"right face", core.Vec2{X: 65, Y: 80}, true, core.Vec2{X: -2, Y: -2}},
		{"corner miss", core.Vec2{X: 36, Y: 76}, false, core.Vec2{X: 2, Y: -2}},
		{"far away", core.Vec2{X: 300, Y: 300}, false, core.Vec2{X: 2, Y: -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Center: tc.center, Radius: 5, Speed: core.Vec2{X: 2, Y: -2}}
			blk := block

			if got := b.HasBlockCollision(&blk); got != tc.hit {
				t.Errorf("HasBlockCollision() = %v, expected %v", got, tc.hit)
			}
			if blk.Destroyed != tc.hit {
				t.Errorf("Destroyed = %v, expected %v", blk.Destroyed, tc.hit)
			}
			if b.Speed != tc.expectedSpeed {
				t.Errorf("speed = %v, expected %v", b.Speed, tc.expectedSpeed)
			}
		})
	}
}

func TestHasBlockCollisionSkipsDestroyed(t *testing.T) {
	blk := Block{X: 40, Y: 80, Width: 20, Height: 40, Destroyed: true}
	b := Ball{Center: core.Vec2{X: 50, Y: 100}, Radius: 5, Speed: core.Vec2{X: 2, Y: -2}}

	if b.HasBlockCollision(&blk) {
		t.Error("destroyed block should not collide")
	}
	if b.Speed.Y != -2 {
		t.Error("destroyed block should not bounce the ball")
	}
}

func TestSimultaneousBlockHitsCancel(t *testing.T) {
	f := newTestField()
	blocks := []Block{
		{X: 100, Y: 100, Width: 20, Height: 40},
		{X: 100, Y: 100, Width: 20, Height: 40},
	}
	f.ball.Center = core.Vec2{X: 110, Y: 98}
	f.ball.Speed = core.Vec2{X: 2, Y: 2}

	f.ball.CheckCollisions(&f.paddle, blocks)

	if !blocks[0].Destroyed || !blocks[1].Destroyed {
		t.Error("both overlapping blocks should be destroyed")
	}
	if f.ball.Speed.Y != 2 {
		t.Errorf("two vertical hits should flip twice, speed.y = %g", f.ball.Speed.Y)
	}
}

func TestWallCollisions(t *testing.T) {
	tests := []struct {
		name           string
		center, speed  core.Vec2
		expectedCenter core.Vec2
		expectedSpeed  core.Vec2
	}{
		{
			name:   "left wall",
			center: core.Vec2{X: 4, Y: 200}, speed: core.Vec2{X: -2, Y: 2},
			expectedCenter: core.Vec2{X: 5, Y: 200}, expectedSpeed: core.Vec2{X: 2, Y: 2},
		},
		{
			name:   "right wall",
			center: core.Vec2{X: 637, Y: 200}, speed: core.Vec2{X: 2, Y: 2},
			expectedCenter: core.Vec2{X: 635, Y: 200}, expectedSpeed: core.Vec2{X: -2, Y: 2},
		},
		{
			name:   "top wall",
			center: core.Vec2{X: 300, Y: 4}, speed: core.Vec2{X: 2, Y: -2},
			expectedCenter: core.Vec2{X: 300, Y: 5}, expectedSpeed: core.Vec2{X: 2, Y: 2},
		},
		{
			name:   "top-right corner hits both",
			center: core.Vec2{X: 639, Y: 1}, speed: core.Vec2{X: 2, Y: -2},
			expectedCenter: core.Vec2{X: 635, Y: 5}, expectedSpeed: core.Vec2{X: -2, Y: 2},
		},
		{
			name:   "open field",
			center: core.Vec2{X: 300, Y: 300}, speed: core.Vec2{X: 2, Y: 2},
			expectedCenter: core.Vec2{X: 300, Y: 300}, expectedSpeed: core.Vec2{X: 2, Y: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField()
			f.paddle.X = 400 // Out of the way
			f.ball.Center = tc.center
			f.ball.Speed = tc.speed

			f.ball.CheckCollisions(&f.paddle, nil)

			if f.ball.Center != tc.expectedCenter {
				t.Errorf("center = %v, expected %v", f.ball.Center, tc.expectedCenter)
			}
			if f.ball.Speed != tc.expectedSpeed {
				t.Errorf("speed = %v, expected %v", f.ball.Speed, tc.expectedSpeed)
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	f := newTestField()
	f.ball.Center = core.Vec2{X: 40, Y: 473}
	f.ball.Speed = core.Vec2{X: 2, Y: 2}

	f.ball.CheckCollisions(&f.paddle, nil)

	if f.ball.Center != (core.Vec2{X: 40, Y: 472}) {
		t.Errorf("center = %v, expected {40 472}", f.ball.Center)
	}
	if f.ball.Speed != (core.Vec2{X: 2, Y: -2}) {
		t.Errorf("speed = %v, expected {2 -2}", f.ball.Speed)
	}
}

func TestPaddleBounceMissesOnEdge(t *testing.T) {
	f := newTestField()
	f.ball.Center = core.Vec2{X: 80, Y: 474}
	f.ball.Speed = core.Vec2{X: 2, Y: 2}

	f.ball.CheckCollisions(&f.paddle, nil)

	if f.ball.Speed.Y != 2 {
		t.Error("ball exactly on the paddle's right edge should not bounce")
	}
}

func TestPaddleBounceZeroVerticalSpeed(t *testing.T) {
	f := newTestField()
	f.ball.Center = core.Vec2{X: 40, Y: 474}
	f.ball.Speed = core.Vec2{X: 2, Y: 0}

	f.ball.CheckCollisions(&f.paddle, nil)

	if f.ball.Center != (core.Vec2{X: 40, Y: 472}) {
		t.Errorf("center = %v, expected finite {40 472}", f.ball.Center)
	}
}

func TestMoveHitBarBeforeLaunch(t *testing.T) {
	f := newTestField()

	f.MoveHitBar(1)
	if f.paddle.X != 10 || f.ball.Center.X != 50 {
		t.Errorf("paddle x = %g, ball x = %g, expected 10 and 50", f.paddle.X, f.ball.Center.X)
	}

	f.MoveHitBar(-1)
	f.MoveHitBar(-1)
	if f.paddle.X != 0 || f.ball.Center.X != 40 {
		t.Errorf("at left wall: paddle x = %g, ball x = %g, expected 0 and 40", f.paddle.X, f.ball.Center.X)
	}

	f.Launch()
	f.MoveHitBar(1)
	if f.paddle.X != 10 || f.ball.Center.X != 40 {
		t.Errorf("after launch ball should stay: paddle x = %g, ball x = %g", f.paddle.X, f.ball.Center.X)
	}
}

func TestBallRidesPaddleToRightWall(t *testing.T) {
	f := newTestField()
	for range 100 {
		f.MoveHitBar(1)
	}
	if f.paddle.X != 560 {
		t.Errorf("paddle x = %g, expected 560", f.paddle.X)
	}
	if f.ball.Center.X != 600 {
		t.Errorf("ball x = %g, expected 600", f.ball.Center.X)
	}
}

func TestApplyCommands(t *testing.T) {
	f := newTestField()

	f.Apply(CmdMoveRight)
	if f.PendingDirection() != 1 {
		t.Errorf("PendingDirection() = %d, expected 1", f.PendingDirection())
	}
	f.Apply(CmdMoveLeft)
	if f.PendingDirection() != -1 {
		t.Errorf("PendingDirection() = %d, expected -1", f.PendingDirection())
	}
	f.Apply(CmdMoveStop)
	if f.PendingDirection() != 0 {
		t.Errorf("PendingDirection() = %d, expected 0", f.PendingDirection())
	}

	if f.Phase() != PhaseNotLaunched {
		t.Errorf("Phase() = %s, expected ready", f.Phase())
	}
	f.Apply(CmdLaunchToggle)
	if !f.Launched() || f.Phase() != PhaseMoving {
		t.Errorf("first launch/toggle: Phase() = %s, expected playing", f.Phase())
	}
	f.Apply(CmdLaunchToggle)
	if f.Phase() != PhasePaused {
		t.Errorf("second launch/toggle: Phase() = %s, expected paused", f.Phase())
	}
	if !f.Launched() {
		t.Error("launch is one-way")
	}
}

func TestToggleBeforeLaunchHasNoVisibleEffect(t *testing.T) {
	f := newTestField()
	f.Toggle()
	before := f.ball.Center

	f.Draw(NewRecorder())

	if f.ball.Center != before {
		t.Errorf("ball moved before launch: %v", f.ball.Center)
	}
}

func TestDrawAppliesPendingDirection(t *testing.T) {
	f := newTestField()
	f.SetDirection(5)

	f.Draw(NewRecorder())
	f.Draw(NewRecorder())

	if f.paddle.X != 20 || f.ball.Center.X != 60 {
		t.Errorf("paddle x = %g, ball x = %g, expected 20 and 60", f.paddle.X, f.ball.Center.X)
	}
}

func TestGameOverAllBlocksDestroyed(t *testing.T) {
	f := newTestField()
	f.Apply(CmdLaunchToggle)
	f.ball.Center = core.Vec2{X: 320, Y: 200}
	for i := range f.blocks {
		f.blocks[i].Destroyed = true
	}

	f.CheckGameOver()

	if !f.IsOver() || f.ball.IsMoving {
		t.Error("clearing every block should end the game and stop the ball")
	}
	if f.Outcome() != OutcomeCleared {
		t.Errorf("Outcome() = %d, expected OutcomeCleared", f.Outcome())
	}
}

func TestGameOverBallLost(t *testing.T) {
	f := newTestField()
	f.Apply(CmdLaunchToggle)
	f.paddle.X = 400
	f.ball.Center = core.Vec2{X: 100, Y: 475}

	f.CheckGameOver()

	if !f.IsOver() || f.ball.IsMoving {
		t.Error("ball reaching the bottom should end the game")
	}
	if f.Outcome() != OutcomeBallLost {
		t.Errorf("Outcome() = %d, expected OutcomeBallLost", f.Outcome())
	}
	if f.BlocksLeft() != 10 {
		t.Errorf("BlocksLeft() = %d, expected 10", f.BlocksLeft())
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	f := newTestField()
	f.Apply(CmdLaunchToggle)
	f.ball.Center = core.Vec2{X: 100, Y: 476}
	f.CheckGameOver()

	snap := f.Snapshot()
	f.SetDirection(1)
	f.Apply(CmdLaunchToggle)
	f.MoveHitBar(1)
	if ops := f.Update(); ops != nil {
		t.Errorf("Update() after game over = %d ops, expected nil", len(ops))
	}

	after := f.Snapshot()
	after.PendingDir = snap.PendingDir
	if after.Hash() != snap.Hash() {
		t.Error("state changed after game over")
	}
	if f.Phase() != PhaseOver || f.ball.IsMoving {
		t.Error("game over must stay over with the ball stopped")
	}
}

func TestUpdateRenderOrder(t *testing.T) {
	f := newTestField()
	f.blocks[3].Destroyed = true

	ops := f.Update()

	if len(ops) != 1+1+1+9 {
		t.Fatalf("len(ops) = %d, expected 12", len(ops))
	}
	if ops[0].Kind != OpClear {
		t.Errorf("ops[0] = %v, expected clear", ops[0].Kind)
	}
	if ops[1].Kind != OpFillRect || ops[1].Entity.Kind != EntityPaddle {
		t.Errorf("ops[1] = %+v, expected paddle rect", ops[1])
	}
	if ops[2].Kind != OpStrokeCircle || ops[2].Entity.Kind != EntityBall || ops[2].R != 5 {
		t.Errorf("ops[2] = %+v, expected ball circle", ops[2])
	}
	for _, op := range ops[3:] {
		if op.Entity.Kind != EntityBlock || op.Entity.Index == 3 {
			t.Errorf("unexpected block op %+v", op)
		}
	}
}

// TestInvariantsHold plays a long game with a paddle that chases the ball
// and checks the field invariants after every frame.
func TestInvariantsHold(t *testing.T) {
	f := newTestField()
	f.Apply(CmdLaunchToggle)
	w, _ := f.Size()

	destroyed := make([]bool, len(f.blocks))
	wasOver := false

	for frame := range 20000 {
		center := f.paddle.X + f.paddle.Width/2
		switch {
		case f.ball.Center.X < center-5:
			f.SetDirection(-1)
		case f.ball.Center.X > center+5:
			f.SetDirection(1)
		default:
			f.SetDirection(0)
		}
		f.Draw(NewRecorder())

		if wasOver && !f.IsOver() {
			t.Fatalf("frame %d: game over reverted", frame)
		}
		wasOver = f.IsOver()

		b := f.ball
		if b.Center.X < b.Radius || b.Center.X > w-b.Radius {
			t.Fatalf("frame %d: ball x = %g outside walls", frame, b.Center.X)
		}
		if b.Center.Y < b.Radius {
			t.Fatalf("frame %d: ball y = %g above top wall", frame, b.Center.Y)
		}
		if f.paddle.X < 0 || f.paddle.X+f.paddle.Width > w {
			t.Fatalf("frame %d: paddle x = %g outside field", frame, f.paddle.X)
		}
		for i, blk := range f.blocks {
			if destroyed[i] && !blk.Destroyed {
				t.Fatalf("frame %d: block %d was restored", frame, i)
			}
			destroyed[i] = blk.Destroyed
		}
	}
}
