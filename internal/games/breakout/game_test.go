package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestGame() *Game {
	g := NewWithConfig(config.DefaultBreakoutConfig())
	g.Reset(core.DefaultConfig())
	return g
}

func inputOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameResetDrawsFirstFrame(t *testing.T) {
	g := newTestGame()

	if g.Field() == nil {
		t.Fatal("Reset should create a field")
	}
	frame := g.Frame()
	if len(frame) == 0 || frame[0].Kind != OpClear {
		t.Errorf("first frame should start with a clear, got %+v", frame)
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("State() = %+v, expected zero state", g.State())
	}
}

func TestGameLaunchAndPause(t *testing.T) {
	g := newTestGame()

	res := g.Step(inputOf(core.ActionLaunch))
	if !res.State.Launched || res.State.Paused {
		t.Errorf("after launch: %+v, expected launched and moving", res.State)
	}

	res = g.Step(inputOf(core.ActionLaunch))
	if !res.State.Paused {
		t.Errorf("second SPACE should pause, got %+v", res.State)
	}

	ball := g.Field().Ball().Center
	g.Step(core.NewInputFrame())
	if g.Field().Ball().Center != ball {
		t.Error("paused ball should not move")
	}
}

func TestGamePaddleHoldAndStop(t *testing.T) {
	g := newTestGame()

	g.Step(inputOf(core.ActionRight))
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if x := g.Field().Paddle().X; x != 30 {
		t.Errorf("held right for 3 frames: paddle x = %g, expected 30", x)
	}

	g.Step(inputOf(core.ActionStop))
	g.Step(core.NewInputFrame())
	if x := g.Field().Paddle().X; x != 30 {
		t.Errorf("after stop: paddle x = %g, expected 30", x)
	}

	// A direction in the same frame as a stop wins
	g.Step(inputOf(core.ActionStop, core.ActionLeft))
	if x := g.Field().Paddle().X; x != 20 {
		t.Errorf("stop+left: paddle x = %g, expected 20", x)
	}
}

func TestGameRestartMatchesFreshGame(t *testing.T) {
	g := newTestGame()
	old := g.Field()

	g.Step(inputOf(core.ActionLaunch, core.ActionRight))
	for range 50 {
		g.Step(core.NewInputFrame())
	}

	g.Step(inputOf(core.ActionRestart))

	if g.Field() == old {
		t.Fatal("restart should replace the field")
	}
	got := g.Field().Snapshot()
	want := NewField(g.Config()).Snapshot()
	if got.Hash() != want.Hash() {
		t.Errorf("restarted field differs from a fresh one: %+v vs %+v", got, want)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputs[i].Set(core.ActionLaunch)
		case i%40 == 0:
			inputs[i].Set(core.ActionRight)
		case i%40 == 15:
			inputs[i].Set(core.ActionLeft)
		case i%40 == 30:
			inputs[i].Set(core.ActionStop)
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Field().Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestSnapshotApplyRestoresState(t *testing.T) {
	g := newTestGame()
	g.Step(inputOf(core.ActionLaunch))
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	snap := g.Field().Snapshot()

	f := NewField(g.Config())
	f.ApplySnapshot(snap)
	restored := f.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Error("ApplySnapshot should restore an identical state")
	}

	// Both copies evolve identically
	g.Field().Update()
	f.Update()
	a, b := g.Field().Snapshot(), f.Snapshot()
	if a.Hash() != b.Hash() {
		t.Error("restored field diverged after one frame")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Breakout") {
		t.Errorf("HUD row = %q, expected title", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "SPACE to launch") {
		t.Errorf("HUD row = %q, expected launch hint", screen.Row(0))
	}
	if screen.Get(0, 1) != '┌' || screen.Get(79, 23) != '┘' {
		t.Error("field should be framed by a box")
	}

	// Paddle sits on the last interior row starting at the left border
	bottom := screen.Row(22)
	if !strings.HasPrefix(bottom, "│"+string(PaddleChar)) {
		t.Errorf("bottom row = %q, expected paddle at the left", bottom)
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball glyph missing")
	}
	if screen.Get(1, 2) != BlockChar {
		t.Errorf("first block should be drawn at the top-left, got %q", screen.Get(1, 2))
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame()
	g.Step(inputOf(core.ActionLaunch))
	g.Field().ball.Center = core.Vec2{X: 300, Y: 474}
	g.Field().ball.Speed = core.Vec2{X: 2, Y: 2}
	g.Field().paddle.X = 0

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("ball past the paddle should end the game")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if len(g.Frame()) == 0 {
		t.Error("last frame should be kept after game over")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(20, 8)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "breakout" || g.Title() != "Breakout" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}
