// Package window runs the breakout game in a desktop window with Ebiten.
// Unlike a terminal, the window reports key releases, so the paddle stops
// as soon as an arrow key is let go.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Game adapts a breakout game to ebiten.Game.
type Game struct {
	game    *breakout.Game
	keys    KeyEdges
	logger  *log.Logger
	halted  bool
	wasOver bool
}

// New creates a window front-end for game. A nil logger discards
// lifecycle events.
func New(game *breakout.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{game: game, keys: ebitenKeys{}, logger: logger}
}

// Update implements ebiten.Game. It advances the game by one frame.
func (g *Game) Update() error {
	if g.game.Field() == nil {
		g.game.Reset(core.DefaultConfig())
	}
	return g.step(readInput(g.keys))
}

// step applies one frame of input.
func (g *Game) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if in.Has(core.ActionRestart) {
		g.game.Reset(core.DefaultConfig())
		g.halted = false
		g.wasOver = false
		g.logger.Info("game restarted", "game", g.game.ID())
		return nil
	}

	if g.halted {
		return nil
	}
	if in.Has(core.ActionHalt) {
		g.halted = true
		g.logger.Info("scheduling halted", "game", g.game.ID())
		return nil
	}

	state := g.game.Step(in).State
	if state.GameOver && !g.wasOver {
		g.logger.Info("game over", "game", g.game.ID(), "outcome", g.game.Field().Outcome())
	}
	g.wasOver = state.GameOver
	return nil
}

// Draw implements ebiten.Game. It replays the last frame, so extra draws
// between updates do not advance the simulation.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.game.Field() == nil {
		return
	}
	g.game.Frame().Replay(NewSurface(screen))
	ebitenutil.DebugPrint(screen, g.status())
}

// Layout implements ebiten.Game. The logical screen is the field itself.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.size()
	return int(w), int(h)
}

// status returns the text line shown over the field.
func (g *Game) status() string {
	f := g.game.Field()
	line := fmt.Sprintf("Blocks: %d/%d", f.BlocksLeft(), len(f.Blocks()))

	switch {
	case g.halted:
		return line + "  HALTED - R to restart"
	case f.Phase() == breakout.PhaseNotLaunched:
		return line + "  SPACE to launch"
	case f.Phase() == breakout.PhasePaused:
		return line + "  PAUSED"
	case f.Outcome() == breakout.OutcomeCleared:
		return line + "  ALL BLOCKS CLEARED - R to restart"
	case f.Phase() == breakout.PhaseOver:
		return line + "  GAME OVER - R to restart"
	}
	return line
}

func (g *Game) size() (float64, float64) {
	if f := g.game.Field(); f != nil {
		return f.Size()
	}
	cfg := g.game.Config()
	return cfg.Field.Width, cfg.Field.Height
}

// Run opens the window and blocks until it is closed.
func Run(game *breakout.Game, fps int, logger *log.Logger) error {
	w := New(game, logger)
	game.Reset(core.DefaultConfig())

	width, height := w.size()
	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetWindowTitle(game.Title())
	if fps > 0 {
		ebiten.SetTPS(fps)
	}

	w.logger.Info("game started", "game", game.ID(), "fps", ebiten.TPS())
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
