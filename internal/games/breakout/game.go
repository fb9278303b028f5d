package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Minimum terminal size that still shows every block.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Field to the platform's registry.Game interface: it turns
// input frames into commands, keeps the last rendered frame and draws it
// into a character screen.
type Game struct {
	cfg    config.BreakoutConfig
	loaded bool

	field *Field
	frame RenderList // Last frame painted by the field
}

// New creates a Breakout game that loads its configuration on first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Breakout game with a fixed configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Field returns the current field. It is replaced on every restart.
func (g *Game) Field() *Field {
	return g.field
}

// Frame returns the last painted frame.
func (g *Game) Frame() RenderList {
	return g.frame
}

// Reset discards the current field and starts a fresh game with the same
// static configuration.
func (g *Game) Reset(_ core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		g.cfg = cfg
		g.loaded = true
	}

	g.field = NewField(g.cfg)
	g.frame = g.field.Update()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.field == nil || in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}

	if frame := g.field.Update(commandsFor(in)...); frame != nil {
		g.frame = frame
	}
	return core.StepResult{State: g.State()}
}

// commandsFor translates an input frame into field commands. A stop comes
// first so that a direction pressed in the same frame wins.
func commandsFor(in core.InputFrame) []Command {
	var cmds []Command
	if in.Has(core.ActionStop) {
		cmds = append(cmds, CmdMoveStop)
	}
	if in.Has(core.ActionLeft) {
		cmds = append(cmds, CmdMoveLeft)
	}
	if in.Has(core.ActionRight) {
		cmds = append(cmds, CmdMoveRight)
	}
	if in.Has(core.ActionLaunch) {
		cmds = append(cmds, CmdLaunchToggle)
	}
	return cmds
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.field == nil {
		return core.GameState{}
	}
	phase := g.field.Phase()
	return core.GameState{
		Launched: g.field.Launched(),
		Paused:   phase == PhasePaused,
		GameOver: phase == PhaseOver,
	}
}

// Render draws the last frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.field == nil {
		return
	}

	g.renderHUD(dst)

	// Row 0 is the HUD, the rest is the framed field
	box := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(box)
	fw, fh := g.field.Size()
	g.frame.Replay(NewCellSurface(dst, box.Inset(1), fw, fh))

	g.renderOverlay(dst)
}

// renderHUD draws the title, the remaining blocks and the phase hint.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.Title())

	left := fmt.Sprintf("Blocks: %d/%d", g.field.BlocksLeft(), len(g.field.blocks))
	dst.DrawTextCentered(0, left)

	var hint string
	switch g.field.Phase() {
	case PhaseNotLaunched:
		hint = "SPACE to launch"
	case PhasePaused:
		hint = "PAUSED"
	case PhaseMoving:
		hint = "SPACE to pause"
	case PhaseOver:
		hint = "R to restart"
	}
	dst.DrawText(dst.Width()-len(hint)-1, 0, hint)
}

// renderOverlay draws the game over message.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.field.Phase() != PhaseOver {
		return
	}

	title := "GAME OVER"
	if g.field.Outcome() == OutcomeCleared {
		title = "ALL BLOCKS CLEARED"
	}
	g.drawCenteredBox(dst, title, "Press R to restart")
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
