package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyEdges reports key transitions for the current tick.
type KeyEdges interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeys reads transitions from ebiten's input state.
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenKeys) JustReleased(k ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(k)
}

// keyBindings maps pressed keys to actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeySpace, core.ActionLaunch},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyS, core.ActionHalt},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// readInput builds the input frame for one tick. Releasing either arrow
// stops the paddle; an arrow pressed in the same tick still wins.
func readInput(keys KeyEdges) core.InputFrame {
	in := core.NewInputFrame()

	if keys.JustReleased(ebiten.KeyArrowLeft) || keys.JustReleased(ebiten.KeyArrowRight) {
		in.Set(core.ActionStop)
	}
	for _, b := range keyBindings {
		if keys.JustPressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}
