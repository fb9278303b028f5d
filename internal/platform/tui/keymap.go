package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Stop    key.Binding
	Launch  key.Binding
	Restart key.Binding
	Halt    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Launch, k.Restart, k.Halt},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "stop paddle"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Halt: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "halt"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a platform action.
// Help toggling is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Halt):
		return core.ActionHalt
	}
	return core.ActionNone
}

// holdWindow is how long a direction stays held without a key repeat.
// It has to outlast the terminal's initial auto-repeat delay.
const holdWindow = 550 * time.Millisecond

// keyHold emulates key release for terminals, which only report presses.
// A held direction expires when no repeat arrives within holdWindow.
type keyHold struct {
	dir    core.Action
	left   int // Ticks until the hold expires
	window int
}

func newKeyHold(tickRate int) keyHold {
	window := int(holdWindow * time.Duration(tickRate) / time.Second)
	return keyHold{window: max(window, 1)}
}

// press starts or refreshes a hold on dir.
func (h *keyHold) press(dir core.Action) {
	h.dir = dir
	h.left = h.window
}

// release drops the current hold.
func (h *keyHold) release() {
	h.dir = core.ActionNone
	h.left = 0
}

// held reports the direction currently held.
func (h *keyHold) held() core.Action {
	return h.dir
}

// tick advances the hold by one frame and reports whether it expired.
func (h *keyHold) tick() bool {
	if h.dir == core.ActionNone {
		return false
	}
	h.left--
	if h.left > 0 {
		return false
	}
	h.release()
	return true
}
