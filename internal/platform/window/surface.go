package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// background is the clear color of the field.
var background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// palette maps core colors to screen colors so both front-ends share
// the same block colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorRed:           {0xd0, 0x30, 0x30, 0xff},
	core.ColorGreen:         {0x30, 0xb0, 0x40, 0xff},
	core.ColorYellow:        {0xe0, 0xc0, 0x20, 0xff},
	core.ColorBlue:          {0x30, 0x60, 0xd0, 0xff},
	core.ColorMagenta:       {0xb0, 0x40, 0xc0, 0xff},
	core.ColorCyan:          {0x30, 0xb0, 0xc0, 0xff},
	core.ColorWhite:         {0xc0, 0xc0, 0xc0, 0xff},
	core.ColorBrightCyan:    {0x60, 0xf0, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	core.ColorBrightRed:     {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightGreen:   {0x50, 0xff, 0x70, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x60, 0xff},
	core.ColorBrightBlue:    {0x60, 0x90, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x70, 0xff, 0xff},
}

// entityColor picks the color of a drawn entity.
func entityColor(e breakout.Entity) color.RGBA {
	var c core.Color
	switch e.Kind {
	case breakout.EntityPaddle:
		c = core.ColorBrightCyan
	case breakout.EntityBall:
		c = core.ColorBrightWhite
	default:
		c = breakout.BlockColors[e.Index%len(breakout.BlockColors)]
	}

	rgba, ok := palette[c]
	if !ok {
		return palette[core.ColorDefault]
	}
	return rgba
}

// Surface draws field pixels onto an ebiten image one to one.
type Surface struct {
	dst *ebiten.Image
}

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// Clear implements breakout.Surface.
func (s *Surface) Clear() {
	s.dst.Fill(background)
}

// FillRect implements breakout.Surface.
func (s *Surface) FillRect(e breakout.Entity, x, y, w, h float64) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), entityColor(e), false)
}

// StrokeCircle implements breakout.Surface.
func (s *Surface) StrokeCircle(e breakout.Entity, cx, cy, r float64) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), 1, entityColor(e), true)
}
