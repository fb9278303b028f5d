package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BlockChar  = '█'
)

// BlockColors cycles through block indices.
var BlockColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// CellSurface rasterizes field pixels into a region of a character screen.
// A rectangle covers every cell it touches and always at least one cell.
type CellSurface struct {
	dst    *core.Screen
	area   core.Rect
	sx, sy float64 // Cells per pixel
}

// NewCellSurface maps a fieldW x fieldH pixel field onto area.
func NewCellSurface(dst *core.Screen, area core.Rect, fieldW, fieldH float64) *CellSurface {
	return &CellSurface{
		dst:  dst,
		area: area,
		sx:   float64(area.W) / fieldW,
		sy:   float64(area.H) / fieldH,
	}
}

// Clear implements Surface.
func (c *CellSurface) Clear() {
	c.dst.FillRect(c.area, ' ', core.ColorDefault)
}

// FillRect implements Surface.
func (c *CellSurface) FillRect(e Entity, x, y, w, h float64) {
	x0, x1 := span(x, w, c.sx, c.area.W)
	y0, y1 := span(y, h, c.sy, c.area.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	glyph, color := c.style(e)
	c.dst.FillRect(core.NewRect(c.area.X+x0, c.area.Y+y0, x1-x0, y1-y0), glyph, color)
}

// StrokeCircle implements Surface. At terminal resolution the ball is a
// single glyph at its center.
func (c *CellSurface) StrokeCircle(e Entity, cx, cy, _ float64) {
	if c.area.Empty() {
		return
	}
	col := core.Clamp(int(math.Floor(cx*c.sx)), 0, c.area.W-1)
	row := core.Clamp(int(math.Floor(cy*c.sy)), 0, c.area.H-1)

	glyph, color := c.style(e)
	c.dst.SetColored(c.area.X+col, c.area.Y+row, glyph, color)
}

func (c *CellSurface) style(e Entity) (rune, core.Color) {
	switch e.Kind {
	case EntityPaddle:
		return PaddleChar, core.ColorBrightCyan
	case EntityBall:
		return BallChar, core.ColorBrightWhite
	default:
		return BlockChar, BlockColors[e.Index%len(BlockColors)]
	}
}

// span converts a pixel interval [pos, pos+size] to cells [lo, hi),
// clipped to [0, limit).
func span(pos, size, scale float64, limit int) (lo, hi int) {
	lo = int(math.Floor(pos * scale))
	hi = int(math.Ceil((pos + size) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return core.Clamp(lo, 0, limit), core.Clamp(hi, 0, limit)
}
