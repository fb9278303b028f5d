package breakout

// EntityKind identifies what a draw call paints, so renderers can pick
// glyphs and colors without re-deriving it from geometry.
type EntityKind int

const (
	EntityPaddle EntityKind = iota
	EntityBall
	EntityBlock
)

// Entity names the painted object. Index is the block's position in
// creation order and zero for the paddle and the ball.
type Entity struct {
	Kind  EntityKind
	Index int
}

// Surface is the 2D drawing target of a frame. Coordinates are field
// pixels with the origin at the top-left corner.
type Surface interface {
	// Clear wipes the whole surface. Called once at the start of a frame.
	Clear()
	// FillRect paints a filled axis-aligned rectangle.
	FillRect(e Entity, x, y, w, h float64)
	// StrokeCircle paints the outline of a circle.
	StrokeCircle(e Entity, cx, cy, r float64)
}

// OpKind is the type of a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpStrokeCircle
)

// DrawOp is one recorded draw call. Rectangles use X, Y, W, H;
// circles use X, Y as the center and R as the radius.
type DrawOp struct {
	Kind       OpKind
	Entity     Entity
	X, Y, W, H float64
	R          float64
}

// RenderList is the ordered output of one frame.
type RenderList []DrawOp

// Replay issues the recorded calls against another surface.
func (l RenderList) Replay(dst Surface) {
	for _, op := range l {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(op.Entity, op.X, op.Y, op.W, op.H)
		case OpStrokeCircle:
			dst.StrokeCircle(op.Entity, op.X, op.Y, op.R)
		}
	}
}

// Recorder is a Surface that keeps the draw calls of the current frame.
// Clear drops everything recorded before it.
type Recorder struct {
	ops RenderList
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear implements Surface.
func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], DrawOp{Kind: OpClear})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(e Entity, x, y, w, h float64) {
	r.ops = append(r.ops, DrawOp{Kind: OpFillRect, Entity: e, X: x, Y: y, W: w, H: h})
}

// StrokeCircle implements Surface.
func (r *Recorder) StrokeCircle(e Entity, cx, cy, radius float64) {
	r.ops = append(r.ops, DrawOp{Kind: OpStrokeCircle, Entity: e, X: cx, Y: cy, R: radius})
}

// Ops returns a copy of the recorded frame.
func (r *Recorder) Ops() RenderList {
	if len(r.ops) == 0 {
		return nil
	}
	out := make(RenderList, len(r.ops))
	copy(out, r.ops)
	return out
}
