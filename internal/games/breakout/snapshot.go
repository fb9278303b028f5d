package breakout

import "math"

// Snapshot contains the complete mutable state of a Field for replay
// and determinism checks. Uses primitive types only for stable hashing.
type Snapshot struct {
	Launched   bool
	Over       bool
	Outcome    int
	PendingDir int

	PaddleX float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallMoving     bool

	// One entry per block in creation order
	Destroyed []bool
}

// Snapshot returns the current field state.
func (f *Field) Snapshot() Snapshot {
	destroyed := make([]bool, len(f.blocks))
	for i := range f.blocks {
		destroyed[i] = f.blocks[i].Destroyed
	}

	return Snapshot{
		Launched:   f.launched,
		Over:       f.over,
		Outcome:    int(f.outcome),
		PendingDir: f.pendingDir,
		PaddleX:    f.paddle.X,
		BallX:      f.ball.Center.X,
		BallY:      f.ball.Center.Y,
		BallVX:     f.ball.Speed.X,
		BallVY:     f.ball.Speed.Y,
		BallMoving: f.ball.IsMoving,
		Destroyed:  destroyed,
	}
}

// ApplySnapshot restores field state from a snapshot taken on a field with
// the same configuration. Block flags are ignored on a length mismatch.
func (f *Field) ApplySnapshot(snap Snapshot) {
	f.launched = snap.Launched
	f.over = snap.Over
	f.outcome = Outcome(snap.Outcome)
	f.pendingDir = sign(snap.PendingDir)
	f.paddle.X = snap.PaddleX
	f.ball.Center.X = snap.BallX
	f.ball.Center.Y = snap.BallY
	f.ball.Speed.X = snap.BallVX
	f.ball.Speed.Y = snap.BallVY
	f.ball.IsMoving = snap.BallMoving

	if len(snap.Destroyed) == len(f.blocks) {
		for i := range f.blocks {
			f.blocks[i].Destroyed = snap.Destroyed[i]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := boolBits(snap.Launched)
	h = h*31 + boolBits(snap.Over)
	h = h*31 + uint64(snap.Outcome)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingDir+1) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + boolBits(snap.BallMoving)

	for _, d := range snap.Destroyed {
		h = h*31 + boolBits(d)
	}
	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
