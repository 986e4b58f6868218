// Package transform tracks the lossless geometric state of a displayed
// document: a quarter-turn rotation plus horizontal/vertical flips.
package transform

import (
	"math"

	"pictor/internal/geom"
)

// Rotation is a clockwise quarter-turn count.
type Rotation int

const (
	Deg0 Rotation = iota
	Deg90
	Deg180
	Deg270
)

// CW returns the rotation advanced 90 degrees clockwise.
func (r Rotation) CW() Rotation { return (r + 1) % 4 }

// CCW returns the rotation advanced 90 degrees counter-clockwise.
func (r Rotation) CCW() Rotation { return (r + 3) % 4 }

// Degrees returns the rotation in degrees (0, 90, 180, 270).
func (r Rotation) Degrees() int { return int(r) * 90 }

// SwapsAxes reports whether the rotation exchanges width and height.
func (r Rotation) SwapsAxes() bool { return r == Deg90 || r == Deg270 }

// State is the accumulated transform of the active document.
//
// Composition order is fixed: flips act in the document's original local
// axes, rotation is applied after. The order matters for combined
// flip+rotate sequences and must not change.
type State struct {
	Rotation Rotation
	FlipH    bool
	FlipV    bool
}

// RotateCW returns the state rotated 90 degrees clockwise.
func (s State) RotateCW() State {
	s.Rotation = s.Rotation.CW()
	return s
}

// RotateCCW returns the state rotated 90 degrees counter-clockwise.
func (s State) RotateCCW() State {
	s.Rotation = s.Rotation.CCW()
	return s
}

// FlipHorizontal mirrors the document along its local vertical axis.
func (s State) FlipHorizontal() State {
	s.FlipH = !s.FlipH
	return s
}

// FlipVertical mirrors the document along its local horizontal axis.
func (s State) FlipVertical() State {
	s.FlipV = !s.FlipV
	return s
}

// Reset returns the identity state.
func (s State) Reset() State { return State{} }

// IsIdentity reports whether the state leaves the document untouched.
func (s State) IsIdentity() bool { return s == State{} }

// EffectiveSize returns the displayed size of a document with the given
// intrinsic size: 90/270 degree rotations swap the axes, flips never
// change size.
func (s State) EffectiveSize(intrinsic geom.Size) geom.Size {
	if s.Rotation.SwapsAxes() {
		return intrinsic.Swapped()
	}
	return intrinsic
}

// Matrix returns the affine map from original document coordinates to
// transformed coordinates, with both frames anchored at their top-left
// corner. Flips are composed before the rotation.
func (s State) Matrix(intrinsic geom.Size) geom.Matrix {
	m := geom.Identity()
	if s.FlipH {
		m = m.Multiply(geom.ScaleMatrix(-1, 1)).Multiply(geom.Translate(intrinsic.W, 0))
	}
	if s.FlipV {
		m = m.Multiply(geom.ScaleMatrix(1, -1)).Multiply(geom.Translate(0, intrinsic.H))
	}
	switch s.Rotation {
	case Deg90:
		m = m.Multiply(geom.Rotate(math.Pi / 2)).Multiply(geom.Translate(intrinsic.H, 0))
	case Deg180:
		m = m.Multiply(geom.Rotate(math.Pi)).Multiply(geom.Translate(intrinsic.W, intrinsic.H))
	case Deg270:
		m = m.Multiply(geom.Rotate(3 * math.Pi / 2)).Multiply(geom.Translate(0, intrinsic.W))
	}
	return m
}
