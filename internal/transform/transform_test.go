package transform

import (
	"math"
	"testing"

	"pictor/internal/geom"
)

func TestFourClockwiseRotationsAreIdentity(t *testing.T) {
	s := State{}
	for i := 0; i < 4; i++ {
		s = s.RotateCW()
	}
	if !s.IsIdentity() {
		t.Fatalf("4x rotateCW left state %+v", s)
	}
}

func TestDoubleFlipCancels(t *testing.T) {
	s := State{}
	s = s.FlipHorizontal().FlipHorizontal()
	if !s.IsIdentity() {
		t.Fatalf("2x flipH left state %+v", s)
	}
	s = s.FlipVertical().FlipVertical()
	if !s.IsIdentity() {
		t.Fatalf("2x flipV left state %+v", s)
	}
}

func TestIdentityHoldsUnderInterleaving(t *testing.T) {
	// Interleave flips with rotations; each op repeated to its own
	// period must cancel regardless of ordering.
	s := State{}
	s = s.RotateCW().FlipHorizontal().RotateCW().FlipHorizontal()
	s = s.RotateCW().FlipVertical().RotateCW().FlipVertical()
	if !s.IsIdentity() {
		t.Fatalf("interleaved sequence left state %+v", s)
	}
}

func TestRotateCCWInvertsCW(t *testing.T) {
	s := State{FlipH: true}
	if got := s.RotateCW().RotateCCW(); got != s {
		t.Fatalf("CW then CCW changed state: %+v", got)
	}
}

func TestEffectiveSize(t *testing.T) {
	intrinsic := geom.Size{W: 1600, H: 1200}
	cases := []struct {
		s    State
		want geom.Size
	}{
		{State{}, geom.Size{W: 1600, H: 1200}},
		{State{Rotation: Deg90}, geom.Size{W: 1200, H: 1600}},
		{State{Rotation: Deg180}, geom.Size{W: 1600, H: 1200}},
		{State{Rotation: Deg270, FlipH: true}, geom.Size{W: 1200, H: 1600}},
		{State{FlipH: true, FlipV: true}, geom.Size{W: 1600, H: 1200}},
	}
	for _, c := range cases {
		if got := c.s.EffectiveSize(intrinsic); got != c.want {
			t.Errorf("%+v: got %+v, want %+v", c.s, got, c.want)
		}
	}
}

func near(a, b geom.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixCornerMapping(t *testing.T) {
	size := geom.Size{W: 4, H: 2}

	// Pure CW rotation: top-left corner lands at the top-right of the
	// rotated frame.
	m := State{Rotation: Deg90}.Matrix(size)
	if got := m.Transform(geom.Vec{}); !near(got, geom.Vec{X: 2, Y: 0}) {
		t.Fatalf("rot90 origin: got %+v", got)
	}
	if got := m.Transform(geom.Vec{X: 4, Y: 2}); !near(got, geom.Vec{X: 0, Y: 4}) {
		t.Fatalf("rot90 far corner: got %+v", got)
	}

	// Flip before rotation: with flipH the origin first moves to the
	// right edge, then rotates to the bottom-right of the new frame.
	m = State{Rotation: Deg90, FlipH: true}.Matrix(size)
	if got := m.Transform(geom.Vec{}); !near(got, geom.Vec{X: 2, Y: 4}) {
		t.Fatalf("flipH+rot90 origin: got %+v", got)
	}
}

func TestMatrixIdentity(t *testing.T) {
	m := State{}.Matrix(geom.Size{W: 10, H: 10})
	if m != geom.Identity() {
		t.Fatalf("identity state produced %v", m)
	}
}
