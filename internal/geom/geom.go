// Package geom provides the 2D primitives shared by the transform and
// viewport packages: sizes, offset vectors, and affine matrices in the
// usual 6-element [a b c d e f] form.
package geom

import (
	"errors"
	"math"
)

// Size is a width/height pair in document or display pixels.
type Size struct {
	W, H float64
}

// IsZero reports whether either dimension is not positive.
// A zero size means "not laid out yet" and disables geometry.
func (s Size) IsZero() bool { return s.W <= 0 || s.H <= 0 }

// Scale returns the size multiplied by a uniform factor.
func (s Size) Scale(f float64) Size { return Size{W: s.W * f, H: s.H * f} }

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size { return Size{W: s.H, H: s.W} }

// Vec is a 2D offset.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns the vector multiplied by a factor.
func (v Vec) Scale(f float64) Vec { return Vec{X: v.X * f, Y: v.Y * f} }

// Matrix is an affine transform [a b c d e f] mapping
// (x, y) -> (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

// Multiply returns m followed by o (o applied second).
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(v Vec) Vec {
	return Vec{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// ErrSingular is returned by Inverse for non-invertible matrices.
var ErrSingular = errors.New("geom: matrix is singular")

// Inverse returns the inverse transform.
func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrSingular
	}
	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

// ScaleMatrix returns a scaling matrix.
func ScaleMatrix(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

// Rotate returns a rotation matrix for the given angle in radians.
func Rotate(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// Clamp limits v to [lo, hi]. lo > hi collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
