// Package vector provides 3D vector operations
package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/twpayne/go-geom"
)

// ErrDegenerateVector is returned when an operation needs a direction and is
// handed the zero vector.
var ErrDegenerateVector = errors.New("degenerate zero vector")

// ErrShortCoord is returned by FromCoord for coordinates with fewer than
// three ordinates.
var ErrShortCoord = errors.New("coordinate has fewer than 3 ordinates")

// New creates a new 3D vector with the given components
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a free vector in Euclidean 3-space.
type Vec3 struct{ X, Y, Z float64 }

// Zero is the zero vector; the Unit vectors lie along the coordinate axes.
var (
	Zero  = Vec3{}
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	UnitZ = Vec3{Z: 1}
)

// Components returns the Cartesian components of v.
func (v Vec3) Components() (x, y, z float64) { return v.X, v.Y, v.Z }

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns the additive inverse of v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Norm2 returns the square of the norm.
func (v Vec3) Norm2() float64 { return v.Dot(v) }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Distance returns the Euclidean distance between the tips of v and o.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Norm() }

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and yields ErrDegenerateVector.
func (v Vec3) Normalize() (Vec3, error) {
	norm := v.Norm()
	if norm == 0 {
		return Vec3{}, ErrDegenerateVector
	}
	return v.Mul(1 / norm), nil
}

// Angle returns the unsigned angle between v and o, in [0, π].
func (v Vec3) Angle(o Vec3) s1.Angle {
	return s1.Angle(math.Atan2(v.Cross(o).Norm(), v.Dot(o))) * s1.Radian
}

// Project returns the component of v parallel to o.
// Projecting onto the zero vector yields ErrDegenerateVector.
func (v Vec3) Project(o Vec3) (Vec3, error) {
	n2 := o.Norm2()
	if n2 == 0 {
		return Vec3{}, ErrDegenerateVector
	}
	return o.Mul(v.Dot(o) / n2), nil
}

// Lerp interpolates linearly from v (t=0) to o (t=1).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 { return v.Add(o.Sub(v).Mul(t)) }

// ApproxEqual reports whether every component of v and o differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

func (v Vec3) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }

// FromR2 lifts a planar vector into 3-space at height z.
func FromR2(p r2.Point, z float64) Vec3 { return Vec3{X: p.X, Y: p.Y, Z: z} }

// XY drops the Z component.
func (v Vec3) XY() r2.Point { return r2.Point{X: v.X, Y: v.Y} }

// FromCoord reads the first three ordinates of a go-geom coordinate.
func FromCoord(c geom.Coord) (Vec3, error) {
	if len(c) < 3 {
		return Vec3{}, fmt.Errorf("vector from %v: %w", c, ErrShortCoord)
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Coord returns v as an XYZ go-geom coordinate.
func (v Vec3) Coord() geom.Coord { return geom.Coord{v.X, v.Y, v.Z} }
