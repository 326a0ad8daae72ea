// Package transform provides affine maps of 3-space.
package transform

import (
	"errors"
	"fmt"
	"math"

	"diagrams3d/internal/geometry/direction"
	"diagrams3d/internal/geometry/point"
	"diagrams3d/internal/geometry/vector"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s1"
)

var (
	// ErrSingular is returned for matrices that have no inverse.
	ErrSingular = errors.New("singular matrix")
	// ErrNotAffine is returned for matrices whose bottom row is not (0, 0, 0, 1).
	ErrNotAffine = errors.New("matrix is not affine")
)

// T is an invertible affine map. The zero value is not usable; start from
// Identity or one of the constructors.
type T struct {
	m   mgl64.Mat4
	inv mgl64.Mat4
}

// Identity leaves everything in place.
func Identity() T { return T{m: mgl64.Ident4(), inv: mgl64.Ident4()} }

// Translation moves points by d and leaves vectors alone.
func Translation(d vector.Vec3) T {
	return T{
		m:   mgl64.Translate3D(d.X, d.Y, d.Z),
		inv: mgl64.Translate3D(-d.X, -d.Y, -d.Z),
	}
}

// Scaling scales each axis independently. A zero factor yields ErrSingular.
func Scaling(sx, sy, sz float64) (T, error) {
	if sx == 0 || sy == 0 || sz == 0 {
		return T{}, fmt.Errorf("scaling by (%v, %v, %v): %w", sx, sy, sz, ErrSingular)
	}
	return T{
		m:   mgl64.Scale3D(sx, sy, sz),
		inv: mgl64.Scale3D(1/sx, 1/sy, 1/sz),
	}, nil
}

// UniformScaling scales every axis by k.
func UniformScaling(k float64) (T, error) { return Scaling(k, k, k) }

// Rotation turns by a counterclockwise about the axis d, looking down the
// axis towards the origin.
func Rotation(d direction.Direction, a s1.Angle) T {
	axis := toMgl(d.Vector())
	return T{
		m:   mgl64.HomogRotate3D(a.Radians(), axis),
		inv: mgl64.HomogRotate3D(-a.Radians(), axis),
	}
}

// AboutX rotates by a about the X axis.
func AboutX(a s1.Angle) T {
	return T{m: mgl64.HomogRotate3DX(a.Radians()), inv: mgl64.HomogRotate3DX(-a.Radians())}
}

// AboutY rotates by a about the Y axis.
func AboutY(a s1.Angle) T {
	return T{m: mgl64.HomogRotate3DY(a.Radians()), inv: mgl64.HomogRotate3DY(-a.Radians())}
}

// AboutZ rotates by a about the Z axis.
func AboutZ(a s1.Angle) T {
	return T{m: mgl64.HomogRotate3DZ(a.Radians()), inv: mgl64.HomogRotate3DZ(-a.Radians())}
}

// Reflection mirrors space in the plane through the origin with the given
// normal. A reflection is its own inverse.
func Reflection(normal vector.Vec3) (T, error) {
	n, err := normal.Normalize()
	if err != nil {
		return T{}, fmt.Errorf("reflection normal: %w", err)
	}
	// I - 2nnᵀ is symmetric, so row and column order agree.
	m := mgl64.Mat4{
		1 - 2*n.X*n.X, -2 * n.X * n.Y, -2 * n.X * n.Z, 0,
		-2 * n.Y * n.X, 1 - 2*n.Y*n.Y, -2 * n.Y * n.Z, 0,
		-2 * n.Z * n.X, -2 * n.Z * n.Y, 1 - 2*n.Z*n.Z, 0,
		0, 0, 0, 1,
	}
	return T{m: m, inv: m}, nil
}

// FromMatrix wraps a homogeneous affine matrix. The determinant is judged
// relative to the product of the linear part's column lengths, so uniformly
// tiny or huge scalings are accepted.
func FromMatrix(m mgl64.Mat4) (T, error) {
	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 || m.At(3, 3) != 1 {
		return T{}, fmt.Errorf("wrap matrix: %w", ErrNotAffine)
	}
	scale := m.Col(0).Vec3().Len() * m.Col(1).Vec3().Len() * m.Col(2).Vec3().Len()
	if math.Abs(m.Det()) <= 1e-12*scale {
		return T{}, fmt.Errorf("wrap matrix: %w", ErrSingular)
	}
	return T{m: m, inv: m.Inv()}, nil
}

// Matrix returns the homogeneous matrix of t.
func (t T) Matrix() mgl64.Mat4 { return t.m }

// Inverse undoes t.
func (t T) Inverse() T { return T{m: t.inv, inv: t.m} }

// Compose returns the map that applies u first, then t.
func (t T) Compose(u T) T {
	return T{m: t.m.Mul4(u.m), inv: u.inv.Mul4(t.inv)}
}

// Chain applies the maps in order, first to last.
func Chain(ts ...T) T {
	out := Identity()
	for _, t := range ts {
		out = t.Compose(out)
	}
	return out
}

// ApplyVector applies the linear part of t; translations do not move vectors.
func (t T) ApplyVector(v vector.Vec3) vector.Vec3 {
	return fromMgl(t.m.Mul4x1(toMgl(v).Vec4(0)).Vec3())
}

// ApplyPoint applies t to a position.
func (t T) ApplyPoint(p point.P3) point.P3 {
	return point.FromVector(fromMgl(t.m.Mul4x1(toMgl(p.Vector()).Vec4(1)).Vec3()))
}

// ApplyDirection maps d through the linear part of t. Maps that squash d to
// the zero vector yield direction.ErrDegenerateVector.
func (t T) ApplyDirection(d direction.Direction) (direction.Direction, error) {
	return direction.Of(t.ApplyVector(d.Vector()))
}

// ApproxEqual reports whether every entry of the matrices of t and u differs
// by at most eps.
func (t T) ApproxEqual(u T, eps float64) bool {
	return t.m.ApproxFuncEqual(u.m, func(a, b float64) bool { return math.Abs(a-b) <= eps })
}

func toMgl(v vector.Vec3) mgl64.Vec3   { return mgl64.Vec3{v.X, v.Y, v.Z} }
func fromMgl(v mgl64.Vec3) vector.Vec3 { return vector.New(v[0], v[1], v[2]) }
