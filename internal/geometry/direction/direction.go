// Package direction describes where something points, independent of any
// magnitude.
//
// A Direction is stored as a pair of angles: Theta, the azimuth about the Z
// axis measured from the X axis, and Phi, the elevation out of the XY plane.
// With this convention the zero angles point along the X axis. Phi relates to
// the polar angle of coords.Spherical by Polar(), which is 90° - Phi whenever
// Phi lies in [-90°, 90°].
package direction

import (
	"fmt"

	"diagrams3d/internal/geometry/angle"
	"diagrams3d/internal/geometry/coords"
	"diagrams3d/internal/geometry/vector"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"
)

// ErrDegenerateVector is returned by Of for the zero vector.
var ErrDegenerateVector = vector.ErrDegenerateVector

// Spherical is the canonical angle pair of a direction.
type Spherical struct {
	Theta s1.Angle
	Phi   s1.Angle
}

// Direction is a pointing direction in 3-space.
type Direction struct {
	s Spherical
}

// The coordinate axes.
var (
	X = FromSpherical(Spherical{})
	Y = FromSpherical(Spherical{Theta: 90 * s1.Degree})
	Z = FromSpherical(Spherical{Phi: 90 * s1.Degree})
)

// FromSpherical returns the direction with the given angles.
func FromSpherical(s Spherical) Direction { return Direction{s: s} }

// Spherical returns the angles d was built from.
func (d Direction) Spherical() Spherical { return d.s }

// Theta returns the azimuth of d.
func (d Direction) Theta() s1.Angle { return d.s.Theta }

// Phi returns the elevation of d above the XY plane.
func (d Direction) Phi() s1.Angle { return d.s.Phi }

// Polar returns the angle between d and the Z axis, in [0°, 180°].
func (d Direction) Polar() s1.Angle { return d.Vector().Angle(vector.UnitZ) }

// Of returns the direction v points in. The zero vector has no direction
// and yields ErrDegenerateVector.
func Of(v vector.Vec3) (Direction, error) {
	if v == vector.Zero {
		return Direction{}, fmt.Errorf("direction of %v: %w", v, ErrDegenerateVector)
	}
	c := coords.CylindricalOf.To(v)
	return Direction{s: Spherical{
		Theta: c.Theta,
		Phi:   angle.Atan2(c.Z, c.R),
	}}, nil
}

// Vector returns the unit vector pointing along d.
func (d Direction) Vector() vector.Vec3 {
	sinT, cosT := angle.Sincos(d.s.Theta)
	sinP, cosP := angle.Sincos(d.s.Phi)
	return vector.New(cosT*cosP, sinT*cosP, sinP)
}

// Cylindrical returns the cylindrical coordinates of d's unit vector.
func (d Direction) Cylindrical() coords.Cylindrical {
	return coords.CylindricalOf.To(d.Vector())
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{s: Spherical{
		Theta: (d.s.Theta + 180*s1.Degree).Normalized(),
		Phi:   -d.s.Phi,
	}}
}

// AngleTo returns the unsigned angle between d and o.
func (d Direction) AngleTo(o Direction) s1.Angle { return d.Vector().Angle(o.Vector()) }

// ApproxEqual reports whether d and o point the same way to within eps.
func (d Direction) ApproxEqual(o Direction, eps s1.Angle) bool { return d.AngleTo(o) <= eps }

func (d Direction) String() string {
	return fmt.Sprintf("θ=%.4f° φ=%.4f°", d.s.Theta.Degrees(), d.s.Phi.Degrees())
}

// LonLat views d as a geographic position on the unit sphere: longitude is
// the azimuth and latitude the elevation, both in degrees.
func (d Direction) LonLat() orb.Point {
	return orb.Point{d.s.Theta.Degrees(), d.s.Phi.Degrees()}
}

// FromLonLat is the inverse of LonLat.
func FromLonLat(p orb.Point) Direction {
	return Direction{s: Spherical{
		Theta: s1.Angle(p.Lon()) * s1.Degree,
		Phi:   s1.Angle(p.Lat()) * s1.Degree,
	}}
}
