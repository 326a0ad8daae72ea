// Package coords converts between the Cartesian, cylindrical and spherical
// descriptions of vectors and points.
//
// Angles follow the usual physics convention: Theta is the azimuth about the
// Z axis measured from the X axis, Phi is the polar angle measured from the
// Z axis. Azimuths are computed with a four-quadrant arctangent, so every
// conversion is total; the zero vector maps to R = 0 with zero angles.
package coords

import (
	"math"

	"diagrams3d/internal/geometry/angle"
	"diagrams3d/internal/geometry/point"
	"diagrams3d/internal/geometry/vector"

	"github.com/golang/geo/s1"
)

// Cylindrical holds the radial distance from the Z axis, the azimuth and the
// height of a vector.
type Cylindrical struct {
	R     float64
	Theta s1.Angle
	Z     float64
}

// Spherical holds the distance from the origin, the azimuth and the polar
// angle of a vector.
type Spherical struct {
	R     float64
	Theta s1.Angle
	Phi   s1.Angle
}

// CylindricalOf converts vectors to and from cylindrical coordinates.
var CylindricalOf = Iso[vector.Vec3, Cylindrical]{
	To: func(v vector.Vec3) Cylindrical {
		return Cylindrical{
			R:     math.Hypot(v.X, v.Y),
			Theta: angle.Atan2(v.Y, v.X),
			Z:     v.Z,
		}
	},
	From: func(c Cylindrical) vector.Vec3 { return c.Vector() },
}

// SphericalOf converts vectors to and from spherical coordinates.
var SphericalOf = Iso[vector.Vec3, Spherical]{
	To: func(v vector.Vec3) Spherical {
		c := CylindricalOf.To(v)
		return Spherical{
			R:     v.Norm(),
			Theta: c.Theta,
			Phi:   angle.Atan2(c.R, v.Z),
		}
	},
	From: func(s Spherical) vector.Vec3 { return s.Vector() },
}

// CylindricalToSpherical re-expresses cylindrical coordinates spherically.
var CylindricalToSpherical = Compose(CylindricalOf.Inverse(), SphericalOf)

// Vector returns the Cartesian vector described by c.
func (c Cylindrical) Vector() vector.Vec3 {
	sin, cos := angle.Sincos(c.Theta)
	return vector.New(c.R*cos, c.R*sin, c.Z)
}

// Vector returns the Cartesian vector described by s.
func (s Spherical) Vector() vector.Vec3 {
	sinT, cosT := angle.Sincos(s.Theta)
	sinP, cosP := angle.Sincos(s.Phi)
	return vector.New(s.R*cosT*sinP, s.R*sinT*sinP, s.R*cosP)
}

// Offset views points as displacements from origin.
func Offset(origin point.P3) Iso[point.P3, vector.Vec3] {
	return Iso[point.P3, vector.Vec3]{
		To:   func(p point.P3) vector.Vec3 { return p.Sub(origin) },
		From: func(v vector.Vec3) point.P3 { return origin.Add(v) },
	}
}

// About lifts a vector conversion to points, measured relative to origin.
func About[B any](origin point.P3, iso Iso[vector.Vec3, B]) Iso[point.P3, B] {
	return Compose(Offset(origin), iso)
}

var (
	// PointCylindrical converts points to cylindrical coordinates about point.Origin.
	PointCylindrical = About(point.Origin, CylindricalOf)
	// PointSpherical converts points to spherical coordinates about point.Origin.
	PointSpherical = About(point.Origin, SphericalOf)
)
