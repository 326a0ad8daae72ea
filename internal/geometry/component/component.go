// Package component names the individual coordinates of vectors and points.
//
// Each accessor is a lens through one of the coordinate conversions, so
// setting a component converts, replaces that one field and converts back.
// Setting R keeps the azimuth and height; setting Phi keeps the distance
// from the origin and the azimuth.
package component

import (
	"diagrams3d/internal/geometry/coords"
	"diagrams3d/internal/geometry/point"
	"diagrams3d/internal/geometry/vector"

	"github.com/golang/geo/s1"
)

// X, Y and Z focus on a single Cartesian component.
var (
	X = coords.Lens[vector.Vec3, float64]{
		Get: func(v vector.Vec3) float64 { return v.X },
		Set: func(v vector.Vec3, x float64) vector.Vec3 { v.X = x; return v },
	}
	Y = coords.Lens[vector.Vec3, float64]{
		Get: func(v vector.Vec3) float64 { return v.Y },
		Set: func(v vector.Vec3, y float64) vector.Vec3 { v.Y = y; return v },
	}
	Z = coords.Lens[vector.Vec3, float64]{
		Get: func(v vector.Vec3) float64 { return v.Z },
		Set: func(v vector.Vec3, z float64) vector.Vec3 { v.Z = z; return v },
	}
)

// R is the distance from the Z axis.
var R = coords.WithField(coords.CylindricalOf,
	func(c coords.Cylindrical) float64 { return c.R },
	func(c coords.Cylindrical, r float64) coords.Cylindrical { c.R = r; return c })

// Theta is the azimuth about the Z axis.
var Theta = coords.WithField(coords.CylindricalOf,
	func(c coords.Cylindrical) s1.Angle { return c.Theta },
	func(c coords.Cylindrical, a s1.Angle) coords.Cylindrical { c.Theta = a; return c })

// Phi is the polar angle from the Z axis.
var Phi = coords.WithField(coords.SphericalOf,
	func(s coords.Spherical) s1.Angle { return s.Phi },
	func(s coords.Spherical, a s1.Angle) coords.Spherical { s.Phi = a; return s })

// Rho is the distance from the origin.
var Rho = coords.WithField(coords.SphericalOf,
	func(s coords.Spherical) float64 { return s.R },
	func(s coords.Spherical, r float64) coords.Spherical { s.R = r; return s })

// OnPoints applies a vector accessor to points, measured from point.Origin.
func OnPoints[A any](l coords.Lens[vector.Vec3, A]) coords.Lens[point.P3, A] {
	return Around(point.Origin, l)
}

// Around applies a vector accessor to points, measured from centre.
func Around[A any](centre point.P3, l coords.Lens[vector.Vec3, A]) coords.Lens[point.P3, A] {
	return coords.Through(coords.Offset(centre), l)
}
