// Package angle provides the trigonometric projections used by the geometry
// packages on top of s1.Angle.
package angle

import (
	"math"

	"github.com/golang/geo/s1"
)

// Turn is one full revolution.
const Turn s1.Angle = 2 * math.Pi * s1.Radian

// Turns builds an angle from a fraction of a full revolution.
func Turns(t float64) s1.Angle { return s1.Angle(t) * Turn }

// ToTurns returns a as a fraction of a full revolution.
func ToTurns(a s1.Angle) float64 { return float64(a / Turn) }

// Sin returns the sine of a.
func Sin(a s1.Angle) float64 { return math.Sin(a.Radians()) }

// Cos returns the cosine of a.
func Cos(a s1.Angle) float64 { return math.Cos(a.Radians()) }

// Tan returns the tangent of a.
func Tan(a s1.Angle) float64 { return math.Tan(a.Radians()) }

// Sincos returns the sine and cosine of a.
func Sincos(a s1.Angle) (sin, cos float64) { return math.Sincos(a.Radians()) }

// Atan returns the angle whose tangent is ratio, in [-π/2, π/2].
// It cannot tell quadrants apart; use Atan2 when both legs are known.
func Atan(ratio float64) s1.Angle { return s1.Angle(math.Atan(ratio)) * s1.Radian }

// Atan2 returns the angle of the point (x, y) from the positive X axis,
// in (-π, π]. Atan2(0, 0) is 0.
func Atan2(y, x float64) s1.Angle { return s1.Angle(math.Atan2(y, x)) * s1.Radian }

// ApproxEqual reports whether a and b are within eps of each other once
// both are reduced to (-π, π].
func ApproxEqual(a, b, eps s1.Angle) bool {
	d := (a - b).Normalized()
	return d.Abs() <= eps
}
