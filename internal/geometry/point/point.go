// Package point provides positions in 3-space. A point is stored as its
// offset from the origin; only affine operations are exposed, so two points
// can be subtracted but never added.
package point

import (
	"fmt"

	"diagrams3d/internal/geometry/vector"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// P3 is a position in Euclidean 3-space.
type P3 struct {
	v vector.Vec3
}

// Origin is the point whose offset is the zero vector.
var Origin = P3{}

// New creates the point at (x, y, z).
func New(x, y, z float64) P3 { return P3{v: vector.New(x, y, z)} }

// FromVector returns Origin translated by v.
func FromVector(v vector.Vec3) P3 { return P3{v: v} }

// Vector returns the offset of p from Origin.
func (p P3) Vector() vector.Vec3 { return p.v }

// Components returns the Cartesian coordinates of p.
func (p P3) Components() (x, y, z float64) { return p.v.Components() }

// Add translates p by d.
func (p P3) Add(d vector.Vec3) P3 { return P3{v: p.v.Add(d)} }

// SubVec translates p by -d.
func (p P3) SubVec(d vector.Vec3) P3 { return P3{v: p.v.Sub(d)} }

// Sub returns the displacement from o to p.
func (p P3) Sub(o P3) vector.Vec3 { return p.v.Sub(o.v) }

// Distance returns the Euclidean distance between p and o.
func (p P3) Distance(o P3) float64 { return p.Sub(o).Norm() }

// ApproxEqual reports whether p and o agree within eps in every coordinate.
func (p P3) ApproxEqual(o P3, eps float64) bool { return p.v.ApproxEqual(o.v, eps) }

func (p P3) String() string { return fmt.Sprintf("P%v", p.v) }

// Lerp interpolates from a (t=0) to b (t=1).
func Lerp(a, b P3, t float64) P3 { return a.Add(b.Sub(a).Mul(t)) }

// Centroid returns the mean position of ps, or Origin when ps is empty.
func Centroid(ps ...P3) P3 {
	if len(ps) == 0 {
		return Origin
	}
	base := ps[0]
	var sum vector.Vec3
	for _, p := range ps[1:] {
		sum = sum.Add(p.Sub(base))
	}
	return base.Add(sum.Mul(1 / float64(len(ps))))
}

// FromR2 lifts a planar point into 3-space at height z.
func FromR2(p r2.Point, z float64) P3 { return P3{v: vector.FromR2(p, z)} }

// XY projects p onto the XY plane.
func (p P3) XY() r2.Point { return p.v.XY() }

// FromCoord reads an XYZ go-geom coordinate.
func FromCoord(c geom.Coord) (P3, error) {
	v, err := vector.FromCoord(c)
	if err != nil {
		return P3{}, err
	}
	return P3{v: v}, nil
}

// Coord returns p as an XYZ go-geom coordinate.
func (p P3) Coord() geom.Coord { return p.v.Coord() }
