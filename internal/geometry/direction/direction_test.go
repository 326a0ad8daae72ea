package direction

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"diagrams3d/internal/geometry/coords"
	"diagrams3d/internal/geometry/vector"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"
)

const eps = 1e-12

func TestReferenceDirection(t *testing.T) {
	v := FromSpherical(Spherical{Theta: 0, Phi: 0}).Vector()
	if v != vector.UnitX {
		t.Errorf("FromSpherical(0, 0).Vector() = %v, want %v", v, vector.UnitX)
	}
}

func TestAxes(t *testing.T) {
	tests := []struct {
		d    Direction
		want vector.Vec3
	}{
		{X, vector.UnitX},
		{Y, vector.UnitY},
		{Z, vector.UnitZ},
	}
	for _, tt := range tests {
		if got := tt.d.Vector(); !got.ApproxEqual(tt.want, eps) {
			t.Errorf("%v.Vector() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestOfIsUnitAndParallel(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 500; i++ {
		v := vector.New(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
		d, err := Of(v)
		if err != nil {
			t.Fatalf("Of(%v): %v", v, err)
		}
		u := d.Vector()
		if math.Abs(u.Norm()-1) > eps {
			t.Fatalf("|Of(%v).Vector()| = %v", v, u.Norm())
		}
		want, _ := v.Normalize()
		if !u.ApproxEqual(want, 1e-9) {
			t.Fatalf("Of(%v).Vector() = %v, want %v", v, u, want)
		}
	}
}

func TestOfZeroVector(t *testing.T) {
	_, err := Of(vector.Zero)
	if !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("Of(zero) error = %v, want ErrDegenerateVector", err)
	}
	if !errors.Is(err, vector.ErrDegenerateVector) {
		t.Fatal("direction and vector degenerate errors should match")
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	s := Spherical{Theta: 1234 * s1.Degree, Phi: -0.3 * s1.Radian}
	if got := FromSpherical(s).Spherical(); got != s {
		t.Errorf("Spherical(FromSpherical(%v)) = %v", s, got)
	}
	d := FromSpherical(s)
	if d.Theta() != s.Theta || d.Phi() != s.Phi {
		t.Errorf("accessors = (%v, %v), want (%v, %v)", d.Theta(), d.Phi(), s.Theta, s.Phi)
	}
}

func TestPolarMatchesCoords(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for i := 0; i < 100; i++ {
		v := vector.New(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)
		d, err := Of(v)
		if err != nil {
			t.Fatal(err)
		}
		s := coords.SphericalOf.To(v)
		if math.Abs((d.Polar() - s.Phi).Radians()) > 1e-9 {
			t.Fatalf("Polar(%v) = %v, coords says %v", v, d.Polar(), s.Phi)
		}
		if math.Abs((d.Theta() - s.Theta).Radians()) > 1e-9 {
			t.Fatalf("Theta(%v) = %v, coords says %v", v, d.Theta(), s.Theta)
		}
	}
}

func TestPolarOutsideElevationRange(t *testing.T) {
	tests := []struct {
		phi, want s1.Angle
	}{
		{120 * s1.Degree, 30 * s1.Degree},
		{-120 * s1.Degree, 150 * s1.Degree},
		{270 * s1.Degree, 180 * s1.Degree},
		{-90 * s1.Degree, 180 * s1.Degree},
	}
	for _, tt := range tests {
		d := FromSpherical(Spherical{Theta: 40 * s1.Degree, Phi: tt.phi})
		got := d.Polar()
		if math.Abs((got - tt.want).Radians()) > 1e-9 {
			t.Errorf("Polar() with Phi=%v = %v, want %v", tt.phi, got, tt.want)
		}
		if s := coords.SphericalOf.To(d.Vector()); math.Abs((got - s.Phi).Radians()) > 1e-9 {
			t.Errorf("Polar() with Phi=%v = %v, coords says %v", tt.phi, got, s.Phi)
		}
	}
}

func TestCylindricalView(t *testing.T) {
	d := FromSpherical(Spherical{Theta: 30 * s1.Degree, Phi: 60 * s1.Degree})
	c := d.Cylindrical()
	if math.Abs(c.R-0.5) > eps || math.Abs(c.Z-math.Sqrt(3)/2) > eps {
		t.Errorf("Cylindrical() = %+v", c)
	}
	if math.Abs((c.Theta - 30*s1.Degree).Radians()) > eps {
		t.Errorf("Cylindrical().Theta = %v", c.Theta)
	}
}

func TestReverse(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 100; i++ {
		d := FromSpherical(Spherical{
			Theta: s1.Angle(r.Float64()*2*math.Pi) * s1.Radian,
			Phi:   s1.Angle(r.Float64()*math.Pi-math.Pi/2) * s1.Radian,
		})
		if got, want := d.Reverse().Vector(), d.Vector().Neg(); !got.ApproxEqual(want, 1e-9) {
			t.Fatalf("%v.Reverse() = %v, want %v", d, got, want)
		}
		if a := d.AngleTo(d.Reverse()); math.Abs(a.Radians()-math.Pi) > 1e-6 {
			t.Fatalf("angle to reverse = %v", a)
		}
	}
}

func TestAngleTo(t *testing.T) {
	if a := X.AngleTo(Z); math.Abs(a.Degrees()-90) > 1e-9 {
		t.Errorf("X.AngleTo(Z) = %v", a)
	}
	if !X.ApproxEqual(FromSpherical(Spherical{Theta: 360 * s1.Degree}), 1e-9) {
		t.Error("a full turn of azimuth should point the same way")
	}
}

func TestLonLat(t *testing.T) {
	d := FromSpherical(Spherical{Theta: 45 * s1.Degree, Phi: -10 * s1.Degree})
	p := d.LonLat()
	if math.Abs(p.Lon()-45) > 1e-9 || math.Abs(p.Lat()+10) > 1e-9 {
		t.Errorf("LonLat() = %v", p)
	}
	if back := FromLonLat(p); !back.ApproxEqual(d, 1e-9) {
		t.Errorf("FromLonLat(LonLat()) = %v, want %v", back, d)
	}
	if got := FromLonLat(orb.Point{0, 90}).Vector(); !got.ApproxEqual(vector.UnitZ, eps) {
		t.Errorf("north pole = %v", got)
	}
}
