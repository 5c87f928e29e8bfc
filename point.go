package curve

import (
	"fmt"
	"math"
)

// Point is a position in 3D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point) Translate(o Vec3) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N3*pt.Y + aff.N6*pt.Z + aff.N9,
		Y: aff.N1*pt.X + aff.N4*pt.Y + aff.N7*pt.Z + aff.N10,
		Z: aff.N2*pt.X + aff.N5*pt.Y + aff.N8*pt.Z + aff.N11,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points, computing (1−t)·p + t·o per
// component. t = 0 yields p and t = 1 yields o exactly.
func (pt Point) Lerp(o Point, t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*pt.X + t*o.X,
		Y: mt*pt.Y + t*o.Y,
		Z: mt*pt.Z + t*o.Z,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// Scale returns the point with every coordinate multiplied by f, i.e. the
// point scaled about the origin.
func (pt Point) Scale(f float64) Point {
	return Point(Vec3(pt).Mul(f))
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
