package curve

import (
	"math"
)

var _ Interpolation = QuadBez{}
var _ Arclener = QuadBez{}
var _ Bounded = QuadBez{}

// QuadBez is a quadratic Bézier curve. It evaluates in closed form and is
// equivalent to a [BezierCurve] with three control points.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) BoundingBox() Box {
	return NewBoxFromPoints(q.P0, q.P1, q.P2)
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec3(q.P0).Sub(Vec3(q.P1).Mul(2)).Add(Vec3(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec3(q.P0).Mul(-0.492943519233745).
			Add(Vec3(q.P1).Mul(0.430331482911935)).
			Add(Vec3(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec3(q.P0).Mul(-0.0626120363218102).
			Sub(Vec3(q.P1).Mul(0.430331482911935)).
			Add(Vec3(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

func (q QuadBez) ValueAt(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) SlopeAt(t float64) Vec3 {
	return Vec3(q.Differentiate().ValueAt(t))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.ValueAt(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.ValueAt(t0)
	p2 := q.ValueAt(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the derivative of the curve, which is a line. Its
// points are to be interpreted as vectors.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		q.P0.Transform(aff),
		q.P1.Transform(aff),
		q.P2.Transform(aff),
	}
}

// Bezier returns the curve as a degree 2 [BezierCurve].
func (q QuadBez) Bezier() BezierCurve {
	return BezierCurve{points: []Point{q.P0, q.P1, q.P2}}
}
