package curve

import (
	"math"
)

var _ Interpolation = CubicBez{}
var _ Arclener = CubicBez{}
var _ Bounded = CubicBez{}

// CubicBez is a cubic Bézier curve. It evaluates in closed form and is
// equivalent to a [BezierCurve] with four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// BoundingBox returns the box enclosing the control points, which also
// encloses the curve.
func (c CubicBez) BoundingBox() Box {
	return NewBoxFromPoints(c.P0, c.P1, c.P2, c.P3)
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec3, dm1 Vec3, dm2 Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

func (c CubicBez) ValueAt(t float64) Point {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) SlopeAt(t float64) Vec3 {
	return Vec3(c.Differentiate().ValueAt(t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.ValueAt(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.ValueAt(t0)
	p3 := c.ValueAt(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec3(d.ValueAt(t0)).Mul(scale))
	p2 := p3.Translate(Vec3(d.ValueAt(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier. Its points are to be interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// Tangents returns the tangents at the start and end of the curve. Unlike
// [CubicBez.SlopeAt], degenerate control points are skipped, so the result
// is only zero if the whole curve is a single point.
func (c CubicBez) Tangents() (Vec3, Vec3) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0 Vec3
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else if d02 := c.P2.Sub(c.P0); d02.Hypot2() > epsilon {
		d0 = d02
	} else {
		d0 = c.P3.Sub(c.P0)
	}
	d23 := c.P3.Sub(c.P2)
	var d1 Vec3
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else if d13 := c.P3.Sub(c.P1); d13.Hypot2() > epsilon {
		d1 = d13
	} else {
		d1 = c.P3.Sub(c.P0)
	}
	return d0, d1
}

// Bezier returns the curve as a degree 3 [BezierCurve].
func (c CubicBez) Bezier() BezierCurve {
	return BezierCurve{points: []Point{c.P0, c.P1, c.P2, c.P3}}
}
