package curve

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2, z = x
	c := CubicBez{
		Pt(0.0, 0.0, 0.0),
		Pt(1.0/3.0, 0.0, 1.0/3.0),
		Pt(2.0/3.0, 1.0/3.0, 2.0/3.0),
		Pt(1.0, 1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.ValueAt(ts)
		p1 := c.ValueAt(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec3(deriv.ValueAt(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
		assertVecNear(t, c.SlopeAt(ts), d, 1e-15)
	}
}

func TestCubicBezArclen(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0, 0.0),
		Pt(1.0/3.0, 0.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0, 0.0),
		Pt(1.0, 1.0, 0.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		error := c.Arclen(accuracy) - trueArclen
		if math.Abs(error) > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
		}
	}
}

func TestCubicBezArclenMatchesGeneric(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(1, 3, -2), Pt(4, -1, 2), Pt(5, 2, 5)}
	want := c.Arclen(1e-12)
	if got := ArclenRange(c, 0, 1, 1e-10); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1, 0.0), Pt(5.9, 2.6, 1.0), Pt(5.3, 5.8, -1.0), Pt(9.7, 9.3, 2.0)}
	t0 := 0.1
	t1 := 0.8
	cs := c.Subsegment(t0, t1)
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, c.ValueAt(ts), cs.ValueAt(tt), epsilon)
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(1, 2, 3), Pt(2, -1, 1), Pt(3, 0, 0)}
	a, b := c.Subdivide()
	for _, ts := range testParams {
		assertNear(t, a.ValueAt(ts), c.ValueAt(0.5*ts), 1e-12)
		assertNear(t, b.ValueAt(ts), c.ValueAt(0.5+0.5*ts), 1e-12)
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 2, 2)}
	d0, d1 := c.Tangents()
	diff(t, Vec(1, 1, 0), d0)
	diff(t, Vec(1, 1, 2), d1)
	if !c.SlopeAt(0).IsZero() {
		t.Errorf("SlopeAt(0) = %s, want zero for a degenerate start", c.SlopeAt(0))
	}
}
