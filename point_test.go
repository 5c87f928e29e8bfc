package curve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0, 1).Translate(Vec(-10, 0, 2)), Pt(-10, 0, 3))
	diff(t, Pt(1, 2, 3).Sub(Pt(3, 2, 1)), Vec(-2, 0, 2))
	diff(t, Pt(1, 2, 3).Scale(10), Pt(10, 20, 30))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10, 0)
	p2 := Pt(0, 5, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(1, 2, 3)
	p4 := Pt(3, 5, 9)
	if d := p3.Distance(p4); d != 7 {
		t.Errorf("got distance %v, want 7", d)
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	a := Pt(0.1, 0.7, -3.3)
	b := Pt(1e10, -2.9, 1.0/3.0)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %s, want %s", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %s, want %s", got, b)
	}
	// Extrapolation follows the same formula.
	assertNear(t, Pt(0, 0, 0).Lerp(Pt(1, 2, 3), 2), Pt(2, 4, 6), 1e-12)
}

func TestVecCross(t *testing.T) {
	diff(t, Vec(1, 0, 0).Cross(Vec(0, 1, 0)), Vec(0, 0, 1))
	diff(t, Vec(0, 1, 0).Cross(Vec(0, 0, 1)), Vec(1, 0, 0))
	diff(t, Vec(0, 0, 1).Cross(Vec(1, 0, 0)), Vec(0, 1, 0))
	if d := Vec(2, 3, 4).Cross(Vec(2, 3, 4)); !d.IsZero() {
		t.Errorf("cross product of parallel vectors is %s, want zero", d)
	}
}

func TestVecNormalize(t *testing.T) {
	if h := Vec(3, 4, 12).Normalize().Hypot(); math.Abs(h-1) > 1e-15 {
		t.Errorf("got magnitude %v, want 1", h)
	}
	if !(Vec3{}).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if Pt(0, 0, 0).IsInf() || Pt(0, 0, 0).IsNaN() {
		t.Error("origin is not finite")
	}
	if !Pt(0, 0, math.Inf(-1)).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(0, math.NaN(), 0).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}
