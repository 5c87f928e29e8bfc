package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertVecNear(t *testing.T, v0 Vec3, v1 Vec3, epsilon float64) {
	t.Helper()
	if d := v1.Sub(v0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", v0, v1)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})
