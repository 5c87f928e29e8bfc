package curve

import (
	"slices"
)

// stackPoints is the number of control points for which evaluation doesn't
// allocate. Curves with more points use a heap-allocated working buffer.
const stackPoints = 8

var _ Interpolation = BezierCurve{}
var _ Arclener = BezierCurve{}
var _ Bounded = BezierCurve{}

// BezierCurve is a Bézier curve of arbitrary degree, defined by N control
// points P₀…Pₙ₋₁. Its degree is N−1.
//
// The control points are owned by the curve and never modified after
// construction: [NewBezierCurve] copies its input and [BezierCurve.Points]
// returns a copy. Copies of a BezierCurve value may share storage, but as
// nothing can write to it they behave as independent values.
//
// The zero value is the empty curve. It evaluates to the origin and has a
// zero slope everywhere. A curve with a single control point evaluates to
// that point for every t, with a zero slope.
type BezierCurve struct {
	points []Point
}

// NewBezierCurve returns the Bézier curve with the given control points. The
// points are copied. Degenerate inputs (zero or one points) are accepted.
func NewBezierCurve(points ...Point) BezierCurve {
	return BezierCurve{points: slices.Clone(points)}
}

// Points returns a copy of the control points.
func (c BezierCurve) Points() []Point {
	return slices.Clone(c.points)
}

// Len returns the number of control points.
func (c BezierCurve) Len() int {
	return len(c.points)
}

// Degree returns the polynomial degree of the curve, which is one less than
// the number of control points. The empty curve has degree -1.
func (c BezierCurve) Degree() int {
	return len(c.points) - 1
}

func (c BezierCurve) Start() Point {
	if len(c.points) == 0 {
		return Point{}
	}
	return c.points[0]
}

func (c BezierCurve) End() Point {
	if len(c.points) == 0 {
		return Point{}
	}
	return c.points[len(c.points)-1]
}

// ValueAt evaluates the curve at t using De Casteljau's algorithm.
//
// Each of the N−1 reduction passes replaces the working set Q₀…Qₘ₋₁ with the
// points (1−t)·Qᵢ + t·Qᵢ₊₁. At t = 0 and t = 1 the result is exactly the
// first and last control point.
func (c BezierCurve) ValueAt(t float64) Point {
	switch len(c.points) {
	case 0:
		return Point{}
	case 1:
		return c.points[0]
	}
	var buf [stackPoints]Point
	work := workBuffer(&buf, len(c.points))
	copy(work, c.points)
	return reduce(work, t)
}

// SlopeAt returns the derivative of the curve at t.
//
// The derivative of a Bézier curve of degree d is a Bézier curve of degree
// d−1 with control points d·(Pᵢ₊₁ − Pᵢ), which is evaluated with the same
// reduction as [BezierCurve.ValueAt]. Curves with fewer than two control
// points have a zero slope.
func (c BezierCurve) SlopeAt(t float64) Vec3 {
	n := len(c.points)
	if n <= 1 {
		return Vec3{}
	}
	var buf [stackPoints]Point
	work := workBuffer(&buf, n-1)
	hodograph(work, c.points)
	return Vec3(reduce(work, t))
}

// Derivative returns the derivative of the curve (its hodograph) as a curve of
// one lower degree. Interpreting its values as vectors, Derivative().ValueAt(t)
// equals SlopeAt(t). Curves with fewer than two control points return the
// constant curve at the origin.
func (c BezierCurve) Derivative() BezierCurve {
	if len(c.points) <= 1 {
		return BezierCurve{points: []Point{{}}}
	}
	pts := make([]Point, len(c.points)-1)
	hodograph(pts, c.points)
	return BezierCurve{points: pts}
}

// Split subdivides the curve at t using De Casteljau's algorithm. The first
// curve covers [0, t] and the second covers [t, 1] of the original, each
// reparametrized to [0, 1].
func (c BezierCurve) Split(t float64) (BezierCurve, BezierCurve) {
	n := len(c.points)
	if n == 0 {
		return BezierCurve{}, BezierCurve{}
	}
	left := make([]Point, n)
	right := make([]Point, n)
	var buf [stackPoints]Point
	work := workBuffer(&buf, n)
	copy(work, c.points)
	for m := n; m > 0; m-- {
		left[n-m] = work[0]
		right[m-1] = work[m-1]
		for i := range m - 1 {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return BezierCurve{points: left}, BezierCurve{points: right}
}

// Subdivide splits the curve into halves.
func (c BezierCurve) Subdivide() (BezierCurve, BezierCurve) {
	return c.Split(0.5)
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1]. t0 may be greater than t1, in which case the result runs
// backwards, and either may lie outside of [0, 1].
//
// The control points are computed by blossoming: the i-th point of the
// subsegment is the blossom of the curve at (t0, …, t0, t1, …, t1) with i
// copies of t1.
func (c BezierCurve) Subsegment(t0, t1 float64) BezierCurve {
	n := len(c.points)
	if n == 0 {
		return BezierCurve{}
	}
	out := make([]Point, n)
	var buf [stackPoints]Point
	work := workBuffer(&buf, n)
	for i := range n {
		copy(work, c.points)
		for m := n; m > 1; m-- {
			// Use t1 for the first i passes and t0 for the rest. The blossom
			// is symmetric so the order doesn't matter.
			t := t0
			if n-m < i {
				t = t1
			}
			for j := range m - 1 {
				work[j] = work[j].Lerp(work[j+1], t)
			}
		}
		out[i] = work[0]
	}
	return BezierCurve{points: out}
}

// Reverse returns the curve traversed in the opposite direction, so that
// Reverse().ValueAt(1-t) == ValueAt(t).
func (c BezierCurve) Reverse() BezierCurve {
	pts := slices.Clone(c.points)
	slices.Reverse(pts)
	return BezierCurve{points: pts}
}

// Transform applies an affine transformation to the curve. Bézier curves are
// affinely invariant, so this is the same as transforming every point of the
// curve.
func (c BezierCurve) Transform(aff Affine) BezierCurve {
	pts := make([]Point, len(c.points))
	for i, pt := range c.points {
		pts[i] = pt.Transform(aff)
	}
	return BezierCurve{points: pts}
}

func (c BezierCurve) Translate(v Vec3) BezierCurve {
	return c.Transform(Translate(v))
}

// Elevate raises the degree by one without changing the shape of the curve.
func (c BezierCurve) Elevate() BezierCurve {
	n := len(c.points)
	if n == 0 {
		return BezierCurve{}
	}
	pts := make([]Point, n+1)
	pts[0] = c.points[0]
	pts[n] = c.points[n-1]
	for i := 1; i < n; i++ {
		a := float64(i) / float64(n)
		pts[i] = c.points[i].Lerp(c.points[i-1], a)
	}
	return BezierCurve{points: pts}
}

// BoundingBox returns the box enclosing the control points. A Bézier curve
// lies within the convex hull of its control points, so this box always
// contains the curve for t ∈ [0, 1], but it isn't necessarily tight.
func (c BezierCurve) BoundingBox() Box {
	return NewBoxFromPoints(c.points...)
}

// Arclen returns the length of the curve over t ∈ [0, 1].
func (c BezierCurve) Arclen(accuracy float64) float64 {
	return ArclenRange(c, 0, 1, accuracy)
}

func (c BezierCurve) IsInf() bool {
	for _, pt := range c.points {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

func (c BezierCurve) IsNaN() bool {
	for _, pt := range c.points {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

// workBuffer returns a slice of n points, backed by buf if it is large enough.
func workBuffer(buf *[stackPoints]Point, n int) []Point {
	if n <= len(buf) {
		return buf[:n]
	}
	return make([]Point, n)
}

// hodograph stores the derivative control points of pts in dst, which must
// have room for len(pts)-1 points.
func hodograph(dst []Point, pts []Point) {
	deg := float64(len(pts) - 1)
	for i := range len(pts) - 1 {
		dst[i] = Point(pts[i+1].Sub(pts[i]).Mul(deg))
	}
}

// reduce runs De Casteljau's algorithm on work in place and returns the
// single point that remains. work must not be empty.
func reduce(work []Point, t float64) Point {
	for m := len(work); m > 1; m-- {
		for i := range m - 1 {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}
