package curve

import (
	"math"
	"slices"
)

var _ Interpolation = Path{}
var _ Arclener = Path{}
var _ Bounded = Path{}

// Path is a piecewise curve made of consecutive segments. It is an
// [Interpolation] in its own right: with n segments, segment i covers the
// global parameter range [i/n, (i+1)/n]. Parameters outside of [0, 1]
// extrapolate the first or last segment.
//
// The segments are expected to be joined end to end, but this isn't
// enforced.
type Path struct {
	segs []Interpolation
}

// NewPath returns a path consisting of segs. The slice is copied.
func NewPath(segs ...Interpolation) Path {
	return Path{segs: slices.Clone(segs)}
}

// CubicPath builds a path from a flat list of points, grouping them into
// cubic Béziers that share endpoints: points 0–3 form the first segment,
// 3–6 the second, and so on. Leftover points at the end form a final segment
// of lower degree. Fewer than four points produce a single segment.
func CubicPath(points ...Point) Path {
	switch n := len(points); {
	case n == 0:
		return Path{}
	case n < 4:
		return Path{segs: []Interpolation{NewBezierCurve(points...)}}
	}
	var segs []Interpolation
	i := 0
	for ; i+3 < len(points); i += 3 {
		segs = append(segs, CubicBez{points[i], points[i+1], points[i+2], points[i+3]})
	}
	if rest := points[i:]; len(rest) > 1 {
		segs = append(segs, NewBezierCurve(rest...))
	}
	return Path{segs: segs}
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Interpolation {
	return slices.Clone(p.segs)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// locate maps a global parameter to a segment index and a local parameter.
func (p Path) locate(t float64) (int, float64) {
	n := len(p.segs)
	u := t * float64(n)
	// Clamp before converting, int(u) is undefined outside the int range.
	// NaN and out of range parameters land on the outermost segments.
	var i int
	switch {
	case !(u >= 0):
		i = 0
	case u >= float64(n-1):
		i = n - 1
	default:
		i = int(math.Floor(u))
	}
	return i, u - float64(i)
}

func (p Path) ValueAt(t float64) Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	i, u := p.locate(t)
	return p.segs[i].ValueAt(u)
}

// SlopeAt returns the derivative with respect to the global parameter, which
// is the segment's slope scaled by the number of segments.
func (p Path) SlopeAt(t float64) Vec3 {
	if len(p.segs) == 0 {
		return Vec3{}
	}
	i, u := p.locate(t)
	return p.segs[i].SlopeAt(u).Mul(float64(len(p.segs)))
}

func (p Path) Start() Point {
	return p.ValueAt(0)
}

func (p Path) End() Point {
	return p.ValueAt(1)
}

// Arclen returns the sum of the segments' arc lengths.
func (p Path) Arclen(accuracy float64) float64 {
	if len(p.segs) == 0 {
		return 0
	}
	inner := accuracy / float64(len(p.segs))
	var sum float64
	for _, seg := range p.segs {
		sum += Arclen(seg, inner)
	}
	return sum
}

// BoundingBox returns the union of the segments' bounding boxes. Segments
// that don't implement [Bounded] are approximated by a polyline.
func (p Path) BoundingBox() Box {
	const flattenSegments = 32
	b := EmptyBox()
	for _, seg := range p.segs {
		if seg, ok := seg.(Bounded); ok {
			b = b.Union(seg.BoundingBox())
			continue
		}
		b = b.Union(NewBoxFromPoints(Polyline(seg, flattenSegments)...))
	}
	return b
}
