package curve

// Line represents a line segment. It is the simplest [Interpolation]: its
// value is a linear interpolation between its endpoints and its slope is
// constant.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Interpolation = Line{}
var _ ArclenSolver = Line{}
var _ Bounded = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter at the given distance from the start.
// The result is clamped to [0, 1], like [SolveForArclen].
func (l Line) SolveForArclen(arclen float64, accuracy float64) float64 {
	if arclen <= 0 {
		return 0
	}
	length := l.Length()
	if arclen >= length {
		return 1
	}
	return arclen / length
}

func (l Line) ValueAt(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) SlopeAt(t float64) Vec3 {
	return l.P1.Sub(l.P0)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, and the parameter of that point.
func (l Line) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.ValueAt(t)).Hypot2()
		return dist, t
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec3) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Box {
	return NewBoxFromPoints(l.P0, l.P1)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.ValueAt(start), l.ValueAt(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

// Bezier returns the line as a degree 1 [BezierCurve].
func (l Line) Bezier() BezierCurve {
	return BezierCurve{points: []Point{l.P0, l.P1}}
}
