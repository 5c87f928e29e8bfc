package curve

import (
	"iter"
	"slices"
)

// Sample is the state of a curve at one parameter value.
type Sample struct {
	T       float64
	Point   Point
	Tangent Vec3
}

// SampleAt evaluates c at t.
func SampleAt(c Interpolation, t float64) Sample {
	return Sample{T: t, Point: c.ValueAt(t), Tangent: c.SlopeAt(t)}
}

// Samples returns n+1 samples of c at uniformly spaced parameters, starting
// at t=0 and ending at t=1. Values of n less than 1 are treated as 1.
//
// Uniform parameter spacing isn't uniform spacing along the curve; see
// [SamplesByArclen] for that.
func Samples(c Interpolation, n int) iter.Seq[Sample] {
	n = max(n, 1)
	return func(yield func(Sample) bool) {
		for i := 0; i <= n; i++ {
			if !yield(SampleAt(c, float64(i)/float64(n))) {
				return
			}
		}
	}
}

// SamplesByArclen returns n+1 samples of c that divide it into n pieces of
// equal arc length. Values of n less than 1 are treated as 1.
func SamplesByArclen(c Interpolation, n int, accuracy float64) iter.Seq[Sample] {
	n = max(n, 1)
	return func(yield func(Sample) bool) {
		total := Arclen(c, accuracy)
		for i := 0; i <= n; i++ {
			var t float64
			switch i {
			case 0:
				t = 0
			case n:
				t = 1
			default:
				t = SolveForArclen(c, total*float64(i)/float64(n), accuracy)
			}
			if !yield(SampleAt(c, t)) {
				return
			}
		}
	}
}

// Polyline returns the positions of n+1 uniformly spaced samples of c.
func Polyline(c Interpolation, n int) []Point {
	return slices.Collect(func(yield func(Point) bool) {
		for s := range Samples(c, n) {
			if !yield(s.Point) {
				return
			}
		}
	})
}
