package curve

import (
	"math"
	"slices"
	"testing"
)

func TestSamples(t *testing.T) {
	c := NewBezierCurve(Pt(0, 0, 0), Pt(1, 2, 0), Pt(2, 0, 0))
	got := slices.Collect(Samples(c, 4))
	if len(got) != 5 {
		t.Fatalf("got %d samples, want 5", len(got))
	}
	for i, s := range got {
		want := float64(i) / 4
		if s.T != want {
			t.Errorf("sample %d at t=%g, want %g", i, s.T, want)
		}
		diff(t, SampleAt(c, want), s)
	}
	diff(t, Pt(1, 1, 0), got[2].Point)

	if n := len(slices.Collect(Samples(c, 0))); n != 2 {
		t.Errorf("got %d samples for n=0, want 2", n)
	}
}

func TestSamplesEarlyExit(t *testing.T) {
	c := Line{Pt(0, 0, 0), Pt(1, 0, 0)}
	var n int
	for range Samples(c, 100) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestSamplesByArclen(t *testing.T) {
	const accuracy = 1e-9
	c := CubicBez{Pt(0, 0, 0), Pt(0, 10, 0), Pt(10, 10, 5), Pt(10, 0, 5)}
	total := c.Arclen(accuracy)
	samples := slices.Collect(SamplesByArclen(c, 8, accuracy))
	if len(samples) != 9 {
		t.Fatalf("got %d samples, want 9", len(samples))
	}
	if samples[0].T != 0 || samples[8].T != 1 {
		t.Errorf("samples span [%g, %g], want [0, 1]", samples[0].T, samples[8].T)
	}
	for i := 1; i < len(samples); i++ {
		seg := ArclenRange(c, samples[i-1].T, samples[i].T, accuracy)
		if math.Abs(seg-total/8) > 1e-6 {
			t.Errorf("piece %d has length %v, want %v", i, seg, total/8)
		}
	}
}

func TestPolyline(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(4, 0, 8)}
	got := Polyline(l, 4)
	want := []Point{Pt(0, 0, 0), Pt(1, 0, 2), Pt(2, 0, 4), Pt(3, 0, 6), Pt(4, 0, 8)}
	diff(t, want, got, pointComparer)
}
