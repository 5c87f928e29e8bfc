package curve

import "math"

// Box is an axis-aligned box in 3D space.
type Box struct {
	Min Point
	Max Point
}

// EmptyBox returns a box that contains nothing. Its union with any point is
// the zero-volume box at that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Pt(inf, inf, inf),
		Max: Pt(-inf, -inf, -inf),
	}
}

// NewBoxFromPoints returns the smallest box enclosing all of pts. With no
// points, it returns [EmptyBox].
func NewBoxFromPoints(pts ...Point) Box {
	b := EmptyBox()
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extents of the box along each axis.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies inside the box. Unlike the 2D rectangle
// convention, the maximum faces are inclusive, so a zero-volume box still
// contains its own point.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points yields their
// enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return b.Union(Box{Min: pt, Max: pt})
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		Min: b.Min.Translate(v),
		Max: b.Max.Translate(v),
	}
}
