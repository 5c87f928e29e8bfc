package curve

import (
	"iter"
	"math"
)

// Affine describes a 3D affine transform via coefficients.
//
// The coefficients are stored column by column. If they are (n0, ..., n11),
// then the resulting transformation represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	| 0  0  0  1   |
//
// This is the same column-major layout used by OpenGL and mathgl, minus the
// constant bottom row. The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scale(x, y, z float64) Affine {
	return Affine{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// UniformScale creates an affine transform scaling all axes by f.
func UniformScale(f float64) Affine {
	return Scale(f, f, f)
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X, v.Y, v.Z}
}

// RotateX creates a rotation of th radians about the x axis. A positive angle
// rotates the positive y axis into the positive z axis.
func RotateX(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{1, 0, 0, 0, cos, sin, 0, -sin, cos, 0, 0, 0}
}

// RotateY creates a rotation of th radians about the y axis. A positive angle
// rotates the positive z axis into the positive x axis.
func RotateY(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, 0, -sin, 0, 1, 0, sin, 0, cos, 0, 0, 0}
}

// RotateZ creates a rotation of th radians about the z axis. A positive angle
// rotates the positive x axis into the positive y axis.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, 0, -sin, cos, 0, 0, 0, 1, 0, 0, 0}
}

// RotateAxis creates a rotation of th radians about axis, following the right
// hand rule. The axis does not need to be normalized, but it must not be the
// zero vector.
func RotateAxis(axis Vec3, th float64) Affine {
	k := axis.Normalize()
	s, c := math.Sincos(th)
	mc := 1 - c
	return Affine{
		c + mc*k.X*k.X,
		s*k.Z + mc*k.Y*k.X,
		-s*k.Y + mc*k.Z*k.X,

		-s*k.Z + mc*k.X*k.Y,
		c + mc*k.Y*k.Y,
		s*k.X + mc*k.Z*k.Y,

		s*k.Y + mc*k.X*k.Z,
		-s*k.X + mc*k.Y*k.Z,
		c + mc*k.Z*k.Z,

		0, 0, 0,
	}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2,
		aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8,
		aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func affineFromColumns(x, y, z, t Vec3) Affine {
	return Affine{x.X, x.Y, x.Z, y.X, y.Y, y.Z, z.X, z.Y, z.Z, t.X, t.Y, t.Z}
}

func (aff Affine) columns() (x, y, z Vec3) {
	return Vec3{aff.N0, aff.N1, aff.N2}, Vec3{aff.N3, aff.N4, aff.N5}, Vec3{aff.N6, aff.N7, aff.N8}
}

// TransformVec applies the linear part of the transform to v, ignoring the
// translation. This is how tangents and other directions transform.
func (aff Affine) TransformVec(v Vec3) Vec3 {
	return Vec3{
		X: aff.N0*v.X + aff.N3*v.Y + aff.N6*v.Z,
		Y: aff.N1*v.X + aff.N4*v.Y + aff.N7*v.Z,
		Z: aff.N2*v.X + aff.N5*v.Y + aff.N8*v.Z,
	}
}

func (aff Affine) Mul(o Affine) Affine {
	ox, oy, oz := o.columns()
	return affineFromColumns(
		aff.TransformVec(ox),
		aff.TransformVec(oy),
		aff.TransformVec(oz),
		aff.TransformVec(o.Translation()).Add(aff.Translation()),
	)
}

// PreScale creates a scale by (x, y, z) followed by aff.
//
// Equivalent to "aff * Scale(x, y, z)"
func (aff Affine) PreScale(x, y, z float64) Affine {
	return aff.Mul(Scale(x, y, z))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// PreRotateAxis creates a rotation of th about axis followed by aff.
//
// Equivalent to "aff * RotateAxis(axis, th)"
func (aff Affine) PreRotateAxis(axis Vec3, th float64) Affine {
	return aff.Mul(RotateAxis(axis, th))
}

// ThenRotateAxis creates aff followed by a rotation of th about axis.
//
// Equivalent to "RotateAxis(axis, th) * aff"
func (aff Affine) ThenRotateAxis(axis Vec3, th float64) Affine {
	return RotateAxis(axis, th).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	x, y, z := aff.columns()
	return x.Dot(y.Cross(z))
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	x, y, z := aff.columns()
	invDet := 1 / x.Dot(y.Cross(z))
	// The rows of the inverse of a matrix with columns x, y, z are the cross
	// products of the other two columns, divided by the determinant.
	r0 := y.Cross(z).Mul(invDet)
	r1 := z.Cross(x).Mul(invDet)
	r2 := x.Cross(y).Mul(invDet)
	t := aff.Translation()
	return Affine{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
		-r0.Dot(t), -r1.Dot(t), -r2.Dot(t),
	}
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

// TransformBoxBoundingBox computes the bounding box of a transformed box.
//
// If the transform is axis-aligned, then this bounding box is "tight", in
// other words the returned box is the transformed box.
func (aff Affine) TransformBoxBoundingBox(b Box) Box {
	out := EmptyBox()
	for _, x := range [2]float64{b.Min.X, b.Max.X} {
		for _, y := range [2]float64{b.Min.Y, b.Max.Y} {
			for _, z := range [2]float64{b.Min.Z, b.Max.Z} {
				out = out.UnionPoint(Pt(x, y, z).Transform(aff))
			}
		}
	}
	return out
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
