package curve

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Conversions to and from mathgl's single precision types, which are what
// OpenGL uniforms and vertex data are built from. Curves are evaluated in
// double precision and converted at this boundary only.

// Vec3f converts the point to an mgl32 vector.
func (pt Point) Vec3f() mgl32.Vec3 {
	return mgl32.Vec3{float32(pt.X), float32(pt.Y), float32(pt.Z)}
}

// Vec3f converts the vector to an mgl32 vector.
func (v Vec3) Vec3f() mgl32.Vec3 {
	return Point(v).Vec3f()
}

// PointFromVec3f converts an mgl32 vector to a point.
func PointFromVec3f(v mgl32.Vec3) Point {
	return Point{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// VecFromVec3f converts an mgl32 vector to a vector.
func VecFromVec3f(v mgl32.Vec3) Vec3 {
	return Vec3(PointFromVec3f(v))
}

// Mat4f returns the transform as a column-major 4×4 matrix.
func (aff Affine) Mat4f() mgl32.Mat4 {
	return mgl32.Mat4{
		float32(aff.N0), float32(aff.N1), float32(aff.N2), 0,
		float32(aff.N3), float32(aff.N4), float32(aff.N5), 0,
		float32(aff.N6), float32(aff.N7), float32(aff.N8), 0,
		float32(aff.N9), float32(aff.N10), float32(aff.N11), 1,
	}
}

// AffineFromMat4f converts a column-major 4×4 matrix to an affine transform.
// The bottom row is assumed to be (0, 0, 0, 1) and ignored.
func AffineFromMat4f(m mgl32.Mat4) Affine {
	return Affine{
		float64(m[0]), float64(m[1]), float64(m[2]),
		float64(m[4]), float64(m[5]), float64(m[6]),
		float64(m[8]), float64(m[9]), float64(m[10]),
		float64(m[12]), float64(m[13]), float64(m[14]),
	}
}
