// Package curve provides 3D parametric curves for animation and motion
// paths. Curves are evaluated in double precision; conversion to the single
// precision types used by OpenGL happens at the boundary (see [Point.Vec3f]
// and [Affine.Mat4f]).
//
// # Interpolation
//
// [Interpolation] is the contract every curve implements: ValueAt returns the
// position at a parameter t and SlopeAt returns the first derivative, the
// unnormalized tangent. Callers such as path followers only depend on this
// interface, so curve kinds can be swapped without changing them.
//
// Curves are conventionally evaluated for t ∈ [0, 1]. Parameters outside of
// that range extrapolate the curve's polynomial form; they never panic and
// never modify the curve. Use [Clamp01] to clamp instead.
//
// This package includes the following curves:
//   - [BezierCurve], a Bézier curve of arbitrary degree evaluated with De
//     Casteljau's algorithm
//   - [Line]
//   - [QuadBez] and [CubicBez], closed-form quadratic and cubic Béziers
//   - [Path], a piecewise curve made of other curves
//
// # Degenerate curves
//
// Curves never reject their input. A [BezierCurve] with a single control
// point evaluates to that point with a zero slope, and the empty curve
// evaluates to the origin with a zero slope.
//
// # Arc length
//
// [Arclen] and [ArclenRange] measure curves with Legendre-Gauss quadrature,
// and [SolveForArclen] inverts that to find the parameter at a given
// distance along the curve. [SamplesByArclen] uses it to place samples at
// equal distances, which is what constant speed motion needs.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package curve
