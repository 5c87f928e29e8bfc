package curve

import (
	"math"
)

// DefaultAccuracy is a default value for functions that take an accuracy
// argument. It is suitable for general-purpose use, such as animation paths
// measured in world units.
const DefaultAccuracy = 1e-6

// Interpolation describes a curve parametrized by a scalar t.
//
// Curves are conventionally evaluated for t ∈ [0, 1], where 0 is the start and
// 1 is the end of the curve. Every implementation in this package also accepts
// any finite t outside of that range and extrapolates the curve's polynomial
// (or piecewise polynomial) form instead of clamping. Use [Clamp01] when
// clamping is desired.
//
// Both methods are pure: they don't modify the curve and are safe for
// concurrent use.
type Interpolation interface {
	// ValueAt returns the position of the curve at parameter t.
	ValueAt(t float64) Point
	// SlopeAt returns the first derivative of the position with respect to t.
	// The result is not normalized.
	SlopeAt(t float64) Vec3
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve over t ∈ [0, 1].
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// ArclenSolver can be implemented by types that have a better way of computing
// the solution than the one used by [SolveForArclen].
type ArclenSolver interface {
	SolveForArclen(arclen float64, accuracy float64) float64
}

// Bounded describes curves that can compute a box enclosing them for
// t ∈ [0, 1].
type Bounded interface {
	BoundingBox() Box
}

// Clamp01 clamps t to the range [0, 1]. NaN is returned unchanged.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Arclen returns the length of c over t ∈ [0, 1]. Curves implementing
// [Arclener] compute it themselves, all others are measured with
// [ArclenRange].
func Arclen(c Interpolation, accuracy float64) float64 {
	if c, ok := c.(Arclener); ok {
		return c.Arclen(accuracy)
	}
	return ArclenRange(c, 0, 1, accuracy)
}

// ArclenRange returns the length of c between t0 and t1, by integrating the
// magnitude of its derivative. The result is negative if t1 < t0.
//
// This uses adaptive Legendre-Gauss quadrature: a 16-point and a 24-point
// estimate are compared, and the range is subdivided until they agree to
// within accuracy.
func ArclenRange(c Interpolation, t0, t1, accuracy float64) float64 {
	if t1 < t0 {
		return -ArclenRange(c, t1, t0, accuracy)
	}
	if t0 == t1 {
		return 0
	}
	return arclenRange(c, t0, t1, accuracy, 0)
}

func arclenRange(c Interpolation, t0, t1, accuracy float64, depth int) float64 {
	est16 := gaussLegendreSpeed(c, t0, t1, gaussLegendreCoeffs16Half[:])
	est24 := gaussLegendreSpeed(c, t0, t1, gaussLegendreCoeffs24Half[:])
	if math.Abs(est24-est16) < accuracy || depth >= 16 {
		return est24
	}
	tm := 0.5 * (t0 + t1)
	return arclenRange(c, t0, tm, accuracy*0.5, depth+1) +
		arclenRange(c, tm, t1, accuracy*0.5, depth+1)
}

// gaussLegendreSpeed integrates |c'(t)| over [t0, t1] using a symmetric half
// table of quadrature coefficients.
func gaussLegendreSpeed(c Interpolation, t0, t1 float64, coeffs [][2]float64) float64 {
	half := 0.5 * (t1 - t0)
	mid := 0.5 * (t0 + t1)
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		sum += wi * (c.SlopeAt(mid+half*xi).Hypot() + c.SlopeAt(mid-half*xi).Hypot())
	}
	return sum * half
}

// SolveForArclen solves for the parameter that has the given arc length from
// the start of the curve.
//
// This implementation uses the [ITP method], as provided by [SolveITP]. This is
// as robust as bisection but typically converges faster. In addition, the
// method takes care to compute arc lengths of increasingly smaller segments of
// the curve, as that is likely faster than repeatedly computing the arc length
// of the segment starting at t=0.
//
// Types can optionally implement [ArclenSolver], in which case this function
// will defer to it.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveForArclen(c Interpolation, arclen float64, accuracy float64) float64 {
	if c, ok := c.(ArclenSolver); ok {
		return c.SolveForArclen(arclen, accuracy)
	}

	if arclen <= 0.0 {
		return 0.0
	}
	totalArclen := Arclen(c, accuracy)
	if arclen >= totalArclen {
		return 1.0
	}
	tLast := 0.0
	arclenLast := 0.0
	epsilon := accuracy / totalArclen
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		arclenLast += ArclenRange(c, tLast, t, innerAccuracy)
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, 0.0, 1.0, epsilon, 1, 0.2, -arclen, totalArclen-arclen)
}

// SolveITP solves an arbitrary function for a zero-crossing.
//
// This uses the [ITP method], as described in the paper [An Enhancement of the
// Bisection Method Average Performance Preserving Minmax Optimality].
//
// The values of ya and yb are given as arguments rather than computed from f,
// as the values may already be known, or they may be less expensive to compute
// as special cases.
//
// It is assumed that ya < 0.0 and yb > 0.0, otherwise unexpected results may
// occur.
//
// The value of epsilon must be larger than 2**-63 * (b - a), otherwise integer
// overflow may occur. The a and b parameters represent the lower and upper
// bounds of the bracket searched for a solution.
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// both because it avoids an expensive floating point exponentiation and because
// this value has been tested to work well with curve fitting problems.
//
// The n0 parameter controls the relative impact of the bisection and secant
// components. When it is 0, the number of iterations is guaranteed to be no
// more than the number required by bisection. A value of 1 gives the secant
// method more of a chance to engage on smooth functions.
//
// The k1 parameter is harder to characterize; a value of 0.2 / (b - a) is
// suggested by the paper.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// The Half tables list only the non-negative abscissae of the symmetric rules.

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
