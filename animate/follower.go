// Package animate moves objects along curves over time.
package animate

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rtrproject/curve"
)

// DefaultForward is the axis models face in their own space.
var DefaultForward = mgl32.Vec3{0, 0, 1}

// Follower maps elapsed time to a position on a curve. A follower is
// immutable and safe for concurrent use.
type Follower struct {
	curve    curve.Interpolation
	duration time.Duration
	mode     Mode
	forward  mgl32.Vec3

	// Set when moving at constant speed.
	accuracy float64
	length   float64
}

// Option configures a [Follower].
type Option func(*Follower)

// WithMode sets the follower's mode. The default is [Once].
func WithMode(m Mode) Option {
	return func(f *Follower) { f.mode = m }
}

// WithForward sets the model space axis that [Follower.ModelMatrix] turns
// to face along the curve. The default is [DefaultForward].
func WithForward(v mgl32.Vec3) Option {
	return func(f *Follower) { f.forward = v }
}

// WithConstantSpeed makes the follower cover equal distances in equal
// time, instead of equal parameter ranges. accuracy bounds the error of the
// arc length computations.
func WithConstantSpeed(accuracy float64) Option {
	return func(f *Follower) { f.accuracy = accuracy }
}

// NewFollower returns a follower that traverses c from t=0 to t=1 in
// duration. A non-positive duration keeps the follower at the start of the
// curve.
func NewFollower(c curve.Interpolation, duration time.Duration, opts ...Option) *Follower {
	f := &Follower{
		curve:    c,
		duration: duration,
		mode:     Once,
		forward:  DefaultForward,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.accuracy > 0 {
		f.length = curve.Arclen(c, f.accuracy)
	}
	return f
}

func (f *Follower) Curve() curve.Interpolation { return f.curve }
func (f *Follower) Duration() time.Duration    { return f.duration }
func (f *Follower) Mode() Mode                 { return f.mode }

// progress returns the fraction of the path covered after elapsed, and
// whether the follower is moving backwards.
func (f *Follower) progress(elapsed time.Duration) (float64, bool) {
	if f.duration <= 0 {
		return 0, false
	}
	u := elapsed.Seconds() / f.duration.Seconds()
	switch f.mode {
	case Loop:
		return u - math.Floor(u), false
	case PingPong:
		r := u - 2*math.Floor(u/2)
		if r > 1 {
			return 2 - r, true
		}
		return r, false
	default:
		return curve.Clamp01(u), false
	}
}

// Param returns the curve parameter reached after elapsed.
func (f *Follower) Param(elapsed time.Duration) float64 {
	u, _ := f.progress(elapsed)
	return f.param(u)
}

func (f *Follower) param(u float64) float64 {
	if f.accuracy <= 0 {
		return u
	}
	return curve.SolveForArclen(f.curve, u*f.length, f.accuracy)
}

// Pose returns the position after elapsed and the direction of travel. The
// direction is the curve's derivative, negated while a [PingPong] follower
// heads back to the start. It is not normalized and may be zero.
func (f *Follower) Pose(elapsed time.Duration) (curve.Point, curve.Vec3) {
	u, backwards := f.progress(elapsed)
	t := f.param(u)
	pos, tangent := f.curve.ValueAt(t), f.curve.SlopeAt(t)
	if backwards {
		tangent = tangent.Negate()
	}
	return pos, tangent
}

// ModelMatrix returns a model matrix that places an object at the position
// reached after elapsed, rotated so that its forward axis points along the
// direction of travel. Where the direction vanishes the object isn't
// rotated.
func (f *Follower) ModelMatrix(elapsed time.Duration) mgl32.Mat4 {
	pos, dir := f.Pose(elapsed)
	return modelMatrix(pos.Vec3f(), dir.Vec3f(), f.forward)
}

func modelMatrix(pos, dir, forward mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	if dir.Len() <= 1e-6 || forward.Len() <= 1e-6 {
		return m
	}
	rot := mgl32.QuatBetweenVectors(forward.Normalize(), dir.Normalize())
	return m.Mul4(rot.Mat4())
}
