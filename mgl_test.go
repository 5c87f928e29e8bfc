package curve

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVec3fRoundTrip(t *testing.T) {
	p := Pt(1.5, -2.25, 8)
	diff(t, mgl32.Vec3{1.5, -2.25, 8}, p.Vec3f())
	diff(t, p, PointFromVec3f(p.Vec3f()))

	v := Vec(0.5, 0, -4)
	diff(t, mgl32.Vec3{0.5, 0, -4}, v.Vec3f())
	diff(t, v, VecFromVec3f(v.Vec3f()))
}

func TestMat4f(t *testing.T) {
	tests := []struct {
		name string
		aff  Affine
		want mgl32.Mat4
	}{
		{"identity", Identity, mgl32.Ident4()},
		{"translate", Translate(Vec(1, 2, 3)), mgl32.Translate3D(1, 2, 3)},
		{"scale", Scale(2, 3, 4), mgl32.Scale3D(2, 3, 4)},
		{"rotate", RotateZ(math.Pi / 2), mgl32.HomogRotate3DZ(math.Pi / 2)},
		{
			"composite",
			Translate(Vec(1, 2, 3)).Mul(Scale(2, 2, 2)),
			mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.aff.Mat4f()
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-6))
			back := AffineFromMat4f(got)
			for i, c := range back.Coefficients() {
				if d := math.Abs(c - tt.aff.Coefficients()[i]); d > 1e-6 {
					t.Errorf("coefficient %d: got %v, want %v", i, c, tt.aff.Coefficients()[i])
				}
			}
		})
	}
}

func TestMat4fTransformsPoints(t *testing.T) {
	aff := Translate(Vec(1, 0, -2)).Mul(RotateAxis(Vec(1, 1, 0), 0.7))
	p := Pt(3, -1, 2)
	want := p.Transform(aff)
	got := mgl32.TransformCoordinate(p.Vec3f(), aff.Mat4f())
	if got.Sub(want.Vec3f()).Len() > 1e-5 {
		t.Errorf("got %v, want %v", got, want.Vec3f())
	}
}
