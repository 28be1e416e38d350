package math

import (
	gomath "math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{2, 3, 4}
	got := a.Mul(b)
	want := Vec3{2, 6, 12}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3.Normalize() on zero vector = %v, want zero", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, 2, -4}
	if got := a.Min(b); got != (Vec3{1, 2, -4}) {
		t.Errorf("Vec3.Min() = %v, want {1 2 -4}", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, -2}) {
		t.Errorf("Vec3.Max() = %v, want {3 5 -2}", got)
	}
}

func vecNear(a, b Vec3, eps float32) bool {
	return gomath.Abs(float64(a.X-b.X)) < float64(eps) &&
		gomath.Abs(float64(a.Y-b.Y)) < float64(eps) &&
		gomath.Abs(float64(a.Z-b.Z)) < float64(eps)
}

func TestVec3Rotate(t *testing.T) {
	const halfPi = float32(gomath.Pi / 2)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"RotateX", Vec3{0, 1, 0}.RotateX(halfPi), Vec3{0, 0, 1}},
		{"RotateY", Vec3{0, 0, 1}.RotateY(halfPi), Vec3{1, 0, 0}},
		{"RotateZ", Vec3{1, 0, 0}.RotateZ(halfPi), Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		if !vecNear(tt.got, tt.want, 1e-6) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVec3RotateRoundTrip(t *testing.T) {
	v := Vec3{0.3, -1.2, 2.5}
	got := v.RotateY(0.7).RotateY(-0.7)
	if !vecNear(got, v, 1e-6) {
		t.Errorf("RotateY round trip = %v, want %v", got, v)
	}
}

func TestVec3Reflect(t *testing.T) {
	// reflect(l, n) = 2(l·n)n - l. For l parallel to n the reflection is l itself.
	l := Vec3{0, 1, 0}
	n := Vec3{0, 1, 0}
	if got := l.Reflect(n); !vecNear(got, l, 1e-6) {
		t.Errorf("Reflect() = %v, want %v", got, l)
	}

	// A 45-degree incoming direction mirrors its tangential component.
	l = Vec3{1, 1, 0}.Normalize()
	n = Vec3{0, 1, 0}
	want := Vec3{-l.X, l.Y, 0}
	if got := l.Reflect(n); !vecNear(got, want, 1e-6) {
		t.Errorf("Reflect() = %v, want %v", got, want)
	}
}
