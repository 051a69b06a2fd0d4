package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should stay zero")
	}
}

func TestVec3Extend(t *testing.T) {
	got := Vec3{1, 2, 3}.Extend(4)
	want := Vec4{1, 2, 3, 4}
	if got != want {
		t.Errorf("Vec3.Extend() = %v, want %v", got, want)
	}
}

func TestDVec3Length(t *testing.T) {
	v := DVec3{3e11, 4e11, 0}
	if got := v.Length(); math.Abs(got-5e11) > 1 {
		t.Errorf("DVec3.Length() = %v, want 5e11", got)
	}
	if got := v.LengthSquared(); got != 25e22 {
		t.Errorf("DVec3.LengthSquared() = %v, want 25e22", got)
	}
}

func TestDVec3HorizontalDistance(t *testing.T) {
	a := DVec3{0, 100, 0}
	b := DVec3{3, -50, 4}
	if got := a.HorizontalDistance(b); got != 5 {
		t.Errorf("HorizontalDistance() = %v, want 5 (y ignored)", got)
	}
}

func TestDVec3Narrow(t *testing.T) {
	got := DVec3{1.5, -2.25, 4e11}.Vec3()
	want := Vec3{1.5, -2.25, 4e11}
	if got != want {
		t.Errorf("DVec3.Vec3() = %v, want %v", got, want)
	}
}
