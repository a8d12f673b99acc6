package astro

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"unit z", Vec3{0, 0, 1}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, -4, 0}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEquatorialToEcliptic_PreservesNorm(t *testing.T) {
	vectors := []Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.3, -0.4, 0.866},
		{-2, 5, -1},
	}

	for _, v := range vectors {
		got := EquatorialToEcliptic(v, DefaultObliquityDeg)
		if math.Abs(got.Norm()-v.Norm()) > 1e-12 {
			t.Errorf("rotation changed norm of %v: %v", v, got)
		}
		if got.X != v.X {
			t.Errorf("rotation moved the equinox axis: %v -> %v", v, got)
		}
	}
}

func TestEclipticLongitudeRange(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float64
	}{
		{Vec3{1, 0, 0}, 0},
		{Vec3{0, 1, 0}, 90},
		{Vec3{-1, 0, 0}, 180},
		{Vec3{0, -1, 0}, 270},
	}

	for _, tt := range tests {
		got := EclipticLongitude(tt.v)
		if math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("EclipticLongitude(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestEclipticLatitude(t *testing.T) {
	if got := EclipticLatitude(Vec3{}); got != 0 {
		t.Errorf("zero vector latitude = %v, want 0", got)
	}
	if got := EclipticLatitude(Vec3{0, 0, 3}); math.Abs(got-90) > 1e-10 {
		t.Errorf("pole latitude = %v, want 90", got)
	}
	if got := EclipticLatitude(Vec3{1, 0, -1}); math.Abs(got+45) > 1e-10 {
		t.Errorf("latitude = %v, want -45", got)
	}
}
