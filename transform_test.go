package sapling

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestInvertAffine(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
		want [6]float64
	}{
		{"identity", identityTransform, identityTransform},
		{"translation", [6]float64{1, 0, 0, 1, 10, 20}, [6]float64{1, 0, 0, 1, -10, -20}},
		{"scale", [6]float64{2, 0, 0, 4, 0, 0}, [6]float64{0.5, 0, 0, 0.25, 0, 0}},
		{"singular", [6]float64{0, 0, 0, 0, 5, 5}, identityTransform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMatrix(t, "inverse", invertAffine(tt.m), tt.want)
		})
	}
}

func TestInvertAffineRoundtrip(t *testing.T) {
	sin, cos := math.Sincos(0.7)
	m := [6]float64{2 * cos, 2 * sin, -2 * sin, 2 * cos, 30, -12}
	inv := invertAffine(m)

	p := Vec2{17, -4}
	back := transformVec(inv, transformVec(m, p))
	if !approxEqual(back.X, p.X, 1e-9) || !approxEqual(back.Y, p.Y, 1e-9) {
		t.Errorf("roundtrip = %v, want %v", back, p)
	}
}

func TestTransformPoint(t *testing.T) {
	// Quarter turn then translate by (5, 0).
	m := [6]float64{0, 1, -1, 0, 5, 0}
	x, y := transformPoint(m, 1, 0)
	if !approxEqual(x, 5, epsilon) || !approxEqual(y, 1, epsilon) {
		t.Errorf("transformPoint = (%v,%v), want (5,1)", x, y)
	}
}
