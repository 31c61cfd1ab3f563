package vista

import (
	"math"
	"testing"
)

func TestMultiplyAffine_Identity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}

	got := multiplyAffine(identityTransform, m)
	if got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
	got = multiplyAffine(m, identityTransform)
	if got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
}

func TestMultiplyAffine_ScaleThenTranslate(t *testing.T) {
	scale := [6]float64{2, 0, 0, 2, 0, 0}
	translate := [6]float64{1, 0, 0, 1, 10, 5}

	// parent translate, child scale: point scales first, then shifts.
	m := multiplyAffine(translate, scale)
	x, y := transformPoint(m, 3, 4)
	if x != 16 || y != 13 {
		t.Errorf("got (%v, %v), want (16, 13)", x, y)
	}
}

func TestInvertAffine_Roundtrip(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
	}{
		{"identity", identityTransform},
		{"scale", [6]float64{2, 0, 0, 0.5, 0, 0}},
		{"translate", [6]float64{1, 0, 0, 1, 42, -17}},
		{"scale and translate", [6]float64{3, 0, 0, 3, -100, 250}},
		{"full affine", [6]float64{1.5, 0.3, -0.2, 2.1, 7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := invertAffine(tt.m)
			px, py := transformPoint(tt.m, 12.5, -3.75)
			rx, ry := transformPoint(inv, px, py)
			if math.Abs(rx-12.5) > 1e-9 || math.Abs(ry+3.75) > 1e-9 {
				t.Errorf("roundtrip gave (%v, %v), want (12.5, -3.75)", rx, ry)
			}
		})
	}
}

func TestInvertAffine_Singular(t *testing.T) {
	singular := [6]float64{0, 0, 0, 0, 5, 5}
	if got := invertAffine(singular); got != identityTransform {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestTransformPoint(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	x, y := transformPoint(m, 5, 5)
	if x != 20 || y != 35 {
		t.Errorf("got (%v, %v), want (20, 35)", x, y)
	}
}
