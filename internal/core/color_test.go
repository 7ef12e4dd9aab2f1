package core

import "testing"

func TestLerpEndpoints(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 250, G: 120, B: 0}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, expected %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, expected %v", got, b)
	}

	// Out-of-range t clamps to the endpoints
	if got := Lerp(a, b, -0.5); got != a {
		t.Errorf("Lerp(a, b, -0.5) = %v, expected %v", got, a)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp(a, b, 2) = %v, expected %v", got, b)
	}
}

func TestLerpMidpoint(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 200, G: 0, B: 100}

	got := Lerp(a, b, 0.5)
	want := RGB{R: 100, G: 50, B: 150}
	if got != want {
		t.Errorf("Lerp midpoint = %v, expected %v", got, want)
	}
}

func TestScale(t *testing.T) {
	c := RGB{R: 100, G: 200, B: 50}

	if got := c.Scale(0); got != (RGB{}) {
		t.Errorf("Scale(0) = %v, expected black", got)
	}
	if got := c.Scale(1); got != c {
		t.Errorf("Scale(1) = %v, expected %v", got, c)
	}
	if got := c.Scale(5); got != c {
		t.Errorf("Scale above 1 should clamp, got %v, expected %v", got, c)
	}
	if got := c.Scale(0.5); got != (RGB{R: 50, G: 100, B: 25}) {
		t.Errorf("Scale(0.5) = %v, expected {50 100 25}", got)
	}
}

func TestHSVPrimaries(t *testing.T) {
	tests := []struct {
		h    float64
		want RGB
	}{
		{0, RGB{R: 255}},
		{120, RGB{G: 255}},
		{240, RGB{B: 255}},
	}
	for _, tt := range tests {
		if got := HSV(tt.h, 1, 1); got != tt.want {
			t.Errorf("HSV(%v, 1, 1) = %v, expected %v", tt.h, got, tt.want)
		}
	}

	// Zero saturation is grayscale regardless of hue
	if got := HSV(200, 0, 1); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("HSV(200, 0, 1) = %v, expected white", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, expected 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, expected 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %v, expected 10", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, expected 1", got)
	}
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, expected 0", got)
	}
}
