package gamemath

import (
	"math"
	"testing"
)

func TestDampConvergesMonotonically(t *testing.T) {
	deltas := []float64{1.0 / 240, 1.0 / 60, 1.0 / 30, 0.1, 0.5, 5}
	for _, dt := range deltas {
		current := 3.0
		target := -1.5
		prevGap := math.Abs(current - target)
		for i := 0; i < 500; i++ {
			current = Damp(current, target, 8, dt)
			gap := math.Abs(current - target)
			if gap > prevGap {
				t.Fatalf("dt=%v tick %d: gap grew from %v to %v", dt, i, prevGap, gap)
			}
			if (current-target)*(3.0-target) < 0 {
				t.Fatalf("dt=%v tick %d: overshot target, current=%v", dt, i, current)
			}
			prevGap = gap
		}
	}
}

func TestDampFactorEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		rate, dt float64
		want     float64
	}{
		{"zero dt", 8, 0, 0},
		{"negative dt", 8, -1, 0},
		{"NaN dt", 8, math.NaN(), 0},
		{"zero rate", 0, 0.016, 0},
	}
	for _, tt := range tests {
		if got := DampFactor(tt.rate, tt.dt); got != tt.want {
			t.Errorf("%s: DampFactor(%v, %v) = %v, want %v", tt.name, tt.rate, tt.dt, got, tt.want)
		}
	}

	if f := DampFactor(20, 1e6); f < 0 || f > 1 {
		t.Errorf("huge dt factor out of range: %v", f)
	}
}

func TestDampIsFrameRateIndependent(t *testing.T) {
	coarse := Damp(1, 0, 8, 0.1)
	fine := 1.0
	for i := 0; i < 10; i++ {
		fine = Damp(fine, 0, 8, 0.01)
	}
	if math.Abs(coarse-fine) > 1e-12 {
		t.Errorf("coarse %v != fine %v", coarse, fine)
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0, 1, 0.25); got != 0.25 {
		t.Errorf("Approach up = %v", got)
	}
	if got := Approach(0.9, 1, 0.25); got != 1 {
		t.Errorf("Approach should stop at target, got %v", got)
	}
	if got := Approach(0.1, 0, 0.25); got != 0 {
		t.Errorf("Approach down should stop at target, got %v", got)
	}
	if got := Approach(0.5, 0, 0); got != 0.5 {
		t.Errorf("zero step moved value to %v", got)
	}
}

func TestCosineEase(t *testing.T) {
	if CosineEase(0) != 0 {
		t.Errorf("CosineEase(0) = %v", CosineEase(0))
	}
	if math.Abs(CosineEase(1)-1) > 1e-12 {
		t.Errorf("CosineEase(1) = %v", CosineEase(1))
	}
	if math.Abs(CosineEase(0.5)-0.5) > 1e-12 {
		t.Errorf("CosineEase(0.5) = %v", CosineEase(0.5))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := CosineEase(float64(i) / 100)
		if v < prev {
			t.Fatalf("CosineEase not monotonic at %d", i)
		}
		prev = v
	}
}

func TestFinite(t *testing.T) {
	if Finite(math.Inf(1)) != 0 || Finite(math.NaN()) != 0 {
		t.Error("non-finite values must map to 0")
	}
	if Finite(2.5) != 2.5 {
		t.Error("finite values must pass through")
	}
}
