package vmath

import (
	"math"
	"testing"
)

func TestHashStringDeterminism(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"Empty", ""},
		{"Single char", "a"},
		{"Category", "Starhaven Reaches"},
		{"Combined key", "Starhaven Reaches:entity-001"},
		{"Unicode", "señal-Ω"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := HashString(tt.key)
			for i := 0; i < 10; i++ {
				if got := HashString(tt.key); got != first {
					t.Fatalf("call %d: HashString(%q) = %d, want %d", i, tt.key, got, first)
				}
			}
		})
	}
}

func TestHashStringDivergence(t *testing.T) {
	keys := []string{"alpha", "beta", "gamma", "delta", "Starhaven Reaches", "starhaven reaches"}
	seen := make(map[uint32]string)
	for _, k := range keys {
		h := HashString(k)
		if prev, dup := seen[h]; dup {
			t.Errorf("keys %q and %q collide on seed %d", prev, k, h)
		}
		seen[h] = k
	}
}

// TestSeedRandStreamStability pins the first five outputs for seed 42.
// These values are the reproducibility contract: if this test breaks,
// every generated sigil in the wild changes shape.
func TestSeedRandStreamStability(t *testing.T) {
	want := [5]float64{}
	state := uint32(42)
	for i := range want {
		state = state*1664525 + 1013904223
		want[i] = float64(state) / 4294967296.0
	}

	for run := 0; run < 5; run++ {
		rng := NewSeedRand(42)
		for i := 0; i < 5; i++ {
			if got := rng.Float64(); got != want[i] {
				t.Fatalf("run %d output %d: got %v, want %v", run, i, got, want[i])
			}
		}
	}
}

func TestSeedRandNeverReseeds(t *testing.T) {
	a := NewSeedRand(7)
	b := NewSeedRand(7)

	// Interleaved consumption must not perturb either stream
	var seqA, seqB []float64
	for i := 0; i < 20; i++ {
		seqA = append(seqA, a.Float64())
	}
	for i := 0; i < 20; i++ {
		seqB = append(seqB, b.Float64())
	}
	for i := range seqA {
		if seqA[i] != seqB[i] {
			t.Fatalf("output %d diverged: %v vs %v", i, seqA[i], seqB[i])
		}
	}
}

func TestSeedRandRanges(t *testing.T) {
	rng := NewKeyRand("range-check")
	for i := 0; i < 1000; i++ {
		if f := rng.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
		if v := rng.Range(-2, 3); v < -2 || v >= 3 {
			t.Fatalf("Range out of [-2,3): %v", v)
		}
		if n := rng.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Intn out of [0,10): %d", n)
		}
		if a := rng.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle out of [0,2π): %v", a)
		}
	}
	if rng.Intn(0) != 0 || rng.Intn(-5) != 0 {
		t.Error("Intn with non-positive bound should return 0")
	}
}

func TestRotateY(t *testing.T) {
	v := Vec3F{X: 1, Y: 2, Z: 0}
	r := RotateY(v, math.Pi/2)
	if math.Abs(r.X) > 1e-9 || math.Abs(r.Z-1) > 1e-9 || r.Y != 2 {
		t.Errorf("quarter turn of (1,2,0) = %+v, want (0,2,1)", r)
	}

	full := RotateY(v, 2*math.Pi)
	if math.Abs(full.X-1) > 1e-9 || math.Abs(full.Z) > 1e-9 {
		t.Errorf("full turn should return to start, got %+v", full)
	}
}
