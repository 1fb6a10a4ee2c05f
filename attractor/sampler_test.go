package attractor

import (
	"math"
	"testing"

	"github.com/lixenwraith/sigilfield/parameter"
)

func TestParticleSystemCountConservation(t *testing.T) {
	c := NewCache()
	ps, err := NewParticleSystem(c, Lorenz, 1000, 0.2, 120, 1, DefaultSamplerParams())
	if err != nil {
		t.Fatalf("sample: %v", err)
	}

	if len(ps) != 1000 {
		t.Fatalf("got %d particles, want exactly 1000", len(ps))
	}
	cores := 0
	for _, p := range ps {
		if p.IsCore {
			cores++
		}
	}
	if cores != 200 {
		t.Errorf("got %d core particles, want floor(1000·0.2)=200", cores)
	}
}

func TestParticleSystemDeterminism(t *testing.T) {
	a, err := NewParticleSystem(NewCache(), Halvorsen, 600, 0.25, 100, 1, DefaultSamplerParams())
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	b, err := NewParticleSystem(NewCache(), Halvorsen, 600, 0.25, 100, 1, DefaultSamplerParams())
	if err != nil {
		t.Fatalf("sample: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs across independent caches: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestParticleSystemTierProperties(t *testing.T) {
	params := DefaultSamplerParams()
	ps, err := NewParticleSystem(NewCache(), Aizawa, 800, 0.3, 100, 1, params)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}

	for i, p := range ps {
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Fatalf("particle %d phase %v outside [0,2π)", i, p.Phase)
		}
		if p.IsCore {
			if p.Alpha < params.CoreAlphaMin || p.Alpha >= params.CoreAlphaMax {
				t.Fatalf("core %d alpha %v outside [%v,%v)", i, p.Alpha, params.CoreAlphaMin, params.CoreAlphaMax)
			}
			if p.Size != params.CoreSize {
				t.Fatalf("core %d size %v, want %v", i, p.Size, params.CoreSize)
			}
		} else {
			if p.Alpha < params.NebulaAlphaMin || p.Alpha >= params.NebulaAlphaMax {
				t.Fatalf("nebula %d alpha %v outside [%v,%v)", i, p.Alpha, params.NebulaAlphaMin, params.NebulaAlphaMax)
			}
			if p.Size != params.NebulaSize {
				t.Fatalf("nebula %d size %v, want %v", i, p.Size, params.NebulaSize)
			}
		}
	}
}

// Jittered particles stay within the cloud extent plus the jitter spread
func TestParticleSystemJitterBounds(t *testing.T) {
	radius, scale := 100.0, 1.0
	ps, err := NewParticleSystem(NewCache(), Galaxy, 500, 0.2, radius, scale, DefaultSamplerParams())
	if err != nil {
		t.Fatalf("sample: %v", err)
	}

	limit := radius*scale + parameter.SamplerNebulaJitter*parameter.SamplerJitterSpread
	for i, p := range ps {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if math.Abs(v) > limit {
				t.Fatalf("particle %d coordinate %v beyond extent+jitter %v", i, v, limit)
			}
		}
	}
}

func TestParticleSystemValidation(t *testing.T) {
	c := NewCache()
	if _, err := NewParticleSystem(c, Lorenz, 0, 0.2, 100, 1, DefaultSamplerParams()); err == nil {
		t.Error("zero count should error")
	}
	if _, err := NewParticleSystem(c, Lorenz, 100, 1.5, 100, 1, DefaultSamplerParams()); err == nil {
		t.Error("core ratio above 1 should error")
	}
	if _, err := NewParticleSystem(c, Lorenz, 100, -0.1, 100, 1, DefaultSamplerParams()); err == nil {
		t.Error("negative core ratio should error")
	}
	if _, err := NewParticleSystem(c, Lorenz, 100, 0.2, -1, 1, DefaultSamplerParams()); err == nil {
		t.Error("invalid radius should propagate from generation")
	}
}
