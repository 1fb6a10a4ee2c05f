package attractor

import (
	"fmt"
	"math"

	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/vmath"
)

// Config describes one point-cloud generation run
type Config struct {
	Type             Type
	PointCount       int
	Radius           float64
	Scale            float64
	WarmupIterations int
	Dt               float64
}

// DefaultConfig returns the standard run for a type
func DefaultConfig(t Type) Config {
	return Config{
		Type:             t,
		PointCount:       parameter.AttractorPointCount,
		Radius:           1,
		Scale:            1,
		WarmupIterations: parameter.AttractorWarmup,
		Dt:               parameter.AttractorDt,
	}
}

// Validate rejects configurations that would produce a degenerate or
// runaway cloud. Validation is expected once at configuration time, not
// per frame; generation itself never silently repairs bad input.
func (c Config) Validate() error {
	if c.Type < 0 || c.Type >= typeCount {
		return fmt.Errorf("attractor: invalid type %d", int(c.Type))
	}
	if c.Radius <= 0 {
		return fmt.Errorf("attractor: radius must be positive, got %v", c.Radius)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("attractor: scale must be positive, got %v", c.Scale)
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("attractor: warmup iterations must be non-negative, got %d", c.WarmupIterations)
	}
	if c.PointCount <= c.WarmupIterations {
		return fmt.Errorf("attractor: point count %d must exceed warmup iterations %d",
			c.PointCount, c.WarmupIterations)
	}
	if c.Dt <= 0 || c.Dt > parameter.AttractorDtMax {
		return fmt.Errorf("attractor: dt must be in (0,%v], got %v", parameter.AttractorDtMax, c.Dt)
	}
	return nil
}

// GeneratePoints integrates the configured attractor from the canonical
// start state and returns the raw (un-normalized) trajectory.
//
// NaN/∞ produced by an unstable configuration propagate into the output
// unrepaired so divergence stays diagnosable downstream.
func GeneratePoints(cfg Config) ([]vmath.Vec3F, error) {
	return GeneratePointsFrom(cfg, vmath.Vec3F{
		X: parameter.AttractorOriginX,
		Y: parameter.AttractorOriginY,
		Z: parameter.AttractorOriginZ,
	})
}

// GeneratePointsFrom integrates from an explicit start state. Offset
// starts yield different trajectories that settle onto the same
// attractor manifold.
func GeneratePointsFrom(cfg Config, start vmath.Vec3F) ([]vmath.Vec3F, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Type == Galaxy {
		return generateGalaxy(cfg), nil
	}

	points := make([]vmath.Vec3F, 0, cfg.PointCount)
	v := start
	total := cfg.WarmupIterations + cfg.PointCount
	for i := 0; i < total; i++ {
		d := cfg.Type.derivative(v)
		v = vmath.V3FAdd(v, vmath.V3FScale(d, cfg.Dt))
		if i >= cfg.WarmupIterations {
			points = append(points, v)
		}
	}
	return points, nil
}

// generateGalaxy emits a two-arm jittered spiral. Parametric, no
// integration; seeded from the point count so the cloud is a pure
// function of the configuration.
func generateGalaxy(cfg Config) []vmath.Vec3F {
	rng := vmath.NewSeedRand(uint32(cfg.PointCount))
	points := make([]vmath.Vec3F, 0, cfg.PointCount)

	for i := 0; i < cfg.PointCount; i++ {
		t := float64(i) * 0.01
		r := math.Sqrt(math.Mod(t, 10))
		armOffset := 0.0
		if i%2 == 1 {
			armOffset = math.Pi
		}
		angle := t*0.5 + armOffset + r*0.8 + rng.Range(-0.12, 0.12)
		points = append(points, vmath.Vec3F{
			X: r*math.Cos(angle) + rng.Range(-0.08, 0.08),
			Y: rng.Range(-0.15, 0.15) * (1 - r*0.25),
			Z: r*math.Sin(angle) + rng.Range(-0.08, 0.08),
		})
	}
	return points
}

// Normalize rescales a raw cloud to fit the requested extent: points
// are centered on the bounding-box midpoint and scaled so the longest
// axis spans 2·radius·scale. A fresh slice is returned.
func Normalize(points []vmath.Vec3F, radius, scale float64) []vmath.Vec3F {
	if len(points) == 0 {
		return nil
	}

	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		lo.Z = math.Min(lo.Z, p.Z)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		hi.Z = math.Max(hi.Z, p.Z)
	}

	rangeMax := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	if rangeMax == 0 {
		rangeMax = 1 // degenerate cloud, avoid divide-by-zero
	}
	factor := (radius * 2 * scale) / rangeMax

	center := vmath.Vec3F{
		X: (lo.X + hi.X) / 2,
		Y: (lo.Y + hi.Y) / 2,
		Z: (lo.Z + hi.Z) / 2,
	}

	out := make([]vmath.Vec3F, len(points))
	for i, p := range points {
		out[i] = vmath.V3FScale(vmath.V3FSub(p, center), factor)
	}
	return out
}
