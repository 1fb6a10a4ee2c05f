package attractor

import (
	"fmt"

	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/vmath"
)

// Particle is one volumetric particle sampled from a normalized cloud
type Particle struct {
	X, Y, Z float64
	IsCore  bool
	Alpha   float64
	Phase   float64 // breathing phase in [0,2π)
	Size    float64
}

// SamplerParams carries the jitter/alpha/size tunables for the two
// particle tiers. Defaults reproduce the shipped look; they are
// parameters rather than hard constants pending product settling.
type SamplerParams struct {
	CoreJitter     float64
	NebulaJitter   float64
	CoreAlphaMin   float64
	CoreAlphaMax   float64
	NebulaAlphaMin float64
	NebulaAlphaMax float64
	CoreSize       float64
	NebulaSize     float64
}

// DefaultSamplerParams returns the standard two-tier look
func DefaultSamplerParams() SamplerParams {
	return SamplerParams{
		CoreJitter:     parameter.SamplerCoreJitter,
		NebulaJitter:   parameter.SamplerNebulaJitter,
		CoreAlphaMin:   parameter.SamplerCoreAlphaMin,
		CoreAlphaMax:   parameter.SamplerCoreAlphaMax,
		NebulaAlphaMin: parameter.SamplerNebulaAlphaMin,
		NebulaAlphaMax: parameter.SamplerNebulaAlphaMax,
		CoreSize:       parameter.SamplerCoreSize,
		NebulaSize:     parameter.SamplerNebulaSize,
	}
}

// NewParticleSystem samples totalCount particles from the cached cloud
// for the type: floor(totalCount·coreRatio) tight bright cores, the
// rest loose dim nebula haze. The random stream is derived from the
// configuration key, so equal arguments always produce the identical
// system regardless of caller or call order.
func NewParticleSystem(cache *Cache, typ Type, totalCount int, coreRatio float64,
	radius, scale float64, params SamplerParams) ([]Particle, error) {

	if totalCount <= 0 {
		return nil, fmt.Errorf("attractor: particle count must be positive, got %d", totalCount)
	}
	if coreRatio < 0 || coreRatio > 1 {
		return nil, fmt.Errorf("attractor: core ratio must be in [0,1], got %v", coreRatio)
	}

	cloud, err := cache.Points(typ, parameter.AttractorPointCount, radius, scale)
	if err != nil {
		return nil, err
	}

	rng := vmath.NewKeyRand(fmt.Sprintf("%s/%d/%g/%g/%g", typ, totalCount, coreRatio, radius, scale))

	coreCount := int(float64(totalCount) * coreRatio)
	particles := make([]Particle, 0, totalCount)
	for i := 0; i < totalCount; i++ {
		isCore := i < coreCount

		jitter := params.NebulaJitter
		alphaMin, alphaMax := params.NebulaAlphaMin, params.NebulaAlphaMax
		size := params.NebulaSize
		if isCore {
			jitter = params.CoreJitter
			alphaMin, alphaMax = params.CoreAlphaMin, params.CoreAlphaMax
			size = params.CoreSize
		}

		src := cloud[rng.Intn(len(cloud))]
		spread := jitter * parameter.SamplerJitterSpread
		particles = append(particles, Particle{
			X:      src.X + rng.Range(-spread, spread),
			Y:      src.Y + rng.Range(-spread, spread),
			Z:      src.Z + rng.Range(-spread, spread),
			IsCore: isCore,
			Alpha:  rng.Range(alphaMin, alphaMax),
			Phase:  rng.Angle(),
			Size:   size,
		})
	}
	return particles, nil
}
