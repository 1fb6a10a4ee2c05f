package parameter

// Attractor Integration
const (
	// AttractorDt is the default Euler step; empirically stable for every
	// built-in equation set, no runtime stability correction is performed
	AttractorDt = 0.005

	// AttractorDtMax bounds user overrides of the integration step
	AttractorDtMax = 0.1

	// AttractorWarmup is the default transient-settling iteration count
	AttractorWarmup = 500

	// AttractorPointCount is the default recorded trajectory length
	AttractorPointCount = 2000

	// AttractorOriginX/Y/Z is the canonical integration start point.
	// Deliberately off the x=y=z diagonal: Halvorsen's equations keep a
	// symmetric start pinned to the diagonal, which decays to a line
	AttractorOriginX = 0.1
	AttractorOriginY = 0.11
	AttractorOriginZ = 0.12
)

// Volumetric Particle Sampling
const (
	// SamplerCoreJitter / SamplerNebulaJitter are the per-axis jitter
	// magnitudes; actual offset is uniform within ±1.5× these
	SamplerCoreJitter   = 3.0
	SamplerNebulaJitter = 8.0

	// SamplerJitterSpread widens jitter to ±1.5× the magnitude
	SamplerJitterSpread = 1.5

	// Core particles: bright and large
	SamplerCoreAlphaMin = 0.6
	SamplerCoreAlphaMax = 0.9
	SamplerCoreSize     = 3.0

	// Nebula particles: dim haze
	SamplerNebulaAlphaMin = 0.15
	SamplerNebulaAlphaMax = 0.4
	SamplerNebulaSize     = 2.0
)
