package sigil

import (
	"math"

	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/pattern"
	"github.com/lixenwraith/sigilfield/vmath"
)

// Generate produces the planar sigil for a key. Pure and deterministic:
// the same (category, instanceID, sizePx) always yields the identical
// particle list, in the identical order.
//
// instanceID may be empty for a bare category sigil. sizePx is the icon
// edge in pixels; the particle cloud fits a radius derived from it.
func Generate(category, instanceID string, sizePx float64) []Particle {
	dna := pattern.ResolveInstance(category, instanceID)

	key := category
	if instanceID != "" {
		key = category + ":" + instanceID
	}
	rng := vmath.NewKeyRand(key)

	radius := sizePx * parameter.SigilRadiusFactor
	return FromDNA(rng, dna, radius)
}

// FromDNA runs the generator selected by the DNA kind. Exposed for
// callers that resolve or construct DNA themselves.
func FromDNA(rng *vmath.SeedRand, dna pattern.DNA, radius float64) []Particle {
	switch dna.Kind {
	case pattern.Constellation:
		return genConstellation(rng, dna, radius)
	case pattern.Scatter:
		return genScatter(rng, dna, radius)
	case pattern.Grid:
		return genGrid(rng, dna, radius)
	case pattern.Cross:
		return genCross(rng, dna, radius)
	case pattern.Spiral:
		return genSpiral(rng, dna, radius)
	}
	return nil
}

// clampAlpha keeps alpha in (0,1]
func clampAlpha(a float64) float64 {
	if a > 1 {
		return 1
	}
	if a < 0.01 {
		return 0.01
	}
	return a
}

// snap floors v to the grid unit, preserving sign direction toward -inf
func snap(v float64) float64 {
	return math.Floor(v/parameter.GridUnit) * parameter.GridUnit
}

// maybeGlitch marks a particle displaced with probability chance.
// The offset is grid-quantized and horizontally biased.
func maybeGlitch(rng *vmath.SeedRand, p *Particle, chance float64) {
	if !rng.Chance(chance) {
		return
	}
	span := float64(parameter.GlitchUnits) * parameter.GridUnit
	p.GlitchX = snap(rng.Range(-span, span+parameter.GridUnit))
	p.GlitchY = snap(rng.Range(-span, span+parameter.GridUnit) * (1 - parameter.GlitchHorizontalBias))
	p.Glitch = true
}
