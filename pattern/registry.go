package pattern

import (
	"github.com/lixenwraith/sigilfield/vmath"
)

// Instance perturbation bounds: entity DNA stays recognizably related
// to its category DNA
const (
	perturbRotation = 0.25  // ± radians
	perturbSpread   = 0.075 // ± fraction
	perturbGlitch   = 0.025 // ± absolute probability
)

// presets holds the five built-in DNA records in selection order.
// The order is part of the determinism contract: hash(category) mod len
// indexes into it, so reordering re-skins every unmapped category.
var presets = [kindCount]DNA{
	Constellation: {
		Kind:              Constellation,
		BaseParticleCount: 26,
		Spread:            0.9,
		GlitchChance:      0.04,
		HasCore:           true,
		DensityFalloff:    1.0,
		ArmCount:          5,
	},
	Scatter: {
		Kind:              Scatter,
		BaseParticleCount: 34,
		Spread:            1.0,
		GlitchChance:      0.06,
		DensityFalloff:    1.6,
	},
	Grid: {
		Kind:              Grid,
		BaseParticleCount: 30,
		Spread:            0.85,
		GlitchChance:      0.08,
		HasCore:           true,
		DensityFalloff:    1.0,
	},
	Cross: {
		Kind:              Cross,
		BaseParticleCount: 24,
		Spread:            0.95,
		GlitchChance:      0.05,
		Rotation:          0.2,
		HasCore:           true,
		DensityFalloff:    1.0,
		ArmCount:          4,
	},
	Spiral: {
		Kind:              Spiral,
		BaseParticleCount: 40,
		Spread:            1.0,
		GlitchChance:      0.03,
		HasCore:           true,
		DensityFalloff:    1.2,
		ArmCount:          2,
	},
}

// categoryMap pins well-known categories to a specific pattern.
// Unmapped categories fall through to hash selection.
var categoryMap = map[string]Kind{
	"Starhaven Reaches": Constellation,
	"Drift Anomalies":   Scatter,
	"Lattice Holdings":  Grid,
	"Wayfarer Crossing": Cross,
	"Helix Foundries":   Spiral,
}

// Preset returns the built-in DNA for a kind
func Preset(k Kind) DNA {
	return presets[k]
}

// Resolve returns the category-level DNA: the explicit mapping when one
// exists, otherwise a preset selected by hashing the category name.
func Resolve(category string) DNA {
	if k, ok := categoryMap[category]; ok {
		return presets[k]
	}
	k := Kind(vmath.HashString(category) % uint32(kindCount))
	return presets[k]
}

// ResolveInstance derives entity-level DNA: the category DNA with one
// round of bounded perturbations seeded from the combined key. Same
// (category, instanceID) always yields the same record.
func ResolveInstance(category, instanceID string) DNA {
	dna := Resolve(category)
	if instanceID == "" {
		return dna
	}

	rng := vmath.NewKeyRand(category + ":" + instanceID)
	dna.Rotation += rng.Range(-perturbRotation, perturbRotation)
	dna.Spread *= 1 + rng.Range(-perturbSpread, perturbSpread)
	dna.GlitchChance += rng.Range(-perturbGlitch, perturbGlitch)
	if dna.GlitchChance < 0 {
		dna.GlitchChance = 0
	}
	return dna
}
