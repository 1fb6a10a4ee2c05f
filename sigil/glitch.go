package sigil

import (
	"github.com/lixenwraith/sigilfield/vmath"
)

// ApplyGlitch is an optional post-process: each particle is displaced
// with the given probability by a grid-quantized, horizontally biased
// offset. The input slice is never mutated; the returned slice is a
// fresh copy with displaced particles marked.
func ApplyGlitch(ps []Particle, chance float64, rng *vmath.SeedRand) []Particle {
	out := make([]Particle, len(ps))
	copy(out, ps)
	for i := range out {
		maybeGlitch(rng, &out[i], chance)
	}
	return out
}
