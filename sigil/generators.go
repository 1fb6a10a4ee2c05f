package sigil

import (
	"math"

	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/pattern"
	"github.com/lixenwraith/sigilfield/vmath"
)

// genConstellation builds a bright core, a tight inner ring, radiating
// arms, and a halo of dim satellites with doubled glitch odds.
func genConstellation(rng *vmath.SeedRand, dna pattern.DNA, radius float64) []Particle {
	ps := make([]Particle, 0, dna.BaseParticleCount+dna.BaseParticleCount/2)

	used := 0
	if dna.HasCore {
		ps = append(ps, Particle{Size: 3, Alpha: 1, Core: true})
		used++
	}

	// Inner ring: 4-6 particles at ~20% radius
	ring := 4 + rng.Intn(3)
	for i := 0; i < ring; i++ {
		angle := dna.Rotation + float64(i)*2*math.Pi/float64(ring) + rng.Range(-0.2, 0.2)
		dist := radius * parameter.SigilInnerRingFactor * rng.Range(0.8, 1.2)
		p := Particle{
			X:     math.Cos(angle) * dist,
			Y:     math.Sin(angle) * dist,
			Size:  2,
			Alpha: clampAlpha(rng.Range(0.7, 0.95)),
		}
		maybeGlitch(rng, &p, dna.GlitchChance)
		ps = append(ps, p)
	}
	used += ring

	// Radiating arms split the remaining base budget; distance grows and
	// alpha falls toward the arm tip
	arms := dna.ArmCount
	if arms < 1 {
		arms = 1
	}
	remaining := dna.BaseParticleCount - used
	if remaining < arms {
		remaining = arms
	}
	perArm := remaining / arms
	for a := 0; a < arms; a++ {
		armAngle := dna.Rotation + float64(a)*2*math.Pi/float64(arms)
		for j := 1; j <= perArm; j++ {
			t := float64(j) / float64(perArm)
			angle := armAngle + rng.Range(-0.15, 0.15)
			dist := radius * dna.Spread * (0.3 + 0.7*t)
			p := Particle{
				X:     math.Cos(angle) * dist,
				Y:     math.Sin(angle) * dist,
				Size:  2 - t,
				Alpha: clampAlpha(0.9 * (1 - 0.55*t)),
			}
			maybeGlitch(rng, &p, dna.GlitchChance)
			ps = append(ps, p)
		}
	}

	// Rim satellites, low alpha, doubled glitch probability
	sats := int(math.Round(float64(dna.BaseParticleCount) * parameter.SigilSatelliteShare))
	for i := 0; i < sats; i++ {
		angle := rng.Angle()
		dist := radius * dna.Spread * rng.Range(0.6, 1.0)
		p := Particle{
			X:     math.Cos(angle) * dist,
			Y:     math.Sin(angle) * dist,
			Size:  1,
			Alpha: clampAlpha(rng.Range(0.1, 0.35)),
		}
		maybeGlitch(rng, &p, dna.GlitchChance*parameter.SigilSatelliteGlitchBoost)
		ps = append(ps, p)
	}
	return ps
}

// genScatter distributes particles at golden-angle steps with a radial
// density falloff, then sprinkles a few tight secondary clusters.
func genScatter(rng *vmath.SeedRand, dna pattern.DNA, radius float64) []Particle {
	ps := make([]Particle, 0, dna.BaseParticleCount+16)

	for i := 0; i < dna.BaseParticleCount; i++ {
		angle := dna.Rotation + float64(i)*vmath.GoldenAngle
		u := rng.Float64()
		dist := radius * dna.Spread * math.Pow(u, dna.DensityFalloff)
		p := Particle{
			X:     math.Cos(angle) * dist,
			Y:     math.Sin(angle) * dist,
			Size:  1 + rng.Float64(),
			Alpha: clampAlpha(rng.Range(0.3, 0.85)),
		}
		maybeGlitch(rng, &p, dna.GlitchChance)
		ps = append(ps, p)
	}

	// Secondary clusters: 2-4 centers, each with 2-4 tight satellites
	clusters := 2 + rng.Intn(3)
	for c := 0; c < clusters; c++ {
		cAngle := rng.Angle()
		cDist := radius * dna.Spread * rng.Range(0.3, 0.8)
		cx := math.Cos(cAngle) * cDist
		cy := math.Sin(cAngle) * cDist

		members := 2 + rng.Intn(3)
		for m := 0; m < members; m++ {
			p := Particle{
				X:     cx + rng.Range(-1, 1)*radius*0.08,
				Y:     cy + rng.Range(-1, 1)*radius*0.08,
				Size:  1,
				Alpha: clampAlpha(rng.Range(0.25, 0.6)),
			}
			maybeGlitch(rng, &p, dna.GlitchChance)
			ps = append(ps, p)
		}
	}
	return ps
}

// genGrid fills a ±span lattice at 50% density, thinned at the edge,
// with occasional horizontal glitch lines.
func genGrid(rng *vmath.SeedRand, dna pattern.DNA, radius float64) []Particle {
	const span = parameter.SigilGridSpan
	cell := radius * dna.Spread / span

	ps := make([]Particle, 0, dna.BaseParticleCount+8)
	if dna.HasCore {
		ps = append(ps, Particle{Size: 3, Alpha: 1, Core: true})
	}

	for gy := -span; gy <= span; gy++ {
		for gx := -span; gx <= span; gx++ {
			if gx == 0 && gy == 0 && dna.HasCore {
				continue
			}
			frac := math.Max(math.Abs(float64(gx)), math.Abs(float64(gy))) / span
			chance := parameter.SigilGridFillChance
			if frac > parameter.SigilGridEdgeStart {
				chance = parameter.SigilGridEdgeFillChance
			}
			if !rng.Chance(chance) {
				continue
			}
			p := Particle{
				X:     float64(gx) * cell,
				Y:     float64(gy) * cell,
				Size:  2,
				Alpha: clampAlpha(rng.Range(0.4, 0.9)),
			}
			maybeGlitch(rng, &p, dna.GlitchChance)
			ps = append(ps, p)
		}
	}

	// Rare horizontal glitch line: a short run of displaced points
	if rng.Chance(parameter.SigilGridLineChance) {
		gy := rng.Intn(2*span+1) - span
		count := 3 + rng.Intn(3)
		startX := rng.Range(-1, 0) * radius * dna.Spread
		for i := 0; i < count; i++ {
			ps = append(ps, Particle{
				X:      startX + float64(i)*parameter.GridUnit*2,
				Y:      float64(gy) * cell,
				Size:   1,
				Alpha:  clampAlpha(rng.Range(0.2, 0.5)),
				Glitch: true,
			})
		}
	}
	return ps
}

// genCross lays straight arms with evenly spaced particles whose alpha
// decreases outward; arm particles may sprout perpendicular offshoots.
func genCross(rng *vmath.SeedRand, dna pattern.DNA, radius float64) []Particle {
	arms := dna.ArmCount
	if arms < 2 {
		arms = 2
	}
	perArm := dna.BaseParticleCount / arms
	if perArm < 2 {
		perArm = 2
	}

	ps := make([]Particle, 0, dna.BaseParticleCount*2)
	if dna.HasCore {
		ps = append(ps, Particle{Size: 3, Alpha: 1, Core: true})
	}

	for a := 0; a < arms; a++ {
		armAngle := dna.Rotation + float64(a)*2*math.Pi/float64(arms)
		dirX, dirY := math.Cos(armAngle), math.Sin(armAngle)

		for j := 1; j <= perArm; j++ {
			t := float64(j) / float64(perArm)
			dist := radius * dna.Spread * t
			p := Particle{
				X:     dirX * dist,
				Y:     dirY * dist,
				Size:  2,
				Alpha: clampAlpha(1 - 0.7*t),
			}
			maybeGlitch(rng, &p, dna.GlitchChance)
			ps = append(ps, p)

			// Perpendicular offshoot
			if rng.Chance(parameter.SigilCrossBranchChance) {
				side := 1.0
				if rng.Chance(0.5) {
					side = -1.0
				}
				off := rng.Range(0.5, 1.5) * parameter.GridUnit * 2
				branch := Particle{
					X:     p.X - dirY*off*side,
					Y:     p.Y + dirX*off*side,
					Size:  1,
					Alpha: clampAlpha(p.Alpha * 0.6),
				}
				maybeGlitch(rng, &branch, dna.GlitchChance)
				ps = append(ps, branch)
			}
		}
	}
	return ps
}

// genSpiral winds arms with radius growing as t^(1/φ) and size/alpha
// thinning toward the tail.
func genSpiral(rng *vmath.SeedRand, dna pattern.DNA, radius float64) []Particle {
	arms := dna.ArmCount
	if arms < 1 {
		arms = 1
	}
	perArm := dna.BaseParticleCount / arms
	if perArm < 3 {
		perArm = 3
	}

	ps := make([]Particle, 0, dna.BaseParticleCount+1)
	if dna.HasCore {
		ps = append(ps, Particle{Size: 3, Alpha: 1, Core: true})
	}

	for a := 0; a < arms; a++ {
		armOffset := dna.Rotation + float64(a)*2*math.Pi/float64(arms)
		for j := 1; j <= perArm; j++ {
			t := float64(j) / float64(perArm)
			dist := radius * dna.Spread * math.Pow(t, 1/vmath.Phi)
			angle := armOffset + parameter.SigilSpiralTurns*math.Pi*t
			p := Particle{
				X:     math.Cos(angle) * dist,
				Y:     math.Sin(angle) * dist,
				Size:  2 - t,
				Alpha: clampAlpha(0.95 * (1 - 0.65*t)),
			}
			maybeGlitch(rng, &p, dna.GlitchChance)
			ps = append(ps, p)
		}
	}
	return ps
}
