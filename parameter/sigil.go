package parameter

// Planar Sigil Geometry
const (
	// SigilRadiusFactor converts an icon edge in pixels to the generator radius
	SigilRadiusFactor = 0.42

	// SigilInnerRingFactor places the constellation inner ring (fraction of radius)
	SigilInnerRingFactor = 0.2

	// SigilSatelliteShare is the fraction of extra low-alpha satellites added
	// around a constellation (of BaseParticleCount)
	SigilSatelliteShare = 0.3

	// SigilSatelliteGlitchBoost multiplies glitch probability for satellites
	SigilSatelliteGlitchBoost = 2.0

	// SigilGridSpan is the lattice half-extent in cells for the grid pattern
	SigilGridSpan = 3

	// SigilGridFillChance is per-cell inclusion probability inside the lattice
	SigilGridFillChance = 0.5

	// SigilGridEdgeFillChance thins cells beyond SigilGridEdgeStart of the span
	SigilGridEdgeFillChance = 0.3
	SigilGridEdgeStart      = 0.9

	// SigilGridLineChance is the probability of a horizontal glitch line
	SigilGridLineChance = 0.12

	// SigilCrossBranchChance is per-arm-particle probability of a perpendicular offshoot
	SigilCrossBranchChance = 0.4

	// SigilSpiralTurns scales spiral sweep: angle = armOffset + SigilSpiralTurns·π·t
	SigilSpiralTurns = 1.5
)

// Glitch Displacement
const (
	// GlitchUnits is the maximum displacement in grid units
	GlitchUnits = 2

	// GlitchHorizontalBias skews displacement toward the X axis
	GlitchHorizontalBias = 0.7
)
