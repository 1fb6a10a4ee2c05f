package pattern

// Kind selects one of the planar generator algorithms
type Kind int

const (
	Constellation Kind = iota
	Scatter
	Grid
	Cross
	Spiral

	kindCount
)

// String returns the lowercase generator name
func (k Kind) String() string {
	switch k {
	case Constellation:
		return "constellation"
	case Scatter:
		return "scatter"
	case Grid:
		return "grid"
	case Cross:
		return "cross"
	case Spiral:
		return "spiral"
	}
	return "unknown"
}

// DNA is the immutable parameter record controlling a planar generator's
// geometry and stochastic behavior. Values are copied, never shared;
// resolution functions return fresh records.
type DNA struct {
	Kind              Kind
	BaseParticleCount int
	Spread            float64 // radial extent as a fraction of the target radius
	GlitchChance      float64 // per-particle displacement probability
	Rotation          float64 // base orientation in radians
	HasCore           bool    // bright particle at local origin
	DensityFalloff    float64 // radial density exponent (higher = center-heavy)
	ArmCount          int     // radiating/spiral arm count where applicable
}
