package sigil

// Particle is one planar sigil particle in local, un-quantized
// coordinates. The renderer translates to screen space, adds the glitch
// offset, and floor-quantizes to the grid unit.
type Particle struct {
	X, Y    float64
	Size    float64
	Alpha   float64
	GlitchX float64
	GlitchY float64
	Glitch  bool
	Core    bool
}
