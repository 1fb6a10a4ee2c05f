package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/sigilfield/attractor"
	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/vmath"
)

// projected is one volumetric particle after rotation and projection
type projected struct {
	sx, sy int
	depth  float64
	alpha  float64
	isCore bool
}

// depthFade linearly dims particles receding behind the pivot plane,
// floored so distant haze never fully vanishes
func depthFade(z float64) float64 {
	if z <= 0 {
		return 1
	}
	f := 1 - (z/parameter.DepthFadeRange)*(1-parameter.DepthFadeFloor)
	if f < parameter.DepthFadeFloor {
		return parameter.DepthFadeFloor
	}
	return f
}

// proximityBoost brightens particles swinging toward the viewpoint,
// up to +80%
func proximityBoost(z float64) float64 {
	if z >= 0 {
		return 1
	}
	t := -z / parameter.ProximityRange
	if t > 1 {
		t = 1
	}
	return 1 + parameter.ProximityBoostMax*t
}

// nebulaRune picks the cell glyph for a projected particle
func nebulaRune(p projected) rune {
	switch {
	case p.isCore:
		return '█'
	case p.alpha > 0.45:
		return '▓'
	case p.alpha > 0.2:
		return '▒'
	default:
		return '░'
	}
}

// DrawNebula renders a rotating volumetric particle field at time t
// (milliseconds of animation clock). Particles rotate about the
// vertical axis at the fixed rotation speed, are perspective-projected
// with scale = focal/(focal+z), then painter-sorted far to near.
// Particles behind the viewpoint or outside the viewport margin are
// culled before drawing.
func DrawNebula(buf *Buffer, ps []attractor.Particle, style Style, t float64) {
	width, height := buf.Size()
	angle := t * parameter.RotationSpeed

	projs := make([]projected, 0, len(ps))
	for _, p := range ps {
		v := vmath.RotateY(vmath.Vec3F{X: p.X, Y: p.Y, Z: p.Z}, angle)

		denom := parameter.FocalLength + v.Z
		if denom < 1 {
			continue // behind the viewpoint
		}
		scale := parameter.FocalLength / denom

		sx := style.CenterX + int(math.Round(v.X*scale*parameter.CellAspect))
		sy := style.CenterY + int(math.Round(v.Y*scale))
		if sx < -parameter.CullMargin || sx >= width+parameter.CullMargin ||
			sy < -parameter.CullMargin || sy >= height+parameter.CullMargin {
			continue
		}

		breathe := 0.8 + 0.2*math.Sin(t*parameter.BreatheRate+p.Phase)
		alpha := p.Alpha * depthFade(v.Z) * breathe * proximityBoost(v.Z) * style.Opacity
		if alpha <= 0.02 {
			continue
		}
		if alpha > 1 {
			alpha = 1
		}

		projs = append(projs, projected{
			sx:     sx,
			sy:     sy,
			depth:  v.Z,
			alpha:  alpha,
			isCore: p.IsCore,
		})
	}

	// Painter's algorithm: far to near
	sort.Slice(projs, func(i, j int) bool {
		return projs[i].depth > projs[j].depth
	})

	for _, pr := range projs {
		mode := BlendAdd
		if pr.isCore {
			mode = BlendAlpha
		}
		buf.Set(pr.sx, pr.sy, nebulaRune(pr), style.Color, mode, pr.alpha)
	}
}
