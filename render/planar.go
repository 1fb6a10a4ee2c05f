package render

import (
	"math"

	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/sigil"
	"github.com/lixenwraith/sigilfield/vmath"
)

// Style carries the drawing parameters a catalog supplies alongside a
// particle list
type Style struct {
	Color            RGB
	Opacity          float64
	CenterX, CenterY int
}

// quantize floors v to the grid unit, the deliberate pixelation step
func quantize(v float64) float64 {
	return math.Floor(v/parameter.GridUnit) * parameter.GridUnit
}

// sigilRune picks the cell glyph for a planar particle
func sigilRune(p sigil.Particle) rune {
	switch {
	case p.Core:
		return '█'
	case p.Size >= 2:
		return '▓'
	case p.Glitch:
		return '▒'
	default:
		return '░'
	}
}

// DrawSigil rasterizes a planar sigil at time t (milliseconds of
// animation clock). Particle coordinates are translated into a local
// frame centered on (CenterX, CenterY), displaced by their glitch
// offset, and floor-quantized to the grid unit before drawing. Alpha
// breathes with a per-particle phase so the icon shimmers in place.
func DrawSigil(buf *Buffer, ps []sigil.Particle, style Style, t float64) {
	for i, p := range ps {
		qx := quantize(p.X + p.GlitchX)
		qy := quantize(p.Y + p.GlitchY)

		// Terminal cells are ~2x taller than wide; compress Y to keep
		// the sigil round
		cx := style.CenterX + int(math.Round(qx/parameter.GridUnit))
		cy := style.CenterY + int(math.Round(qy/parameter.GridUnit/parameter.CellAspect))

		phase := float64(i) * vmath.GoldenAngle
		breathe := 1 - parameter.BreatheDepth*(0.5+0.5*math.Sin(t*parameter.BreatheRate+phase))
		alpha := p.Alpha * breathe * style.Opacity
		if alpha <= 0 {
			continue
		}
		if alpha > 1 {
			alpha = 1
		}

		if p.Core {
			// Core draws larger: full cell plus dimmer shoulders
			buf.Set(cx, cy, sigilRune(p), style.Color, BlendAlpha, alpha)
			buf.Set(cx-1, cy, '▓', style.Color, BlendAdd, alpha*0.4)
			buf.Set(cx+1, cy, '▓', style.Color, BlendAdd, alpha*0.4)
			continue
		}
		buf.Set(cx, cy, sigilRune(p), style.Color, BlendAdd, alpha)
	}
}
