package attractor

import (
	"fmt"
	"math"

	"github.com/lixenwraith/sigilfield/vmath"
)

// Type identifies one of the built-in attractor equation sets
type Type int

const (
	Lorenz Type = iota
	Thomas
	Halvorsen
	Aizawa
	Sprott
	Rossler
	Dadras
	Galaxy

	typeCount
)

// Published equation constants. Chosen (with the default dt) for
// empirically stable, visually dense trajectories; the integrator
// applies no runtime stability correction.
const (
	lorenzSigma = 10.0
	lorenzRho   = 28.0
	lorenzBeta  = 8.0 / 3.0

	thomasB = 0.208186

	halvorsenA = 1.89

	aizawaA = 0.95
	aizawaB = 0.7
	aizawaC = 0.6
	aizawaD = 3.5
	aizawaE = 0.25
	aizawaF = 0.1

	sprottA = 0.4
	sprottB = 1.2

	rosslerA = 0.2
	rosslerB = 0.2
	rosslerC = 5.7

	dadrasP = 3.0
	dadrasQ = 2.7
	dadrasR = 1.7
	dadrasS = 2.0
	dadrasE = 9.0
)

// String returns the lowercase type name
func (t Type) String() string {
	switch t {
	case Lorenz:
		return "lorenz"
	case Thomas:
		return "thomas"
	case Halvorsen:
		return "halvorsen"
	case Aizawa:
		return "aizawa"
	case Sprott:
		return "sprott"
	case Rossler:
		return "rossler"
	case Dadras:
		return "dadras"
	case Galaxy:
		return "galaxy"
	}
	return "unknown"
}

// ParseType resolves a lowercase type name
func ParseType(name string) (Type, error) {
	for t := Lorenz; t < typeCount; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown attractor type %q", name)
}

// Next cycles to the following type, wrapping at the end
func (t Type) Next() Type {
	return (t + 1) % typeCount
}

// derivative evaluates the ODE right-hand side at state v.
// Galaxy is parametric, not an ODE; it never reaches here.
func (t Type) derivative(v vmath.Vec3F) vmath.Vec3F {
	x, y, z := v.X, v.Y, v.Z
	switch t {
	case Lorenz:
		return vmath.Vec3F{
			X: lorenzSigma * (y - x),
			Y: x*(lorenzRho-z) - y,
			Z: x*y - lorenzBeta*z,
		}
	case Thomas:
		return vmath.Vec3F{
			X: math.Sin(y) - thomasB*x,
			Y: math.Sin(z) - thomasB*y,
			Z: math.Sin(x) - thomasB*z,
		}
	case Halvorsen:
		return vmath.Vec3F{
			X: -halvorsenA*x - 4*y - 4*z - y*y,
			Y: -halvorsenA*y - 4*z - 4*x - z*z,
			Z: -halvorsenA*z - 4*x - 4*y - x*x,
		}
	case Aizawa:
		return vmath.Vec3F{
			X: (z-aizawaB)*x - aizawaD*y,
			Y: aizawaD*x + (z-aizawaB)*y,
			Z: aizawaC + aizawaA*z - (z*z*z)/3 -
				(x*x+y*y)*(1+aizawaE*z) + aizawaF*z*x*x*x,
		}
	case Sprott:
		return vmath.Vec3F{
			X: y + sprottA*x*y + x*z,
			Y: 1 - sprottB*x*x + y*z,
			Z: x - x*x - y*y,
		}
	case Rossler:
		return vmath.Vec3F{
			X: -y - z,
			Y: x + rosslerA*y,
			Z: rosslerB + z*(x-rosslerC),
		}
	case Dadras:
		return vmath.Vec3F{
			X: y - dadrasP*x + dadrasQ*y*z,
			Y: dadrasR*y - x*z + z,
			Z: dadrasS*x*y - dadrasE*z,
		}
	}
	return vmath.Vec3F{}
}
