package flex

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Rigidity computes flexural rigidity D = E·Te³ / (12·(1−ν²)).
func Rigidity(e, te, nu float64) float64 {
	return e * te * te * te / (12 * (1 - nu*nu))
}

// RigidityArray computes D elementwise for a gridded Te.
func RigidityArray(e float64, te []float64, nu float64) []float64 {
	d := make([]float64, len(te))
	for i, t := range te {
		d[i] = Rigidity(e, t, nu)
	}
	return d
}

// Dx4 returns Δx⁴ after checking Δx is a usable cell spacing.
func Dx4(dx float64) (float64, error) {
	if dx <= 0 {
		return 0, fail(ErrDegenerateGeometry, "Δx must be positive, got %v", dx)
	}
	return dx * dx * dx * dx, nil
}

// FlexuralParameter returns α = (4D/(Δρg))^(1/4), the characteristic decay
// length of the flexural response.
func FlexuralParameter(d, drho, g float64) float64 {
	return math.Pow(4*d/(drho*g), 0.25)
}

// FlexuralWavelength returns λ = 2πα.
func FlexuralWavelength(d, drho, g float64) float64 {
	return 2 * math.Pi * FlexuralParameter(d, drho, g)
}

// Prms returns the constants as a named parameter list, in the style
// msolid/onedlinelast.go exposes its material constants.
func (c Constants) Prms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "Drho", V: c.Drho},
		&fun.Prm{N: "G", V: c.G},
		&fun.Prm{N: "E", V: c.E},
		&fun.Prm{N: "Nu", V: c.Nu},
	}
}

// SetPrms loads the constants from a named parameter list, matching
// msolid/onedlinelast.go's Init parameter-loading switch.
func (c *Constants) SetPrms(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "Drho":
			c.Drho = p.V
		case "G":
			c.G = p.V
		case "E":
			c.E = p.V
		case "Nu":
			c.Nu = p.V
		default:
			return chk.Err("unknown constant parameter %q", p.N)
		}
	}
	if c.G <= 0 || c.E <= 0 {
		return chk.Err("E and G must be positive (E=%v, G=%v)", c.E, c.G)
	}
	return nil
}
