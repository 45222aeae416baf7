package main

import (
	"encoding/json"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/umn-earth-surface/gFlex/flex"
)

// config is the on-disk shape of a problem file, mirroring how
// inp.Simulation/inp.ReadSim load a teacher .sim file: a plain JSON
// document read once at startup and converted into the package's own
// strongly typed Problem.
type config struct {
	Dx           float64   `json:"dx"`
	E            float64   `json:"E"`
	Nu           float64   `json:"nu"`
	Drho         float64   `json:"drho"`
	G            float64   `json:"g"`
	Te           float64   `json:"te"`
	TeArray      []float64 `json:"teArray,omitempty"`
	Q            []float64 `json:"q"`
	XPoints      []float64 `json:"xPoints,omitempty"`
	West         string    `json:"west"`
	East         string    `json:"east"`
	Method       string    `json:"method"`
	AllowSandbox bool      `json:"allowSandbox,omitempty"`
}

// readConfig reads and parses a problem file, panicking on a malformed
// file the way inp.ReadSim does — this is a startup-time fatal error, not a
// solver error, so it does not go through flex's error kinds.
func readConfig(fnamepath string) config {
	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read problem file %q: %v", fnamepath, err)
	}
	var c config
	if err := json.Unmarshal(buf, &c); err != nil {
		chk.Panic("cannot parse problem file %q: %v", fnamepath, err)
	}
	return c
}

var bcNames = map[string]flex.BCKind{
	"dirichlet":          flex.Dirichlet,
	"dirichlet0neumann0": flex.Dirichlet0Neumann0,
	"periodic":           flex.Periodic,
	"mirror":             flex.Mirror,
	"symmetric":          flex.Symmetric,
	"0moment0shear":      flex.ZeroMomentZeroShear,
	"neumann":            flex.Neumann,
	"stewart1":           flex.Stewart1,
	"sandbox":            flex.Sandbox,
}

func parseBC(name string) flex.BC {
	kind, ok := bcNames[strings.ToLower(name)]
	if !ok {
		chk.Panic("unknown boundary condition %q", name)
	}
	return flex.BC{Kind: kind}
}

// toProblem converts a config into a flex.Problem, matching the shape (not
// the data) of fem.NewMain reading a .sim file into fem.Main's state.
func (c config) toProblem() flex.Problem {
	te := flex.ScalarThickness(c.Te)
	if len(c.TeArray) > 0 {
		te = flex.ArrayThickness(c.TeArray)
	}
	return flex.Problem{
		Constants:    flex.Constants{Drho: c.Drho, G: c.G, E: c.E, Nu: c.Nu},
		Grid:         flex.Grid{Dx: c.Dx, N: len(c.Q)},
		Q:            c.Q,
		Te:           te,
		West:         parseBC(c.West),
		East:         parseBC(c.East),
		Method:       strings.ToUpper(c.Method),
		XPoints:      c.XPoints,
		AllowSandbox: c.AllowSandbox,
	}
}
