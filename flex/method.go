package flex

import (
	"time"

	"github.com/cpmech/gosl/io"
)

// Problem is a fully specified flexure problem: grid, constants, load,
// plate thickness, boundary conditions, and which solution method to use.
type Problem struct {
	Constants
	Grid
	Q            []float64
	Te           Thickness
	West, East   BC
	Method       string    // "FD", "SPA", "SPA_NG", "FFT"
	XPoints      []float64 // SPA_NG only: x-coordinate of each (x,q) pair
	AllowSandbox bool
}

// Solve dispatches to the requested method, matching F1D.run's FD/FFT/SPA/
// SPA_NG switch in f1d.py.
func Solve(p Problem) ([]float64, Timings, error) {
	switch p.Method {
	case "FD":
		return solveFDTimed(p)
	case "SPA":
		t0 := time.Now()
		w, err := SolveSPA(p.Constants, p.Dx, p.Q, p.Te)
		if err != nil {
			return nil, Timings{}, err
		}
		return w, Timings{Solve: time.Since(t0)}, nil
	case "SPA_NG":
		t0 := time.Now()
		w, err := SolveSPANG(p.Constants, p.Te, p.XPoints, p.Q)
		if err != nil {
			return nil, Timings{}, err
		}
		return w, Timings{Solve: time.Since(t0)}, nil
	case "FFT":
		return nil, Timings{}, SolveFFT()
	default:
		return nil, Timings{}, fail(ErrInvalidMethod, "unknown method %q (want FD, SPA, SPA_NG or FFT)", p.Method)
	}
}

// solveFDTimed times the whole SolveFD call and reports it as Timings.Solve.
// Timings.Assemble stays zero: SolveFD does not expose operator construction
// separately from the factor-and-solve step.
func solveFDTimed(p Problem) ([]float64, Timings, error) {
	t0 := time.Now()
	w, err := SolveFD(p)
	if err != nil {
		return nil, Timings{}, err
	}
	return w, Timings{Solve: time.Since(t0)}, nil
}

// SolveFD runs the finite-difference assembly and solve path. If either
// side selects Mirror, the problem is padded outward by the maximum
// flexural wavelength on that side, solved on the padded grid with the
// resolved edge boundary conditions, and un-padded before returning.
func SolveFD(p Problem) ([]float64, error) {
	west, east := p.West, p.East

	// Periodic<->Mirror promotion (spec.md §4.4): a lone Periodic paired
	// with Mirror has no physical meaning on its own side, so both sides
	// are promoted to Mirror before proceeding.
	if west.Kind == Periodic && east.Kind == Mirror {
		io.Pfyel("warning: West=Periodic paired with East=Mirror; promoting West to Mirror\n")
		west = BC{Kind: Mirror}
	} else if east.Kind == Periodic && west.Kind == Mirror {
		io.Pfyel("warning: East=Periodic paired with West=Mirror; promoting East to Mirror\n")
		east = BC{Kind: Mirror}
	}

	if west.Kind != Mirror && east.Kind != Mirror {
		return solveFDCore(p)
	}

	plan, err := PrepareMirror(west, east, p.Q, p.Te, p.Dx, p.Constants)
	if err != nil {
		return nil, err
	}
	sub := Problem{
		Constants:    p.Constants,
		Grid:         Grid{Dx: p.Dx, N: len(plan.Q)},
		Q:            plan.Q,
		Te:           plan.Te,
		West:         plan.West,
		East:         plan.East,
		Method:       p.Method,
		AllowSandbox: p.AllowSandbox,
	}
	wPadded, err := solveFDCore(sub)
	if err != nil {
		return nil, err
	}
	return Unpad(wPadded, plan.NPadWest, plan.NPadEast), nil
}
