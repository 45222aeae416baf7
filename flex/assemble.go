package flex

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Column offsets of the five central-stencil entries relative to their row.
// The original source rolls each diagonal array before handing it to
// scipy.sparse.spdiags, which expects diagonal data pre-shifted into its own
// column-start storage convention. github.com/cpmech/gosl/la.Triplet takes
// (row, col, value) triples directly, so that repacking has no equivalent
// here — each coefficient is placed at its natural (row, row+offset).
const (
	offL2 = -2
	offL1 = -1
	offC0 = 0
	offR1 = 1
	offR2 = 2
)

// assemble packs Diagonals into a sparse (row, col, value) operator.
// periodic wraps column indices modulo n instead of dropping them — the
// same per-row five entries, just landing on the opposite edge, which is
// the natural gosl.Triplet equivalent of the extra {±(n-2),±(n-1)} wrap
// diagonals the original source needs for scipy's fixed-diagonal-set
// storage. A coefficient whose (unwrapped) column falls outside [0,n) is
// dropped rather than packed, which is what a Dirichlet-style edge means:
// the ghost value is taken as absent, not folded back in. A coefficient
// whose column IS on-grid but was left NaN by an incomplete boundary
// rewrite is a programmer error, never a silent zero (invariant I2).
func assemble(diag *Diagonals, periodic bool) (*la.Triplet, error) {
	n := diag.n()
	if n < 5 {
		return nil, fail(ErrDegenerateGeometry, "grid must have at least 5 cells, got %d", n)
	}
	t := new(la.Triplet)
	t.Init(n, n, 5*n)

	put := func(i, off int, v float64) error {
		j := i + off
		if periodic {
			j = ((j % n) + n) % n
		} else if j < 0 || j >= n {
			return nil
		}
		if math.IsNaN(v) {
			return fail(ErrPoisonedStencil, "row %d column %d carries an unresolved coefficient", i, j)
		}
		t.Put(i, j, v)
		return nil
	}

	for i := 0; i < n; i++ {
		for _, e := range []struct {
			off int
			v   float64
		}{
			{offL2, diag.L2[i]},
			{offL1, diag.L1[i]},
			{offC0, diag.C0[i]},
			{offR1, diag.R1[i]},
			{offR2, diag.R2[i]},
		} {
			if err := put(i, e.off, e.v); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// solveSparse solves A·x = b with gosl's sparse LU solver, the same
// "umfpack" backend fem/main.go selects for a serial run
// (Sim.LinSol.Name = "umfpack"), obtained and driven the way fem/s_implicit.go
// drives d.LinSol: InitR to factor-prepare the triplet, Fact to factorize,
// SolveR to back-substitute.
func solveSparse(t *la.Triplet, b []float64) ([]float64, error) {
	n := len(b)
	x := make([]float64, n)
	solver := la.GetSolver("umfpack")
	defer solver.Free()
	if err := solver.InitR(t, false, false, false); err != nil {
		return nil, fail(ErrSingularOperator, "sparse solver init failed: %v", err)
	}
	if err := solver.Fact(); err != nil {
		return nil, fail(ErrSingularOperator, "factorization failed: %v", err)
	}
	if err := solver.SolveR(x, b, false); err != nil {
		return nil, fail(ErrSingularOperator, "solve failed: %v", err)
	}
	return x, nil
}

// solveFDCore runs the assembly/solve path on a single grid with no Mirror
// padding (SolveFD in method.go handles the Mirror pad/dispatch/un-pad
// wrapping and calls back into this for the padded sub-problem).
func solveFDCore(p Problem) ([]float64, error) {
	n := len(p.Q)
	if n < 5 {
		return nil, fail(ErrDegenerateGeometry, "grid must have at least 5 cells, got %d", n)
	}
	dx4, err := Dx4(p.Dx)
	if err != nil {
		return nil, err
	}
	plan, err := validateBoundaries(p.West, p.East, p.Te, p.AllowSandbox)
	if err != nil {
		return nil, err
	}

	// d is the per-cell flexural rigidity D, not the raw thickness Te: every
	// stencil and boundary-rewrite function below operates on D.
	d := RigidityArray(p.E, p.Te.Expand(n), p.Nu)
	var diag *Diagonals
	switch {
	case plan.periodicBoth && p.Te.IsScalar():
		diag = buildDiagonalsConstant(d[0], dx4, p.Drho, p.G, n)
	case plan.periodicBoth:
		diag = buildDiagonalsPeriodic(d, dx4, p.Drho, p.G)
	case p.Te.IsScalar():
		diag = buildDiagonalsConstant(d[0], dx4, p.Drho, p.G, n)
	default:
		diag = buildDiagonalsVariable(d, dx4, p.Drho, p.G)
	}

	q := append([]float64(nil), p.Q...) // Sandbox rescales the outermost load cells

	switch {
	case p.West.Kind == Sandbox && p.East.Kind == Sandbox:
		applySandbox(diag, q, d[0], dx4, p.Drho, p.G, p.Dx)
	case plan.periodicBoth:
		// central stencil already accounts for the ring; no row rewrite.
	default:
		if err := applyBoundary(diag, p.West, d, dx4, p.Drho, p.G, p.Te.IsScalar(), West); err != nil {
			return nil, err
		}
		if err := applyBoundary(diag, p.East, d, dx4, p.Drho, p.G, p.Te.IsScalar(), East); err != nil {
			return nil, err
		}
	}

	t, err := assemble(diag, plan.periodicBoth)
	if err != nil {
		return nil, err
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = -q[i] // FD sign convention (matches f1d.py): a positive (downward) load q solves to a negative w here; §8's S2 scenario checks this sign directly
	}
	return solveSparse(t, b)
}
