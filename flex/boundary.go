package flex

// buildDiagonalsPeriodic is like buildDiagonalsVariable but uses the actual
// wrapped neighbor at each edge (D[n-1] beyond the west edge, D[0] beyond
// the east edge) instead of an extrapolation — the ring is physically
// closed, so there is a real neighbor to read rather than one to invent.
func buildDiagonalsPeriodic(d []float64, dx4, drho, g float64) *Diagonals {
	n := len(d)
	diag := newDiagonals(n)
	l2, l1, c0, r1, r2 := variableCoeffs(d[n-1], d[0], d[1], dx4, drho, g)
	diag.set(0, l2, l1, c0, r1, r2)
	for i := 1; i < n-1; i++ {
		l2, l1, c0, r1, r2 = variableCoeffs(d[i-1], d[i], d[i+1], dx4, drho, g)
		diag.set(i, l2, l1, c0, r1, r2)
	}
	l2, l1, c0, r1, r2 = variableCoeffs(d[n-2], d[n-1], d[0], dx4, drho, g)
	diag.set(n-1, l2, l1, c0, r1, r2)
	return diag
}

// boundaryPlan is the result of validating a (West, East) BC pair against a
// Thickness and AllowSandbox flag, before any row has been rewritten.
type boundaryPlan struct {
	periodicBoth bool // both sides Periodic: use the wrap-aware central stencil and let assemble wrap column indices around the ring
}

// validateBoundaries checks the compatibility rules of spec.md §4.3 for a
// (West, East) pair that is NOT going through Mirror (flex/mirror.go
// resolves Mirror's own pairing separately, since Mirror can promote itself
// to Periodic once an actual padded length is known).
func validateBoundaries(west, east BC, te Thickness, allowSandbox bool) (boundaryPlan, error) {
	var plan boundaryPlan

	if west.Kind == Stewart1 || east.Kind == Stewart1 {
		return plan, fail(ErrUnspecifiedBC, "Stewart1 has no defined coefficients; select it only indirectly via Mirror, where it is substituted with Dirichlet")
	}

	westPeriodic := west.Kind == Periodic
	eastPeriodic := east.Kind == Periodic
	if westPeriodic != eastPeriodic {
		return plan, fail(ErrInvalidBoundary, "Periodic must be selected on both sides, got West=%s East=%s", west.Kind, east.Kind)
	}
	plan.periodicBoth = westPeriodic && eastPeriodic

	if west.Kind == Sandbox || east.Kind == Sandbox {
		if west.Kind != Sandbox || east.Kind != Sandbox {
			return plan, fail(ErrInvalidBoundary, "Sandbox must be selected on both sides, got West=%s East=%s", west.Kind, east.Kind)
		}
		if !allowSandbox {
			return plan, fail(ErrInvalidBoundary, "Sandbox is an experimental BC and must be enabled explicitly (Problem.AllowSandbox)")
		}
		if !te.IsScalar() {
			return plan, fail(ErrInvalidTeForBC, "Sandbox only supports a scalar Te")
		}
	}

	if !te.IsScalar() {
		for _, bc := range [2]BC{west, east} {
			if bc.Kind == Neumann {
				return plan, fail(ErrInvalidTeForBC, "Neumann has no defined variable-D rewrite; use a scalar Te")
			}
			if bc.Kind == Dirichlet0Neumann0 {
				return plan, fail(ErrInvalidTeForBC, "Dirichlet0_Neumann0 has no defined variable-D rewrite; use a scalar Te")
			}
		}
	}

	return plan, nil
}

// applyBoundary rewrites the rows for one side in place, given the already
// expanded rigidity array d (length n, uniform if Te was a scalar) and the
// row values buildDiagonalsConstant or buildDiagonalsVariable already
// produced there.
func applyBoundary(diag *Diagonals, bc BC, d []float64, dx4, drho, g float64, isScalar bool, side Side) error {
	switch bc.Kind {
	case Dirichlet:
		// no rewrite: the off-grid l2/l1 (or r1/r2) entries the central
		// stencil leaves at the edge rows are simply never packed into the
		// matrix (assemble.go skips any out-of-range column), which is
		// exactly what pinning the ghost value to zero means.
		return nil
	case Periodic:
		// handled by the central stencil solveFDCore builds for the ring plus
		// assemble's modulo-n column wrap; no per-row rewrite here.
		return nil
	case ZeroMomentZeroShear:
		applyZeroMomentZeroShear(diag, d, dx4, drho, g, side)
		return nil
	case Symmetric:
		applySymmetric(diag, d, dx4, drho, g, side)
		return nil
	case Neumann:
		applyNeumannConstant(diag, d[0], dx4, drho, g, side)
		return nil
	case Dirichlet0Neumann0:
		applyDirichlet0Neumann0Constant(diag, d[0], dx4, drho, g, side)
		return nil
	case Sandbox:
		// applySandbox mutates both diagonals and q and only has an East
		// implementation; the caller (assemble.go) invokes it once for the
		// pair rather than per side, since it needs q too.
		return nil
	case Stewart1:
		return fail(ErrUnspecifiedBC, "Stewart1 has no defined coefficients")
	default:
		return fail(ErrInvalidBoundary, "unhandled boundary kind %s", bc.Kind)
	}
}
