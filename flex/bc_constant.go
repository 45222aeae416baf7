package flex

import "math"

// applyNeumannConstant rewrites one side for the Neumann BC (zero-slope
// edge), constant-D only. Spec gives no variable-D formula for this BC, so
// callers restrict it to a scalar Te (flex/boundary.go).
func applyNeumannConstant(diag *Diagonals, d, dx4, drho, g float64, side Side) {
	n := diag.n()
	switch side {
	case West:
		diag.set(0, math.NaN(), math.NaN(), 6*d/dx4+drho*g, -8*d/dx4, 2*d/dx4)
		diag.set(1, math.NaN(), -4*d/dx4, 6*d/dx4+drho*g, -4*d/dx4, 2*d/dx4)
	case East:
		diag.set(n-1, 2*d/dx4, -8*d/dx4, 6*d/dx4+drho*g, math.NaN(), math.NaN())
		diag.set(n-2, 2*d/dx4, -4*d/dx4, 6*d/dx4+drho*g, -4*d/dx4, math.NaN())
	}
}

// applyDirichlet0Neumann0Constant rewrites one side for Dirichlet0_Neumann0
// (w pinned to 0 and zero-slope), constant-D only; spec.md §9 leaves the
// variable-D case undefined.
func applyDirichlet0Neumann0Constant(diag *Diagonals, d, dx4, drho, g float64, side Side) {
	n := diag.n()
	switch side {
	case West:
		diag.set(0, math.NaN(), math.NaN(), drho*g, -8*d/dx4, 2*d/dx4)
		diag.set(1, math.NaN(), -4*d/dx4, drho*g, -4*d/dx4, 2*d/dx4)
	case East:
		diag.set(n-1, 2*d/dx4, -8*d/dx4, drho*g, math.NaN(), math.NaN())
		diag.set(n-2, 2*d/dx4, -4*d/dx4, drho*g, -4*d/dx4, math.NaN())
	}
}
