package flex

import "math"

// applySandbox ports f1d.py's BC_Sandbox: an experimental, non-physical
// attempt at a compliant edge that also rescales the load at the two
// outermost cells. Only the East side has an active implementation in the
// source (West is commented out there); this keeps the same asymmetry.
// Reachable only when Problem.AllowSandbox is set and both sides select
// Sandbox, matching the source's own "if BC_E == BC_W == 'Sandbox'" gate.
func applySandbox(diag *Diagonals, q []float64, d, dx4, drho, g, dx float64) {
	n := diag.n()
	i := n - 1
	diag.set(i, 2*d/dx4, -8*d/dx4, 10*d/dx4+drho*g, math.NaN(), math.NaN())
	q[i] = q[i] / (2 * dx * dx * dx * dx * dx)

	i = n - 2
	diag.set(i, 2*d/dx4, -6*d/dx4, 6*d/dx4+drho*g, -2*d/dx4, math.NaN())
	q[i] = q[i] / (2 * dx * dx * dx)
}
