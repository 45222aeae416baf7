package flex

import "math"

// applyZeroMomentZeroShear rewrites one side for the 0Moment0Shear BC (a
// free end: zero bending moment and zero shear), folding the coefficient
// that would otherwise reference an off-grid column into the on-grid
// columns. D is the full per-cell rigidity array (a scalar Te broadcast to
// one is indistinguishable from a gridded one here — the fold formula
// collapses to the constant-D table in either case, the BC-level analogue
// of invariant I1).
func applyZeroMomentZeroShear(diag *Diagonals, d []float64, dx4, drho, g float64, side Side) {
	n := diag.n()
	switch side {
	case West:
		dm1 := extrapolateZeroCurvature(d[0], d[1])
		l2, l1, c0, r1, r2 := variableCoeffs(dm1, d[0], d[1], dx4, drho, g)
		diag.set(0, math.NaN(), math.NaN(), c0+4*l2+2*l1, r1-4*l2-l1, r2+l2)

		l2, l1, c0, r1, r2 = variableCoeffs(d[0], d[1], d[2], dx4, drho, g)
		diag.set(1, math.NaN(), l1+2*l2, c0, r1-2*l2, r2+l2)
	case East:
		dp1 := extrapolateZeroCurvature(d[n-1], d[n-2])
		l2, l1, c0, r1, r2 := variableCoeffs(d[n-2], d[n-1], dp1, dx4, drho, g)
		diag.set(n-1, l2+r2, l1-4*r2-r1, c0+4*r2+2*r1, math.NaN(), math.NaN())

		l2, l1, c0, r1, r2 = variableCoeffs(d[n-3], d[n-2], d[n-1], dx4, drho, g)
		diag.set(n-2, l2+r2, l1-2*r2, c0, r1+2*r2, math.NaN())
	}
}

// applySymmetric rewrites one side for the Symmetric BC (the domain is
// mirrored about the edge, so the off-grid slope term cancels rather than
// being dropped or reflecting the moment/shear).
func applySymmetric(diag *Diagonals, d []float64, dx4, drho, g float64, side Side) {
	n := diag.n()
	switch side {
	case West:
		dm1 := extrapolateSymmetric(d[0], d[1])
		l2, l1, c0, r1, r2 := variableCoeffs(dm1, d[0], d[1], dx4, drho, g)
		diag.set(0, math.NaN(), math.NaN(), c0, r1+l1, r2+l2)

		l2, l1, c0, r1, r2 = variableCoeffs(d[0], d[1], d[2], dx4, drho, g)
		diag.set(1, math.NaN(), l1, c0+l2, r1, r2)
	case East:
		dp1 := extrapolateSymmetric(d[n-1], d[n-2])
		l2, l1, c0, r1, r2 := variableCoeffs(d[n-2], d[n-1], dp1, dx4, drho, g)
		diag.set(n-1, l2+r2, l1+r1, c0, math.NaN(), math.NaN())

		l2, l1, c0, r1, r2 = variableCoeffs(d[n-3], d[n-2], d[n-1], dx4, drho, g)
		diag.set(n-2, l2, l1, c0+r2, r1, math.NaN())
	}
}
