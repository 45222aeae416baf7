package flex

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// kernel evaluates the 1-D flexural Green's function for a line load of
// magnitude qMag*dx at distance r from a point of uniform rigidity d,
// grounded on f1d.py's spatialDomainVars kernel:
//
//	w(r) = -(qMag·dx·α³)/(8·D) · exp(-r/α) · (cos(r/α) + sin(r/α))
//
// The leading minus matches the FD path's sign convention (a positive load
// gives a negative w), so SPA and FD results are directly comparable.
func kernel(qMag, dx, d, drho, g, r float64) float64 {
	alpha := FlexuralParameter(d, drho, g)
	rOverAlpha := math.Abs(r) / alpha
	return -(qMag * dx * alpha * alpha * alpha) / (8 * d) * math.Exp(-rOverAlpha) * (math.Cos(rOverAlpha) + math.Sin(rOverAlpha))
}

// SolveSPA superposes the analytical Green's-function response of every
// gridded load cell, for a scalar (uniform) Te. Gridded Te is not supported
// here: the closed-form kernel assumes a spatially uniform rigidity, and
// the original source's elementwise broadcast over a gridded D has no
// consistent physical reading for a superposition method.
func SolveSPA(c Constants, dx float64, q []float64, te Thickness) ([]float64, error) {
	if !te.IsScalar() {
		return nil, fail(ErrInvalidTeForBC, "SPA requires a scalar Te (the analytical kernel assumes uniform rigidity)")
	}
	n := len(q)
	if n == 0 {
		return nil, fail(ErrDegenerateGeometry, "q must have at least one cell")
	}
	d := Rigidity(c.E, te.Scalar(), c.Nu)
	w := make([]float64, n)
	for j, qj := range q {
		if qj == 0 {
			continue
		}
		contrib := make([]float64, n)
		for i := 0; i < n; i++ {
			r := float64(i-j) * dx
			contrib[i] = kernel(qj, dx, d, c.Drho, c.G, r)
		}
		floats.Add(w, contrib)
	}
	return w, nil
}

// SolveSPANG is the non-gridded analogue of SolveSPA: loads live at
// arbitrary x positions (not necessarily sharing the output grid), and the
// deflection is evaluated at every load position in turn, matching
// f1d.py's spatialDomainNoGrid.
func SolveSPANG(c Constants, te Thickness, xs, q []float64) ([]float64, error) {
	if !te.IsScalar() {
		return nil, fail(ErrInvalidTeForBC, "SPA_NG requires a scalar Te")
	}
	if len(xs) != len(q) {
		return nil, fail(ErrInvalidBoundary, "SPA_NG requires one x coordinate per load sample, got %d x and %d q", len(xs), len(q))
	}
	n := len(q)
	if n == 0 {
		return nil, fail(ErrDegenerateGeometry, "q must have at least one sample")
	}
	d := Rigidity(c.E, te.Scalar(), c.Nu)
	w := make([]float64, n)
	for j := 0; j < n; j++ {
		if q[j] == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			r := xs[i] - xs[j]
			// SPA_NG has no fixed cell width to scale the kernel's implicit
			// line-load width by, so each sample is treated as a unit-width
			// line load (dx=1), matching spatialDomainNoGrid's contract
			// that q already carries the appropriate magnitude.
			w[i] += kernel(q[j], 1, d, c.Drho, c.G, r)
		}
	}
	return w, nil
}
