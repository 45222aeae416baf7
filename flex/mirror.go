package flex

import "math"

// mirrorPadSegment reflects arr outward by nPad cells on each side: the
// cell adjacent to a boundary is reflected first, so west[nPad-1] mirrors
// arr[0] and east[0] mirrors arr[len(arr)-1]. When nPad exceeds len(arr)
// (the domain is shorter than one pad width) the reflection runs out of
// source data and the remainder is left at zero — this is exactly the
// "zero-pad" regime for a short domain, produced by the same formula rather
// than a separate code path.
func mirrorPadSegment(arr []float64, nPad int) (west, east []float64) {
	west = make([]float64, nPad)
	east = make([]float64, nPad)
	l := len(arr)
	for i := 0; i < nPad; i++ {
		if srcW := nPad - 1 - i; srcW < l {
			west[i] = arr[srcW]
		}
		if srcE := l - 1 - i; srcE >= 0 {
			east[i] = arr[srcE]
		}
	}
	return
}

// maxRigidity returns the largest flexural rigidity across the grid, used
// to size the padding conservatively (the longest flexural wavelength
// present anywhere in the domain).
func maxRigidity(te Thickness, e, nu float64) float64 {
	if te.IsScalar() {
		return Rigidity(e, te.Scalar(), nu)
	}
	max := 0.0
	for _, t := range te.Array() {
		if d := Rigidity(e, t, nu); d > max {
			max = d
		}
	}
	return max
}

// MirrorPlan is the result of padding a problem for the Mirror BC. Padding
// can be one-sided: NPadWest (resp. NPadEast) is 0 when that side's BC was
// not Mirror, in which case the corresponding West/East field carries the
// caller's own declared BC, applied unpadded at that edge (spec.md §4.4,
// "the un-padded side's declared BC takes effect on that side").
type MirrorPlan struct {
	Q        []float64 // padded load
	Te       Thickness // padded thickness (unchanged if Te was scalar)
	NPadWest int
	NPadEast int
	Periodic bool // true: padded grid uses Periodic on both edges (only possible when both sides are Mirror)
	West     BC   // effective BC at the west edge of the padded grid
	East     BC   // effective BC at the east edge of the padded grid
}

// PrepareMirror pads q (and a gridded Te) outward by the maximum flexural
// wavelength on every side whose BC is Mirror, choosing one of three
// regimes by how the padded width compares to the domain length (spec.md
// §4.4):
//   - domain shorter than one pad width: the mirror reflection runs out of
//     data and degenerates to zero-padding; the padded edges are Dirichlet.
//   - domain between one and two pad widths, with BOTH sides Mirror: the
//     two reflected pads would overlap, so the padded grid is solved as a
//     single periodic ring instead (spec.md's "efficient case").
//   - otherwise: full mirror reflection on each Mirror side, Dirichlet at
//     the new edges (Stewart1 is unspecified, see flex/boundary.go), and
//     the non-Mirror side (if any) keeps its own declared BC unpadded.
func PrepareMirror(west, east BC, q []float64, te Thickness, dx float64, c Constants) (*MirrorPlan, error) {
	isMirrorW := west.Kind == Mirror
	isMirrorE := east.Kind == Mirror
	l := len(q)
	dMax := maxRigidity(te, c.E, c.Nu)
	lambdaMax := FlexuralWavelength(dMax, c.Drho, c.G)
	nPad := int(math.Ceil(lambdaMax / dx))
	if nPad < 1 {
		nPad = 1
	}
	nPadWest, nPadEast := 0, 0
	if isMirrorW {
		nPadWest = nPad
	}
	if isMirrorE {
		nPadEast = nPad
	}

	padQWest, padQEast := mirrorPadSegment(q, nPad)
	paddedQ := make([]float64, 0, l+nPadWest+nPadEast)
	if isMirrorW {
		paddedQ = append(paddedQ, padQWest...)
	}
	paddedQ = append(paddedQ, q...)
	if isMirrorE {
		paddedQ = append(paddedQ, padQEast...)
	}

	paddedTe := te
	if !te.IsScalar() {
		padTWest, padTEast := mirrorPadSegment(te.Array(), nPad)
		arr := make([]float64, 0, l+nPadWest+nPadEast)
		if isMirrorW {
			arr = append(arr, padTWest...)
		}
		arr = append(arr, te.Array()...)
		if isMirrorE {
			arr = append(arr, padTEast...)
		}
		paddedTe = ArrayThickness(arr)
	}

	plan := &MirrorPlan{Q: paddedQ, Te: paddedTe, NPadWest: nPadWest, NPadEast: nPadEast}
	plan.Periodic = isMirrorW && isMirrorE && l >= nPad && l <= 2*nPad

	switch {
	case plan.Periodic:
		plan.West, plan.East = BC{Kind: Periodic}, BC{Kind: Periodic}
	default:
		plan.West = west
		if isMirrorW {
			plan.West = BC{Kind: Dirichlet}
		}
		plan.East = east
		if isMirrorE {
			plan.East = BC{Kind: Dirichlet}
		}
	}
	return plan, nil
}

// Unpad strips the padding Mirror added to each side (which may differ per
// side for a one-sided Mirror BC), recovering the solution on the caller's
// original grid.
func Unpad(w []float64, nPadWest, nPadEast int) []float64 {
	return w[nPadWest : len(w)-nPadEast]
}
