package flex

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestMirrorPadSegmentReflects checks the reflection formula directly: the
// cell nearest a boundary is reflected first.
func TestMirrorPadSegmentReflects(tst *testing.T) {
	chk.PrintTitle("mirror pad reflects the nearest cells first")
	q := []float64{10, 20, 30, 40, 50}
	west, east := mirrorPadSegment(q, 3)
	chk.Array(tst, "west", 1e-12, west, []float64{30, 20, 10})
	chk.Array(tst, "east", 1e-12, east, []float64{50, 40, 30})
}

// TestMirrorPadSegmentZeroFallsBackWhenShort is the degenerate regime: a
// domain shorter than the pad width runs out of data and zero-fills rather
// than reading past the start/end of the array.
func TestMirrorPadSegmentZeroFallsBackWhenShort(tst *testing.T) {
	chk.PrintTitle("mirror pad zero-fills beyond available data")
	q := []float64{10, 20}
	west, east := mirrorPadSegment(q, 5)
	chk.Array(tst, "west", 1e-12, west, []float64{0, 0, 0, 20, 10})
	chk.Array(tst, "east", 1e-12, east, []float64{20, 10, 0, 0, 0})
}

// TestUnpadRoundTrip is invariant R1: padding then un-padding recovers the
// original array unchanged.
func TestUnpadRoundTrip(tst *testing.T) {
	chk.PrintTitle("R1: pad/un-pad round trip")
	q := []float64{1, 2, 3, 4, 5, 6, 7}
	nPad := 4
	west, east := mirrorPadSegment(q, nPad)
	padded := append(append(append([]float64{}, west...), q...), east...)
	recovered := Unpad(padded, nPad, nPad)
	chk.Array(tst, "recovered", 1e-12, recovered, q)
}

func TestPrepareMirrorRegimeSelection(tst *testing.T) {
	chk.PrintTitle("Mirror regime selection by padded-vs-domain length")
	c := Constants{Drho: 3300, G: 9.81, E: 1e11, Nu: 0.25}
	te := ScalarThickness(35000)
	mirrorBC := BC{Kind: Mirror}

	// a domain much longer than the pad width: Dirichlet on padded edges.
	dMax := Rigidity(c.E, te.Scalar(), c.Nu)
	lambda := FlexuralWavelength(dMax, c.Drho, c.G)
	dx := lambda / 50
	nLong := 400
	qLong := make([]float64, nLong)
	planLong, err := PrepareMirror(mirrorBC, mirrorBC, qLong, te, dx, c)
	if err != nil {
		tst.Fatal(err)
	}
	if planLong.Periodic {
		tst.Fatal("a long domain should not be promoted to Periodic")
	}
	if planLong.West.Kind != Dirichlet || planLong.East.Kind != Dirichlet {
		tst.Fatalf("expected Dirichlet on both padded edges, got West=%v East=%v", planLong.West.Kind, planLong.East.Kind)
	}

	// a short domain: mirror reflection runs out of data, degenerate to
	// zero-pad, still Dirichlet.
	qShort := make([]float64, planLong.NPadWest/4)
	planShort, err := PrepareMirror(mirrorBC, mirrorBC, qShort, te, dx, c)
	if err != nil {
		tst.Fatal(err)
	}
	if planShort.Periodic {
		tst.Fatal("a very short domain should not be promoted to Periodic")
	}
}

// TestPrepareMirrorOneSided checks that a Mirror/0Moment0Shear pairing
// pads only the Mirror side, leaves the other side's declared BC in
// place unpadded, and un-pads asymmetrically.
func TestPrepareMirrorOneSided(tst *testing.T) {
	chk.PrintTitle("one-sided Mirror pads only the Mirror side")
	c := Constants{Drho: 3300, G: 9.81, E: 1e11, Nu: 0.25}
	te := ScalarThickness(35000)
	dMax := Rigidity(c.E, te.Scalar(), c.Nu)
	lambda := FlexuralWavelength(dMax, c.Drho, c.G)
	dx := lambda / 50
	n := 400
	q := make([]float64, n)
	east := BC{Kind: ZeroMomentZeroShear}
	west := BC{Kind: Mirror}

	plan, err := PrepareMirror(west, east, q, te, dx, c)
	if err != nil {
		tst.Fatal(err)
	}
	if plan.NPadWest == 0 {
		tst.Fatal("expected the Mirror (West) side to be padded")
	}
	if plan.NPadEast != 0 {
		tst.Fatalf("expected the non-Mirror (East) side to carry no padding, got %d", plan.NPadEast)
	}
	if plan.West.Kind != Dirichlet {
		tst.Fatalf("expected the padded West edge to resolve to Dirichlet, got %v", plan.West.Kind)
	}
	if plan.East.Kind != ZeroMomentZeroShear {
		tst.Fatalf("expected the un-padded East edge to keep its declared BC, got %v", plan.East.Kind)
	}
	if len(plan.Q) != n+plan.NPadWest {
		tst.Fatalf("expected padded length %d, got %d", n+plan.NPadWest, len(plan.Q))
	}
}
