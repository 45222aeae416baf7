package flex

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// TestAssembleRejectsPoisonedStencil is invariant I2: a row left with a NaN
// "poison" coefficient on an in-range column must never be silently packed
// as zero; assemble must fail loudly instead.
func TestAssembleRejectsPoisonedStencil(tst *testing.T) {
	chk.PrintTitle("I2: a poisoned (NaN) in-range coefficient is never packed")
	n := 6
	diag := buildDiagonalsConstant(1.0e21, 1.0, 400.0, 9.81, n)
	// simulate an incomplete boundary rewrite: row 2 (safely in-range on all
	// five columns) left with an unresolved coefficient.
	diag.C0[2] = math.NaN()
	_, err := assemble(diag, false)
	if err == nil {
		tst.Fatal("expected assemble to reject a poisoned in-range coefficient")
	}
}

// TestAssembleDropsOutOfRangeDirichletEdges confirms the Dirichlet
// convention: a NaN left at row 0's l2/l1 (columns -2/-1, always out of
// range) must NOT trigger I2, since those columns are dropped before the
// NaN check ever runs.
func TestAssembleDropsOutOfRangeDirichletEdges(tst *testing.T) {
	chk.PrintTitle("out-of-range ghost columns are dropped, not checked")
	n := 6
	diag := buildDiagonalsConstant(1.0e21, 1.0, 400.0, 9.81, n)
	diag.L2[0] = math.NaN()
	diag.L1[0] = math.NaN()
	diag.R2[n-1] = math.NaN()
	diag.R1[n-1] = math.NaN()
	if _, err := assemble(diag, false); err != nil {
		tst.Fatalf("expected out-of-range NaNs to be dropped, got %v", err)
	}
}

// denseFromDiagonals reconstructs a gonum/mat.Dense from a la.Triplet-shaped
// operator for the small grids these tests use, via the same Triplet.ToDense
// gosl itself offers for small systems. gonum/mat's LU then reports a
// determinant, which gosl's own la.Matrix does not expose directly.
func denseFromDiagonals(diag *Diagonals, periodic bool) (*mat.Dense, error) {
	n := diag.n()
	t, err := assemble(diag, periodic)
	if err != nil {
		return nil, err
	}
	full := t.ToDense()
	rows := full.GetDeep2()
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return m, nil
}

// TestAssembleNonSingularForDirichlet is invariant I4: the assembled
// operator is non-singular once the plate has at least 5 cells and
// Dirichlet boundaries pin both ghost ends.
func TestAssembleNonSingularForDirichlet(tst *testing.T) {
	chk.PrintTitle("I4: Dirichlet operator is non-singular for n>=5")
	for _, n := range []int{5, 6, 12} {
		diag := buildDiagonalsConstant(3.0e22, 1.0, 3300.0, 9.81, n)
		m, err := denseFromDiagonals(diag, false)
		if err != nil {
			tst.Fatal(err)
		}
		var lu mat.LU
		lu.Factorize(m)
		det := lu.Det()
		if det == 0 || math.IsNaN(det) {
			tst.Fatalf("n=%d: expected a non-zero determinant, got %v", n, det)
		}
	}
}

// TestAssemblePeriodicWithRestoringForceNonSingular checks that adding the
// Δρ·g restoring term (as opposed to TestPeriodicNullSpace's Δρg=0 null
// space) makes the periodic ring operator non-singular.
func TestAssemblePeriodicWithRestoringForceNonSingular(tst *testing.T) {
	chk.PrintTitle("I4: periodic operator is non-singular once Δρg>0")
	n := 8
	// Δx⁴ = (1e4 m)⁴ keeps D/Δx⁴ small enough that the Δρ·g term survives
	// rounding on the diagonal; with Δx⁴ = 1 it would be lost in 6·D.
	diag := buildDiagonalsConstant(3.0e22, 1.0e16, 3300.0, 9.81, n)
	m, err := denseFromDiagonals(diag, true)
	if err != nil {
		tst.Fatal(err)
	}
	var lu mat.LU
	lu.Factorize(m)
	det := lu.Det()
	if det == 0 || math.IsNaN(det) {
		tst.Fatalf("expected a non-zero determinant, got %v", det)
	}
}

func TestAssembleRejectsTinyGrid(tst *testing.T) {
	chk.PrintTitle("a grid smaller than 5 cells is degenerate")
	diag := newDiagonals(3)
	_, err := assemble(diag, false)
	if err == nil {
		tst.Fatal("expected an error for a grid with fewer than 5 cells")
	}
}
