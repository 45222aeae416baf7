package flex

// SolveFFT always fails: f1d.py's FFT method is itself an explicit
// not-yet-implemented stub (`sys.exit("FFT solution method not yet
// implemented")). gonum.org/v1/gonum/fourier could implement a real FFT
// path, but doing so would be new behavior this system has never defined —
// see SPEC_FULL.md §3 for why that dependency is deliberately left unwired.
func SolveFFT() error {
	return fail(ErrNotImplemented, "FFT solution method is not implemented")
}
