package flex

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Sentinel error kinds (spec.md §7). Test with errors.Is.
var (
	ErrInvalidMethod      = errors.New("invalid method")
	ErrInvalidBoundary    = errors.New("invalid boundary condition combination")
	ErrInvalidTeForBC     = errors.New("Te shape incompatible with boundary condition")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrSingularOperator   = errors.New("singular operator")
	ErrPoisonedStencil    = errors.New("poisoned stencil entry reached assembly")
	ErrNotImplemented     = errors.New("not implemented")
	ErrUnspecifiedBC      = errors.New("boundary condition coefficients are unspecified")
)

// fail builds an error that satisfies errors.Is(err, kind) and carries a
// gosl/chk-formatted message, the way inp/sim.go builds its chk.Err errors.
func fail(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %v", kind, chk.Err(format, args...))
}
