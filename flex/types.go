package flex

// Side identifies which end of the 1-D grid a boundary condition applies to.
type Side int

const (
	West Side = iota
	East
)

func (s Side) String() string {
	if s == West {
		return "West"
	}
	return "East"
}

// BCKind enumerates the closed set of boundary conditions spec.md names.
type BCKind int

const (
	Dirichlet BCKind = iota
	Dirichlet0Neumann0
	Periodic
	Mirror
	Symmetric
	ZeroMomentZeroShear
	Neumann
	Stewart1
	Sandbox
)

func (k BCKind) String() string {
	switch k {
	case Dirichlet:
		return "Dirichlet"
	case Dirichlet0Neumann0:
		return "Dirichlet0Neumann0"
	case Periodic:
		return "Periodic"
	case Mirror:
		return "Mirror"
	case Symmetric:
		return "Symmetric"
	case ZeroMomentZeroShear:
		return "0Moment0Shear"
	case Neumann:
		return "Neumann"
	case Stewart1:
		return "Stewart1"
	case Sandbox:
		return "Sandbox"
	default:
		return "unknown"
	}
}

// BC is a boundary-condition selection for one side of the grid. No code in
// this package sets or reads Inner: PrepareMirror (flex/mirror.go) reports
// the condition applied to a padded edge through MirrorPlan.West/East
// instead.
type BC struct {
	Kind  BCKind
	Inner BCKind
}

// Grid describes the 1-D spacing and cell count a problem is solved on.
type Grid struct {
	Dx float64
	N  int
}

// Constants holds the physical constants shared by every cell.
type Constants struct {
	Drho float64 // density contrast between plate and substrate, kg/m^3
	G    float64 // gravitational acceleration, m/s^2
	E    float64 // Young's modulus, Pa
	Nu   float64 // Poisson's ratio
}
