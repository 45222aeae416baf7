// Package flex implements the finite-difference assembly and solution path
// for 1-D elastic-plate flexure: a thin plate floating on a dense fluid
// substrate, loaded by a vertical load q(x), deflects by w(x) according to
//
//	d²/dx² [ D(x) · d²w/dx² ] + Δρ·g·w = q(x)
//
// where D is flexural rigidity. The package builds the pentadiagonal
// operator for this fourth-order ODE, rewrites its boundary rows for one of
// several physically distinct boundary conditions, and solves the resulting
// sparse linear system.
package flex
