// Package fem1d assembles the linear system for a piecewise-linear Galerkin
// finite element discretization of the two-point boundary value problem
//
//	-alpha*u'' + b*u' + c*u = f,   u(left) = g0, u(right) = g1.
//
// The global stiffness matrix and the reduced load vector are handed to an
// external linear solver; Dirichlet conditions are enforced by row
// elimination, so the boundary nodes are not free unknowns.
package fem1d
