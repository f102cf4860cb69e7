// Package tmatrix computes transition matrices (T-matrices) for light
// scattering by axisymmetric particles.
//
// A T-matrix is the linear operator that maps the multipole expansion
// coefficients of an incident field onto the expansion coefficients of
// the field scattered by a fixed particle at a fixed wavelength. Once
// computed it can be reused for any illumination, which is what makes
// it the workhorse of optical force and torque calculations.
//
// The root package holds the shared value types: the TMatrix itself and
// the optical Config (wavenumbers, truncation order, symmetry flags).
// The actual construction strategies live in subpackages:
//
//	specfun/ — vector spherical harmonics, spherical Bessel and Hankel
//	          functions of complex argument
//	modes/   — multipole (degree, order) bookkeeping and truncation
//	          heuristics
//	shape/   — star-shaped axisymmetric particle profiles and boundary
//	          point sampling
//	ebcm/    — T-matrix by the extended boundary condition method
//	          (null-field method), the general axisymmetric solver
//	mie/     — analytic T-matrix for spheres (Mie theory)
//
// cmd/tmatcalc is a small command-line front end that reads a JSON5
// scene description and prints or plots the resulting T-matrix.
package tmatrix
