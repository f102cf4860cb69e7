// Package ebcm computes T-matrices by the extended boundary condition
// method (null-field method) for star-shaped, fully axisymmetric
// particles.
//
// The method expands the incident, internal and scattered fields in
// vector spherical wavefunctions and enforces the null-field condition
// on a discretized particle boundary. That reduces to two surface
// integral matrices: Q, built from outgoing (Hankel) radial functions
// on the medium side, and its regular counterpart RgQ, built from
// Bessel functions. The T-matrix is the solution of T = -RgQ Q^-1.
//
// New is the primary entry point and takes explicit boundary samples;
// NewFromProfile accepts a named shape from package shape and handles
// sampling, symmetry detection and truncation selection itself.
package ebcm
