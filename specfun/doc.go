// Package specfun evaluates the special functions behind multipole
// field expansions: spherical Bessel and Hankel functions of complex
// argument with their derivatives, and fully normalized vector
// spherical harmonics with their angular derivatives.
//
// Everything here is computed with recurrence-stable schemes (downward
// Miller recurrence for j_n, upward for y_n, diagonal-then-upward for
// the associated Legendre functions) rather than direct closed forms,
// which lose precision quickly as the degree grows.
package specfun
