// Package modes does the multipole bookkeeping shared by every
// T-matrix construction strategy: enumeration of (degree, order)
// pairs, the combined linear index into the global matrices, the
// per-degree normalization factors, and the truncation heuristic.
package modes

import (
	"math"
	"math/cmplx"
)

// Index maps a (degree, order) pair onto the 1-based combined index
//
//	idx(n, m) = n(n+1) + m,  n >= 1, -n <= m <= n
//
// which runs over 1..Count(nmax) and fixes the ordering of one
// polarization block of the global matrices.
func Index(n, m int) int { return n*(n+1) + m }

// Count returns the number of (degree, order) pairs with degree up to
// nmax, i.e. the dimension of one polarization block.
func Count(nmax int) int { return nmax * (nmax + 2) }

// Norm returns the per-degree normalization 1/sqrt(n(n+1)).
func Norm(n int) float64 {
	return 1 / math.Sqrt(float64(n)*float64(n+1))
}

// PairNorm returns Norm(j)*Norm(k) for a degree pair.
func PairNorm(j, k int) float64 { return Norm(j) * Norm(k) }

// Estimate returns a truncation degree for a particle of maximum
// radius rmax in a medium with wavenumber k, using the Wiscombe-style
// size criterion Nmax = ka + 3 (ka)^(1/3), never below 1.
func Estimate(k complex128, rmax float64) int {
	ka := cmplx.Abs(k) * rmax
	n := int(math.Ceil(ka + 3*math.Cbrt(ka)))
	if n < 1 {
		n = 1
	}
	return n
}
