package specfun

import (
	"math"
	"math/cmplx"
)

// Spharm holds the scalar spherical harmonic of one degree n at a set
// of boundary angles, for every order m in [-n, n], together with its
// two angular derivatives:
//
//	Y     = Ybar_n^m(theta, phi)
//	Theta = dY/dtheta
//	Phi   = (1/sin theta) dY/dphi = i m Y / sin theta
//
// Theta and Phi are the two components of the surface gradient, which
// is what the vector spherical harmonics are built from. Slices are
// indexed [m+n][sample].
type Spharm struct {
	N             int
	Y, Theta, Phi [][]complex128
}

// Order returns the three arrays for a single order m in [-n, n].
func (s *Spharm) Order(m int) (y, dtheta, dphi []complex128) {
	i := m + s.N
	return s.Y[i], s.Theta[i], s.Phi[i]
}

// SpharmTable evaluates the harmonics of every degree n = 1..nmax at
// the given boundary angles in one sweep. The result is indexed by
// n-1. This is the precomputed table the surface-integral assembly
// reads; it is built once and shared read-only afterwards.
func SpharmTable(nmax int, theta, phi []float64) []*Spharm {
	if len(theta) != len(phi) {
		panic("specfun: theta and phi lengths differ")
	}
	np := len(theta)

	table := make([]*Spharm, nmax)
	for n := 1; n <= nmax; n++ {
		sp := &Spharm{
			N:     n,
			Y:     make([][]complex128, 2*n+1),
			Theta: make([][]complex128, 2*n+1),
			Phi:   make([][]complex128, 2*n+1),
		}
		for i := range sp.Y {
			sp.Y[i] = make([]complex128, np)
			sp.Theta[i] = make([]complex128, np)
			sp.Phi[i] = make([]complex128, np)
		}
		table[n-1] = sp
	}

	for i := range theta {
		p, dp := legendreAll(nmax, theta[i])
		s := math.Sin(theta[i])
		for n := 1; n <= nmax; n++ {
			sp := table[n-1]
			for m := 0; m <= n; m++ {
				phase := cmplx.Exp(complex(0, float64(m)*phi[i]))
				y := complex(p[n][m], 0) * phase
				dt := complex(dp[n][m], 0) * phase
				df := complex(0, float64(m)*p[n][m]/s) * phase

				sp.Y[m+n][i] = y
				sp.Theta[m+n][i] = dt
				sp.Phi[m+n][i] = df
				if m > 0 {
					// Ybar_n^{-m} = (-1)^m conj(Ybar_n^m), and the same
					// relation holds for both derivatives.
					sgn := complex(float64(1-2*(m%2)), 0)
					sp.Y[n-m][i] = sgn * cmplx.Conj(y)
					sp.Theta[n-m][i] = sgn * cmplx.Conj(dt)
					sp.Phi[n-m][i] = sgn * cmplx.Conj(df)
				}
			}
		}
	}
	return table
}
