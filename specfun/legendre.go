package specfun

import "math"

// legendreAll computes the fully normalized associated Legendre
// functions Pbar_n^m(cos theta) and their theta-derivatives for all
// 0 <= m <= n <= nmax at a single angle. The normalization is the
// spherical-harmonic one, including the Condon-Shortley phase:
//
//	Ybar_n^m(theta, phi) = Pbar_n^m(cos theta) * exp(i m phi)
//
// Returned slices are indexed p[n][m]. theta must lie strictly inside
// (0, pi): the derivative recurrence divides by sin(theta).
func legendreAll(nmax int, theta float64) (p, dp [][]float64) {
	u := math.Cos(theta)
	s := math.Sin(theta)
	if s <= 0 {
		panic("specfun: polar angle on the z-axis")
	}

	p = make([][]float64, nmax+1)
	dp = make([][]float64, nmax+1)
	for n := 0; n <= nmax; n++ {
		p[n] = make([]float64, n+1)
		dp[n] = make([]float64, n+1)
	}

	p[0][0] = 1 / math.Sqrt(4*math.Pi)
	// Diagonal, then first off-diagonal, then upward in degree.
	for m := 1; m <= nmax; m++ {
		p[m][m] = -math.Sqrt(float64(2*m+1)/float64(2*m)) * s * p[m-1][m-1]
	}
	for m := 0; m < nmax; m++ {
		p[m+1][m] = math.Sqrt(float64(2*m+3)) * u * p[m][m]
	}
	for m := 0; m <= nmax; m++ {
		for n := m + 2; n <= nmax; n++ {
			fn, fm := float64(n), float64(m)
			a := math.Sqrt((2*fn - 1) * (2*fn + 1) / ((fn - fm) * (fn + fm)))
			b := math.Sqrt((2*fn + 1) * (fn - 1 - fm) * (fn - 1 + fm) /
				((2*fn - 3) * (fn - fm) * (fn + fm)))
			p[n][m] = a*u*p[n-1][m] - b*p[n-2][m]
		}
	}

	for m := 0; m <= nmax; m++ {
		for n := max(m, 1); n <= nmax; n++ {
			fn, fm := float64(n), float64(m)
			t := fn * u * p[n][m]
			if n > m {
				c := math.Sqrt((fn*fn - fm*fm) * (2*fn + 1) / (2*fn - 1))
				t -= c * p[n-1][m]
			}
			dp[n][m] = t / s
		}
	}
	return p, dp
}
