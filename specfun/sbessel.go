package specfun

import "math/cmplx"

// SphBesselJ returns the spherical Bessel functions of the first kind
// j_0(x) .. j_nmax(x) for complex x != 0.
//
// Values are produced by downward (Miller) recurrence from a starting
// degree well above nmax and renormalized against the closed forms of
// j_0 and j_1, which keeps the low-degree region x < n stable where
// upward recurrence blows up.
func SphBesselJ(nmax int, x complex128) []complex128 {
	if x == 0 {
		panic("specfun: zero argument to SphBesselJ")
	}
	j0 := cmplx.Sin(x) / x
	if nmax == 0 {
		return []complex128{j0}
	}
	j1 := j0/x - cmplx.Cos(x)/x

	out := make([]complex128, nmax+1)

	start := nmax + 16 + int(cmplx.Abs(x))
	var fNext, fCur complex128 = 0, 1e-30
	for n := start; n > 0; n-- {
		fPrev := complex(float64(2*n+1), 0)/x*fCur - fNext
		fNext, fCur = fCur, fPrev
		if n-1 <= nmax {
			out[n-1] = fPrev
		}
		if cmplx.Abs(fCur) > 1e250 {
			const down = 1e-250
			fCur *= down
			fNext *= down
			for i := range out {
				out[i] *= down
			}
		}
	}

	// Normalize against whichever closed form is better conditioned;
	// j_0 vanishes near the zeros of sin(x).
	var scale complex128
	if cmplx.Abs(j0) >= cmplx.Abs(j1) {
		scale = j0 / out[0]
	} else {
		scale = j1 / out[1]
	}
	for i := range out {
		out[i] *= scale
	}
	return out
}

// SphBesselY returns the spherical Bessel functions of the second kind
// y_0(x) .. y_nmax(x) for complex x != 0. Upward recurrence is stable
// for y_n.
func SphBesselY(nmax int, x complex128) []complex128 {
	if x == 0 {
		panic("specfun: zero argument to SphBesselY")
	}
	out := make([]complex128, nmax+1)
	out[0] = -cmplx.Cos(x) / x
	if nmax == 0 {
		return out
	}
	out[1] = out[0]/x - cmplx.Sin(x)/x
	for n := 1; n < nmax; n++ {
		out[n+1] = complex(float64(2*n+1), 0)/x*out[n] - out[n-1]
	}
	return out
}

// SphHankel1 returns the spherical Hankel functions of the first kind
// h1_0(x) .. h1_nmax(x), the outgoing-wave radial functions for the
// exp(-iwt) time convention.
func SphHankel1(nmax int, x complex128) []complex128 {
	j := SphBesselJ(nmax, x)
	y := SphBesselY(nmax, x)
	out := make([]complex128, nmax+1)
	for n := range out {
		out[n] = j[n] + 1i*y[n]
	}
	return out
}

// SphBesselDeriv returns f'_n(x) from f_{n-1}(x) and f_n(x) via
//
//	f'_n(x) = f_{n-1}(x) - (n+1) f_n(x) / x
//
// valid for j_n, y_n and h1_n alike, n >= 1.
func SphBesselDeriv(n int, x, fnm1, fn complex128) complex128 {
	return fnm1 - complex(float64(n+1), 0)*fn/x
}

// RiccatiDeriv returns (x f_n(x))' / x = f'_n(x) + f_n(x)/x, the
// radial factor that multiplies the tangential part of the N-type
// vector spherical wavefunctions. Same f_{n-1}, f_n inputs as
// SphBesselDeriv.
func RiccatiDeriv(n int, x, fnm1, fn complex128) complex128 {
	return fnm1 - complex(float64(n), 0)*fn/x
}
