// Package mie builds the T-matrix of a homogeneous sphere from the
// analytic Mie coefficients. It is the closed-form sibling of the
// ebcm construction: same inputs, same TMatrix value, but diagonal by
// construction and cheap at any size parameter.
package mie

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/optforge/tmatrix"
	"github.com/optforge/tmatrix/modes"
	"github.com/optforge/tmatrix/specfun"
)

// New computes the T-matrix of a sphere with the given radius. The
// diagonal entries are -b_n in the first polarization block and -a_n
// in the second, with a_n, b_n the Mie scattering coefficients in
// Riccati-Bessel form for the resolved medium and particle
// wavenumbers.
func New(radius float64, cfg tmatrix.Config) (*tmatrix.TMatrix, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius must be positive", tmatrix.ErrUnsupportedGeometry)
	}
	kMedium, kParticle, err := cfg.Wavenumbers()
	if err != nil {
		return nil, err
	}
	nmax := cfg.Nmax
	if nmax == 0 {
		nmax = modes.Estimate(kMedium, radius)
	}
	if nmax < 1 {
		return nil, fmt.Errorf("%w: Nmax must be >= 1, got %d", tmatrix.ErrConfiguration, nmax)
	}

	x := kMedium * complex(radius, 0)
	xp := kParticle * complex(radius, 0)
	mRel := kParticle / kMedium

	jx := specfun.SphBesselJ(nmax, x)
	yx := specfun.SphBesselY(nmax, x)
	jp := specfun.SphBesselJ(nmax, xp)

	half := modes.Count(nmax)
	t := mat.NewCDense(2*half, 2*half, nil)
	for n := 1; n <= nmax; n++ {
		// Riccati-Bessel psi_n(x) = x j_n(x), xi_n(x) = x h1_n(x) and
		// their derivatives via (x f_n)' = x f_{n-1} - n f_n.
		fn := complex(float64(n), 0)
		psi := x * jx[n]
		dpsi := x*jx[n-1] - fn*jx[n]
		hx := jx[n] + 1i*yx[n]
		hxm1 := jx[n-1] + 1i*yx[n-1]
		xi := x * hx
		dxi := x*hxm1 - fn*hx
		psiP := xp * jp[n]
		dpsiP := xp*jp[n-1] - fn*jp[n]

		denA := mRel*psiP*dxi - xi*dpsiP
		denB := psiP*dxi - mRel*xi*dpsiP
		if denA == 0 || denB == 0 {
			return nil, fmt.Errorf("%w: Mie denominator vanishes at degree %d", tmatrix.ErrNumericalSingularity, n)
		}
		an := (mRel*psiP*dpsi - psi*dpsiP) / denA
		bn := (psiP*dpsi - mRel*psi*dpsiP) / denB

		for m := -n; m <= n; m++ {
			i := modes.Index(n, m) - 1
			t.Set(i, i, -bn)
			t.Set(i+half, i+half, -an)
		}
	}
	tm, err := tmatrix.New(t, tmatrix.KindScattered, nmax)
	if err != nil {
		return nil, err
	}
	return tm, nil
}
