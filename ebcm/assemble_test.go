package ebcm

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optforge/tmatrix/shape"
	"github.com/optforge/tmatrix/specfun"
)

func pairFixture(t *testing.T, nmax int) (*shape.Boundary, []*specfun.Spharm, *radialTables) {
	t.Helper()
	bd, err := shape.NewBoundary(shape.Ellipsoid{A: 1, B: 1, C: 1.3}, 24)
	require.NoError(t, err)
	sph := specfun.SpharmTable(nmax, bd.Theta, bd.Phi)
	rad := buildRadialTables(nmax, bd.R, complex(2, 0), complex(2.6, 0))
	return bd, sph, rad
}

func TestFillPairOrderRange(t *testing.T) {
	bd, sph, rad := pairFixture(t, 4)
	pb := pairBlock{j: 2, k: 4}
	fillPair(&pb, bd, sph, rad, false)
	require.Len(t, pb.vals, 5)
	for i, c := range pb.vals {
		require.Equal(t, i-2, c.m)
	}
}

// With mirror symmetry, same-parity pairs keep only the off-diagonal
// couplings: the 11/22 terms are never accumulated, so they are exact
// zeros rather than small cancellation residues.
func TestMirrorSameParitySkipsDiagonal(t *testing.T) {
	bd, sph, rad := pairFixture(t, 3)
	pb := pairBlock{j: 1, k: 3}
	fillPair(&pb, bd, sph, rad, true)
	for _, c := range pb.vals {
		require.Zero(t, c.j11, "m=%d", c.m)
		require.Zero(t, c.j22, "m=%d", c.m)
		require.Zero(t, c.rg11, "m=%d", c.m)
		require.Zero(t, c.rg22, "m=%d", c.m)
	}
	require.NotZero(t, pb.vals[1].j12) // m=0
	require.NotZero(t, pb.vals[1].j21)
}

func TestMirrorOppositeParitySkipsOffDiagonal(t *testing.T) {
	bd, sph, rad := pairFixture(t, 3)
	pb := pairBlock{j: 1, k: 2}
	fillPair(&pb, bd, sph, rad, true)
	for _, c := range pb.vals {
		require.Zero(t, c.j12, "m=%d", c.m)
		require.Zero(t, c.j21, "m=%d", c.m)
		require.Zero(t, c.rg12, "m=%d", c.m)
		require.Zero(t, c.rg21, "m=%d", c.m)
	}
	require.NotZero(t, pb.vals[2].j11) // m=1
	require.NotZero(t, pb.vals[2].j22)
}

// Without the skip, the same couplings still cancel by parity under
// theta -> pi-theta, but only to floating-point accuracy.
func TestSkippedCouplingsCancelNumerically(t *testing.T) {
	bd, sph, rad := pairFixture(t, 3)

	skipped := pairBlock{j: 1, k: 3}
	fillPair(&skipped, bd, sph, rad, true)
	full := pairBlock{j: 1, k: 3}
	fillPair(&full, bd, sph, rad, false)

	for i := range full.vals {
		require.Less(t, cmplx.Abs(full.vals[i].j11), 1e-12, "m=%d", full.vals[i].m)
		require.Less(t, cmplx.Abs(full.vals[i].j22), 1e-12, "m=%d", full.vals[i].m)
		// The surviving couplings do not depend on the skip flag.
		require.Equal(t, skipped.vals[i].j12, full.vals[i].j12)
		require.Equal(t, skipped.vals[i].j21, full.vals[i].j21)
		require.Equal(t, skipped.vals[i].rg12, full.vals[i].rg12)
		require.Equal(t, skipped.vals[i].rg21, full.vals[i].rg21)
	}
}

func TestRadialTablesMatchSpecfun(t *testing.T) {
	r := []float64{0.5, 1, 1.7}
	km := complex(2, 0)
	kp := complex(2.4, 0.1)
	rad := buildRadialTables(5, r, km, kp)
	for i, ri := range r {
		jp := specfun.SphBesselJ(5, kp*complex(ri, 0))
		hm := specfun.SphHankel1(5, km*complex(ri, 0))
		for n := 0; n <= 5; n++ {
			require.Equal(t, jp[n], rad.jp[n][i])
			require.Equal(t, hm[n], rad.hm[n][i])
		}
	}
}
