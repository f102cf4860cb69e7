package ebcm_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optforge/tmatrix"
	"github.com/optforge/tmatrix/ebcm"
	"github.com/optforge/tmatrix/mie"
	"github.com/optforge/tmatrix/modes"
	"github.com/optforge/tmatrix/shape"
)

// maxAbs returns the largest entry magnitude, used to scale tolerances.
func maxAbs(tm *tmatrix.TMatrix) float64 {
	max := 0.0
	for i := 0; i < tm.Dim(); i++ {
		for j := 0; j < tm.Dim(); j++ {
			if a := cmplx.Abs(tm.At(i, j)); a > max {
				max = a
			}
		}
	}
	return max
}

// The null-field construction must reproduce the analytic Mie solution
// when the particle is a sphere: diagonal entries match the Mie
// coefficients, everything else is numerical noise.
func TestSphereMatchesMie(t *testing.T) {
	cfg := tmatrix.Config{Nmax: 6, WavelengthMedium: 1, IndexRelative: 1.2}

	got, err := ebcm.NewFromProfile(shape.Sphere{R: 1}, cfg)
	require.NoError(t, err)
	want, err := mie.New(1, cfg)
	require.NoError(t, err)

	require.Equal(t, 96, got.Dim())
	require.Equal(t, tmatrix.KindScattered, got.Kind())
	require.Equal(t, 6, got.Nmax())

	for i := 0; i < got.Dim(); i++ {
		for j := 0; j < got.Dim(); j++ {
			g := got.At(i, j)
			if i != j {
				require.Less(t, cmplx.Abs(g), 1e-8, "off-diagonal (%d,%d)", i, j)
				continue
			}
			w := want.At(i, i)
			tol := 1e-6 * (cmplx.Abs(w) + 1e-3)
			require.InDelta(t, real(w), real(g), tol, "diagonal %d", i)
			require.InDelta(t, imag(w), imag(g), tol, "diagonal %d", i)
		}
	}
}

// For a mirror-symmetric particle the same-polarization blocks couple
// only degrees of equal parity and the cross-polarization blocks only
// degrees of opposite parity; orders never mix at all.
func TestMirrorSymmetryStructure(t *testing.T) {
	cfg := tmatrix.Config{Nmax: 5, WavelengthMedium: 1, IndexRelative: 1.3}
	tm, err := ebcm.NewFromProfile(shape.Ellipsoid{A: 0.4, B: 0.4, C: 0.52}, cfg)
	require.NoError(t, err)

	half := modes.Count(5)
	scale := maxAbs(tm)
	for pr := 0; pr < 2; pr++ {
		for pc := 0; pc < 2; pc++ {
			crossPol := pr != pc
			for k := 1; k <= 5; k++ {
				for mk := -k; mk <= k; mk++ {
					for j := 1; j <= 5; j++ {
						for mj := -j; mj <= j; mj++ {
							v := tm.At(modes.Index(k, mk)-1+pr*half, modes.Index(j, mj)-1+pc*half)
							forbidden := mk != mj ||
								(crossPol && (j+k)%2 == 0) ||
								(!crossPol && (j+k)%2 != 0)
							if forbidden {
								require.Less(t, cmplx.Abs(v), 1e-9*scale,
									"pol (%d,%d) modes (%d,%d)<-(%d,%d)", pr, pc, k, mk, j, mj)
							}
						}
					}
				}
			}
		}
	}

	// Cross-polarization vanishes entirely at m = 0.
	for k := 1; k <= 5; k++ {
		for j := 1; j <= 5; j++ {
			v := tm.At(modes.Index(k, 0)-1, modes.Index(j, 0)-1+half)
			require.Less(t, cmplx.Abs(v), 1e-9*scale)
		}
	}
}

// Reciprocity for an axisymmetric scatterer: within each order block
// the same-polarization blocks are symmetric and the cross-polarization
// blocks are negative transposes of each other, and flipping the sign
// of the order leaves the same-polarization entries unchanged while
// negating the cross-polarization ones.
func TestReciprocity(t *testing.T) {
	const nmax = 7
	cfg := tmatrix.Config{Nmax: nmax, KMedium: 2 * math.Pi, IndexRelative: 1.2}
	tm, err := ebcm.NewFromProfile(shape.Ellipsoid{A: 0.3, B: 0.3, C: 0.33}, cfg)
	require.NoError(t, err)

	half := modes.Count(nmax)
	tol := 1e-6 * maxAbs(tm)
	at := func(p, q, n, nn, m int) complex128 {
		return tm.At(modes.Index(n, m)-1+p*half, modes.Index(nn, m)-1+q*half)
	}
	for m := -nmax; m <= nmax; m++ {
		lo := int(math.Abs(float64(m)))
		if lo < 1 {
			lo = 1
		}
		for n := lo; n <= nmax; n++ {
			for nn := lo; nn <= nmax; nn++ {
				require.Less(t, cmplx.Abs(at(0, 0, n, nn, m)-at(0, 0, nn, n, m)), tol)
				require.Less(t, cmplx.Abs(at(1, 1, n, nn, m)-at(1, 1, nn, n, m)), tol)
				require.Less(t, cmplx.Abs(at(0, 1, n, nn, m)+at(1, 0, nn, n, m)), tol)

				require.Less(t, cmplx.Abs(at(0, 0, n, nn, m)-at(0, 0, n, nn, -m)), tol)
				require.Less(t, cmplx.Abs(at(1, 1, n, nn, m)-at(1, 1, n, nn, -m)), tol)
				require.Less(t, cmplx.Abs(at(0, 1, n, nn, m)+at(0, 1, n, nn, -m)), tol)
			}
		}
	}
}

// Raising the truncation degree must not move the converged low-degree
// entries.
func TestTruncationStability(t *testing.T) {
	base := tmatrix.Config{KMedium: 2 * math.Pi, IndexRelative: 1.2}
	prof := shape.Ellipsoid{A: 0.3, B: 0.3, C: 0.36}

	cfg5 := base
	cfg5.Nmax = 5
	t5, err := ebcm.NewFromProfile(prof, cfg5)
	require.NoError(t, err)
	cfg7 := base
	cfg7.Nmax = 7
	t7, err := ebcm.NewFromProfile(prof, cfg7)
	require.NoError(t, err)

	h5 := modes.Count(5)
	h7 := modes.Count(7)
	tol := 1e-4 * maxAbs(t7)
	for p := 0; p < 2; p++ {
		for q := 0; q < 2; q++ {
			for n := 1; n <= 3; n++ {
				for nn := 1; nn <= 3; nn++ {
					lo := n
					if nn < lo {
						lo = nn
					}
					for m := -lo; m <= lo; m++ {
						a := t5.At(modes.Index(n, m)-1+p*h5, modes.Index(nn, m)-1+q*h5)
						b := t7.At(modes.Index(n, m)-1+p*h7, modes.Index(nn, m)-1+q*h7)
						require.Less(t, cmplx.Abs(a-b), tol, "pol (%d,%d) (%d,%d,%d)", p, q, n, nn, m)
					}
				}
			}
		}
	}
}

func TestDefaultTruncation(t *testing.T) {
	cfg := tmatrix.Config{WavelengthMedium: 2 * math.Pi, IndexRelative: 1.2}
	tm, err := ebcm.NewFromProfile(shape.Sphere{R: 1}, cfg)
	require.NoError(t, err)
	require.Equal(t, modes.Estimate(1, 1), tm.Nmax())
}

func TestConfigErrors(t *testing.T) {
	_, err := ebcm.NewFromProfile(shape.Sphere{R: 1}, tmatrix.Config{Nmax: 4})
	require.ErrorIs(t, err, tmatrix.ErrConfiguration)

	cfg := tmatrix.Config{Nmax: 4, WavelengthMedium: 1, IndexRelative: 1.2, RotationalSymmetry: 4}
	_, err = ebcm.NewFromProfile(shape.Sphere{R: 1}, cfg)
	require.ErrorIs(t, err, tmatrix.ErrUnsupportedGeometry)
}

func TestGeometryRejections(t *testing.T) {
	cfg := tmatrix.Config{Nmax: 4, WavelengthMedium: 1, IndexRelative: 1.2}

	_, err := ebcm.NewFromProfile(shape.Cube{Edge: 1}, cfg)
	require.ErrorIs(t, err, tmatrix.ErrUnsupportedGeometry)

	_, err = ebcm.NewFromProfile(shape.Ellipsoid{A: 1, B: 1.2, C: 1.4}, cfg)
	require.ErrorIs(t, err, tmatrix.ErrUnsupportedGeometry)

	bd, err := shape.NewBoundary(shape.Sphere{R: 1}, 16)
	require.NoError(t, err)
	bd.Phi[3] = 0.5
	_, err = ebcm.New(bd, cfg)
	require.ErrorIs(t, err, tmatrix.ErrUnsupportedGeometry)
}

// A boundary with fewer quadrature nodes than the null-field matrix
// needs leaves the system rank-deficient.
func TestUnderresolvedBoundarySingular(t *testing.T) {
	bd, err := shape.NewBoundary(shape.Sphere{R: 1}, 2)
	require.NoError(t, err)
	cfg := tmatrix.Config{Nmax: 6, WavelengthMedium: 1, IndexRelative: 1.2}
	_, err = ebcm.New(bd, cfg)
	require.ErrorIs(t, err, tmatrix.ErrNumericalSingularity)
}
