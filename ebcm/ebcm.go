package ebcm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/optforge/tmatrix"
	"github.com/optforge/tmatrix/modes"
	"github.com/optforge/tmatrix/shape"
	"github.com/optforge/tmatrix/specfun"
)

// condLimit is the largest condition number of the null-field matrix
// accepted by the solver before reporting a numerical singularity.
const condLimit = 1e12

// samplesPerDegree sets the boundary sampling density used by
// NewFromProfile: 4*(Nmax+2) Gauss-Legendre nodes.
const samplesPerDegree = 4

// New computes the T-matrix of the particle whose surface is described
// by the boundary samples, using the extended boundary condition
// method. The boundary must be axisymmetric: every sample shares one
// azimuthal angle. The returned matrix is square with dimension
// 2*Nmax*(Nmax+2) and tagged as a scattered-field operator.
func New(bd *shape.Boundary, cfg tmatrix.Config) (*tmatrix.TMatrix, error) {
	if err := validateBoundary(bd); err != nil {
		return nil, err
	}
	if cfg.RotationalSymmetry != 0 {
		return nil, fmt.Errorf("%w: discrete rotational symmetry order %d is unsupported, only full axisymmetry",
			tmatrix.ErrUnsupportedGeometry, cfg.RotationalSymmetry)
	}
	kMedium, kParticle, err := cfg.Wavenumbers()
	if err != nil {
		return nil, err
	}

	nmax := cfg.Nmax
	if nmax == 0 {
		rmax := 0.0
		for _, r := range bd.R {
			if r > rmax {
				rmax = r
			}
		}
		nmax = modes.Estimate(kMedium, rmax)
	}
	if nmax < 1 {
		return nil, fmt.Errorf("%w: Nmax must be >= 1, got %d", tmatrix.ErrConfiguration, nmax)
	}

	sph := specfun.SpharmTable(nmax, bd.Theta, bd.Phi)
	rad := buildRadialTables(nmax, bd.R, kMedium, kParticle)
	blocks := assembleCouplings(bd, sph, rad, nmax, cfg.ZMirrorSymmetry)
	q, rgq := buildGlobal(blocks, nmax, kMedium, kParticle)

	t, err := solve(q, rgq)
	if err != nil {
		return nil, err
	}
	return tmatrix.New(t, tmatrix.KindScattered, nmax)
}

// NewFromProfile computes the T-matrix for a named shape. It checks
// that the shape is star-shaped and fully axisymmetric, picks the
// truncation degree when the config leaves it open, samples the
// boundary, detects mirror symmetry and delegates to New.
func NewFromProfile(g shape.Geometry, cfg tmatrix.Config) (*tmatrix.TMatrix, error) {
	sym := g.Symmetry()
	if sym.RotationalOrder != 0 {
		return nil, fmt.Errorf("%w: shape %T has %d-fold rotational symmetry, need full axisymmetry",
			tmatrix.ErrUnsupportedGeometry, g, sym.RotationalOrder)
	}
	prof, ok := g.(shape.Profile)
	if !ok {
		return nil, fmt.Errorf("%w: shape %T has no star-shaped radial profile", tmatrix.ErrUnsupportedGeometry, g)
	}

	kMedium, _, err := cfg.Wavenumbers()
	if err != nil {
		return nil, err
	}
	if cfg.Nmax == 0 {
		cfg.Nmax = modes.Estimate(kMedium, prof.MaxRadius())
	}
	cfg.ZMirrorSymmetry = sym.ZMirror

	bd, err := shape.NewBoundary(prof, samplesPerDegree*(cfg.Nmax+2))
	if err != nil {
		return nil, err
	}
	return New(bd, cfg)
}

func validateBoundary(bd *shape.Boundary) error {
	n := bd.Len()
	if n == 0 {
		return fmt.Errorf("%w: empty boundary", tmatrix.ErrUnsupportedGeometry)
	}
	if len(bd.Theta) != n || len(bd.Phi) != n || len(bd.NormR) != n ||
		len(bd.NormTheta) != n || len(bd.Area) != n {
		return fmt.Errorf("%w: boundary sequences have mismatched lengths", tmatrix.ErrUnsupportedGeometry)
	}
	for i := 0; i < n; i++ {
		if math.Abs(bd.Phi[i]-bd.Phi[0]) > 1e-12 {
			return fmt.Errorf("%w: boundary samples span more than one azimuthal angle", tmatrix.ErrUnsupportedGeometry)
		}
		if !(bd.R[i] > 0) {
			return fmt.Errorf("%w: boundary radius must be positive at sample %d", tmatrix.ErrUnsupportedGeometry, i)
		}
		if !(bd.Area[i] > 0) {
			return fmt.Errorf("%w: boundary area element must be positive at sample %d", tmatrix.ErrUnsupportedGeometry, i)
		}
	}
	return nil
}

// buildGlobal scatters the coupling values into the two global
// matrices. Each polarization block has dimension Nmax*(Nmax+2); the
// combined index idx(n,m) = n(n+1)+m addresses rows by the response
// degree k and columns by the source degree j, offset by the block
// size for the second polarization.
func buildGlobal(blocks []pairBlock, nmax int, kMedium, kParticle complex128) (q, rgq *mat.CDense) {
	half := modes.Count(nmax)
	size := 2 * half
	q = mat.NewCDense(size, size, nil)
	rgq = mat.NewCDense(size, size, nil)

	ikm := 1i * kMedium
	for _, b := range blocks {
		for _, c := range b.vals {
			row := modes.Index(b.k, c.m) - 1
			col := modes.Index(b.j, c.m) - 1

			q.Set(row, col, ikm*(kParticle*c.j21+kMedium*c.j12))
			q.Set(row, col+half, ikm*(kParticle*c.j11+kMedium*c.j22))
			q.Set(row+half, col, ikm*(kParticle*c.j22+kMedium*c.j11))
			q.Set(row+half, col+half, ikm*(kParticle*c.j12+kMedium*c.j21))

			rgq.Set(row, col, ikm*(kParticle*c.rg21+kMedium*c.rg12))
			rgq.Set(row, col+half, ikm*(kParticle*c.rg11+kMedium*c.rg22))
			rgq.Set(row+half, col, ikm*(kParticle*c.rg22+kMedium*c.rg11))
			rgq.Set(row+half, col+half, ikm*(kParticle*c.rg12+kMedium*c.rg21))
		}
	}
	return q, rgq
}

// solve computes T = -RgQ Q^-1 by solving the transposed system
// Q^T X = RgQ^T and returning -X^T. Gonum's LU works on real
// matrices, so the complex system is embedded in a real one of twice
// the dimension, [[Re -Im],[Im Re]].
func solve(q, rgq *mat.CDense) (*mat.CDense, error) {
	n, _ := q.Dims()

	a := mat.NewDense(2*n, 2*n, nil)
	b := mat.NewDense(2*n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Transposed coefficients.
			qv := q.At(j, i)
			a.Set(i, j, real(qv))
			a.Set(i, j+n, -imag(qv))
			a.Set(i+n, j, imag(qv))
			a.Set(i+n, j+n, real(qv))

			rv := rgq.At(j, i)
			b.Set(i, j, real(rv))
			b.Set(i+n, j, imag(rv))
		}
	}

	var lu mat.LU
	lu.Factorize(a)
	cond := lu.Cond()
	if math.IsNaN(cond) || cond > condLimit {
		return nil, fmt.Errorf("%w: condition number %.3g exceeds %.0e", tmatrix.ErrNumericalSingularity, cond, condLimit)
	}

	x := mat.NewDense(2*n, n, nil)
	if err := lu.SolveTo(x, false, b); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("%w: %v", tmatrix.ErrNumericalSingularity, err)
		}
	}

	t := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.Set(i, j, -complex(x.At(j, i), x.At(j+n, i)))
		}
	}
	return t, nil
}
