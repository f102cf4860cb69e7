package shape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/optforge/tmatrix"
)

// Boundary is an ordered set of samples of a particle surface. The
// five per-sample sequences are index-aligned: sample i has position
// (R[i], Theta[i], Phi[i]) in spherical coordinates, outward unit
// normal (NormR[i], NormTheta[i]) in the same basis, and area element
// Area[i]. All samples of an axisymmetric boundary share one Phi.
type Boundary struct {
	R, Theta, Phi    []float64
	NormR, NormTheta []float64
	Area             []float64
}

// Len returns the number of samples.
func (b *Boundary) Len() int { return len(b.R) }

// NewBoundary samples the profile at n Gauss-Legendre nodes in
// cos(theta). The nodes are strictly interior, so theta never touches
// the poles. Area weights carry the full surface-of-revolution
// element 2 pi r sqrt(r^2 + r'^2) together with the quadrature weight,
// so that summing f(sample)*Area[i] integrates f over the surface.
//
// Returns ErrUnsupportedGeometry when the profile is not star-shaped
// (non-positive or non-finite radius at any node).
func NewBoundary(p Profile, n int) (*Boundary, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one boundary sample", tmatrix.ErrUnsupportedGeometry)
	}

	u := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(u, w, -1, 1)

	b := &Boundary{
		R:         make([]float64, n),
		Theta:     make([]float64, n),
		Phi:       make([]float64, n),
		NormR:     make([]float64, n),
		NormTheta: make([]float64, n),
		Area:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		theta := math.Acos(u[i])
		r := p.Radius(theta)
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("%w: profile is not star-shaped at theta=%.6f (r=%v)",
				tmatrix.ErrUnsupportedGeometry, theta, r)
		}
		dr := p.RadiusDeriv(theta)
		g := math.Hypot(r, dr)

		b.R[i] = r
		b.Theta[i] = theta
		b.NormR[i] = r / g
		b.NormTheta[i] = -dr / g
		b.Area[i] = 2 * math.Pi * r * g * w[i]
	}
	return b, nil
}
