package tmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Config collects the optical options recognized by the construction
// strategies. All fields are optional; zero values mean "not given".
//
// The medium wavenumber is resolved in this order: KMedium wins over
// WavelengthMedium (the wavelength in the medium), which wins over
// IndexMedium combined with Wavelength0. Giving more than one of the
// three is ambiguous and rejected. The particle wavenumber resolves
// the same way, with IndexRelative (particle index over medium index)
// as a fourth alternative that scales the resolved medium wavenumber.
// Wavelength0 is the vacuum wavelength; it is required whenever an
// index-based specification is used.
type Config struct {
	// Nmax is the multipole truncation degree. Zero means "derive from
	// the particle size and the medium wavenumber".
	Nmax int

	KMedium          complex128
	WavelengthMedium float64
	IndexMedium      complex128

	KParticle          complex128
	WavelengthParticle float64
	IndexParticle      complex128
	IndexRelative      complex128

	Wavelength0 float64

	// RotationalSymmetry is the discrete rotational symmetry order of
	// the particle. Zero denotes full axisymmetry, which is the only
	// value the solvers support.
	RotationalSymmetry int

	// ZMirrorSymmetry marks the particle as symmetric under reflection
	// through its equatorial plane.
	ZMirrorSymmetry bool
}

// Wavenumbers resolves the medium and particle wavenumbers from the
// configured alternatives. Both results are guaranteed non-zero and
// finite.
func (c Config) Wavenumbers() (kMedium, kParticle complex128, err error) {
	kMedium, err = resolveK("medium", c.KMedium, c.WavelengthMedium, c.IndexMedium, 0, 0, c.Wavelength0)
	if err != nil {
		return 0, 0, err
	}
	kParticle, err = resolveK("particle", c.KParticle, c.WavelengthParticle, c.IndexParticle, c.IndexRelative, kMedium, c.Wavelength0)
	if err != nil {
		return 0, 0, err
	}
	return kMedium, kParticle, nil
}

func resolveK(side string, k complex128, wavelength float64, index, indexRel, kMedium complex128, wavelength0 float64) (complex128, error) {
	given := 0
	if k != 0 {
		given++
	}
	if wavelength != 0 {
		given++
	}
	if index != 0 {
		given++
	}
	if indexRel != 0 {
		given++
	}
	if given == 0 {
		return 0, fmt.Errorf("%w: no wavenumber, wavelength or index given for the %s", ErrConfiguration, side)
	}
	if given > 1 {
		return 0, fmt.Errorf("%w: ambiguous %s specification, give exactly one of wavenumber, wavelength or index", ErrConfiguration, side)
	}

	switch {
	case k != 0:
		// use as given
	case wavelength != 0:
		if wavelength < 0 || math.IsInf(wavelength, 0) || math.IsNaN(wavelength) {
			return 0, fmt.Errorf("%w: %s wavelength must be positive and finite", ErrConfiguration, side)
		}
		k = complex(2*math.Pi/wavelength, 0)
	case index != 0:
		if wavelength0 <= 0 || math.IsInf(wavelength0, 0) || math.IsNaN(wavelength0) {
			return 0, fmt.Errorf("%w: index-based %s specification needs a positive vacuum wavelength", ErrConfiguration, side)
		}
		k = index * complex(2*math.Pi/wavelength0, 0)
	case indexRel != 0:
		k = indexRel * kMedium
	}

	if k == 0 || cmplx.IsInf(k) || cmplx.IsNaN(k) {
		return 0, fmt.Errorf("%w: resolved %s wavenumber is not finite and non-zero", ErrConfiguration, side)
	}
	return k, nil
}
