package tmatrix

import "errors"

// All failures are reported at construction time; a partial or
// NaN-filled T-matrix is never returned.
var (
	// ErrConfiguration reports a missing or ambiguous optical
	// specification, e.g. neither a wavenumber nor a wavelength given,
	// or a refractive index given without the vacuum wavelength.
	ErrConfiguration = errors.New("tmatrix: invalid optical configuration")

	// ErrUnsupportedGeometry reports a particle that the solver cannot
	// handle: not star-shaped, not fully axisymmetric, or boundary
	// samples that do not share a single azimuthal angle.
	ErrUnsupportedGeometry = errors.New("tmatrix: unsupported geometry")

	// ErrNumericalSingularity reports that the null-field system is
	// singular or too ill-conditioned to solve at the requested
	// truncation order.
	ErrNumericalSingularity = errors.New("tmatrix: singular null-field system")
)
