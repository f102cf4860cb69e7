// Package shape describes the particle geometries the T-matrix solvers
// accept and samples their boundaries.
//
// The solvers only handle star-shaped particles that are fully
// axisymmetric about the z-axis, so the central abstraction is a
// radial profile r(theta). Shapes that exist in the catalogue but are
// not axisymmetric (the cube, triaxial ellipsoids) still report their
// symmetry so callers can reject them with a useful error.
package shape

// Symmetry reports the discrete symmetries of a shape.
type Symmetry struct {
	// RotationalOrder is the order of rotational symmetry about the
	// z-axis; 0 means continuous (full) axisymmetry.
	RotationalOrder int
	// ZMirror is true when the shape is symmetric under reflection
	// through the equatorial plane.
	ZMirror bool
}

// Geometry is implemented by every named shape.
type Geometry interface {
	// MaxRadius is the largest distance from the origin to the surface.
	MaxRadius() float64
	Symmetry() Symmetry
}

// Profile is a star-shaped, axisymmetric radial profile: the surface
// is r(theta) for theta in (0, pi), with r > 0 everywhere.
type Profile interface {
	Geometry
	Radius(theta float64) float64
	// RadiusDeriv is dr/dtheta. Piecewise shapes return the one-sided
	// value at their corners.
	RadiusDeriv(theta float64) float64
}
