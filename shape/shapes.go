package shape

import "math"

// Sphere of radius R centred on the origin.
type Sphere struct {
	R float64
}

func (s Sphere) Radius(float64) float64      { return s.R }
func (s Sphere) RadiusDeriv(float64) float64 { return 0 }
func (s Sphere) MaxRadius() float64          { return s.R }
func (s Sphere) Symmetry() Symmetry          { return Symmetry{RotationalOrder: 0, ZMirror: true} }

// Ellipsoid with semi-axes A, B along x, y and C along z. Only the
// axisymmetric case A == B (a spheroid) is usable by the solvers; a
// triaxial ellipsoid reports 2-fold rotational symmetry and gets
// rejected there.
type Ellipsoid struct {
	A, B, C float64
}

func (e Ellipsoid) Radius(theta float64) float64 {
	st := math.Sin(theta) / e.A
	ct := math.Cos(theta) / e.C
	return 1 / math.Sqrt(st*st+ct*ct)
}

func (e Ellipsoid) RadiusDeriv(theta float64) float64 {
	r := e.Radius(theta)
	return -r * r * r * math.Sin(theta) * math.Cos(theta) * (1/(e.A*e.A) - 1/(e.C*e.C))
}

func (e Ellipsoid) MaxRadius() float64 { return math.Max(math.Max(e.A, e.B), e.C) }

func (e Ellipsoid) Symmetry() Symmetry {
	if e.A == e.B {
		return Symmetry{RotationalOrder: 0, ZMirror: true}
	}
	return Symmetry{RotationalOrder: 2, ZMirror: true}
}

// Cylinder of radius R and full height H, axis along z.
type Cylinder struct {
	R, H float64
}

// capAngle is the polar angle of the cap edge.
func (c Cylinder) capAngle() float64 { return math.Atan2(c.R, c.H/2) }

func (c Cylinder) Radius(theta float64) float64 {
	tc := c.capAngle()
	if theta <= tc || theta >= math.Pi-tc {
		return c.H / 2 / math.Abs(math.Cos(theta))
	}
	return c.R / math.Sin(theta)
}

func (c Cylinder) RadiusDeriv(theta float64) float64 {
	tc := c.capAngle()
	ct, st := math.Cos(theta), math.Sin(theta)
	switch {
	case theta <= tc:
		return c.H / 2 * st / (ct * ct)
	case theta >= math.Pi-tc:
		return -c.H / 2 * st / (ct * ct)
	default:
		return -c.R * ct / (st * st)
	}
}

func (c Cylinder) MaxRadius() float64 { return math.Hypot(c.R, c.H/2) }
func (c Cylinder) Symmetry() Symmetry { return Symmetry{RotationalOrder: 0, ZMirror: true} }

// Superellipsoid with circular cross-section: the surface satisfies
//
//	(rho/A)^(2/N) + (|z|/C)^(2/N) = 1
//
// A is the equatorial semi-axis, C the polar one and N the shape
// exponent: N = 1 is an ellipsoid, N -> 0 approaches a cylinder-like
// box of revolution, N = 2 an octahedron-like solid.
type Superellipsoid struct {
	A, C, N float64
}

func (s Superellipsoid) Radius(theta float64) float64 {
	p := 2 / s.N
	f := math.Pow(math.Sin(theta)/s.A, p) + math.Pow(math.Abs(math.Cos(theta))/s.C, p)
	return math.Pow(f, -1/p)
}

func (s Superellipsoid) RadiusDeriv(theta float64) float64 {
	p := 2 / s.N
	st, ct := math.Sin(theta), math.Cos(theta)
	f := math.Pow(st/s.A, p) + math.Pow(math.Abs(ct)/s.C, p)
	g := math.Pow(st, p-1)*ct/math.Pow(s.A, p) -
		math.Pow(math.Abs(ct), p-1)*sign(ct)*st/math.Pow(s.C, p)
	return -math.Pow(f, -1/p-1) * g
}

func (s Superellipsoid) MaxRadius() float64 {
	// No closed form for general N; scan the profile. The corners of
	// boxy shapes (N < 1) stick out past max(A, C).
	rmax := 0.0
	const n = 2048
	for i := 1; i < n; i++ {
		if r := s.Radius(math.Pi * float64(i) / n); r > rmax {
			rmax = r
		}
	}
	return math.Max(rmax, math.Max(s.A, s.C))
}

func (s Superellipsoid) Symmetry() Symmetry { return Symmetry{RotationalOrder: 0, ZMirror: true} }

// ConeTippedCylinder is a cylinder of radius R and height H with a
// cone of height TipH on each end, mirror-symmetric about the
// equatorial plane.
type ConeTippedCylinder struct {
	R, H, TipH float64
}

func (c ConeTippedCylinder) apex() float64      { return c.H/2 + c.TipH }
func (c ConeTippedCylinder) edgeAngle() float64 { return math.Atan2(c.R, c.H/2) }

func (c ConeTippedCylinder) Radius(theta float64) float64 {
	te := c.edgeAngle()
	st, act := math.Sin(theta), math.Abs(math.Cos(theta))
	if theta <= te || theta >= math.Pi-te {
		return c.R * c.apex() / (c.TipH*st + c.R*act)
	}
	return c.R / st
}

func (c ConeTippedCylinder) RadiusDeriv(theta float64) float64 {
	te := c.edgeAngle()
	st, ct := math.Sin(theta), math.Cos(theta)
	switch {
	case theta <= te:
		den := c.TipH*st + c.R*ct
		return -c.R * c.apex() * (c.TipH*ct - c.R*st) / (den * den)
	case theta >= math.Pi-te:
		den := c.TipH*st - c.R*ct
		return -c.R * c.apex() * (c.TipH*ct + c.R*st) / (den * den)
	default:
		return -c.R * ct / (st * st)
	}
}

func (c ConeTippedCylinder) MaxRadius() float64 {
	return math.Max(c.apex(), math.Hypot(c.R, c.H/2))
}

func (c ConeTippedCylinder) Symmetry() Symmetry {
	return Symmetry{RotationalOrder: 0, ZMirror: true}
}

// Cube with the given edge length, faces normal to the axes. It is
// star-shaped but only 4-fold rotationally symmetric, so the
// axisymmetric solvers reject it; it exists in the catalogue so the
// rejection carries a precise reason.
type Cube struct {
	Edge float64
}

func (c Cube) MaxRadius() float64 { return c.Edge * math.Sqrt(3) / 2 }
func (c Cube) Symmetry() Symmetry { return Symmetry{RotationalOrder: 4, ZMirror: true} }

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
