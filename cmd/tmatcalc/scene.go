package main

import (
	json "github.com/KevinWang15/go-json5"

	"github.com/optforge/tmatrix"
	"github.com/optforge/tmatrix/shape"
)

// Scene is everything tmatcalc needs: a particle and its optics.
type Scene struct {
	Geometry shape.Geometry
	Config   tmatrix.Config
	PlotPath string
}

func getLeafValue(table map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = table
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func floatField(table map[string]interface{}, name string, def float64) (float64, string) {
	v, ok := getLeafValue(table, name)
	if !ok {
		return def, ""
	}
	f, ok := v.(float64)
	if !ok {
		return 0, name + ": is not a number"
	}
	return f, ""
}

func stringField(table map[string]interface{}, name string, def string) (string, string) {
	v, ok := getLeafValue(table, name)
	if !ok {
		return def, ""
	}
	s, ok := v.(string)
	if !ok {
		return "", name + ": is not a string"
	}
	return s, ""
}

// parseScene validates the JSON5 scene file and fills a Scene. The
// returned message names the first offending field, empty on success.
func parseScene(data []byte) (*Scene, string) {
	var table map[string]interface{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, "scene file is not valid JSON5: " + err.Error()
	}

	var sc Scene
	var msg string

	shapeName, msg := stringField(table, "shape", "")
	if msg != "" {
		return nil, msg
	}
	if shapeName == "" {
		return nil, "shape: required field is missing"
	}

	// Geometry parameters; each shape reads the ones it needs.
	radius, msg := floatField(table, "radius", 0)
	if msg != "" {
		return nil, msg
	}
	semiRho, msg := floatField(table, "semi_axis_rho", radius)
	if msg != "" {
		return nil, msg
	}
	semiB, msg := floatField(table, "semi_axis_b", semiRho)
	if msg != "" {
		return nil, msg
	}
	semiZ, msg := floatField(table, "semi_axis_z", 0)
	if msg != "" {
		return nil, msg
	}
	height, msg := floatField(table, "height", 0)
	if msg != "" {
		return nil, msg
	}
	exponent, msg := floatField(table, "exponent", 1)
	if msg != "" {
		return nil, msg
	}
	tipHeight, msg := floatField(table, "tip_height", 0)
	if msg != "" {
		return nil, msg
	}
	edge, msg := floatField(table, "edge", 0)
	if msg != "" {
		return nil, msg
	}

	switch shapeName {
	case "sphere":
		sc.Geometry = shape.Sphere{R: radius}
	case "ellipsoid", "spheroid":
		sc.Geometry = shape.Ellipsoid{A: semiRho, B: semiB, C: semiZ}
	case "cylinder":
		sc.Geometry = shape.Cylinder{R: radius, H: height}
	case "superellipsoid":
		sc.Geometry = shape.Superellipsoid{A: semiRho, C: semiZ, N: exponent}
	case "cone-tipped-cylinder":
		sc.Geometry = shape.ConeTippedCylinder{R: radius, H: height, TipH: tipHeight}
	case "cube":
		sc.Geometry = shape.Cube{Edge: edge}
	default:
		return nil, "shape: unknown shape " + shapeName
	}

	// Optics. Unset fields stay zero and the library resolves or
	// rejects the combination.
	if sc.Config.Wavelength0, msg = floatField(table, "wavelength0", 0); msg != "" {
		return nil, msg
	}
	if sc.Config.WavelengthMedium, msg = floatField(table, "wavelength_medium", 0); msg != "" {
		return nil, msg
	}
	if sc.Config.WavelengthParticle, msg = floatField(table, "wavelength_particle", 0); msg != "" {
		return nil, msg
	}
	km, msg := floatField(table, "k_medium", 0)
	if msg != "" {
		return nil, msg
	}
	kp, msg := floatField(table, "k_particle", 0)
	if msg != "" {
		return nil, msg
	}
	sc.Config.KMedium = complex(km, 0)
	sc.Config.KParticle = complex(kp, 0)

	for _, f := range []struct {
		name string
		dst  *complex128
	}{
		{"index_medium", &sc.Config.IndexMedium},
		{"index_particle", &sc.Config.IndexParticle},
		{"index_relative", &sc.Config.IndexRelative},
	} {
		re, msg := floatField(table, f.name, 0)
		if msg != "" {
			return nil, msg
		}
		im, msg := floatField(table, f.name+"_imag", 0)
		if msg != "" {
			return nil, msg
		}
		*f.dst = complex(re, im)
	}

	nmax, msg := floatField(table, "nmax", 0)
	if msg != "" {
		return nil, msg
	}
	sc.Config.Nmax = int(nmax)

	if sc.PlotPath, msg = stringField(table, "convergence_plot_path", ""); msg != "" {
		return nil, msg
	}
	return &sc, ""
}
