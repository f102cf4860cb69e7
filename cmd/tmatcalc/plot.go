package main

import (
	"image/color"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	// Liberation fonts register automatically on import.
	_ "gonum.org/v1/plot/font/liberation"

	"github.com/optforge/tmatrix/ebcm"
	"github.com/optforge/tmatrix/modes"
)

// convergencePlot recomputes the T-matrix at every truncation degree
// up to nmax and plots the magnitude of the degree-1 TE diagonal
// entry, the slowest quantity to settle.
func convergencePlot(sc *Scene, nmax int, path string) error {
	pts := make(plotter.XYs, 0, nmax)
	for n := 1; n <= nmax; n++ {
		cfg := sc.Config
		cfg.Nmax = n
		t, err := ebcm.NewFromProfile(sc.Geometry, cfg)
		if err != nil {
			return err
		}
		i := modes.Index(1, 0) - 1
		pts = append(pts, plotter.XY{X: float64(n), Y: cmplx.Abs(t.At(i, i))})
	}

	p := plot.New()
	p.Title.Text = "T-matrix truncation convergence"
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = "Nmax"
	p.Y.Label.Text = "|T| at degree 1, m=0 (TE)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255} // blue
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
