package report

import (
	"fmt"
	"image/color"
	"path/filepath"
)

import (
	"github.com/CDupuis7/tML-EC-QR/breath"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot file names inside the model output directory.
const (
	PatternPlotFile     = "breathing_pattern_analysis.png"
	VariabilityPlotFile = "breathing_variability_analysis.png"
)

var (
	normalColor   = color.RGBA{R: 64, G: 112, B: 214, A: 255}
	abnormalColor = color.RGBA{R: 214, G: 69, B: 65, A: 255}
	guideColor    = color.RGBA{R: 46, G: 139, B: 87, A: 255}
)

// SavePlots writes both analysis charts into dir.
func SavePlots(dir string, rows []Row) error {
	if err := SavePatternPlot(filepath.Join(dir, PatternPlotFile), rows); err != nil {
		return err
	}
	return SaveVariabilityPlot(filepath.Join(dir, VariabilityPlotFile), rows)
}

// SavePatternPlot draws breathing rate against average amplitude, with the
// adult resting range marked at 12 and 20 breaths/min.
func SavePatternPlot(path string, rows []Row) error {
	p := plot.New()
	p.Title.Text = "Breathing Pattern Classification"
	p.X.Label.Text = "Breathing Rate (breaths/min)"
	p.Y.Label.Text = "Average Amplitude"

	pts := make(plotter.XYs, len(rows))
	for i, r := range rows {
		pts[i].X = r.Metrics.Rate
		pts[i].Y = r.Metrics.AvgAmplitude
	}
	if err := addClassified(p, pts, rows); err != nil {
		return err
	}
	_, ymin, _, ymax := span(pts)
	for _, x := range []float64{breath.RateLowNormal, breath.RateHighNormal} {
		if err := addGuide(p, plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}}); err != nil {
			return err
		}
	}
	return errors.Wrap(p.Save(10*vg.Inch, 6*vg.Inch, path), "save pattern plot")
}

// SaveVariabilityPlot draws amplitude variability against timing
// variability with the 0.3 attention guides on both axes.
func SaveVariabilityPlot(path string, rows []Row) error {
	p := plot.New()
	p.Title.Text = "Breathing Variability Analysis"
	p.X.Label.Text = "Amplitude Variability (CV)"
	p.Y.Label.Text = "Timing Variability (CV)"

	pts := make(plotter.XYs, len(rows))
	for i, r := range rows {
		pts[i].X = r.Metrics.AmplitudeCV
		pts[i].Y = r.Metrics.DurationCV
	}
	if err := addClassified(p, pts, rows); err != nil {
		return err
	}
	xmin, ymin, xmax, ymax := span(pts)
	if err := addGuide(p, plotter.XYs{{X: breath.VariabilityLimit, Y: ymin}, {X: breath.VariabilityLimit, Y: ymax}}); err != nil {
		return err
	}
	if err := addGuide(p, plotter.XYs{{X: xmin, Y: breath.VariabilityLimit}, {X: xmax, Y: breath.VariabilityLimit}}); err != nil {
		return err
	}
	return errors.Wrap(p.Save(10*vg.Inch, 6*vg.Inch, path), "save variability plot")
}

// addClassified scatters the points colored by predicted class and labels
// each with its patient id.
func addClassified(p *plot.Plot, pts plotter.XYs, rows []Row) error {
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "build scatter")
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := draw.GlyphStyle{Radius: vg.Points(5), Shape: draw.CircleGlyph{}, Color: normalColor}
		if rows[i].Predicted == 1 {
			style.Color = abnormalColor
		}
		return style
	}
	p.Add(sc, plotter.NewGrid())
	p.Legend.Add("abnormal in red", sc)
	p.Legend.Top = true

	labels := plotter.XYLabels{XYs: pts, Labels: make([]string, len(rows))}
	for i, r := range rows {
		labels.Labels[i] = fmt.Sprintf("Patient %s", r.PatientID)
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return errors.Wrap(err, "build labels")
	}
	p.Add(l)
	return nil
}

func addGuide(p *plot.Plot, pts plotter.XYs) error {
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "build guide line")
	}
	ln.LineStyle.Color = guideColor
	ln.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(ln)
	return nil
}

// span returns the padded bounding box of the points so guide lines cover
// the whole data region.
func span(pts plotter.XYs) (xmin, ymin, xmax, ymax float64) {
	if len(pts) == 0 {
		return 0, 0, 1, 1
	}
	xmin, ymin = pts[0].X, pts[0].Y
	xmax, ymax = pts[0].X, pts[0].Y
	for _, pt := range pts[1:] {
		if pt.X < xmin {
			xmin = pt.X
		}
		if pt.X > xmax {
			xmax = pt.X
		}
		if pt.Y < ymin {
			ymin = pt.Y
		}
		if pt.Y > ymax {
			ymax = pt.Y
		}
	}
	xpad := (xmax - xmin) * 0.05
	ypad := (ymax - ymin) * 0.05
	if xpad == 0 {
		xpad = 1
	}
	if ypad == 0 {
		ypad = 1
	}
	return xmin - xpad, ymin - ypad, xmax + xpad, ymax + ypad
}
