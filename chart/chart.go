// Package chart draws the Current vs Calibration line chart from a results
// workbook.
package chart

import (
	"math"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"kastelo.dev/ina219/excel"
)

// RequiredColumns must be present in the table, checked in this order. The
// first is plotted on the x axis, the second on the y axis.
var RequiredColumns = []string{"Calibration", "Current_mA"}

const (
	title  = "Current vs Calibration"
	xLabel = "Calibration"
	yLabel = "Current (mA)"
)

// Render loads the workbook at path and shows its chart with v.
func Render(path string, v Viewer) error {
	t, err := excel.ReadFile(path)
	if err != nil {
		return err
	}
	p, err := New(t)
	if err != nil {
		return err
	}
	return v.Show(p)
}

// New builds the chart for t: Current_mA against Calibration in row order,
// points joined by straight lines and marked with circles.
func New(t *excel.Table) (*plot.Plot, error) {
	cols := make([][]float64, len(RequiredColumns))
	for i, name := range RequiredColumns {
		vs, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		cols[i] = vs
	}
	xs, ys := cols[0], cols[1]

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	for _, seg := range segments(xs, ys) {
		line, points, err := plotter.NewLinePoints(seg)
		if err != nil {
			return nil, err
		}
		line.Color = colornames.Blue
		points.Shape = draw.CircleGlyph{}
		points.Color = colornames.Blue
		p.Add(line, points)
	}

	return p, nil
}

// segments pairs xs and ys into runs of plottable points. A row where
// either value is missing ends the current run, leaving a gap in the line.
func segments(xs, ys []float64) []plotter.XYs {
	var res []plotter.XYs
	var cur plotter.XYs
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			if len(cur) > 0 {
				res = append(res, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
