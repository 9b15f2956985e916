// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cpmech/gosl/utl"

	"github.com/MtScience/EMCalculations/msteel"
)

// PlotCharacteristic renders the no-load characteristic (relative voltage
// over field current) to a PNG file. Dimensions in cm.
func (o *Results) PlotCharacteristic(width, height float64, filename string) error {
	p := plot.New()
	p.Title.Text = "No-load characteristic"
	p.X.Label.Text = "field current [A]"
	p.Y.Label.Text = "relative voltage"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(o.CharLevels))
	for i := range pts {
		pts[i].X = o.CharCurrents[i]
		pts[i].Y = o.CharLevels[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	nominal, err := plotter.NewScatter(plotter.XYs{{X: o.NoLoad.RotorCurrent, Y: 1}})
	if err != nil {
		return err
	}
	p.Add(nominal)
	p.Legend.Add("rated voltage", nominal)

	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename)
}

// PlotSteel renders the magnetization curve of one steel grade to a PNG
// file, sampling the interpolant up to maxB tesla. Dimensions in cm.
func PlotSteel(curve *msteel.Curve, maxB, width, height float64, filename string) error {
	p := plot.New()
	p.Title.Text = curve.Name()
	p.X.Label.Text = "H [A/cm]"
	p.Y.Label.Text = "B [T]"
	p.Add(plotter.NewGrid())

	bs := utl.LinSpace(0, maxB, 121)
	pts := make(plotter.XYs, len(bs))
	for i, b := range bs {
		pts[i].X = curve.Magnetization(b)
		pts[i].Y = b
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename)
}
