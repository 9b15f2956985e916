// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msteel implements magnetisation and core-loss curves of electrical steels
package msteel

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Curve wraps one steel grade's tabulated magnetisation and loss-density samples
// into two continuous functions of flux density. Instances are immutable after
// construction and are meant to be shared by reference between circuits.
type Curve struct {

	// magnetisation samples
	name string    // grade name
	b    []float64 // flux density [T]; strictly increasing
	h    []float64 // field strength [A/cm]

	// loss samples; empty for grades measured without a loss table
	bw []float64 // flux density [T]; strictly increasing
	w  []float64 // specific core loss [W/kg]
}

// NewCurve builds a magnetisation curve from ordered samples
func NewCurve(name string, b, h []float64) (*Curve, error) {
	if len(b) != len(h) {
		return nil, chk.Err("steel %q: B and H tables have different lengths: %d != %d", name, len(b), len(h))
	}
	if len(b) < 3 {
		return nil, chk.Err("steel %q: at least 3 magnetisation samples are required", name)
	}
	if !increasing(b) {
		return nil, chk.Err("steel %q: B samples must be strictly increasing", name)
	}
	return &Curve{name: name, b: b, h: h}, nil
}

// SetLossTable attaches the specific core-loss samples
func (o *Curve) SetLossTable(b, w []float64) error {
	if len(b) != len(w) {
		return chk.Err("steel %q: loss tables have different lengths: %d != %d", o.name, len(b), len(w))
	}
	if len(b) < 2 {
		return chk.Err("steel %q: at least 2 loss samples are required", o.name)
	}
	if !increasing(b) {
		return chk.Err("steel %q: loss B samples must be strictly increasing", o.name)
	}
	o.bw, o.w = b, w
	return nil
}

// Name returns the grade name
func (o *Curve) Name() string { return o.name }

// HasLossTable tells whether the grade was supplied with core-loss data
func (o *Curve) HasLossTable() bool { return len(o.bw) > 0 }

// Magnetization returns the field strength H [A/cm] for a flux density B [T].
// Piecewise quadratic interpolation through the samples; outside the sampled
// range the fit of the nearest triplet is continued rather than clamped, since
// fault studies routinely drive B past the tabulated 1.8–2.0 T.
func (o *Curve) Magnetization(B float64) float64 {
	k := bracket(o.b, B)
	// centre the triplet on the bracketing segment where possible
	if k > 0 {
		k--
	}
	if k > len(o.b)-3 {
		k = len(o.b) - 3
	}
	x0, x1, x2 := o.b[k], o.b[k+1], o.b[k+2]
	y0, y1, y2 := o.h[k], o.h[k+1], o.h[k+2]
	l0 := (B - x1) * (B - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (B - x0) * (B - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (B - x0) * (B - x1) / ((x2 - x0) * (x2 - x1))
	return y0*l0 + y1*l1 + y2*l2
}

// LossDensity returns the specific core loss [W/kg] for a flux density B [T].
// Piecewise linear with linear extrapolation beyond the upper sampled bound:
// most grades show diminishing marginal loss growth near saturation, so a
// linear extrapolant under-predicts less there than a quadratic one would.
func (o *Curve) LossDensity(B float64) float64 {
	if len(o.bw) == 0 {
		chk.Panic("steel %q has no loss table", o.name)
	}
	return LinInterp(o.bw, o.w, B)
}

// LinInterp interpolates y(x) linearly through the samples (xs, ys), with
// linear extrapolation beyond both ends. xs must be strictly increasing.
func LinInterp(xs, ys []float64, x float64) float64 {
	i := bracket(xs, x)
	return ys[i] + (ys[i+1]-ys[i])*(x-xs[i])/(xs[i+1]-xs[i])
}

// bracket returns i such that xs[i] ≤ x < xs[i+1], clamped to [0, len(xs)-2]
func bracket(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i > 0 {
		i--
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}
	return i
}

func increasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}
