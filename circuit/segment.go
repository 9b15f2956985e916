// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circuit computes the magnetic circuit of a turbogenerator: the
// per-segment flux densities, field strengths and magnetomotive forces of the
// main flux path, at no load and under load. The path is split into named
// segments (air gap, yokes, teeth at two height fractions); each carries a
// magnetic line length in cm and a cross-section in m², and the rotor tooth
// segments additionally carry a flux branching factor used above the
// saturation knee.
package circuit

import (
	"math"

	"github.com/MtScience/EMCalculations/machine"
	"github.com/MtScience/EMCalculations/msteel"
)

// SegID identifies one segment of the main magnetic flux path
type SegID int

const (
	AirGap SegID = iota
	StatorYoke
	StatorTeeth
	RotorYoke
	RotorTeeth02 // rotor teeth at 0.2 of the slot height
	RotorTeeth07 // rotor teeth at 0.7 of the slot height
	RotorTeethSub02
	RotorTeethSub07
	segCount
)

var segNames = map[SegID]string{
	AirGap:          "air gap",
	StatorYoke:      "stator yoke",
	StatorTeeth:     "stator teeth",
	RotorYoke:       "rotor yoke",
	RotorTeeth02:    "rotor teeth 0.2",
	RotorTeeth07:    "rotor teeth 0.7",
	RotorTeethSub02: "rotor teeth slots 0.2",
	RotorTeethSub07: "rotor teeth slots 0.7",
}

func (id SegID) String() string { return segNames[id] }

// StatorSegs and RotorSegs list the segments of the two sub-paths in
// computation order. The subslot tooth segments are present only when the
// rotor has subslot ventilation channels.
var (
	StatorSegs = []SegID{AirGap, StatorYoke, StatorTeeth}
	RotorSegs  = []SegID{RotorYoke, RotorTeeth02, RotorTeeth07, RotorTeethSub02, RotorTeethSub07}
)

// Segment is one element of the flux path
type Segment struct {
	Line      float64 // magnetic line length [cm]
	Section   float64 // cross-section [m²]
	Branching float64 // flux branching factor (rotor teeth only)
	Present   bool
}

// Catalog holds the segment set of one machine design together with the
// derived air gap coefficients and the slot leakage permeance. It is built
// once per design and shared by the no-load and loaded circuits.
type Catalog struct {
	Segs [segCount]Segment

	StatorSteel *msteel.StatorSteel
	RotorSteel  *msteel.Curve

	// air gap coefficients
	StatorTeethGapCoef float64
	StatorVentGapCoef  float64
	StatorStepGapCoef  float64
	RotorTeethGapCoef  float64
	AirGapCoef         float64

	Lambda2 float64 // slot leakage permeance of the rotor winding

	SurfaceRelation      float64 // γ, wound share of the rotor surface
	YokeSaturationFactor float64
}

// NewCatalog derives the segment set from validated stator and rotor
// geometry. It fails when any tooth section or the stator yoke comes out
// non-positive, which indicates an invalid design.
func NewCatalog(st *machine.Stator, rt *machine.Rotor, statorSteel *msteel.StatorSteel, rotorSteel *msteel.Curve, polePairs int) (o *Catalog, err error) {
	o = &Catalog{
		StatorSteel:          statorSteel,
		RotorSteel:           rotorSteel,
		SurfaceRelation:      rt.SurfaceRelation,
		YokeSaturationFactor: rt.YokeSaturationFactor(),
	}

	statorYokeLine, err := st.YokeLine(polePairs, rt.SurfaceRelation)
	if err != nil {
		return nil, err
	}
	statorYokeSection, err := st.YokeSection()
	if err != nil {
		return nil, err
	}
	statorTeethSection, err := st.TeethSectionThird()
	if err != nil {
		return nil, err
	}
	o.Segs[AirGap] = Segment{Line: rt.AirGap * 0.1, Section: rt.AirGapSection(polePairs, st.Length), Present: true}
	o.Segs[StatorYoke] = Segment{Line: statorYokeLine, Section: 2 * statorYokeSection, Present: true}
	o.Segs[StatorTeeth] = Segment{Line: st.ToothLine(), Section: statorTeethSection, Present: true}
	o.Segs[RotorYoke] = Segment{Line: rt.YokeLine(polePairs), Section: 2 * rt.YokeSection(), Present: true}

	toothLine := rt.ToothHalfLine()
	for id, frac := range map[SegID]float64{RotorTeeth02: machine.FracLow, RotorTeeth07: machine.FracHigh} {
		section, err := rt.TeethSection(frac, polePairs)
		if err != nil {
			return nil, err
		}
		o.Segs[id] = Segment{Line: toothLine, Section: section, Branching: rt.BranchingFactor(frac), Present: true}
	}
	if rt.HasSubslot() {
		subLine := rt.SubslotToothHalfLine()
		for id, frac := range map[SegID]float64{RotorTeethSub02: machine.FracLow, RotorTeethSub07: machine.FracHigh} {
			section, err := rt.SubslotTeethSection(frac, polePairs)
			if err != nil {
				return nil, err
			}
			o.Segs[id] = Segment{Line: subLine, Section: section, Branching: rt.SubslotBranchingFactor(frac), Present: true}
		}
	}

	o.computeAirGapCoefficients(st, rt)
	o.computeLambda2(rt, polePairs)
	return o, nil
}

// computeAirGapCoefficients sets the partial air gap coefficients accounting
// for the stator slotting, the radial vent channels, the stepping of the end
// packages and the rotor slotting, and combines them into the overall one
func (o *Catalog) computeAirGapCoefficients(st *machine.Stator, rt *machine.Rotor) {
	bs := st.SlotWidth
	o.StatorTeethGapCoef = 1 + bs*bs/(st.ToothPitch*(bs+5*rt.AirGap)-bs*bs)

	if st.VentChannelCount > 0 {
		length := st.Length - st.VentChannelWidth*float64(st.VentChannelCount)
		if st.BypassThickness > 0 {
			length -= 2 * st.BypassThickness
		}
		packageWidth := length / float64(st.VentChannelCount+1)
		bv := st.VentChannelWidth
		o.StatorVentGapCoef = 1 + bv*bv/((bv+packageWidth)*(5*rt.AirGap+bv)-bv*bv)
	} else {
		o.StatorVentGapCoef = 1
	}

	o.StatorStepGapCoef = 1 + 5/math.Sqrt(rt.AirGap*(st.Length+rt.Length)/2)

	br := rt.SlotWidth
	o.RotorTeethGapCoef = 1 + rt.SurfaceRelation/2*br*br/(rt.ToothPitch*(br+5*rt.AirGap)-br*br)

	o.AirGapCoef = o.StatorTeethGapCoef + o.StatorVentGapCoef + o.StatorStepGapCoef + o.RotorTeethGapCoef - 3
}

// computeLambda2 sets the permeance of the rotor cross-slot leakage flux
func (o *Catalog) computeLambda2(rt *machine.Rotor, polePairs int) {
	ins := &rt.Winding.Insulation
	o.Lambda2 = rt.Length * float64(polePairs) / float64(rt.SlotCount) *
		((rt.SlotHeight-rt.WedgeHeight-ins.AllFillings()-ins.BodyInsulation)/2/rt.SlotWidth +
			(ins.WedgeFilling+rt.WedgeHeight)/rt.WedgeWidth +
			rt.AirGap/(2*rt.ToothPitch+rt.AirGap/2))
}

// kneeB is the flux density above which rotor tooth field strengths switch
// from the magnetization curve to the saturated closed form
const kneeB = 2.05

// rotorToothH returns the rotor tooth field strength in A/cm. The two
// branches were fitted independently, so the value jumps slightly at the
// knee; the hand method carries the same jump.
func (o *Catalog) rotorToothH(b, branching float64) float64 {
	if b >= kneeB {
		return (b - 1.956) * 5.2 / (8 + 6.5*branching) * 1e4
	}
	return o.RotorSteel.Magnetization(b)
}

// statorYokeCorrection returns the factor applied to the stator yoke flux
// density to account for the uneven flux distribution around the yoke
func (o *Catalog) statorYokeCorrection() float64 {
	return (18 - 10*o.SurfaceRelation) / (18 - 9*o.SurfaceRelation)
}
