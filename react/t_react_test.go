// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package react

import (
	"testing"

	"github.com/MtScience/EMCalculations/machine"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// operating point of the 63 MW test machine and the magnetic circuit results
// feeding the reactances
const (
	refReactionCurrent = 1473.260197456386
	refMagCurrent      = 477.4856065497772
	refNoLoadRotorFlow = 1.800308233913531
	refRotorKw         = 0.8512270685714336
)

func testStator() *machine.Stator {
	o := &machine.Stator{
		OuterDiameter:    1630,
		InnerDiameter:    800,
		Length:           2800,
		SlotCount:        60,
		SlotHeight:       160,
		SlotWidth:        22,
		SlitHeight:       1,
		WedgeHeight:      15,
		EffectiveWires:   2,
		VentChannelCount: 20,
		VentChannelWidth: 10,
		Winding: &machine.StatorWinding{
			Insulation: machine.CoilInsulation{
				ColumnInsulation: 0.2,
				BodyInsulationH:  4.84,
				BodyInsulationW:  4.84,
				SemicondCoating:  0.4,
				WedgeFilling:     0.5,
				CoilFilling:      4,
				BottomFilling:    0.5,
			},
			Rows:             2,
			Columns:          2,
			SlotStep:         25,
			ParallelBranches: 2,
			Wire:             machine.Wire{Height: 5, Width: 8, Section: 40, InsulationHeight: 0.4},
		},
	}
	o.ComputeSlotsPerPolePhase(1, 3)
	o.ComputePolePitch(1)
	o.ComputeToothPitch()
	o.ComputeEffectiveLength(0.95)
	o.Winding.ComputeCoilDimensions(o.SlotHeight, o.SlotWidth, o.SlitHeight, o.WedgeHeight, 0.3)
	o.Winding.ComputeShortening(o.SlotsPerPolePhase, 3)
	o.Winding.ComputeTurnCount(1, o.SlotsPerPolePhase, o.EffectiveWires)
	return o
}

func testRotor() *machine.Rotor {
	o := &machine.Rotor{
		AirGap:               27.5,
		Length:               2500,
		SlotCount:            24,
		SlotPitchCount:       36,
		SlotWidth:            31,
		WedgeHeight:          40,
		WedgeWidth:           32,
		EffectiveWires:       7,
		EffectiveWiresSmall:  4,
		SubslotChannelHeight: 30,
		SubslotChannelWidth:  25,
		BigToothSlotCount:    4,
		BigToothSlotWidth:    8,
		ToothSlotWidth:       5,
		ToothSlotHeight:      115,
		Winding: &machine.RotorWinding{
			Insulation:       machine.RotorInsulation{TurnInsulation: 0.5, BodyInsulation: 3, WedgeFilling: 2, BottomFilling: 1},
			ParallelBranches: 1,
			WireHeight:       12,
			WireWidth:        25,
			WireSection:      300,
		},
	}
	o.SetOuterDiameter(800)
	o.ComputeSlotHeight()
	o.ComputeSurfaceRelation(1)
	o.ComputeCoilsPerPole(1)
	o.ComputeToothPitch()
	return o
}

func Test_react01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("react01. full reactance chain")

	st := testStator()
	rt := testRotor()
	o := NewReactances(st, 5000, 6120, 50, 1, 3)

	o.ComputeXad(refReactionCurrent, refMagCurrent)
	chk.Float64(tst, "xad", 1e-12, o.Xad, 3.085454676009801)

	o.ComputeStatorReactance(st, rt.AirGap, 1)
	chk.Float64(tst, "xStator", 1e-13, o.XStator, 0.15863951693165004)

	o.ComputeXd()
	chk.Float64(tst, "xd", 1e-12, o.Xd, 3.244094192941451)

	o.ComputeDissipationFactor(rt, 1, refMagCurrent, refNoLoadRotorFlow)
	chk.Float64(tst, "sigma", 1e-12, o.DissipationFactor, 1.0321539809112297)

	o.ComputeXPrime()
	chk.Float64(tst, "xd prime", 1e-13, o.XdPrime, 0.25475855787871593)
	chk.Float64(tst, "xd 2prime", 1e-13, o.Xd2Prime, 0.18363951693165004)

	o.ComputeXPotier(&machine.Bandaging{Magnetic: true})
	chk.Float64(tst, "xP", 1e-13, o.XP, 0.23373331689120802)

	o.ComputeTotalReactance()
	chk.Float64(tst, "x total", 1e-12, o.XTotal, 3.1846643267646844)
	chk.Float64(tst, "x rotor", 1e-13, o.XRotor, 0.09920965075488347)

	o.ComputeZeroSequence(st, refRotorKw, 1)
	chk.Float64(tst, "x0", 1e-13, o.X0, 0.1312530489578939)

	o.ComputeNegativeSequence(false)
	chk.Float64(tst, "x2", 1e-13, o.X2, 0.22404021065661303)
	o.ComputeNegativeSequence(true)
	chk.Float64(tst, "x2 damped", 1e-13, o.X2, 1.05*o.Xd2Prime)
}

func Test_react02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("react02. Potier and shortening branches")

	st := testStator()
	rt := testRotor()
	o := NewReactances(st, 5000, 6120, 50, 1, 3)
	o.ComputeXad(refReactionCurrent, refMagCurrent)
	o.ComputeStatorReactance(st, rt.AirGap, 1)
	o.ComputeXd()
	o.ComputeDissipationFactor(rt, 1, refMagCurrent, refNoLoadRotorFlow)
	o.ComputeXPrime()

	// non-magnetic retaining rings leave the Potier reactance at 0.8 x'd
	o.ComputeXPotier(&machine.Bandaging{Magnetic: false})
	chk.Float64(tst, "xP non-magnetic", 1e-15, o.XP, 0.8*o.XdPrime)

	// a shortening below 2/3 takes the other zero sequence branch
	stShort := testStator()
	stShort.Winding.SlotStep = 18
	stShort.Winding.ComputeShortening(stShort.SlotsPerPolePhase, 3)
	oShort := NewReactances(stShort, 5000, 6120, 50, 1, 3)
	oShort.ComputeXad(refReactionCurrent, refMagCurrent)
	oShort.ComputeStatorReactance(stShort, rt.AirGap, 1)
	oShort.ComputeZeroSequence(stShort, refRotorKw, 1)
	if oShort.X0 <= 0 {
		tst.Errorf("zero sequence reactance must stay positive for β < 2/3\n")
	}
}
