// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"math"
	"testing"

	"github.com/MtScience/EMCalculations/machine"
	"github.com/MtScience/EMCalculations/msteel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// the 63 MW class machine used across the tests: 6.3 kV, 5 kA, cosφ = 0.85
const (
	testVoltage = 6120.0
	testCurrent = 5000.0
	testCosPhi  = 0.85
	testXstator = 0.15863951693165004
)

func testStator(tst *testing.T) *machine.Stator {
	o := &machine.Stator{
		OuterDiameter:          1630,
		InnerDiameter:          800,
		Length:                 2800,
		SlotCount:              60,
		SlotHeight:             160,
		SlotWidth:              22,
		SlitHeight:             1,
		WedgeHeight:            15,
		EffectiveWires:         2,
		VentChannelCount:       20,
		VentChannelWidth:       10,
		StudCount:              12,
		StudDiameter:           40,
		PressurePlateThickness: 50,
		CopperScreenThickness:  5,
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
	o.Winding.ComputeShortening(o.SlotsPerPolePhase, 3)
	o.Winding.ComputeTurnCount(1, o.SlotsPerPolePhase, o.EffectiveWires)
	return o
}

func testRotor(tst *testing.T, withSubslot bool) *machine.Rotor {
	o := &machine.Rotor{
		AirGap:         27.5,
		InnerDiameter:  0,
		Length:         2500,
		SlotCount:      24,
		SlotPitchCount: 36,
		SlotWidth:      31,
		WedgeHeight:    40,
		WedgeWidth:     32,
		EffectiveWires: 7,
		Winding: &machine.RotorWinding{
			Insulation:       machine.RotorInsulation{TurnInsulation: 0.5, BodyInsulation: 3, WedgeFilling: 2, BottomFilling: 1},
			ParallelBranches: 1,
			WireHeight:       12,
			WireWidth:        25,
			WireSection:      300,
		},
	}
	if withSubslot {
		o.EffectiveWiresSmall = 4
		o.SubslotChannelHeight = 30
		o.SubslotChannelWidth = 25
		o.VertVentChannelPitch = 50
		o.VertVentChannelLength = 20
		o.VertVentChannelWidth = 6
		o.BigToothSlotCount = 4
		o.BigToothSlotWidth = 8
		o.ToothSlotWidth = 5
		o.ToothSlotHeight = 115
	}
	o.SetOuterDiameter(800)
	if err := o.ComputeSlotHeight(); err != nil {
		tst.Fatalf("slot height failed: %v\n", err)
	}
	o.ComputeSurfaceRelation(1)
	o.ComputeCoilsPerPole(1)
	o.ComputePolePitch(1)
	o.ComputeToothPitch()
	o.Winding.ComputeTurnCount(o.EffectiveWires, o.EffectiveWiresSmall, o.CoilsPerPole)
	return o
}

func testSteels(tst *testing.T) (*msteel.StatorSteel, *msteel.Curve) {
	statorSteel, err := msteel.ForStator("3414")
	if err != nil {
		tst.Fatalf("stator steel failed: %v\n", err)
	}
	rotorSteel, err := msteel.Get("35hn3mfa")
	if err != nil {
		tst.Fatalf("rotor steel failed: %v\n", err)
	}
	return statorSteel, rotorSteel
}

func testCatalog(tst *testing.T, withSubslot bool) (*Catalog, *machine.Stator, *machine.Rotor) {
	st := testStator(tst)
	rt := testRotor(tst, withSubslot)
	statorSteel, rotorSteel := testSteels(tst)
	cat, err := NewCatalog(st, rt, statorSteel, rotorSteel, 1)
	if err != nil {
		tst.Fatalf("catalog failed: %v\n", err)
	}
	return cat, st, rt
}

// runNoLoad drives the no-load pipeline to completion
func runNoLoad(tst *testing.T, cat *Catalog, rt *machine.Rotor, bd *machine.Bandaging, st *machine.Stator) *NoLoad {
	o := NewNoLoad(cat)
	for _, err := range []error{
		o.ComputeStatorFlow(testVoltage, 50, st.Winding.TurnCount, st.WindingFactor()),
		o.ComputeStatorB(),
		o.ComputeStatorH(),
		o.ComputeStatorMMF(),
		o.ComputeRotorFlow(rt, bd, st.Length),
		o.ComputeRotorB(),
		o.ComputeRotorH(),
		o.ComputeRotorMMF(),
	} {
		if err != nil {
			tst.Fatalf("no-load pipeline failed: %v\n", err)
		}
	}
	return o
}

func Test_catalog01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog01. segments and air gap coefficients")

	cat, _, _ := testCatalog(tst, true)

	chk.Float64(tst, "stator teeth gap coef", 1e-13, cat.StatorTeethGapCoef, 1.0781007904614666)
	chk.Float64(tst, "stator vent gap coef", 1e-13, cat.StatorVentGapCoef, 1.00509245225826)
	chk.Float64(tst, "stator step gap coef", 1e-13, cat.StatorStepGapCoef, 1.018521694664416)
	chk.Float64(tst, "rotor teeth gap coef", 1e-13, cat.RotorTeethGapCoef, 1.0320532793957924)
	chk.Float64(tst, "air gap coef", 1e-13, cat.AirGapCoef, 1.1337682167799352)
	chk.Float64(tst, "lambda2", 1e-10, cat.Lambda2, 302.8118948057609)

	chk.Float64(tst, "air gap line", 1e-15, cat.Segs[AirGap].Line, 2.75)
	chk.Float64(tst, "air gap section", 1e-12, cat.Segs[AirGap].Section, 2.3095811091947067)
	chk.Float64(tst, "stator yoke section", 1e-13, cat.Segs[StatorYoke].Section, 2*0.5969166666666667)
	chk.Float64(tst, "rotor yoke section", 1e-13, cat.Segs[RotorYoke].Section, 2*0.5530101666666666)
	chk.Float64(tst, "teeth 0.2 branching", 1e-13, cat.Segs[RotorTeeth02].Branching, 2.9684355535647584)
	for _, id := range []SegID{AirGap, StatorYoke, StatorTeeth, RotorYoke, RotorTeeth02, RotorTeeth07, RotorTeethSub02, RotorTeethSub07} {
		if !cat.Segs[id].Present {
			tst.Errorf("segment %v must be present\n", id)
		}
	}
}

func Test_catalog02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog02. subslot segments absent without channels")

	cat, _, _ := testCatalog(tst, false)
	if cat.Segs[RotorTeethSub02].Present || cat.Segs[RotorTeethSub07].Present {
		tst.Errorf("subslot segments must be absent without subslot channels\n")
	}
	chk.Float64(tst, "teeth 0.2 section", 1e-13, cat.Segs[RotorTeeth02].Section, 0.8858936117302931)
}

func Test_noload01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("noload01. no-load circuit, magnetic banding")

	cat, st, rt := testCatalog(tst, true)
	bd := &machine.Bandaging{OuterDiameter: 770, InnerDiameter: 700, RingWidth: 250, Offset: 80, Magnetic: true}
	o := runNoLoad(tst, cat, rt, bd, st)

	chk.Float64(tst, "stator flow", 1e-12, o.StatorFlow, 1.724293342351327)
	chk.Float64(tst, "B air gap", 1e-12, o.B[AirGap], 0.7465827181763471)
	chk.Float64(tst, "B stator yoke", 1e-12, o.B[StatorYoke], 1.444333387422583)
	chk.Float64(tst, "B stator teeth", 1e-12, o.B[StatorTeeth], 1.434833445241403)
	chk.Float64(tst, "H air gap", 1e-8, o.H[AirGap], 6771.614056524113)
	chk.Float64(tst, "H stator yoke", 1e-10, o.H[StatorYoke], 3.0238131648376063)
	chk.Float64(tst, "H stator teeth", 1e-10, o.H[StatorTeeth], 24.315023500694643)
	chk.Float64(tst, "stator MMF", 1e-8, o.StatorMMF, 19230.788971007798)

	chk.Float64(tst, "phiS", 1e-13, o.PhiS, 0.05823311646920601)
	chk.Float64(tst, "phiB", 1e-13, o.PhiB, 0.01778177509299806)
	chk.Float64(tst, "rotor flow", 1e-12, o.RotorFlow, 1.800308233913531)

	// the 0.2 fraction is above the 2.05 T knee, the 0.7 fraction below:
	// both field strength branches are exercised
	chk.Float64(tst, "B rotor teeth 0.2", 1e-12, o.B[RotorTeeth02], 2.4521249735457604)
	chk.Float64(tst, "B rotor teeth 0.7", 1e-12, o.B[RotorTeeth07], 1.6877632774046971)
	knee := (o.B[RotorTeeth02] - 1.956) * 5.2 / (8 + 6.5*cat.Segs[RotorTeeth02].Branching) * 1e4
	chk.Float64(tst, "H rotor teeth 0.2", 1e-9, o.H[RotorTeeth02], knee)
	chk.Float64(tst, "H rotor teeth 0.2 ref", 1e-8, o.H[RotorTeeth02], 945.1789070095526)
	chk.Float64(tst, "H rotor teeth 0.7", 1e-9, o.H[RotorTeeth07], cat.RotorSteel.Magnetization(o.B[RotorTeeth07]))
	chk.Float64(tst, "H rotor teeth 0.7 ref", 1e-9, o.H[RotorTeeth07], 76.10531096187884)

	chk.Float64(tst, "MMF air gap", 1e-7, o.MMF[AirGap], 18621.93865544131)
	chk.Float64(tst, "MMF rotor yoke", 1e-8, o.MMF[RotorYoke], 1124.0223391488578)
	chk.Float64(tst, "MMF subslot 0.2", 1e-8, o.MMF[RotorTeethSub02], 881.0916556872944)
	chk.Float64(tst, "MMF subslot 0.7", 1e-8, o.MMF[RotorTeethSub07], 731.1619010483084)
	chk.Float64(tst, "total MMF", 1e-7, o.TotalMMF, 28758.604916402277)

	sum := o.StatorMMF
	for _, id := range RotorSegs {
		sum += o.MMF[id]
	}
	chk.Float64(tst, "total = stator + rotor segments", 1e-9, o.TotalMMF, sum)

	if err := o.ComputeRotorCurrents(rt.Winding.TurnCount); err != nil {
		tst.Errorf("rotor currents failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rotor current", 1e-9, o.RotorCurrent, 737.4001260615969)
	chk.Float64(tst, "magnetizing current", 1e-9, o.MagnetizingCurrent, 477.4856065497772)
}

func Test_noload02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("noload02. no-load circuit, plain rotor")

	cat, st, rt := testCatalog(tst, false)
	bd := &machine.Bandaging{OuterDiameter: 770, InnerDiameter: 700, RingWidth: 250, Offset: 80, Magnetic: false}
	o := runNoLoad(tst, cat, rt, bd, st)

	if o.PhiB != 0 {
		tst.Errorf("banding leakage must be exactly zero with non-magnetic rings\n")
	}
	chk.Float64(tst, "rotor flow", 1e-12, o.RotorFlow, 1.782526458820533)

	// without channels the rotor teeth at 0.2 stay below the knee
	chk.Float64(tst, "B rotor teeth 0.2", 1e-12, o.B[RotorTeeth02], 2.012122488770374)
	chk.Float64(tst, "H rotor teeth 0.2", 1e-9, o.H[RotorTeeth02], cat.RotorSteel.Magnetization(o.B[RotorTeeth02]))

	// only the three always-present rotor segments contribute
	sum := o.StatorMMF + o.MMF[RotorYoke] + o.MMF[RotorTeeth02] + o.MMF[RotorTeeth07]
	chk.Float64(tst, "total = stator + 3 rotor segments", 1e-9, o.TotalMMF, sum)
	chk.Float64(tst, "total MMF", 1e-7, o.TotalMMF, 23274.62343578661)

	if err := o.ComputeRotorCurrents(rt.Winding.TurnCount); err != nil {
		tst.Errorf("rotor currents failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rotor current", 1e-9, o.RotorCurrent, 664.9892410224745)
	chk.Float64(tst, "magnetizing current", 1e-9, o.MagnetizingCurrent, 532.0553901554661)
}

func Test_noload03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("noload03. open-circuit characteristic")

	cat, st, rt := testCatalog(tst, true)
	bd := &machine.Bandaging{OuterDiameter: 770, InnerDiameter: 700, RingWidth: 250, Offset: 80, Magnetic: true}
	o := runNoLoad(tst, cat, rt, bd, st)

	currents, levels, err := o.Characteristic(rt.Winding.TurnCount)
	if err != nil {
		tst.Errorf("characteristic failed: %v\n", err)
		return
	}
	if len(currents) != 30 || len(levels) != 30 {
		tst.Errorf("characteristic must have 30 points, got %d and %d\n", len(currents), len(levels))
		return
	}
	chk.Float64(tst, "first level", 1e-15, levels[0], 0)
	chk.Float64(tst, "last level", 1e-15, levels[29], 1.2)
	chk.Float64(tst, "level 10", 1e-15, levels[10], 0.41379310344827586)
	chk.Float64(tst, "current at 0", 1e-10, currents[0], 4.487405885666708)
	chk.Float64(tst, "current at 10", 1e-9, currents[10], 210.43129919956263)
	chk.Float64(tst, "current at 1.2", 1e-8, currents[29], 1362.9378870178973)
}

func Test_order01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("order01. out-of-order pipeline calls fail")

	cat, st, rt := testCatalog(tst, true)
	bd := &machine.Bandaging{OuterDiameter: 770, InnerDiameter: 700, Offset: 80, Magnetic: true}

	o := NewNoLoad(cat)
	if err := o.ComputeRotorB(); err == nil {
		tst.Errorf("rotor phase before stator phase must fail\n")
	}
	if err := o.ComputeStatorB(); err == nil {
		tst.Errorf("flux densities before the flux must fail\n")
	}
	if err := o.ComputeRotorFlow(rt, bd, st.Length); err == nil {
		tst.Errorf("rotor flux before the stator MMF must fail\n")
	}
	if err := o.ComputeRotorCurrents(rt.Winding.TurnCount); err == nil {
		tst.Errorf("rotor currents before completion must fail\n")
	}
	if _, _, err := o.Characteristic(rt.Winding.TurnCount); err == nil {
		tst.Errorf("characteristic before completion must fail\n")
	}

	if err := o.ComputeStatorFlow(testVoltage, 50, st.Winding.TurnCount, st.WindingFactor()); err != nil {
		tst.Errorf("stator flux must succeed on a fresh circuit: %v\n", err)
	}
	if err := o.ComputeStatorFlow(testVoltage, 50, st.Winding.TurnCount, st.WindingFactor()); err == nil {
		tst.Errorf("repeating a pipeline step must fail\n")
	}
	if err := o.ComputeStatorB(); err != nil {
		tst.Errorf("flux densities must succeed after the flux: %v\n", err)
	}
	if err := o.ComputeStatorMMF(); err == nil {
		tst.Errorf("skipping the field strengths must fail\n")
	}
}

func Test_loaded01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loaded01. loaded circuit and rated excitation")

	cat, st, rt := testCatalog(tst, true)
	bd := &machine.Bandaging{OuterDiameter: 770, InnerDiameter: 700, RingWidth: 250, Offset: 80, Magnetic: true}
	nl := runNoLoad(tst, cat, rt, bd, st)
	if err := nl.ComputeRotorCurrents(rt.Winding.TurnCount); err != nil {
		tst.Fatalf("no-load currents failed: %v\n", err)
	}

	sinPhi := math.Sqrt(1 - testCosPhi*testCosPhi)
	o := NewLoaded(cat)
	o.ComputeStatorReaction(testCurrent, 1, 3, st.Winding.TurnCount, st.WindingFactor(),
		rt.Winding.TurnCount, rt.WindingFactor(1))
	chk.Float64(tst, "reaction MMF", 1e-8, o.ReactionMMF, 48909.07940582707)
	chk.Float64(tst, "reaction MMF reduced", 1e-8, o.ReactionMMFReduced, 57457.14770079906)
	chk.Float64(tst, "reaction current reduced", 1e-9, o.ReactionCurrentReduced, 1473.260197456386)

	o.ComputeSCCurrent(testXstator, nl.MagnetizingCurrent)
	chk.Float64(tst, "SC current", 1e-9, o.SCCurrent, 1549.0082834212587)
	o.ComputeEMF(testCosPhi, sinPhi, testXstator)
	chk.Float64(tst, "relative EMF", 1e-12, o.RelativeEMF, 1.0919265536305434)
	o.ComputeRotorSCMMF(rt.Winding.TurnCount)
	chk.Float64(tst, "SC MMF", 1e-7, o.SCMMF, 60411.32305342909)

	for _, err := range []error{
		o.ComputeStatorFlow(nl.StatorFlow),
		o.ComputeStatorB(),
		o.ComputeStatorH(),
		o.ComputeStatorMMF(),
		o.ComputeRotorFlow(rt, bd, st.Length, sinPhi, testXstator),
		o.ComputeRotorB(),
		o.ComputeRotorH(),
		o.ComputeRotorMMF(),
	} {
		if err != nil {
			tst.Fatalf("loaded pipeline failed: %v\n", err)
		}
	}
	chk.Float64(tst, "stator flow", 1e-12, o.StatorFlow, 1.882801686761775)
	chk.Float64(tst, "stator MMF", 1e-7, o.StatorMMF, 21555.49638373231)
	chk.Float64(tst, "phiS", 1e-12, o.PhiS, 0.2215690384540275)
	chk.Float64(tst, "phiB", 1e-12, o.PhiB, 0.0194163923947308)
	chk.Float64(tst, "rotor flow", 1e-12, o.RotorFlow, 2.123787117610533)
	chk.Float64(tst, "total MMF", 1e-7, o.TotalMMF, 46237.783813402726)

	if err := o.ComputeFieldCurrents(rt.Winding.TurnCount, sinPhi, testXstator); err != nil {
		tst.Errorf("field currents failed: %v\n", err)
		return
	}
	chk.Float64(tst, "field current", 1e-9, o.FieldCurrent, 1185.5842003436596)
	chk.Float64(tst, "nominal field MMF", 1e-7, o.NominalFieldMMF, 94050.65720111068)
	chk.Float64(tst, "nominal field current", 1e-8, o.NominalFieldCurrent, 2411.555312848992)
	chk.Float64(tst, "static overload", 1e-11, o.StaticOverload(testCosPhi), 1.831574387196376)
	chk.Float64(tst, "SCR", 1e-12, o.SCR(nl.RotorCurrent), 0.47604659959139684)
}

func Test_loaded02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loaded02. EMF at unity power factor")

	cat, _, _ := testCatalog(tst, true)
	o := NewLoaded(cat)
	x := 0.2
	o.ComputeEMF(1, 0, x)
	chk.Float64(tst, "EMF", 1e-15, o.RelativeEMF, math.Sqrt(1+x*x))
}
