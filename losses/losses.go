// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package losses computes the loss balance of a turbogenerator: copper and
// steel losses at sustained short circuit and at open circuit, end zone
// losses, excitation losses and the mechanical losses, combined into the
// overall efficiency. The split into short-circuit and open-circuit groups
// follows the segregated-loss test procedure.
package losses

import (
	"math"

	"github.com/MtScience/EMCalculations/circuit"
	"github.com/MtScience/EMCalculations/machine"
	"github.com/MtScience/EMCalculations/mass"
	"github.com/MtScience/EMCalculations/msteel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// empirical loss factor tables: the rotor field harmonic factor over the
// wound surface share γ and the stator field harmonic factor over the
// winding shortening β
var (
	gammaGrid   = utl.LinSpace(0.60, 0.85, 26)
	phiGammaTab = []float64{12.8, 11.6, 10.4, 9.2, 8.2, 7.2, 6.4, 5.8, 5.4, 5.2, 5.2, 5.4, 5.6, 6.2, 6.6,
		7.4, 8, 8.8, 9.6, 10.6, 11.4, 12.4, 13.2, 14, 15.2, 16.2}

	betaGrid   = utl.LinSpace(0.40, 1.00, 61)
	phiBetaTab = []float64{2.8, 3.2, 3.8, 4.4, 5.2, 6.2, 7.2, 8.6, 9.8, 11.1, 12.2, 13.2, 15.1, 16.3, 17.2,
		18.6, 19.6, 20.1, 20.3, 20.4, 21.5, 21.6, 21.3, 21.2, 20.9, 20.5, 19.8, 17.7, 16.8, 14.9, 13.4,
		11.8, 10.2, 8.6, 7.2, 5.7, 4.4, 3.1, 2.1, 1.6, 1.4, 1.4, 1.6, 2.1, 2.8, 4.0, 5.2, 6.4, 7.8, 9.4,
		11.8, 14.1, 16.5, 18.2, 20.4, 22.2, 23.3, 24.0, 24.5, 24.8, 25.0}
)

// Cooling holds the ventilation design point used by the mechanical losses
type Cooling struct {
	SlotRate        float64 `json:"slotRate"`        // air flow rate through the slots [m³/s]
	EndPartRate     float64 `json:"endPartRate"`     // air flow rate through the end parts [m³/s]
	SlotVelocity    float64 `json:"slotVelocity"`    // air velocity in the slots [m/s]
	EndPartVelocity float64 `json:"endPartVelocity"` // air velocity at the end parts [m/s]
	OverheatGen     float64 `json:"overheatGen"`     // air temperature rise in the machine [K]
	OverheatVent    float64 `json:"overheatVent"`    // air temperature rise in the fan [K]
}

// Losses accumulates the loss balance in kW
type Losses struct {
	steel       *msteel.StatorSteel
	freqReduced float64 // frequency in units of 50 Hz

	StatorOhmic      float64
	FieldCoefficient float64 // eddy current factor of the stator conductors
	StatorCopper     float64

	StatorSCSurfaceHarmonics float64
	StatorSCSurfaceTeeth     float64
	StatorSCPulse            float64
	RotorSCSurfaceHarmonics  float64
	RotorSCSurfaceTeeth      float64
	SteelSC                  float64

	StatorYoke               float64
	StatorTeeth              float64
	StatorOCSurfaceHarmonics float64
	StatorOCSurfaceTeeth     float64
	StatorOCPulse            float64
	StatorOCAddPulse         float64
	StatorSteelLoss          float64
	RotorAddSurface          float64
	SteelOC                  float64

	StructuralParts float64
	EndPartTeeth    float64
	ScreenAndPlate  float64
	EndPartYoke     float64
	EndPartSC       float64
	EndPartOC       float64

	Excitation float64

	Bearings          float64
	RotorFriction     float64
	BandagingFriction float64
	BrushRing         float64
	BrushCrossarm     float64
	Ventilation       float64
	Mechanical        float64
}

// New returns a loss accumulator for the given stator steel and grid
// frequency
func New(steel *msteel.StatorSteel, frequency float64) *Losses {
	return &Losses{steel: steel, freqReduced: frequency / 50}
}

// ComputeStatorCopper sets the ohmic losses and scales them by the Field
// eddy current coefficient
func (o *Losses) ComputeStatorCopper(st *machine.Stator, current float64, phaseCount int) {
	o.StatorOhmic = float64(phaseCount) * st.Winding.Resistance[75] * current * current / 1e3
	aux := float64(st.Winding.Rows*st.Winding.Columns) * st.Winding.Wire.Width *
		float64(st.EffectiveWires) / st.SlotWidth * o.freqReduced
	o.FieldCoefficient = 1 + 0.107*aux*aux*math.Pow(st.Winding.Wire.Height/10, 4)
	o.StatorCopper = o.StatorOhmic * o.FieldCoefficient
}

// ComputeSCSteelLosses sets the surface and pulse losses in the stator and
// rotor at a sustained short circuit
func (o *Losses) ComputeSCSteelLosses(st *machine.Stator, rt *machine.Rotor, ld *circuit.Loaded, ms *mass.Mass, polePairs int) {
	p := float64(polePairs)
	freq15 := math.Pow(o.freqReduced, 1.5)

	mmfRel := ld.SCMMF / ld.Cat.AirGapCoef / rt.AirGap
	mmfFreq15 := mmfRel * mmfRel * freq15

	o.StatorSCSurfaceHarmonics = msteel.LinInterp(gammaGrid, phiGammaTab, rt.SurfaceRelation) * mmfFreq15 *
		st.EffectiveLength * math.Pow(st.InnerDiameter, 3) / math.Pow(rt.OuterDiameter, 3.5) / math.Pow(10, 7.5)

	// the flux of the rotor tooth ripple decays across the air gap
	aux := 2 * math.Pi * rt.AirGap / rt.ToothPitch
	kT2 := aux / math.Sinh(aux)
	kT2 *= kT2
	phiZ2 := 5e4 / rt.SurfaceRelation * math.Pow(p/float64(rt.SlotPitchCount), 2.5)
	o.StatorSCSurfaceTeeth = phiZ2 * kT2 * mmfFreq15 * st.EffectiveLength *
		math.Pow(st.InnerDiameter, 3) / p / p / 1e18

	o.StatorSCPulse = 12.5 / rt.SurfaceRelation * kT2 * mmfFreq15 * ms.StatorTeeth /
		math.Sqrt(float64(rt.SlotPitchCount)) / 1e9

	loadRel := st.CurrentLoad / ld.Cat.AirGapCoef / rt.AirGap
	o.RotorSCSurfaceHarmonics = msteel.LinInterp(betaGrid, phiBetaTab, st.Winding.Shortening) * freq15 *
		math.Pow(st.InnerDiameter, 5) / math.Pow(p, 4) * rt.Length * loadRel * loadRel / 1e20

	sinh := math.Sinh(2 * math.Pi * rt.AirGap / st.ToothPitch)
	phiDelta := 62.7 * math.Pow(st.WindingFactor()/sinh, 2)
	o.RotorSCSurfaceTeeth = phiDelta * freq15 * st.CurrentLoad * st.CurrentLoad *
		math.Pow(st.InnerDiameter, 3) / math.Pow(p, 1.5) * rt.Length / math.Sqrt(float64(st.SlotCount)) / 1e16

	o.SteelSC = o.StatorSCSurfaceHarmonics + o.StatorSCSurfaceTeeth + o.StatorSCPulse +
		o.RotorSCSurfaceHarmonics + o.RotorSCSurfaceTeeth
}

// ComputeOCSteelLosses sets the stator core and rotor surface losses at open
// circuit. kx is the empirical steel loss build factor; scr scales the
// short-circuit surface losses down to the no-load flux level.
func (o *Losses) ComputeOCSteelLosses(st *machine.Stator, rt *machine.Rotor, nl *circuit.NoLoad, ms *mass.Mass, polePairs int, kx, scr float64) {
	wYoke := o.steel.Yoke.LossDensity(nl.B[circuit.StatorYoke])
	wTeeth := o.steel.Teeth.LossDensity(nl.B[circuit.StatorTeeth])
	freq15 := math.Pow(o.freqReduced, 1.5)

	o.StatorYoke = 1.3 * kx * wYoke * ms.StatorYoke * freq15 / 1e3
	o.StatorTeeth = 1.5 * wTeeth * ms.StatorTeeth * freq15 / 1e3

	scr2 := scr * scr
	aux := rt.SlotWidth / rt.AirGap
	gammaC := aux * aux / (aux + 5)

	o.StatorOCSurfaceHarmonics = o.StatorSCSurfaceHarmonics * scr2
	o.StatorOCSurfaceTeeth = o.StatorSCSurfaceTeeth * scr2
	o.StatorOCPulse = o.StatorSCPulse * scr2
	pulse := gammaC * rt.AirGap * float64(rt.SlotPitchCount) * o.freqReduced /
		2 / st.ToothPitch / float64(polePairs)
	o.StatorOCAddPulse = wTeeth * ms.StatorTeeth * rt.SurfaceRelation * pulse * pulse / 1e3

	o.StatorSteelLoss = o.StatorYoke + o.StatorTeeth + o.StatorOCSurfaceHarmonics +
		o.StatorOCSurfaceTeeth + o.StatorOCPulse + o.StatorOCAddPulse

	bRipple := nl.B[circuit.AirGap] * (nl.Cat.StatorTeethGapCoef - 1)
	o.RotorAddSurface = 5.1 / math.Sqrt(float64(st.SlotCount)) * st.EffectiveLength * freq15 *
		math.Pow(st.InnerDiameter, 3) / math.Pow(float64(polePairs), 1.5) * bRipple * bRipple / 1e8

	o.SteelOC = o.StatorSteelLoss + o.RotorAddSurface
}

// ComputeEndPartSCLosses sets the end zone losses at short circuit: the
// structural parts, the end packet teeth and, with a pressure plate, the
// plate, screen and end yoke. kz is the end packet subdivision count.
func (o *Losses) ComputeEndPartSCLosses(st *machine.Stator, rt *machine.Rotor, ld *circuit.Loaded, polePairs, kz int) error {
	yokeHeight, err := st.YokeHeight()
	if err != nil {
		return err
	}
	p := float64(polePairs)
	freq15 := math.Pow(o.freqReduced, 1.5)

	o.StructuralParts = math.Pow(st.CurrentLoad*st.InnerDiameter, 2) / 1e11
	bz := (st.ToothPitch+st.ToothPitchBottom())/2 - st.SlotWidth
	aux := bz * ld.ReactionMMF * st.SlotHeight / (st.SlotHeight + rt.SlotHeight)
	o.EndPartTeeth = 0.21 * float64(st.SlotCount) / float64(kz) * aux * aux * freq15 / 1e13
	o.EndPartSC = o.EndPartTeeth + o.StructuralParts

	if st.PressurePlateThickness > 0 {
		screen := st.CopperScreenThickness
		beta := math.Pi / 10 * math.Sqrt(st.PressurePlateThickness/yokeHeight*o.freqReduced*
			(1+screen/st.PressurePlateThickness))
		phiBeta := 155 * math.Pow(10/beta, 2) / yokeHeight

		o.ScreenAndPlate = phiBeta * (0.16*st.PressurePlateThickness + 3.2*screen) /
			(st.OuterDiameter - 2*yokeHeight) *
			math.Pow(ld.ReactionMMF*o.freqReduced/beta/p, 2) / 1e11
		o.EndPartYoke = 0.015 * yokeHeight * ld.ReactionMMF * ld.ReactionMMF / beta /
			math.Pow(p, 3) * freq15 / 1e10
		o.EndPartSC += o.ScreenAndPlate + o.EndPartYoke
	}
	return nil
}

// ComputeEndPartOCLosses scales the end zone losses down to open circuit
func (o *Losses) ComputeEndPartOCLosses(scr float64) {
	o.EndPartOC = o.EndPartSC * scr * scr
}

// ComputeExcitation sets the excitation system losses at the rated field
// current, including the brush voltage drop
func (o *Losses) ComputeExcitation(rt *machine.Rotor, ld *circuit.Loaded, excEfficiency float64) {
	o.Excitation = (ld.NominalFieldCurrent*ld.NominalFieldCurrent*rt.Winding.Resistance[75] +
		2*ld.NominalFieldCurrent) / excEfficiency / 1e3
}

// ComputeMechanical sets the bearing, windage, brush friction and ventilation
// losses. The copper, steel, end zone and excitation losses must be computed
// first because the ventilation loss follows the heat they dissipate.
func (o *Losses) ComputeMechanical(rt *machine.Rotor, bd *machine.Bandaging, ms *mass.Mass, sh *machine.Shaft, polePairs int, cool *Cooling) error {
	p := float64(polePairs)

	o.Bearings = 255 * math.Sqrt(ms.Rotor*sh.JournalLength/2) *
		math.Pow(o.freqReduced*sh.JournalDiameter/p, 1.5) / math.Pow(10, 7.5)

	freqP3 := math.Pow(o.freqReduced/p, 3)
	o.RotorFriction = 57.3 * freqP3 * rt.Length * math.Pow(rt.OuterDiameter, 4) / 1e15
	o.BandagingFriction = 25 * freqP3 * bd.RingWidth * math.Pow(bd.OuterDiameter, 4) / 1e15

	brush := o.freqReduced * sh.BrushWidth * sh.BrushLength / 2 / p
	o.BrushRing = sh.RingOuterDiameter * float64(sh.RingBrushCount) * brush / 1e6
	o.BrushCrossarm = sh.RingInnerDiameter * float64(sh.CrossarmBrushCount) * brush / 1e6

	channel := (cool.SlotVelocity*cool.SlotRate + cool.EndPartVelocity*cool.EndPartRate) / 10
	scLosses := o.StatorCopper + o.SteelSC + o.EndPartSC
	ocLosses := o.StatorSteelLoss + o.RotorAddSurface + o.EndPartOC
	airFlowRate := (scLosses + ocLosses + o.Excitation + o.RotorFriction + o.BandagingFriction + channel) /
		1.1 / (cool.OverheatGen - cool.OverheatVent)
	if airFlowRate < 0 {
		return chk.Err("ventilation air flow rate is negative")
	}
	o.Ventilation = 1.1 * airFlowRate * cool.OverheatVent

	o.Mechanical = o.RotorFriction + o.BandagingFriction + o.BrushRing + o.BrushCrossarm +
		o.Bearings + o.Ventilation
	return nil
}

// NormalStatorSteelLosses returns the main stator core losses without the
// additional surface and pulse components
func (o *Losses) NormalStatorSteelLosses() float64 {
	return o.StatorYoke + o.StatorTeeth
}

// TotalSC returns the losses present at a sustained short circuit
func (o *Losses) TotalSC() float64 {
	return o.StatorCopper + o.SteelSC + o.EndPartSC
}

// TotalOC returns the losses present at open circuit
func (o *Losses) TotalOC() float64 {
	return o.StatorSteelLoss + o.RotorAddSurface + o.EndPartOC
}

// Efficiency returns the machine efficiency at the given output power in kW
func (o *Losses) Efficiency(power float64) float64 {
	losses := o.TotalSC() + o.TotalOC() + o.Excitation + o.Mechanical
	return power / (power + losses)
}
