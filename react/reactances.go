// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package react computes the per-unit reactances of a turbogenerator: the
// armature reaction and leakage reactances, the synchronous, transient and
// subtransient reactances, the Potier reactance and the zero and negative
// sequence reactances. All values are relative to the rated impedance.
package react

import "github.com/MtScience/EMCalculations/machine"

// Reactances collects the per-unit reactances of one machine design. The
// constructor precomputes the shortening, rating and length coefficients the
// individual reactances share.
type Reactances struct {
	kBeta   float64 // shortening coefficient
	kX      float64 // rating coefficient folding turns, current, frequency and voltage
	lX      float64 // effective core length for leakage [cm]
	endPart float64 // end part leakage reactance

	DissipationFactor float64 // field winding dissipation factor σ

	XStator  float64 // stator winding leakage reactance
	Xad      float64 // direct axis armature reaction reactance
	Xd       float64 // direct axis synchronous reactance
	XdPrime  float64 // transient reactance
	Xd2Prime float64 // subtransient reactance
	XP       float64 // Potier reactance
	XTotal   float64 // total reactance seen by the field winding
	XRotor   float64 // field winding leakage reactance
	X0       float64 // zero sequence reactance
	X2       float64 // negative sequence reactance
}

// NewReactances precomputes the shared coefficients from the stator geometry
// and the machine rating
func NewReactances(st *machine.Stator, current, voltage, frequency float64, polePairs, phaseCount int) *Reactances {
	o := new(Reactances)

	beta := st.Winding.Shortening
	if beta > 2.0/3.0 {
		o.kBeta = (3*beta + 1) / 4
	} else {
		o.kBeta = (6*beta - 1) / 4
	}

	// the 15000 folds the phase count base 3, the frequency base 50 and the
	// turn count base 10 squared
	o.kX = 0.407 * st.Winding.TurnCount * st.Winding.TurnCount * current * frequency *
		float64(phaseCount) / 15000 / float64(polePairs) / voltage

	o.lX = st.Length
	if st.VentChannelCount > 0 {
		o.lX -= 0.2 * float64(st.VentChannelCount) * st.VentChannelWidth
	}
	o.lX *= 0.1

	o.endPart = 0.15 * o.kX * (3*st.Winding.Shortening - 1) * st.InnerDiameter / float64(polePairs) / 1e3
	return o
}

// ComputeXad sets the direct axis armature reaction reactance
func (o *Reactances) ComputeXad(statorReactionCurrent, magnetizingCurrent float64) {
	o.Xad = statorReactionCurrent / magnetizingCurrent
}

// ComputeStatorReactance sets the stator winding leakage reactance from its
// slot, differential and end part components. ComputeXad must run first.
func (o *Reactances) ComputeStatorReactance(st *machine.Stator, airGap float64, polePairs int) {
	h11, h31, _ := st.Winding.AuxiliaryDimensions(st.WedgeHeight, st.SlitHeight)
	xSlot := 2 * float64(polePairs) * o.lX * o.kX * o.kBeta / float64(st.SlotCount) *
		((3*h31+h11)/3/st.SlotWidth + 0.2 + airGap/(2*st.ToothPitch+airGap/2)) / 100
	xDiff := 0.375 * airGap * st.ToothPitch * o.Xad / st.PolePitch / st.SlotsPerPolePhase /
		float64(st.Winding.Columns) / st.Winding.Wire.Width
	o.XStator = xSlot + xDiff + o.endPart
}

// ComputeXd sets the direct axis synchronous reactance
func (o *Reactances) ComputeXd() {
	o.Xd = o.Xad + o.XStator
}

// ComputeDissipationFactor sets the field winding dissipation factor σ from
// the no-load operating point
func (o *Reactances) ComputeDissipationFactor(rt *machine.Rotor, polePairs int, magnetizingCurrent, noLoadRotorFlow float64) {
	ins := &rt.Winding.Insulation
	o.DissipationFactor = 1 + 0.0835*magnetizingCurrent*float64(rt.EffectiveWires)*rt.Length/
		noLoadRotorFlow/rt.WindingFactor(polePairs)*
		((2*(rt.WedgeHeight+ins.WedgeFilling)+rt.SlotHeight-ins.BottomFilling-ins.BodyInsulation)/rt.SlotWidth+
			rt.AirGap/(2*rt.ToothPitch+rt.AirGap/2))*1e-8
}

// ComputeXPrime sets the transient and subtransient reactances
func (o *Reactances) ComputeXPrime() {
	o.XdPrime = o.Xd - o.Xad/o.DissipationFactor
	o.Xd2Prime = o.XStator + 0.025
}

// ComputeXPotier sets the Potier reactance; magnetic retaining rings add half
// the end part leakage
func (o *Reactances) ComputeXPotier(bd *machine.Bandaging) {
	o.XP = 0.8 * o.XdPrime
	if bd.Magnetic {
		o.XP += o.endPart / 2
	}
}

// ComputeTotalReactance sets the total and field winding leakage reactances
func (o *Reactances) ComputeTotalReactance() {
	o.XTotal = o.DissipationFactor * o.Xad
	o.XRotor = (o.DissipationFactor - 1) * o.Xad
}

// ComputeZeroSequence sets the zero sequence reactance. The two branches
// cover shortenings above and below 2/3.
func (o *Reactances) ComputeZeroSequence(st *machine.Stator, rotorWindingFactor float64, polePairs int) {
	beta := st.Winding.Shortening
	h11, h31, h2s := st.Winding.AuxiliaryDimensions(st.WedgeHeight, st.SlitHeight)
	kw := st.WindingFactor()

	coef1 := 2 * float64(polePairs) * o.kX * o.lX / float64(st.SlotCount) / st.SlotWidth
	coef2 := 2 * o.Xad * rotorWindingFactor / kw / kw
	coef3 := 4 * float64(polePairs) * float64(polePairs) / float64(st.SlotCount) / float64(st.SlotCount)

	if beta > 2.0/3.0 {
		coef4 := beta - 2.0/3.0
		o.X0 = coef1*((3*beta-2)*h31+h11*(9*beta-5)/12-h2s*(9*beta-8)/12)/100 +
			coef2*coef4*(coef3+0.037+0.39*coef4-coef4*coef4)
	} else {
		coef4 := 2.0/3.0 - beta
		o.X0 = coef1*((2-3*beta)*h31+h11*(7-9*beta)/12-h2s*(4-9*beta)/12)/100 +
			coef2*coef4*(coef3+0.5*coef4-coef4*coef4)
	}
}

// ComputeNegativeSequence sets the negative sequence reactance; a damping
// system in the big teeth brings it closer to the subtransient value
func (o *Reactances) ComputeNegativeSequence(damping bool) {
	if damping {
		o.X2 = 1.05 * o.Xd2Prime
	} else {
		o.X2 = 1.22 * o.Xd2Prime
	}
}
