// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"math"

	"github.com/MtScience/EMCalculations/machine"
	"github.com/cpmech/gosl/chk"
)

// Loaded is the magnetic circuit at rated load, driven by the stator MMF and
// the armature reaction MMF combined as phasors. It produces the rated field
// current, the sustained short-circuit current and the static overload and
// short-circuit ratios.
type Loaded struct {
	Circuit

	ReactionMMF            float64 // armature reaction MMF [A]
	ReactionMMFReduced     float64 // the same reduced to the field winding [A]
	ReactionCurrentReduced float64 // armature reaction current in field winding units [A]

	SCCurrent float64 // field current giving rated stator current at short circuit [A]
	SCMMF     float64 // the corresponding MMF [A]

	FieldCurrent        float64 // field current covering the magnetic circuit at load [A]
	NominalFieldMMF     float64 // rated excitation MMF, circuit and reaction combined [A]
	NominalFieldCurrent float64 // rated field current [A]

	RelativeEMF float64 // internal EMF in units of the rated voltage
}

// NewLoaded returns a fresh loaded circuit over the given segment catalog
func NewLoaded(cat *Catalog) *Loaded {
	return &Loaded{Circuit: Circuit{Cat: cat}}
}

// ComputeStatorReaction sets the armature reaction MMF at the rated stator
// current and reduces it to field winding units
func (o *Loaded) ComputeStatorReaction(current float64, polePairs, phaseCount int, statorTurnCount, statorWindingFactor, rotorTurnCount, rotorWindingFactor float64) {
	o.ReactionMMF = 1.06 * current * statorTurnCount * statorWindingFactor * float64(phaseCount) /
		3 / float64(polePairs)
	o.ReactionMMFReduced = o.ReactionMMF / rotorWindingFactor
	o.ReactionCurrentReduced = o.ReactionMMFReduced / rotorTurnCount
}

// ComputeSCCurrent sets the field current holding the rated stator current at
// a sustained three-phase short circuit
func (o *Loaded) ComputeSCCurrent(xStator, magnetizingCurrent float64) {
	o.SCCurrent = o.ReactionCurrentReduced + xStator*magnetizingCurrent
}

// ComputeEMF sets the internal EMF behind the stator leakage reactance. The
// form holds for overexcited operation only.
func (o *Loaded) ComputeEMF(cosPhi, sinPhi, xStator float64) {
	o.RelativeEMF = math.Hypot(cosPhi, sinPhi+xStator)
}

// ComputeRotorSCMMF sets the MMF matching the short-circuit field current
func (o *Loaded) ComputeRotorSCMMF(rotorTurnCount float64) {
	o.SCMMF = rotorTurnCount * o.SCCurrent
}

// ComputeStatorFlow scales the no-load flux up to the internal EMF
func (o *Loaded) ComputeStatorFlow(noLoadFlow float64) error {
	return o.setStatorFlow(noLoadFlow * o.RelativeEMF)
}

// phasorMMF combines two MMFs that are out of phase by the load angle
func (o *Loaded) phasorMMF(a, b, sinPhi, xStator float64) float64 {
	return math.Sqrt(a*a + b*b + 2*a*b*(xStator+sinPhi/o.RelativeEMF))
}

// ComputeRotorFlow adds the leakage fluxes to the main flux. The cross-slot
// leakage is driven by the phasor combination of the stator and reaction
// MMFs rather than the stator MMF alone.
func (o *Loaded) ComputeRotorFlow(rt *machine.Rotor, bd *machine.Bandaging, statorLength, sinPhi, xStator float64) error {
	leakMMF := o.phasorMMF(o.ReactionMMFReduced, o.StatorMMF, sinPhi, xStator)
	phiS := o.Cat.Lambda2 * leakMMF * 1e-8
	phiB := 0.0
	if bd.Magnetic {
		phiB = 1.2 * (bd.OuterDiameter - bd.InnerDiameter) / statorLength * rt.AirGap * o.StatorFlow / bd.Offset
	}
	if err := o.setRotorFlow(o.StatorFlow + phiS + phiB); err != nil {
		return err
	}
	o.PhiS, o.PhiB = phiS, phiB
	return nil
}

// ComputeFieldCurrents derives the load field current from the total MMF and
// the rated field current from its phasor combination with the reaction MMF
func (o *Loaded) ComputeFieldCurrents(rotorTurnCount, sinPhi, xStator float64) error {
	if !o.Done() {
		return chk.Err("field currents need the completed MMF totals")
	}
	o.FieldCurrent = o.TotalMMF / rotorTurnCount
	o.NominalFieldMMF = o.phasorMMF(o.TotalMMF, o.ReactionMMFReduced, sinPhi, xStator)
	o.NominalFieldCurrent = o.NominalFieldMMF / rotorTurnCount
	return nil
}

// StaticOverload returns the static overload capacity ratio
func (o *Loaded) StaticOverload(cosPhi float64) float64 {
	return o.NominalFieldCurrent / o.SCCurrent / cosPhi
}

// SCR returns the short-circuit ratio
func (o *Loaded) SCR(noLoadCurrent float64) float64 {
	return noLoadCurrent / o.SCCurrent
}
