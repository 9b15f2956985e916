// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import "github.com/cpmech/gosl/chk"

// phase tracks how far the B→H→MMF pipeline has progressed. The stator phase
// must complete before the rotor phase because the rotor flux depends on the
// stator MMF through the slot leakage term.
type phase int

const (
	phaseNew phase = iota
	phaseStatorFlow
	phaseStatorB
	phaseStatorH
	phaseStatorMMF
	phaseRotorFlow
	phaseRotorB
	phaseRotorH
	phaseDone
)

var phaseNames = map[phase]string{
	phaseNew:        "construction",
	phaseStatorFlow: "stator flux",
	phaseStatorB:    "stator flux densities",
	phaseStatorH:    "stator field strengths",
	phaseStatorMMF:  "stator MMF",
	phaseRotorFlow:  "rotor flux",
	phaseRotorB:     "rotor flux densities",
	phaseRotorH:     "rotor field strengths",
	phaseDone:       "rotor MMF",
}

// Circuit carries the per-segment state of one magnetic circuit evaluation.
// It is driven by the no-load and loaded variants, which set the stator and
// rotor fluxes; the shared methods then walk the segments in the fixed
// stator-then-rotor order. One Circuit belongs to exactly one evaluation.
type Circuit struct {
	Cat *Catalog

	B   [segCount]float64 // flux density [T]
	H   [segCount]float64 // field strength [A/cm]
	MMF [segCount]float64 // magnetomotive force [A]

	StatorFlow float64 // main flux crossing the air gap [Wb]
	RotorFlow  float64 // flux in the rotor body, main plus leakage [Wb]
	PhiS       float64 // cross-slot leakage flux [Wb]
	PhiB       float64 // banding leakage flux [Wb]

	StatorMMF float64 // sum over the stator segments [A]
	TotalMMF  float64 // stator MMF plus the present rotor segments [A]

	state phase
}

// advance checks that the pipeline is at the expected step and moves it one
// step forward. Any out-of-order call is an explicit error instead of a
// silent computation on undefined fields.
func (o *Circuit) advance(from phase) error {
	if o.state != from {
		return chk.Err("cannot compute %s: pipeline is at %s, expected %s",
			phaseNames[from+1], phaseNames[o.state], phaseNames[from])
	}
	o.state++
	return nil
}

// setStatorFlow is called by the variants once they have derived the driving
// stator flux
func (o *Circuit) setStatorFlow(flow float64) error {
	if err := o.advance(phaseNew); err != nil {
		return err
	}
	o.StatorFlow = flow
	return nil
}

// setRotorFlow is called by the variants once the stator MMF is known and the
// leakage fluxes have been added in
func (o *Circuit) setRotorFlow(flow float64) error {
	if err := o.advance(phaseStatorMMF); err != nil {
		return err
	}
	o.RotorFlow = flow
	return nil
}

// ComputeStatorB fills the stator segment flux densities from the stator flux
func (o *Circuit) ComputeStatorB() error {
	if err := o.advance(phaseStatorFlow); err != nil {
		return err
	}
	for _, id := range StatorSegs {
		o.B[id] = o.StatorFlow / o.Cat.Segs[id].Section
	}
	return nil
}

// ComputeStatorH fills the stator segment field strengths. The air gap is
// linear media and uses the closed-form 8000·kδ·B instead of a curve lookup;
// the yoke flux density is first scaled by the distribution correction.
func (o *Circuit) ComputeStatorH() error {
	if err := o.advance(phaseStatorB); err != nil {
		return err
	}
	o.H[AirGap] = 8e3 * o.Cat.AirGapCoef * o.B[AirGap]
	o.H[StatorYoke] = o.Cat.StatorSteel.Yoke.Magnetization(o.B[StatorYoke] * o.Cat.statorYokeCorrection())
	o.H[StatorTeeth] = o.Cat.StatorSteel.Teeth.Magnetization(o.B[StatorTeeth])
	return nil
}

// ComputeStatorMMF fills the stator segment MMFs and their sum
func (o *Circuit) ComputeStatorMMF() error {
	if err := o.advance(phaseStatorH); err != nil {
		return err
	}
	o.StatorMMF = 0
	for _, id := range StatorSegs {
		o.MMF[id] = o.H[id] * o.Cat.Segs[id].Line
		o.StatorMMF += o.MMF[id]
	}
	return nil
}

// ComputeRotorB fills the flux densities of the present rotor segments from
// the rotor flux
func (o *Circuit) ComputeRotorB() error {
	if err := o.advance(phaseRotorFlow); err != nil {
		return err
	}
	for _, id := range RotorSegs {
		if o.Cat.Segs[id].Present {
			o.B[id] = o.RotorFlow / o.Cat.Segs[id].Section
		}
	}
	return nil
}

// ComputeRotorH fills the rotor segment field strengths: the yoke through the
// magnetization curve scaled by the saturation factor, the teeth through the
// knee-point rule
func (o *Circuit) ComputeRotorH() error {
	if err := o.advance(phaseRotorB); err != nil {
		return err
	}
	o.H[RotorYoke] = o.Cat.RotorSteel.Magnetization(o.B[RotorYoke]) * o.Cat.YokeSaturationFactor
	for _, id := range []SegID{RotorTeeth02, RotorTeeth07, RotorTeethSub02, RotorTeethSub07} {
		if o.Cat.Segs[id].Present {
			o.H[id] = o.Cat.rotorToothH(o.B[id], o.Cat.Segs[id].Branching)
		}
	}
	return nil
}

// ComputeRotorMMF fills the rotor segment MMFs and the total MMF of the
// whole circuit
func (o *Circuit) ComputeRotorMMF() error {
	if err := o.advance(phaseRotorH); err != nil {
		return err
	}
	o.TotalMMF = o.StatorMMF
	for _, id := range RotorSegs {
		if o.Cat.Segs[id].Present {
			o.MMF[id] = o.H[id] * o.Cat.Segs[id].Line
			o.TotalMMF += o.MMF[id]
		}
	}
	return nil
}

// Done tells whether both phases have completed and the totals may be read
func (o *Circuit) Done() bool { return o.state == phaseDone }
