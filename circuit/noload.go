// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"github.com/MtScience/EMCalculations/machine"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// characteristic resolution: the open-circuit curve is smooth, so a coarse
// grid up to 1.2 of the rated voltage is enough
const (
	charPoints   = 30
	charMaxLevel = 1.2
)

// NoLoad is the magnetic circuit at open-circuit operation, driven by the
// rated terminal voltage. It adds the leakage flux model and produces the
// open-circuit saturation characteristic.
type NoLoad struct {
	Circuit

	RotorCurrent       float64 // field current at no load [A]
	MagnetizingCurrent float64 // field current covering the air gap alone [A]
}

// NewNoLoad returns a fresh no-load circuit over the given segment catalog
func NewNoLoad(cat *Catalog) *NoLoad {
	return &NoLoad{Circuit: Circuit{Cat: cat}}
}

// ComputeStatorFlow derives the main flux from the simplified EMF equation.
// The 0.26/2 prefactor is folded into the 0.13 constant.
func (o *NoLoad) ComputeStatorFlow(voltage, frequency, statorTurnCount, statorWindingFactor float64) error {
	return o.setStatorFlow(0.13 * voltage / frequency / statorTurnCount / statorWindingFactor)
}

// ComputeRotorFlow adds the cross-slot and banding leakage fluxes to the main
// flux. The banding leakage exists only with magnetic retaining rings.
func (o *NoLoad) ComputeRotorFlow(rt *machine.Rotor, bd *machine.Bandaging, statorLength float64) error {
	phiS := o.Cat.Lambda2 * o.StatorMMF * 1e-8
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

// ComputeRotorCurrents derives the no-load field current from the total MMF
// and the magnetizing current from the air gap MMF alone
func (o *NoLoad) ComputeRotorCurrents(rotorTurnCount float64) error {
	if !o.Done() {
		return chk.Err("rotor currents need the completed MMF totals")
	}
	o.RotorCurrent = o.TotalMMF / rotorTurnCount
	o.MagnetizingCurrent = o.MMF[AirGap] / rotorTurnCount
	return nil
}

// Characteristic evaluates the whole B→H→MMF pipeline at 30 voltage levels
// between 0 and 1.2 of the rated voltage and returns the field current and
// relative voltage sequences. The nominal evaluation must have completed
// first; the characteristic reuses its nominal flux densities.
func (o *NoLoad) Characteristic(rotorTurnCount float64) (currents, levels []float64, err error) {
	if !o.Done() {
		err = chk.Err("characteristic needs the completed nominal evaluation")
		return
	}
	cat := o.Cat
	levels = utl.LinSpace(0, charMaxLevel, charPoints)
	currents = make([]float64, charPoints)
	yokeCorr := cat.statorYokeCorrection()

	for i, level := range levels {
		statorMMF := 8e3 * cat.AirGapCoef * o.B[AirGap] * level * cat.Segs[AirGap].Line
		statorMMF += cat.StatorSteel.Yoke.Magnetization(o.B[StatorYoke]*level*yokeCorr) * cat.Segs[StatorYoke].Line
		statorMMF += cat.StatorSteel.Teeth.Magnetization(o.B[StatorTeeth]*level) * cat.Segs[StatorTeeth].Line

		rotorFlow := (o.StatorFlow+o.PhiB)*level + cat.Lambda2*statorMMF*1e-8

		total := statorMMF
		total += cat.RotorSteel.Magnetization(rotorFlow/cat.Segs[RotorYoke].Section) *
			cat.YokeSaturationFactor * cat.Segs[RotorYoke].Line
		for _, id := range []SegID{RotorTeeth02, RotorTeeth07, RotorTeethSub02, RotorTeethSub07} {
			if cat.Segs[id].Present {
				total += cat.rotorToothH(rotorFlow/cat.Segs[id].Section, cat.Segs[id].Branching) * cat.Segs[id].Line
			}
		}
		currents[i] = total / rotorTurnCount
	}
	return
}
