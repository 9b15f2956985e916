// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mass estimates the masses of the active parts of a turbogenerator
package mass

import (
	"math"

	"github.com/MtScience/EMCalculations/machine"
)

// densities in kg/m³
const (
	CopperDensity = 8920.0
	SteelDensity  = 7600.0 // electrical steel
)

// Mass holds the masses of the active machine parts in kg
type Mass struct {
	StatorYoke     float64
	StatorTeeth    float64
	StatorArmature float64

	RotorArmature float64
	Rotor         float64 // whole rotor with the shaft
}

// ComputeStatorMasses sets the stator steel and copper masses. The teeth mass
// comes from the ring between the bore and the slot bottoms net of the slots,
// which is equivalent to summing the individual teeth.
func (o *Mass) ComputeStatorMasses(st *machine.Stator, phaseCount int) {
	bottom := st.DiameterBottom()
	o.StatorYoke = SteelDensity * math.Pi / 4 *
		(st.OuterDiameter*st.OuterDiameter - bottom*bottom) * st.EffectiveLength * 1e-9
	o.StatorTeeth = SteelDensity * st.EffectiveLength *
		(math.Pi/4*(bottom*bottom-st.InnerDiameter*st.InnerDiameter)-
			float64(st.SlotCount)*st.SlotHeight*st.SlotWidth) * 1e-9

	copperSection := float64(st.Winding.Rows*st.Winding.Columns) * st.Winding.Wire.Section
	o.StatorArmature = CopperDensity * float64(phaseCount*st.Winding.ParallelBranches) * copperSection *
		st.Winding.TurnLength * st.Winding.TurnCount * 1e-9
}

// ComputeRotorMasses sets the field winding mass and a forging-density
// estimate of the whole rotor including the shaft ends
func (o *Mass) ComputeRotorMasses(rt *machine.Rotor, polePairs int) {
	endPart := rt.Winding.EndPartLength(rt.OuterDiameter, polePairs)
	o.RotorArmature = CopperDensity * 4 * float64(polePairs*rt.Winding.ParallelBranches) *
		rt.Winding.TurnCount * (rt.Winding.EquivalentSection*rt.Length+rt.Winding.WireSection*endPart) * 1e-9

	o.Rotor = 7850 * 1.5 * math.Pi / 4 * rt.OuterDiameter * rt.OuterDiameter * rt.Length * 1e-9
}

// TotalCopperMass returns the copper mass of both windings
func (o *Mass) TotalCopperMass() float64 {
	return o.StatorArmature + o.RotorArmature
}

// StatorSteelMass returns the whole stator core mass
func (o *Mass) StatorSteelMass() float64 {
	return o.StatorYoke + o.StatorTeeth
}
