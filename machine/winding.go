// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package machine holds the geometry and winding data of a turbogenerator.
// All linear dimensions are millimetres unless noted otherwise.
package machine

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// resistance correction factors relative to the 15 °C value
var (
	statorResTemps   = []int{15, 75, 105, 120}
	statorResFactors = []float64{1, 1.24, 1.36, 1.42}
	rotorResTemps    = []int{15, 75, 100, 115, 120}
	rotorResFactors  = []float64{1, 1.24, 1.34, 1.4, 1.42}
)

// Wire describes one elementary conductor of the stator coil
type Wire struct {
	Height           float64 `json:"height"`           // bare height
	Width            float64 `json:"width"`            // bare width
	Section          float64 `json:"section"`          // copper section [mm²]
	InsulationHeight float64 `json:"insulationHeight"` // two-sided wire insulation
}

// CoilInsulation collects the insulation thicknesses of a stator slot
type CoilInsulation struct {
	TurnInsulation   float64 `json:"turnInsulation"`
	ColumnInsulation float64 `json:"columnInsulation"`
	BodyInsulationH  float64 `json:"bodyInsulationH"` // body insulation, height-wise
	BodyInsulationW  float64 `json:"bodyInsulationW"` // body insulation, width-wise
	SemicondCoating  float64 `json:"semicondCoating"`
	WedgeFilling     float64 `json:"wedgeFilling"`
	CoilFilling      float64 `json:"coilFilling"` // spacer between the two coils in the slot
	BottomFilling    float64 `json:"bottomFilling"`
}

// AllFillings returns the total filling thickness in the slot
func (o *CoilInsulation) AllFillings() float64 {
	return o.WedgeFilling + o.CoilFilling + o.BottomFilling
}

// AllInsulation returns the total insulation thickness height- and width-wise
func (o *CoilInsulation) AllInsulation() (height, width float64) {
	height = o.TurnInsulation + o.SemicondCoating + o.BodyInsulationH + o.ColumnInsulation
	width = o.TurnInsulation + o.SemicondCoating + o.BodyInsulationW + o.ColumnInsulation
	return
}

// StatorWinding describes a double-layer coil winding
type StatorWinding struct {
	Insulation       CoilInsulation `json:"insulation"`
	Rows             int            `json:"rows"`    // horizontal rows of elementary conductors
	Columns          int            `json:"columns"` // vertical columns of elementary conductors
	SlotStep         int            `json:"slotStep"`
	ParallelBranches int            `json:"parallelBranches"`
	Wire             Wire           `json:"wire"`

	// derived
	CoilHeight     float64         `json:"-"`
	CoilWidth      float64         `json:"-"`
	Shortening     float64         `json:"-"` // relative pitch β
	TurnCount      float64         `json:"-"`
	TurnLength     float64         `json:"-"`
	Resistance     map[int]float64 `json:"-"` // [Ohm] by temperature [°C]
	CurrentDensity float64         `json:"-"` // [A/mm²]
}

// ComputeCoilDimensions finds the coil cross-section from the slot dimensions
func (o *StatorWinding) ComputeCoilDimensions(slotHeight, slotWidth, slitHeight, wedgeHeight, arrangementAllowance float64) {
	o.CoilHeight = (slotHeight - slitHeight - wedgeHeight - o.Insulation.AllFillings()) / 2
	o.CoilWidth = slotWidth - arrangementAllowance
}

// ComputeShortening sets the relative pitch β from the slot step
func (o *StatorWinding) ComputeShortening(slotsPerPolePhase float64, phaseCount int) {
	o.Shortening = float64(o.SlotStep) / float64(phaseCount) / slotsPerPolePhase
}

// ComputeTurnCount sets the series turn count per phase
func (o *StatorWinding) ComputeTurnCount(polePairs int, slotsPerPolePhase float64, effectiveWires int) {
	o.TurnCount = float64(polePairs*effectiveWires) * slotsPerPolePhase / float64(o.ParallelBranches)
}

// ComputeTurnLength sets the mean turn length from core length and bore diameter
func (o *StatorWinding) ComputeTurnLength(statorLength, diameter float64, polePairs int) {
	endPart := 2.5 * diameter / math.Pow(float64(polePairs), 1.5)
	o.TurnLength = 2 * (endPart + statorLength)
}

// ComputeResistance fills the per-temperature phase resistance table.
// conductivity is the copper conductivity in MS/m·mm²-compatible units of the
// design methodology (length in mm over section in mm²).
func (o *StatorWinding) ComputeResistance(conductivity float64) {
	base := o.TurnCount * o.TurnLength / conductivity / float64(o.ParallelBranches) /
		(float64(o.Rows*o.Columns) * o.Wire.Section)
	o.Resistance = make(map[int]float64, len(statorResTemps))
	for i, t := range statorResTemps {
		o.Resistance[t] = base * statorResFactors[i]
	}
}

// ComputeCurrentDensity sets the current density at the given phase current
func (o *StatorWinding) ComputeCurrentDensity(current float64) {
	o.CurrentDensity = current / float64(o.ParallelBranches) / (float64(o.Rows*o.Columns) * o.Wire.Section)
}

// AuxiliaryDimensions returns the copper height, the distance from copper to
// the air gap and the insulation thickness of the slot, used by the leakage
// reactance formulas.
func (o *StatorWinding) AuxiliaryDimensions(wedgeHeight, slitHeight float64) (copperHeight, distanceToAir, insulationThickness float64) {
	coilIns, _ := o.Insulation.AllInsulation()
	copperHeight = 2*o.CoilHeight - o.Wire.InsulationHeight - coilIns + o.Insulation.CoilFilling
	distanceToAir = slitHeight + wedgeHeight + o.Insulation.WedgeFilling +
		(o.Wire.InsulationHeight+coilIns)/2
	insulationThickness = o.Wire.InsulationHeight + coilIns + o.Insulation.CoilFilling
	return
}

// RotorInsulation collects the insulation thicknesses of a rotor slot
type RotorInsulation struct {
	TurnInsulation float64 `json:"turnInsulation"`
	BodyInsulation float64 `json:"bodyInsulation"`
	WedgeFilling   float64 `json:"wedgeFilling"`
	BottomFilling  float64 `json:"bottomFilling"`
}

// AllFillings returns the total filling thickness in the slot
func (o *RotorInsulation) AllFillings() float64 {
	return o.WedgeFilling + o.BottomFilling
}

// RotorWinding describes the concentric field winding of the rotor
type RotorWinding struct {
	Insulation       RotorInsulation `json:"insulation"`
	ParallelBranches int             `json:"parallelBranches"`
	WireHeight       float64         `json:"wireHeight"`
	WireWidth        float64         `json:"wireWidth"`
	WireSection      float64         `json:"wireSection"` // [mm²]

	// derived
	TurnCount         float64         `json:"-"`
	TurnLength        float64         `json:"-"`
	EquivalentSection float64         `json:"-"` // section reduced by vent channels [mm²]
	Resistance        map[int]float64 `json:"-"` // [Ohm] by temperature [°C]
	CurrentDensity    float64         `json:"-"` // [A/mm²]
}

// EndPartLength returns the length of one winding end part
func (o *RotorWinding) EndPartLength(diameter float64, polePairs int) float64 {
	return 1.35 * diameter / math.Pow(float64(polePairs), 0.8)
}

// ComputeTurnCount sets the series turn count of the field winding.
// effectiveWiresSmall is zero when the rotor has no small slots.
func (o *RotorWinding) ComputeTurnCount(effectiveWires, effectiveWiresSmall int, coilsPerPole float64) {
	n := float64(effectiveWires) * (coilsPerPole - 1)
	if effectiveWiresSmall > 0 {
		n += float64(effectiveWiresSmall)
	}
	o.TurnCount = n / float64(o.ParallelBranches)
}

// ComputeTurnLength sets the mean turn length
func (o *RotorWinding) ComputeTurnLength(rotorLength, diameter float64, polePairs int) {
	o.TurnLength = 2 * (o.EndPartLength(diameter, polePairs) + rotorLength)
}

// ComputeResistance fills the per-temperature winding resistance table.
// Vertical vent channels punched through the conductors reduce the section
// over the barrel length; a zero channel pitch means there are none.
func (o *RotorWinding) ComputeResistance(conductivity, rotorLength, diameter float64, polePairs int, ventChannelLength, ventChannelWidth, ventChannelPitch float64) error {
	adj := 1.0
	if ventChannelPitch > 0 {
		adj = 1 - ventChannelLength*ventChannelWidth/ventChannelPitch/o.WireWidth
	}
	if adj <= 0 {
		return chk.Err("vent channels remove the whole conductor section")
	}
	o.EquivalentSection = o.WireSection * adj
	endPart := o.EndPartLength(diameter, polePairs)
	base := 4 * float64(polePairs) * o.TurnCount / conductivity / float64(o.ParallelBranches) *
		(rotorLength/o.EquivalentSection + endPart/o.WireSection)
	o.Resistance = make(map[int]float64, len(rotorResTemps))
	for i, t := range rotorResTemps {
		o.Resistance[t] = base * rotorResFactors[i]
	}
	return nil
}

// ComputeCurrentDensity sets the current density at the given field current
func (o *RotorWinding) ComputeCurrentDensity(current float64) {
	o.CurrentDensity = current / float64(o.ParallelBranches) / o.EquivalentSection
}
