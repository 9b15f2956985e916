// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package machine

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Stator describes the stator core and its winding. Zero values of the
// optional fields (vent channels, studs, bypasses, plates, screens) mean the
// machine does not have them.
type Stator struct {
	OuterDiameter  float64        `json:"outerDiameter"`
	InnerDiameter  float64        `json:"innerDiameter"`
	Length         float64        `json:"length"`
	SlotCount      int            `json:"slotCount"`
	SlotHeight     float64        `json:"slotHeight"`
	SlotWidth      float64        `json:"slotWidth"`
	SlitHeight     float64        `json:"slitHeight"`
	WedgeHeight    float64        `json:"wedgeHeight"`
	EffectiveWires int            `json:"effectiveWires"` // effective conductors per slot
	Winding        *StatorWinding `json:"winding"`

	VentChannelCount       int     `json:"ventChannelCount"`
	VentChannelWidth       float64 `json:"ventChannelWidth"`
	StudCount              int     `json:"studCount"`
	StudDiameter           float64 `json:"studDiameter"`
	BypassThickness        float64 `json:"bypassThickness"`
	PressurePlateThickness float64 `json:"pressurePlateThickness"`
	CopperScreenThickness  float64 `json:"copperScreenThickness"`

	// derived
	SlotsPerPolePhase float64 `json:"-"` // q
	PolePitch         float64 `json:"-"`
	ToothPitch        float64 `json:"-"`
	EffectiveLength   float64 `json:"-"` // steel length net of bypasses and vent channels
	CurrentLoad       float64 `json:"-"` // [A/cm]
}

// ComputeSlotsPerPolePhase sets q
func (o *Stator) ComputeSlotsPerPolePhase(polePairs, phaseCount int) {
	o.SlotsPerPolePhase = float64(o.SlotCount) / 2 / float64(polePairs) / float64(phaseCount)
}

// ComputePolePitch sets the pole pitch at the bore
func (o *Stator) ComputePolePitch(polePairs int) {
	o.PolePitch = math.Pi * o.InnerDiameter / 2 / float64(polePairs)
}

// ComputeToothPitch sets the tooth pitch at the bore
func (o *Stator) ComputeToothPitch() {
	o.ToothPitch = math.Pi * o.InnerDiameter / float64(o.SlotCount)
}

// ComputeEffectiveLength sets the net steel length scaled by the fill factor
func (o *Stator) ComputeEffectiveLength(fillFactor float64) {
	length := o.Length
	if o.BypassThickness > 0 {
		length -= 2 * o.BypassThickness
	}
	if o.VentChannelCount > 0 {
		length -= o.VentChannelWidth * float64(o.VentChannelCount)
	}
	o.EffectiveLength = length * fillFactor
}

// ComputeCurrentLoad sets the linear current load in A/cm
func (o *Stator) ComputeCurrentLoad(current float64) {
	o.CurrentLoad = 10 * current * float64(o.EffectiveWires) / float64(o.Winding.ParallelBranches) / o.ToothPitch
}

// HeatLoad returns the product of linear current load and current density
func (o *Stator) HeatLoad() float64 {
	return o.CurrentLoad * o.Winding.CurrentDensity
}

// WindingFactor returns the fundamental winding factor
func (o *Stator) WindingFactor() float64 {
	return math.Sin(math.Pi/6) * math.Sin(o.Winding.Shortening*math.Pi/2) /
		math.Sin(math.Pi/6/o.SlotsPerPolePhase) / o.SlotsPerPolePhase
}

// DiameterThird returns the bore diameter at one third of the slot height
func (o *Stator) DiameterThird() float64 {
	return o.InnerDiameter + 2*o.SlotHeight/3
}

// DiameterBottom returns the bore diameter at the slot bottom
func (o *Stator) DiameterBottom() float64 {
	return o.InnerDiameter + 2*o.SlotHeight
}

// ToothPitchThird returns the tooth pitch at one third of the slot height
func (o *Stator) ToothPitchThird() float64 {
	return math.Pi * o.DiameterThird() / float64(o.SlotCount)
}

// ToothPitchBottom returns the tooth pitch at the slot bottom
func (o *Stator) ToothPitchBottom() float64 {
	return math.Pi * o.DiameterBottom() / float64(o.SlotCount)
}

// YokeHeight returns the radial yoke height net of the clamping stud bore
func (o *Stator) YokeHeight() (float64, error) {
	height := (o.OuterDiameter - o.DiameterBottom()) / 2
	if o.StudDiameter > 0 {
		height -= o.StudDiameter / 3
	}
	if height <= 0 {
		return 0, chk.Err("stator yoke height is not positive: %g", height)
	}
	return height, nil
}

// YokeSection returns the yoke section in m²
func (o *Stator) YokeSection() (float64, error) {
	height, err := o.YokeHeight()
	if err != nil {
		return 0, err
	}
	return height * o.EffectiveLength * 1e-6, nil
}

// TeethSectionThird returns the per-pole teeth section at one third of the
// slot height in m²
func (o *Stator) TeethSectionThird() (float64, error) {
	if o.ToothPitch-o.SlotWidth <= 0 {
		return 0, chk.Err("stator tooth width is not positive: %g", o.ToothPitch-o.SlotWidth)
	}
	return 1.91 * o.EffectiveLength * (o.ToothPitchThird() - o.SlotWidth) * o.SlotsPerPolePhase * 1e-6, nil
}

// YokeLine returns the yoke magnetic line length in cm
func (o *Stator) YokeLine(polePairs int, rotorSurfaceRelation float64) (float64, error) {
	height, err := o.YokeHeight()
	if err != nil {
		return 0, err
	}
	return math.Pi * rotorSurfaceRelation * (o.OuterDiameter - height) / 4 / float64(polePairs) * 0.1, nil
}

// ToothLine returns the tooth magnetic line length in cm
func (o *Stator) ToothLine() float64 {
	return o.SlotHeight * 0.1
}

// BranchingFactor returns the factor of flux branching out of the teeth into
// the slots and vent channels
func (o *Stator) BranchingFactor() float64 {
	t13 := o.ToothPitchThird()
	return t13*o.Length/(t13-o.SlotWidth)/o.EffectiveLength - 1
}

// StampSlotDimensions returns the die dimensions of the slot punching
func (o *Stator) StampSlotDimensions(assemblyAllowance, stampAllowance float64) (height, width float64) {
	return o.SlotHeight + stampAllowance, o.SlotWidth + assemblyAllowance
}
