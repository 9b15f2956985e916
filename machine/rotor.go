// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package machine

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Reference height fractions of the rotor tooth cross-sections. Tooth flux
// density is evaluated at 20 % and 70 % of the slot height, counted from the
// slot bottom.
const (
	FracLow  = 0.2
	FracHigh = 0.7
)

// Rotor describes a solid turbogenerator rotor with milled winding slots.
// Dimensions in mm. Zero values of the optional fields (small slots, subslot
// channels, vent slots) mean the rotor does not have them.
type Rotor struct {
	AirGap         float64       `json:"airGap"` // one-sided air gap
	InnerDiameter  float64       `json:"innerDiameter"`
	Length         float64       `json:"length"`
	SlotCount      int           `json:"slotCount"`
	SlotPitchCount int           `json:"slotPitchCount"` // big teeth span several slot pitches
	SlotWidth      float64       `json:"slotWidth"`
	WedgeHeight    float64       `json:"wedgeHeight"`
	WedgeWidth     float64       `json:"wedgeWidth"`
	EffectiveWires int           `json:"effectiveWires"`
	Winding        *RotorWinding `json:"winding"`

	EffectiveWiresSmall   int     `json:"effectiveWiresSmall"`
	SubslotChannelHeight  float64 `json:"subslotChannelHeight"`
	SubslotChannelWidth   float64 `json:"subslotChannelWidth"`
	VertVentChannelPitch  float64 `json:"vertVentChannelPitch"`
	VertVentChannelLength float64 `json:"vertVentChannelLength"`
	VertVentChannelWidth  float64 `json:"vertVentChannelWidth"`
	BigToothSlotCount     int     `json:"bigToothSlotCount"`
	BigToothSlotWidth     float64 `json:"bigToothSlotWidth"`
	ToothSlotWidth        float64 `json:"toothSlotWidth"`
	ToothSlotHeight       float64 `json:"toothSlotHeight"`

	// derived
	OuterDiameter        float64 `json:"-"` // stator bore minus two air gaps
	SlotHeight           float64 `json:"-"`
	SlotHeightSmall      float64 `json:"-"`
	CoilsPerPole         float64 `json:"-"`
	PolePitch            float64 `json:"-"`
	ToothPitch           float64 `json:"-"`
	SurfaceRelation      float64 `json:"-"` // wound share of the surface, γ
	SurfaceRelationSmall float64 `json:"-"` // γ' excluding the small slots
	CurrentLoad          float64 `json:"-"` // [A/cm]
}

// SetOuterDiameter derives the barrel diameter from the stator bore
func (o *Rotor) SetOuterDiameter(statorInnerDiameter float64) {
	o.OuterDiameter = statorInnerDiameter - 2*o.AirGap
}

// HasSubslot tells whether the rotor has subslot ventilation channels
func (o *Rotor) HasSubslot() bool { return o.SubslotChannelHeight > 0 }

// ComputeSlotHeight stacks conductors, insulation and wedge into the slot
// depth, rounded to 0.1 mm as the slot is milled
func (o *Rotor) ComputeSlotHeight() error {
	ins := &o.Winding.Insulation
	stack := func(wires int) float64 {
		h := float64(wires)*o.Winding.WireHeight + float64(wires-1)*ins.TurnInsulation +
			ins.BodyInsulation + ins.AllFillings() + o.WedgeHeight
		return math.Round(h*10) / 10
	}
	o.SlotHeight = stack(o.EffectiveWires)
	if o.EffectiveWiresSmall > 0 {
		o.SlotHeightSmall = stack(o.EffectiveWiresSmall)
	}
	if o.ToothSlotHeight > 0 && o.ToothSlotHeight >= o.SlotHeight {
		return chk.Err("tooth vent slot is deeper than the winding slot: %g >= %g", o.ToothSlotHeight, o.SlotHeight)
	}
	return nil
}

// ComputeSurfaceRelation sets γ and γ'
func (o *Rotor) ComputeSurfaceRelation(polePairs int) {
	o.SurfaceRelation = float64(o.SlotCount) / float64(o.SlotPitchCount)
	o.SurfaceRelationSmall = float64(o.SlotCount-4*polePairs) / float64(o.SlotPitchCount)
}

// ComputeCoilsPerPole sets the coil count of the field winding per pole
func (o *Rotor) ComputeCoilsPerPole(polePairs int) {
	o.CoilsPerPole = float64(o.SlotCount) / 4 / float64(polePairs)
}

// ComputePolePitch sets the pole pitch at the barrel surface
func (o *Rotor) ComputePolePitch(polePairs int) {
	o.PolePitch = math.Pi * o.OuterDiameter / 2 / float64(polePairs)
}

// ComputeToothPitch sets the tooth pitch at the barrel surface
func (o *Rotor) ComputeToothPitch() {
	o.ToothPitch = math.Pi * o.OuterDiameter / float64(o.SlotPitchCount)
}

// ComputeCurrentLoad sets the linear current load in A/cm
func (o *Rotor) ComputeCurrentLoad(current float64) {
	o.CurrentLoad = 10 * current * float64(o.EffectiveWires) / float64(o.Winding.ParallelBranches) / o.ToothPitch
}

// HeatLoad returns the product of linear current load and current density
func (o *Rotor) HeatLoad() float64 {
	return o.CurrentLoad * o.Winding.CurrentDensity
}

// WindingFactor returns the fundamental winding factor of the field winding
func (o *Rotor) WindingFactor(polePairs int) float64 {
	p := float64(polePairs)
	coefPrime := 2 * p * math.Sin(math.Pi*o.SurfaceRelationSmall/2) /
		float64(o.SlotCount-4*polePairs) / math.Sin(math.Pi*p/float64(o.SlotPitchCount))
	if o.EffectiveWiresSmall == 0 {
		return coefPrime
	}
	ratio := float64(o.EffectiveWiresSmall) / float64(o.EffectiveWires)
	return (ratio*math.Sin(math.Pi/2*(1-o.SurfaceRelation+0.5/o.CoilsPerPole)) +
		coefPrime*(o.CoilsPerPole-1)) / (o.CoilsPerPole - 1 + ratio)
}

// ToothWidth returns the tooth width at the barrel surface
func (o *Rotor) ToothWidth() float64 {
	return o.ToothPitch - o.SlotWidth - o.ToothSlotWidth
}

// diameterAt returns the barrel diameter at the given fraction of the slot
// height, counted from the slot bottom
func (o *Rotor) diameterAt(frac float64) float64 {
	return o.OuterDiameter - 2*(1-frac)*o.SlotHeight
}

// subslotDiameterAt is diameterAt continued into the subslot channel; without
// channels it degenerates to the slot bottom diameter
func (o *Rotor) subslotDiameterAt(frac float64) float64 {
	d := o.diameterAt(0)
	if o.HasSubslot() {
		d -= 2 * (1 - frac) * o.SubslotChannelHeight
	}
	return d
}

func (o *Rotor) toothPitchAt(frac float64) float64 {
	return math.Pi * o.diameterAt(frac) / float64(o.SlotPitchCount)
}

func (o *Rotor) subslotToothPitchAt(frac float64) float64 {
	return math.Pi * o.subslotDiameterAt(frac) / float64(o.SlotPitchCount)
}

// toothSlotReaches tells whether the tooth vent slot reaches down to the
// cross-section at the given height fraction
func (o *Rotor) toothSlotReaches(frac float64) bool {
	return o.ToothSlotWidth > 0 && o.ToothSlotHeight >= (1-frac)*o.SlotHeight
}

// toothWidthAt returns the tooth width at the given fraction of the slot
// height, net of the tooth vent slot where it reaches that deep
func (o *Rotor) toothWidthAt(frac float64) float64 {
	width := o.toothPitchAt(frac) - o.SlotWidth
	if o.toothSlotReaches(frac) {
		width -= o.ToothSlotWidth
	}
	return width
}

func (o *Rotor) subslotToothWidthAt(frac float64) float64 {
	return o.subslotToothPitchAt(frac) - o.SubslotChannelWidth
}

// sinAlpha returns the per-pole sum of slot width projections onto the
// transverse axis for a unit slot width, at the wound share γ
func (o *Rotor) sinAlpha(polePairs int, surfaceRelation float64) float64 {
	return (1 - math.Cos(math.Pi*surfaceRelation/2)) /
		math.Sin(math.Pi*float64(polePairs)/float64(o.SlotPitchCount))
}

// TeethSection returns the per-pole teeth section in m² at the given height
// fraction. The width is validated down to the slot bottom because the tooth
// vent slot can make the section at FracLow narrower than at the bottom.
func (o *Rotor) TeethSection(frac float64, polePairs int) (float64, error) {
	if o.toothWidthAt(0) <= 0 || o.toothWidthAt(frac) <= 0 {
		return 0, chk.Err("rotor tooth width is not positive at %g of the slot height", frac)
	}
	totalSlotWidth := o.SlotWidth
	if o.toothSlotReaches(frac) {
		totalSlotWidth += o.ToothSlotWidth
	}
	span := o.diameterAt(frac)/float64(polePairs) - totalSlotWidth*o.sinAlpha(polePairs, o.SurfaceRelation)
	if o.BigToothSlotCount > 0 {
		span -= o.BigToothSlotWidth * float64(o.BigToothSlotCount)
	}
	return o.Length * span * 1e-6, nil
}

// SubslotTeethSection returns the per-pole teeth section in m² at the given
// fraction of the subslot channel height, or (0, nil) without channels. The
// small slots do not reach this deep, so the projection uses γ'.
func (o *Rotor) SubslotTeethSection(frac float64, polePairs int) (float64, error) {
	if !o.HasSubslot() {
		return 0, nil
	}
	if o.subslotToothWidthAt(0) <= 0 {
		return 0, chk.Err("rotor tooth width is not positive at the subslot channel bottom")
	}
	span := o.subslotDiameterAt(frac)/float64(polePairs) -
		o.SubslotChannelWidth*o.sinAlpha(polePairs, o.SurfaceRelationSmall)
	return o.Length * span * 1e-6, nil
}

// YokeSection returns the effective yoke section in m²
func (o *Rotor) YokeSection() float64 {
	d := o.subslotDiameterAt(0)
	return (d - o.InnerDiameter) / 2 * (o.Length + d/3) * 1e-6
}

// AirGapSection returns the per-pole air gap section in m²
func (o *Rotor) AirGapSection(polePairs int, statorLength float64) float64 {
	coef := math.Pi / 2 * (1 - o.SurfaceRelation/2)
	return (o.OuterDiameter + o.AirGap) * (statorLength + 2*o.AirGap) * coef / float64(polePairs) * 1e-6
}

// ToothHalfLine returns half the tooth magnetic line length in cm
func (o *Rotor) ToothHalfLine() float64 {
	return o.SlotHeight / 2 * 0.1
}

// SubslotToothHalfLine returns half the magnetic line length across the
// subslot channel region in cm, or zero without channels
func (o *Rotor) SubslotToothHalfLine() float64 {
	return o.SubslotChannelHeight / 2 * 0.1
}

// YokeLine returns the yoke magnetic line length in cm
func (o *Rotor) YokeLine(polePairs int) float64 {
	return o.subslotDiameterAt(0) / 2 / math.Sin(math.Pi/2/float64(polePairs)) * 0.1
}

// BranchingFactor returns the tooth flux branching factor at the given
// height fraction
func (o *Rotor) BranchingFactor(frac float64) float64 {
	return o.SlotWidth / o.toothWidthAt(frac)
}

// SubslotBranchingFactor returns the branching factor in the subslot channel
// region, or zero without channels
func (o *Rotor) SubslotBranchingFactor(frac float64) float64 {
	if !o.HasSubslot() {
		return 0
	}
	return o.SubslotChannelWidth / o.subslotToothWidthAt(frac)
}

// YokeSaturationFactor returns the yoke saturation factor. A full saturation
// calculation has not been needed so far; unity matches the hand method.
func (o *Rotor) YokeSaturationFactor() float64 { return 1 }

// Bandaging holds the retaining ring parameters of the rotor end windings
type Bandaging struct {
	OuterDiameter float64 `json:"outerDiameter"`
	InnerDiameter float64 `json:"innerDiameter"`
	RingWidth     float64 `json:"ringWidth"`
	Offset        float64 `json:"offset"`
	Magnetic      bool    `json:"magnetic"`
}

// Shaft holds the shaft, journal and slip-ring data used by the mechanical
// loss estimates
type Shaft struct {
	JournalDiameter    float64 `json:"journalDiameter"`
	JournalLength      float64 `json:"journalLength"`
	BrushWidth         float64 `json:"brushWidth"`
	BrushLength        float64 `json:"brushLength"`
	RingOuterDiameter  float64 `json:"ringOuterDiameter"`
	RingInnerDiameter  float64 `json:"ringInnerDiameter"`
	RingBrushCount     int     `json:"ringBrushCount"`
	CrossarmBrushCount int     `json:"crossarmBrushCount"`
}
