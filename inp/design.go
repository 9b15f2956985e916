// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the machine design data read from a (.json) design file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/MtScience/EMCalculations/losses"
	"github.com/MtScience/EMCalculations/machine"
	"github.com/MtScience/EMCalculations/msteel"
)

// Ratings holds the nameplate data of the machine
type Ratings struct {
	Power      float64 `json:"power"`      // active power [kW]
	Voltage    float64 `json:"voltage"`    // phase voltage [V]
	Current    float64 `json:"current"`    // phase current [A]
	Frequency  float64 `json:"frequency"`  // [Hz]
	CosPhi     float64 `json:"cosPhi"`     // rated power factor
	PolePairs  int     `json:"polePairs"`  // p
	PhaseCount int     `json:"phaseCount"` // m
	FillFactor float64 `json:"fillFactor"` // steel stacking factor

	// derived
	SinPhi float64 `json:"-"`
}

// Settings holds calculation constants with sensible defaults
type Settings struct {
	Conductivity         float64 `json:"conductivity"`         // copper conductivity [S·mm/mm²]
	ArrangementAllowance float64 `json:"arrangementAllowance"` // coil arrangement allowance [mm]
	PulsationFactor      float64 `json:"pulsationFactor"`      // pulsation loss factor kx
	EndZoneFactor        int     `json:"endZoneFactor"`        // end-zone structural loss factor kz
	ExcitationEfficiency float64 `json:"excitationEfficiency"` // exciter efficiency
	SCRelVoltage         float64 `json:"scRelVoltage"`         // pre-fault voltage [pu]
	SCRelCurrent         float64 `json:"scRelCurrent"`         // pre-fault field current [pu]
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	o.Conductivity = 57000
	o.ArrangementAllowance = 0.3
	o.PulsationFactor = 1.7
	o.EndZoneFactor = 5
	o.ExcitationEfficiency = 0.85
	o.SCRelVoltage = 1.0
	o.SCRelCurrent = 2.2
}

// Design holds all machine design data
type Design struct {

	// input
	Ratings          Ratings            `json:"ratings"`
	Stator           *machine.Stator    `json:"stator"`
	Rotor            *machine.Rotor     `json:"rotor"`
	Bandaging        *machine.Bandaging `json:"bandaging"`
	Shaft            *machine.Shaft     `json:"shaft"`
	StatorSteelGrade string             `json:"statorSteel"`
	RotorSteelGrade  string             `json:"rotorSteel"`
	Cooling          losses.Cooling     `json:"cooling"`
	Settings         Settings           `json:"settings"`

	// derived
	Key         string              // design key; e.g. mydesign.json => mydesign
	StatorSteel *msteel.StatorSteel // resolved stator steel pair
	RotorSteel  *msteel.Curve       // resolved rotor forging steel
}

// ReadDesign reads all machine design data from a .json design file
func ReadDesign(filename string) *Design {

	// new design
	var o Design
	o.Settings.SetDefault()

	// read file
	b, err := os.ReadFile(filename)
	if err != nil {
		chk.Panic("ReadDesign: cannot read design file %q", filename)
	}

	// decode
	if err := json.Unmarshal(b, &o); err != nil {
		chk.Panic("ReadDesign: cannot unmarshal design file %q", filename)
	}
	o.Key = io.FnKey(filepath.Base(filename))

	// derive
	if err := o.Derive(); err != nil {
		chk.Panic("ReadDesign: %q is not a complete design: %v", filename, err)
	}
	return &o
}

// Derive validates the design and runs the whole geometry pipeline: steel
// grades are resolved against the registry, and all derived quantities of
// the stator, the rotor and both windings are filled in
func (o *Design) Derive() (err error) {

	// validate
	switch {
	case o.Stator == nil || o.Stator.Winding == nil:
		return chk.Err("design lacks the stator section or its winding")
	case o.Rotor == nil || o.Rotor.Winding == nil:
		return chk.Err("design lacks the rotor section or its winding")
	case o.Bandaging == nil:
		return chk.Err("design lacks the bandaging section")
	case o.Shaft == nil:
		return chk.Err("design lacks the shaft section")
	case o.Ratings.PolePairs < 1 || o.Ratings.PhaseCount < 1:
		return chk.Err("pole pairs and phase count must be positive")
	case o.Ratings.CosPhi <= 0 || o.Ratings.CosPhi > 1:
		return chk.Err("cosPhi = %g is out of range", o.Ratings.CosPhi)
	case o.Ratings.FillFactor <= 0 || o.Ratings.FillFactor > 1:
		return chk.Err("fill factor = %g is out of range", o.Ratings.FillFactor)
	}
	o.Ratings.SinPhi = math.Sqrt(1 - o.Ratings.CosPhi*o.Ratings.CosPhi)

	// steels
	if o.StatorSteel, err = msteel.ForStator(o.StatorSteelGrade); err != nil {
		return
	}
	if o.RotorSteel, err = msteel.Get(o.RotorSteelGrade); err != nil {
		return
	}

	// stator geometry
	p, m := o.Ratings.PolePairs, o.Ratings.PhaseCount
	st, sw := o.Stator, o.Stator.Winding
	st.ComputeSlotsPerPolePhase(p, m)
	st.ComputePolePitch(p)
	st.ComputeToothPitch()
	st.ComputeEffectiveLength(o.Ratings.FillFactor)
	st.ComputeCurrentLoad(o.Ratings.Current)
	sw.ComputeCoilDimensions(st.SlotHeight, st.SlotWidth, st.SlitHeight, st.WedgeHeight, o.Settings.ArrangementAllowance)
	sw.ComputeShortening(st.SlotsPerPolePhase, m)
	sw.ComputeTurnCount(p, st.SlotsPerPolePhase, st.EffectiveWires)
	sw.ComputeTurnLength(st.Length, st.InnerDiameter, p)
	sw.ComputeResistance(o.Settings.Conductivity)
	sw.ComputeCurrentDensity(o.Ratings.Current)

	// rotor geometry
	rt, rw := o.Rotor, o.Rotor.Winding
	rt.SetOuterDiameter(st.InnerDiameter)
	if err = rt.ComputeSlotHeight(); err != nil {
		return
	}
	rt.ComputeSurfaceRelation(p)
	rt.ComputeCoilsPerPole(p)
	rt.ComputePolePitch(p)
	rt.ComputeToothPitch()
	rw.ComputeTurnCount(rt.EffectiveWires, rt.EffectiveWiresSmall, rt.CoilsPerPole)
	rw.ComputeTurnLength(rt.Length, rt.OuterDiameter, p)
	return rw.ComputeResistance(o.Settings.Conductivity, rt.Length, rt.OuterDiameter, p,
		rt.VertVentChannelLength, rt.VertVentChannelWidth, rt.VertVentChannelPitch)
}
