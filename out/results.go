// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the evaluation of a complete machine design and the
// report artefacts (saturation-curve plot and design summary workbook)
package out

import (
	"github.com/MtScience/EMCalculations/circuit"
	"github.com/MtScience/EMCalculations/inp"
	"github.com/MtScience/EMCalculations/losses"
	"github.com/MtScience/EMCalculations/mass"
	"github.com/MtScience/EMCalculations/react"
	"github.com/MtScience/EMCalculations/shortcirc"
)

// Results collects everything the evaluation of a design produces
type Results struct {
	Design        *inp.Design
	Catalog       *circuit.Catalog
	NoLoad        *circuit.NoLoad
	Loaded        *circuit.Loaded
	Reactances    *react.Reactances
	TimeConstants *shortcirc.TimeConstants
	FaultCurrents *shortcirc.Currents
	Masses        *mass.Mass
	Losses        *losses.Losses

	CharCurrents []float64 // no-load characteristic: field current [A]
	CharLevels   []float64 // no-load characteristic: relative voltage
	SCR          float64
	Efficiency   float64
}

// Evaluate runs the whole calculation pipeline on a derived design: no-load
// circuit, loaded circuit, reactances, short-circuit quantities, masses and
// the loss balance
func Evaluate(d *inp.Design) (*Results, error) {

	st, rt, bd, sh := d.Stator, d.Rotor, d.Bandaging, d.Shaft
	sw, rw := st.Winding, rt.Winding
	rat, set := &d.Ratings, &d.Settings
	p, m := rat.PolePairs, rat.PhaseCount

	cat, err := circuit.NewCatalog(st, rt, d.StatorSteel, d.RotorSteel, p)
	if err != nil {
		return nil, err
	}
	o := &Results{Design: d, Catalog: cat}

	// no-load magnetic circuit
	nl := circuit.NewNoLoad(cat)
	for _, err := range []error{
		nl.ComputeStatorFlow(rat.Voltage, rat.Frequency, sw.TurnCount, st.WindingFactor()),
		nl.ComputeStatorB(),
		nl.ComputeStatorH(),
		nl.ComputeStatorMMF(),
		nl.ComputeRotorFlow(rt, bd, st.Length),
		nl.ComputeRotorB(),
		nl.ComputeRotorH(),
		nl.ComputeRotorMMF(),
		nl.ComputeRotorCurrents(rw.TurnCount),
	} {
		if err != nil {
			return nil, err
		}
	}
	if o.CharCurrents, o.CharLevels, err = nl.Characteristic(rw.TurnCount); err != nil {
		return nil, err
	}
	o.NoLoad = nl

	// armature reaction and the synchronous reactances
	ld := circuit.NewLoaded(cat)
	ld.ComputeStatorReaction(rat.Current, p, m, sw.TurnCount, st.WindingFactor(),
		rw.TurnCount, rt.WindingFactor(p))
	xs := react.NewReactances(st, rat.Current, rat.Voltage, rat.Frequency, p, m)
	xs.ComputeXad(ld.ReactionCurrentReduced, nl.MagnetizingCurrent)
	xs.ComputeStatorReactance(st, rt.AirGap, p)
	xs.ComputeXd()

	// loaded magnetic circuit
	ld.ComputeSCCurrent(xs.XStator, nl.MagnetizingCurrent)
	ld.ComputeEMF(rat.CosPhi, rat.SinPhi, xs.XStator)
	ld.ComputeRotorSCMMF(rw.TurnCount)
	for _, err := range []error{
		ld.ComputeStatorFlow(nl.StatorFlow),
		ld.ComputeStatorB(),
		ld.ComputeStatorH(),
		ld.ComputeStatorMMF(),
		ld.ComputeRotorFlow(rt, bd, st.Length, rat.SinPhi, xs.XStator),
		ld.ComputeRotorB(),
		ld.ComputeRotorH(),
		ld.ComputeRotorMMF(),
		ld.ComputeFieldCurrents(rw.TurnCount, rat.SinPhi, xs.XStator),
	} {
		if err != nil {
			return nil, err
		}
	}
	o.Loaded = ld
	o.SCR = ld.SCR(nl.RotorCurrent)
	rw.ComputeCurrentDensity(ld.NominalFieldCurrent)

	// remaining reactances
	xs.ComputeDissipationFactor(rt, p, nl.MagnetizingCurrent, nl.RotorFlow)
	xs.ComputeXPrime()
	xs.ComputeXPotier(bd)
	xs.ComputeTotalReactance()
	xs.ComputeZeroSequence(st, rt.WindingFactor(p), p)
	xs.ComputeNegativeSequence(false)
	o.Reactances = xs

	// short-circuit quantities
	tc := new(shortcirc.TimeConstants)
	tc.ComputeRotorTimeConstants(rt, nl, xs, p)
	tc.ComputeTransients(xs)
	tc.ComputeSuperTransients(xs)
	tc.ComputeAperiodic(st, xs, rat.Frequency, rat.Current, rat.Voltage)
	o.TimeConstants = tc
	o.FaultCurrents = shortcirc.NewCurrents(xs, set.SCRelVoltage, set.SCRelCurrent)

	// masses
	ms := new(mass.Mass)
	ms.ComputeStatorMasses(st, m)
	ms.ComputeRotorMasses(rt, p)
	o.Masses = ms

	// losses and efficiency
	ls := losses.New(d.StatorSteel, rat.Frequency)
	ls.ComputeStatorCopper(st, rat.Current, m)
	ls.ComputeSCSteelLosses(st, rt, ld, ms, p)
	ls.ComputeOCSteelLosses(st, rt, nl, ms, p, set.PulsationFactor, o.SCR)
	if err := ls.ComputeEndPartSCLosses(st, rt, ld, p, set.EndZoneFactor); err != nil {
		return nil, err
	}
	ls.ComputeEndPartOCLosses(o.SCR)
	ls.ComputeExcitation(rt, ld, set.ExcitationEfficiency)
	if err := ls.ComputeMechanical(rt, bd, ms, sh, p, &d.Cooling); err != nil {
		return nil, err
	}
	o.Losses = ls
	o.Efficiency = ls.Efficiency(rat.Power)
	return o, nil
}
