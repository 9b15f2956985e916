// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shortcirc computes the short-circuit behavior of a turbogenerator:
// the field and stator time constants and the relative fault currents for
// single, two and three phase faults.
package shortcirc

import (
	"math"

	"github.com/MtScience/EMCalculations/circuit"
	"github.com/MtScience/EMCalculations/machine"
	"github.com/MtScience/EMCalculations/react"
)

// PerFault holds one quantity for the three fault kinds
type PerFault struct {
	OnePhase   float64
	TwoPhase   float64
	ThreePhase float64
}

// TimeConstants holds the decay time constants of the short-circuit
// transients, in seconds
type TimeConstants struct {
	Td0       float64 // field winding constant with open stator
	Td0Prime  float64
	Td02Prime float64

	TdPrime  PerFault // transient constants per fault kind
	Td2Prime PerFault // subtransient constants per fault kind

	// aperiodic (DC offset) constants; a three phase fault has no zero
	// sequence path so only two kinds apply
	TaOnePhase float64
	TaTwoPhase float64
}

// ComputeRotorTimeConstants sets the open-stator field winding constant and
// its derived transient and subtransient bases
func (o *TimeConstants) ComputeRotorTimeConstants(rt *machine.Rotor, nl *circuit.NoLoad, xs *react.Reactances, polePairs int) {
	o.Td0 = 2 * float64(polePairs) * rt.Winding.TurnCount * rt.WindingFactor(polePairs) *
		xs.DissipationFactor * nl.RotorFlow / nl.MagnetizingCurrent / rt.Winding.Resistance[75]
	o.Td0Prime = 4 * o.Td0 / 3
	o.Td02Prime = o.Td0 * xs.DissipationFactor / 4
}

// ComputeTransients sets the transient decay constants per fault kind
func (o *TimeConstants) ComputeTransients(xs *react.Reactances) {
	o.TdPrime = PerFault{
		OnePhase:   o.Td0Prime * (xs.XdPrime + xs.X2 + xs.X0) / (xs.Xd + xs.X2 + xs.X0),
		TwoPhase:   o.Td0Prime * (xs.XdPrime + xs.X2) / (xs.Xd + xs.X2),
		ThreePhase: o.Td0Prime * xs.XdPrime / xs.Xd,
	}
}

// ComputeSuperTransients sets the subtransient decay constants per fault kind
func (o *TimeConstants) ComputeSuperTransients(xs *react.Reactances) {
	o.Td2Prime = PerFault{
		OnePhase:   o.Td02Prime * (xs.Xd2Prime + xs.X2 + xs.X0) / (xs.XdPrime + xs.X2 + xs.X0),
		TwoPhase:   o.Td02Prime * (xs.Xd2Prime + xs.X2) / (xs.XdPrime + xs.X2),
		ThreePhase: o.Td02Prime * xs.Xd2Prime / xs.XdPrime,
	}
}

// ComputeAperiodic sets the DC offset decay constants from the per-unit
// stator resistance at 75 °C
func (o *TimeConstants) ComputeAperiodic(st *machine.Stator, xs *react.Reactances, frequency, current, voltage float64) {
	relRes := current * st.Winding.Resistance[75] / voltage
	aux := 2 * math.Pi * relRes * frequency
	o.TaOnePhase = (2*xs.X2 + xs.X0) / 3 / aux
	o.TaTwoPhase = xs.X2 / aux
}

// Currents holds the relative fault currents: sustained, transient and
// subtransient, per fault kind
type Currents struct {
	Static         PerFault
	Transient      PerFault
	SuperTransient PerFault
}

// NewCurrents derives all fault currents. relVoltage is the voltage level at
// the fault in rated units; relCurrent is the rated-to-magnetizing current
// ratio driving the sustained values.
func NewCurrents(xs *react.Reactances, relVoltage, relCurrent float64) *Currents {
	return &Currents{
		Static: PerFault{
			OnePhase:   relCurrent * 3 / (xs.Xd + xs.X2 + xs.X0),
			TwoPhase:   relCurrent * math.Sqrt(3) / (xs.Xd + xs.X2),
			ThreePhase: relCurrent / xs.Xd,
		},
		Transient: PerFault{
			OnePhase:   relVoltage * 3 / (xs.XdPrime + xs.X2 + xs.X0),
			TwoPhase:   relVoltage * math.Sqrt(3) / (xs.XdPrime + xs.X2),
			ThreePhase: relVoltage / xs.XdPrime,
		},
		SuperTransient: PerFault{
			OnePhase:   relVoltage * 3 / (xs.Xd2Prime + xs.X2 + xs.X0),
			TwoPhase:   relVoltage * math.Sqrt(3) / (xs.Xd2Prime + xs.X2),
			ThreePhase: relVoltage / xs.Xd2Prime,
		},
	}
}
