// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/xuri/excelize/v2"

	"github.com/MtScience/EMCalculations/circuit"
)

// sheet appends rows to one worksheet, keeping the first error
type sheet struct {
	f    *excelize.File
	name string
	row  int
	err  error
}

func (o *sheet) line(cells ...interface{}) {
	o.row++
	for j, v := range cells {
		if o.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(j+1, o.row)
		if err != nil {
			o.err = err
			return
		}
		o.err = o.f.SetCellValue(o.name, cell, v)
	}
}

func (o *sheet) skip() { o.row++ }

// WriteReport writes the design summary workbook: ratings, the magnetic
// circuit table, reactances, short-circuit quantities, the loss balance,
// masses and the no-load characteristic
func (o *Results) WriteReport(filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for _, fill := range []struct {
		name string
		fn   func(*sheet)
	}{
		{"Ratings", o.ratingsSheet},
		{"Magnetic circuit", o.circuitSheet},
		{"Reactances", o.reactancesSheet},
		{"Short circuit", o.shortCircuitSheet},
		{"Losses", o.lossesSheet},
		{"Masses", o.massesSheet},
		{"Characteristic", o.characteristicSheet},
	} {
		if first != "" {
			if err := f.SetSheetName(first, fill.name); err != nil {
				return err
			}
			first = ""
		} else if _, err := f.NewSheet(fill.name); err != nil {
			return err
		}
		s := &sheet{f: f, name: fill.name}
		if fill.fn(s); s.err != nil {
			return s.err
		}
	}
	return f.SaveAs(filename)
}

func (o *Results) ratingsSheet(s *sheet) {
	r := &o.Design.Ratings
	s.line("design", o.Design.Key)
	s.skip()
	s.line("active power [kW]", r.Power)
	s.line("phase voltage [V]", r.Voltage)
	s.line("phase current [A]", r.Current)
	s.line("frequency [Hz]", r.Frequency)
	s.line("power factor", r.CosPhi)
	s.line("pole pairs", r.PolePairs)
	s.line("phases", r.PhaseCount)
	s.line("stator steel", o.Design.StatorSteelGrade)
	s.line("rotor steel", o.Design.RotorSteelGrade)
	s.skip()
	s.line("efficiency", o.Efficiency)
	s.line("short-circuit ratio", o.SCR)
	s.line("static overload", o.Loaded.StaticOverload(r.CosPhi))
	s.line("no-load field current [A]", o.NoLoad.RotorCurrent)
	s.line("rated field current [A]", o.Loaded.NominalFieldCurrent)
	s.line("field current density [A/mm2]", o.Design.Rotor.Winding.CurrentDensity)
}

func (o *Results) circuitSheet(s *sheet) {
	s.line("segment", "B no-load [T]", "H no-load [A/cm]", "MMF no-load [A]",
		"B loaded [T]", "H loaded [A/cm]", "MMF loaded [A]")
	for _, ids := range [][]circuit.SegID{circuit.StatorSegs, circuit.RotorSegs} {
		for _, id := range ids {
			if !o.Catalog.Segs[id].Present {
				continue
			}
			s.line(id.String(), o.NoLoad.B[id], o.NoLoad.H[id], o.NoLoad.MMF[id],
				o.Loaded.B[id], o.Loaded.H[id], o.Loaded.MMF[id])
		}
	}
	s.skip()
	s.line("stator flux [Wb]", o.NoLoad.StatorFlow, "", "", o.Loaded.StatorFlow)
	s.line("slot leakage flux [Wb]", o.NoLoad.PhiS, "", "", o.Loaded.PhiS)
	s.line("banding leakage flux [Wb]", o.NoLoad.PhiB, "", "", o.Loaded.PhiB)
	s.line("rotor flux [Wb]", o.NoLoad.RotorFlow, "", "", o.Loaded.RotorFlow)
	s.line("stator MMF [A]", o.NoLoad.StatorMMF, "", "", o.Loaded.StatorMMF)
	s.line("total MMF [A]", o.NoLoad.TotalMMF, "", "", o.Loaded.TotalMMF)
	s.skip()
	s.line("air gap coefficient", o.Catalog.AirGapCoef)
	s.line("slot leakage permeance", o.Catalog.Lambda2)
	s.line("magnetizing current [A]", o.NoLoad.MagnetizingCurrent)
	s.line("armature reaction MMF [A]", o.Loaded.ReactionMMF)
	s.line("sustained SC field current [A]", o.Loaded.SCCurrent)
	s.line("relative EMF", o.Loaded.RelativeEMF)
}

func (o *Results) reactancesSheet(s *sheet) {
	x := o.Reactances
	s.line("reactance", "[pu]")
	s.line("stator leakage", x.XStator)
	s.line("armature reaction xad", x.Xad)
	s.line("synchronous xd", x.Xd)
	s.line("transient xd'", x.XdPrime)
	s.line("subtransient xd''", x.Xd2Prime)
	s.line("Potier xP", x.XP)
	s.line("total", x.XTotal)
	s.line("field leakage", x.XRotor)
	s.line("zero sequence x0", x.X0)
	s.line("negative sequence x2", x.X2)
	s.skip()
	s.line("dissipation factor", x.DissipationFactor)
}

func (o *Results) shortCircuitSheet(s *sheet) {
	tc, cc := o.TimeConstants, o.FaultCurrents
	s.line("time constant [s]", "1-phase", "2-phase", "3-phase")
	s.line("Td0", tc.Td0)
	s.line("Td0'", tc.Td0Prime)
	s.line("Td0''", tc.Td02Prime)
	s.line("Td'", tc.TdPrime.OnePhase, tc.TdPrime.TwoPhase, tc.TdPrime.ThreePhase)
	s.line("Td''", tc.Td2Prime.OnePhase, tc.Td2Prime.TwoPhase, tc.Td2Prime.ThreePhase)
	s.line("Ta", tc.TaOnePhase, tc.TaTwoPhase)
	s.skip()
	s.line("fault current [pu]", "1-phase", "2-phase", "3-phase")
	s.line("sustained", cc.Static.OnePhase, cc.Static.TwoPhase, cc.Static.ThreePhase)
	s.line("transient", cc.Transient.OnePhase, cc.Transient.TwoPhase, cc.Transient.ThreePhase)
	s.line("subtransient", cc.SuperTransient.OnePhase, cc.SuperTransient.TwoPhase, cc.SuperTransient.ThreePhase)
}

func (o *Results) lossesSheet(s *sheet) {
	l := o.Losses
	s.line("loss", "[kW]")
	s.line("stator copper, ohmic", l.StatorOhmic)
	s.line("stator copper, total", l.StatorCopper)
	s.line("stator steel, yoke", l.StatorYoke)
	s.line("stator steel, teeth", l.StatorTeeth)
	s.line("stator steel, total", l.StatorSteelLoss)
	s.line("rotor surface, additional", l.RotorAddSurface)
	s.line("end zone, structural", l.StructuralParts)
	s.line("end zone, teeth", l.EndPartTeeth)
	s.line("end zone, screen and plate", l.ScreenAndPlate)
	s.line("end zone, yoke", l.EndPartYoke)
	s.line("excitation", l.Excitation)
	s.line("bearings", l.Bearings)
	s.line("rotor friction", l.RotorFriction)
	s.line("banding friction", l.BandagingFriction)
	s.line("brushes, ring", l.BrushRing)
	s.line("brushes, crossarm", l.BrushCrossarm)
	s.line("ventilation", l.Ventilation)
	s.line("mechanical, total", l.Mechanical)
	s.skip()
	s.line("short-circuit total", l.TotalSC())
	s.line("open-circuit total", l.TotalOC())
	s.line("efficiency", o.Efficiency)
}

func (o *Results) massesSheet(s *sheet) {
	m := o.Masses
	s.line("component", "[kg]")
	s.line("stator yoke", m.StatorYoke)
	s.line("stator teeth", m.StatorTeeth)
	s.line("stator copper", m.StatorArmature)
	s.line("rotor copper", m.RotorArmature)
	s.line("rotor", m.Rotor)
	s.skip()
	s.line("stator steel, total", m.StatorSteelMass())
	s.line("copper, total", m.TotalCopperMass())
}

func (o *Results) characteristicSheet(s *sheet) {
	s.line("relative voltage", "field current [A]")
	for i, level := range o.CharLevels {
		s.line(level, o.CharCurrents[i])
	}
}
