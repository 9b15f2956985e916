// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/MtScience/EMCalculations/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_evaluate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("evaluate01. whole pipeline on the 63 MW design")

	d := inp.ReadDesign("data/tvf63.json")
	res, err := Evaluate(d)
	if err != nil {
		tst.Errorf("evaluation failed: %v\n", err)
		return
	}

	// magnetic circuit
	chk.Float64(tst, "no-load total MMF", 1e-8, res.NoLoad.TotalMMF, 28758.604916402277)
	chk.Float64(tst, "no-load field current", 1e-10, res.NoLoad.RotorCurrent, 737.4001260615969)
	chk.Float64(tst, "magnetizing current", 1e-10, res.NoLoad.MagnetizingCurrent, 477.4856065497772)
	chk.Float64(tst, "rated field current", 1e-9, res.Loaded.NominalFieldCurrent, 2411.555312848992)
	chk.Float64(tst, "SCR", 1e-13, res.SCR, 0.47604659959139684)

	// characteristic
	if len(res.CharCurrents) != 30 || len(res.CharLevels) != 30 {
		tst.Errorf("wrong characteristic length: %d\n", len(res.CharCurrents))
		return
	}
	chk.Float64(tst, "characteristic end", 1e-9, res.CharCurrents[29], 1362.9378870178973)

	// reactances and time constants
	chk.Float64(tst, "xd", 1e-12, res.Reactances.Xd, 3.244094192941451)
	chk.Float64(tst, "xd''", 1e-13, res.Reactances.Xd2Prime, 0.18363951693165004)
	chk.Float64(tst, "Td0", 1e-11, res.TimeConstants.Td0, 6.05671496258243)

	// masses and losses
	chk.Float64(tst, "stator yoke mass", 1e-8, res.Masses.StatorYoke, 20677.750788423902)
	chk.Float64(tst, "mechanical losses", 1e-10, res.Losses.Mechanical, 711.2202417468402)
	chk.Float64(tst, "efficiency", 1e-13, res.Efficiency, 0.9700196952663144)

	// field winding loading at the rated point
	chk.Float64(tst, "field current density", 1e-12, d.Rotor.Winding.CurrentDensity,
		res.Loaded.NominalFieldCurrent/271.2)
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. workbook and plot artefacts")

	d := inp.ReadDesign("data/tvf63.json")
	res, err := Evaluate(d)
	if err != nil {
		tst.Errorf("evaluation failed: %v\n", err)
		return
	}

	dir := tst.TempDir()
	xlsx := io.Sf("%s/%s.xlsx", dir, d.Key)
	if err := res.WriteReport(xlsx); err != nil {
		tst.Errorf("report failed: %v\n", err)
		return
	}
	if _, err := os.Stat(xlsx); err != nil {
		tst.Errorf("report file is missing: %v\n", err)
	}

	png := io.Sf("%s/%s.png", dir, d.Key)
	if err := res.PlotCharacteristic(16, 12, png); err != nil {
		tst.Errorf("plot failed: %v\n", err)
		return
	}
	if _, err := os.Stat(png); err != nil {
		tst.Errorf("plot file is missing: %v\n", err)
	}

	steelPng := io.Sf("%s/steel.png", dir)
	if err := PlotSteel(d.RotorSteel, 2.4, 16, 12, steelPng); err != nil {
		tst.Errorf("steel plot failed: %v\n", err)
	}
}
