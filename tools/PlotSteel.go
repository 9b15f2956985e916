// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/MtScience/EMCalculations/msteel"
	"github.com/MtScience/EMCalculations/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	grade := io.ArgToString(0, "3414-along")
	maxB := io.ArgToFloat(1, 2.4)
	width := io.ArgToFloat(2, 16)
	height := io.ArgToFloat(3, 12)
	fnout := io.ArgToString(4, "")
	io.Pf("\n%s\n", io.ArgsTable(
		"steel grade name", "grade", grade,
		"maximum flux density", "maxB", maxB,
		"plot width [cm]", "width", width,
		"plot height [cm]", "height", height,
		"output filename", "fnout", fnout,
	))

	// curve
	curve, err := msteel.Get(grade)
	if err != nil {
		io.PfRed("unknown grade %q; available grades:\n", grade)
		for _, name := range msteel.Grades() {
			io.Pf("  %s\n", name)
		}
		return
	}
	if fnout == "" {
		fnout = io.Sf("/tmp/emcalc/%s.png", grade)
	}

	// plot
	if err := out.PlotSteel(curve, maxB, width, height, fnout); err != nil {
		io.PfRed("cannot plot: %v\n", err)
		return
	}
	io.Pf("file <%s> written\n", fnout)
}
