// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/MtScience/EMCalculations/inp"
	"github.com/MtScience/EMCalculations/out"
)

// reportOptions holds the report settings read from an optional .ini file
type reportOptions struct {
	dir          string
	plot         bool
	plotW, plotH float64 // [cm]
	workbook     bool
}

func readOptions(filename string) (o reportOptions) {
	o = reportOptions{dir: "/tmp/emcalc", plot: true, plotW: 16, plotH: 12, workbook: true}
	if filename == "" {
		return
	}
	cfg, err := ini.Load(filename)
	if err != nil {
		chk.Panic("cannot read settings file %q", filename)
	}
	o.dir = cfg.Section("output").Key("dir").MustString(o.dir)
	o.plot = cfg.Section("plot").Key("enabled").MustBool(o.plot)
	o.plotW = cfg.Section("plot").Key("width_cm").MustFloat64(o.plotW)
	o.plotH = cfg.Section("plot").Key("height_cm").MustFloat64(o.plotH)
	o.workbook = cfg.Section("workbook").Key("enabled").MustBool(o.workbook)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	settings := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nEMCalculations -- turbogenerator electromagnetic design\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"design filename path", "fnamepath", fnamepath,
			"report settings file", "settings", settings,
			"show messages", "verbose", verbose,
		))
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// design and evaluation
	d := inp.ReadDesign(fnamepath)
	log.WithField("design", d.Key).Info("design file read and derived")
	res, err := out.Evaluate(d)
	if err != nil {
		log.WithError(err).Fatal("evaluation failed")
	}
	log.WithFields(log.Fields{
		"efficiency":        res.Efficiency,
		"ratedFieldCurrent": res.Loaded.NominalFieldCurrent,
		"scr":               res.SCR,
	}).Info("design evaluated")

	// report artefacts
	opts := readOptions(settings)
	if err := os.MkdirAll(opts.dir, 0755); err != nil {
		log.WithError(err).Fatal("cannot create output directory")
	}
	if opts.workbook {
		fn := filepath.Join(opts.dir, d.Key+".xlsx")
		if err := res.WriteReport(fn); err != nil {
			log.WithError(err).Fatal("cannot write report workbook")
		}
		log.WithField("file", fn).Info("report workbook written")
	}
	if opts.plot {
		fn := filepath.Join(opts.dir, d.Key+".png")
		if err := res.PlotCharacteristic(opts.plotW, opts.plotH, fn); err != nil {
			log.WithError(err).Fatal("cannot plot the no-load characteristic")
		}
		log.WithField("file", fn).Info("no-load characteristic plotted")
	}
}
