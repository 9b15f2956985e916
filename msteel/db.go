// Copyright 2025 The EMCalculations Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msteel

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// allocators holds the database of steel grades
var allocators = map[string]func() (*Curve, error){}

// curves caches constructed grades; a grade shared by several machine parts
// is interpolated over one table, not several copies
var curves = map[string]*Curve{}

func register(name string, alloc func() (*Curve, error)) {
	allocators[name] = alloc
}

// Get returns the curve of a steel grade from the database. Grade names are
// case-insensitive. Curves are built on first use and shared afterwards.
func Get(name string) (*Curve, error) {
	key := strings.ToLower(name)
	if c, ok := curves[key]; ok {
		return c, nil
	}
	alloc, ok := allocators[key]
	if !ok {
		return nil, chk.Err("steel grade %q is not in the database; available grades: %v", name, Grades())
	}
	c, err := alloc()
	if err != nil {
		return nil, err
	}
	curves[key] = c
	return c, nil
}

// Grades returns the sorted names of all registered grades
func Grades() []string {
	names := make([]string, 0, len(allocators))
	for n := range allocators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// build assembles a grade curve from its tables. Measured B columns may come
// with the odd swapped pair near the ends, so samples are ordered first.
func build(name string, b, h, bw, w []float64) (*Curve, error) {
	b, h = sortedByB(b, h)
	c, err := NewCurve(name, b, h)
	if err != nil {
		return nil, err
	}
	if bw != nil {
		if err := c.SetLossTable(bw, w); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// sortedByB returns copies of (b, h) ordered by ascending b
func sortedByB(b, h []float64) ([]float64, []float64) {
	type pair struct{ b, h float64 }
	ps := make([]pair, len(b))
	for i := range b {
		ps[i] = pair{b[i], h[i]}
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].b < ps[j].b })
	bb := make([]float64, len(ps))
	hh := make([]float64, len(ps))
	for i, p := range ps {
		bb[i], hh[i] = p.b, p.h
	}
	return bb, hh
}

// StatorSteel pairs the curves used for the two stator core regions. Yoke
// flux runs along the rolling direction, tooth flux across it; isotropic
// grades use the same curve for both.
type StatorSteel struct {
	Yoke  *Curve
	Teeth *Curve
}

// ForStator resolves a stator grade name. When the database carries the
// directional variants "<name>-along" and "<name>-across" they are assigned
// to yoke and teeth respectively; otherwise the single named grade serves
// both regions.
func ForStator(name string) (*StatorSteel, error) {
	key := strings.ToLower(name)
	if _, okA := allocators[key+"-along"]; okA {
		if _, okC := allocators[key+"-across"]; okC {
			along, err := Get(key + "-along")
			if err != nil {
				return nil, err
			}
			across, err := Get(key + "-across")
			if err != nil {
				return nil, err
			}
			return &StatorSteel{Yoke: along, Teeth: across}, nil
		}
	}
	c, err := Get(key)
	if err != nil {
		return nil, err
	}
	return &StatorSteel{Yoke: c, Teeth: c}, nil
}
