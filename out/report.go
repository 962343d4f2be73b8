// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements reporting of beam analysis results
package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/rbn920/feebb/fem"
)

// Fields lists the field kinds recovered along the beam, in report order
var Fields = []string{"displacement", "slope", "moment", "shear"}

// Stations returns the global coordinates matching the values produced by
// fem.Postprocessor with npts stations per element; the station shared by
// consecutive elements appears once
func Stations(b *fem.Beam, npts int) (X []float64) {
	x0 := 0.0
	for i, e := range b.Elems {
		xe := utl.LinSpace(0, e.L, npts)
		for j, x := range xe {
			if i > 0 && j == 0 {
				continue
			}
			X = append(X, x0+x)
		}
		x0 += e.L
	}
	return
}

// Report prints a table with all fields sampled at npts stations per
// element
func Report(b *fem.Beam, npts int) (err error) {

	// recover fields
	pp, err := fem.NewPostprocessor(b, npts)
	if err != nil {
		return
	}
	V := make([][]float64, len(Fields))
	for i, field := range Fields {
		V[i], err = pp.Interp(field)
		if err != nil {
			return
		}
	}

	// table
	io.Pf("%14s", "x")
	for _, field := range Fields {
		io.Pf("%14s", field)
	}
	io.Pf("\n")
	for j, x := range Stations(b, npts) {
		io.Pf("%14.6f", x)
		for i := range Fields {
			io.Pf("%14.6f", V[i][j])
		}
		io.Pf("\n")
	}
	return
}
