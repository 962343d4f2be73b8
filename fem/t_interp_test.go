// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/rbn920/feebb/ana"
)

// ssBeam builds the simply supported two-element beam with a central
// point load used by the interpolation tests
func ssBeam(tst *testing.T, P float64) *Beam {
	e1, err := NewElement(2, 1000, 0.3, []*Load{{Type: "point", Magnitude: P, Location: 2}})
	if err != nil {
		tst.Fatalf("NewElement failed:\n%v", err)
	}
	e2, err := NewElement(2, 1000, 0.3, nil)
	if err != nil {
		tst.Fatalf("NewElement failed:\n%v", err)
	}
	b, err := NewBeam([]*Element{e1, e2}, []float64{-1, 0, 0, 0, -1, 0})
	if err != nil {
		tst.Fatalf("NewBeam failed:\n%v", err)
	}
	return b
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. displacement field matches nodal solution")

	b := ssBeam(tst, 6)
	pp, err := NewPostprocessor(b, 5)
	if err != nil {
		tst.Errorf("NewPostprocessor failed:\n%v", err)
		return
	}
	vals, err := pp.Interp("displacement")
	if err != nil {
		tst.Errorf("Interp failed:\n%v", err)
		return
	}

	// shared stations are emitted once: npts + (nele-1)*(npts-1)
	chk.IntAssert(len(vals), 9)

	// element ends reproduce the nodal values
	chk.Scalar(tst, "v(0)", 1e-14, vals[0], b.U[0])
	chk.Scalar(tst, "v(2)", 1e-14, vals[4], b.U[2])
	chk.Scalar(tst, "v(4)", 1e-14, vals[8], b.U[4])

	// interior station against the analytical solution (exact for a
	// point load, because the true deflection is cubic on each half)
	var sol ana.SimplePointLoad
	sol.Init(fun.Prms{
		&fun.Prm{N: "E", V: 1000},
		&fun.Prm{N: "I", V: 0.3},
		&fun.Prm{N: "L", V: 4},
		&fun.Prm{N: "P", V: 6},
	})
	chk.Scalar(tst, "v(1)", 1e-12, vals[2], sol.Deflection(1))

	// refining the stations must not change the endpoint values
	pp2, err := NewPostprocessor(b, 9)
	if err != nil {
		tst.Errorf("NewPostprocessor failed:\n%v", err)
		return
	}
	vals2, err := pp2.Interp("displacement")
	if err != nil {
		tst.Errorf("Interp failed:\n%v", err)
		return
	}
	chk.IntAssert(len(vals2), 17)
	chk.Scalar(tst, "refined v(0)", 1e-14, vals2[0], vals[0])
	chk.Scalar(tst, "refined v(2)", 1e-14, vals2[8], vals[4])
	chk.Scalar(tst, "refined v(4)", 1e-14, vals2[16], vals[8])
}

func Test_interp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp02. slope, moment and shear fields")

	P := 6.0
	b := ssBeam(tst, P)
	pp, err := NewPostprocessor(b, 5)
	if err != nil {
		tst.Errorf("NewPostprocessor failed:\n%v", err)
		return
	}

	// all fields share the deduplicated output length
	for _, field := range []string{"displacement", "slope", "moment", "shear"} {
		vals, err := pp.Interp(field)
		if err != nil {
			tst.Errorf("Interp failed:\n%v", err)
			return
		}
		chk.IntAssert(len(vals), 9)
	}

	// slope: -P*L²/(16*E*I) at the left support, zero at midspan
	slope, err := pp.Interp("slope")
	if err != nil {
		tst.Errorf("Interp failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "slope(0)", 1e-12, slope[0], -0.02)
	chk.Scalar(tst, "slope(1)", 1e-12, slope[2], -0.015)
	chk.Scalar(tst, "slope(2)", 1e-12, slope[4], 0)

	// moment: zero at the supports, P*L/4 at midspan
	moment, err := pp.Interp("moment")
	if err != nil {
		tst.Errorf("Interp failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "moment(0)", 1e-11, moment[0], 0)
	chk.Scalar(tst, "moment(2)", 1e-11, moment[4], P)
	chk.Scalar(tst, "moment(4)", 1e-11, moment[8], 0)

	// shear: ±P/2 on each half
	shear, err := pp.Interp("shear")
	if err != nil {
		tst.Errorf("Interp failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "shear left", 1e-11, shear[1], P/2.0)
	chk.Scalar(tst, "shear right", 1e-11, shear[6], -P/2.0)
}

func Test_interp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp03. invalid input")

	b := ssBeam(tst, 6)
	_, err := NewPostprocessor(b, 1)
	if err == nil {
		tst.Errorf("a single station per element must be rejected")
		return
	}
	pp, err := NewPostprocessor(b, 3)
	if err != nil {
		tst.Errorf("NewPostprocessor failed:\n%v", err)
		return
	}
	_, err = pp.Interp("curvature")
	if err == nil {
		tst.Errorf("unknown field must be rejected")
		return
	}
}
