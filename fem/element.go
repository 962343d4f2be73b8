// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements linear static analysis of straight beams using
// Euler-Bernoulli beam theory. A beam is a chain of 2-node elements with a
// transverse displacement and a rotation unknown at each node. Fields
// between nodes are recovered with cubic Hermite interpolation.
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Load represents one load applied to an element. Downward forces are
// positive. Type is one of:
//  "udl"    -- uniformly distributed over the whole element;
//              Magnitude is force per unit length
//  "point"  -- concentrated force; Magnitude applied at Location,
//              measured from the first node
//  "patch"  -- uniformly distributed between Start and End;
//              Magnitude is force per unit length
//  "moment" -- concentrated moment at Location; rejected, because the
//              fixed-end reactions are not available (see ferMoment)
type Load struct {
	Type      string
	Magnitude float64
	Location  float64
	Start     float64
	End       float64
}

// Element is a 2-node Euler-Bernoulli beam element. The unknowns are
// ordered [v0, r0, v1, r1] where v is the transverse displacement and r
// the rotation at each node. The stiffness matrix and the fixed-end load
// vector are computed once, at construction, and never modified
type Element struct {

	// input
	L     float64 // length
	E     float64 // Young's modulus
	I     float64 // second moment of area
	Loads []*Load // applied loads

	// derived
	K [][]float64 // [4][4] local stiffness matrix
	F []float64   // [4] fixed-end load vector: [v0, m0, v1, m1]
}

// NewElement creates a new element and computes its stiffness matrix and
// fixed-end load vector due to all loads
func NewElement(l, E, I float64, loads []*Load) (o *Element, err error) {
	if l <= 0 || E <= 0 || I <= 0 {
		return nil, chk.Err("length, Young's modulus and moment of inertia must be all positive. l=%g, E=%g, I=%g", l, E, I)
	}
	o = &Element{L: l, E: E, I: I, Loads: loads}
	o.calcStiffness()
	o.F = make([]float64, 4)
	for _, load := range loads {
		fer, e := o.calcFer(load)
		if e != nil {
			return nil, e
		}
		for i := 0; i < 4; i++ {
			o.F[i] += fer[i]
		}
	}
	return
}

// calcStiffness computes the local stiffness matrix
func (o *Element) calcStiffness() {
	l := o.L
	ll := l * l
	kfv := 12.0 * o.E * o.I / (ll * l)
	kmv := 6.0 * o.E * o.I / ll
	kft := kmv
	kmt := 4.0 * o.E * o.I / l
	kmth := 2.0 * o.E * o.I / l
	o.K = la.MatAlloc(4, 4)
	o.K[0][0], o.K[0][1], o.K[0][2], o.K[0][3] = kfv, -kft, -kfv, -kft
	o.K[1][0], o.K[1][1], o.K[1][2], o.K[1][3] = -kmv, kmt, kmv, kmth
	o.K[2][0], o.K[2][1], o.K[2][2], o.K[2][3] = -kfv, kft, kfv, kft
	o.K[3][0], o.K[3][1], o.K[3][2], o.K[3][3] = -kft, kmth, kft, kmt
}

// calcFer computes the fixed-end reactions of one load
func (o *Element) calcFer(load *Load) (fer []float64, err error) {
	switch load.Type {
	case "udl":
		fer = o.ferDistrib(load.Magnitude)
	case "point":
		fer, err = o.ferPoint(load.Magnitude, load.Location)
	case "patch":
		fer, err = o.ferPatch(load.Magnitude, load.Start, load.End)
	case "moment":
		err = o.ferMoment(load.Magnitude, load.Location)
	default:
		err = chk.Err("cannot handle load type %q", load.Type)
	}
	return
}

// ferDistrib computes fixed-end reactions due to a uniformly distributed
// load over the whole element
func (o *Element) ferDistrib(w float64) []float64 {
	v := w * o.L / 2.0
	m := w * o.L * o.L / 12.0
	return []float64{v, -m, v, m}
}

// ferPoint computes fixed-end reactions due to a concentrated force at
// distance a from the first node
func (o *Element) ferPoint(p, a float64) ([]float64, error) {
	if a < 0 || a > o.L {
		return nil, chk.Err("point load location must be within the element. location=%g, l=%g", a, o.L)
	}
	b := o.L - a
	ll := o.L * o.L
	lll := ll * o.L
	v0 := p * b * b * (3.0*a + b) / lll
	v1 := p * a * a * (a + 3.0*b) / lll
	m0 := p * a * b * b / ll
	m1 := p * a * a * b / ll
	return []float64{v0, -m0, v1, m1}, nil
}

// ferPatch computes fixed-end reactions due to a uniform load applied
// between start and end
func (o *Element) ferPatch(w, start, end float64) ([]float64, error) {
	if start < 0 || end > o.L || start >= end {
		return nil, chk.Err("patch load limits must be within the element with start before end. start=%g, end=%g, l=%g", start, end, o.L)
	}
	d := end - start
	a := start + d/2.0
	b := o.L - a
	ll := o.L * o.L
	lll := ll * o.L
	v0 := w * d / lll * ((2.0*a+o.L)*b*b + (a-b)/4.0*d*d)
	v1 := w * d / lll * ((2.0*b+o.L)*a*a + (a-b)/4.0*d*d)
	m0 := w * d / ll * (a*b*b + (a-2.0*b)*d*d/12.0)
	m1 := w * d / ll * (a*a*b + (b-2.0*a)*d*d/12.0)
	return []float64{v0, -m0, v1, m1}, nil
}

// ferMoment would compute fixed-end reactions due to a concentrated
// moment. No closed form is implemented; the load is rejected here so
// that it cannot be silently ignored
func (o *Element) ferMoment(m, a float64) error {
	return chk.Err("fixed-end reactions due to concentrated moments are not available. m=%g, location=%g", m, a)
}
