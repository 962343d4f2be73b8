// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements analytical solutions from beam theory
package ana

import (
	"github.com/cpmech/gosl/fun"
)

// ClampedUdl computes the solution of a beam with both ends clamped under
// a uniformly distributed load (downward positive)
//
//            w
//     ↓↓↓↓↓↓↓↓↓↓↓↓↓
//    ▣━━━━━━━━━━━━━▣
//    |<──── L ────>|
//
type ClampedUdl struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // span
	W float64 // distributed load intensity
}

// Init initialises the parameters
func (o *ClampedUdl) Init(prms fun.Prms) {
	o.E, o.I, o.L, o.W = 1.0, 1.0, 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "I":
			o.I = p.V
		case "L":
			o.L = p.V
		case "w":
			o.W = p.V
		}
	}
}

// Deflection returns the transverse displacement at x
func (o *ClampedUdl) Deflection(x float64) float64 {
	d := o.L - x
	return -o.W * x * x * d * d / (24.0 * o.E * o.I)
}

// SimplePointLoad computes the solution of a simply supported beam with a
// concentrated load at midspan (downward positive)
//
//           P ↓
//    ○━━━━━━━━━━━━━○
//    △      |      △
//    |<──── L ────>|
//
type SimplePointLoad struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // span
	P float64 // concentrated load
}

// Init initialises the parameters
func (o *SimplePointLoad) Init(prms fun.Prms) {
	o.E, o.I, o.L, o.P = 1.0, 1.0, 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "I":
			o.I = p.V
		case "L":
			o.L = p.V
		case "P":
			o.P = p.V
		}
	}
}

// Deflection returns the transverse displacement at x. The solution is
// symmetric about midspan
func (o *SimplePointLoad) Deflection(x float64) float64 {
	if x > o.L/2.0 {
		x = o.L - x
	}
	return -o.P * x * (3.0*o.L*o.L - 4.0*x*x) / (48.0 * o.E * o.I)
}

// MaxDeflection returns the displacement at midspan
func (o *SimplePointLoad) MaxDeflection() float64 {
	lll := o.L * o.L * o.L
	return -o.P * lll / (48.0 * o.E * o.I)
}

// Moment returns the bending moment at x
func (o *SimplePointLoad) Moment(x float64) float64 {
	if x > o.L/2.0 {
		x = o.L - x
	}
	return o.P * x / 2.0
}

// Shear returns the shear force on the left half of the span
func (o *SimplePointLoad) Shear() float64 {
	return o.P / 2.0
}

// SpringTipCantilever computes the tip displacement of a cantilever with
// an elastic spring support and a concentrated load at the tip
//
//                P ↓
//    ▣━━━━━━━━━━━━━┓
//    |<──── L ────>↯ k
//
type SpringTipCantilever struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // span
	P float64 // concentrated load at tip
	K float64 // spring stiffness at tip
}

// Init initialises the parameters
func (o *SpringTipCantilever) Init(prms fun.Prms) {
	o.E, o.I, o.L, o.P, o.K = 1.0, 1.0, 1.0, 1.0, 0.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "I":
			o.I = p.V
		case "L":
			o.L = p.V
		case "P":
			o.P = p.V
		case "k":
			o.K = p.V
		}
	}
}

// TipDeflection returns the displacement at the tip; the structural
// stiffness 3EI/L³ acts in parallel with the spring
func (o *SpringTipCantilever) TipDeflection() float64 {
	lll := o.L * o.L * o.L
	return -o.P / (o.K + 3.0*o.E*o.I/lll)
}
