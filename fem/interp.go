// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Postprocessor recovers continuous fields along a solved beam using the
// cubic Hermite shape functions and their derivatives. It only reads the
// beam's solution vector
type Postprocessor struct {
	Beam *Beam // solved beam
	Npts int   // number of stations per element, including both ends
}

// NewPostprocessor creates a new post-processor sampling npts stations
// per element
func NewPostprocessor(beam *Beam, npts int) (o *Postprocessor, err error) {
	if npts < 2 {
		return nil, chk.Err("at least two stations per element are required; got %d", npts)
	}
	return &Postprocessor{Beam: beam, Npts: npts}, nil
}

// Interp samples one field at evenly spaced stations along the whole
// beam. field is one of "displacement", "slope", "moment" or "shear".
// The station shared by consecutive elements is emitted once, so the
// result is a single path along the beam with
// npts + (nele-1)*(npts-1) values
func (o *Postprocessor) Interp(field string) (vals []float64, err error) {
	nele := len(o.Beam.Elems)
	vals = make([]float64, 0, o.Npts+(nele-1)*(o.Npts-1))
	for i, e := range o.Beam.Elems {
		d := o.Beam.U[i*2 : i*2+4]
		X := utl.LinSpace(0, e.L, o.Npts)
		for j, x := range X {
			if i > 0 && j == 0 {
				continue // station shared with the previous element
			}
			a := x / e.L
			var phi []float64
			coef := 1.0
			switch field {
			case "displacement":
				phi = phiDisp(x, a)
			case "slope":
				phi = phiSlope(e.L, a)
			case "moment":
				phi = phiMoment(e.L, a)
				coef = e.E * e.I // moment = EI * curvature
			case "shear":
				phi = phiShear(e.L)
				coef = e.E * e.I
			default:
				return nil, chk.Err("cannot handle field %q", field)
			}
			s := 0.0
			for k := 0; k < 4; k++ {
				s += d[k] * phi[k]
			}
			vals = append(vals, coef*s)
		}
	}
	return
}

// phiDisp returns the Hermite cubic shape functions at x, with a = x/l
func phiDisp(x, a float64) []float64 {
	return []float64{
		1.0 - 3.0*a*a + 2.0*a*a*a,
		-x * (1.0 - a) * (1.0 - a),
		3.0*a*a - 2.0*a*a*a,
		-x * (a*a - a),
	}
}

// phiSlope returns the first derivatives of the shape functions
func phiSlope(l, a float64) []float64 {
	p0 := -(6.0 / l) * a * (1.0 - a)
	return []float64{
		p0,
		-(1.0 + 3.0*a*a - 4.0*a),
		-p0,
		-a * (3.0*a - 2.0),
	}
}

// phiMoment returns the second derivatives of the shape functions
func phiMoment(l, a float64) []float64 {
	p0 := (-6.0 / (l * l)) * (1.0 - 2.0*a)
	return []float64{
		p0,
		(-2.0 / l) * (3.0*a - 2.0),
		-p0,
		(-2.0 / l) * (3.0*a - 1.0),
	}
}

// phiShear returns the third derivatives of the shape functions; these
// are constant over the element
func phiShear(l float64) []float64 {
	ll := l * l
	return []float64{
		12.0 / (ll * l),
		-6.0 / ll,
		-12.0 / (ll * l),
		-6.0 / ll,
	}
}
