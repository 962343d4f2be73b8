// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Beam is a chain of elements sharing nodes: element i couples global
// equations [2i, 2i+4), thus consecutive elements overlap in two
// equations. Supports has one entry per global equation:
//  < 0 -- fully restrained (zero displacement)
//  > 0 -- elastic spring with this stiffness added at the equation
//  = 0 -- free
// The global system is assembled and solved once, at construction; K, F
// and U are read-only afterwards. A new Beam must be created whenever
// elements or supports change
type Beam struct {

	// input
	Elems    []*Element // elements, ordered from left to right
	Supports []float64  // support code or spring stiffness per equation

	// derived
	Ndof int         // number of global equations = 2 * number of nodes
	K    [][]float64 // global stiffness matrix, after support enforcement
	F    []float64   // global load vector
	U    []float64   // solved displacements and rotations
}

// NewBeam assembles the global system from elems, enforces the supports
// and solves for the nodal unknowns
func NewBeam(elems []*Element, supports []float64) (o *Beam, err error) {

	// check dimensions
	nele := len(elems)
	if nele < 1 {
		return nil, chk.Err("at least one element is required")
	}
	ndof := 2 * (nele + 1)
	if len(supports) != ndof {
		return nil, chk.Err("supports must have one entry per degree of freedom. %d entries are required; got %d", ndof, len(supports))
	}
	o = &Beam{Elems: elems, Supports: supports, Ndof: ndof}

	// assemble element contributions
	o.K = la.MatAlloc(ndof, ndof)
	o.F = make([]float64, ndof)
	for i, e := range elems {
		r := i * 2
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				o.K[r+j][r+k] += e.K[j][k]
			}
			o.F[r+j] -= e.F[j]
		}
	}

	// enforce supports
	for i := 0; i < ndof; i++ {
		if supports[i] < 0 { // fully restrained: decouple equation i
			for j := 0; j < ndof; j++ {
				o.K[i][j] = 0
				o.K[j][i] = 0
			}
			o.K[i][i] = 1
			o.F[i] = 0
		}
		if supports[i] > 0 { // elastic spring in parallel
			o.K[i][i] += supports[i]
		}
	}

	// solve
	Ki := la.MatAlloc(ndof, ndof)
	err = la.MatInvG(Ki, o.K, 1e-10)
	if err != nil {
		return nil, chk.Err("global stiffness matrix is singular; the beam is insufficiently restrained")
	}
	o.U = make([]float64, ndof)
	la.MatVecMul(o.U, 1, Ki, o.F)
	return
}
