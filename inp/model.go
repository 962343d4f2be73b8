// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the reading of beam model description files in
// JSON format
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LoadData holds the definition of one applied load
type LoadData struct {
	Type      string  `json:"type"`      // "udl", "point", "patch" or "moment"
	Magnitude float64 `json:"magnitude"` // force, force per unit length, or moment
	Location  float64 `json:"location"`  // distance from first node ("point" and "moment")
	Start     float64 `json:"start"`     // start offset ("patch")
	End       float64 `json:"end"`       // end offset ("patch")
}

// ElemData holds the definition of one beam element
type ElemData struct {
	Length          float64     `json:"length"`
	YoungsMod       float64     `json:"youngs_mod"`
	MomentOfInertia float64     `json:"moment_of_inertia"`
	Loads           []*LoadData `json:"loads"`
}

// Model holds all input data for one beam analysis. Supports has two
// entries per node (displacement and rotation): negative means fully
// restrained, positive is an elastic spring stiffness, zero leaves the
// degree of freedom free
type Model struct {
	Elements []*ElemData `json:"elements"`
	Supports []float64   `json:"supports"`
}

// ReadModel reads a model description from a JSON file
func ReadModel(filename string) (o *Model, err error) {
	b, err := io.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("cannot read model file %q", filename)
	}
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal model file %q: %v", filename, err)
	}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// Check verifies that the model dimensions are consistent
func (o *Model) Check() error {
	if len(o.Elements) < 1 {
		return chk.Err("model must have at least one element")
	}
	ndof := 2 * (len(o.Elements) + 1)
	if len(o.Supports) != ndof {
		return chk.Err("model must have one support entry per degree of freedom. %d entries are required; got %d", ndof, len(o.Supports))
	}
	return nil
}
