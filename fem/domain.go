// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/rbn920/feebb/inp"
)

// NewBeamFromInp builds all elements and the solved beam from a model
// description read by the inp package
func NewBeamFromInp(mdl *inp.Model) (*Beam, error) {
	elems := make([]*Element, len(mdl.Elements))
	for i, ed := range mdl.Elements {
		loads := make([]*Load, len(ed.Loads))
		for j, ld := range ed.Loads {
			loads[j] = &Load{
				Type:      ld.Type,
				Magnitude: ld.Magnitude,
				Location:  ld.Location,
				Start:     ld.Start,
				End:       ld.End,
			}
		}
		e, err := NewElement(ed.Length, ed.YoungsMod, ed.MomentOfInertia, loads)
		if err != nil {
			return nil, chk.Err("cannot create element %d:\n%v", i, err)
		}
		elems[i] = e
	}
	return NewBeam(elems, mdl.Supports)
}
