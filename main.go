// Copyright 2017 The Feebb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Feebb computes static deflections and internal forces of straight beams
// modeled with Euler-Bernoulli finite elements.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rbn920/feebb/fem"
	"github.com/rbn920/feebb/inp"
	"github.com/rbn920/feebb/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "examples/twospan", ".json", true)
	npts := io.ArgToInt(1, 11)
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nFeebb -- Finite Element Euler-Bernoulli Beams\n")
		io.Pf("Copyright 2017 The Feebb Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model filename path", "fnamepath", fnamepath,
			"stations per element", "npts", npts,
			"show messages", "verbose", verbose,
		))
	}

	// model data
	mdl, err := inp.ReadModel(fnamepath)
	if err != nil {
		chk.Panic("cannot read model:\n%v", err)
	}

	// assemble and solve
	beam, err := fem.NewBeamFromInp(mdl)
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// report results
	err = out.Report(beam, npts)
	if err != nil {
		chk.Panic("cannot generate report:\n%v", err)
	}
}
