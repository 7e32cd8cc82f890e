// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/cstr"
	"github.com/verchemxyz/asm2d/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nasm2d -- Activated Sludge Model No. 2d plant simulator\n")
		io.Pf("Copyright 2026 The Verchem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot time series", "doplot", doplot,
		))
	}

	// simulation data
	sim := cstr.NewMain(fnamepath, verbose)

	// run simulation
	res, err := sim.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// derived outputs
	summary := out.Compute(sim.Sim, sim.Mdl, res)
	summary.Print()

	// time-series plots
	if doplot {
		for _, z := range sim.Sim.Reactor.Zones {
			out.PlotSeries(res.Series, z.Type,
				[]int{asm.ISNH, asm.ISNO, asm.ISPO4, asm.ISA},
				sim.Sim.Data.DirOut, sim.Sim.Key)
		}
	}
}
