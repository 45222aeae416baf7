package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/umn-earth-surface/gFlex/flex"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\ngFlex -- 1-D elastic-plate flexure\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please provide a problem filename. Ex.: profile.json")
	}
	fnamepath := flag.Arg(0)

	c := readConfig(fnamepath)
	problem := c.toProblem()

	w, timings, err := flex.Solve(problem)
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pfgreen("> Success\n")
	io.Pf("solve time: %v\n", timings.Solve)
	io.Pf("w[0]   = %v\n", w[0])
	io.Pf("w[n-1] = %v\n", w[len(w)-1])
}
