package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/chronica/classify"
	"github.com/sarchlab/chronica/config"
	"github.com/sarchlab/chronica/core"
	"github.com/sarchlab/chronica/device"
	"github.com/sarchlab/chronica/input"
)

//go:embed discovery.txt
var capture string

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}
}

func main() {
	in, err := input.Parse(capture)
	must(err)

	report := classify.NewReport(in.Samples, 3)
	report.WriteReport(os.Stdout)
	must(report.ResolveErr)

	prog, err := report.Assignment.DecodeProgram(in.Program)
	must(err)

	platform := config.PlatformBuilder{}.
		WithFreq(1 * sim.GHz).
		Build("Discovery")

	regs, err := platform.Driver.RunProgram(prog, device.Registers{})
	must(err)

	fmt.Println()
	core.FprintRegisters(os.Stdout, regs)
	atexit.Exit(0)
}
