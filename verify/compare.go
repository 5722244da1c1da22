package verify

import (
	"github.com/sarchlab/chronica/config"
	"github.com/sarchlab/chronica/core"
	"github.com/sarchlab/chronica/device"
)

// Comparison holds the outcome of running the same program twice, once
// through the direct functional emulator and once through the timed
// simulation.
type Comparison struct {
	Functional    device.Registers
	FunctionalErr error
	Timed         device.Registers
	TimedErr      error
}

// Match reports whether the two executions agree. The register states must
// be equal and the runs must fault the same way. When both runs fault, the
// registers still carry the state at the fault point and must match.
func (c *Comparison) Match() bool {
	if (c.FunctionalErr == nil) != (c.TimedErr == nil) {
		return false
	}
	return c.Functional == c.Timed
}

// CompareRun executes the program functionally and on the platform, and
// collects both results for comparison.
func CompareRun(
	p *config.Platform,
	prog []device.Instruction,
	init device.Registers,
) *Comparison {
	c := &Comparison{}
	c.Functional, c.FunctionalErr = core.Run(prog, init)
	c.Timed, c.TimedErr = p.Driver.RunProgram(prog, init)
	return c
}
