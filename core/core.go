package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/chronica/device"
)

// Core is a timed model of the sample device. It retires one instruction per
// tick and reports completion to its controller through the "Top" port.
type Core struct {
	*sim.TickingComponent

	topPort    Port
	controller sim.RemotePort

	state coreState
}

type coreState struct {
	Program   []device.Instruction
	Registers device.Registers
	PC        int
	Fault     string
	Done      bool
	Reported  bool
}

// LoadProgram installs a program and the initial register state. A load
// while a program is in flight replaces it.
func (c *Core) LoadProgram(prog []device.Instruction, init device.Registers) {
	c.state = coreState{
		Program:   prog,
		Registers: init,
	}
	// TickLater, not TickNow: after a drained run the next tick time sits at
	// the current time, and TickNow would refuse to schedule anything.
	c.TickLater()
}

// SetController tells the core where to send the completion message.
func (c *Core) SetController(ctrl sim.RemotePort) {
	c.controller = ctrl
}

// Registers returns the current register state.
func (c *Core) Registers() device.Registers {
	return c.state.Registers
}

// Tick runs the core for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if !c.state.Done {
		c.executeOne()
		return true
	}

	if c.state.Reported || c.controller == "" {
		return false
	}

	return c.sendCompletion()
}

func (c *Core) executeOne() {
	if c.state.PC >= len(c.state.Program) {
		c.state.Done = true
		return
	}

	inst := c.state.Program[c.state.PC]
	regs, err := Execute(inst, c.state.Registers)
	if err != nil {
		// Faults stop the program. The remaining instructions never run.
		c.state.Fault = err.Error()
		c.state.Done = true
		Trace("Execute",
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"PC", c.state.PC,
			"Inst", inst.String(),
			"Fault", c.state.Fault,
		)
		return
	}

	c.state.Registers = regs
	c.state.PC++

	Trace("Execute",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"PC", c.state.PC-1,
		"Inst", inst.String(),
		"Registers", regs.String(),
	)
	PrintState(c)
}

func (c *Core) sendCompletion() bool {
	msg := device.CompletionMsgBuilder{}.
		WithSrc(c.topPort.AsRemote()).
		WithDst(c.controller).
		WithRegisters(c.state.Registers).
		WithFault(c.state.Fault).
		Build()

	if err := c.topPort.Send(msg); err != nil {
		// The port is busy. NotifyPortFree restarts ticking when it drains.
		return false
	}

	c.state.Reported = true
	Trace("Complete",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"Registers", c.state.Registers.String(),
		"Fault", c.state.Fault,
	)

	return true
}
