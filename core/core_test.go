package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/chronica/core"
	"github.com/sarchlab/chronica/device"
)

var _ = Describe("Core", func() {
	var (
		engine sim.Engine
		c      *core.Core
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		c = core.Builder{}.
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Core")
	})

	It("runs a loaded program on its own clock", func() {
		prog := []device.Instruction{
			{Opcode: device.Seti, A: 5, B: 0, C: 1},
			{Opcode: device.Addi, A: 1, B: 3, C: 2},
			{Opcode: device.Mulr, A: 1, B: 2, C: 3},
		}

		c.LoadProgram(prog, device.Registers{})
		Expect(engine.Run()).To(Succeed())

		Expect(c.Registers()).To(Equal(device.Registers{0, 5, 8, 40}))
	})

	It("completes an empty program immediately", func() {
		c.LoadProgram(nil, device.Registers{4, 3, 2, 1})
		Expect(engine.Run()).To(Succeed())

		Expect(c.Registers()).To(Equal(device.Registers{4, 3, 2, 1}))
	})

	It("stops at a faulting instruction", func() {
		prog := []device.Instruction{
			{Opcode: device.Seti, A: 5, B: 0, C: 1},
			{Opcode: device.Setr, A: 7, B: 0, C: 2},
			{Opcode: device.Seti, A: 9, B: 0, C: 3},
		}

		c.LoadProgram(prog, device.Registers{})
		Expect(engine.Run()).To(Succeed())

		// The third instruction never ran.
		Expect(c.Registers()).To(Equal(device.Registers{0, 5, 0, 0}))
	})

	It("lets the last load win", func() {
		c.LoadProgram([]device.Instruction{
			{Opcode: device.Seti, A: 1, B: 0, C: 0},
		}, device.Registers{})
		c.LoadProgram([]device.Instruction{
			{Opcode: device.Seti, A: 2, B: 0, C: 0},
		}, device.Registers{})
		Expect(engine.Run()).To(Succeed())

		Expect(c.Registers()).To(Equal(device.Registers{2, 0, 0, 0}))
	})
})
