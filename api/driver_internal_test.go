package api

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/chronica/core"
	"github.com/sarchlab/chronica/device"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl *gomock.Controller
		engine   sim.Engine
		dev      *core.Core
		driver   *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = sim.NewSerialEngine()

		dev = core.Builder{}.
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Core")
		driver = DriverBuilder{}.
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Driver").(*driverImpl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should make its device port through the factory", func() {
		factory := NewMockportFactory(mockCtrl)
		driver.portFactory = factory

		port := core.NewPort(driver, 1, 1, "Driver.Device")
		factory.EXPECT().
			make(driver, "Driver.Device").
			Return(port)

		driver.AttachDevice(dev)

		Expect(driver.devicePort).To(BeIdenticalTo(sim.Port(port)))
		Expect(driver.GetPortByName("Device")).To(BeIdenticalTo(sim.Port(port)))
	})

	It("should run a program end to end", func() {
		driver.AttachDevice(dev)

		prog := []device.Instruction{
			{Opcode: device.Seti, A: 7, B: 0, C: 0},
			{Opcode: device.Gtri, A: 0, B: 5, C: 1},
			{Opcode: device.Gtir, A: 8, B: 0, C: 2},
			{Opcode: device.Eqir, A: 7, B: 0, C: 3},
		}

		regs, err := driver.RunProgram(prog, device.Registers{})

		Expect(err).NotTo(HaveOccurred())
		Expect(regs).To(Equal(device.Registers{7, 1, 1, 1}))
	})

	It("should run back-to-back programs", func() {
		driver.AttachDevice(dev)

		regs, err := driver.RunProgram([]device.Instruction{
			{Opcode: device.Seti, A: 1, B: 0, C: 0},
		}, device.Registers{})
		Expect(err).NotTo(HaveOccurred())
		Expect(regs).To(Equal(device.Registers{1, 0, 0, 0}))

		regs, err = driver.RunProgram([]device.Instruction{
			{Opcode: device.Addi, A: 0, B: 2, C: 0},
		}, regs)
		Expect(err).NotTo(HaveOccurred())
		Expect(regs).To(Equal(device.Registers{3, 0, 0, 0}))
	})

	It("should surface device faults", func() {
		driver.AttachDevice(dev)

		prog := []device.Instruction{
			{Opcode: device.Seti, A: 5, B: 0, C: 1},
			{Opcode: device.Setr, A: 9, B: 0, C: 2},
		}

		regs, err := driver.RunProgram(prog, device.Registers{})

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("device fault"))
		Expect(regs).To(Equal(device.Registers{0, 5, 0, 0}))
	})

	It("should report ErrNoCompletion when the device cannot report back", func() {
		// Device wired up by hand, without the driver as controller.
		driver.device = dev

		_, err := driver.RunProgram(nil, device.Registers{})

		Expect(err).To(MatchError(ErrNoCompletion))
	})
})
