// Package api defines the driver API for the sample device.
package api

import (
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/chronica/device"
)

// ErrNoCompletion is returned when the engine drains without the device
// reporting back.
var ErrNoCompletion = errors.New("device did not report completion")

// Driver provides the interface to control a device.
type Driver interface {
	sim.Component

	// AttachDevice connects a device to the driver. The driver establishes
	// the connection and registers itself as the device controller.
	AttachDevice(dev device.Device)

	// RunProgram loads a program onto the attached device, runs the engine
	// to exhaustion, and returns the final registers. A device fault
	// becomes an error.
	RunProgram(
		prog []device.Instruction,
		init device.Registers,
	) (device.Registers, error)
}

type driverImpl struct {
	*sim.TickingComponent

	device      device.Device
	portFactory portFactory
	devicePort  sim.Port

	completion *device.CompletionMsg
}

// Tick collects completion messages from the device.
func (d *driverImpl) Tick() (madeProgress bool) {
	if d.devicePort == nil {
		return false
	}

	item := d.devicePort.RetrieveIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*device.CompletionMsg)
	if !ok {
		panic(fmt.Sprintf("driver cannot handle message %T", item))
	}
	d.completion = msg

	return true
}

// AttachDevice connects a device to the driver.
func (d *driverImpl) AttachDevice(dev device.Device) {
	d.device = dev

	d.devicePort = d.portFactory.make(d, d.Name()+".Device")
	d.AddPort("Device", d.devicePort)

	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.Name() + ".ConnWith." + dev.Name())
	conn.PlugIn(d.devicePort)
	conn.PlugIn(dev.GetPortByName("Top"))

	dev.SetController(d.devicePort.AsRemote())
}

// RunProgram runs one program to completion on the attached device.
func (d *driverImpl) RunProgram(
	prog []device.Instruction,
	init device.Registers,
) (device.Registers, error) {
	if d.device == nil {
		panic("no device attached")
	}

	d.completion = nil
	d.device.LoadProgram(prog, init)
	d.TickLater()

	if err := d.Engine.Run(); err != nil {
		return device.Registers{}, fmt.Errorf("engine: %w", err)
	}

	if d.completion == nil {
		return device.Registers{}, ErrNoCompletion
	}
	if d.completion.Fault != "" {
		return d.completion.Registers,
			fmt.Errorf("device fault: %s", d.completion.Fault)
	}

	return d.completion.Registers, nil
}
