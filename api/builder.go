package api

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/chronica/core"
)

// portFactory is a seam that lets tests control how the driver makes its
// ports.
type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

type defaultPortFactory struct{}

func (defaultPortFactory) make(c sim.Component, name string) sim.Port {
	return core.NewPort(c, 1, 1, name)
}

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{
		portFactory: defaultPortFactory{},
	}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	return d
}
