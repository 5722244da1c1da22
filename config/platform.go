package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/chronica/api"
	"github.com/sarchlab/chronica/core"
)

// Platform is a fully wired simulation: one driver controlling one core.
type Platform struct {
	Engine sim.Engine
	Driver api.Driver
	Core   *core.Core
}

// PlatformBuilder can create platforms.
type PlatformBuilder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine. A serial engine is created when none is given.
func (b PlatformBuilder) WithEngine(engine sim.Engine) PlatformBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of both the driver and the core.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// Build creates the platform and attaches the core to the driver.
func (b PlatformBuilder) Build(name string) *Platform {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	c := core.Builder{}.
		WithEngine(engine).
		WithFreq(freq).
		Build(name + ".Core")

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(freq).
		Build(name + ".Driver")

	driver.AttachDevice(c)

	return &Platform{
		Engine: engine,
		Driver: driver,
		Core:   c,
	}
}
