// Some helpers using closures to generate register values for test inputs
package valgen

import (
	"math/rand"

	"github.com/sarchlab/chronica/device"
)

func MakeConstGen(constant device.Value) func() device.Value {
	return func() device.Value {
		return constant
	}
}

func MakeIncreasingGen(start device.Value) func() device.Value {
	current := start
	return func() device.Value {
		current++
		return current
	}
}

// MakeRandGen returns values in [0, max). The sequence is reproducible for a
// given seed.
func MakeRandGen(seed int64, max device.Value) func() device.Value {
	r := rand.New(rand.NewSource(seed))
	return func() device.Value {
		return device.Value(r.Uint32()) % max
	}
}
