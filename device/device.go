// Package device defines the commonly used data structure for the 4-register
// sample device.
package device

import (
	"fmt"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
)

// Value is the width of every register and instruction field.
type Value = uint32

// RegisterCount is the number of registers the device has.
const RegisterCount = 4

// Registers is a snapshot of the device register file.
type Registers [RegisterCount]Value

// String renders the snapshot the way it appears in sample text.
func (r Registers) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r[0], r[1], r[2], r[3])
}

// Opcode identifies one of the sixteen behaviors of the device.
type Opcode int

const (
	Addr Opcode = iota
	Addi
	Mulr
	Muli
	Banr
	Bani
	Borr
	Bori
	Setr
	Seti
	Gtir
	Gtri
	Gtrr
	Eqir
	Eqri
	Eqrr
)

// NumOpcodes is the number of distinct opcodes.
const NumOpcodes = 16

var opcodeNames = [NumOpcodes]string{
	"addr", "addi",
	"mulr", "muli",
	"banr", "bani",
	"borr", "bori",
	"setr", "seti",
	"gtir", "gtri", "gtrr",
	"eqir", "eqri", "eqrr",
}

// Name returns the lower-case mnemonic of the opcode.
func (o Opcode) Name() string {
	if o < 0 || o >= NumOpcodes {
		return "invalid"
	}
	return opcodeNames[o]
}

func (o Opcode) String() string {
	return o.Name()
}

// OpcodeByName finds the opcode with the given mnemonic.
func OpcodeByName(name string) (Opcode, bool) {
	for i, n := range opcodeNames {
		if n == name {
			return Opcode(i), true
		}
	}
	return 0, false
}

// Opcodes returns all opcodes in a stable order.
func Opcodes() []Opcode {
	ops := make([]Opcode, NumOpcodes)
	for i := range ops {
		ops[i] = Opcode(i)
	}
	return ops
}

// UnknownInstruction is an instruction as it appears in input text, with the
// opcode still a raw number.
type UnknownInstruction struct {
	Opcode  Value
	A, B, C Value
}

func (i UnknownInstruction) String() string {
	return fmt.Sprintf("%d %d %d %d", i.Opcode, i.A, i.B, i.C)
}

// Instruction is an instruction whose opcode number has been decoded.
type Instruction struct {
	Opcode  Opcode
	A, B, C Value
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %d %d %d", i.Opcode.Name(), i.A, i.B, i.C)
}

// Sample is one observed execution of an unknown instruction.
type Sample struct {
	Before      Registers
	Instruction UnknownInstruction
	After       Registers
}

// String renders the canonical three-line sample block, without a trailing
// newline.
func (s Sample) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Before: %s\n", s.Before)
	fmt.Fprintf(&sb, "%s\n", s.Instruction)
	fmt.Fprintf(&sb, "After:  %s", s.After)
	return sb.String()
}

// A Device is a component that a driver can load programs onto.
type Device interface {
	sim.Component

	// LoadProgram installs a program and the initial register state. The
	// device starts executing on its own clock.
	LoadProgram(prog []Instruction, init Registers)

	// SetController tells the device where to send the completion message.
	SetController(ctrl sim.RemotePort)

	// Registers returns the current register state.
	Registers() Registers
}
