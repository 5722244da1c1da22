package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/chronica/device"
)

// ErrInvalidRegister is returned when an instruction addresses a register
// that does not exist.
var ErrInvalidRegister = errors.New("requested a register which does not exist")

// operandMode tells how the A or B field of an instruction is sourced.
type operandMode int

const (
	operandIgnored operandMode = iota
	operandRegister
	operandImmediate
)

type semantics struct {
	a, b operandMode
	eval func(a, b device.Value) device.Value
}

func add(a, b device.Value) device.Value { return a + b }
func mul(a, b device.Value) device.Value { return a * b }
func ban(a, b device.Value) device.Value { return a & b }
func bor(a, b device.Value) device.Value { return a | b }
func set(a, _ device.Value) device.Value { return a }

func gt(a, b device.Value) device.Value {
	if a > b {
		return 1
	}
	return 0
}

func eq(a, b device.Value) device.Value {
	if a == b {
		return 1
	}
	return 0
}

// The r/i suffix of a mnemonic selects register or immediate sourcing.
// gtir and eqir read A as an immediate and B as a register.
var opcodeSemantics = [device.NumOpcodes]semantics{
	device.Addr: {operandRegister, operandRegister, add},
	device.Addi: {operandRegister, operandImmediate, add},
	device.Mulr: {operandRegister, operandRegister, mul},
	device.Muli: {operandRegister, operandImmediate, mul},
	device.Banr: {operandRegister, operandRegister, ban},
	device.Bani: {operandRegister, operandImmediate, ban},
	device.Borr: {operandRegister, operandRegister, bor},
	device.Bori: {operandRegister, operandImmediate, bor},
	device.Setr: {operandRegister, operandIgnored, set},
	device.Seti: {operandImmediate, operandIgnored, set},
	device.Gtir: {operandImmediate, operandRegister, gt},
	device.Gtri: {operandRegister, operandImmediate, gt},
	device.Gtrr: {operandRegister, operandRegister, gt},
	device.Eqir: {operandImmediate, operandRegister, eq},
	device.Eqri: {operandRegister, operandImmediate, eq},
	device.Eqrr: {operandRegister, operandRegister, eq},
}

func readOperand(
	mode operandMode,
	field device.Value,
	regs device.Registers,
) (device.Value, error) {
	switch mode {
	case operandIgnored:
		return 0, nil
	case operandImmediate:
		return field, nil
	case operandRegister:
		if field >= device.RegisterCount {
			return 0, fmt.Errorf("register %d: %w", field, ErrInvalidRegister)
		}
		return regs[field], nil
	default:
		panic("invalid operand mode")
	}
}

// Execute applies one instruction to a register state. The input registers
// are never mutated.
func Execute(
	inst device.Instruction,
	regs device.Registers,
) (device.Registers, error) {
	if inst.Opcode < 0 || inst.Opcode >= device.NumOpcodes {
		panic("invalid opcode")
	}
	sem := opcodeSemantics[inst.Opcode]

	a, err := readOperand(sem.a, inst.A, regs)
	if err != nil {
		return regs, err
	}
	b, err := readOperand(sem.b, inst.B, regs)
	if err != nil {
		return regs, err
	}
	if inst.C >= device.RegisterCount {
		return regs, fmt.Errorf("register %d: %w", inst.C, ErrInvalidRegister)
	}

	regs[inst.C] = sem.eval(a, b)

	return regs, nil
}

// Run executes a whole program functionally, stopping at the first fault.
func Run(
	prog []device.Instruction,
	init device.Registers,
) (device.Registers, error) {
	regs := init
	for i, inst := range prog {
		var err error
		regs, err = Execute(inst, regs)
		if err != nil {
			return regs, fmt.Errorf("instruction %d (%s): %w", i, inst, err)
		}
	}

	return regs, nil
}
