// Package classify analyzes samples: which opcodes could explain each
// observation, and which numeric encoding each opcode hides behind.
package classify

import (
	"errors"
	"fmt"

	"github.com/sarchlab/chronica/core"
	"github.com/sarchlab/chronica/device"
)

// ErrNoSolution is returned when the observed samples cannot pin every
// numeric opcode to a single behavior.
var ErrNoSolution = errors.New("no solution found")

// ErrUnknownOpcode is returned when decoding meets a numeric opcode the
// assignment does not cover.
var ErrUnknownOpcode = errors.New("numeric opcode has no assigned behavior")

// BehavesLike returns every opcode whose execution of the sample's operands
// on the before state yields the after state. Opcodes that fault on those
// operands simply do not match. The result is in enum order.
func BehavesLike(s device.Sample) []device.Opcode {
	var out []device.Opcode

	for _, op := range device.Opcodes() {
		inst := device.Instruction{
			Opcode: op,
			A:      s.Instruction.A,
			B:      s.Instruction.B,
			C:      s.Instruction.C,
		}
		regs, err := core.Execute(inst, s.Before)
		if err != nil {
			continue
		}
		if regs == s.After {
			out = append(out, op)
		}
	}

	return out
}

// AmbiguousCount reports how many samples behave like at least threshold
// opcodes.
func AmbiguousCount(samples []device.Sample, threshold int) int {
	count := 0
	for _, s := range samples {
		if len(BehavesLike(s)) >= threshold {
			count++
		}
	}
	return count
}

// Assignment maps numeric opcodes to behaviors.
type Assignment map[device.Value]device.Opcode

// Decode replaces the numeric opcode of an instruction with its assigned
// behavior.
func (a Assignment) Decode(
	u device.UnknownInstruction,
) (device.Instruction, error) {
	op, ok := a[u.Opcode]
	if !ok {
		return device.Instruction{},
			fmt.Errorf("opcode %d: %w", u.Opcode, ErrUnknownOpcode)
	}

	return device.Instruction{Opcode: op, A: u.A, B: u.B, C: u.C}, nil
}

// DecodeProgram decodes a whole program.
func (a Assignment) DecodeProgram(
	prog []device.UnknownInstruction,
) ([]device.Instruction, error) {
	out := make([]device.Instruction, 0, len(prog))
	for i, u := range prog {
		inst, err := a.Decode(u)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out = append(out, inst)
	}

	return out, nil
}

// Candidates intersects the behaves-like sets of all samples, per numeric
// opcode. A numeric opcode observed with incompatible samples ends up with
// an empty candidate set.
func Candidates(samples []device.Sample) map[device.Value][]device.Opcode {
	out := make(map[device.Value][]device.Opcode)

	for _, s := range samples {
		num := s.Instruction.Opcode
		matches := BehavesLike(s)

		prev, seen := out[num]
		if !seen {
			out[num] = matches
			continue
		}
		out[num] = intersect(prev, matches)
	}

	return out
}

// intersect keeps the opcodes of a that also appear in b, preserving order.
func intersect(a, b []device.Opcode) []device.Opcode {
	inB := make(map[device.Opcode]bool, len(b))
	for _, op := range b {
		inB[op] = true
	}

	var out []device.Opcode
	for _, op := range a {
		if inB[op] {
			out = append(out, op)
		}
	}
	return out
}

// Resolve pins every observed numeric opcode to a single behavior by
// fixed-point elimination: numeric opcodes whose candidate set has shrunk to
// one survivor take that behavior, which then drops out of every other
// candidate set. A round that assigns nothing while numeric opcodes remain
// unresolved means the samples underdetermine the encoding.
func Resolve(samples []device.Sample) (Assignment, error) {
	candidates := Candidates(samples)

	assignment := make(Assignment, len(candidates))
	taken := make(map[device.Opcode]bool)

	for len(assignment) < len(candidates) {
		progress := false

		for num, ops := range candidates {
			if _, done := assignment[num]; done {
				continue
			}

			// Only singleness matters per round; stop scanning at two
			// survivors.
			var survivors []device.Opcode
			for _, op := range ops {
				if taken[op] {
					continue
				}
				survivors = append(survivors, op)
				if len(survivors) == 2 {
					break
				}
			}

			switch len(survivors) {
			case 0:
				return nil, fmt.Errorf(
					"opcode %d has no candidates left: %w",
					num, ErrNoSolution)
			case 1:
				assignment[num] = survivors[0]
				taken[survivors[0]] = true
				progress = true
			}
		}

		if !progress {
			return nil, fmt.Errorf(
				"%d of %d numeric opcodes resolved: %w",
				len(assignment), len(candidates), ErrNoSolution)
		}
	}

	return assignment, nil
}
