// Package verify cross-checks parsed inputs and execution results. Parsing
// accepts anything the grammar allows; the checks here find the inputs that
// parse but cannot possibly run to a meaningful result.
package verify

import (
	"fmt"

	"github.com/sarchlab/chronica/classify"
	"github.com/sarchlab/chronica/device"
	"github.com/sarchlab/chronica/input"
)

// Severity grades an issue found in an input.
type Severity int

const (
	// Info issues are observations that need no action.
	Info Severity = iota

	// Warning issues are suspicious but do not block a run.
	Warning

	// Error issues make a run impossible or meaningless.
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	panic(fmt.Sprintf("invalid severity %d", int(s)))
}

// Issue is one finding about an input.
type Issue struct {
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
}

// CheckInput inspects a parsed input for conditions the grammar cannot
// reject: samples that match no opcode, numeric opcodes beyond the known
// behaviors, and program instructions whose numeric opcode no sample ever
// observed.
func CheckInput(in *input.Input) []Issue {
	var issues []Issue

	observed := make(map[device.Value]bool, len(in.Samples))
	for i, s := range in.Samples {
		observed[s.Instruction.Opcode] = true

		if s.Instruction.Opcode >= device.NumOpcodes {
			issues = append(issues, Issue{Warning, fmt.Sprintf(
				"sample %d uses numeric opcode %d, beyond the %d known behaviors",
				i, s.Instruction.Opcode, device.NumOpcodes)})
		}
		if len(classify.BehavesLike(s)) == 0 {
			issues = append(issues, Issue{Error, fmt.Sprintf(
				"sample %d matches no opcode, the observation is corrupt", i)})
		}
	}

	for i, u := range in.Program {
		if u.Opcode >= device.NumOpcodes {
			issues = append(issues, Issue{Warning, fmt.Sprintf(
				"program instruction %d uses numeric opcode %d, beyond the %d known behaviors",
				i, u.Opcode, device.NumOpcodes)})
		}
		if !observed[u.Opcode] {
			issues = append(issues, Issue{Error, fmt.Sprintf(
				"program instruction %d uses numeric opcode %d, never observed in any sample",
				i, u.Opcode)})
		}
	}

	if len(in.Samples) == 0 && len(in.Program) > 0 {
		issues = append(issues, Issue{Error,
			"program present but no samples to resolve the encoding"})
	}

	return issues
}

// HasErrors reports whether any issue is of severity Error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == Error {
			return true
		}
	}
	return false
}
