// Package input parses the sample capture format: a list of
// before/instruction/after observations followed by a raw program, one
// instruction per line.
package input

import (
	"strings"

	"github.com/sarchlab/chronica/device"
)

// Input is the parsed form of a complete capture file.
type Input struct {
	Samples []device.Sample
	Program []device.UnknownInstruction
}

// String renders the input in the canonical form that Parse accepts back.
func (in *Input) String() string {
	var sb strings.Builder
	for _, s := range in.Samples {
		sb.WriteString(s.String())
		sb.WriteString("\n\n")
	}
	for _, inst := range in.Program {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
