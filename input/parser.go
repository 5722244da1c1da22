package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/chronica/device"
)

// The grammar, in PEG terms:
//
//	number     = [0-9]+
//	whitespace = " "*                              (silent)
//	newline    = "\n"                              (silent)
//	registers  = "[" (number "," whitespace){3} number whitespace "]"
//	instruction = number (" "+ number){3}
//	sample     = ^"before:" whitespace registers newline
//	             instruction newline
//	             ^"after:" whitespace registers
//	samples    = (sample newline+)*
//	program    = (instruction newline)*
//	input      = SOI samples program EOI
//
// Repetition is greedy and sequences fail atomically, resetting the position
// to the start of the enclosing rule. Keywords fold case; all other matching
// is byte-exact. Tabs and carriage returns are never whitespace.

// Parse parses a complete capture text. Grammar mismatches return a
// *SyntaxError; a digit run that does not fit a register value returns a
// positioned strconv range error.
func Parse(text string) (*Input, error) {
	p := &parser{text: text, failPos: -1}

	in, ok := p.input()
	if p.numErr != nil {
		return nil, p.numErr
	}
	if !ok {
		return nil, p.syntaxError()
	}

	return in, nil
}

// ParseFile reads and parses a capture file, stamping errors with the path.
func ParseFile(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	in, err := Parse(string(data))
	if err != nil {
		var synErr *SyntaxError
		if errors.As(err, &synErr) {
			synErr.Source = path
			return nil, synErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// ParseSample parses a single sample block. Trailing newlines are tolerated,
// any other trailing content is a syntax error.
func ParseSample(text string) (*device.Sample, error) {
	p := &parser{text: text, failPos: -1}

	s, ok := p.sample()
	if ok {
		for p.pos < len(p.text) && p.text[p.pos] == '\n' {
			p.pos++
		}
		if p.pos != len(p.text) {
			p.fail("end of input")
			ok = false
		}
	}
	if p.numErr != nil {
		return nil, p.numErr
	}
	if !ok {
		return nil, p.syntaxError()
	}

	return &s, nil
}

type parser struct {
	text string
	pos  int

	// Farthest failure seen so far, for error reporting.
	failPos  int
	expected []string

	// First numeric conversion failure. The grammar matched the digits,
	// the value did not fit.
	numErr error
}

func (p *parser) input() (*Input, bool) {
	samples := p.samples()
	program := p.program()

	if p.pos != len(p.text) {
		p.fail("end of input")
		return nil, false
	}

	return &Input{Samples: samples, Program: program}, true
}

func (p *parser) samples() []device.Sample {
	var out []device.Sample

	for {
		start := p.pos

		s, ok := p.sample()
		if !ok {
			p.pos = start
			break
		}
		if !p.newline() {
			p.pos = start
			break
		}
		for p.pos < len(p.text) && p.text[p.pos] == '\n' {
			p.pos++
		}

		out = append(out, s)
	}

	return out
}

func (p *parser) program() []device.UnknownInstruction {
	var out []device.UnknownInstruction

	for {
		start := p.pos

		inst, ok := p.instruction()
		if !ok {
			p.pos = start
			break
		}
		if !p.newline() {
			p.pos = start
			break
		}

		out = append(out, inst)
	}

	return out
}

func (p *parser) sample() (device.Sample, bool) {
	var s device.Sample
	var ok bool
	start := p.pos

	if !p.keyword("before:") {
		return s, false
	}
	p.whitespace()
	if s.Before, ok = p.registers(); !ok {
		p.pos = start
		return s, false
	}
	if !p.newline() {
		p.pos = start
		return s, false
	}
	if s.Instruction, ok = p.instruction(); !ok {
		p.pos = start
		return s, false
	}
	if !p.newline() {
		p.pos = start
		return s, false
	}
	if !p.keyword("after:") {
		p.pos = start
		return s, false
	}
	p.whitespace()
	if s.After, ok = p.registers(); !ok {
		p.pos = start
		return s, false
	}

	return s, true
}

func (p *parser) registers() (device.Registers, bool) {
	var regs device.Registers
	start := p.pos

	if !p.lit("[") {
		return regs, false
	}
	for i := 0; i < device.RegisterCount-1; i++ {
		v, ok := p.number()
		if !ok {
			p.pos = start
			return regs, false
		}
		if !p.lit(",") {
			p.pos = start
			return regs, false
		}
		p.whitespace()
		regs[i] = v
	}
	v, ok := p.number()
	if !ok {
		p.pos = start
		return regs, false
	}
	regs[device.RegisterCount-1] = v
	p.whitespace()
	if !p.lit("]") {
		p.pos = start
		return regs, false
	}

	return regs, true
}

func (p *parser) instruction() (device.UnknownInstruction, bool) {
	var fields [4]device.Value
	start := p.pos

	for i := range fields {
		if i > 0 && !p.spaces() {
			p.pos = start
			return device.UnknownInstruction{}, false
		}
		v, ok := p.number()
		if !ok {
			p.pos = start
			return device.UnknownInstruction{}, false
		}
		fields[i] = v
	}

	return device.UnknownInstruction{
		Opcode: fields[0],
		A:      fields[1],
		B:      fields[2],
		C:      fields[3],
	}, true
}

func (p *parser) number() (device.Value, bool) {
	start := p.pos
	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		p.fail("number")
		return 0, false
	}

	digits := p.text[start:p.pos]
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		if p.numErr == nil {
			line, col := lineCol(p.text, start)
			p.numErr = fmt.Errorf("%d:%d: number %q: %w",
				line, col, digits, err)
		}
		return 0, false
	}

	return device.Value(v), true
}

// whitespace consumes zero or more spaces. It cannot fail.
func (p *parser) whitespace() {
	for p.pos < len(p.text) && p.text[p.pos] == ' ' {
		p.pos++
	}
}

// spaces consumes one or more spaces.
func (p *parser) spaces() bool {
	if p.pos >= len(p.text) || p.text[p.pos] != ' ' {
		p.fail("space")
		return false
	}
	for p.pos < len(p.text) && p.text[p.pos] == ' ' {
		p.pos++
	}
	return true
}

func (p *parser) newline() bool {
	if p.pos >= len(p.text) || p.text[p.pos] != '\n' {
		p.fail("newline")
		return false
	}
	p.pos++
	return true
}

func (p *parser) lit(s string) bool {
	if !strings.HasPrefix(p.text[p.pos:], s) {
		p.fail(`"` + s + `"`)
		return false
	}
	p.pos += len(s)
	return true
}

func (p *parser) keyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.text) || !strings.EqualFold(p.text[p.pos:end], kw) {
		p.fail(`"` + kw + `"`)
		return false
	}
	p.pos = end
	return true
}

// fail records an expectation at the current position. Only the farthest
// position is kept; expectations recorded there accumulate in rule order.
func (p *parser) fail(want string) {
	if p.pos > p.failPos {
		p.failPos = p.pos
		p.expected = p.expected[:0]
	}
	if p.pos == p.failPos {
		for _, w := range p.expected {
			if w == want {
				return
			}
		}
		p.expected = append(p.expected, want)
	}
}

func (p *parser) syntaxError() *SyntaxError {
	line, col := lineCol(p.text, p.failPos)
	expected := make([]string, len(p.expected))
	copy(expected, p.expected)

	return &SyntaxError{
		Offset:   p.failPos,
		Line:     line,
		Col:      col,
		Expected: expected,
	}
}
