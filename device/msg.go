package device

import "github.com/sarchlab/akita/v4/sim"

// CompletionMsg reports that a loaded program has finished running.
type CompletionMsg struct {
	sim.MsgMeta

	Registers Registers
	Fault     string
}

// Meta returns the meta data of the msg.
func (m *CompletionMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *CompletionMsg) Clone() sim.Msg {
	c := *m
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// CompletionMsgBuilder is a factory for CompletionMsg.
type CompletionMsgBuilder struct {
	src, dst  sim.RemotePort
	registers Registers
	fault     string
}

// WithSrc sets the source port of the msg.
func (b CompletionMsgBuilder) WithSrc(src sim.RemotePort) CompletionMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b CompletionMsgBuilder) WithDst(dst sim.RemotePort) CompletionMsgBuilder {
	b.dst = dst
	return b
}

// WithRegisters sets the final register state carried by the msg.
func (b CompletionMsgBuilder) WithRegisters(regs Registers) CompletionMsgBuilder {
	b.registers = regs
	return b
}

// WithFault sets the fault text. An empty fault means a clean run.
func (b CompletionMsgBuilder) WithFault(fault string) CompletionMsgBuilder {
	b.fault = fault
	return b
}

// Build creates a CompletionMsg.
func (b CompletionMsgBuilder) Build() *CompletionMsg {
	return &CompletionMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Registers: b.registers,
		Fault:     b.fault,
	}
}
