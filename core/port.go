package core

import (
	"fmt"
	"sync"

	"github.com/sarchlab/akita/v4/sim"
)

// HookPosPortMsgSend marks when a message is sent out from the port.
var HookPosPortMsgSend = &sim.HookPos{Name: "Port Msg Send"}

// HookPosPortMsgRecvd marks when an inbound message arrives at the port.
var HookPosPortMsgRecvd = &sim.HookPos{Name: "Port Msg Recv"}

// HookPosPortMsgRetrieve marks when a message is taken out of a port buffer.
var HookPosPortMsgRetrieve = &sim.HookPos{Name: "Port Msg Retrieve"}

// A Port is owned by a component and is used to plug in connections.
type Port interface {
	sim.Named
	sim.Hookable

	AsRemote() sim.RemotePort

	SetConnection(conn sim.Connection)
	Component() sim.Component

	// For connection
	Deliver(msg sim.Msg) *sim.SendError
	NotifyAvailable()
	RetrieveOutgoing() sim.Msg
	PeekOutgoing() sim.Msg

	// For component
	CanSend() bool
	Send(msg sim.Msg) *sim.SendError
	RetrieveIncoming() sim.Msg
	PeekIncoming() sim.Msg
}

// bufferedPort implements the Port interface with one incoming and one
// outgoing buffer.
type bufferedPort struct {
	sim.HookableBase

	lock sync.Mutex
	name string
	comp sim.Component
	conn sim.Connection

	incomingBuf sim.Buffer
	outgoingBuf sim.Buffer
}

// NewPort creates a new port with the given buffer capacities.
func NewPort(
	comp sim.Component,
	incomingBufCap, outgoingBufCap int,
	name string,
) Port {
	return &bufferedPort{
		name:        name,
		comp:        comp,
		incomingBuf: sim.NewBuffer(name+".IncomingBuf", incomingBufCap),
		outgoingBuf: sim.NewBuffer(name+".OutgoingBuf", outgoingBufCap),
	}
}

// Name returns the name of the port.
func (p *bufferedPort) Name() string {
	return p.name
}

// AsRemote returns the remote port name.
func (p *bufferedPort) AsRemote() sim.RemotePort {
	return sim.RemotePort(p.name)
}

// Component returns the owner component of the port.
func (p *bufferedPort) Component() sim.Component {
	return p.comp
}

// SetConnection sets which connection is plugged in to this port.
func (p *bufferedPort) SetConnection(conn sim.Connection) {
	if p.conn != nil {
		panic(fmt.Sprintf(
			"connection already set to %s, now connecting to %s",
			p.conn.Name(), conn.Name(),
		))
	}

	p.conn = conn
}

// CanSend checks if the port can accept another outgoing message.
func (p *bufferedPort) CanSend() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.outgoingBuf.CanPush()
}

// Send queues a message for delivery. It returns a SendError when the
// outgoing buffer is full.
func (p *bufferedPort) Send(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	p.msgMustBeValid(msg)

	if !p.outgoingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := p.outgoingBuf.Size() == 0
	p.outgoingBuf.Push(msg)

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgSend,
		Item:   msg,
	})
	p.lock.Unlock()

	if wasEmpty {
		p.conn.NotifySend()
	}

	return nil
}

// Deliver is used by the connection to hand a message to the component.
func (p *bufferedPort) Deliver(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	if !p.incomingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := p.incomingBuf.Size() == 0

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRecvd,
		Item:   msg,
	})

	p.incomingBuf.Push(msg)
	p.lock.Unlock()

	if p.comp != nil && wasEmpty {
		p.comp.NotifyRecv(p)
	}

	return nil
}

// RetrieveIncoming takes one message from the incoming buffer.
func (p *bufferedPort) RetrieveIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.popAndHook(p.incomingBuf, func() {
		p.conn.NotifyAvailable(p)
	})
}

// RetrieveOutgoing takes one message from the outgoing buffer.
func (p *bufferedPort) RetrieveOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.popAndHook(p.outgoingBuf, func() {
		if p.comp != nil {
			p.comp.NotifyPortFree(p)
		}
	})
}

func (p *bufferedPort) popAndHook(buf sim.Buffer, onFreed func()) sim.Msg {
	item := buf.Pop()
	if item == nil {
		return nil
	}

	msg := item.(sim.Msg)
	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRetrieve,
		Item:   msg,
	})

	if buf.Size() == buf.Capacity()-1 {
		onFreed()
	}

	return msg
}

// PeekIncoming returns the first incoming message without removing it.
func (p *bufferedPort) PeekIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// PeekOutgoing returns the first outgoing message without removing it.
func (p *bufferedPort) PeekOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// NotifyAvailable is called by the connection when it can accept messages
// again.
func (p *bufferedPort) NotifyAvailable() {
	if p.comp != nil {
		p.comp.NotifyPortFree(p)
	}
}

func (p *bufferedPort) msgMustBeValid(msg sim.Msg) {
	if p.name != string(msg.Meta().Src) {
		panic("sending port is not msg src")
	}
	if msg.Meta().Dst == "" {
		panic("dst is not given")
	}
	if msg.Meta().Src == msg.Meta().Dst {
		panic("sending back to src")
	}
}
