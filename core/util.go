package core

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/chronica/device"
)

// PrintToggle gates the per-tick state dump. Debugging aid only.
var PrintToggle = false

// LevelTrace sits one step above info so execution traces can be enabled
// without drowning in framework debug output.
const LevelTrace slog.Level = slog.LevelInfo + 1

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// FprintRegisters renders the register file as a table.
func FprintRegisters(w io.Writer, regs device.Registers) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"R0", "R1", "R2", "R3"})
	t.AppendRow(table.Row{regs[0], regs[1], regs[2], regs[3]})
	t.Render()
}

func PrintState(c *Core) {
	if !PrintToggle {
		return
	}
	FprintRegisters(os.Stdout, c.state.Registers)
}
