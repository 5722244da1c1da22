package cmd

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"

	"github.com/sarchlab/chronica/classify"
	"github.com/sarchlab/chronica/config"
	"github.com/sarchlab/chronica/core"
	"github.com/sarchlab/chronica/device"
	"github.com/sarchlab/chronica/input"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resolve the encoding and run the captured program",
	Long: `run resolves the opcode encoding from the samples, decodes the
captured program, and executes it on the timed device model. The final
register state is printed on success.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	in, err := input.ParseFile(cfg.Input)
	if err != nil {
		return err
	}

	assignment, err := classify.Resolve(in.Samples)
	if err != nil {
		return err
	}

	prog, err := assignment.DecodeProgram(in.Program)
	if err != nil {
		return err
	}

	platform := config.PlatformBuilder{}.
		WithFreq(sim.Freq(cfg.FreqGHz) * sim.GHz).
		Build("Chronica")

	regs, err := platform.Driver.RunProgram(prog, device.Registers{})
	if err != nil {
		return err
	}

	core.FprintRegisters(cmd.OutOrStdout(), regs)

	return nil
}
