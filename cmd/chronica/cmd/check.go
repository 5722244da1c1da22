package cmd

import (
	"errors"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"

	"github.com/sarchlab/chronica/classify"
	"github.com/sarchlab/chronica/config"
	"github.com/sarchlab/chronica/device"
	"github.com/sarchlab/chronica/input"
	"github.com/sarchlab/chronica/verify"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify an input and cross-check both execution paths",
	Long: `check looks for inputs that parse but cannot run: corrupt samples,
unknown numeric opcodes, programs without samples. When the input is clean
and carries a program, the program also runs through both the functional
emulator and the timed model, and the results are compared.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	in, err := input.ParseFile(cfg.Input)
	if err != nil {
		return err
	}

	issues := verify.CheckInput(in)

	var cmp *verify.Comparison
	if !verify.HasErrors(issues) && len(in.Program) > 0 {
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
		cmp = verify.CompareRun(platform, prog, device.Registers{})
	}

	verify.WriteReport(cmd.OutOrStdout(), issues, cmp)

	if verify.HasErrors(issues) || (cmp != nil && !cmp.Match()) {
		return errors.New("verification failed")
	}

	return nil
}
