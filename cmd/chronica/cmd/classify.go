package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/chronica/classify"
	"github.com/sarchlab/chronica/input"
)

var (
	threshold int
	showTable bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify samples and resolve the opcode encoding",
	Long: `classify tests every sample against all sixteen behaviors, counts
the samples that stay ambiguous, and tries to pin each numeric opcode to a
single behavior by elimination.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().IntVar(&threshold,
		"threshold", 3, "count samples with at least this many candidates")
	classifyCmd.Flags().BoolVar(&showTable,
		"table", true, "print the per-number candidate table")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	in, err := input.ParseFile(cfg.Input)
	if err != nil {
		return err
	}

	th := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		th = threshold
	}

	r := classify.NewReport(in.Samples, th)
	out := cmd.OutOrStdout()

	if showTable {
		r.WriteReport(out)
		return nil
	}

	fmt.Fprintf(out, "Samples with at least %d candidate opcodes: %d\n",
		th, classify.AmbiguousCount(in.Samples, th))
	if r.ResolveErr != nil {
		fmt.Fprintf(out, "Encoding not resolved: %v\n", r.ResolveErr)
	} else {
		fmt.Fprintf(out, "Encoding resolved: %d numeric opcodes\n",
			len(r.Assignment))
	}

	return nil
}
