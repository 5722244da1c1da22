package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/chronica/device"
)

// WriteReport prints the input diagnostics and, when a comparison was run,
// the cross-check of the two execution paths. The comparison may be nil when
// the input had no runnable program.
func WriteReport(w io.Writer, issues []Issue, cmp *Comparison) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "INPUT VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintln(w, "\nSTAGE 1: INPUT DIAGNOSTICS")
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found")
	}
	for _, i := range issues {
		fmt.Fprintln(w, i)
	}

	if cmp != nil {
		fmt.Fprintln(w, "\nSTAGE 2: EXECUTION CROSS-CHECK")
		writeOutcome(w, "Functional", cmp.Functional, cmp.FunctionalErr)
		writeOutcome(w, "Timed     ", cmp.Timed, cmp.TimedErr)
	}

	fmt.Fprintln(w, "\nVERDICT")
	switch {
	case HasErrors(issues):
		fmt.Fprintln(w, "FAIL: input has errors")
	case cmp != nil && !cmp.Match():
		fmt.Fprintln(w, "FAIL: functional and timed executions disagree")
	default:
		fmt.Fprintln(w, "PASS")
	}
}

func writeOutcome(w io.Writer, label string, regs device.Registers, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s: %s, faulted: %v\n", label, regs, err)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, regs)
}
