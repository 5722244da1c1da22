package classify

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/maps"

	"github.com/sarchlab/chronica/device"
)

// Report summarizes the classification of a sample set.
type Report struct {
	Samples    []device.Sample
	Threshold  int
	Candidates map[device.Value][]device.Opcode
	Assignment Assignment
	ResolveErr error
}

// NewReport classifies the samples and attempts to resolve the encoding.
func NewReport(samples []device.Sample, threshold int) *Report {
	r := &Report{
		Samples:    samples,
		Threshold:  threshold,
		Candidates: Candidates(samples),
	}
	r.Assignment, r.ResolveErr = Resolve(samples)

	return r
}

// WriteReport prints the per-number candidate table, the ambiguity summary,
// and the resolved assignment if available.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "SAMPLE CLASSIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nSamples: %d\n", len(r.Samples))
	fmt.Fprintf(w, "Samples with at least %d candidate opcodes: %d\n",
		r.Threshold, AmbiguousCount(r.Samples, r.Threshold))
	fmt.Fprintln(w)

	nums := maps.Keys(r.Candidates)
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Number", "Candidates", "Assigned"})
	for _, num := range nums {
		names := make([]string, 0, len(r.Candidates[num]))
		for _, op := range r.Candidates[num] {
			names = append(names, op.Name())
		}

		assigned := ""
		if op, ok := r.Assignment[num]; ok {
			assigned = op.Name()
		}

		t.AppendRow(table.Row{num, strings.Join(names, " "), assigned})
	}
	t.Render()

	fmt.Fprintln(w)
	if r.ResolveErr != nil {
		fmt.Fprintf(w, "Encoding not resolved: %v\n", r.ResolveErr)
	} else {
		fmt.Fprintf(w, "Encoding resolved: %d numeric opcodes\n",
			len(r.Assignment))
	}
}
