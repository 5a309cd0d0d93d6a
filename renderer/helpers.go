package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/allocation"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// formatter formats amounts in one currency with one decimal separator.
type formatter struct {
	cur string
	sep string
}

func (f formatter) money(v float64) string { return allocation.M(v, f.cur).Format(f.sep) }

func (f formatter) signed(v float64) string { return allocation.M(v, f.cur).SignedString(f.sep) }

func percent(p float64) string { return allocation.Percent(p).String() }

// target formats the target column: the target percent in PERCENTAGE mode,
// the mode otherwise.
func target(mode allocation.Mode, p float64) string {
	if mode == allocation.PercentageMode {
		return percent(p)
	}
	return string(mode)
}
