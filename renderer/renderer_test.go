package renderer

import (
	"io"
	"strings"
	"testing"

	"github.com/etnz/allocation"
)

func TestAllocationMarkdown(t *testing.T) {
	demo := allocation.Compute(allocation.DemoState())

	invalid := allocation.DemoState()
	invalid.Classes[allocation.Stocks] = allocation.Percentage{Percent: 10}

	tests := []struct {
		name    string
		a       allocation.Allocation
		opts    Options
		want    []string
		notWant []string
	}{
		{
			name: "demo",
			a:    demo,
			opts: Options{AccountName: "My Portfolio", DecimalSeparator: "."},
			want: []string{
				"# My Portfolio Allocation",
				"**€55,000.00**",
				"## Asset Classes",
				"60.00%",
				"+€3,000.00",
				"-5.45%",
				"- Buy €3,000.00 of Stocks",
				"- Buy €2,000.00 of Bonds",
				"## Stocks",
				"S&P 500 Index ETF",
				"Emergency Fund",
				"EXCLUDED",
			},
			notWant: []string{"## Warnings", "of Cash"},
		},
		{
			name: "comma separator",
			a:    demo,
			opts: Options{DecimalSeparator: ","},
			want: []string{"# Allocation", "€55.000,00", "+€3.000,00"},
		},
		{
			name:    "class filter",
			a:       demo,
			opts:    Options{Classes: []allocation.Class{allocation.Bonds}},
			want:    []string{"## Bonds", "Total Bond Market"},
			notWant: []string{"## Stocks", "S&P 500 Index ETF"},
		},
		{
			name: "warnings",
			a:    allocation.Compute(invalid),
			want: []string{"## Warnings", "asset class targets sum to 50.00%"},
		},
		{
			name:    "empty",
			a:       allocation.Compute(allocation.NewState("USD")),
			want:    []string{"$0.00", "HOLD"},
			notWant: []string{"## Rebalancing", "## Stocks"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocationMarkdown(tt.a, tt.opts)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output does not contain %q:\n%s", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("output contains %q:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "discarded")
		return false
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "kept")
		return true
	})
	if got := b.String(); got != "kept" {
		t.Errorf("got %q, want %q", got, "kept")
	}
}
