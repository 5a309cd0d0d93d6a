package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/allocation"
	md "github.com/nao1215/markdown"
)

// Options holds the user preferences used for rendering.
type Options struct {
	AccountName      string
	DecimalSeparator string // "." or ","
	// Classes restricts the detailed asset tables to these classes, all when empty.
	Classes []allocation.Class
}

// AllocationMarkdown renders a computed allocation to a markdown string.
func AllocationMarkdown(a allocation.Allocation, opts Options) string {
	f := formatter{cur: a.Currency, sep: opts.DecimalSeparator}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Allocation"
	if opts.AccountName != "" {
		title = fmt.Sprintf("%s Allocation", opts.AccountName)
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("Total Value: %s", md.Bold(f.money(a.TotalValue))))

	if !a.Valid {
		doc.H2("Warnings")
		doc.BulletList(a.Errors...)
	}

	doc.H2("Asset Classes")
	classes := md.TableSet{
		Header: []string{"Class", "Target", "Current", "Current %", "Drift", "Target Value", "Delta", "Action"},
	}
	for _, c := range a.Classes {
		targetValue, delta, drift := "-", "-", "-"
		if c.HasTarget {
			targetValue, delta = f.money(c.Target), f.signed(c.Delta)
		}
		if c.Mode == allocation.PercentageMode {
			drift = allocation.Percent(c.CurrentPercent - c.TargetPercent).SignedString()
		}
		classes.Rows = append(classes.Rows, []string{
			c.Class.Title(),
			target(c.Mode, c.TargetPercent),
			f.money(c.Current),
			percent(c.CurrentPercent),
			drift,
			targetValue,
			delta,
			string(c.Action),
		})
	}
	doc.Table(classes)

	var moves bytes.Buffer
	ConditionalBlock(&moves, func(w io.Writer) bool { return writeMoves(w, a.Classes, f) })
	if moves.Len() > 0 {
		doc.H2("Rebalancing")
		doc.PlainText(moves.String())
	}

	for _, c := range a.Classes {
		if !selected(opts.Classes, c.Class) {
			continue
		}
		assets := a.ClassAssets(c.Class)
		if len(assets) == 0 {
			continue
		}
		doc.H2(c.Class.Title())
		table := md.TableSet{
			Header: []string{"Asset", "Ticker", "Target", "Current", "Current %", "Target Value", "Delta", "Planned", "Action"},
		}
		for _, s := range assets {
			targetValue, delta, planned := "-", "-", "-"
			if s.HasTarget {
				targetValue, delta = f.money(s.Target), f.signed(s.Delta)
				if s.Mode == allocation.PercentageMode {
					planned = f.signed(s.Planned)
				}
			}
			name := s.Name
			if name == "" {
				name = s.ID
			}
			table.Rows = append(table.Rows, []string{
				name,
				s.Ticker,
				target(s.Mode, s.TargetPercent),
				f.money(s.Current),
				percent(s.CurrentPercent),
				targetValue,
				delta,
				planned,
				string(s.Action),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// writeMoves writes one line per class that needs a move, and reports whether
// any was written.
func writeMoves(w io.Writer, classes []allocation.ClassSummary, f formatter) bool {
	n := 0
	for _, c := range classes {
		var verb string
		switch c.Action {
		case allocation.Buy:
			verb = "Buy"
		case allocation.Sell:
			verb = "Sell"
		case allocation.Save:
			verb = "Save"
		case allocation.Invest:
			verb = "Invest"
		default:
			continue
		}
		amount := allocation.M(c.Delta, f.cur)
		if amount.IsNegative() {
			amount = amount.Neg()
		}
		fmt.Fprintf(w, "- %s %s of %s\n", verb, amount.Format(f.sep), c.Class.Title())
		n++
	}
	return n > 0
}

func selected(classes []allocation.Class, c allocation.Class) bool {
	if len(classes) == 0 {
		return true
	}
	for _, s := range classes {
		if s == c {
			return true
		}
	}
	return false
}
