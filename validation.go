package allocation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Check returns the advisory validation errors of a state: percentage groups
// that do not sum to 100% and fixed targets exceeding the available funds.
//
// Unlike invalid input, these never reject an edit. The user may be in the
// middle of rebalancing several targets.
func Check(s State, totals Totals) []string {
	var errs []string

	var group []float64
	for _, c := range Classes {
		if p, ok := percentOf(s.Classes.Get(c)); ok {
			group = append(group, p)
		}
	}
	if len(group) > 0 && !sumsTo100(group) {
		errs = append(errs, fmt.Sprintf("asset class targets sum to %.2f%%, expected 100%%", floats.Sum(group)))
	}

	var fixed []float64
	for _, c := range Classes {
		if s.Classes.Get(c).Mode() == OffMode {
			continue
		}
		var members []float64
		for _, a := range s.Assets {
			if a.Class != c {
				continue
			}
			switch t := a.target().(type) {
			case Percentage:
				members = append(members, t.Percent)
			case Fixed:
				fixed = append(fixed, t.Value)
			}
		}
		if len(members) > 0 && !sumsTo100(members) {
			errs = append(errs, fmt.Sprintf("%s asset targets sum to %.2f%%, expected 100%%", c, floats.Sum(members)))
		}
	}

	if f := floats.Sum(fixed); f > totals.Total+Tolerance {
		errs = append(errs, fmt.Sprintf("fixed targets (%.2f) exceed available funds (%.2f)", f, totals.Total))
	}
	return errs
}
