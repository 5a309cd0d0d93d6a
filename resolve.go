package allocation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tolerance is the absolute tolerance used both for deltas (in currency units)
// and for the 100% sum of percentage groups.
const Tolerance = 0.01

// Action is the rebalancing move suggested for a class or an asset.
type Action string

// Actions. SAVE and INVEST are the CASH flavours of BUY and SELL.
const (
	Buy     Action = "BUY"
	Sell    Action = "SELL"
	Hold    Action = "HOLD"
	Save    Action = "SAVE"
	Invest  Action = "INVEST"
	Exclude Action = "EXCLUDED"
)

// ActionFor derives the action from the class, the target mode and the delta.
func ActionFor(class Class, mode Mode, delta float64) Action {
	switch {
	case mode == OffMode:
		return Exclude
	case math.Abs(delta) <= Tolerance:
		return Hold
	case delta > 0 && class == Cash:
		return Save
	case delta > 0:
		return Buy
	case class == Cash:
		return Invest
	default:
		return Sell
	}
}

// ClassSummary is the derived state of an asset class.
type ClassSummary struct {
	Class         Class
	Mode          Mode
	TargetPercent float64 // in PERCENTAGE mode only
	Current       float64
	// CurrentPercent is the share of the portfolio held in this class.
	CurrentPercent float64
	Target         float64
	HasTarget      bool // false for OFF classes, Target and Delta are then meaningless
	// Delta is Target - Current, minus the CASH delta for non CASH classes.
	Delta  float64
	Action Action
}

// ResolveClasses computes the target, delta and action of every asset class,
// in canonical order.
//
// A SET class targets the sum of the Fixed targets of its assets. Money moving
// in or out of CASH is assumed to come from or go to the other classes: the
// CASH delta is subtracted from every other class delta. There is no such
// adjustment when CASH is OFF.
func ResolveClasses(totals Totals, assets []Asset, classes ClassTargets) []ClassSummary {
	res := make([]ClassSummary, 0, len(Classes))
	for _, c := range Classes {
		target := classes.Get(c)
		s := ClassSummary{
			Class:          c,
			Mode:           target.Mode(),
			Current:        totals.ByClass[c],
			CurrentPercent: totals.CurrentPercent(c),
		}
		switch t := target.(type) {
		case Percentage:
			s.TargetPercent = t.Percent
			s.Target = t.Percent / 100 * totals.Total
			s.HasTarget = true
		case FixedSum:
			s.Target = fixedSum(assets, c)
			s.HasTarget = true
		}
		if s.HasTarget {
			s.Delta = s.Target - s.Current
		}
		res = append(res, s)
	}

	var cashDelta float64
	for _, s := range res {
		if s.Class == Cash && s.HasTarget {
			cashDelta = s.Delta
		}
	}
	for i := range res {
		s := &res[i]
		if s.HasTarget && s.Class != Cash {
			s.Delta -= cashDelta
		}
		s.Action = ActionFor(s.Class, s.Mode, s.Delta)
	}
	return res
}

// fixedSum returns the sum of Fixed targets of the assets in 'class'.
func fixedSum(assets []Asset, class Class) float64 {
	var values []float64
	for _, a := range assets {
		if f, ok := a.Target.(Fixed); ok && a.Class == class {
			values = append(values, f.Value)
		}
	}
	return floats.Sum(values)
}

// AssetSummary is the derived state of an asset.
type AssetSummary struct {
	ID            string
	Name          string
	Ticker        string
	Class         Class
	Mode          Mode
	TargetPercent float64 // in PERCENTAGE mode only
	Current       float64
	// CurrentPercent is the share of its class held in this asset.
	CurrentPercent float64
	Target         float64
	HasTarget      bool
	Delta          float64 // Target - Current
	Action         Action
	// Planned is the share of the class delta assigned to this asset, for
	// PERCENTAGE assets only.
	Planned float64
}

// ResolveAssets computes the target, delta and action of every asset, in the
// order of 'assets'.
//
// A PERCENTAGE asset targets its percent of the class target, a SET asset its
// Fixed value. Every asset of an OFF class is excluded.
func ResolveAssets(assets []Asset, classes []ClassSummary) []AssetSummary {
	byClass := make(map[Class]ClassSummary, len(classes))
	planned := make(map[Class]map[string]float64, len(classes))
	for _, cs := range classes {
		byClass[cs.Class] = cs
		if cs.HasTarget {
			planned[cs.Class] = DistributeDelta(assets, cs.Class, cs.Delta)
		}
	}

	res := make([]AssetSummary, 0, len(assets))
	for _, a := range assets {
		cs := byClass[a.Class]
		s := AssetSummary{
			ID:             a.ID,
			Name:           a.Name,
			Ticker:         a.Ticker,
			Class:          a.Class,
			Mode:           a.Mode(),
			Current:        a.Value,
			CurrentPercent: percentOfTotal(a.Value, cs.Current),
		}
		if cs.HasTarget {
			switch t := a.target().(type) {
			case Percentage:
				s.TargetPercent = t.Percent
				s.Target = t.Percent / 100 * cs.Target
				s.HasTarget = true
				s.Planned = planned[a.Class][a.ID]
			case Fixed:
				s.Target = t.Value
				s.HasTarget = true
			}
		}
		mode := s.Mode
		if !s.HasTarget {
			mode = OffMode
		} else {
			s.Delta = s.Target - s.Current
		}
		s.Action = ActionFor(a.Class, mode, s.Delta)
		res = append(res, s)
	}
	return res
}

// DistributeDelta splits a class delta across the PERCENTAGE assets of
// 'class', proportionally to their target percent. When they are all at 0%
// the delta is split equally. SET and OFF assets are not in the result.
func DistributeDelta(assets []Asset, class Class, delta float64) map[string]float64 {
	var ids []string
	var weights []float64
	for _, a := range assets {
		if p, ok := a.Percent(); ok && a.Class == class {
			ids = append(ids, a.ID)
			weights = append(weights, p)
		}
	}
	shares := split(delta, weights)
	res := make(map[string]float64, len(ids))
	for i, id := range ids {
		res[id] = shares[i]
	}
	return res
}
