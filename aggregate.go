package allocation

import "gonum.org/v1/gonum/floats"

// Totals is the roll-up of a list of assets.
type Totals struct {
	// Total is the value of every asset, whatever its target mode.
	Total float64
	// ByClass holds the value per asset class. Every known class is present,
	// possibly with 0.
	ByClass map[Class]float64
}

// Aggregate rolls up assets into per class totals and a portfolio total.
func Aggregate(assets []Asset) Totals {
	values := make(map[Class][]float64, len(Classes))
	all := make([]float64, 0, len(assets))
	for _, a := range assets {
		values[a.Class] = append(values[a.Class], a.Value)
		all = append(all, a.Value)
	}

	t := Totals{
		Total:   floats.Sum(all),
		ByClass: make(map[Class]float64, len(Classes)),
	}
	for _, c := range Classes {
		t.ByClass[c] = 0
	}
	for c, v := range values {
		t.ByClass[c] = floats.Sum(v)
	}
	return t
}

// CurrentPercent returns the share of the portfolio held in 'class', 0 for an
// empty portfolio.
func (t Totals) CurrentPercent(class Class) float64 {
	return percentOfTotal(t.ByClass[class], t.Total)
}

// percentOfTotal returns value/total*100, or 0 when total is 0.
func percentOfTotal(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
