package allocation

// Allocation is the derived view of a State: every value a rebalancing report
// needs.
type Allocation struct {
	Currency   string
	TotalValue float64
	Classes    []ClassSummary // in canonical order
	Assets     []AssetSummary // in State order
	// Valid is false when Errors is not empty. An invalid allocation is still
	// fully computed.
	Valid  bool
	Errors []string
}

// Compute derives the allocation of a state. It never fails: inconsistent
// targets are reported in Allocation.Errors.
func Compute(s State) Allocation {
	totals := Aggregate(s.Assets)
	classes := ResolveClasses(totals, s.Assets, s.Classes)
	errs := Check(s, totals)
	return Allocation{
		Currency:   s.Currency,
		TotalValue: totals.Total,
		Classes:    classes,
		Assets:     ResolveAssets(s.Assets, classes),
		Valid:      len(errs) == 0,
		Errors:     errs,
	}
}

// Class returns the summary of 'class'.
func (a Allocation) Class(class Class) (ClassSummary, bool) {
	for _, c := range a.Classes {
		if c.Class == class {
			return c, true
		}
	}
	return ClassSummary{}, false
}

// Asset returns the summary of the asset 'id'.
func (a Allocation) Asset(id string) (AssetSummary, bool) {
	for _, s := range a.Assets {
		if s.ID == id {
			return s, true
		}
	}
	return AssetSummary{}, false
}

// ClassAssets returns the summaries of the assets of 'class', in order.
func (a Allocation) ClassAssets(class Class) []AssetSummary {
	var res []AssetSummary
	for _, s := range a.Assets {
		if s.Class == class {
			res = append(res, s)
		}
	}
	return res
}
