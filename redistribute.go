package allocation

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// split distributes 'amount' proportionally to 'weights'. When the weights sum
// to 0 the amount is split equally.
func split(amount float64, weights []float64) []float64 {
	res := make([]float64, len(weights))
	if len(weights) == 0 {
		return res
	}
	total := floats.Sum(weights)
	for i, w := range weights {
		if total == 0 {
			res[i] = amount / float64(len(weights))
		} else {
			res[i] = w / total * amount
		}
	}
	return res
}

// RedistributeClassPercent sets the target percent of 'class' to p and shares
// the remaining 100-p among the other PERCENTAGE classes, proportionally to
// their own target percent. SET and OFF classes are untouched.
//
// 'classes' is not modified.
func RedistributeClassPercent(classes ClassTargets, class Class, p float64) (ClassTargets, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("class %q: %w", class, ErrUnknownClass)
	}
	if err := checkPercent(p); err != nil {
		return nil, fmt.Errorf("class %s: %w", class, err)
	}
	if _, ok := percentOf(classes.Get(class)); !ok {
		return nil, fmt.Errorf("class %s is %s: %w", class, classes.Get(class).Mode(), ErrNotPercentage)
	}

	res := classes.Complete()
	res[class] = Percentage{p}

	var others []Class
	var weights []float64
	for _, c := range Classes {
		if w, ok := percentOf(res[c]); ok && c != class {
			others = append(others, c)
			weights = append(weights, w)
		}
	}
	remaining := 100 - p
	if floats.Sum(weights) == remaining {
		// already consistent
		return res, nil
	}
	for i, share := range split(remaining, weights) {
		res[others[i]] = Percentage{share}
	}
	return res, nil
}

// releaseClassPercent gives the percent 'q' formerly held by a class to the
// PERCENTAGE classes in 'res', proportionally to their target percent.
func releaseClassPercent(res ClassTargets, q float64) {
	if q == 0 {
		return
	}
	var others []Class
	var weights []float64
	for _, c := range Classes {
		if w, ok := percentOf(res.Get(c)); ok {
			others = append(others, c)
			weights = append(weights, w)
		}
	}
	for i, share := range split(q, weights) {
		res[others[i]] = Percentage{weights[i] + share}
	}
}

// RedistributeAssetPercent sets the target percent of the asset 'id' to p and
// shares the remaining 100-p among the other PERCENTAGE assets of its class,
// proportionally to their current value. When they are all worth 0 the
// remainder is split equally. Assets of other classes are untouched.
//
// 'assets' is not modified.
func RedistributeAssetPercent(assets []Asset, id string, p float64) ([]Asset, error) {
	i, err := indexOf(assets, id)
	if err != nil {
		return nil, err
	}
	if err := checkPercent(p); err != nil {
		return nil, fmt.Errorf("asset %q: %w", id, err)
	}
	edited := assets[i]
	if _, ok := edited.Percent(); !ok {
		return nil, fmt.Errorf("asset %q is %s: %w", id, edited.Mode(), ErrNotPercentage)
	}

	res := slices.Clone(assets)
	res[i].Target = Percentage{p}

	var siblings []int
	var weights []float64
	for j, a := range res {
		if j != i && a.isPercentMember(edited.Class) {
			siblings = append(siblings, j)
			weights = append(weights, a.Value)
		}
	}
	for k, share := range split(100-p, weights) {
		res[siblings[k]].Target = Percentage{share}
	}
	return res, nil
}

// RemoveAsset removes the asset 'id'. If it was a PERCENTAGE asset with a
// positive percent, that percent goes to the other PERCENTAGE assets of its
// class, proportionally to their target percent, or equally when they are all
// at 0%.
//
// 'assets' is not modified.
func RemoveAsset(assets []Asset, id string) ([]Asset, error) {
	i, err := indexOf(assets, id)
	if err != nil {
		return nil, err
	}
	removed := assets[i]
	res := slices.Delete(slices.Clone(assets), i, i+1)

	q, ok := removed.Percent()
	if !ok || q <= 0 {
		return res, nil
	}
	var siblings []int
	var weights []float64
	for j, a := range res {
		if p, ok := a.Percent(); ok && a.Class == removed.Class {
			siblings = append(siblings, j)
			weights = append(weights, p)
		}
	}
	for k, share := range split(q, weights) {
		res[siblings[k]].Target = Percentage{weights[k] + share}
	}
	return res, nil
}

// makeRoom lowers the target percent of the PERCENTAGE siblings of asset i by
// q in total, proportionally to their own target percent. Siblings all at 0%
// have nothing to give and are left alone.
func makeRoom(res []Asset, i int, q float64) {
	class := res[i].Class
	var siblings []int
	var weights []float64
	for j, a := range res {
		if p, ok := a.Percent(); ok && j != i && a.Class == class {
			siblings = append(siblings, j)
			weights = append(weights, p)
		}
	}
	total := floats.Sum(weights)
	if q <= 0 || total == 0 {
		return
	}
	q = math.Min(q, total)
	for k, w := range weights {
		res[siblings[k]].Target = Percentage{w - w/total*q}
	}
}

// sumsTo100 reports whether the values sum to 100 within Tolerance.
func sumsTo100(values []float64) bool {
	return math.Abs(floats.Sum(values)-100) <= Tolerance
}

// MassSetClassPercents sets several class percents at once. No redistribution
// happens: the resulting PERCENTAGE group must sum to 100 within Tolerance,
// otherwise ErrSumNot100 is returned.
//
// 'classes' is not modified.
func MassSetClassPercents(classes ClassTargets, values map[Class]float64) (ClassTargets, error) {
	res := classes.Complete()
	for c, p := range values {
		if !c.Valid() {
			return nil, fmt.Errorf("class %q: %w", c, ErrUnknownClass)
		}
		if err := checkPercent(p); err != nil {
			return nil, fmt.Errorf("class %s: %w", c, err)
		}
		if _, ok := percentOf(res[c]); !ok {
			return nil, fmt.Errorf("class %s is %s: %w", c, res[c].Mode(), ErrNotPercentage)
		}
		res[c] = Percentage{p}
	}
	var group []float64
	for _, c := range Classes {
		if p, ok := percentOf(res[c]); ok {
			group = append(group, p)
		}
	}
	if !sumsTo100(group) {
		return nil, fmt.Errorf("class targets sum to %.2f%%: %w", floats.Sum(group), ErrSumNot100)
	}
	return res, nil
}

// MassSetAssetPercents sets several asset percents of 'class' at once. No
// redistribution happens: the resulting PERCENTAGE group of the class must sum
// to 100 within Tolerance, otherwise ErrSumNot100 is returned.
//
// 'assets' is not modified.
func MassSetAssetPercents(assets []Asset, class Class, values map[string]float64) ([]Asset, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("class %q: %w", class, ErrUnknownClass)
	}
	res := slices.Clone(assets)
	for id, p := range values {
		i, err := indexOf(res, id)
		if err != nil {
			return nil, err
		}
		if res[i].Class != class {
			return nil, fmt.Errorf("asset %q is not in %s: %w", id, class, ErrUnknownAsset)
		}
		if err := checkPercent(p); err != nil {
			return nil, fmt.Errorf("asset %q: %w", id, err)
		}
		if _, ok := res[i].Percent(); !ok {
			return nil, fmt.Errorf("asset %q is %s: %w", id, res[i].Mode(), ErrNotPercentage)
		}
		res[i].Target = Percentage{p}
	}
	var group []float64
	for _, a := range res {
		if p, ok := a.Percent(); ok && a.Class == class {
			group = append(group, p)
		}
	}
	if !sumsTo100(group) {
		return nil, fmt.Errorf("%s asset targets sum to %.2f%%: %w", class, floats.Sum(group), ErrSumNot100)
	}
	return res, nil
}
