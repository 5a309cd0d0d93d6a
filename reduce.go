package allocation

import (
	"fmt"
	"slices"

	"github.com/etnz/allocation/currency"
)

// State is the persisted state of an allocation. Everything else is derived
// from it by Compute.
type State struct {
	// Currency is the portfolio currency every value is expressed in.
	Currency string
	Assets   []Asset
	Classes  ClassTargets
}

// NewState returns an empty state in 'cur' with the default class targets.
func NewState(cur string) State {
	return State{Currency: cur, Classes: DefaultClassTargets()}
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	return State{
		Currency: s.Currency,
		Assets:   slices.Clone(s.Assets),
		Classes:  s.Classes.Complete(),
	}
}

// Asset returns the asset 'id'.
func (s State) Asset(id string) (Asset, bool) {
	i, err := indexOf(s.Assets, id)
	if err != nil {
		return Asset{}, false
	}
	return s.Assets[i], true
}

// Validate checks every asset and class target for invalid input.
func (s State) Validate() error {
	seen := make(map[string]bool, len(s.Assets))
	for _, a := range s.Assets {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.ID] {
			return fmt.Errorf("asset %q: %w", a.ID, ErrDuplicateAsset)
		}
		seen[a.ID] = true
	}
	for c, t := range s.Classes {
		if !c.Valid() {
			return fmt.Errorf("class %q: %w", c, ErrUnknownClass)
		}
		if p, ok := percentOf(t); ok {
			if err := checkPercent(p); err != nil {
				return fmt.Errorf("class %s: %w", c, err)
			}
		}
	}
	return nil
}

// EditType identifies the kind of an Edit.
type EditType string

// Edit types.
const (
	EdClassPercent EditType = "class-percent"
	EdAssetPercent EditType = "asset-percent"
	EdDelete       EditType = "delete"
	EdAdd          EditType = "add"
	EdMassSet      EditType = "mass-set"
	EdCurrency     EditType = "currency"
	EdClassTarget  EditType = "class-target"
	EdUpdate       EditType = "update"
)

// Edit is a user edit of a State.
type Edit interface {
	What() EditType
	// apply returns the edited state. 's' must not be modified.
	apply(s State) (State, error)
}

// Reduce applies the edit 'e' to 's' and returns the new state with its
// computed allocation.
//
// On error the state returned is 's' itself, and 's' is never modified.
func Reduce(s State, e Edit) (State, Allocation, error) {
	next, err := e.apply(s.Clone())
	if err != nil {
		return s, Compute(s), fmt.Errorf("%s: %w", e.What(), err)
	}
	return next, Compute(next), nil
}

// EditClassPercent sets the target percent of a PERCENTAGE class, the other
// PERCENTAGE classes are redistributed.
type EditClassPercent struct {
	Class   Class
	Percent float64
}

func (EditClassPercent) What() EditType { return EdClassPercent }

func (e EditClassPercent) apply(s State) (State, error) {
	classes, err := RedistributeClassPercent(s.Classes, e.Class, e.Percent)
	if err != nil {
		return s, err
	}
	s.Classes = classes
	return s, nil
}

// EditAssetPercent sets the target percent of a PERCENTAGE asset, its
// PERCENTAGE siblings are redistributed.
type EditAssetPercent struct {
	ID      string
	Percent float64
}

func (EditAssetPercent) What() EditType { return EdAssetPercent }

func (e EditAssetPercent) apply(s State) (State, error) {
	assets, err := RedistributeAssetPercent(s.Assets, e.ID, e.Percent)
	if err != nil {
		return s, err
	}
	s.Assets = assets
	return s, nil
}

// DeleteAsset removes an asset, its percent goes to its PERCENTAGE siblings.
type DeleteAsset struct {
	ID string
}

func (DeleteAsset) What() EditType { return EdDelete }

func (e DeleteAsset) apply(s State) (State, error) {
	assets, err := RemoveAsset(s.Assets, e.ID)
	if err != nil {
		return s, err
	}
	s.Assets = assets
	return s, nil
}

// AddAsset appends a new asset. A PERCENTAGE asset with a positive percent
// takes it from its PERCENTAGE siblings.
type AddAsset struct {
	Asset Asset
}

func (AddAsset) What() EditType { return EdAdd }

func (e AddAsset) apply(s State) (State, error) {
	a := e.Asset
	if a.Target == nil {
		a.Target = Percentage{0}
	}
	if err := a.Validate(); err != nil {
		return s, err
	}
	if _, err := indexOf(s.Assets, a.ID); err == nil {
		return s, fmt.Errorf("asset %q: %w", a.ID, ErrDuplicateAsset)
	}
	if a.OriginalCurrency == "" {
		a.OriginalCurrency, a.OriginalValue = s.Currency, a.Value
	}
	s.Assets = append(s.Assets, a)
	if p, ok := a.Percent(); ok {
		makeRoom(s.Assets, len(s.Assets)-1, p)
	}
	return s, nil
}

// MassScope is the group a MassSetPercentages edit applies to.
type MassScope string

// Mass edit scopes.
const (
	ClassScope MassScope = "classes"
	AssetScope MassScope = "assets"
)

// MassSetPercentages overwrites several percents of a group at once, without
// redistribution. The group must sum to 100%.
//
// In ClassScope, Percents is keyed by class name, in AssetScope by asset id
// within Class.
type MassSetPercentages struct {
	Scope    MassScope
	Class    Class
	Percents map[string]float64
}

func (MassSetPercentages) What() EditType { return EdMassSet }

func (e MassSetPercentages) apply(s State) (State, error) {
	switch e.Scope {
	case ClassScope:
		values := make(map[Class]float64, len(e.Percents))
		for k, p := range e.Percents {
			c, err := ParseClass(k)
			if err != nil {
				return s, err
			}
			values[c] = p
		}
		classes, err := MassSetClassPercents(s.Classes, values)
		if err != nil {
			return s, err
		}
		s.Classes = classes
	case AssetScope:
		assets, err := MassSetAssetPercents(s.Assets, e.Class, e.Percents)
		if err != nil {
			return s, err
		}
		s.Assets = assets
	default:
		return s, fmt.Errorf("unknown mass edit scope %q", e.Scope)
	}
	return s, nil
}

// ChangeDisplayCurrency converts every asset to a new portfolio currency.
type ChangeDisplayCurrency struct {
	Currency string
	Rates    currency.Rates
}

func (ChangeDisplayCurrency) What() EditType { return EdCurrency }

func (e ChangeDisplayCurrency) apply(s State) (State, error) {
	if e.Currency == s.Currency {
		return s, nil
	}
	from := s.Currency
	if from == "" {
		from = e.Currency
	}
	assets, err := ConvertAssets(s.Assets, from, e.Currency, e.Rates)
	if err != nil {
		return s, err
	}
	s.Assets, s.Currency = assets, e.Currency
	return s, nil
}

// SetClassTarget switches the target of a class.
//
// Switching to a Percentage redistributes the other PERCENTAGE classes, as
// EditClassPercent does. Switching away from PERCENTAGE gives the former
// percent to the remaining PERCENTAGE classes.
type SetClassTarget struct {
	Class  Class
	Target ClassTarget
}

func (SetClassTarget) What() EditType { return EdClassTarget }

func (e SetClassTarget) apply(s State) (State, error) {
	if !e.Class.Valid() {
		return s, fmt.Errorf("class %q: %w", e.Class, ErrUnknownClass)
	}
	if e.Target == nil {
		e.Target = Excluded{}
	}
	res := s.Classes.Complete()
	former, wasPercent := percentOf(res[e.Class])
	if p, ok := percentOf(e.Target); ok {
		if err := checkPercent(p); err != nil {
			return s, fmt.Errorf("class %s: %w", e.Class, err)
		}
		res[e.Class] = Percentage{former}
		classes, err := RedistributeClassPercent(res, e.Class, p)
		if err != nil {
			return s, err
		}
		s.Classes = classes
		return s, nil
	}
	res[e.Class] = e.Target
	if wasPercent {
		releaseClassPercent(res, former)
	}
	s.Classes = res
	return s, nil
}

// UpdateAsset changes the value and or the target of an asset, without any
// redistribution.
type UpdateAsset struct {
	ID string
	// Value is the new value, nil to keep the current one.
	Value *float64
	// Target is the new target, nil to keep the current one.
	Target Target
}

func (UpdateAsset) What() EditType { return EdUpdate }

func (e UpdateAsset) apply(s State) (State, error) {
	i, err := indexOf(s.Assets, e.ID)
	if err != nil {
		return s, err
	}
	a := s.Assets[i]
	if e.Value != nil {
		a.Value = *e.Value
		if a.PricePerShare > 0 && a.Shares > 0 {
			a.Shares = a.Value / a.PricePerShare
		}
		a.OriginalCurrency, a.OriginalValue = s.Currency, a.Value
	}
	if e.Target != nil {
		a.Target = e.Target
	}
	if err := a.Validate(); err != nil {
		return s, err
	}
	s.Assets[i] = a
	return s, nil
}
