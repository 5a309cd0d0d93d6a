package allocation

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file persists a State as a single human readable JSON document:
//
//	{
//	  "currency": "EUR",
//	  "classes": [{"class": "STOCKS", "mode": "PERCENTAGE", "percent": 60}, ...],
//	  "assets": [{"id": "spy", "class": "STOCKS", "value": 12000, "targetMode": "PERCENTAGE", "targetPercent": 40}, ...]
//	}
//
// Classes are written in canonical order, assets in State order. Targets are
// flattened as "mode" plus "percent" or "value", so that only the number
// meaningful for the mode can be written.

// jsonTarget marshals a Target or a ClassTarget.
type jsonTarget struct {
	t interface{ Mode() Mode }
}

func (j jsonTarget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("mode", j.t.Mode())
	switch t := j.t.(type) {
	case Percentage:
		w.Append("percent", t.Percent)
	case Fixed:
		w.Append("value", t.Value)
	}
	return w.MarshalJSON()
}

// rawTarget is the decoded form of a jsonTarget.
type rawTarget struct {
	Mode    Mode     `json:"mode"`
	Percent *float64 `json:"percent"`
	Value   *float64 `json:"value"`
}

func (r rawTarget) toAsset() (Target, error) {
	switch r.Mode {
	case PercentageMode, "":
		return Percentage{deref(r.Percent)}, nil
	case SetMode:
		return Fixed{deref(r.Value)}, nil
	case OffMode:
		return Excluded{}, nil
	}
	return nil, fmt.Errorf("unknown target mode %q", r.Mode)
}

func (r rawTarget) toClass() (ClassTarget, error) {
	switch r.Mode {
	case PercentageMode, "":
		return Percentage{deref(r.Percent)}, nil
	case SetMode:
		return FixedSum{}, nil
	case OffMode:
		return Excluded{}, nil
	}
	return nil, fmt.Errorf("unknown target mode %q", r.Mode)
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// MarshalJSON implements the json.Marshaler interface for Asset.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Optional("name", a.Name)
	w.Optional("ticker", a.Ticker)
	w.Append("class", a.Class)
	w.Optional("subType", a.SubType)
	w.Append("value", a.Value)
	w.Optional("shares", a.Shares)
	w.Optional("pricePerShare", a.PricePerShare)
	w.PrefixFrom("target", jsonTarget{a.target()})
	w.Optional("originalCurrency", a.OriginalCurrency)
	w.Optional("originalValue", a.OriginalValue)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Asset.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID               string  `json:"id"`
		Name             string  `json:"name"`
		Ticker           string  `json:"ticker"`
		Class            string  `json:"class"`
		SubType          SubType `json:"subType"`
		Value            float64 `json:"value"`
		Shares           float64 `json:"shares"`
		PricePerShare    float64 `json:"pricePerShare"`
		OriginalCurrency string  `json:"originalCurrency"`
		OriginalValue    float64 `json:"originalValue"`

		TargetMode    Mode     `json:"targetMode"`
		TargetPercent *float64 `json:"targetPercent"`
		TargetValue   *float64 `json:"targetValue"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	class, err := ParseClass(temp.Class)
	if err != nil {
		return fmt.Errorf("asset %q: %w", temp.ID, err)
	}
	target, err := rawTarget{temp.TargetMode, temp.TargetPercent, temp.TargetValue}.toAsset()
	if err != nil {
		return fmt.Errorf("asset %q: %w", temp.ID, err)
	}
	*a = Asset{
		ID:               temp.ID,
		Name:             temp.Name,
		Ticker:           temp.Ticker,
		Class:            class,
		SubType:          temp.SubType,
		Value:            temp.Value,
		Shares:           temp.Shares,
		PricePerShare:    temp.PricePerShare,
		Target:           target,
		OriginalCurrency: temp.OriginalCurrency,
		OriginalValue:    temp.OriginalValue,
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for State.
func (s State) MarshalJSON() ([]byte, error) {
	classes := make([]json.RawMessage, 0, len(Classes))
	for _, c := range Classes {
		var w jsonObjectWriter
		w.Append("class", c)
		w.EmbedFrom(jsonTarget{s.Classes.Get(c)})
		raw, err := w.MarshalJSON()
		if err != nil {
			return nil, err
		}
		classes = append(classes, raw)
	}
	assets := s.Assets
	if assets == nil {
		assets = []Asset{}
	}

	var w jsonObjectWriter
	w.Append("currency", s.Currency)
	w.Append("classes", classes)
	w.Append("assets", assets)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for State.
// Classes missing from the document are OFF.
func (s *State) UnmarshalJSON(data []byte) error {
	var temp struct {
		Currency string `json:"currency"`
		Classes  []struct {
			Class string `json:"class"`
			rawTarget
		} `json:"classes"`
		Assets []Asset `json:"assets"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	classes := make(ClassTargets, len(Classes))
	for _, jc := range temp.Classes {
		c, err := ParseClass(jc.Class)
		if err != nil {
			return err
		}
		t, err := jc.toClass()
		if err != nil {
			return fmt.Errorf("class %s: %w", c, err)
		}
		classes[c] = t
	}
	*s = State{
		Currency: temp.Currency,
		Assets:   temp.Assets,
		Classes:  classes.Complete(),
	}
	return nil
}

// DecodeState reads a State from 'r' and validates it.
func DecodeState(r io.Reader) (State, error) {
	var s State
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return State{}, fmt.Errorf("cannot decode allocation: %w", err)
	}
	if err := s.Validate(); err != nil {
		return State{}, fmt.Errorf("invalid allocation: %w", err)
	}
	return s, nil
}

// EncodeState writes 's' to 'w' as indented JSON.
func EncodeState(w io.Writer, s State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// MarshalJSON implements the json.Marshaler interface for ClassSummary.
// Target and delta are omitted for classes without target.
func (c ClassSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("class", c.Class)
	w.Append("mode", c.Mode)
	if c.Mode == PercentageMode {
		w.Append("targetPercent", c.TargetPercent)
	}
	w.Append("current", c.Current)
	w.Append("currentPercent", c.CurrentPercent)
	if c.HasTarget {
		w.Append("target", c.Target)
		w.Append("delta", c.Delta)
	}
	w.Append("action", c.Action)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for AssetSummary.
func (a AssetSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Optional("name", a.Name)
	w.Optional("ticker", a.Ticker)
	w.Append("class", a.Class)
	w.Append("mode", a.Mode)
	if a.Mode == PercentageMode {
		w.Append("targetPercent", a.TargetPercent)
	}
	w.Append("current", a.Current)
	w.Append("currentPercent", a.CurrentPercent)
	if a.HasTarget {
		w.Append("target", a.Target)
		w.Append("delta", a.Delta)
	}
	if a.Mode == PercentageMode && a.HasTarget {
		w.Append("planned", a.Planned)
	}
	w.Append("action", a.Action)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Allocation.
func (a Allocation) MarshalJSON() ([]byte, error) {
	classes, assets := a.Classes, a.Assets
	if classes == nil {
		classes = []ClassSummary{}
	}
	if assets == nil {
		assets = []AssetSummary{}
	}
	errs := a.Errors
	if errs == nil {
		errs = []string{}
	}
	var w jsonObjectWriter
	w.Append("currency", a.Currency)
	w.Append("totalValue", a.TotalValue)
	w.Append("valid", a.Valid)
	w.Append("errors", errs)
	w.Append("classes", classes)
	w.Append("assets", assets)
	return w.MarshalJSON()
}
