package allocation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(s *State)
		wants []string // substrings of the expected errors
	}{
		{
			name: "demo is valid",
			edit: func(s *State) {},
		},
		{
			name:  "class targets",
			edit:  func(s *State) { s.Classes[Stocks] = Percentage{50} },
			wants: []string{"asset class targets sum to 90.00%"},
		},
		{
			name: "asset targets",
			edit: func(s *State) {
				s.Assets[0].Target = Percentage{10}
				s.Assets[5].Target = Percentage{0}
			},
			wants: []string{"STOCKS asset targets sum to 70.00%", "BONDS asset targets sum to 50.00%"},
		},
		{
			name: "OFF classes are not checked",
			edit: func(s *State) {
				s.Classes[Stocks], s.Classes[Bonds], s.Assets[0].Target = Excluded{}, Percentage{100}, Percentage{10}
			},
			wants: nil,
		},
		{
			name:  "fixed targets exceed funds",
			edit:  func(s *State) { s.Assets[8].Target = Fixed{60000} },
			wants: []string{"fixed targets (60000.00) exceed available funds (55000.00)"},
		},
		{
			name:  "within tolerance",
			edit:  func(s *State) { s.Classes[Stocks] = Percentage{60.005} },
			wants: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DemoState()
			tt.edit(&s)
			got := Check(s, Aggregate(s.Assets))
			require.Len(t, got, len(tt.wants), got)
			for i, want := range tt.wants {
				assert.Contains(t, got[i], want)
			}
		})
	}
}

func TestStateValidate(t *testing.T) {
	assert.NoError(t, DemoState().Validate())

	s := DemoState()
	s.Assets = append(s.Assets, s.Assets[0])
	assert.ErrorIs(t, s.Validate(), ErrDuplicateAsset)

	s = DemoState()
	s.Assets[0].Value = -1
	assert.ErrorIs(t, s.Validate(), ErrNegativeValue)

	nonFinite := []struct {
		name  string
		asset func(*Asset)
	}{
		{"infinite value", func(a *Asset) { a.Value = math.Inf(1) }},
		{"infinite shares", func(a *Asset) { a.Shares = math.Inf(1) }},
		{"NaN shares", func(a *Asset) { a.Shares = math.NaN() }},
		{"infinite price", func(a *Asset) { a.PricePerShare = math.Inf(-1) }},
		{"NaN fixed target", func(a *Asset) { a.Target = Fixed{math.NaN()} }},
		{"infinite fixed target", func(a *Asset) { a.Target = Fixed{math.Inf(1)} }},
	}
	for _, tt := range nonFinite {
		t.Run(tt.name, func(t *testing.T) {
			s := DemoState()
			tt.asset(&s.Assets[0])
			assert.ErrorIs(t, s.Validate(), ErrNegativeValue)
		})
	}

	s = DemoState()
	s.Classes[Stocks] = Percentage{101}
	assert.ErrorIs(t, s.Validate(), ErrPercentRange)

	s = DemoState()
	s.Assets[0].ID = ""
	assert.Error(t, s.Validate())
}
