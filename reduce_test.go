package allocation

import (
	"math"
	"testing"

	"github.com/etnz/allocation/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Run("edit class percent", func(t *testing.T) {
		s := DemoState()
		next, alloc, err := Reduce(s, EditClassPercent{Class: Stocks, Percent: 30})
		require.NoError(t, err)
		assert.Equal(t, Percentage{30}, next.Classes[Stocks])
		assert.Equal(t, Percentage{70}, next.Classes[Bonds])
		assert.Equal(t, DemoState(), s, "input must not be modified")

		stocks, ok := alloc.Class(Stocks)
		require.True(t, ok)
		assert.InDelta(t, 16500, stocks.Target, delta)
		assert.True(t, alloc.Valid, alloc.Errors)
	})

	t.Run("edit asset percent", func(t *testing.T) {
		next, alloc, err := Reduce(DemoState(), EditAssetPercent{ID: "bond-1", Percent: 60})
		require.NoError(t, err)
		assert.InDelta(t, 60, assetPercent(t, next.Assets, "bond-1"), delta)
		assert.InDelta(t, 24, assetPercent(t, next.Assets, "bond-2"), delta) // 6000/10000 of 40
		assert.InDelta(t, 16, assetPercent(t, next.Assets, "bond-3"), delta)
		assert.True(t, alloc.Valid, alloc.Errors)
	})

	t.Run("delete asset", func(t *testing.T) {
		next, alloc, err := Reduce(DemoState(), DeleteAsset{ID: "bond-3"})
		require.NoError(t, err)
		assert.Len(t, next.Assets, len(DemoAssets())-1)
		assert.InDelta(t, 51000, alloc.TotalValue, delta)
		assert.True(t, alloc.Valid, alloc.Errors)
	})

	t.Run("add asset makes room", func(t *testing.T) {
		a := Asset{ID: "bond-4", Name: "Corporate Bonds", Class: Bonds, Value: 1000, Target: Percentage{20}}
		next, alloc, err := Reduce(DemoState(), AddAsset{Asset: a})
		require.NoError(t, err)
		assert.InDelta(t, 20, assetPercent(t, next.Assets, "bond-4"), delta)
		assert.InDelta(t, 40, assetPercent(t, next.Assets, "bond-1"), delta)
		assert.InDelta(t, 24, assetPercent(t, next.Assets, "bond-2"), delta)
		assert.InDelta(t, 16, assetPercent(t, next.Assets, "bond-3"), delta)
		added, ok := next.Asset("bond-4")
		require.True(t, ok)
		assert.Equal(t, currency.EUR, added.OriginalCurrency)
		assert.True(t, alloc.Valid, alloc.Errors)
	})

	t.Run("add asset at 0% leaves siblings alone", func(t *testing.T) {
		a := Asset{ID: "bond-4", Class: Bonds, Value: 1000, Target: Percentage{0}}
		next, _, err := Reduce(DemoState(), AddAsset{Asset: a})
		require.NoError(t, err)
		assert.Equal(t, DemoAssets()[5:8], next.Assets[5:8])
	})

	t.Run("add asset errors", func(t *testing.T) {
		_, _, err := Reduce(DemoState(), AddAsset{Asset: Asset{ID: "stock-1", Class: Stocks}})
		assert.ErrorIs(t, err, ErrDuplicateAsset)
		_, _, err = Reduce(DemoState(), AddAsset{Asset: Asset{ID: "x", Class: "GOLD"}})
		assert.ErrorIs(t, err, ErrUnknownClass)
		_, _, err = Reduce(DemoState(), AddAsset{Asset: Asset{ID: "x", Class: Stocks, Value: -1}})
		assert.ErrorIs(t, err, ErrNegativeValue)
	})

	t.Run("mass set", func(t *testing.T) {
		next, _, err := Reduce(DemoState(), MassSetPercentages{
			Scope:    ClassScope,
			Percents: map[string]float64{"stocks": 70, "bonds": 30},
		})
		require.NoError(t, err)
		assert.Equal(t, Percentage{70}, next.Classes[Stocks])

		next, _, err = Reduce(DemoState(), MassSetPercentages{
			Scope:    AssetScope,
			Class:    Bonds,
			Percents: map[string]float64{"bond-1": 40, "bond-2": 40, "bond-3": 20},
		})
		require.NoError(t, err)
		assert.InDelta(t, 40, assetPercent(t, next.Assets, "bond-2"), delta)

		_, _, err = Reduce(DemoState(), MassSetPercentages{Scope: ClassScope, Percents: map[string]float64{"stocks": 10}})
		assert.ErrorIs(t, err, ErrSumNot100)
	})

	t.Run("change display currency", func(t *testing.T) {
		next, alloc, err := Reduce(DemoState(), ChangeDisplayCurrency{Currency: "USD", Rates: currency.DefaultRates()})
		require.NoError(t, err)
		assert.Equal(t, "USD", next.Currency)
		assert.Equal(t, "USD", alloc.Currency)
		spy, _ := next.Asset("stock-1")
		assert.InDelta(t, 12000/0.85, spy.Value, 1e-6)
		assert.Equal(t, Percentage{40}, spy.Target)
		assert.InDelta(t, 12000, spy.OriginalValue, delta)
		assert.Equal(t, currency.EUR, spy.OriginalCurrency)
		fund, _ := next.Asset("cash-1")
		assert.InDelta(t, 5000/0.85, fund.Target.(Fixed).Value, 1e-6)
		assert.InDelta(t, 55000/0.85, alloc.TotalValue, 1e-6)

		same, _, err := Reduce(DemoState(), ChangeDisplayCurrency{Currency: "EUR"})
		require.NoError(t, err)
		assert.Equal(t, DemoState(), same)
	})

	t.Run("set class target", func(t *testing.T) {
		next, _, err := Reduce(DemoState(), SetClassTarget{Class: Crypto, Target: Percentage{10}})
		require.NoError(t, err)
		assert.InDelta(t, 54, next.Classes[Stocks].(Percentage).Percent, delta)
		assert.InDelta(t, 36, next.Classes[Bonds].(Percentage).Percent, delta)
		assert.InDelta(t, 10, next.Classes[Crypto].(Percentage).Percent, delta)

		next, _, err = Reduce(DemoState(), SetClassTarget{Class: Stocks, Target: Excluded{}})
		require.NoError(t, err)
		assert.Equal(t, Excluded{}, next.Classes[Stocks])
		assert.InDelta(t, 100, next.Classes[Bonds].(Percentage).Percent, delta)

		next, _, err = Reduce(DemoState(), SetClassTarget{Class: Cash, Target: Percentage{10}})
		require.NoError(t, err)
		assert.InDelta(t, 54, next.Classes[Stocks].(Percentage).Percent, delta)
		assert.InDelta(t, 100, percentSum(next.Classes), Tolerance)
	})

	t.Run("update asset", func(t *testing.T) {
		v := 5000.0
		next, alloc, err := Reduce(DemoState(), UpdateAsset{ID: "cash-1", Value: &v})
		require.NoError(t, err)
		fund, _ := next.Asset("cash-1")
		assert.InDelta(t, 5000, fund.Value, delta)
		assert.Equal(t, Fixed{5000}, fund.Target)
		s, _ := alloc.Asset("cash-1")
		assert.Equal(t, Hold, s.Action)

		next, _, err = Reduce(DemoState(), UpdateAsset{ID: "cash-2", Target: Fixed{100}})
		require.NoError(t, err)
		broker, _ := next.Asset("cash-2")
		assert.Equal(t, Fixed{100}, broker.Target)
	})

	t.Run("an error leaves the state unchanged", func(t *testing.T) {
		edits := []Edit{
			EditClassPercent{Class: Cash, Percent: 10},
			EditClassPercent{Class: Stocks, Percent: 120},
			EditAssetPercent{ID: "nope", Percent: 10},
			DeleteAsset{ID: "nope"},
			ChangeDisplayCurrency{Currency: "XXX", Rates: currency.DefaultRates()},
			ChangeDisplayCurrency{Currency: "USD", Rates: currency.Rates{"EUR": 1, "USD": 0}},
			ChangeDisplayCurrency{Currency: "USD", Rates: currency.Rates{"EUR": 1, "USD": -1.2}},
			ChangeDisplayCurrency{Currency: "USD", Rates: currency.Rates{"EUR": math.NaN(), "USD": 1}},
			AddAsset{Asset: Asset{ID: "inf", Class: Stocks, Value: math.Inf(1)}},
			AddAsset{Asset: Asset{ID: "nan", Class: Cash, Value: 10, Target: Fixed{math.NaN()}}},
			SetClassTarget{Class: "GOLD", Target: Excluded{}},
			MassSetPercentages{Scope: "everything"},
		}
		for _, e := range edits {
			s := DemoState()
			next, alloc, err := Reduce(s, e)
			assert.Error(t, err, e.What())
			assert.Equal(t, s, next, e.What())
			assert.Equal(t, DemoState(), s, e.What())
			assert.Equal(t, Compute(s), alloc, e.What())
		}
	})
}

func TestCompute(t *testing.T) {
	alloc := Compute(DemoState())
	assert.True(t, alloc.Valid, alloc.Errors)
	assert.Equal(t, currency.EUR, alloc.Currency)
	assert.InDelta(t, 55000, alloc.TotalValue, delta)
	assert.Len(t, alloc.Classes, len(Classes))
	assert.Len(t, alloc.Assets, len(DemoAssets()))
	assert.Len(t, alloc.ClassAssets(Stocks), 5)

	empty := Compute(NewState(currency.EUR))
	assert.True(t, empty.Valid)
	assert.Zero(t, empty.TotalValue)
	assert.Empty(t, empty.Assets)
}
