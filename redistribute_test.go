package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const delta = 1e-9

// percentSum returns the sum of the PERCENTAGE classes.
func percentSum(c ClassTargets) float64 {
	var group []float64
	for _, class := range Classes {
		if p, ok := percentOf(c.Get(class)); ok {
			group = append(group, p)
		}
	}
	return floats.Sum(group)
}

// assetPercentSum returns the sum of the PERCENTAGE assets of a class.
func assetPercentSum(assets []Asset, class Class) float64 {
	var group []float64
	for _, a := range assets {
		if p, ok := a.Percent(); ok && a.Class == class {
			group = append(group, p)
		}
	}
	return floats.Sum(group)
}

func assetPercent(t *testing.T, assets []Asset, id string) float64 {
	t.Helper()
	i, err := indexOf(assets, id)
	require.NoError(t, err)
	p, ok := assets[i].Percent()
	require.True(t, ok, "asset %q is not in PERCENTAGE mode", id)
	return p
}

func TestRedistributeClassPercent(t *testing.T) {
	t.Run("lowering stocks raises bonds", func(t *testing.T) {
		classes := ClassTargets{
			Stocks:     Percentage{60},
			Bonds:      Percentage{40},
			Cash:       FixedSum{},
			Crypto:     Percentage{0},
			RealEstate: Percentage{0},
		}
		got, err := RedistributeClassPercent(classes, Stocks, 30)
		require.NoError(t, err)
		assert.Equal(t, Percentage{30}, got[Stocks])
		assert.Equal(t, Percentage{70}, got[Bonds])
		assert.Equal(t, FixedSum{}, got[Cash])
		assert.Equal(t, Percentage{0}, got[Crypto])
		assert.Equal(t, Percentage{0}, got[RealEstate])
		assert.Equal(t, Percentage{60}, classes[Stocks], "input must not be modified")
	})

	t.Run("proportional to target percent", func(t *testing.T) {
		classes := ClassTargets{
			Stocks: Percentage{60},
			Bonds:  Percentage{35},
			Cash:   Percentage{5},
		}
		got, err := RedistributeClassPercent(classes, Cash, 10)
		require.NoError(t, err)
		stocks, _ := percentOf(got[Stocks])
		bonds, _ := percentOf(got[Bonds])
		assert.InDelta(t, 10, got[Cash].(Percentage).Percent, delta)
		assert.InDelta(t, 56.8421, stocks, 1e-4)
		assert.InDelta(t, 33.1579, bonds, 1e-4)
		assert.InDelta(t, 60.0/35.0, stocks/bonds, delta)
		assert.Equal(t, Excluded{}, got[Crypto])
	})

	t.Run("equal split when others are at 0", func(t *testing.T) {
		classes := ClassTargets{
			Stocks:     Percentage{100},
			Bonds:      Percentage{0},
			Cash:       Percentage{0},
			Crypto:     Percentage{0},
			RealEstate: Percentage{0},
		}
		got, err := RedistributeClassPercent(classes, Stocks, 50)
		require.NoError(t, err)
		for _, c := range []Class{Bonds, Cash, Crypto, RealEstate} {
			assert.InDelta(t, 12.5, got[c].(Percentage).Percent, delta, c)
		}
	})

	t.Run("no op edit", func(t *testing.T) {
		classes := DemoClassTargets()
		got, err := RedistributeClassPercent(classes, Stocks, 60)
		require.NoError(t, err)
		assert.Equal(t, classes, got)
	})

	t.Run("sum stays at 100", func(t *testing.T) {
		for _, p := range []float64{0, 12.5, 33.3, 99.99, 100} {
			for _, c := range []Class{Stocks, Bonds, Crypto, RealEstate} {
				got, err := RedistributeClassPercent(DemoClassTargets(), c, p)
				require.NoError(t, err)
				assert.InDelta(t, 100, percentSum(got), Tolerance, "%s at %v", c, p)
			}
		}
	})

	t.Run("errors", func(t *testing.T) {
		_, err := RedistributeClassPercent(DemoClassTargets(), Cash, 10)
		assert.ErrorIs(t, err, ErrNotPercentage)
		_, err = RedistributeClassPercent(DemoClassTargets(), "GOLD", 10)
		assert.ErrorIs(t, err, ErrUnknownClass)
		_, err = RedistributeClassPercent(DemoClassTargets(), Stocks, 120)
		assert.ErrorIs(t, err, ErrPercentRange)
		_, err = RedistributeClassPercent(DemoClassTargets(), Stocks, -1)
		assert.ErrorIs(t, err, ErrPercentRange)
	})
}

func TestRedistributeAssetPercent(t *testing.T) {
	t.Run("weighted by current value", func(t *testing.T) {
		assets := DemoAssets()
		got, err := RedistributeAssetPercent(assets, "stock-1", 50)
		require.NoError(t, err)
		assert.InDelta(t, 50, assetPercent(t, got, "stock-1"), delta)
		// the other stocks hold 18000
		assert.InDelta(t, 8000.0/18000*50, assetPercent(t, got, "stock-2"), delta)
		assert.InDelta(t, 5000.0/18000*50, assetPercent(t, got, "stock-3"), delta)
		assert.InDelta(t, 3000.0/18000*50, assetPercent(t, got, "stock-4"), delta)
		assert.InDelta(t, 2000.0/18000*50, assetPercent(t, got, "stock-5"), delta)
		assert.InDelta(t, 100, assetPercentSum(got, Stocks), Tolerance)
		assert.Equal(t, Percentage{40}, assets[0].Target, "input must not be modified")
	})

	t.Run("other classes are untouched", func(t *testing.T) {
		assets := DemoAssets()
		got, err := RedistributeAssetPercent(assets, "stock-1", 10)
		require.NoError(t, err)
		for i, a := range assets {
			if a.Class != Stocks {
				assert.Equal(t, a, got[i])
			}
		}
	})

	t.Run("equal split when siblings are worth 0", func(t *testing.T) {
		assets := []Asset{
			{ID: "a", Class: Crypto, Value: 100, Target: Percentage{100}},
			{ID: "b", Class: Crypto, Target: Percentage{0}},
			{ID: "c", Class: Crypto, Target: Percentage{0}},
		}
		got, err := RedistributeAssetPercent(assets, "a", 40)
		require.NoError(t, err)
		assert.InDelta(t, 30, assetPercent(t, got, "b"), delta)
		assert.InDelta(t, 30, assetPercent(t, got, "c"), delta)
	})

	t.Run("SET and OFF siblings are untouched", func(t *testing.T) {
		assets := DemoAssets()
		assets = append(assets, Asset{ID: "cash-3", Class: Cash, Value: 100, Target: Percentage{100}})
		got, err := RedistributeAssetPercent(assets, "cash-3", 50)
		require.NoError(t, err)
		i, _ := indexOf(got, "cash-1")
		assert.Equal(t, Fixed{5000}, got[i].Target)
		i, _ = indexOf(got, "cash-2")
		assert.Equal(t, Excluded{}, got[i].Target)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := RedistributeAssetPercent(DemoAssets(), "nope", 10)
		assert.ErrorIs(t, err, ErrUnknownAsset)
		_, err = RedistributeAssetPercent(DemoAssets(), "cash-1", 10)
		assert.ErrorIs(t, err, ErrNotPercentage)
		_, err = RedistributeAssetPercent(DemoAssets(), "stock-1", 101)
		assert.ErrorIs(t, err, ErrPercentRange)
	})
}

func TestRemoveAsset(t *testing.T) {
	t.Run("percent goes to siblings by target percent", func(t *testing.T) {
		got, err := RemoveAsset(DemoAssets(), "bond-3")
		require.NoError(t, err)
		assert.Len(t, got, len(DemoAssets())-1)
		assert.InDelta(t, 62.5, assetPercent(t, got, "bond-1"), delta)
		assert.InDelta(t, 37.5, assetPercent(t, got, "bond-2"), delta)
		_, err = indexOf(got, "bond-3")
		assert.ErrorIs(t, err, ErrUnknownAsset)
	})

	t.Run("equal split when siblings are at 0", func(t *testing.T) {
		assets := []Asset{
			{ID: "a", Class: Bonds, Target: Percentage{20}},
			{ID: "b", Class: Bonds, Target: Percentage{0}},
			{ID: "c", Class: Bonds, Target: Percentage{0}},
		}
		got, err := RemoveAsset(assets, "a")
		require.NoError(t, err)
		assert.InDelta(t, 10, assetPercent(t, got, "b"), delta)
		assert.InDelta(t, 10, assetPercent(t, got, "c"), delta)
	})

	t.Run("no redistribution for SET, OFF or 0%", func(t *testing.T) {
		assets := DemoAssets()
		assets = append(assets, Asset{ID: "zero", Class: Stocks, Target: Percentage{0}})
		for _, id := range []string{"cash-1", "cash-2", "zero"} {
			got, err := RemoveAsset(assets, id)
			require.NoError(t, err)
			i, _ := indexOf(assets, id)
			want := append(append([]Asset{}, assets[:i]...), assets[i+1:]...)
			assert.Equal(t, want, got, id)
		}
	})

	t.Run("unknown asset", func(t *testing.T) {
		_, err := RemoveAsset(DemoAssets(), "nope")
		assert.ErrorIs(t, err, ErrUnknownAsset)
	})
}

func TestMassSetClassPercents(t *testing.T) {
	got, err := MassSetClassPercents(DemoClassTargets(), map[Class]float64{Stocks: 70, Bonds: 25, Crypto: 5})
	require.NoError(t, err)
	assert.Equal(t, Percentage{70}, got[Stocks])
	assert.Equal(t, Percentage{25}, got[Bonds])
	assert.Equal(t, Percentage{5}, got[Crypto])
	assert.Equal(t, FixedSum{}, got[Cash])

	_, err = MassSetClassPercents(DemoClassTargets(), map[Class]float64{Stocks: 33.33, Bonds: 33.33, Crypto: 33.335})
	assert.NoError(t, err, "within tolerance")

	_, err = MassSetClassPercents(DemoClassTargets(), map[Class]float64{Stocks: 70})
	assert.ErrorIs(t, err, ErrSumNot100)
	_, err = MassSetClassPercents(DemoClassTargets(), map[Class]float64{Cash: 10})
	assert.ErrorIs(t, err, ErrNotPercentage)
	_, err = MassSetClassPercents(DemoClassTargets(), map[Class]float64{"GOLD": 10})
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestMassSetAssetPercents(t *testing.T) {
	got, err := MassSetAssetPercents(DemoAssets(), Bonds, map[string]float64{"bond-1": 34, "bond-2": 33, "bond-3": 33})
	require.NoError(t, err)
	assert.InDelta(t, 34, assetPercent(t, got, "bond-1"), delta)
	assert.InDelta(t, 33, assetPercent(t, got, "bond-3"), delta)

	_, err = MassSetAssetPercents(DemoAssets(), Bonds, map[string]float64{"bond-1": 34})
	assert.ErrorIs(t, err, ErrSumNot100)
	_, err = MassSetAssetPercents(DemoAssets(), Bonds, map[string]float64{"stock-1": 100})
	assert.ErrorIs(t, err, ErrUnknownAsset)
	_, err = MassSetAssetPercents(DemoAssets(), Cash, map[string]float64{"cash-1": 100})
	assert.ErrorIs(t, err, ErrNotPercentage)
}
