package allocation

import "github.com/etnz/allocation/currency"

// DemoAssets returns a sample portfolio of ETFs and cash accounts.
func DemoAssets() []Asset {
	etf := func(id, name, ticker string, class Class, value, percent float64) Asset {
		return Asset{
			ID:               id,
			Name:             name,
			Ticker:           ticker,
			Class:            class,
			SubType:          ETF,
			Value:            value,
			Target:           Percentage{percent},
			OriginalCurrency: currency.EUR,
			OriginalValue:    value,
		}
	}
	return []Asset{
		etf("stock-1", "S&P 500 Index ETF", "SPY", Stocks, 12000, 40),
		etf("stock-2", "Vanguard Total Stock Market", "VTI", Stocks, 8000, 27),
		etf("stock-3", "International Developed Markets", "VXUS", Stocks, 5000, 17),
		etf("stock-4", "Emerging Markets ETF", "VWO", Stocks, 3000, 10),
		etf("stock-5", "Small Cap Value", "VBR", Stocks, 2000, 6),
		etf("bond-1", "Total Bond Market", "BND", Bonds, 10000, 50),
		etf("bond-2", "Treasury Inflation-Protected", "TIP", Bonds, 6000, 30),
		etf("bond-3", "International Bond", "BNDX", Bonds, 4000, 20),
		{
			ID:               "cash-1",
			Name:             "Emergency Fund",
			Ticker:           "CASH",
			Class:            Cash,
			SubType:          SavingsAccount,
			Value:            4750,
			Target:           Fixed{5000},
			OriginalCurrency: currency.EUR,
			OriginalValue:    4750,
		},
		{
			ID:               "cash-2",
			Name:             "Broker Cash",
			Ticker:           "CASH",
			Class:            Cash,
			SubType:          CheckingAccount,
			Value:            250,
			Target:           Excluded{},
			OriginalCurrency: currency.EUR,
			OriginalValue:    250,
		},
	}
}

// DemoClassTargets returns the class targets of the demo portfolio.
func DemoClassTargets() ClassTargets {
	return ClassTargets{
		Stocks:     Percentage{60},
		Bonds:      Percentage{40},
		Cash:       FixedSum{},
		Crypto:     Percentage{0},
		RealEstate: Percentage{0},
	}
}

// DemoState returns the demo portfolio, in EUR.
func DemoState() State {
	return State{
		Currency: currency.EUR,
		Assets:   DemoAssets(),
		Classes:  DemoClassTargets(),
	}
}
