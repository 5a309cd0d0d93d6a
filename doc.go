// Package allocation computes the target allocation of a personal portfolio
// and the rebalancing moves needed to reach it.
//
// A portfolio is a list of assets grouped in five fixed asset classes. Each
// class and each asset carries a target in one of three modes:
//   - PERCENTAGE: a share of the portfolio (for a class) or of its class (for
//     an asset).
//   - SET: a fixed amount. A class in SET mode targets the sum of the fixed
//     amounts of its assets.
//   - OFF: excluded from rebalancing, still counted as held value.
//
// The package is organized as a pipeline of pure functions:
//   - Aggregate rolls up the asset values per class.
//   - ResolveClasses and ResolveAssets compute targets, deltas and actions.
//   - RedistributeClassPercent, RedistributeAssetPercent and RemoveAsset keep
//     percentage groups summing to 100% when one of them is edited.
//
// Reduce ties them together: it applies an Edit to a State and returns the new
// State along with its computed Allocation. A State is never modified in
// place.
//
// This package is the engine behind the `alloc` command-line tool.
package allocation
