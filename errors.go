package allocation

import "errors"

// Invalid input errors. They abort the edit being applied and are matched
// with errors.Is.
var (
	ErrUnknownClass   = errors.New("unknown asset class")
	ErrNegativeValue  = errors.New("negative or non-finite value")
	ErrNotPercentage  = errors.New("target is not in PERCENTAGE mode")
	ErrUnknownAsset   = errors.New("unknown asset")
	ErrDuplicateAsset = errors.New("duplicate asset id")
	ErrPercentRange   = errors.New("percent must be between 0 and 100")
	ErrSumNot100      = errors.New("percentages must sum to 100%")
)
