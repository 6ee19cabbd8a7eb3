package progress

import (
	perrors "github.com/vango-dev/progressus/internal/errors"
)

// Error is the concrete type of every error returned by this package.
type Error = perrors.ProgressError

// Sentinels for errors.Is. Returned errors carry the offending input in
// their message and match these by code.
var (
	ErrInvalidSelector           error = perrors.New("P001")
	ErrContainerNotFound         error = perrors.New("P002")
	ErrMissingRequiredDependency error = perrors.New("P003")
	ErrInvalidMax                error = perrors.New("P004")
	ErrInvalidStart              error = perrors.New("P005")
	ErrInvalidFormatter          error = perrors.New("P006")
	ErrInvalidIteration          error = perrors.New("P007")
	ErrInvalidPercentage         error = perrors.New("P008")
	ErrInvalidValue              error = perrors.New("P009")
	ErrNotInitialized            error = perrors.New("P010")
)

const calcPercentageMessage = "Failed to calculate percentage, given value is invalid"
