// Package errors provides structured, coded errors for progressus.
//
// Every failure the widget can report has a registered code that maps to a
// category, a short message and a longer explanation. Callers receive a
// *ProgressError whose message names the offending input literally, so the
// error text alone tells a caller which argument was rejected.
//
// # Error Categories
//
//   - init: failures while binding the widget to its container
//   - validation: rejected bounds, values, percentages and formatters
//   - format: failures while formatting an iteration for display
//   - config: progressus.json loading and validation
//
// # Usage
//
//	err := errors.New("P004").WithInput("a")
//	fmt.Println(err)
//	// P004: Failed to initialize max, given value is invalid: a
//
// Two errors with the same code match under errors.Is, which lets packages
// export sentinels built with New and compare against them:
//
//	var ErrInvalidMax = errors.New("P004")
//	if stderrors.Is(err, ErrInvalidMax) { ... }
package errors
