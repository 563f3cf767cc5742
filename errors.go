package optarg

import (
	"errors"
	"fmt"
)

// ErrSearchFailed is the single failure kind callers observe. Every error
// returned by Search and Solve matches it with errors.Is.
var ErrSearchFailed = errors.New("optarg: search failed")

// ErrInvalidThreshold indicates that the limit does not exceed the threshold,
// so the acceptance band is empty or inverted.
var ErrInvalidThreshold = errors.New("limit must be greater than threshold")

// ErrInvalidFunctionResult indicates that the function returned a value that
// is not strictly positive (NaN included).
var ErrInvalidFunctionResult = errors.New("function result must be positive")

// ErrInvalidRange indicates a search range with a non-finite bound or with
// Lower > Upper.
var ErrInvalidRange = errors.New("invalid search range")

// ErrInvalidLimit indicates a NaN or infinite limit.
var ErrInvalidLimit = errors.New("limit must be finite")

// ErrDidNotConverge indicates that the iteration cap was reached or the
// search interval could no longer be narrowed.
var ErrDidNotConverge = errors.New("did not converge")

// SearchError wraps the cause of a failed search together with the state the
// search was in when it stopped.
//
// errors.Is(err, ErrSearchFailed) is always true; errors.Is(err, cause)
// reports the specific reason.
type SearchError struct {
	Iterations int     // Bisection steps completed
	Low        float64 // Lower bound of the interval at failure
	High       float64 // Upper bound of the interval at failure
	Err        error   // Underlying cause
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%v after %d iterations in [%g, %g]: %v",
		ErrSearchFailed, e.Iterations, e.Low, e.High, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is makes every SearchError match ErrSearchFailed.
func (e *SearchError) Is(target error) bool {
	return target == ErrSearchFailed
}
