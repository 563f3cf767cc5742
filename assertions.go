package optarg

import (
	"errors"
	"testing"
)

// AssertWithinBand verifies that x is an acceptable answer for a search of f
// under limit with cfg.
//
// Property checked:
//
//	limit - threshold < f(x) <= limit   OR   x == Upper && f(Upper) <= limit
func AssertWithinBand[T Real](t *testing.T, f Func[T], x, limit T, cfg Config[T]) {
	t.Helper()

	threshold := cfg.threshold(limit)
	bounds := cfg.bounds()
	value := f(x)

	if !bounds.Contains(x) {
		t.Errorf("Argument %v outside search range %v", x, bounds)
	}

	if x == bounds.Upper && value <= limit {
		t.Logf("✓ Upper bound accepted: f(%v) = %v <= %v", x, value, limit)
		return
	}

	if value <= limit-threshold || value > limit {
		t.Errorf("f(%v) = %v outside acceptance band (%v, %v]",
			x, value, limit-threshold, limit)
		return
	}

	t.Logf("✓ f(%v) = %v in (%v, %v]", x, value, limit-threshold, limit)
}

// AssertSearchFailed verifies err is a search failure caused by cause.
// A nil cause only checks the outer failure kind.
func AssertSearchFailed(t *testing.T, err error, cause error) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected search to fail, got nil error")
	}

	if !errors.Is(err, ErrSearchFailed) {
		t.Errorf("Error %q does not match ErrSearchFailed", err)
	}

	var se *SearchError
	if !errors.As(err, &se) {
		t.Errorf("Error %q is not a *SearchError", err)
	}

	if cause != nil && !errors.Is(err, cause) {
		t.Errorf("Error %q does not wrap %q", err, cause)
	}

	t.Logf("✓ Search failed as expected: %v", err)
}
