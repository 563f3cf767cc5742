package optarg

import "fmt"

// Range is a closed search domain [Lower, Upper].
type Range[T Real] struct {
	Lower T
	Upper T
}

// DefaultRange returns [0, MaxFinite].
func DefaultRange[T Real]() Range[T] {
	return Range[T]{Lower: 0, Upper: MaxFinite[T]()}
}

// Validate checks that both bounds are finite and Lower <= Upper.
func (r Range[T]) Validate() error {
	if !isFinite(r.Lower) || !isFinite(r.Upper) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidRange, r.Lower, r.Upper)
	}
	if r.Lower > r.Upper {
		return fmt.Errorf("%w: lower bound %v exceeds upper bound %v", ErrInvalidRange, r.Lower, r.Upper)
	}
	return nil
}

// Contains reports whether x lies in [Lower, Upper].
func (r Range[T]) Contains(x T) bool {
	return x >= r.Lower && x <= r.Upper
}

// Width returns Upper - Lower. It can overflow to +Inf for ranges wider
// than MaxFinite.
func (r Range[T]) Width() T {
	return r.Upper - r.Lower
}

// Midpoint returns the center of the range without overflowing, even for
// [-MaxFinite, MaxFinite].
func (r Range[T]) Midpoint() T {
	return midpoint(r.Lower, r.Upper)
}

func midpoint[T Real](low, high T) T {
	return low/2 + high/2
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Lower, r.Upper)
}
