package optarg

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Real is the numeric capability the search needs: ordering, arithmetic and
// conversion from small constants. Both float32 and float64 (and named types
// over them) satisfy it, and every computation stays in the caller's precision.
type Real interface {
	constraints.Float
}

// Func is a monotonic non-decreasing function of one real argument.
// It must be pure: the search may evaluate it any number of times.
type Func[T Real] func(T) T

// MaxFinite returns the largest finite value representable by T.
func MaxFinite[T Real]() T {
	var zero T
	// float32-based types are the only 4-byte members of Real.
	if unsafe.Sizeof(zero) == 4 {
		return T(float32(math.MaxFloat32))
	}
	m := math.MaxFloat64
	return T(m)
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite[T Real](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
