// Package optarg finds the largest argument that keeps a monotonic function
// safely under a ceiling.
//
// # Overview
//
// Given a non-decreasing function f, a limit and a threshold, optarg returns
// an x such that
//
//	limit - threshold < f(x) <= limit
//
// without inverting f analytically. Typical use: size a buffer, a batch or a
// scale factor so that a derived quantity (memory, bytes on the wire,
// rendered area) stays just under a resource limit.
//
// # Quick Start
//
//	footprint := func(n float64) float64 { return 48 + n*1.5/1024 }
//
//	n, err := optarg.Search(footprint, 512, optarg.DefaultConfig[float64]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Algorithm
//
// The search is a bounded bisection over [Lower, Upper]:
//
//  1. If f(Upper) <= limit, Upper is returned immediately.
//  2. Otherwise mid = (low + high) / 2 is checked against the acceptance
//     band (limit-threshold, limit].
//  3. f(mid) > limit narrows from above, f(mid) < limit narrows from below.
//
// The loop stops on acceptance, on an error, after Config.MaxIterations
// steps, or when the interval can no longer be narrowed.
//
// # Defaults
//
//   - Threshold: limit * 0.1
//   - Range:     [0, MaxFinite]
//   - MaxIterations: 4096
//
// # Precision
//
// Search is generic over Real (float32, float64 and named types over them).
// All arithmetic, including the midpoint and the default threshold, is done
// in the caller's precision.
//
// # Errors
//
// Every failure is a *SearchError matching ErrSearchFailed. The cause is kept
// in the chain:
//
//	_, err := optarg.Search(f, limit, cfg)
//	switch {
//	case errors.Is(err, optarg.ErrInvalidThreshold):
//	    // limit <= threshold
//	case errors.Is(err, optarg.ErrInvalidFunctionResult):
//	    // f returned a value <= 0 (or NaN)
//	case errors.Is(err, optarg.ErrDidNotConverge):
//	    // f is not monotonic, or the band is narrower than float precision
//	}
//
// Configuration errors (limit, threshold, range) are reported before f is
// evaluated.
//
// # Concurrency
//
// Calls share no state and may run in parallel as long as f itself is safe
// for concurrent use. There is no cancellation; MaxIterations bounds the work.
//
// # Testing
//
// AssertWithinBand and AssertSearchFailed check search results from tests:
//
//	func TestBatchSize(t *testing.T) {
//	    cfg := optarg.DefaultConfig[float64]()
//	    n, err := optarg.Search(footprint, 512, cfg)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    optarg.AssertWithinBand(t, footprint, n, 512, cfg)
//	}
package optarg
