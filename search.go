package optarg

import (
	"context"
	"log/slog"
)

// DefaultMaxIterations bounds the bisection loop. Halving [0, MaxFinite]
// down to the smallest normal float64 takes about 2100 steps, so the cap is
// only reached by functions that break the monotonicity assumption.
const DefaultMaxIterations = 4096

// DefaultThresholdRatio is the band width, as a fraction of the limit, used
// when Config.Threshold is nil.
const DefaultThresholdRatio = 0.1

// Config controls a search. The zero value is usable: nil fields take their
// defaults.
type Config[T Real] struct {
	// Threshold is the width of the acceptance band (limit-Threshold, limit].
	// nil means limit * DefaultThresholdRatio.
	Threshold *T

	// Range bounds the search domain. nil means [0, MaxFinite].
	Range *Range[T]

	// MaxIterations caps bisection steps (<= 0 means DefaultMaxIterations).
	MaxIterations int

	// Logger receives Debug traces of each step. nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns a config with every optional field at its default.
func DefaultConfig[T Real]() Config[T] {
	return Config[T]{
		MaxIterations: DefaultMaxIterations,
	}
}

// Result describes a successful search.
type Result[T Real] struct {
	Value          T    // The optimal argument
	FuncValue      T    // f(Value)
	Iterations     int  // Bisection steps taken
	Evaluations    int  // Calls to f
	ShortCircuited bool // f(Upper) <= limit, no bisection needed
}

// Search returns an argument x such that f(x) lies in the acceptance band
// (limit-threshold, limit], or the upper bound of the range when f never
// exceeds the limit there.
//
// f must be monotonic non-decreasing and strictly positive over the points
// the search visits. Any failure is reported as a *SearchError matching
// ErrSearchFailed.
//
// Example:
//
//	double := func(x float64) float64 { return x * 2048 }
//	threshold := 100.0
//	cfg := optarg.DefaultConfig[float64]()
//	cfg.Threshold = &threshold
//
//	x, err := optarg.Search(double, 1024, cfg)
//	// 924 < double(x) <= 1024
func Search[T Real](f Func[T], limit T, cfg Config[T]) (T, error) {
	res, err := Solve(f, limit, cfg)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Value, nil
}

// Solve is Search with diagnostics about how the result was reached.
func Solve[T Real](f Func[T], limit T, cfg Config[T]) (Result[T], error) {
	log := cfg.logger()

	threshold := cfg.threshold(limit)
	bounds := cfg.bounds()
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	low, high := bounds.Lower, bounds.Upper
	var res Result[T]

	fail := func(err error) (Result[T], error) {
		return Result[T]{}, &SearchError{
			Iterations: res.Iterations,
			Low:        float64(low),
			High:       float64(high),
			Err:        err,
		}
	}

	// Configuration errors are reported before f is ever called.
	if !isFinite(limit) {
		return fail(ErrInvalidLimit)
	}
	if err := bounds.Validate(); err != nil {
		return fail(err)
	}
	if !(limit > threshold) {
		return fail(ErrInvalidThreshold)
	}

	top := f(high)
	res.Evaluations++
	if top <= limit {
		log.Debug("upper bound within limit", "upper", high, "value", top, "limit", limit)
		res.Value = high
		res.FuncValue = top
		res.ShortCircuited = true
		return res, nil
	}

	for res.Iterations < maxIterations {
		mid := midpoint(low, high)
		value := f(mid)
		res.Evaluations++
		res.Iterations++

		accepted, err := Accept(value, limit, threshold)
		if err != nil {
			return fail(err)
		}
		if accepted {
			log.Debug("accepted",
				"iteration", res.Iterations,
				"arg", mid,
				"value", value,
				"band_low", limit-threshold,
				"limit", limit)
			res.Value = mid
			res.FuncValue = value
			return res, nil
		}

		log.Debug("bisect",
			"iteration", res.Iterations,
			"low", low,
			"high", high,
			"mid", mid,
			"value", value)

		switch {
		case value > limit && mid < high:
			high = mid
		case value < limit && mid > low:
			low = mid
		default:
			// value == limit outside the band, or the interval is down to
			// adjacent representable values.
			log.Debug("interval stopped narrowing",
				"iteration", res.Iterations,
				"low", low,
				"high", high,
				"value", value,
				"limit", limit)
			return fail(ErrDidNotConverge)
		}
	}

	log.Debug("iteration limit reached",
		"iterations", res.Iterations,
		"low", low,
		"high", high)
	return fail(ErrDidNotConverge)
}

// Accept reports whether value lies in the acceptance band
// (limit-threshold, limit].
//
// It fails with ErrInvalidThreshold when limit is not greater than threshold
// (NaN included) and with
// ErrInvalidFunctionResult when value is not strictly positive.
func Accept[T Real](value, limit, threshold T) (bool, error) {
	if !(limit > threshold) {
		return false, ErrInvalidThreshold
	}
	// NaN fails this comparison too.
	if !(value > 0) {
		return false, ErrInvalidFunctionResult
	}
	return value > limit-threshold && value <= limit, nil
}

func (c Config[T]) threshold(limit T) T {
	if c.Threshold != nil {
		return *c.Threshold
	}
	return limit * T(DefaultThresholdRatio)
}

func (c Config[T]) bounds() Range[T] {
	if c.Range != nil {
		return *c.Range
	}
	return DefaultRange[T]()
}

func (c Config[T]) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
