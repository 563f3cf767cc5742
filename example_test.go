package optarg_test

import (
	"errors"
	"fmt"

	"github.com/alexshd/optarg"
)

func ExampleSearch() {
	double := func(x float64) float64 { return x * 2048 }

	cfg := optarg.DefaultConfig[float64]()
	cfg.Range = &optarg.Range[float64]{Lower: 0, Upper: 1}

	// f(1) = 2048 never reaches the limit, so the upper bound is returned.
	x, err := optarg.Search(double, 1024*1024, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)
	// Output: 1
}

func ExampleSolve() {
	double := func(x float64) float64 { return x * 2048 }
	threshold := 100.0

	cfg := optarg.DefaultConfig[float64]()
	cfg.Threshold = &threshold
	cfg.Range = &optarg.Range[float64]{Lower: 0, Upper: 1000}

	res, err := optarg.Solve(double, 1024, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x=%v f(x)=%v iterations=%d\n", res.Value, res.FuncValue, res.Iterations)
	// Output: x=0.48828125 f(x)=1000 iterations=11
}

func ExampleSearch_invalidThreshold() {
	double := func(x float32) float32 { return x * 2048 }
	var threshold float32 = 2048

	cfg := optarg.DefaultConfig[float32]()
	cfg.Threshold = &threshold

	_, err := optarg.Search(double, 1024, cfg)
	fmt.Println(errors.Is(err, optarg.ErrSearchFailed), errors.Is(err, optarg.ErrInvalidThreshold))
	// Output: true true
}
