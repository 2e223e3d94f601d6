package piecewisego_test

import (
	"fmt"

	"github.com/hupe1980/piecewisego"
)

func ExampleDual() {
	pf := piecewisego.Dual[float64, float64]().
		With(0.0, 1.0, func(x float64) float64 { return x }).
		With(1.0, 2.0, func(x float64) float64 { return 5.0 }).
		MustBuild()

	fmt.Println(pf.Eval(0.5))
	fmt.Println(pf.Eval(1.0))
	fmt.Println(pf.Eval(2.0))
	fmt.Println(pf.Eval(2.1))
	// Output:
	// 0.5 true
	// 5 true
	// 5 true
	// 0 false
}

func ExampleLower() {
	pf := piecewisego.Lower[float64, int]().
		With(0.0, func(float64) int { return 1 }).
		With(1.0, func(float64) int { return 2 }).
		MustBuild()

	fmt.Println(pf.Eval(-1.0))
	fmt.Println(pf.Eval(0.5))
	fmt.Println(pf.Eval(1000.0))
	// Output:
	// 0 false
	// 1 true
	// 2 true
}

func ExampleDualBuilder_CanInsert() {
	b := piecewisego.Dual[float64, float64]().
		With(0.0, 1.0, func(x float64) float64 { return x })

	fmt.Println(b.CanInsert(1.0, 2.0))
	fmt.Println(b.CanInsert(0.5, 2.0))
	// Output:
	// true
	// false
}
