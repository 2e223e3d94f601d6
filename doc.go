// Package piecewisego provides generic piecewise-defined (partial) functions
// for Go.
//
// A piecewise function maps an ordered domain value to an output by selecting
// one of several independently supplied sub-functions, each valid over a
// bounded sub-interval of the domain. Construction validates that intervals
// never overlap; evaluation locates the governing segment and applies it.
//
// # Quick Start
//
// Dual-bounded mode (each segment carries [lower, higher)):
//
//	pf, err := piecewisego.Dual[float64, float64]().
//	    With(0.0, 1.0, func(x float64) float64 { return x }).
//	    With(1.0, 2.0, func(x float64) float64 { return 5.0 }).
//	    Build()
//
//	y, ok := pf.Eval(0.5)  // 0.5, true
//	y, ok = pf.Eval(1.0)   // 5.0, true  (later-starting segment wins the boundary)
//	y, ok = pf.Eval(2.0)   // 5.0, true  (the very end of the range is closed)
//	_, ok = pf.Eval(2.1)   // false     (undefined, never a sentinel)
//
// Lower-bounded mode (each segment is valid until the next one starts):
//
//	lf, err := piecewisego.Lower[float64, int]().
//	    With(0.0, func(float64) int { return 1 }).
//	    With(1.0, func(float64) int { return 2 }).
//	    Build()
//
//	n, ok := lf.Eval(1000.0)  // 2, true
//
// # Contract Violations
//
// Overlapping intervals and duplicate lower bounds are programmer errors.
// Insertions are validated immediately; Build returns the first violation and
// MustBuild panics on it. For untrusted input, check CanInsert before With.
//
// # Partial Ordering
//
// Domain comparisons go through package order, a four-valued partial order.
// NaN bounds are rejected at insertion and NaN inputs evaluate to undefined;
// nothing panics on degenerate numeric values.
//
// # Declarative Descriptors
//
// Piecewise functions can be described declaratively (named function kinds
// with coefficients) and loaded from JSON documents, optionally compressed
// and stored in local or cloud document stores:
//
//	l := loader.New()
//	fn, err := l.Fetch(ctx, store, "tariff.json.gz")
//	y, ok := fn.Eval(42.0)
//
// See the descriptor, loader and docstore packages.
//
// # Concurrency
//
// Builders are single-goroutine; built functions are immutable and safe for
// concurrent evaluation.
package piecewisego
