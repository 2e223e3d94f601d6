// Package piecewisego provides generic piecewise-defined (partial) functions.
//
// This file implements the fluent builder APIs. Builders accumulate segments,
// validate non-overlap on every insertion, and are consumed by a single Build
// call that sorts the segments and returns the immutable function.
package piecewisego

import (
	"cmp"
	"slices"
	"time"

	"github.com/hupe1980/piecewisego/order"
)

// =============================================================================
// Dual-bounded builder
// =============================================================================

// Dual creates a builder for dual-bounded segments over a natively ordered
// domain. Each segment covers the closed-open interval [lower, higher).
//
// Example:
//
//	pf, err := piecewisego.Dual[float64, float64]().
//	    With(0.0, 1.0, func(x float64) float64 { return x }).
//	    With(1.0, 2.0, func(x float64) float64 { return 5.0 }).
//	    Build()
func Dual[B cmp.Ordered, O any](optFns ...Option) *DualBuilder[B, O] {
	return DualFunc[B, O](order.Natural[B](), optFns...)
}

// DualFunc creates a dual-bounded builder with an explicit comparator, for
// domain types without a native order.
func DualFunc[B, O any](c order.Comparator[B], optFns ...Option) *DualBuilder[B, O] {
	o := applyOptions(optFns)

	return &DualBuilder[B, O]{
		cmp:     c,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// DualBuilder accumulates dual-bounded segments. It is not safe for
// concurrent use: every insertion depends on all prior validation state.
//
// Violations (overlap, inverted bounds) are recorded as a sticky error; the
// first violation wins and Build returns it. Use CanInsert to validate
// untrusted input without committing.
type DualBuilder[B, O any] struct {
	cmp      order.Comparator[B]
	segs     []dualSegment[B, O]
	logger   *Logger
	metrics  MetricsCollector
	err      error
	consumed bool
}

// With adds the segment [lower, higher) -> fn and returns the builder for
// chaining. An invalid insertion is dropped and recorded; the subsequent
// Build fails with the first recorded violation.
func (b *DualBuilder[B, O]) With(lower, higher B, fn Func[B, O]) *DualBuilder[B, O] {
	start := time.Now()

	err := b.insert(lower, higher, fn)

	b.metrics.RecordInsert(time.Since(start), err)
	b.logger.LogInsert(lower, higher, err)

	if err != nil && b.err == nil {
		b.err = err
	}

	return b
}

func (b *DualBuilder[B, O]) insert(lower, higher B, fn Func[B, O]) error {
	if b.consumed {
		return ErrBuilderConsumed
	}

	// A segment with lower > higher (or incomparable bounds) could never
	// match any input. Reject it here instead of building a dead segment.
	if r := b.cmp(lower, higher); r == order.Greater || r == order.Unordered {
		return &ErrInvertedBounds{Lower: lower, Higher: higher}
	}

	if !b.CanInsert(lower, higher) {
		return &ErrOverlap{Lower: lower, Higher: higher}
	}

	b.segs = append(b.segs, dualSegment[B, O]{fn: fn, lower: lower, higher: higher})

	return nil
}

// CanInsert reports whether the interval [lower, higher) overlaps no
// accumulated segment. Rejected overlaps: the new segment starts inside an
// existing one, ends inside one, or fully contains one (which covers exact
// duplicates and containment in either direction). Touching intervals are
// allowed.
func (b *DualBuilder[B, O]) CanInsert(lower, higher B) bool {
	if b.consumed {
		return false
	}

	for _, s := range b.segs {
		if (b.cmp.Gte(lower, s.lower) && b.cmp.Lt(lower, s.higher)) ||
			(b.cmp.Gt(higher, s.lower) && b.cmp.Lte(higher, s.higher)) ||
			(b.cmp.Lte(lower, s.lower) && b.cmp.Gte(higher, s.higher)) {
			return false
		}
	}

	return true
}

// Len returns the number of accumulated segments.
func (b *DualBuilder[B, O]) Len() int {
	return len(b.segs)
}

// Build consumes the builder, sorts the segments ascending by lower bound
// (stable; ties and incomparable lower bounds fall back to the higher bound)
// and returns the immutable PartialFunction.
//
// Build fails with the first recorded insertion violation, if any. The
// builder cannot be reused: a second Build returns ErrBuilderConsumed.
func (b *DualBuilder[B, O]) Build() (*PartialFunction[B, O], error) {
	start := time.Now()

	pf, err := b.build()

	n := 0
	if pf != nil {
		n = pf.Len()
	}

	b.metrics.RecordBuild(n, time.Since(start), err)
	b.logger.LogBuild("dual", n, err)

	return pf, err
}

func (b *DualBuilder[B, O]) build() (*PartialFunction[B, O], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	b.consumed = true

	if b.err != nil {
		return nil, b.err
	}

	segs := b.segs
	b.segs = nil

	slices.SortStableFunc(segs, func(x, y dualSegment[B, O]) int {
		if k := b.cmp.Key(x.lower, y.lower); k != 0 {
			return k
		}
		return b.cmp.Key(x.higher, y.higher)
	})

	return &PartialFunction[B, O]{segs: segs, cmp: b.cmp, metrics: b.metrics}, nil
}

// MustBuild builds the PartialFunction, panicking on error. Use it when the
// segments come from code rather than untrusted input, so that construction
// bugs fail loudly.
func (b *DualBuilder[B, O]) MustBuild() *PartialFunction[B, O] {
	pf, err := b.Build()
	if err != nil {
		panic(err)
	}
	return pf
}

// =============================================================================
// Lower-bounded builder
// =============================================================================

// Lower creates a builder for lower-bounded segments over a natively ordered
// domain. Each segment is valid from its lower bound until the next segment's
// lower bound (or to positive infinity for the last segment).
//
// Example:
//
//	pf, err := piecewisego.Lower[float64, int]().
//	    With(0.0, func(float64) int { return 1 }).
//	    With(1.0, func(float64) int { return 2 }).
//	    Build()
func Lower[B cmp.Ordered, O any](optFns ...Option) *LowerBuilder[B, O] {
	return LowerFunc[B, O](order.Natural[B](), optFns...)
}

// LowerFunc creates a lower-bounded builder with an explicit comparator, for
// domain types without a native order.
func LowerFunc[B, O any](c order.Comparator[B], optFns ...Option) *LowerBuilder[B, O] {
	o := applyOptions(optFns)

	return &LowerBuilder[B, O]{
		cmp:     c,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// LowerBuilder accumulates lower-bounded segments. It is not safe for
// concurrent use. Segments may be inserted in any order; Build sorts them.
type LowerBuilder[B, O any] struct {
	cmp      order.Comparator[B]
	segs     []lowerSegment[B, O]
	logger   *Logger
	metrics  MetricsCollector
	err      error
	consumed bool
}

// With adds the segment [lower, ...) -> fn and returns the builder for
// chaining. Duplicate lower bounds are dropped and recorded; the subsequent
// Build fails with the first recorded violation.
func (b *LowerBuilder[B, O]) With(lower B, fn Func[B, O]) *LowerBuilder[B, O] {
	start := time.Now()

	err := b.insert(lower, fn)

	b.metrics.RecordInsert(time.Since(start), err)
	b.logger.LogLowerInsert(lower, err)

	if err != nil && b.err == nil {
		b.err = err
	}

	return b
}

func (b *LowerBuilder[B, O]) insert(lower B, fn Func[B, O]) error {
	if b.consumed {
		return ErrBuilderConsumed
	}

	// An incomparable lower bound (NaN) would never match any input.
	if b.cmp(lower, lower) == order.Unordered {
		return &ErrUnorderedBound{Bound: lower}
	}

	if !b.CanInsert(lower) {
		return &ErrDuplicateLower{Lower: lower}
	}

	b.segs = append(b.segs, lowerSegment[B, O]{fn: fn, lower: lower})

	return nil
}

// CanInsert reports whether no accumulated segment has the same lower bound.
func (b *LowerBuilder[B, O]) CanInsert(lower B) bool {
	if b.consumed {
		return false
	}

	for _, s := range b.segs {
		if b.cmp.Eq(lower, s.lower) {
			return false
		}
	}

	return true
}

// Len returns the number of accumulated segments.
func (b *LowerBuilder[B, O]) Len() int {
	return len(b.segs)
}

// Build consumes the builder, sorts the segments ascending by lower bound
// and returns the immutable LowerPartialFunction.
//
// Build fails with the first recorded insertion violation, if any. The
// builder cannot be reused: a second Build returns ErrBuilderConsumed.
func (b *LowerBuilder[B, O]) Build() (*LowerPartialFunction[B, O], error) {
	start := time.Now()

	pf, err := b.build()

	n := 0
	if pf != nil {
		n = pf.Len()
	}

	b.metrics.RecordBuild(n, time.Since(start), err)
	b.logger.LogBuild("lower", n, err)

	return pf, err
}

func (b *LowerBuilder[B, O]) build() (*LowerPartialFunction[B, O], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	b.consumed = true

	if b.err != nil {
		return nil, b.err
	}

	segs := b.segs
	b.segs = nil

	slices.SortStableFunc(segs, func(x, y lowerSegment[B, O]) int {
		return b.cmp.Key(x.lower, y.lower)
	})

	return &LowerPartialFunction[B, O]{segs: segs, cmp: b.cmp, metrics: b.metrics}, nil
}

// MustBuild builds the LowerPartialFunction, panicking on error.
func (b *LowerBuilder[B, O]) MustBuild() *LowerPartialFunction[B, O] {
	pf, err := b.Build()
	if err != nil {
		panic(err)
	}
	return pf
}
