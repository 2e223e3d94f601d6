// Package piecewisego provides generic piecewise-defined (partial) functions.
//
// This file implements the immutable evaluation side: the structures returned
// by the builders, queried zero or more times and never mutated.
package piecewisego

import (
	"time"

	"github.com/hupe1980/piecewisego/order"
)

// Func is the polymorphic unary callable owned by a segment.
// A segment owns its Func exclusively; callers must not rely on shared
// mutable state inside it if the built function is evaluated concurrently.
type Func[B, O any] func(B) O

// dualSegment is one (bounds, function) record of a dual-bounded function.
// The interval is closed-open: [lower, higher).
type dualSegment[B, O any] struct {
	fn     Func[B, O]
	lower  B
	higher B
}

// lowerSegment is one (lower bound, function) record of a lower-bounded
// function. Its upper bound is implicit: the next segment's lower bound, or
// positive infinity for the last segment.
type lowerSegment[B, O any] struct {
	fn    Func[B, O]
	lower B
}

// PartialFunction is a piecewise function assembled from dual-bounded
// segments, sorted ascending by lower bound.
//
// It is immutable after Build and safe for concurrent evaluation, provided
// the stored Funcs are free of shared mutable state.
type PartialFunction[B, O any] struct {
	segs    []dualSegment[B, O]
	cmp     order.Comparator[B]
	metrics MetricsCollector
}

// Len returns the number of segments.
func (p *PartialFunction[B, O]) Len() int {
	return len(p.segs)
}

// Eval locates the governing segment for x and applies its function.
// The second result is false when x lies outside every defined interval or
// is incomparable (NaN); no sentinel output value is ever produced.
//
// Matching rules, scanning segments in ascending-lower order:
//   - x falls within the segment's half-open interval [lower, higher), or
//   - the segment is the last one and x equals its higher bound (the very
//     end of the whole range is closed), or
//   - a gap follows the segment and x falls in [higher, next.lower).
//
// When two segments touch (a.higher == b.lower), the later-starting segment
// governs the shared boundary point: Eval(a.higher) yields b's result.
func (p *PartialFunction[B, O]) Eval(x B) (O, bool) {
	start := time.Now()

	for i, seg := range p.segs {
		last := i == len(p.segs)-1

		switch {
		case p.cmp.Gte(x, seg.lower) && p.cmp.Lt(x, seg.higher):
		case last && p.cmp.Eq(x, seg.higher):
		case !last && !p.cmp.Eq(p.segs[i+1].lower, seg.higher) &&
			p.cmp.Gte(x, seg.higher) && p.cmp.Lt(x, p.segs[i+1].lower):
		default:
			continue
		}

		out := seg.fn(x)
		p.metrics.RecordEval(time.Since(start), true)

		return out, true
	}

	p.metrics.RecordEval(time.Since(start), false)

	var zero O

	return zero, false
}

// EvalOr evaluates x and returns def when no segment governs it.
func (p *PartialFunction[B, O]) EvalOr(x B, def O) O {
	if out, ok := p.Eval(x); ok {
		return out
	}
	return def
}

// LowerPartialFunction is a piecewise function assembled from lower-bounded
// segments, sorted ascending by lower bound. Each segment is valid from its
// lower bound up to the next segment's lower bound, the last one to positive
// infinity.
//
// It is immutable after Build and safe for concurrent evaluation.
type LowerPartialFunction[B, O any] struct {
	segs    []lowerSegment[B, O]
	cmp     order.Comparator[B]
	metrics MetricsCollector
}

// Len returns the number of segments.
func (p *LowerPartialFunction[B, O]) Len() int {
	return len(p.segs)
}

// Eval applies the function of the last segment whose lower bound is <= x.
// The second result is false when x is below every lower bound, the function
// is empty, or x is incomparable (NaN).
func (p *LowerPartialFunction[B, O]) Eval(x B) (O, bool) {
	start := time.Now()

	for i, seg := range p.segs {
		if !p.cmp.Gte(x, seg.lower) {
			continue
		}
		if i < len(p.segs)-1 && !p.cmp.Gt(p.segs[i+1].lower, x) {
			continue
		}

		out := seg.fn(x)
		p.metrics.RecordEval(time.Since(start), true)

		return out, true
	}

	p.metrics.RecordEval(time.Since(start), false)

	var zero O

	return zero, false
}

// EvalOr evaluates x and returns def when no segment governs it.
func (p *LowerPartialFunction[B, O]) EvalOr(x B, def O) O {
	if out, ok := p.Eval(x); ok {
		return out
	}
	return def
}
