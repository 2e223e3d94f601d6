// Package order provides the partial-order comparison policy shared by the
// piecewise builders (sorting, overlap rejection) and evaluators (containment
// tests).
//
// Domains are only assumed to be partially ordered. The canonical degenerate
// case is floating point NaN, which compares as Unordered rather than
// Less/Equal/Greater. Every predicate in this package fails on Unordered, so
// incomparable values never satisfy a bounds check.
package order

import "cmp"

// Ordering is the four-valued result of a partial-order comparison.
type Ordering int8

const (
	// Less means a sorts strictly before b.
	Less Ordering = iota - 1
	// Equal means a and b are equivalent under the order.
	Equal
	// Greater means a sorts strictly after b.
	Greater
	// Unordered means a and b are incomparable (e.g. one of them is NaN).
	Unordered
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

// Comparator compares two domain values and reports their partial ordering.
// Implementations must be pure and safe for concurrent use.
type Comparator[B any] func(a, b B) Ordering

// Compare is the default comparator for natively ordered types.
//
// NaN is detected via self-inequality, which is false for every ordered type
// except floating point NaN. Any comparison involving NaN yields Unordered.
func Compare[B cmp.Ordered](a, b B) Ordering {
	if a != a || b != b {
		return Unordered
	}
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// Natural returns Compare as a Comparator value.
func Natural[B cmp.Ordered]() Comparator[B] {
	return Compare[B]
}

// Lt reports whether a < b. Unordered fails.
func (c Comparator[B]) Lt(a, b B) bool {
	return c(a, b) == Less
}

// Lte reports whether a <= b. Unordered fails.
func (c Comparator[B]) Lte(a, b B) bool {
	r := c(a, b)
	return r == Less || r == Equal
}

// Gt reports whether a > b. Unordered fails.
func (c Comparator[B]) Gt(a, b B) bool {
	return c(a, b) == Greater
}

// Gte reports whether a >= b. Unordered fails.
func (c Comparator[B]) Gte(a, b B) bool {
	r := c(a, b)
	return r == Greater || r == Equal
}

// Eq reports whether a == b under the order. Unordered fails.
func (c Comparator[B]) Eq(a, b B) bool {
	return c(a, b) == Equal
}

// Key adapts the comparator for slices.SortStableFunc and friends.
// Unordered collapses to 0 so that sorting incomparable values is stable
// rather than undefined; callers needing a secondary key chain another Key
// call when this one returns 0.
func (c Comparator[B]) Key(a, b B) int {
	switch c(a, b) {
	case Less:
		return -1
	case Greater:
		return 1
	default:
		return 0
	}
}
