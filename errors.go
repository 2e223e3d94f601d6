package piecewisego

import (
	"errors"
	"fmt"
)

var (
	// ErrBuilderConsumed is returned when a builder is used after Build.
	// Builders are one-shot: finalize consumes them.
	ErrBuilderConsumed = errors.New("builder already consumed")
)

// ErrOverlap indicates an insertion whose interval overlaps an accumulated
// segment. Overlap is a construction-time contract violation, not a runtime
// condition: the offending segment is never silently inserted.
type ErrOverlap struct {
	Lower  any
	Higher any
}

func (e *ErrOverlap) Error() string {
	return fmt.Sprintf("segment [%v, %v) overlaps an existing segment", e.Lower, e.Higher)
}

// ErrDuplicateLower indicates a lower-bounded insertion whose lower bound
// equals an accumulated segment's lower bound.
type ErrDuplicateLower struct {
	Lower any
}

func (e *ErrDuplicateLower) Error() string {
	return fmt.Sprintf("segment with lower bound %v already exists", e.Lower)
}

// ErrInvertedBounds indicates a segment whose bounds are inverted or
// incomparable. Such a segment could never govern any input.
type ErrInvertedBounds struct {
	Lower  any
	Higher any
}

func (e *ErrInvertedBounds) Error() string {
	return fmt.Sprintf("segment bounds [%v, %v) are inverted or incomparable", e.Lower, e.Higher)
}

// ErrUnorderedBound indicates a lower bound that is incomparable with itself
// (NaN). Such a segment could never govern any input.
type ErrUnorderedBound struct {
	Bound any
}

func (e *ErrUnorderedBound) Error() string {
	return fmt.Sprintf("segment lower bound %v is unordered", e.Bound)
}
