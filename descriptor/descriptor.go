// Package descriptor models the declarative description of a piecewise
// function: an ordered list of (bounds, function-kind) records.
//
// A descriptor is data, not code. Function kinds are named standard forms
// (constant, affine, logarithmic, exponential, inverse, polynomial)
// parameterized by coefficients; Resolve turns each into an executable unary
// function. The core builders are agnostic to how that resolution happens.
package descriptor

import (
	"errors"
	"fmt"
)

// Mode selects which builder a document targets.
type Mode string

const (
	// ModeDual describes dual-bounded segments [lower, higher).
	ModeDual Mode = "dual"
	// ModeLower describes lower-bounded segments [lower, ...).
	ModeLower Mode = "lower"
)

// Kind names a standard function form.
type Kind string

const (
	// KindConstant is f(x) = value.
	KindConstant Kind = "constant"
	// KindAffine is f(x) = slope*x + intercept.
	KindAffine Kind = "affine"
	// KindLogarithmic is f(x) = scale*log_base(x) + offset (base defaults to e).
	KindLogarithmic Kind = "logarithmic"
	// KindExponential is f(x) = scale*base^x + offset (base defaults to e).
	KindExponential Kind = "exponential"
	// KindInverse is f(x) = scale/x + offset.
	KindInverse Kind = "inverse"
	// KindPolynomial is f(x) = terms[0] + terms[1]*x + ... + terms[n]*x^n.
	KindPolynomial Kind = "polynomial"
)

// Document is a complete piecewise function description.
type Document struct {
	// Version is the document schema version. Zero means version 1.
	Version int `json:"version,omitempty"`
	// Mode selects dual-bounded or lower-bounded segments.
	Mode Mode `json:"mode"`
	// Segments are the (bounds, function) records, in any order.
	Segments []Segment `json:"segments"`
}

// Segment is one declarative (bounds, function) record.
type Segment struct {
	// Lower is the segment's lower bound.
	Lower float64 `json:"lower"`
	// Higher is the segment's upper bound. Required in dual mode,
	// forbidden in lower mode.
	Higher *float64 `json:"higher,omitempty"`
	// Function describes the segment's sub-function.
	Function Function `json:"function"`
}

// Function is a named standard function form with coefficients.
type Function struct {
	Kind Kind `json:"kind"`
	// Params holds named coefficients (value, slope, intercept, scale,
	// base, offset). Unused names are ignored by Resolve.
	Params map[string]float64 `json:"params,omitempty"`
	// Terms holds polynomial coefficients in ascending-degree order.
	// Only used by the polynomial kind.
	Terms []float64 `json:"terms,omitempty"`
}

// ErrInvalid is wrapped by every validation failure in this package.
var ErrInvalid = errors.New("invalid descriptor")

// ErrUnknownKind indicates a function kind this package does not know.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown function kind %q", e.Kind)
}

// Validate checks the document shape: a known mode, bounds matching the mode
// and resolvable functions. Interval overlap is not checked here; that is the
// builder's contract, enforced at insertion.
func (d *Document) Validate() error {
	switch d.Mode {
	case ModeDual, ModeLower:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, d.Mode)
	}

	if d.Version < 0 || d.Version > 1 {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalid, d.Version)
	}

	for i, seg := range d.Segments {
		if d.Mode == ModeDual && seg.Higher == nil {
			return fmt.Errorf("%w: segment %d: dual mode requires a higher bound", ErrInvalid, i)
		}
		if d.Mode == ModeLower && seg.Higher != nil {
			return fmt.Errorf("%w: segment %d: lower mode forbids a higher bound", ErrInvalid, i)
		}
		if err := seg.Function.Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks that the function kind is known and its required
// coefficients are present.
func (f *Function) Validate() error {
	switch f.Kind {
	case KindConstant:
		if _, ok := f.Params["value"]; !ok {
			return fmt.Errorf("%w: constant requires param %q", ErrInvalid, "value")
		}
	case KindAffine:
		if _, ok := f.Params["slope"]; !ok {
			return fmt.Errorf("%w: affine requires param %q", ErrInvalid, "slope")
		}
	case KindLogarithmic:
		if base, ok := f.Params["base"]; ok && (base <= 0 || base == 1) {
			return fmt.Errorf("%w: logarithmic base must be positive and != 1", ErrInvalid)
		}
	case KindExponential:
		if base, ok := f.Params["base"]; ok && base <= 0 {
			return fmt.Errorf("%w: exponential base must be positive", ErrInvalid)
		}
	case KindInverse:
	case KindPolynomial:
		if len(f.Terms) == 0 {
			return fmt.Errorf("%w: polynomial requires at least one term", ErrInvalid)
		}
	default:
		return &ErrUnknownKind{Kind: f.Kind}
	}

	return nil
}
