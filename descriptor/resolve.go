package descriptor

import "math"

// param returns the named coefficient or def when absent.
func (f *Function) param(name string, def float64) float64 {
	if v, ok := f.Params[name]; ok {
		return v
	}
	return def
}

// Resolve turns the declarative function into an executable unary function.
//
// The returned closure captures only the resolved coefficients; it never
// references the descriptor again, so documents can be discarded after
// resolution. Domain edge cases (log of a non-positive input, division by
// zero) follow math package semantics and yield Inf/NaN rather than panicking.
func (f *Function) Resolve() (func(float64) float64, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	switch f.Kind {
	case KindConstant:
		value := f.Params["value"]
		return func(float64) float64 { return value }, nil

	case KindAffine:
		slope := f.Params["slope"]
		intercept := f.param("intercept", 0)
		return func(x float64) float64 { return slope*x + intercept }, nil

	case KindLogarithmic:
		scale := f.param("scale", 1)
		offset := f.param("offset", 0)
		if base, ok := f.Params["base"]; ok {
			logBase := math.Log(base)
			return func(x float64) float64 { return scale*(math.Log(x)/logBase) + offset }, nil
		}
		return func(x float64) float64 { return scale*math.Log(x) + offset }, nil

	case KindExponential:
		scale := f.param("scale", 1)
		offset := f.param("offset", 0)
		if base, ok := f.Params["base"]; ok {
			return func(x float64) float64 { return scale*math.Pow(base, x) + offset }, nil
		}
		return func(x float64) float64 { return scale*math.Exp(x) + offset }, nil

	case KindInverse:
		scale := f.param("scale", 1)
		offset := f.param("offset", 0)
		return func(x float64) float64 { return scale/x + offset }, nil

	case KindPolynomial:
		terms := make([]float64, len(f.Terms))
		copy(terms, f.Terms)
		return func(x float64) float64 {
			// Horner evaluation, highest degree first.
			acc := 0.0
			for i := len(terms) - 1; i >= 0; i-- {
				acc = acc*x + terms[i]
			}
			return acc
		}, nil

	default:
		return nil, &ErrUnknownKind{Kind: f.Kind}
	}
}
