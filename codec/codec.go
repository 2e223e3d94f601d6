// Package codec centralizes descriptor document encoding.
//
// Descriptor documents are the declarative, external representation of a
// piecewise function. The built function itself is never serialized; only its
// description travels across process boundaries, so codec selection is a
// compatibility boundary for stored documents.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Document stores that record the codec name alongside a document can select
// the matching codec on load.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
