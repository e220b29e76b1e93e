package adlast

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"
)

// Annotations maps a fully- or not-yet-qualified ScopedName to an arbitrary
// JSON value. Values are represented as *structpb.Value (part of the
// google.golang.org/protobuf module, already a dependency for its wire
// types elsewhere in the teacher lineage) rather than bare `any`, so that an
// annotation value is a well-typed, comparable, JSON-native Go value instead
// of an untyped interface{} that every caller has to re-type-switch on.
//
// Iteration order is not semantically observable (spec.md §3.4); callers
// that need deterministic output (e.g. tests, pretty-printers) should sort
// keys themselves.
type Annotations map[ScopedName]*structpb.Value

// NewAnnotations returns an empty, non-nil Annotations map.
func NewAnnotations() Annotations {
	return make(Annotations)
}

// ValueFromAny converts a plain Go value (as produced by encoding/json
// unmarshalling into interface{}, or built directly in tests) into the
// *structpb.Value representation used throughout this module's AST.
func ValueFromAny(v any) (*structpb.Value, error) {
	return structpb.NewValue(v)
}

// ValueFromJSON parses a JSON-encoded annotation value, as it would appear
// verbatim in ADL source (e.g. `@A 1` carries JSON literal `1`).
func ValueFromJSON(raw []byte) (*structpb.Value, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return structpb.NewValue(v)
}
