// Package primitives holds the static, bijective table of reserved
// identifiers that name ADL's built-in types, adapted from the teacher's
// internal/idl/builtins.go (which maps builtin-type UIDs to names) to the
// name-only table this language's resolver needs: ADL has no numeric type
// UIDs, primitives are identified purely by reserved identifier.
package primitives

// Prim is a built-in type token. The zero value is not a valid Prim; always
// check the `ok` result of FromIdent before using one.
type Prim string

const (
	Int8       Prim = "Int8"
	Int16      Prim = "Int16"
	Int32      Prim = "Int32"
	Int64      Prim = "Int64"
	Word8      Prim = "Word8"
	Word16     Prim = "Word16"
	Word32     Prim = "Word32"
	Word64     Prim = "Word64"
	Bool       Prim = "Bool"
	Void       Prim = "Void"
	Float      Prim = "Float"
	Double     Prim = "Double"
	String     Prim = "String"
	ByteVector Prim = "ByteVector"
	Vector     Prim = "Vector"
	StringMap  Prim = "StringMap"
	Nullable   Prim = "Nullable"
	TypeToken  Prim = "TypeToken"
	Json       Prim = "Json"
)

// byIdent is built from the literal table below, and each Prim's value is
// its own identifier spelling (see ToIdent), which keeps the mapping
// bijective by construction instead of by convention.
var table = []Prim{
	Int8, Int16, Int32, Int64,
	Word8, Word16, Word32, Word64,
	Bool, Void, Float, Double,
	String, ByteVector, Vector, StringMap, Nullable, TypeToken, Json,
}

var byIdent = func() map[string]Prim {
	m := make(map[string]Prim, len(table))
	for _, p := range table {
		m[string(p)] = p
	}
	return m
}()

// FromIdent classifies a reserved identifier as a primitive type token. It
// returns ok=false for any identifier not in the table; it has no other
// failure mode.
func FromIdent(ident string) (p Prim, ok bool) {
	p, ok = byIdent[ident]
	return p, ok
}

// ToIdent returns the reserved identifier spelling of a primitive.
func ToIdent(p Prim) string {
	return string(p)
}

// All returns every primitive token, in table order, for callers that need
// to enumerate the full set (e.g. building a symbol table or help text).
func All() []Prim {
	out := make([]Prim, len(table))
	copy(out, table)
	return out
}
