package adlast

import "testing"

func TestFieldsOfStructAndUnion(t *testing.T) {
	f := &Field[ScopedName]{Name: "x"}
	if fields, ok := FieldsOf[ScopedName](StructDeclType[ScopedName]{Fields: []*Field[ScopedName]{f}}); !ok || len(fields) != 1 {
		t.Fatalf("expected one field from struct, got %v, %v", fields, ok)
	}
	if fields, ok := FieldsOf[ScopedName](UnionDeclType[ScopedName]{Fields: []*Field[ScopedName]{f}}); !ok || len(fields) != 1 {
		t.Fatalf("expected one field from union, got %v, %v", fields, ok)
	}
}

func TestFieldsOfAliasAndNewtypeHaveNoFields(t *testing.T) {
	if _, ok := FieldsOf[ScopedName](TypeAliasDeclType[ScopedName]{}); ok {
		t.Fatalf("type alias must not report fields")
	}
	if _, ok := FieldsOf[ScopedName](NewtypeDeclType[ScopedName]{}); ok {
		t.Fatalf("newtype must not report fields")
	}
}
