package primitives

import "testing"

func TestFromIdentKnown(t *testing.T) {
	for _, p := range All() {
		got, ok := FromIdent(string(p))
		if !ok {
			t.Fatalf("FromIdent(%q): expected ok", p)
		}
		if got != p {
			t.Fatalf("FromIdent(%q) = %q, want %q", p, got, p)
		}
	}
}

func TestFromIdentUnknown(t *testing.T) {
	if _, ok := FromIdent("NotAPrimitive"); ok {
		t.Fatalf("expected NotAPrimitive to not be a primitive")
	}
	if _, ok := FromIdent(""); ok {
		t.Fatalf("expected empty ident to not be a primitive")
	}
}

func TestToIdentRoundTrip(t *testing.T) {
	if ToIdent(Int32) != "Int32" {
		t.Fatalf("ToIdent(Int32) = %q", ToIdent(Int32))
	}
}

func TestTableIsBijective(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range All() {
		ident := ToIdent(p)
		if seen[ident] {
			t.Fatalf("duplicate primitive ident %q", ident)
		}
		seen[ident] = true
	}
}
