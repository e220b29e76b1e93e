package binder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/adl-lang/adlc-go/adlast"
)

func jv(t *testing.T, v any) *structpb.Value {
	t.Helper()
	sv, err := adlast.ValueFromAny(v)
	require.NoError(t, err)
	return sv
}

// buildModule constructs the Module0 from spec.md §8 scenario (1):
//
//	@A 1
//	module X {
//	  @B 2
//	  struct Y {
//	    @C 3
//	    Word64 z;
//	  };
//	  annotation E 6;
//	  annotation Y F 7;
//	  annotation Y::z G 8;
//	}
func buildModule(t *testing.T) RawModule {
	t.Helper()
	module0 := adlast.NewModule0("X")
	module0.Annotations[adlast.NewScopedName("", "A")] = jv(t, 1)

	field := &adlast.Field[adlast.ScopedName]{
		Name:     "z",
		TypeExpr: adlast.TypeExpr0{TypeRef: adlast.NewScopedName("", "Word64")},
		Annotations: adlast.Annotations{
			adlast.NewScopedName("", "C"): jv(t, 3),
		},
	}
	module0.Decls["Y"] = &adlast.Decl0{
		Name: "Y",
		Type: adlast.StructDeclType[adlast.ScopedName]{
			Fields: []*adlast.Field[adlast.ScopedName]{field},
		},
		Annotations: adlast.Annotations{
			adlast.NewScopedName("", "B"): jv(t, 2),
		},
	}

	return RawModule{
		Module0: module0,
		ExplicitAnnotations: []ExplicitAnnotation{
			{Refr: NewModuleRef(), ScopedName: adlast.NewScopedName("", "E"), Value: jv(t, 6)},
			{Refr: NewDeclRef("Y"), ScopedName: adlast.NewScopedName("", "F"), Value: jv(t, 7)},
			{Refr: NewFieldRef("Y", "z"), ScopedName: adlast.NewScopedName("", "G"), Value: jv(t, 8)},
		},
	}
}

func TestBindHappyPath(t *testing.T) {
	raw := buildModule(t)
	module0, err := Bind(raw)
	require.NoError(t, err)

	require.Equal(t, int64(1), asInt(t, module0.Annotations[adlast.NewScopedName("", "A")]))
	require.Equal(t, int64(6), asInt(t, module0.Annotations[adlast.NewScopedName("", "E")]))

	decl := module0.Decls["Y"]
	require.NotNil(t, decl)
	require.Equal(t, int64(2), asInt(t, decl.Annotations[adlast.NewScopedName("", "B")]))
	require.Equal(t, int64(7), asInt(t, decl.Annotations[adlast.NewScopedName("", "F")]))

	fields, ok := adlast.FieldsOf(decl.Type)
	require.True(t, ok)
	require.Len(t, fields, 1)
	field := fields[0]
	require.Equal(t, "z", field.Name)
	require.Equal(t, int64(3), asInt(t, field.Annotations[adlast.NewScopedName("", "C")]))
	require.Equal(t, int64(8), asInt(t, field.Annotations[adlast.NewScopedName("", "G")]))
}

// TestBindAllFail mirrors spec.md §8 scenario (2):
//
//	module X {
//	  struct Y { Word64 z; };
//	  annotation A F 7;
//	  annotation A::z G 8;
//	  annotation Y::q G 9;
//	}
func TestBindAllFail(t *testing.T) {
	module0 := adlast.NewModule0("X")
	module0.Decls["Y"] = &adlast.Decl0{
		Name: "Y",
		Type: adlast.StructDeclType[adlast.ScopedName]{
			Fields: []*adlast.Field[adlast.ScopedName]{
				{Name: "z", TypeExpr: adlast.TypeExpr0{TypeRef: adlast.NewScopedName("", "Word64")}, Annotations: adlast.NewAnnotations()},
			},
		},
		Annotations: adlast.NewAnnotations(),
	}

	raw := RawModule{
		Module0: module0,
		ExplicitAnnotations: []ExplicitAnnotation{
			{Refr: NewDeclRef("A"), ScopedName: adlast.NewScopedName("", "F"), Value: jv(t, 7)},
			{Refr: NewFieldRef("A", "z"), ScopedName: adlast.NewScopedName("", "G"), Value: jv(t, 8)},
			{Refr: NewFieldRef("Y", "q"), ScopedName: adlast.NewScopedName("", "G"), Value: jv(t, 9)},
		},
	}

	_, err := Bind(raw)
	require.Error(t, err)
	var unresolved *UnresolvedExplicitAnnotations
	require.ErrorAs(t, err, &unresolved)
	require.Len(t, unresolved.Unresolved, 3)
}

// TestBindRejectsFieldIntoAliasAndNewtype covers spec.md §4.3's rationale:
// type aliases and newtypes carry no fields, so a Field reference into
// either always fails.
func TestBindRejectsFieldIntoAliasAndNewtype(t *testing.T) {
	module0 := adlast.NewModule0("X")
	module0.Decls["Alias"] = &adlast.Decl0{
		Name: "Alias",
		Type: adlast.TypeAliasDeclType[adlast.ScopedName]{
			TypeExpr: adlast.TypeExpr0{TypeRef: adlast.NewScopedName("", "Int32")},
		},
		Annotations: adlast.NewAnnotations(),
	}
	module0.Decls["New"] = &adlast.Decl0{
		Name: "New",
		Type: adlast.NewtypeDeclType[adlast.ScopedName]{
			TypeExpr: adlast.TypeExpr0{TypeRef: adlast.NewScopedName("", "Int32")},
		},
		Annotations: adlast.NewAnnotations(),
	}

	raw := RawModule{
		Module0: module0,
		ExplicitAnnotations: []ExplicitAnnotation{
			{Refr: NewFieldRef("Alias", "whatever"), ScopedName: adlast.NewScopedName("", "G"), Value: jv(t, 1)},
			{Refr: NewFieldRef("New", "whatever"), ScopedName: adlast.NewScopedName("", "G"), Value: jv(t, 2)},
		},
	}

	_, err := Bind(raw)
	require.Error(t, err)
	var unresolved *UnresolvedExplicitAnnotations
	require.ErrorAs(t, err, &unresolved)
	require.Len(t, unresolved.Unresolved, 2)
}

func TestBindIsOrderIndependent(t *testing.T) {
	raw1 := buildModule(t)

	raw2 := buildModule(t)
	raw2.ExplicitAnnotations[0], raw2.ExplicitAnnotations[2] = raw2.ExplicitAnnotations[2], raw2.ExplicitAnnotations[0]

	m1, err1 := Bind(raw1)
	require.NoError(t, err1)
	m2, err2 := Bind(raw2)
	require.NoError(t, err2)

	require.Equal(t, asInt(t, m1.Annotations[adlast.NewScopedName("", "E")]), asInt(t, m2.Annotations[adlast.NewScopedName("", "E")]))
}

func asInt(t *testing.T, v *structpb.Value) int64 {
	t.Helper()
	require.NotNil(t, v)
	return int64(v.GetNumberValue())
}
