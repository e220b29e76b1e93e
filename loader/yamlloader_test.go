package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adl-lang/adlc-go/adlast"
)

func TestYAMLLoaderReturnsNilNilForMissingFile(t *testing.T) {
	y := NewYAMLLoader("testdata")
	rm, err := y.Load(context.Background(), "does.not.exist")
	require.NoError(t, err)
	require.Nil(t, rm)
}

func TestYAMLLoaderParsesStructUnionAndExplicitAnnotations(t *testing.T) {
	y := NewYAMLLoader("testdata")
	rm, err := y.Load(context.Background(), "widgets.core")
	require.NoError(t, err)
	require.NotNil(t, rm)

	require.Equal(t, adlast.ModuleName("widgets.core"), rm.Module0.Name)
	require.Contains(t, rm.Module0.Annotations, adlast.NewScopedName("", "ModuleDoc"))

	widget := rm.Module0.Decls["Widget"]
	require.NotNil(t, widget)
	fields, ok := adlast.FieldsOf(widget.Type)
	require.True(t, ok)
	require.Len(t, fields, 2)
	require.Equal(t, "name", fields[0].Name)
	require.Equal(t, "color", fields[1].Name)
	require.Equal(t, adlast.NewScopedName("", "Color"), fields[1].TypeExpr.TypeRef)

	color := rm.Module0.Decls["Color"]
	require.NotNil(t, color)
	union, ok := color.Type.(adlast.UnionDeclType[adlast.ScopedName])
	require.True(t, ok)
	require.Len(t, union.Fields, 3)

	require.Len(t, rm.ExplicitAnnotations, 2)
	require.Equal(t, "Widget", rm.ExplicitAnnotations[0].Refr.String())
	require.Equal(t, "Widget::name", rm.ExplicitAnnotations[1].Refr.String())
}

func TestYAMLLoaderParsesImportsAndScopedTypeExpr(t *testing.T) {
	y := NewYAMLLoader("testdata")
	rm, err := y.Load(context.Background(), "widgets.consumer")
	require.NoError(t, err)
	require.NotNil(t, rm)

	require.Len(t, rm.Module0.Imports, 1)
	mn, ok := rm.Module0.Imports[0].IsModuleName()
	require.True(t, ok)
	require.Equal(t, adlast.ModuleName("widgets.core"), mn)

	palette := rm.Module0.Decls["Palette"]
	require.NotNil(t, palette)
	fields, ok := adlast.FieldsOf(palette.Type)
	require.True(t, ok)
	require.Len(t, fields, 1)

	te := fields[0].TypeExpr
	require.Equal(t, adlast.NewScopedName("", "Vector"), te.TypeRef)
	require.Len(t, te.Parameters, 1)
	require.Equal(t, adlast.NewScopedName("widgets.core", "Widget"), te.Parameters[0].TypeRef)
}

func TestYAMLLoaderRejectsDeclWithNoVariant(t *testing.T) {
	y := NewYAMLLoader("testdata")
	_, err := y.Load(context.Background(), "broken.invalid")
	require.Error(t, err)
}

// TestYAMLLoaderThroughChainLoader exercises ChainLoader wrapping a
// YAMLLoader alongside an in-memory MapLoader, the combination an upstream
// harness is expected to assemble (spec.md §4.8).
func TestYAMLLoaderThroughChainLoader(t *testing.T) {
	chain := ChainLoader{
		MapLoader{},
		NewYAMLLoader("testdata"),
	}
	rm, err := chain.Load(context.Background(), "widgets.core")
	require.NoError(t, err)
	require.NotNil(t, rm)
}
