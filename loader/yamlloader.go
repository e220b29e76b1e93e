package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/adl-lang/adlc-go/adlast"
	"github.com/adl-lang/adlc-go/binder"
	"github.com/adl-lang/adlc-go/optional"
)

func optionalInt64(v *int64) optional.Optional[int64] {
	if v == nil {
		return optional.None[int64]()
	}
	return optional.Some(*v)
}

func optionalString(v *string) optional.Optional[string] {
	if v == nil {
		return optional.None[string]()
	}
	return optional.Some(*v)
}

// YAMLLoader reads one YAML file per module from a directory, standing in
// for the out-of-scope ADL source parser so that fixtures for this
// module's own tests (and anyone exploring the resolver without a real
// parser wired up) can be written as plain data instead of hand-built
// adlast/binder Go literals. The file for module "a.b.c" is "a.b.c.yaml"
// directly under Dir; there is no subdirectory nesting by dotted segment.
//
// See testdata/*.yaml for the fixture shape.
type YAMLLoader struct {
	Dir string
}

func NewYAMLLoader(dir string) *YAMLLoader {
	return &YAMLLoader{Dir: dir}
}

func (y *YAMLLoader) Load(_ context.Context, name adlast.ModuleName) (*binder.RawModule, error) {
	path := filepath.Join(y.Dir, name+".yaml")
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading module %q: %w", name, err)
	}

	var doc yamlModule
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("parsing module %q: %w", name, err)
	}
	return doc.toRawModule(name)
}

type yamlModule struct {
	Imports             []yamlImport             `yaml:"imports"`
	Annotations         []yamlAnnotationEntry     `yaml:"annotations"`
	Decls               map[string]yamlDecl       `yaml:"decls"`
	ExplicitAnnotations []yamlExplicitAnnotation  `yaml:"explicitAnnotations"`
}

type yamlScopedName struct {
	Module string `yaml:"module"`
	Name   string `yaml:"name"`
}

type yamlImport struct {
	Module *string         `yaml:"module,omitempty"`
	Scoped *yamlScopedName `yaml:"scoped,omitempty"`
}

type yamlAnnotationEntry struct {
	Module string `yaml:"module"`
	Name   string `yaml:"name"`
	Value  any    `yaml:"value"`
}

type yamlTypeExpr struct {
	Module string         `yaml:"module,omitempty"`
	Ref    string         `yaml:"ref"`
	Params []yamlTypeExpr `yaml:"params,omitempty"`
}

type yamlField struct {
	Name           string                `yaml:"name"`
	SerializedName *string               `yaml:"serializedName,omitempty"`
	Type           yamlTypeExpr          `yaml:"type"`
	Default        any                   `yaml:"default,omitempty"`
	HasDefault     bool                  `yaml:"hasDefault,omitempty"`
	Annotations    []yamlAnnotationEntry `yaml:"annotations,omitempty"`
}

type yamlFieldsLike struct {
	TypeParams []string    `yaml:"typeParams,omitempty"`
	Fields     []yamlField `yaml:"fields,omitempty"`
}

type yamlAliasLike struct {
	TypeParams []string     `yaml:"typeParams,omitempty"`
	Type       yamlTypeExpr `yaml:"type"`
	Default    any          `yaml:"default,omitempty"`
	HasDefault bool         `yaml:"hasDefault,omitempty"`
}

type yamlDecl struct {
	Version     *int64                `yaml:"version,omitempty"`
	Struct      *yamlFieldsLike       `yaml:"struct,omitempty"`
	Union       *yamlFieldsLike       `yaml:"union,omitempty"`
	Alias       *yamlAliasLike        `yaml:"alias,omitempty"`
	Newtype     *yamlAliasLike        `yaml:"newtype,omitempty"`
	Annotations []yamlAnnotationEntry `yaml:"annotations,omitempty"`
}

type yamlExplicitRef struct {
	Kind  string `yaml:"kind"` // "module" | "decl" | "field"
	Decl  string `yaml:"decl,omitempty"`
	Field string `yaml:"field,omitempty"`
}

type yamlExplicitAnnotation struct {
	Refr   yamlExplicitRef `yaml:"ref"`
	Module string          `yaml:"module,omitempty"`
	Name   string          `yaml:"name"`
	Value  any             `yaml:"value"`
}

func (d yamlModule) toRawModule(name string) (*binder.RawModule, error) {
	module0 := adlast.NewModule0(name)

	for _, imp := range d.Imports {
		switch {
		case imp.Module != nil:
			module0.Imports = append(module0.Imports, adlast.NewModuleImport(*imp.Module))
		case imp.Scoped != nil:
			module0.Imports = append(module0.Imports, adlast.NewScopedImport(
				adlast.NewScopedName(imp.Scoped.Module, imp.Scoped.Name)))
		default:
			return nil, fmt.Errorf("import entry has neither module nor scoped")
		}
	}

	for _, a := range d.Annotations {
		v, err := adlast.ValueFromAny(a.Value)
		if err != nil {
			return nil, fmt.Errorf("module annotation %s: %w", a.Name, err)
		}
		module0.Annotations[adlast.NewScopedName(a.Module, a.Name)] = v
	}

	for declName, yd := range d.Decls {
		decl, err := yd.toDecl(declName)
		if err != nil {
			return nil, fmt.Errorf("decl %s: %w", declName, err)
		}
		module0.Decls[declName] = decl
	}

	var explicit []binder.ExplicitAnnotation
	for _, ea := range d.ExplicitAnnotations {
		refr, err := ea.Refr.toRef()
		if err != nil {
			return nil, err
		}
		v, err := adlast.ValueFromAny(ea.Value)
		if err != nil {
			return nil, fmt.Errorf("explicit annotation %s: %w", ea.Name, err)
		}
		explicit = append(explicit, binder.ExplicitAnnotation{
			Refr:       refr,
			ScopedName: adlast.NewScopedName(ea.Module, ea.Name),
			Value:      v,
		})
	}

	return &binder.RawModule{Module0: module0, ExplicitAnnotations: explicit}, nil
}

func (r yamlExplicitRef) toRef() (binder.ExplicitAnnotationRef, error) {
	switch r.Kind {
	case "module":
		return binder.NewModuleRef(), nil
	case "decl":
		return binder.NewDeclRef(r.Decl), nil
	case "field":
		return binder.NewFieldRef(r.Decl, r.Field), nil
	default:
		return binder.ExplicitAnnotationRef{}, fmt.Errorf("unknown explicit annotation ref kind %q", r.Kind)
	}
}

func (yd yamlDecl) toDecl(name string) (*adlast.Decl0, error) {
	annotations := adlast.NewAnnotations()
	for _, a := range yd.Annotations {
		v, err := adlast.ValueFromAny(a.Value)
		if err != nil {
			return nil, err
		}
		annotations[adlast.NewScopedName(a.Module, a.Name)] = v
	}

	version := optionalInt64(yd.Version)

	present := 0
	var dt adlast.DeclType[adlast.ScopedName]
	if yd.Struct != nil {
		present++
		fields, err := yd.Struct.toFields()
		if err != nil {
			return nil, err
		}
		dt = adlast.StructDeclType[adlast.ScopedName]{TypeParams: yd.Struct.TypeParams, Fields: fields}
	}
	if yd.Union != nil {
		present++
		fields, err := yd.Union.toFields()
		if err != nil {
			return nil, err
		}
		dt = adlast.UnionDeclType[adlast.ScopedName]{TypeParams: yd.Union.TypeParams, Fields: fields}
	}
	if yd.Alias != nil {
		present++
		te := yd.Alias.Type.toTypeExpr()
		dt = adlast.TypeAliasDeclType[adlast.ScopedName]{TypeParams: yd.Alias.TypeParams, TypeExpr: te}
	}
	if yd.Newtype != nil {
		present++
		te := yd.Newtype.Type.toTypeExpr()
		nt := adlast.NewtypeDeclType[adlast.ScopedName]{TypeParams: yd.Newtype.TypeParams, TypeExpr: te}
		if yd.Newtype.HasDefault {
			v, err := adlast.ValueFromAny(yd.Newtype.Default)
			if err != nil {
				return nil, err
			}
			nt.Default = v
		}
		dt = nt
	}
	if present != 1 {
		return nil, fmt.Errorf("decl must have exactly one of struct/union/alias/newtype, got %d", present)
	}

	return &adlast.Decl0{Name: name, Version: version, Type: dt, Annotations: annotations}, nil
}

func (fl *yamlFieldsLike) toFields() ([]*adlast.Field[adlast.ScopedName], error) {
	fields := make([]*adlast.Field[adlast.ScopedName], 0, len(fl.Fields))
	for _, yf := range fl.Fields {
		f, err := yf.toField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (yf yamlField) toField() (*adlast.Field[adlast.ScopedName], error) {
	annotations := adlast.NewAnnotations()
	for _, a := range yf.Annotations {
		v, err := adlast.ValueFromAny(a.Value)
		if err != nil {
			return nil, err
		}
		annotations[adlast.NewScopedName(a.Module, a.Name)] = v
	}
	f := &adlast.Field[adlast.ScopedName]{
		Name:        yf.Name,
		TypeExpr:    yf.Type.toTypeExpr(),
		Annotations: annotations,
	}
	if yf.SerializedName != nil {
		f.SerializedName = optionalString(yf.SerializedName)
	}
	if yf.HasDefault {
		v, err := adlast.ValueFromAny(yf.Default)
		if err != nil {
			return nil, err
		}
		f.Default = v
	}
	return f, nil
}

func (te yamlTypeExpr) toTypeExpr() adlast.TypeExpr0 {
	params := make([]adlast.TypeExpr0, 0, len(te.Params))
	for _, p := range te.Params {
		params = append(params, p.toTypeExpr())
	}
	return adlast.TypeExpr0{
		TypeRef:    adlast.NewScopedName(te.Module, te.Ref),
		Parameters: params,
	}
}
