package fieldreg

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/goliatone/go-dao-mapper/daogen"
	"github.com/goliatone/go-dao-mapper/mapper"
)

// FieldKind distinguishes the two storage shapes a factory method uses.
type FieldKind int

const (
	// KindSimple is a single memoized DAO instance.
	KindSimple FieldKind = iota

	// KindMap is a keyed cache of DAO instances.
	KindMap
)

// GeneratedField records one storage field reserved on the enclosing
// generated mapper type. Fields are exclusively owned by that type and
// live as long as the mapper instance.
type GeneratedField struct {
	Name      string
	Kind      FieldKind
	ValueType mapper.TypeRef

	// DaoImpl and Async are recorded for simple fields so the class
	// writer can emit the eager construction in the mapper constructor.
	DaoImpl mapper.TypeRef
	Async   bool
}

// Registry is the default daogen.FieldAllocator. It deduplicates field
// names across one generated class and remembers every allocation so the
// class writer can render the declarations and initializers. Generation
// is single-threaded, so the registry is not safe for concurrent use.
type Registry struct {
	class  string
	used   map[string]int
	fields []GeneratedField
}

var _ daogen.FieldAllocator = (*Registry)(nil)

// New creates an empty registry for the named generated class.
func New(class string) *Registry {
	return &Registry{
		class: class,
		used:  map[string]int{},
	}
}

// Class returns the generated type the fields belong to.
func (r *Registry) Class() string {
	return r.class
}

// AllocateSimpleField implements daogen.FieldAllocator.
func (r *Registry) AllocateSimpleField(suggested string, valueType, daoImpl mapper.TypeRef, async bool) string {
	name := r.reserve(suggested)
	r.fields = append(r.fields, GeneratedField{
		Name:      name,
		Kind:      KindSimple,
		ValueType: valueType,
		DaoImpl:   daoImpl,
		Async:     async,
	})
	return name
}

// AllocateMapField implements daogen.FieldAllocator.
func (r *Registry) AllocateMapField(suggested string, valueType mapper.TypeRef) string {
	name := r.reserve(suggested)
	r.fields = append(r.fields, GeneratedField{
		Name:      name,
		Kind:      KindMap,
		ValueType: valueType,
	})
	return name
}

// Fields returns the allocations in allocation order.
func (r *Registry) Fields() []GeneratedField {
	out := make([]GeneratedField, len(r.fields))
	copy(out, r.fields)
	return out
}

// RenderDecls renders the struct field declarations for every allocated
// field: the DAO value itself for simple fields, a pointer to the keyed
// runtime cache for map fields.
func (r *Registry) RenderDecls() []jen.Code {
	decls := make([]jen.Code, 0, len(r.fields))
	for _, f := range r.fields {
		value := typeRef(f.ValueType)
		switch f.Kind {
		case KindMap:
			decls = append(decls, jen.Id(f.Name).Op("*").Qual(daogen.DaoCachePkg, "Cache").Index(value))
		default:
			decls = append(decls, jen.Id(f.Name).Add(value))
		}
	}
	return decls
}

// reserve turns the suggestion into a valid unexported field name and
// appends a counter on collision: fooCache, fooCache2, fooCache3...
// Names are deterministic given the allocation order.
func (r *Registry) reserve(suggested string) string {
	base := toFieldName(suggested)
	if base == "" {
		base = "daoCache"
	}

	n := r.used[base]
	r.used[base] = n + 1
	if n == 0 {
		return base
	}
	return base + strconv.Itoa(n+1)
}

func typeRef(t mapper.TypeRef) *jen.Statement {
	if t.Pkg == "" {
		return jen.Id(t.Name)
	}
	return jen.Qual(t.Pkg, t.Name)
}
