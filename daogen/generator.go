package daogen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/goliatone/go-dao-mapper/mapper"
)

// DaoCachePkg is the import path of the runtime package the emitted
// code links against.
const DaoCachePkg = "github.com/goliatone/go-dao-mapper/daocache"

const (
	defaultReceiver     = "m"
	defaultContextField = "mapperContext"
)

// InitCall names the external construction operation invoked for a cache
// miss. The generator picks the sync or async variant matching the
// factory method's declared mode.
type InitCall struct {
	// Pkg is the import path of the package holding the constructors.
	// Empty means the package being generated.
	Pkg string

	// Sync and Async are the constructor names for each mode.
	Sync  string
	Async string
}

// variant returns the constructor name for the given mode.
func (c InitCall) variant(async bool) string {
	if async {
		return c.Async
	}
	return c.Sync
}

// initFor derives the conventional constructor pair for a DAO
// implementation type: NewFoo and NewFooAsync.
func initFor(daoImpl mapper.TypeRef) InitCall {
	return InitCall{
		Pkg:   daoImpl.Pkg,
		Sync:  "New" + daoImpl.Name,
		Async: "New" + daoImpl.Name + "Async",
	}
}

// ConfigError reports an invalid generator configuration.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "daogen config error in field " + e.Field + ": " + e.Message
}

// Config describes one factory method to generate.
type Config struct {
	// Signature is the declared factory method, as produced by the
	// scanning driver.
	Signature mapper.MethodSignature

	// DaoImpl is the concrete DAO implementation whose constructors
	// build instances on a cache miss.
	DaoImpl mapper.TypeRef

	// Class is the enclosing generated mapper type the method hangs off.
	Class string

	// Receiver is the method receiver name. Default: "m".
	Receiver string

	// ContextField is the mapper field holding the outer
	// daocache.MapperContext. Default: "mapperContext".
	ContextField string

	// Init overrides the constructor pair. Zero value derives NewFoo /
	// NewFooAsync from DaoImpl.
	Init InitCall

	// Allocator reserves the storage field on Class.
	Allocator FieldAllocator

	// Diagnostics receives validation failures. Nil discards them.
	Diagnostics mapper.Diagnostics
}

func (c Config) validate() error {
	if c.Class == "" {
		return &ConfigError{Field: "Class", Message: "must name the enclosing generated type"}
	}
	if c.Allocator == nil {
		return &ConfigError{Field: "Allocator", Message: "cannot be nil"}
	}
	if c.DaoImpl.Name == "" {
		return &ConfigError{Field: "DaoImpl", Message: "must reference the DAO implementation type"}
	}
	return nil
}

// FactoryMethodGenerator emits the implementation of one DAO factory
// method. Construction runs validation and fails fast: an invalid
// signature yields an error and no generator, so no partial body is ever
// emitted for an invalid method.
type FactoryMethodGenerator struct {
	sig          mapper.MethodSignature
	overrides    mapper.Overrides
	mode         mapper.CachingMode
	init         InitCall
	class        string
	receiver     string
	contextField string
	fieldName    string
}

// NewFactoryMethodGenerator validates cfg.Signature, selects the caching
// mode, and reserves the storage field. Validation failures have already
// been reported through cfg.Diagnostics when the error returns; callers
// should skip the method and continue with its siblings.
func NewFactoryMethodGenerator(cfg Config) (*FactoryMethodGenerator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	overrides, err := mapper.ValidateParams(cfg.Signature, cfg.Diagnostics)
	if err != nil {
		return nil, fmt.Errorf("factory method %q: %w", cfg.Signature.Name, err)
	}
	mode := mapper.SelectCachingMode(overrides)

	suggested := cfg.Signature.Name + "Cache"
	var fieldName string
	if mode == mapper.ModeKeyed {
		fieldName = cfg.Allocator.AllocateMapField(suggested, cfg.Signature.Returns)
	} else {
		fieldName = cfg.Allocator.AllocateSimpleField(
			suggested, cfg.Signature.Returns, cfg.DaoImpl, cfg.Signature.Async)
	}

	receiver := cfg.Receiver
	if receiver == "" {
		receiver = defaultReceiver
	}
	contextField := cfg.ContextField
	if contextField == "" {
		contextField = defaultContextField
	}
	init := cfg.Init
	if init.Sync == "" && init.Async == "" {
		init = initFor(cfg.DaoImpl)
	}

	return &FactoryMethodGenerator{
		sig:          cfg.Signature,
		overrides:    overrides,
		mode:         mode,
		init:         init,
		class:        cfg.Class,
		receiver:     receiver,
		contextField: contextField,
		fieldName:    fieldName,
	}, nil
}

// Mode returns the selected caching strategy.
func (g *FactoryMethodGenerator) Mode() mapper.CachingMode {
	return g.mode
}

// FieldName returns the storage field the emitted body reads.
func (g *FactoryMethodGenerator) FieldName() string {
	return g.fieldName
}

// Body returns the ordered statement sequence forming the method body.
//
// Simple mode is exactly "return m.<field>"; the field already holds the
// constructed instance. Keyed mode builds the cache key, substituting
// the zero identifier for an absent override, then reads through the
// keyed cache with an init closure that narrows the outer context to
// the key.
func (g *FactoryMethodGenerator) Body() []jen.Code {
	if g.mode == mapper.ModeSimple {
		return []jen.Code{
			jen.Return(jen.Id(g.receiver).Dot(g.fieldName)),
		}
	}

	initCall := qualOrLocal(g.init.Pkg, g.init.variant(g.sig.Async)).Call(
		jen.Id(g.receiver).Dot(g.contextField).Dot("WithKeyspaceAndTable").Call(
			jen.Id("k").Dot("Keyspace").Call(),
			jen.Id("k").Dot("Table").Call(),
		),
	)

	return []jen.Code{
		jen.Id("key").Op(":=").Qual(DaoCachePkg, "NewKey").Call(
			keyExpr(g.overrides.Keyspace),
			keyExpr(g.overrides.Table),
		),
		jen.Return(jen.Id(g.receiver).Dot(g.fieldName).Dot("GetOrInit").Call(
			jen.Id("key"),
			jen.Func().Params(jen.Id("k").Qual(DaoCachePkg, "Key")).Add(typeRef(g.sig.Returns)).Block(
				jen.Return(initCall),
			),
		)),
	}
}

// Generate returns the complete override method: receiver, signature and
// body, ready for physical rendering into the generated mapper type.
// Generating the same configuration twice yields structurally identical
// output.
func (g *FactoryMethodGenerator) Generate() *jen.Statement {
	params := make([]jen.Code, 0, len(g.sig.Params))
	for _, p := range g.sig.Params {
		params = append(params, jen.Id(p.Name).Add(paramType(p.Type)))
	}

	return jen.Func().
		Params(jen.Id(g.receiver).Op("*").Id(g.class)).
		Id(g.sig.Name).
		Params(params...).
		Add(typeRef(g.sig.Returns)).
		Block(g.Body()...)
}

// Render formats the generated method as source text. Intended for
// golden tests and debugging; drivers compose the *jen.Statement into a
// file instead.
func (g *FactoryMethodGenerator) Render() string {
	return fmt.Sprintf("%#v", g.Generate())
}

// keyExpr renders one side of the cache key literal: the parameter
// reference for a present override, the zero identifier for an absent
// one. Text parameters are wrapped into identifiers at call time.
func keyExpr(p *mapper.Param) jen.Code {
	switch {
	case p == nil:
		return jen.Qual(DaoCachePkg, "Identifier").Values()
	case p.Type == mapper.TypeText:
		return jen.Qual(DaoCachePkg, "NewIdentifier").Call(jen.Id(p.Name))
	default:
		return jen.Id(p.Name)
	}
}

func paramType(t mapper.ParamType) *jen.Statement {
	if t == mapper.TypeIdentifier {
		return jen.Qual(DaoCachePkg, "Identifier")
	}
	return jen.String()
}

// typeRef renders a qualified type reference.
func typeRef(t mapper.TypeRef) *jen.Statement {
	return qualOrLocal(t.Pkg, t.Name)
}

func qualOrLocal(pkg, name string) *jen.Statement {
	if pkg == "" {
		return jen.Id(name)
	}
	return jen.Qual(pkg, name)
}
