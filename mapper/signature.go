package mapper

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ParamRole tags a factory-method parameter with the override it carries.
// Roles are resolved once during validation; downstream code never
// re-inspects parameter tags.
type ParamRole int

const (
	// RoleNone marks a parameter that carries no override role.
	RoleNone ParamRole = iota

	// RoleKeyspace marks the parameter supplying the keyspace override.
	RoleKeyspace

	// RoleTable marks the parameter supplying the table override.
	RoleTable
)

// String returns the human-readable role name used in diagnostics.
func (r ParamRole) String() string {
	switch r {
	case RoleKeyspace:
		return "keyspace"
	case RoleTable:
		return "table"
	default:
		return "none"
	}
}

// ParamType classifies the declared type of a factory-method parameter.
// Role-tagged parameters must be TypeText or TypeIdentifier; anything
// else fails validation.
type ParamType int

const (
	// TypeUnknown is any type outside the recognized set.
	TypeUnknown ParamType = iota

	// TypeText is an opaque text identifier (a plain string).
	TypeText

	// TypeIdentifier is the structured identifier type (daocache.Identifier).
	TypeIdentifier
)

// String returns the type name used in diagnostics.
func (t ParamType) String() string {
	switch t {
	case TypeText:
		return "string"
	case TypeIdentifier:
		return "daocache.Identifier"
	default:
		return "unknown"
	}
}

// Param is a single declared parameter of a factory method.
type Param struct {
	Name string
	Type ParamType
	Role ParamRole
}

// Validate checks the structural invariants of a single parameter.
func (p Param) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}

// TypeRef is a qualified reference to a Go type in generated code.
// An empty Pkg refers to the package being generated.
type TypeRef struct {
	Pkg  string
	Name string
}

// IsZero reports whether the reference is unset.
func (t TypeRef) IsZero() bool {
	return t == TypeRef{}
}

// String renders the reference the way it would read in source, using
// the package path's base name as the qualifier.
func (t TypeRef) String() string {
	if t.Pkg == "" {
		return t.Name
	}
	base := t.Pkg
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '/' {
			base = base[i+1:]
			break
		}
	}
	return base + "." + t.Name
}

// MethodSignature is the read-only description of a DAO factory method,
// derived once from the source declaration by the scanning driver.
type MethodSignature struct {
	// Name is the factory method name as declared.
	Name string

	// Params is the ordered parameter list. Every parameter must carry
	// a keyspace or table role; untagged parameters are rejected.
	Params []Param

	// Returns is the DAO type the method produces.
	Returns TypeRef

	// Async selects the future-returning construction variant.
	Async bool
}

// Validate checks the signature's structural invariants. Role rules are
// enforced separately by ValidateParams, which also needs a diagnostics
// sink to report violations.
func (s MethodSignature) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Returns, validation.By(requireTypeRef)),
		validation.Field(&s.Params),
	)
}

func requireTypeRef(value any) error {
	ref, _ := value.(TypeRef)
	if ref.Name == "" {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}
