// Package mapper models DAO factory method signatures and decides how
// their implementations should cache the DAO instances they return.
//
// # Overview
//
// The package exports the signature model and two decision steps:
//
//   - ValidateParams: partitions a method's parameters into optional
//     keyspace and table overrides, enforcing the role rules
//   - SelectCachingMode: picks the caching strategy from the overrides
//
// Validation runs once per method, at generator construction time, and
// fails fast: any rule violation is reported through the Diagnostics
// sink and the method is skipped. A skipped method never aborts its
// siblings or the enclosing class.
//
// # Role Rules
//
// A factory method parameter must carry exactly one recognized role:
//
//   - at most one parameter may carry the keyspace role
//   - at most one parameter may carry the table role
//   - a role parameter must be a string or a daocache.Identifier
//   - a parameter with no role is rejected
//
// Violations map to the sentinel errors ErrDuplicateRoleParameter,
// ErrInvalidRoleParameterType and ErrUnrecognizedParameter, carried by
// a *ValidationError with the method and parameter names.
//
// # Caching Modes
//
// ModeSimple (no overrides) memoizes a single instance in one generated
// field. ModeKeyed (any override) caches one instance per distinct
// (keyspace, table) key; an absent override is part of the key as the
// zero identifier, so all four presence shapes are distinct keys.
//
// See the daogen package for body emission and the daocache package for
// the runtime store the emitted code uses.
package mapper
