// Package daocache is the runtime support linked by generated mapper
// code. It provides the identifier and cache key model, the mapper
// context that DAO construction narrows from, and the concurrent keyed
// store generated factory methods read through.
//
// # Key Model
//
// A Key is a (keyspace, table) pair of Identifiers, each independently
// optional. The zero Identifier is the explicit "absent" sentinel: it is
// part of the key, so a method that overrides only the keyspace caches
// under (ks, absent), distinct from (ks, tbl) for every tbl.
//
// # Context Narrowing
//
// Each cached DAO is constructed with the mapper's outer MapperContext
// narrowed to its key via WithKeyspaceAndTable. An absent key component
// inherits the outer value, so defaults configured on the mapper flow
// through untouched.
//
// # Concurrency
//
// Cache.GetOrInit relies on xsync.MapOf.LoadOrCompute, which provides a
// true atomic get-or-insert: the compute function runs at most once per
// key under contention, and distinct keys hash to independent shards.
// The store never evicts, so a key always resolves to the instance its
// first caller constructed.
package daocache
