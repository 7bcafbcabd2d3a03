// Package daogen emits the implementations of DAO factory methods for
// generated mapper types.
//
// # Overview
//
// A FactoryMethodGenerator is constructed per declared factory method.
// Construction validates the signature (see the mapper package), selects
// the caching mode, and reserves a storage field through the
// FieldAllocator; Generate then produces the override method as a
// jennifer statement for the driver to compose into the generated file.
//
// Two body shapes exist, gated entirely by the caching mode:
//
//	// simple: no override parameters, one memoized instance
//	return m.productDaoCache
//
//	// keyed: one instance per distinct (keyspace, table) key
//	key := daocache.NewKey(daocache.NewIdentifier(ks), daocache.Identifier{})
//	return m.productDaoCache.GetOrInit(key, func(k daocache.Key) db.ProductDao {
//		return db.NewProductDao(m.mapperContext.WithKeyspaceAndTable(k.Keyspace(), k.Table()))
//	})
//
// The init constructor is the sync or async variant matching the
// method's declared mode. This package never touches text formatting or
// files; rendering is the driver's concern.
package daogen
