package daocache

// MapperContext carries the keyspace and table a DAO operates against.
// The generated mapper holds the outer context; each cached DAO receives
// a copy narrowed to its cache key.
type MapperContext struct {
	keyspace Identifier
	table    Identifier
}

// NewMapperContext builds the outer context a generated mapper starts
// from. Either side may be the zero Identifier.
func NewMapperContext(keyspace, table Identifier) MapperContext {
	return MapperContext{keyspace: keyspace, table: table}
}

// Keyspace returns the effective keyspace.
func (c MapperContext) Keyspace() Identifier {
	return c.keyspace
}

// Table returns the effective table.
func (c MapperContext) Table() Identifier {
	return c.table
}

// WithKeyspaceAndTable returns a copy narrowed to the given overrides.
// An absent component inherits the outer value, so a key side that was
// never overridden keeps whatever the enclosing mapper was built with.
func (c MapperContext) WithKeyspaceAndTable(keyspace, table Identifier) MapperContext {
	next := c
	if keyspace.Valid() {
		next.keyspace = keyspace
	}
	if table.Valid() {
		next.table = table
	}
	return next
}
