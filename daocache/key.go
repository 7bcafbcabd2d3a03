package daocache

import "fmt"

// Key identifies one DAO instance within a keyed cache. Both sides are
// independently optional; (absent, absent), (ks, absent), (absent, tbl)
// and (ks, tbl) are all legal, distinct keys. Keys are comparable and
// used directly as map keys.
type Key struct {
	keyspace Identifier
	table    Identifier
}

// NewKey builds a key from the override identifiers. Pass the zero
// Identifier for an absent side.
func NewKey(keyspace, table Identifier) Key {
	return Key{keyspace: keyspace, table: table}
}

// Keyspace returns the keyspace side of the key.
func (k Key) Keyspace() Identifier {
	return k.keyspace
}

// Table returns the table side of the key.
func (k Key) Table() Identifier {
	return k.table
}

// String renders the key for logs.
func (k Key) String() string {
	return fmt.Sprintf("(%s, %s)", k.keyspace, k.table)
}
