package daocache

// Identifier names a keyspace or table. The zero value is the absent
// identifier: it compares equal only to itself and is distinguishable
// from every present value, which lets an absent override participate
// in cache keys as an explicit sentinel.
type Identifier struct {
	name string
}

// NewIdentifier wraps a raw name. An empty name yields the absent
// identifier.
func NewIdentifier(name string) Identifier {
	return Identifier{name: name}
}

// Valid reports whether the identifier names anything.
func (i Identifier) Valid() bool {
	return i.name != ""
}

// Name returns the raw name, empty when absent.
func (i Identifier) Name() string {
	return i.name
}

// String renders the identifier for logs and key dumps.
func (i Identifier) String() string {
	if !i.Valid() {
		return "<none>"
	}
	return i.name
}
