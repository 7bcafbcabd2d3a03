package mapper

// CachingMode selects the shape of the generated caching code.
type CachingMode int

const (
	// ModeSimple memoizes a single instance in one field. Chosen when the
	// method declares no override parameters.
	ModeSimple CachingMode = iota

	// ModeKeyed caches one instance per distinct (keyspace, table) key.
	// Chosen when at least one override parameter exists.
	ModeKeyed
)

// String returns the mode name.
func (m CachingMode) String() string {
	if m == ModeKeyed {
		return "keyed"
	}
	return "simple"
}

// SelectCachingMode decides the caching strategy from the validated
// overrides. This single result gates every downstream decision: field
// shape, allocation entry point, and emitted body shape.
func SelectCachingMode(ov Overrides) CachingMode {
	if ov.HasKeyspace() || ov.HasTable() {
		return ModeKeyed
	}
	return ModeSimple
}
