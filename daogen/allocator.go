package daogen

import (
	"github.com/goliatone/go-dao-mapper/mapper"
)

// FieldAllocator hands out storage fields on the enclosing generated
// mapper type. Implementations must return names that are unique within
// that type and deterministic when there are no collisions; the emitted
// method body references the returned name for the life of the mapper
// instance.
//
// The default implementation lives in internal/fieldreg and is wired by
// pkg/di.
type FieldAllocator interface {
	// AllocateSimpleField reserves the single memoized field used in
	// simple mode. The field holds a fully constructed instance built
	// from daoImpl's sync or async constructor, per async.
	AllocateSimpleField(suggested string, valueType, daoImpl mapper.TypeRef, async bool) string

	// AllocateMapField reserves the keyed cache field used in keyed
	// mode: a *daocache.Cache of valueType.
	AllocateMapField(suggested string, valueType mapper.TypeRef) string
}
