package testsupport

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-dao-mapper/daocache"
)

// FakeDao stands in for a generated DAO in cache and end-to-end tests.
// Each instance carries a unique ID so tests can assert instance
// identity across concurrent cache reads.
type FakeDao struct {
	ID       string
	Keyspace daocache.Identifier
	Table    daocache.Identifier
}

// NewFakeDao is the sync construction call: it builds a DAO bound to the
// narrowed context, minting a fresh identity.
func NewFakeDao(ctx daocache.MapperContext) *FakeDao {
	return &FakeDao{
		ID:       uuid.NewString(),
		Keyspace: ctx.Keyspace(),
		Table:    ctx.Table(),
	}
}

// FakeDaoFuture is the async construction result: a future that already
// holds the constructed DAO.
type FakeDaoFuture struct {
	dao *FakeDao
}

// NewFakeDaoAsync is the async construction call variant.
func NewFakeDaoAsync(ctx daocache.MapperContext) *FakeDaoFuture {
	return &FakeDaoFuture{dao: NewFakeDao(ctx)}
}

// Get resolves the future.
func (f *FakeDaoFuture) Get() *FakeDao {
	return f.dao
}
